package service

import (
	"context"

	"github.com/samandr77/microservices/vacations/internal/entity"
	"github.com/samandr77/microservices/vacations/internal/storage/photos"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (entity.User, error)
	GetByEmail(ctx context.Context, email string) (entity.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user entity.User) (entity.User, error)
	Update(ctx context.Context, id int64, upd entity.UserUpdate) error
}

type RoleRepository interface {
	GetByID(ctx context.Context, id int64) (entity.Role, error)
	GetByName(ctx context.Context, name string) (entity.Role, error)
}

type CountryRepository interface {
	GetAll(ctx context.Context) ([]entity.Country, error)
	GetByID(ctx context.Context, id int64) (entity.Country, error)
}

type LikeRepository interface {
	GetByUserAndVacation(ctx context.Context, userID, vacationID int64) (entity.Like, error)
	LikedVacationIDsByUser(ctx context.Context, userID int64) ([]int64, error)
	CountByVacation(ctx context.Context, vacationID int64) (int, error)
	Create(ctx context.Context, userID, vacationID int64) (entity.Like, error)
	Delete(ctx context.Context, id int64) error
}

type VacationRepository interface {
	GetAll(ctx context.Context) ([]entity.Vacation, error)
	GetByID(ctx context.Context, id int64) (entity.Vacation, error)
	Create(ctx context.Context, in entity.VacationInput) (entity.Vacation, error)
	Update(ctx context.Context, id int64, upd entity.VacationUpdate) (entity.Vacation, error)
	Delete(ctx context.Context, id int64) error
	PhotoPaths(ctx context.Context) ([]string, error)
}

type PhotoStore interface {
	List() ([]photos.File, error)
	Remove(name string) error
}

type Publisher interface {
	PublishVacationEvent(ctx context.Context, event entity.VacationEvent)
}
