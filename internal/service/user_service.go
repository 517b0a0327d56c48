package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/samandr77/microservices/vacations/internal/entity"
	"github.com/samandr77/microservices/vacations/pkg/metrics"
)

type UserService struct {
	users     UserRepository
	roles     RoleRepository
	likes     LikeRepository
	vacations VacationRepository
	events    Publisher
}

func NewUserService(
	users UserRepository,
	roles RoleRepository,
	likes LikeRepository,
	vacations VacationRepository,
	events Publisher,
) *UserService {
	return &UserService{
		users:     users,
		roles:     roles,
		likes:     likes,
		vacations: vacations,
		events:    events,
	}
}

// Register creates a customer account. Input is validated before storage is
// touched.
func (s *UserService) Register(ctx context.Context, firstName, lastName, email, password string) (entity.User, error) {
	err := requireFields(firstName, lastName, email, password)
	if err != nil {
		return entity.User{}, err
	}

	err = ValidateEmail(email)
	if err != nil {
		return entity.User{}, err
	}

	err = ValidatePassword(password)
	if err != nil {
		return entity.User{}, err
	}

	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return entity.User{}, fmt.Errorf("check email: %w", err)
	}

	if exists {
		return entity.User{}, fmt.Errorf("%w: email already exists", entity.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return entity.User{}, fmt.Errorf("hash password: %w", err)
	}

	role, err := s.roles.GetByName(ctx, entity.RoleCustomer)
	if err != nil {
		return entity.User{}, fmt.Errorf("get default role: %w", err)
	}

	user, err := s.users.Create(ctx, entity.User{
		FirstName:    strings.TrimSpace(firstName),
		LastName:     strings.TrimSpace(lastName),
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       role.ID,
	})
	if err != nil {
		if errors.Is(err, entity.ErrAlreadyExists) {
			return entity.User{}, fmt.Errorf("%w: email already exists", entity.ErrInvalidInput)
		}

		return entity.User{}, fmt.Errorf("create user: %w", err)
	}

	metrics.UsersRegisteredTotal.Inc()
	slog.InfoContext(ctx, "user registered", "user_id", user.ID)

	return user, nil
}

// Login returns the user whose email and password match, or nil when there
// is no such user. Errors are returned only for malformed input and storage
// failures.
func (s *UserService) Login(ctx context.Context, email, password string) (*entity.User, error) {
	err := requireFields(email, password)
	if err != nil {
		return nil, err
	}

	err = ValidateEmail(email)
	if err != nil {
		return nil, err
	}

	err = ValidatePassword(password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return nil, nil
		}

		metrics.LoginsTotal.WithLabelValues("error").Inc()

		return nil, fmt.Errorf("get user by email: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, nil
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return &user, nil
}

func (s *UserService) AddLike(ctx context.Context, userID, vacationID int64) (entity.Like, error) {
	err := ValidateIDs(userID, vacationID)
	if err != nil {
		return entity.Like{}, err
	}

	_, err = s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.Like{}, fmt.Errorf("%w: User id not found", entity.ErrInvalidInput)
		}

		return entity.Like{}, fmt.Errorf("get user: %w", err)
	}

	_, err = s.vacations.GetByID(ctx, vacationID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.Like{}, fmt.Errorf("%w: Vacation id not found", entity.ErrInvalidInput)
		}

		return entity.Like{}, fmt.Errorf("get vacation: %w", err)
	}

	_, err = s.likes.GetByUserAndVacation(ctx, userID, vacationID)
	if err == nil {
		return entity.Like{}, fmt.Errorf("%w: Like already exists", entity.ErrInvalidInput)
	}

	if !errors.Is(err, entity.ErrNotFound) {
		return entity.Like{}, fmt.Errorf("get like: %w", err)
	}

	like, err := s.likes.Create(ctx, userID, vacationID)
	if err != nil {
		if errors.Is(err, entity.ErrAlreadyExists) {
			return entity.Like{}, fmt.Errorf("%w: Like already exists", entity.ErrInvalidInput)
		}

		return entity.Like{}, fmt.Errorf("create like: %w", err)
	}

	metrics.LikesTotal.WithLabelValues(string(entity.LikeActionAdded)).Inc()
	s.publish(ctx, entity.EventLikeAdded, vacationID, userID)

	return like, nil
}

func (s *UserService) RemoveLike(ctx context.Context, userID, vacationID int64) (entity.Like, error) {
	err := ValidateIDs(userID, vacationID)
	if err != nil {
		return entity.Like{}, err
	}

	like, err := s.likes.GetByUserAndVacation(ctx, userID, vacationID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.Like{}, fmt.Errorf("%w: Like not found", entity.ErrInvalidInput)
		}

		return entity.Like{}, fmt.Errorf("get like: %w", err)
	}

	err = s.likes.Delete(ctx, like.ID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.Like{}, fmt.Errorf("%w: Like not found", entity.ErrInvalidInput)
		}

		return entity.Like{}, fmt.Errorf("delete like: %w", err)
	}

	metrics.LikesTotal.WithLabelValues(string(entity.LikeActionRemoved)).Inc()
	s.publish(ctx, entity.EventLikeRemoved, vacationID, userID)

	return like, nil
}

// ToggleLike removes the like when the pair exists and adds it otherwise.
func (s *UserService) ToggleLike(ctx context.Context, userID, vacationID int64) (entity.LikeToggle, error) {
	err := ValidateIDs(userID, vacationID)
	if err != nil {
		return entity.LikeToggle{}, err
	}

	action := entity.LikeActionAdded

	_, err = s.likes.GetByUserAndVacation(ctx, userID, vacationID)

	switch {
	case err == nil:
		action = entity.LikeActionRemoved
		_, err = s.RemoveLike(ctx, userID, vacationID)
	case errors.Is(err, entity.ErrNotFound):
		_, err = s.AddLike(ctx, userID, vacationID)
	default:
		err = fmt.Errorf("get like: %w", err)
	}

	if err != nil {
		return entity.LikeToggle{}, err
	}

	count, err := s.likes.CountByVacation(ctx, vacationID)
	if err != nil {
		return entity.LikeToggle{}, fmt.Errorf("count likes: %w", err)
	}

	return entity.LikeToggle{
		Action:     action,
		VacationID: vacationID,
		LikesCount: count,
	}, nil
}

func (s *UserService) LikedVacationIDs(ctx context.Context, userID int64) ([]int64, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id must be a positive integer", entity.ErrInvalidType)
	}

	ids, err := s.likes.LikedVacationIDsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get liked vacations: %w", err)
	}

	return ids, nil
}

// GrantAdmin gives the admin role to the user with the given email.
func (s *UserService) GrantAdmin(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("get user %s: %w", email, err)
	}

	role, err := s.roles.GetByName(ctx, entity.RoleAdmin)
	if err != nil {
		return fmt.Errorf("get admin role: %w", err)
	}

	if user.RoleID == role.ID {
		return nil
	}

	err = s.users.Update(ctx, user.ID, entity.UserUpdate{RoleID: &role.ID})
	if err != nil {
		return fmt.Errorf("update user role: %w", err)
	}

	slog.InfoContext(ctx, "admin role granted", "user_id", user.ID)

	return nil
}

func (s *UserService) Role(ctx context.Context, roleID int64) (entity.Role, error) {
	return s.roles.GetByID(ctx, roleID)
}

func (s *UserService) publish(ctx context.Context, t entity.VacationEventType, vacationID, userID int64) {
	s.events.PublishVacationEvent(ctx, entity.VacationEvent{
		Type:       t,
		VacationID: vacationID,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
	})
}
