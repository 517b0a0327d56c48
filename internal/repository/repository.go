package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUniqueViolation = "23505"

type CountryRepository struct {
	db *pgxpool.Pool
}

type RoleRepository struct {
	db *pgxpool.Pool
}

type UserRepository struct {
	db *pgxpool.Pool
}

type LikeRepository struct {
	db *pgxpool.Pool
}

type VacationRepository struct {
	db *pgxpool.Pool
}

func NewCountryRepository(pool *pgxpool.Pool) *CountryRepository {
	return &CountryRepository{db: pool}
}

func NewRoleRepository(pool *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{db: pool}
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: pool}
}

func NewLikeRepository(pool *pgxpool.Pool) *LikeRepository {
	return &LikeRepository{db: pool}
}

func NewVacationRepository(pool *pgxpool.Pool) *VacationRepository {
	return &VacationRepository{db: pool}
}

type scanner interface {
	Scan(dest ...any) error
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
