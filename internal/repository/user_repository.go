package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/vacations/internal/entity"
)

func scanUser(row scanner) (entity.User, error) {
	var user entity.User

	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
		&user.RoleID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, entity.ErrNotFound
		}

		return entity.User{}, err
	}

	return user, nil
}

func (r *UserRepository) GetAll(ctx context.Context) ([]entity.User, error) {
	rows, err := r.db.Query(ctx, selectUser+" ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]entity.User, 0)

	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}

		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (entity.User, error) {
	return scanUser(r.db.QueryRow(ctx, selectUser+" WHERE id = $1", id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	return scanUser(r.db.QueryRow(ctx, selectUser+" WHERE email = $1", email))
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, q, email).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *UserRepository) Create(ctx context.Context, user entity.User) (entity.User, error) {
	const q = `
	INSERT INTO users (first_name, last_name, email, password_hash, role_id)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id`

	err := r.db.QueryRow(ctx, q,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PasswordHash,
		user.RoleID,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.User{}, entity.ErrAlreadyExists
		}

		return entity.User{}, err
	}

	return user, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, upd entity.UserUpdate) error {
	if upd.IsEmpty() {
		return entity.ErrMissingInput
	}

	stmt := sq.Update("users").Where(sq.Eq{"id": id}).PlaceholderFormat(sq.Dollar)

	if upd.FirstName != nil {
		stmt = stmt.Set("first_name", *upd.FirstName)
	}

	if upd.LastName != nil {
		stmt = stmt.Set("last_name", *upd.LastName)
	}

	if upd.Email != nil {
		stmt = stmt.Set("email", *upd.Email)
	}

	if upd.PasswordHash != nil {
		stmt = stmt.Set("password_hash", *upd.PasswordHash)
	}

	if upd.RoleID != nil {
		stmt = stmt.Set("role_id", *upd.RoleID)
	}

	return execUpdate(ctx, r.db, stmt)
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return execDelete(ctx, r.db, `DELETE FROM users WHERE id = $1`, id)
}
