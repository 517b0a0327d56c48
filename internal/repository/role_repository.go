package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/vacations/internal/entity"
)

func (r *RoleRepository) GetAll(ctx context.Context) ([]entity.Role, error) {
	const q = `SELECT id, name FROM roles ORDER BY id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := make([]entity.Role, 0)

	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, err
		}

		roles = append(roles, role)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return roles, nil
}

func (r *RoleRepository) GetByID(ctx context.Context, id int64) (entity.Role, error) {
	const q = `SELECT id, name FROM roles WHERE id = $1`
	return r.getRole(ctx, q, id)
}

func (r *RoleRepository) GetByName(ctx context.Context, name string) (entity.Role, error) {
	const q = `SELECT id, name FROM roles WHERE name = $1`
	return r.getRole(ctx, q, name)
}

func (r *RoleRepository) getRole(ctx context.Context, q string, arg any) (entity.Role, error) {
	var role entity.Role

	err := r.db.QueryRow(ctx, q, arg).Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Role{}, entity.ErrNotFound
		}

		return entity.Role{}, err
	}

	return role, nil
}

func (r *RoleRepository) Create(ctx context.Context, name string) (entity.Role, error) {
	const q = `INSERT INTO roles (name) VALUES ($1) RETURNING id, name`

	var role entity.Role

	err := r.db.QueryRow(ctx, q, name).Scan(&role.ID, &role.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.Role{}, entity.ErrAlreadyExists
		}

		return entity.Role{}, err
	}

	return role, nil
}

func (r *RoleRepository) Update(ctx context.Context, id int64, upd entity.RoleUpdate) error {
	if upd.IsEmpty() {
		return entity.ErrMissingInput
	}

	stmt := sq.Update("roles").
		Set("name", *upd.Name).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar)

	return execUpdate(ctx, r.db, stmt)
}

func (r *RoleRepository) Delete(ctx context.Context, id int64) error {
	return execDelete(ctx, r.db, `DELETE FROM roles WHERE id = $1`, id)
}
