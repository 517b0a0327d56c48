package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/vacations/internal/entity"
)

func (r *CountryRepository) GetAll(ctx context.Context) ([]entity.Country, error) {
	const q = `SELECT id, name FROM countries ORDER BY name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	countries := make([]entity.Country, 0)

	for rows.Next() {
		var country entity.Country
		if err := rows.Scan(&country.ID, &country.Name); err != nil {
			return nil, err
		}

		countries = append(countries, country)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return countries, nil
}

func (r *CountryRepository) GetByID(ctx context.Context, id int64) (entity.Country, error) {
	const q = `SELECT id, name FROM countries WHERE id = $1`

	var country entity.Country

	err := r.db.QueryRow(ctx, q, id).Scan(&country.ID, &country.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Country{}, entity.ErrNotFound
		}

		return entity.Country{}, err
	}

	return country, nil
}

func (r *CountryRepository) Create(ctx context.Context, name string) (entity.Country, error) {
	const q = `INSERT INTO countries (name) VALUES ($1) RETURNING id, name`

	var country entity.Country

	err := r.db.QueryRow(ctx, q, name).Scan(&country.ID, &country.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.Country{}, entity.ErrAlreadyExists
		}

		return entity.Country{}, err
	}

	return country, nil
}

func (r *CountryRepository) Update(ctx context.Context, id int64, upd entity.CountryUpdate) error {
	if upd.IsEmpty() {
		return entity.ErrMissingInput
	}

	stmt := sq.Update("countries").
		Set("name", *upd.Name).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar)

	return execUpdate(ctx, r.db, stmt)
}

func (r *CountryRepository) Delete(ctx context.Context, id int64) error {
	return execDelete(ctx, r.db, `DELETE FROM countries WHERE id = $1`, id)
}
