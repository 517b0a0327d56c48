package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/vacations/internal/entity"
)

func scanVacation(row scanner) (entity.Vacation, error) {
	var v entity.Vacation

	err := row.Scan(
		&v.ID,
		&v.CountryID,
		&v.Description,
		&v.StartDate,
		&v.EndDate,
		&v.Price,
		&v.PhotoPath,
		&v.CountryName,
		&v.LikesCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Vacation{}, entity.ErrNotFound
		}

		return entity.Vacation{}, err
	}

	return v, nil
}

// GetAll returns every vacation ordered by start date with its country name
// and like count.
func (r *VacationRepository) GetAll(ctx context.Context) ([]entity.Vacation, error) {
	rows, err := r.db.Query(ctx, selectVacation+groupVacation+" ORDER BY v.start_date, v.id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vacations := make([]entity.Vacation, 0)

	for rows.Next() {
		v, err := scanVacation(rows)
		if err != nil {
			return nil, err
		}

		vacations = append(vacations, v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return vacations, nil
}

func (r *VacationRepository) GetByID(ctx context.Context, id int64) (entity.Vacation, error) {
	return scanVacation(r.db.QueryRow(ctx, selectVacation+" WHERE v.id = $1"+groupVacation, id))
}

func (r *VacationRepository) Create(ctx context.Context, in entity.VacationInput) (entity.Vacation, error) {
	const q = `
	INSERT INTO vacations (country_id, description, start_date, end_date, price, photo_path)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id`

	var id int64

	err := r.db.QueryRow(ctx, q,
		in.CountryID,
		in.Description,
		in.StartDate,
		in.EndDate,
		in.Price,
		in.PhotoPath,
	).Scan(&id)
	if err != nil {
		return entity.Vacation{}, err
	}

	return r.GetByID(ctx, id)
}

// Update applies the non-nil fields of upd and returns the stored row.
// Lock, write and re-read happen in one transaction.
func (r *VacationRepository) Update(ctx context.Context, id int64, upd entity.VacationUpdate) (entity.Vacation, error) {
	if upd.IsEmpty() {
		return entity.Vacation{}, entity.ErrMissingInput
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return entity.Vacation{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var lockedID int64

	err = tx.QueryRow(ctx, `SELECT id FROM vacations WHERE id = $1 FOR UPDATE`, id).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Vacation{}, entity.ErrNotFound
		}

		return entity.Vacation{}, err
	}

	stmt := sq.Update("vacations").Where(sq.Eq{"id": id}).PlaceholderFormat(sq.Dollar)

	if upd.CountryID != nil {
		stmt = stmt.Set("country_id", *upd.CountryID)
	}

	if upd.Description != nil {
		stmt = stmt.Set("description", *upd.Description)
	}

	if upd.StartDate != nil {
		stmt = stmt.Set("start_date", *upd.StartDate)
	}

	if upd.EndDate != nil {
		stmt = stmt.Set("end_date", *upd.EndDate)
	}

	if upd.Price != nil {
		stmt = stmt.Set("price", *upd.Price)
	}

	if upd.PhotoPath != nil {
		stmt = stmt.Set("photo_path", *upd.PhotoPath)
	}

	if err := execUpdate(ctx, tx, stmt); err != nil {
		return entity.Vacation{}, err
	}

	v, err := scanVacation(tx.QueryRow(ctx, selectVacation+" WHERE v.id = $1"+groupVacation, id))
	if err != nil {
		return entity.Vacation{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return entity.Vacation{}, fmt.Errorf("commit tx: %w", err)
	}

	return v, nil
}

func (r *VacationRepository) Delete(ctx context.Context, id int64) error {
	return execDelete(ctx, r.db, `DELETE FROM vacations WHERE id = $1`, id)
}

// PhotoPaths returns the photo file names referenced by any vacation.
func (r *VacationRepository) PhotoPaths(ctx context.Context) ([]string, error) {
	const q = `SELECT DISTINCT photo_path FROM vacations WHERE photo_path <> ''`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	paths := make([]string, 0)

	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}

		paths = append(paths, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return paths, nil
}
