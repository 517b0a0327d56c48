package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/vacations/internal/entity"
)

func scanLike(row scanner) (entity.Like, error) {
	var like entity.Like

	err := row.Scan(&like.ID, &like.UserID, &like.VacationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Like{}, entity.ErrNotFound
		}

		return entity.Like{}, err
	}

	return like, nil
}

func (r *LikeRepository) GetAll(ctx context.Context) ([]entity.Like, error) {
	rows, err := r.db.Query(ctx, selectLike+" ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	likes := make([]entity.Like, 0)

	for rows.Next() {
		like, err := scanLike(rows)
		if err != nil {
			return nil, err
		}

		likes = append(likes, like)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return likes, nil
}

func (r *LikeRepository) GetByID(ctx context.Context, id int64) (entity.Like, error) {
	return scanLike(r.db.QueryRow(ctx, selectLike+" WHERE id = $1", id))
}

func (r *LikeRepository) GetByUserAndVacation(ctx context.Context, userID, vacationID int64) (entity.Like, error) {
	return scanLike(r.db.QueryRow(ctx, selectLike+" WHERE user_id = $1 AND vacation_id = $2", userID, vacationID))
}

func (r *LikeRepository) LikedVacationIDsByUser(ctx context.Context, userID int64) ([]int64, error) {
	const q = `SELECT vacation_id FROM likes WHERE user_id = $1 ORDER BY vacation_id`

	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int64, 0)

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}

func (r *LikeRepository) CountByVacation(ctx context.Context, vacationID int64) (int, error) {
	const q = `SELECT COUNT(*) FROM likes WHERE vacation_id = $1`

	var count int
	if err := r.db.QueryRow(ctx, q, vacationID).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *LikeRepository) Create(ctx context.Context, userID, vacationID int64) (entity.Like, error) {
	const q = `INSERT INTO likes (user_id, vacation_id) VALUES ($1, $2) RETURNING id, user_id, vacation_id`

	like, err := scanLike(r.db.QueryRow(ctx, q, userID, vacationID))
	if err != nil {
		if isUniqueViolation(err) {
			return entity.Like{}, entity.ErrAlreadyExists
		}

		return entity.Like{}, err
	}

	return like, nil
}

func (r *LikeRepository) Update(ctx context.Context, id int64, upd entity.LikeUpdate) error {
	if upd.IsEmpty() {
		return entity.ErrMissingInput
	}

	stmt := sq.Update("likes").Where(sq.Eq{"id": id}).PlaceholderFormat(sq.Dollar)

	if upd.UserID != nil {
		stmt = stmt.Set("user_id", *upd.UserID)
	}

	if upd.VacationID != nil {
		stmt = stmt.Set("vacation_id", *upd.VacationID)
	}

	return execUpdate(ctx, r.db, stmt)
}

func (r *LikeRepository) Delete(ctx context.Context, id int64) error {
	return execDelete(ctx, r.db, `DELETE FROM likes WHERE id = $1`, id)
}
