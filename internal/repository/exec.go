package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/samandr77/microservices/vacations/internal/entity"
)

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func execUpdate(ctx context.Context, db execer, stmt sq.UpdateBuilder) error {
	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return err
	}

	result, err := db.Exec(ctx, sqlQuery, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.ErrAlreadyExists
		}

		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func execDelete(ctx context.Context, db execer, q string, id int64) error {
	result, err := db.Exec(ctx, q, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}
