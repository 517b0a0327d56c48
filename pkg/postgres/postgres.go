package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pressly/goose/v3"

	// драйвер для миграций.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/samandr77/microservices/vacations/migrations"
)

func Connect(ctx context.Context, dsn string, maxConn int32) (*pgxpool.Pool, error) {
	const connectTimeout = time.Second * 5

	dbCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	dbCfg.MaxConns = maxConn
	dbCfg.ConnConfig.ConnectTimeout = connectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, dbCfg)
	if err != nil {
		return nil, fmt.Errorf("create db pool: %w", err)
	}

	err = pool.Ping(ctx)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	return pool, nil
}

func UpMigrations(dsn string) error {
	return withMigrator(dsn, func(db *sql.DB) error {
		err := goose.Up(db, ".")
		if err != nil && !errors.Is(err, goose.ErrNoNextVersion) {
			return err
		}

		return nil
	})
}

// ResetMigrations drops every table by rolling all migrations back and then
// applies them again. All data is lost.
func ResetMigrations(dsn string) error {
	return withMigrator(dsn, func(db *sql.DB) error {
		err := goose.Reset(db, ".")
		if err != nil {
			return fmt.Errorf("reset: %w", err)
		}

		err = goose.Up(db, ".")
		if err != nil && !errors.Is(err, goose.ErrNoNextVersion) {
			return fmt.Errorf("up: %w", err)
		}

		return nil
	})
}

func withMigrator(dsn string, fn func(db *sql.DB) error) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}

	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())

	err = goose.SetDialect("postgres")
	if err != nil {
		return err
	}

	return fn(db)
}
