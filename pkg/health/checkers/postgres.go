package checkers

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

// schemaTable is created by the initial migration.
const schemaTable = "public.readiness_scores"

var ErrSchemaMissing = errors.New("schema not migrated")

// DB is satisfied by *pgxpool.Pool.
type DB interface {
	Ping(ctx context.Context) error
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresChecker fails when the database is unreachable or unmigrated.
type PostgresChecker struct {
	db DB
}

func NewPostgresChecker(db DB) *PostgresChecker {
	return &PostgresChecker{db: db}
}

func (c *PostgresChecker) Name() string { return "postgres" }

func (c *PostgresChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	if err := c.db.Ping(ctx); err != nil {
		return err
	}
	var present bool
	if err := c.db.QueryRow(ctx, `SELECT to_regclass($1) IS NOT NULL`, schemaTable).Scan(&present); err != nil {
		return err
	}
	if !present {
		return ErrSchemaMissing
	}
	return nil
}
