package db

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Brendin-DP/IMD-accelerator-sub000/core/db/sqlc"
)

// DB wraps a pgxpool.Pool and provides transaction support.
type DB struct {
	pool *pgxpool.Pool
}

type Config struct {
	DSN      string
	MaxConns int32
	MinConns int32

	// ApplicationName tags connections in pg_stat_activity so server, worker
	// and seed traffic can be told apart.
	ApplicationName string

	// StatementTimeout bounds every statement. Answer writes are single-row
	// round trips, so a slow statement means a lock or an outage.
	StatementTimeout time.Duration
}

// New opens the pool and pings the database.
func New(ctx context.Context, cfg Config) (*DB, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}

	poolCfg.MaxConns = 10
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	poolCfg.MinConns = 2
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}

	params := poolCfg.ConnConfig.RuntimeParams
	if cfg.ApplicationName != "" {
		params["application_name"] = cfg.ApplicationName
	}
	if cfg.StatementTimeout > 0 {
		params["statement_timeout"] = strconv.FormatInt(cfg.StatementTimeout.Milliseconds(), 10)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &DB{pool: pool}, nil
}

func (db *DB) Close() {
	db.pool.Close()
}

// Ping backs the readiness probe.
func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// Queries returns a Queries bound to the pool (no transaction).
func (db *DB) Queries() *sqlc.Queries {
	return sqlc.New(db.pool)
}

// WithTx runs fn inside a transaction. An error from fn rolls back.
//
//	err := db.WithTx(ctx, func(q *sqlc.Queries) error {
//	    if err := q.DeleteResponsesBySession(ctx, sessionID); err != nil {
//	        return err
//	    }
//	    _, err := q.ResetResponseSession(ctx, sessionID)
//	    return err
//	})
func (db *DB) WithTx(ctx context.Context, fn func(q *sqlc.Queries) error) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	// No-op once committed.
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := fn(sqlc.New(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}
