package common

import (
	"context"
	"database/sql"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "modernc.org/sqlite"

	"github.com/gemdocs/procurement-tracker/gen/ent"
	"github.com/gemdocs/procurement-tracker/internal/repository"
)

// DBResult bundles the handles InitDatabase opens. Pool is nil in SQLite mode.
type DBResult struct {
	Client  *ent.Client
	Pool    *pgxpool.Pool
	Cleanup func()
}

// InitDatabase opens Postgres when a DSN is configured, or an in-memory
// SQLite database with auto-migration for local batch runs and tests.
func InitDatabase(ctx context.Context, cfg *Config, inmem bool, logger *slog.Logger) (*DBResult, error) {
	if inmem || cfg.Database.DSN == "" {
		return initSQLite(ctx, logger)
	}

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, WrapError(err, "open postgres")
	}

	return &DBResult{
		Client: entc,
		Pool:   pool,
		Cleanup: func() {
			repository.Close(entc, pool, logger)
		},
	}, nil
}

func initSQLite(ctx context.Context, logger *slog.Logger) (*DBResult, error) {
	logger.Info("using in-memory sqlite database")

	db, err := sql.Open("sqlite", "file:procurement?mode=memory&cache=shared&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, WrapError(err, "open sqlite")
	}
	// the in-memory database vanishes when its last connection closes
	db.SetMaxOpenConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(ctx); err != nil {
		_ = client.Close()
		return nil, WrapError(err, "migrate sqlite schema")
	}

	return &DBResult{
		Client: client,
		Cleanup: func() {
			if err := client.Close(); err != nil {
				logger.Error("failed to close ent client", "error", err)
			}
		},
	}, nil
}
