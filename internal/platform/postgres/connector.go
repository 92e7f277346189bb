package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // Register pgx driver for database/sql
	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/redact"
	"github.com/phrazzld/tasks-api/internal/store"
)

// DriverName is the database/sql driver registered by pgx.
const DriverName = "pgx"

// startupPingTimeout bounds the connectivity probe made by Open.
const startupPingTimeout = 5 * time.Second

// Connector holds two independent connection pools to the same database:
// one for reads and one for writes.
type Connector struct {
	read   *sql.DB
	write  *sql.DB
	logger *slog.Logger
}

// Ensure Connector implements store.HealthChecker
var _ store.HealthChecker = (*Connector)(nil)

// NewConnector wraps already opened pools. Both pools are owned by the
// Connector from now on and are closed by Close.
func NewConnector(read, write *sql.DB, logger *slog.Logger) *Connector {
	if read == nil || write == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("read and write pools cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Connector{
		read:   read,
		write:  write,
		logger: logger.With(slog.String("component", "db_connector")),
	}
}

// Open creates the read and write pools described by cfg.
// Pools connect lazily; an unreachable database is logged here and then
// surfaced per request through Check.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Connector, error) {
	write, err := openPool(cfg.URL, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open write database: %w", err)
	}

	read, err := openPool(cfg.ReadConnectionURL(), cfg)
	if err != nil {
		_ = write.Close()
		return nil, fmt.Errorf("failed to open read database: %w", err)
	}

	c := NewConnector(read, write, logger)

	pingCtx, cancel := context.WithTimeout(ctx, startupPingTimeout)
	defer cancel()

	if err := c.Check(pingCtx); err != nil {
		c.logger.Warn("database not reachable at startup",
			slog.String("error", redact.Error(err)))
	} else {
		c.logger.Info("database connections established",
			slog.Int("max_open_conns", cfg.MaxOpenConns),
			slog.Bool("separate_read_url", cfg.ReadURL != ""))
	}

	return c, nil
}

func openPool(url string, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open(DriverName, url)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)

	return db, nil
}

// Read returns the pool used for queries.
func (c *Connector) Read() *sql.DB {
	return c.read
}

// Write returns the pool used for statements that modify data.
func (c *Connector) Write() *sql.DB {
	return c.write
}

// Check pings the write pool and then the read pool.
// The returned error wraps store.ErrConnection.
func (c *Connector) Check(ctx context.Context) error {
	if err := c.write.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: write pool: %w", store.ErrConnection, err)
	}
	if err := c.read.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: read pool: %w", store.ErrConnection, err)
	}
	return nil
}

// Close closes both pools.
func (c *Connector) Close() error {
	return errors.Join(c.write.Close(), c.read.Close())
}
