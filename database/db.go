package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/anjaleena-mwt/reciperealm/database/models"
	"github.com/anjaleena-mwt/reciperealm/logger"
)

const (
	defaultConnTimeout   = 5 * time.Second
	defaultMaxRetries    = 3
	defaultRetryInterval = time.Second
)

type DBConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	Database     string `toml:"database"`
	PoolSize     int    `toml:"pool_size"`
	MaxIdleConns int    `toml:"max_idle_conns"`
	MaxLifetime  int    `toml:"max_lifetime"`
}

// DB bundles the pgx connection pool with the bun query builder that runs
// on top of it. One instance is created at process start and injected into
// every repository; there is no ambient global.
type DB struct {
	pool  *pgxpool.Pool
	bunDB *bun.DB
}

func New(ctx context.Context, cfg DBConfig) (*DB, error) {
	// Check reachability before handing the DSN to the pool so a down
	// database fails fast with a useful error.
	var conn net.Conn
	var err error
	addr := net.JoinHostPort(cfg.Host, fmt.Sprintf("%d", cfg.Port))
	for i := 0; i < defaultMaxRetries; i++ {
		conn, err = net.DialTimeout("tcp", addr, defaultConnTimeout)
		if err == nil {
			break
		}
		slog.Warn("Database not reachable, retrying",
			slog.String("type", "db"),
			slog.String("addr", addr),
			slog.Int("attempt", i+1))
		time.Sleep(defaultRetryInterval)
	}
	if err != nil {
		return nil, fmt.Errorf("database server unreachable after %d attempts: %w", defaultMaxRetries, err)
	}
	conn.Close()

	poolConfig, err := pgxpool.ParseConfig(buildConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	if cfg.PoolSize > 0 {
		poolConfig.MaxConns = int32(cfg.PoolSize)
	}
	if cfg.MaxIdleConns > 0 {
		poolConfig.MinConns = int32(cfg.MaxIdleConns)
	}
	if cfg.MaxLifetime > 0 {
		poolConfig.MaxConnLifetime = time.Duration(cfg.MaxLifetime) * time.Second
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	return &DB{pool: pool, bunDB: newBunDB(cfg)}, nil
}

func buildConnString(cfg DBConfig) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?connect_timeout=5",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database,
	)
}

func newBunDB(cfg DBConfig) *bun.DB {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database,
	)

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	return bun.NewDB(sqldb, pgdialect.New())
}

func (db *DB) BunDB() *bun.DB {
	return db.bunDB
}

// Ping verifies the pool can reach the database. Used by the health
// endpoint.
func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
	if db.bunDB != nil {
		db.bunDB.Close()
	}
}

// InitializeSchema creates the application tables and indexes if they do
// not exist yet. The raw index statements go through the pool's logged
// exec so schema work shows up in the query log.
func (db *DB) InitializeSchema(ctx context.Context) error {
	if err := CreateTables(ctx, db.bunDB); err != nil {
		return err
	}
	for _, stmt := range indexStatements {
		if _, err := db.ExecWithLog(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}

// CreateTables creates the users, categories and recipes tables in
// dependency order. It is shared with the test harness, which runs it
// against an in-memory store.
func CreateTables(ctx context.Context, db *bun.DB) error {
	if _, err := db.NewCreateTable().
		Model((*models.User)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}

	if _, err := db.NewCreateTable().
		Model((*models.Category)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to create categories table: %w", err)
	}

	if _, err := db.NewCreateTable().
		Model((*models.Recipe)(nil)).
		IfNotExists().
		ForeignKey(`("user_id") REFERENCES "users" ("id")`).
		ForeignKey(`("category_id") REFERENCES "categories" ("id")`).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to create recipes table: %w", err)
	}

	return nil
}

// indexStatements back the public listing filters. Shared between
// InitializeSchema and the bun-handle variant used by the test harness.
var indexStatements = []string{
	"CREATE INDEX IF NOT EXISTS idx_recipes_title ON recipes(title);",
	"CREATE INDEX IF NOT EXISTS idx_recipes_category_id ON recipes(category_id);",
	"CREATE INDEX IF NOT EXISTS idx_recipes_approved ON recipes(approved);",
}

// CreateIndexes applies the index statements through a bun handle.
func CreateIndexes(ctx context.Context, db *bun.DB) error {
	for _, idx := range indexStatements {
		if _, err := db.ExecContext(ctx, idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}

// IsUniqueViolation reports whether err is a uniqueness-constraint failure
// from the store. Handlers pre-check duplicates, but under concurrent
// writes the constraint is the final arbiter and its violation must map to
// the same duplicate failure.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == "23505"
	}

	var pgconnErr *pgconn.PgError
	if errors.As(err, &pgconnErr) {
		return pgconnErr.Code == "23505"
	}

	// SQLite phrasing, seen by the in-memory test store.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// ExecWithLog runs a raw statement on the pool and records it through the
// query logger.
func (db *DB) ExecWithLog(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	start := time.Now()
	result, err := db.pool.Exec(ctx, sql, args...)
	logger.LogQuery(sql, time.Since(start), err)
	return result, err
}
