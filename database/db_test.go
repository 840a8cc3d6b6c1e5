package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

func openSchemaDB(t *testing.T, name string) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open("sqlite3", "file:"+name+"?mode=memory&cache=shared")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestCreateTablesAndIndexes(t *testing.T) {
	db := openSchemaDB(t, "schema_create")
	ctx := context.Background()

	require.NoError(t, CreateTables(ctx, db))
	require.NoError(t, CreateIndexes(ctx, db))

	// The shared index statements must produce exactly the listing
	// indexes, whichever handle runs them.
	var names []string
	err := db.NewSelect().
		Table("sqlite_master").
		Column("name").
		Where("type = ?", "index").
		Where("name LIKE ?", "idx_%").
		Scan(ctx, &names)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{
		"idx_recipes_title",
		"idx_recipes_category_id",
		"idx_recipes_approved",
	}, names)

	// Idempotent on rerun.
	require.NoError(t, CreateTables(ctx, db))
	require.NoError(t, CreateIndexes(ctx, db))
}

func TestIsUniqueViolation(t *testing.T) {
	require.False(t, IsUniqueViolation(nil))
	require.False(t, IsUniqueViolation(errors.New("connection reset")))

	require.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	require.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))

	require.True(t, IsUniqueViolation(errors.New("UNIQUE constraint failed: users.username")))
}
