package testutil

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/anjaleena-mwt/reciperealm/database"
	"github.com/anjaleena-mwt/reciperealm/database/models"
)

// OpenTestDB opens an in-memory SQLite database with the application
// schema applied. Each test passes its own name so databases are not
// shared between tests. Caller cleanup happens via t.Cleanup.
func OpenTestDB(t *testing.T, name string) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open("sqlite3", "file:"+name+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	// A single connection keeps the shared-cache database alive for the
	// whole test.
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())

	ctx := context.Background()
	if err := database.CreateTables(ctx, db); err != nil {
		t.Fatalf("create tables: %v", err)
	}
	if err := database.CreateIndexes(ctx, db); err != nil {
		t.Fatalf("create indexes: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}

// SeedUser inserts a user row directly.
func SeedUser(t *testing.T, db *bun.DB, username, email, password string) *models.User {
	t.Helper()
	user := &models.User{
		Username:    username,
		Email:       email,
		Password:    password,
		Address:     "1 Test Lane",
		PhoneNumber: "+14155551234",
	}
	if _, err := db.NewInsert().Model(user).Exec(context.Background()); err != nil {
		t.Fatalf("seed user %q: %v", username, err)
	}
	return user
}

// SeedCategory inserts a category row directly.
func SeedCategory(t *testing.T, db *bun.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name}
	if _, err := db.NewInsert().Model(category).Exec(context.Background()); err != nil {
		t.Fatalf("seed category %q: %v", name, err)
	}
	return category
}

// SeedRecipe inserts a recipe row directly.
func SeedRecipe(t *testing.T, db *bun.DB, title string, userID, categoryID int64, approved bool) *models.Recipe {
	t.Helper()
	recipe := &models.Recipe{
		Title:       title,
		Ingredients: "flour, sugar",
		Methods:     "mix and bake",
		UserID:      userID,
		CategoryID:  categoryID,
		Approved:    approved,
	}
	if _, err := db.NewInsert().Model(recipe).Exec(context.Background()); err != nil {
		t.Fatalf("seed recipe %q: %v", title, err)
	}
	return recipe
}
