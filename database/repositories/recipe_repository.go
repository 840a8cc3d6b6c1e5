package repositories

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/uptrace/bun"

	"github.com/anjaleena-mwt/reciperealm/database/models"
)

type RecipeRepository interface {
	Create(ctx context.Context, recipe *models.Recipe) error
	GetByID(ctx context.Context, id int64) (*models.Recipe, error)
	GetDetail(ctx context.Context, id int64) (*models.RecipeDetail, error)
	GetAllDetails(ctx context.Context) ([]models.RecipeDetail, error)
	SearchApproved(ctx context.Context, titleQuery string, categoryID int64) ([]models.RecipeDetail, error)
	Autocomplete(ctx context.Context, titleQuery string, limit int) ([]models.RecipeSuggestion, error)
	SetApproved(ctx context.Context, id int64, approved bool) error
	Count(ctx context.Context) (int, error)
}

type recipeRepository struct {
	db *bun.DB
}

func NewRecipeRepository(db *bun.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	recipe.CreatedAt = time.Now()
	recipe.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(recipe).Exec(ctx)
	return err
}

func (r *recipeRepository) GetByID(ctx context.Context, id int64) (*models.Recipe, error) {
	recipe := new(models.Recipe)
	err := r.db.NewSelect().
		Model(recipe).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		slog.Error("Database error when getting recipe",
			slog.String("type", "db"),
			slog.String("operation", "GetByID"),
			slog.Int64("recipe_id", id),
			slog.String("error", err.Error()))
		return nil, err
	}
	return recipe, nil
}

// detailQuery is the shared shape for every listing: recipe columns plus
// the owner username and category name via explicit left joins.
func (r *recipeRepository) detailQuery() *bun.SelectQuery {
	return r.db.NewSelect().
		TableExpr("recipes AS r").
		ColumnExpr("r.id, r.title, r.ingredients, r.methods, r.youtube_link, r.image_url, r.user_id, r.category_id, r.approved").
		ColumnExpr("u.username AS username").
		ColumnExpr("c.name AS category_name").
		Join("LEFT JOIN users AS u ON u.id = r.user_id").
		Join("LEFT JOIN categories AS c ON c.id = r.category_id")
}

// GetDetail returns the full row regardless of approval status. Direct id
// lookup intentionally bypasses the moderation filter, matching the
// shipped behavior.
func (r *recipeRepository) GetDetail(ctx context.Context, id int64) (*models.RecipeDetail, error) {
	detail := new(models.RecipeDetail)
	err := r.detailQuery().
		Where("r.id = ?", id).
		Scan(ctx, detail)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return detail, nil
}

// GetAllDetails backs the admin moderation view: every recipe, approved or
// not.
func (r *recipeRepository) GetAllDetails(ctx context.Context) ([]models.RecipeDetail, error) {
	details := make([]models.RecipeDetail, 0)
	err := r.detailQuery().
		OrderExpr("r.id ASC").
		Scan(ctx, &details)
	return details, err
}

// SearchApproved returns approved recipes, optionally narrowed by a
// case-insensitive title substring and an exact category id.
func (r *recipeRepository) SearchApproved(ctx context.Context, titleQuery string, categoryID int64) ([]models.RecipeDetail, error) {
	q := r.detailQuery().
		Where("r.approved = ?", true)

	if titleQuery != "" {
		q = q.Where("LOWER(r.title) LIKE LOWER(?)", "%"+titleQuery+"%")
	}
	if categoryID > 0 {
		q = q.Where("r.category_id = ?", categoryID)
	}

	details := make([]models.RecipeDetail, 0)
	err := q.OrderExpr("r.id ASC").Scan(ctx, &details)
	return details, err
}

// Autocomplete returns id+title pairs for approved recipes whose title
// contains the query, capped at limit.
func (r *recipeRepository) Autocomplete(ctx context.Context, titleQuery string, limit int) ([]models.RecipeSuggestion, error) {
	suggestions := make([]models.RecipeSuggestion, 0)
	err := r.db.NewSelect().
		Model((*models.Recipe)(nil)).
		Column("id", "title").
		Where("approved = ?", true).
		Where("LOWER(title) LIKE LOWER(?)", "%"+titleQuery+"%").
		OrderExpr("id ASC").
		Limit(limit).
		Scan(ctx, &suggestions)
	return suggestions, err
}

func (r *recipeRepository) SetApproved(ctx context.Context, id int64, approved bool) error {
	_, err := r.db.NewUpdate().
		Model((*models.Recipe)(nil)).
		Set("approved = ?", approved).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)
	return err
}

func (r *recipeRepository) Count(ctx context.Context) (int, error) {
	return r.db.NewSelect().
		Model((*models.Recipe)(nil)).
		Count(ctx)
}
