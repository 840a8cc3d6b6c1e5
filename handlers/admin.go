package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/anjaleena-mwt/reciperealm/database"
	"github.com/anjaleena-mwt/reciperealm/database/models"
	webmodels "github.com/anjaleena-mwt/reciperealm/models"
	"github.com/anjaleena-mwt/reciperealm/utils"
)

// AddCategory creates a category. Name is globally unique.
func AddCategory(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.Context()

		var req webmodels.CategoryCreateRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body")
		}

		existing, err := webApp.Repos.Category.GetByName(ctx, req.Name)
		if err != nil {
			slog.Error("Failed to check existing category",
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to add category")
		}
		if existing != nil {
			return utils.SendBadRequest(c, "Category already exists")
		}

		category := &models.Category{Name: req.Name}
		if err := webApp.Repos.Category.Create(ctx, category); err != nil {
			if database.IsUniqueViolation(err) {
				return utils.SendBadRequest(c, "Category already exists")
			}
			slog.Error("Failed to create category",
				slog.String("name", req.Name),
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to add category")
		}

		return utils.SendSuccess(c, category, "Category added")
	}
}

// ListCategories returns all categories.
func ListCategories(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		categories, err := webApp.Repos.Category.GetAll(c.Context())
		if err != nil {
			slog.Error("Failed to list categories",
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to list categories")
		}

		return utils.SendSuccess(c, categories, "Categories retrieved successfully")
	}
}

// ViewRecipes returns every recipe with owner and category names joined
// in, regardless of approval status. This is the moderation queue.
func ViewRecipes(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		recipes, err := webApp.Repos.Recipe.GetAllDetails(c.Context())
		if err != nil {
			slog.Error("Failed to list recipes for admin",
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to list recipes")
		}

		return utils.SendSuccess(c, recipes, "Recipes retrieved successfully")
	}
}

// ApproveReject sets a recipe's approved flag to the supplied value.
// Rejecting re-uses the same operation with approve=false; there is no
// restriction on moving back to pending.
func ApproveReject(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.Context()

		var req webmodels.ApproveRejectRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body")
		}

		recipe, err := webApp.Repos.Recipe.GetByID(ctx, req.RecipeID)
		if err != nil {
			slog.Error("Failed to fetch recipe",
				slog.Int64("recipe_id", req.RecipeID),
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to update recipe")
		}
		if recipe == nil {
			return utils.SendNotFound(c, "Recipe not found")
		}

		if err := webApp.Repos.Recipe.SetApproved(ctx, req.RecipeID, req.Approve); err != nil {
			slog.Error("Failed to update recipe approval",
				slog.Int64("recipe_id", req.RecipeID),
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to update recipe")
		}

		slog.Info("Recipe moderation updated",
			slog.Int64("recipe_id", req.RecipeID),
			slog.Bool("approved", req.Approve))

		return utils.SendSuccess(c, fiber.Map{
			"id":       req.RecipeID,
			"approved": req.Approve,
		}, "Recipe updated")
	}
}
