package handlers

import (
	"io"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/anjaleena-mwt/reciperealm/database/models"
	webmodels "github.com/anjaleena-mwt/reciperealm/models"
	"github.com/anjaleena-mwt/reciperealm/utils"
)

const autocompleteLimit = 10

// RecipesCreate accepts a multipart recipe submission with an optional
// image. The owner and category must exist; the recipe starts unapproved.
func RecipesCreate(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.Context()

		var form webmodels.RecipeCreateForm
		if err := c.BodyParser(&form); err != nil {
			return utils.SendBadRequest(c, "Invalid request body")
		}

		userID, err := parseInt64(form.UserID)
		if err != nil {
			return utils.SendBadRequest(c, "Invalid user")
		}
		categoryID, err := parseInt64(form.CategoryID)
		if err != nil {
			return utils.SendBadRequest(c, "Invalid category")
		}

		user, err := webApp.Repos.User.GetByID(ctx, userID)
		if err != nil {
			slog.Error("Failed to look up recipe owner",
				slog.Int64("user_id", userID),
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to create recipe")
		}
		if user == nil {
			return utils.SendBadRequest(c, "Invalid user")
		}

		category, err := webApp.Repos.Category.GetByID(ctx, categoryID)
		if err != nil {
			slog.Error("Failed to look up recipe category",
				slog.Int64("category_id", categoryID),
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to create recipe")
		}
		if category == nil {
			return utils.SendBadRequest(c, "Invalid category")
		}

		var imageURL string
		if file, err := c.FormFile("image"); err == nil && file != nil {
			if _, ok := utils.ValidateImageExtension(file.Filename); !ok {
				return utils.SendBadRequest(c, "Unsupported image type")
			}

			src, err := file.Open()
			if err != nil {
				slog.Error("Failed to open uploaded image",
					slog.String("filename", file.Filename),
					slog.String("error", err.Error()))
				return utils.SendInternalServerError(c, "Failed to read image")
			}
			data, err := io.ReadAll(src)
			src.Close()
			if err != nil {
				slog.Error("Failed to read uploaded image",
					slog.String("filename", file.Filename),
					slog.String("error", err.Error()))
				return utils.SendInternalServerError(c, "Failed to read image")
			}

			imageURL, err = webApp.Images.Save(ctx, data, file.Filename)
			if err != nil {
				slog.Error("Failed to store uploaded image",
					slog.String("filename", file.Filename),
					slog.String("error", err.Error()))
				return utils.SendInternalServerError(c, "Failed to store image")
			}
		}

		recipe := &models.Recipe{
			Title:       form.Title,
			Ingredients: form.Ingredients,
			Methods:     form.Methods,
			YoutubeLink: form.YoutubeLink,
			ImageURL:    imageURL,
			UserID:      userID,
			CategoryID:  categoryID,
			Approved:    false,
		}
		if err := webApp.Repos.Recipe.Create(ctx, recipe); err != nil {
			slog.Error("Failed to create recipe",
				slog.String("title", recipe.Title),
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to create recipe")
		}

		slog.Info("Recipe submitted",
			slog.Int64("recipe_id", recipe.ID),
			slog.Int64("user_id", userID))

		return utils.SendCreated(c, recipe, "Recipe submitted for approval")
	}
}

// RecipesList returns approved recipes, optionally filtered by a
// case-insensitive title substring (q) and an exact category id.
func RecipesList(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var categoryID int64
		if raw := c.Query("category"); raw != "" {
			id, err := parseInt64(raw)
			if err != nil {
				return utils.SendBadRequest(c, "Invalid category filter")
			}
			categoryID = id
		}

		recipes, err := webApp.Repos.Recipe.SearchApproved(c.Context(), c.Query("q"), categoryID)
		if err != nil {
			slog.Error("Failed to search recipes",
				slog.String("query", c.Query("q")),
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to list recipes")
		}

		return utils.SendSuccess(c, recipes, "Recipes retrieved successfully")
	}
}

// RecipesAutocomplete suggests approved recipe titles. Queries shorter
// than 2 characters after trimming return an empty list without touching
// the store.
func RecipesAutocomplete(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := c.Query("q")
		if len(strings.TrimSpace(q)) < 2 {
			return utils.SendSuccess(c, []models.RecipeSuggestion{}, "Suggestions retrieved successfully")
		}

		suggestions, err := webApp.Repos.Recipe.Autocomplete(c.Context(), q, autocompleteLimit)
		if err != nil {
			slog.Error("Failed to autocomplete recipes",
				slog.String("query", q),
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to autocomplete recipes")
		}

		return utils.SendSuccess(c, suggestions, "Suggestions retrieved successfully")
	}
}

// RecipesDetail returns a recipe by id. Approval status is deliberately
// not checked here: an unapproved recipe remains reachable by direct id,
// matching the shipped behavior of the listing/detail split.
func RecipesDetail(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseInt64(c.Params("id"))
		if err != nil {
			return utils.SendBadRequest(c, "Invalid recipe ID")
		}

		detail, err := webApp.Repos.Recipe.GetDetail(c.Context(), id)
		if err != nil {
			slog.Error("Failed to fetch recipe detail",
				slog.Int64("recipe_id", id),
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to fetch recipe")
		}
		if detail == nil {
			return utils.SendNotFound(c, "Recipe not found")
		}

		return utils.SendSuccess(c, detail, "Recipe retrieved successfully")
	}
}
