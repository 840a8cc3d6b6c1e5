package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes configures all application routes.
func RegisterRoutes(app *fiber.App, webApp *WebApp) {
	app.Get("/", Welcome(webApp))
	app.Get("/health", HealthCheck(webApp))

	app.Post("/register", Register(webApp))
	app.Post("/login", Login(webApp))

	admin := app.Group("/admin")
	admin.Post("/add-category", AddCategory(webApp))
	admin.Get("/categories", ListCategories(webApp))
	admin.Get("/view-recipes", ViewRecipes(webApp))
	admin.Post("/approve-reject", ApproveReject(webApp))

	// The literal autocomplete path must be registered before the
	// parametric :id route, otherwise a numeric-looking query would be
	// captured as a recipe id.
	app.Post("/recipes", RecipesCreate(webApp))
	app.Get("/recipes", RecipesList(webApp))
	app.Get("/recipes/autocomplete", RecipesAutocomplete(webApp))
	app.Get("/recipes/:id", RecipesDetail(webApp))

	// Catch-all for unmatched routes
	app.Use(func(c *fiber.Ctx) error {
		slog.Warn("No route matched for request",
			slog.String("type", "http"),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("ip", c.IP()),
		)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Not Found",
			"message": "The requested endpoint does not exist",
		})
	})
}
