package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/anjaleena-mwt/reciperealm/config"
	"github.com/anjaleena-mwt/reciperealm/database"
	webmodels "github.com/anjaleena-mwt/reciperealm/models"
	"github.com/anjaleena-mwt/reciperealm/services"
	"github.com/anjaleena-mwt/reciperealm/utils"
)

// WebApp represents the web application with all dependencies
type WebApp struct {
	Config  *config.Config
	DB      *database.DB
	Repos   *webmodels.Repositories
	Images  services.ImageStore
	Version string
}

// parseInt64 is a utility function to parse int64 from string
func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func Welcome(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to RecipeRealm",
		})
	}
}

func HealthCheck(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbStatus := "healthy"
		if webApp.DB != nil {
			if err := webApp.DB.Ping(c.Context()); err != nil {
				dbStatus = "unreachable"
			}
		}

		return utils.SendSuccess(c, fiber.Map{
			"status":   "healthy",
			"version":  webApp.Version,
			"database": dbStatus,
		}, "Health check successful")
	}
}
