package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/anjaleena-mwt/reciperealm/database"
	"github.com/anjaleena-mwt/reciperealm/database/models"
	webmodels "github.com/anjaleena-mwt/reciperealm/models"
	"github.com/anjaleena-mwt/reciperealm/utils"
)

// Register creates a new user account. Checks run in fixed order and the
// first failure wins: duplicate identity, password mismatch, phone format.
func Register(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.Context()

		var req webmodels.RegisterRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body")
		}

		exists, err := webApp.Repos.User.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
		if err != nil {
			slog.Error("Failed to check existing users",
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to register user")
		}
		if exists {
			return utils.SendBadRequest(c, "Username or email already exists")
		}

		if msg := utils.ValidateRegistration(&req); msg != "" {
			return utils.SendBadRequest(c, msg)
		}

		user := &models.User{
			Username:    req.Username,
			Email:       req.Email,
			Password:    req.Password,
			Address:     req.Address,
			PhoneNumber: req.PhoneNumber,
		}
		if err := webApp.Repos.User.Create(ctx, user); err != nil {
			// Two registrations can race past the pre-check; the unique
			// constraint decides and the loser sees the same duplicate
			// failure.
			if database.IsUniqueViolation(err) {
				return utils.SendBadRequest(c, "Username or email already exists")
			}
			slog.Error("Failed to create user",
				slog.String("username", req.Username),
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to register user")
		}

		slog.Info("User registered",
			slog.Int64("user_id", user.ID),
			slog.String("username", user.Username))

		return utils.SendCreated(c, userSummary(user), "User registered successfully")
	}
}

// Login validates credentials against the store. The stored password must
// equal the supplied one exactly.
func Login(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.Context()

		var req webmodels.LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body")
		}

		user, err := webApp.Repos.User.GetByEmail(ctx, req.Email)
		if err != nil {
			slog.Error("Failed to look up user",
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to log in")
		}
		if user == nil || user.Password != req.Password {
			return utils.SendBadRequest(c, "Invalid email or password")
		}

		return utils.SendSuccess(c, userSummary(user), "Login successful")
	}
}

func userSummary(user *models.User) *webmodels.UserSummary {
	return &webmodels.UserSummary{
		UserID:      user.ID,
		Username:    user.Username,
		Email:       user.Email,
		Address:     user.Address,
		PhoneNumber: user.PhoneNumber,
	}
}
