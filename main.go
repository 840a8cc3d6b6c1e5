package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/anjaleena-mwt/reciperealm/config"
	"github.com/anjaleena-mwt/reciperealm/database"
	"github.com/anjaleena-mwt/reciperealm/database/repositories"
	"github.com/anjaleena-mwt/reciperealm/handlers"
	"github.com/anjaleena-mwt/reciperealm/logger"
	"github.com/anjaleena-mwt/reciperealm/middleware"
	webmodels "github.com/anjaleena-mwt/reciperealm/models"
	"github.com/anjaleena-mwt/reciperealm/services"
)

var version = "dev"

func main() {
	configPath := "config.toml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.Log.Format == "json" {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level:     cfg.Log.Level,
			AddSource: cfg.Log.AddSource,
		})))
	} else {
		slog.SetDefault(slog.New(logger.NewHandler("RecipeRealm", cfg.Log.Level)))
	}

	logger.LogSystem("Starting RecipeRealm backend",
		slog.String("version", version))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger.LogSystem("Connecting to database...")
	db, err := database.New(ctx, database.DBConfig{
		Host:         cfg.DB.Host,
		Port:         cfg.DB.Port,
		User:         cfg.DB.User,
		Password:     cfg.DB.Password,
		Database:     cfg.DB.Database,
		PoolSize:     cfg.DB.PoolSize,
		MaxIdleConns: cfg.DB.MaxIdleConns,
		MaxLifetime:  cfg.DB.MaxLifetime,
	})
	if err != nil {
		logger.LogError("Failed to connect to database", err)
		os.Exit(1)
	}

	if err := db.InitializeSchema(ctx); err != nil {
		logger.LogError("Failed to initialize schema", err)
		os.Exit(1)
	}
	logger.LogSystem("Database connected successfully")

	repos := webmodels.NewRepositories(
		repositories.NewUserRepository(db.BunDB()),
		repositories.NewCategoryRepository(db.BunDB()),
		repositories.NewRecipeRepository(db.BunDB()),
	)

	var images services.ImageStore
	if cfg.Spaces.Enabled() {
		images, err = services.NewSpacesImageStore(cfg.Spaces)
		if err != nil {
			logger.LogError("Failed to initialize Spaces image store", err)
			os.Exit(1)
		}
		logger.LogSystem("Serving uploads from Spaces", slog.String("bucket", cfg.Spaces.Bucket))
	} else {
		images, err = services.NewLocalImageStore(cfg.Uploads.Dir, cfg.Uploads.PublicPath)
		if err != nil {
			logger.LogError("Failed to initialize uploads directory", err)
			os.Exit(1)
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      "RecipeRealm Backend API",
		ServerHeader: "RecipeRealm-Backend",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	app.Use(recover.New())
	app.Use(middleware.SecurityHeaders())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Web.AllowOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization,X-Requested-With",
		AllowCredentials: true,
	}))
	app.Use(middleware.LoggingMiddleware())

	// Uploaded images are served read-only from the uploads directory.
	app.Static(cfg.Uploads.PublicPath, cfg.Uploads.Dir)

	webApp := &handlers.WebApp{
		Config:  cfg,
		DB:      db,
		Repos:   repos,
		Images:  images,
		Version: version,
	}

	handlers.RegisterRoutes(app, webApp)

	address := fmt.Sprintf("%s:%d", cfg.Web.Host, cfg.Web.Port)
	logger.LogSystem("Starting backend server", slog.String("address", address))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := app.Listen(address); err != nil {
			logger.LogError("Failed to start server", err)
		}
	}()

	<-c
	logger.LogSystem("Shutting down backend server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.LogError("Server shutdown error", err)
	}

	db.Close()

	logger.LogSystem("Backend server shutdown complete")
}
