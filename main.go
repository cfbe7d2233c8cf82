package main

import (
	"fmt"
	"os"

	"github.com/agromercado/agromercado-backend/app/controllers"
	"github.com/agromercado/agromercado-backend/pkg/config"
	"github.com/agromercado/agromercado-backend/pkg/database"
	"github.com/agromercado/agromercado-backend/pkg/middleware"
	"github.com/agromercado/agromercado-backend/pkg/routes"
	"github.com/agromercado/agromercado-backend/pkg/storage"
	"github.com/agromercado/agromercado-backend/pkg/verify"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	if cfg.Env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if err := database.RunMigrations(cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	if _, err := database.InitDB(cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to the database")
	}
	defer database.CloseDB()

	if err := middleware.InitRedis(cfg); err != nil {
		log.Warn().Err(err).Msg("redis not available, rate limiting disabled")
	}

	controllers.Verifier = verify.NewClient(cfg)
	controllers.Store = storage.NewDiskStore(cfg.StoragePath, cfg.StorageBaseURL)

	app := fiber.New(fiber.Config{
		BodyLimit: 8 << 20,
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Static("/uploads", cfg.StoragePath)

	routes.RegisterUserRoutes(app)
	routes.RegisterUbigeoRoutes(app)
	routes.RegisterSupplyRoutes(app)
	routes.RegisterPublicationRoutes(app)
	routes.RegisterOrderRoutes(app)
	routes.RegisterAdvertisementRoutes(app)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info().Str("addr", addr).Msg("server starting")
	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
