package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"shop_backend/config"
	"shop_backend/database"
	"shop_backend/handlers"
	"shop_backend/middleware"
	"shop_backend/pkg/logger"
	"shop_backend/repositories"
	"shop_backend/services"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	logger.Init(cfg.Debug)

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	if err := config.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("Failed to migrate database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to get database handle")
	}
	defer sqlDB.Close()

	app := fiber.New(fiber.Config{
		AppName: cfg.AppName,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Default 500 statuscode
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"

			// Retrieve the custom statuscode if it's a *fiber.Error
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}

			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": msg,
			})
		},
	})

	middleware.SetupMiddleware(app, cfg)

	// Product images are served read-only from the static directory
	app.Static("/static", cfg.StaticDir)

	categoryRepo := repositories.NewCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)

	categoryHandler := handlers.NewCategoryHandler(services.NewCategoryService(categoryRepo))
	productHandler := handlers.NewProductHandler(services.NewProductService(productRepo, categoryRepo))
	cartHandler := handlers.NewCartHandler(services.NewCartService(productRepo))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Welcome to " + cfg.AppName})
	})

	// Health Check Endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
		})
	})

	api := app.Group("/api")

	categories := api.Group("/categories")
	categories.Get("/", categoryHandler.GetCategories)
	categories.Get("/slug/:slug", categoryHandler.GetCategoryBySlug)
	categories.Get("/:id", categoryHandler.GetCategory)
	categories.Post("/", categoryHandler.CreateCategory)

	products := api.Group("/products")
	products.Get("/", productHandler.GetProducts)
	products.Get("/category/:id", productHandler.GetProductsByCategory)
	products.Get("/:id", productHandler.GetProduct)
	products.Post("/", productHandler.CreateProduct)

	cart := api.Group("/cart")
	cart.Post("/add", cartHandler.AddToCart)
	cart.Post("/", cartHandler.GetCart)
	cart.Put("/update", cartHandler.UpdateCartItem)
	cart.Delete("/remove/:product_id", cartHandler.RemoveFromCart)

	logger.Info().Msgf("🚀 Server starting on host %s in port %s", cfg.Host, cfg.AppPort)

	if err := app.Listen(cfg.Host + ":" + cfg.AppPort); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start server")
	}
}
