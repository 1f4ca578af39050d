package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"lead-scoring-backend/internal/config"
	"lead-scoring-backend/internal/handlers"
	"lead-scoring-backend/internal/repositories"
	"lead-scoring-backend/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize repositories
	offerRepo, leadRepo, resultRepo, err := buildRepositories(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize storage: %v", err)
	}
	log.Printf("✅ Repositories initialized (%s store)\n", cfg.Store.Driver)

	// Initialize AI provider
	aiClient, err := services.NewAIClient(cfg.AI)
	if err != nil {
		log.Fatalf("❌ Failed to initialize AI provider: %v", err)
	}
	log.Printf("✅ AI provider initialized (%s)\n", cfg.AI.Provider)

	// Initialize scoring pipeline
	ruleEngine := services.NewRuleEngine(cfg.Scoring)
	classifier := services.NewIntentClassifier(aiClient, cfg.Scoring)
	pacer := services.NewFixedDelayPacer(cfg.Scoring.RequestDelay)
	scorer := services.NewScoringService(ruleEngine, classifier, pacer, cfg.Scoring)
	log.Println("✅ Scoring pipeline initialized")

	// Initialize handlers
	offerHandler := handlers.NewOfferHandler(offerRepo)
	leadsHandler := handlers.NewLeadsHandler(leadRepo, cfg.Upload.MaxFileSize)
	scoringHandler := handlers.NewScoringHandler(offerRepo, leadRepo, resultRepo, scorer)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Lead Intent Scoring API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Upload.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success":   true,
			"message":   "Server is running",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Offer endpoints
	api.Post("/offer", offerHandler.HandleCreateOffer)
	api.Get("/offer", offerHandler.HandleGetOffer)

	// Leads endpoints
	api.Post("/leads/upload", leadsHandler.HandleUploadLeads)
	api.Get("/leads", leadsHandler.HandleGetLeads)

	// Scoring endpoints
	api.Post("/score", scoringHandler.HandleScoreLeads)
	api.Get("/results", scoringHandler.HandleGetResults)
	api.Get("/results/export", scoringHandler.HandleExportResults)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Lead Intent Scoring API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/offer",
				"GET /api/offer",
				"POST /api/leads/upload",
				"GET /api/leads",
				"POST /api/score",
				"GET /api/results",
				"GET /api/results/export",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func buildRepositories(cfg *config.Config) (
	repositories.OfferRepository,
	repositories.LeadRepository,
	repositories.ResultRepository,
	error,
) {
	if cfg.Store.Driver == "postgres" {
		db, err := config.InitDatabase(cfg)
		if err != nil {
			return nil, nil, nil, err
		}
		return repositories.NewPostgresOfferRepository(db),
			repositories.NewPostgresLeadRepository(db),
			repositories.NewPostgresResultRepository(db),
			nil
	}

	return repositories.NewMemoryOfferRepository(),
		repositories.NewMemoryLeadRepository(),
		repositories.NewMemoryResultRepository(),
		nil
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}
