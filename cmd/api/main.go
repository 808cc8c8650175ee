package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"apoorvcs/resume-matcher/internal/config"
	"apoorvcs/resume-matcher/internal/handlers"
	"apoorvcs/resume-matcher/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize the key phrase extractor
	extractor, err := newExtractor(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize %s extractor: %v", cfg.Extractor.Provider, err)
	}
	log.Printf("✅ Key phrase extractor initialized (%s)\n", cfg.Extractor.Provider)

	// Initialize services
	chunker := services.NewTextChunker()
	phraseService := services.NewPhraseService(
		extractor,
		chunker,
		cfg.Extractor.LanguageCode,
		cfg.Matcher.MaxChunkChars,
		cfg.Matcher.MaxPhraseWords,
	)
	matcherService := services.NewMatcherService(
		phraseService,
		cfg.Matcher.TopMatches,
		cfg.Matcher.CoverageThreshold,
		cfg.Matcher.MaxPhrases,
	)
	log.Println("✅ Matcher service initialized")

	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	documentParser := services.NewDocumentParserService()
	log.Println("✅ Services initialized successfully")

	// Initialize Handlers
	matchHandler := handlers.NewMatchHandler(matcherService)
	uploadMatchHandler := handlers.NewUploadMatchHandler(
		storageService,
		documentParser,
		matcherService,
		cfg.Storage.MaxFileSize,
	)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Matcher API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
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
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/match", matchHandler.HandleMatch)
	api.Post("/match/upload", uploadMatchHandler.HandleUploadMatch)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Matcher API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/match",
				"POST /api/v1/match/upload",
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

func newExtractor(cfg *config.Config) (services.KeyPhraseExtractor, error) {
	switch cfg.Extractor.Provider {
	case "comprehend":
		opts := []func(*awsconfig.LoadOptions) error{
			awsconfig.WithRegion(cfg.AWS.Region),
		}
		if cfg.AWS.AccessKey != "" && cfg.AWS.SecretKey != "" {
			opts = append(opts, awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(cfg.AWS.AccessKey, cfg.AWS.SecretKey, ""),
			))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		return services.NewComprehendExtractor(awsCfg), nil
	case "gemini":
		return services.NewGeminiExtractor(cfg.Gemini.APIKey)
	default:
		return nil, fmt.Errorf("unknown extractor provider: %s", cfg.Extractor.Provider)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
