package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hedamo/transparency_api/internal/cache"
	"github.com/hedamo/transparency_api/internal/config"
	"github.com/hedamo/transparency_api/internal/database"
	"github.com/hedamo/transparency_api/internal/handler"
	"github.com/hedamo/transparency_api/internal/middleware"
	"github.com/hedamo/transparency_api/internal/report"
	"github.com/hedamo/transparency_api/internal/repository"
	"github.com/hedamo/transparency_api/internal/service"
	"github.com/hedamo/transparency_api/pkg/insight"
)

// main is the application entrypoint for the Product Transparency API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting transparency api")

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 3b. Connect to Redis. The question cache is an optimization; the
	// service stays up without it.
	var questionCache *cache.QuestionCache
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("redis connection failed - question caching disabled")
	} else {
		defer redisClient.Close()
		questionCache = cache.NewQuestionCache(redisClient, cfg.Report.QuestionCacheTTL)
		log.Info().Msg("redis connected successfully")
	}

	// 4. Initialize the insight AI service client
	insightClient := insight.NewClient(cfg.Insight.BaseURL, cfg.Insight.APIKey, cfg.Insight.Timeout)

	// 5. Initialize repositories
	productRepo := repository.NewProductRepository(db)

	// 6. Initialize services
	scoreSvc := service.NewScoreService(insightClient)
	questionSvc := service.NewQuestionService(insightClient, questionCache)
	productSvc := service.NewProductService(productRepo, scoreSvc)
	exporter := report.NewExporter(&cfg.Report)

	// 7. Initialize handlers
	handlers := &Handlers{
		Health:   handler.NewHealthHandler(insightClient),
		Product:  handler.NewProductHandler(productSvc),
		Question: handler.NewQuestionHandler(questionSvc),
		Report:   handler.NewReportHandler(productSvc, exporter),
	}

	// 8. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers)

	// 9. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 10. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 11. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health   *handler.HealthHandler
	Product  *handler.ProductHandler
	Question *handler.QuestionHandler
	Report   *handler.ReportHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers) {
	router.GET("/v1/health", handlers.Health.GetHealth)

	v1 := router.Group("/v1")
	{
		v1.POST("/questions/generate", handlers.Question.GenerateQuestions)

		v1.POST("/products", handlers.Product.CreateProduct)
		v1.GET("/products", handlers.Product.ListProducts)
		v1.GET("/products/:id", handlers.Product.GetProduct)
		v1.GET("/products/:id/report", handlers.Report.GetProductReport)

		v1.POST("/reports/pdf", handlers.Report.CreateReport)
	}
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	// Run migrations
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
