// @title Consult Hub API
// @version 1.0
// @description Backend for the consult-hub site: AI assessments, merchandise catalog, carts and support tickets.
// @contact.name API Support
// @contact.email support@consult-hub.dev
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "consult-hub/cmd/api/docs"
	"consult-hub/internal/adapter"
	"consult-hub/internal/adapter/advisor"
	"consult-hub/internal/cache"
	"consult-hub/internal/config"
	"consult-hub/internal/content"
	"consult-hub/internal/database"
	"consult-hub/internal/domain"
	"consult-hub/internal/handler"
	"consult-hub/internal/logger"
	"consult-hub/internal/middleware"
	"consult-hub/internal/repository"
	"consult-hub/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	if cfg.Auth.JWTSecret == "" {
		appLogger.Fatal("JWT_SECRET must be set")
	}

	store, err := content.LoadEmbedded(context.Background(), content.Options{
		ThresholdOverride: cfg.Assessment.RecommendationThreshold,
	})
	if err != nil {
		appLogger.Fatal("Failed to load content", zap.Error(err))
	}

	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	ticketRepository := repository.NewSQLXTicketRepository(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	var narrator domain.Advisor
	if cfg.Advisor.Enabled {
		ollamaHTTPClient := &http.Client{Timeout: cfg.Advisor.Timeout + 5*time.Second}
		llm, err := ollama.New(
			ollama.WithServerURL(cfg.Advisor.ServerURL),
			ollama.WithModel(cfg.Advisor.Model),
			ollama.WithHTTPClient(ollamaHTTPClient),
		)
		if err != nil {
			appLogger.Fatal("Failed to create LLM client", zap.Error(err))
		}
		narrator = advisor.NewLLMAdvisor(llm, cfg.Advisor.Timeout)
		appLogger.Info("Advisor enabled", zap.String("server_url", cfg.Advisor.ServerURL), zap.String("model", cfg.Advisor.Model))
	}

	assessmentService := service.NewAssessmentService(store, cacheAdapter, cfg.Session.TTL, narrator)
	catalogService := service.NewCatalogService(store)
	cartService := service.NewCartService(store, cacheAdapter, cfg.Session.TTL)
	supportService := service.NewSupportService(ticketRepository, txManager, cfg.Support.SubmitDelay)

	tokens := middleware.NewTokenValidator(cfg.Auth.JWTSecret, cfg.Auth.Issuer)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization,X-Request-ID",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	handler.RegisterRoutes(app, handler.Handlers{
		Assessment: handler.NewAssessmentHandler(assessmentService),
		Catalog:    handler.NewCatalogHandler(catalogService),
		Cart:       handler.NewCartHandler(cartService),
		Support:    handler.NewSupportHandler(supportService),
		Health:     handler.NewHealthHandler(cacheAdapter, db),
	}, tokens)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
