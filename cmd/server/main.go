package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"estate-search/internal/catalog"
	"estate-search/internal/config"
	"estate-search/internal/handler"
	"estate-search/internal/model"
	"estate-search/internal/repository"
	"estate-search/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	log.Printf("Estate Search Engine")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize catalog: normalize once at load time, before any query
	// can run.
	store := catalog.NewStore()
	normalizer := catalog.NewNormalizer()

	var repo *repository.PostgresRepository
	var reload service.ReloadFunc
	var logger service.SearchLogger

	switch cfg.Catalog.Source {
	case "postgres":
		repo, err = repository.NewPostgresRepository(
			cfg.GetPostgreSQLDSN(),
			cfg.PostgreSQL.MaxConnections,
			cfg.PostgreSQL.MaxIdleConnections,
		)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer repo.Close()

		raw, err := repo.LoadRawListings(context.Background())
		if err != nil {
			log.Fatalf("Failed to load catalog from database: %v", err)
		}
		store.Replace(normalizer.Normalize(raw))

		reload = repo.LoadRawListings
		logger = repo
		log.Printf("Loaded %d listings from PostgreSQL", store.Len())

	default:
		store.Replace(normalizer.Normalize(catalog.Seed()))
		reload = func(ctx context.Context) ([]model.RawListing, error) {
			return catalog.Seed(), nil
		}
		log.Printf("Loaded %d listings from built-in seed", store.Len())
	}

	if store.Len() == 0 {
		log.Fatalf("Catalog is empty after load; refusing to start")
	}

	// Initialize services
	intentParser := service.NewIntentParser(cfg.Intent.ImplicitBudgetCrores)
	ranker := service.NewRanker(
		service.Policy(cfg.Ranking.Policy),
		cfg.Ranking.WeightCity,
		cfg.Ranking.WeightType,
		cfg.Ranking.WeightKeyword,
		cfg.Ranking.WeightBudget,
	)
	searchService := service.NewSearchService(store, intentParser, ranker, reload, logger)
	log.Printf("Ranking policy: %s", ranker.Policy())

	// Initialize optional reply-phrasing collaborator
	var replyClient service.ReplyClient
	if cfg.Reply.Enabled {
		replyClient = service.NewOpenAIReplyClient(&cfg.Reply)
		log.Printf("Reply phrasing enabled (model: %s)", cfg.Reply.Model)
	} else {
		log.Println("Reply phrasing disabled - responses use local fallback phrasing")
		log.Println("Set REPLY_API_KEY environment variable to enable it")
	}

	// Initialize handlers
	searchHandler := handler.NewSearchHandler(searchService, replyClient, cfg.Search.DefaultTopK, cfg.Search.MaxTopK)
	catalogHandler := handler.NewCatalogHandler(searchService)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":   "healthy",
			"service":  "estate-search",
			"version":  Version,
			"listings": store.Len(),
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/search", searchHandler.Search)
		apiV1.GET("/listings/:id", searchHandler.GetListing)
		apiV1.POST("/catalog/reload", catalogHandler.Reload)
		apiV1.GET("/catalog/stats", catalogHandler.Stats)
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Starting server on %s", addr)

	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	log.Println("Server stopped")
}
