package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"vitaverse/database"
	"vitaverse/docs"
	"vitaverse/internal/cache"
	"vitaverse/internal/chain"
	"vitaverse/internal/config"
	"vitaverse/internal/controllers"
	"vitaverse/internal/logger"
	"vitaverse/internal/middleware"
	"vitaverse/internal/notify"
	"vitaverse/internal/repository"
	"vitaverse/internal/services"
	"vitaverse/routes"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
)

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer session token from /wallet/connect
func main() {
	cfg, err := config.Load(".env", "../.env")
	if err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Swagger Documentation
	docs.SwaggerInfo.Title = "VitaVerse API"
	docs.SwaggerInfo.Description = "Health tracking, leaderboard and badge API backed by the VitaVerse contract."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	db, err := database.ConnectDatabase(cfg.DSN())
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.MigrateDatabase(db); err != nil {
		logrus.Fatalf("Failed to run database migrations: %v", err)
	}
	database.MonitorDBConnections(ctx, db)

	eventRepo := repository.NewContractEventRepository(db)
	submissionRepo := repository.NewHealthSubmissionRepository(db)
	purchaseRepo := repository.NewBadgePurchaseRepository(db)

	wallet, err := chain.NewKeyedWallet(cfg.PrivateKeys, cfg.ChainID)
	if err != nil {
		logrus.Fatalf("Failed to load wallet keys: %v", err)
	}
	if len(wallet.Accounts()) == 0 {
		logrus.Warn("No wallet keys configured, writes will be rejected")
	}

	dialCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
	client, err := chain.Dial(dialCtx, chain.EthereumConfig{
		RPCURL:          cfg.RPCURL,
		ChainID:         cfg.ChainID,
		ContractAddress: cfg.ContractAddress,
		TokenAddress:    cfg.TokenAddress,
		CallTimeout:     cfg.CallTimeout,
	}, wallet)
	cancel()
	if err != nil {
		logrus.Fatalf("Failed to connect to RPC node: %v", err)
	}
	defer client.Close()

	var (
		snapshotStore services.SnapshotStore
		cacheStatus   controllers.CacheStatusReporter
	)
	if cfg.RedisURL != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logrus.WithError(err).Warn("Redis unavailable, leaderboard snapshots are kept in memory only")
		} else {
			defer redisClient.Close()
			snapshotStore = redisClient
			cacheStatus = redisClient
		}
	}

	var publisher notify.Publisher = notify.NoopPublisher{}
	if cfg.RabbitMQURL != "" {
		rabbit, err := notify.NewRabbitPublisher(cfg.RabbitMQURL, notify.DefaultExchange)
		if err != nil {
			logrus.WithError(err).Warn("RabbitMQ unavailable, contract events will not be published")
		} else {
			defer rabbit.Close()
			publisher = rabbit
		}
	}

	leaderboardService := services.NewLeaderboardService(client, snapshotStore, services.LeaderboardOptions{
		Source:      cfg.LeaderboardSource,
		TopLimit:    cfg.TopUsersLimit,
		TTL:         cfg.SnapshotTTL,
		Concurrency: cfg.FetchConcurrency,
	})
	badgeService := services.NewBadgeService(client, client, purchaseRepo, leaderboardService, cfg.BadgeCount, cfg.TokenDecimals)
	dashboardService := services.NewDashboardService(client, client, badgeService, leaderboardService, cfg.TokenDecimals)
	healthService := services.NewHealthService(client, submissionRepo, dashboardService, leaderboardService)
	platformService := services.NewPlatformService(eventRepo, badgeService, leaderboardService)

	var indexerStatus controllers.StatusReporter
	if cfg.IndexerEnabled {
		indexer := services.NewEventIndexer(client, eventRepo, publisher, leaderboardService, services.IndexerOptions{
			Interval:   cfg.IndexerInterval,
			StartBlock: cfg.IndexerStartBlock,
			BatchSize:  cfg.IndexerBatchSize,
		})
		indexer.Start()
		defer indexer.Stop()
		indexerStatus = indexer
	}

	// Initialize controllers
	walletController := controllers.NewWalletController(wallet, cfg.JWTSecret, cfg.SessionTTL)
	dashboardController := controllers.NewDashboardController(dashboardService)
	healthController := controllers.NewHealthController(healthService)
	badgeController := controllers.NewBadgeController(badgeService)
	leaderboardController := controllers.NewLeaderboardController(leaderboardService)
	platformController := controllers.NewPlatformController(platformService)
	livenessController := controllers.NewLivenessController(indexerStatus, leaderboardService, cacheStatus, func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	})

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":  "VitaVerse API is running",
			"version":  "1.0.0",
			"status":   "healthy",
			"contract": client.ContractAddress().Hex(),
			"source":   cfg.LeaderboardSource,
		})
	})

	routes.RegisterWalletRoutes(router, walletController)
	routes.RegisterDashboardRoutes(router, dashboardController, cfg.JWTSecret)
	routes.RegisterHealthRoutes(router, healthController, livenessController, cfg.JWTSecret)
	routes.RegisterBadgeRoutes(router, badgeController, cfg.JWTSecret)
	routes.RegisterLeaderboardRoutes(router, leaderboardController)
	routes.RegisterPlatformRoutes(router, platformController)
	routes.RegisterSwaggerRoutes(router)

	handler := cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	})(router)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        handler,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   90 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		logrus.WithFields(logrus.Fields{
			"port":     cfg.Port,
			"swagger":  "http://localhost:" + cfg.Port + "/swagger/index.html",
			"liveness": "http://localhost:" + cfg.Port + "/health/live",
			"cpus":     runtime.NumCPU(),
		}).Info("VitaVerse API server started")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server shutdown failed")
	}
}
