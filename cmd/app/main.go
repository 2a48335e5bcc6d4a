package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"farmquest_backend/internal/api"
	"farmquest_backend/internal/service"
	"farmquest_backend/internal/storage"
	"farmquest_backend/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	err = logger.Initialize(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zapLogger := logger.Logger()

	store, err := newStore(cfg)
	if err != nil {
		zapLogger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer store.Close()

	svc := service.NewService(store)

	router := gin.New()
	router.Use(gin.Recovery())

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{
		http.MethodHead,
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
	}
	config.AllowHeaders = []string{"*"}
	config.AllowCredentials = true
	config.MaxAge = 12 * time.Hour

	router.Use(cors.New(config))

	a := router.Group("/api")
	api.NewDashboardRoutes(a, svc.DashboardService, cfg.App.DefaultUserID)
	api.NewUserRoutes(a, svc.UserService)
	api.NewLessonRoutes(a, svc.LessonService)
	api.NewChallengeRoutes(a, svc.ChallengeService, cfg.App.DefaultUserID)
	api.NewRewardRoutes(a, svc.RewardService, cfg.App.DefaultUserID)
	api.NewMarketRoutes(a, svc.MarketService)
	api.NewAlertRoutes(a, svc.AlertService)
	api.NewLeaderboardRoutes(a, svc.UserService)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	zapLogger.Info("Starting server", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		zapLogger.Fatal("Failed to start server", zap.Error(err))
	}
}

func newStore(cfg *Config) (storage.Store, error) {
	switch cfg.Storage.Driver {
	case driverPostgres:
		store, err := storage.NewPostgres(cfg.Storage.Postgres)
		if err != nil {
			return nil, err
		}
		return store, nil
	case driverMemory:
		store, err := storage.NewMemory()
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
