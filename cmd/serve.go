package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"task-match-service.com/task-match-service/internal/auth"
	"task-match-service.com/task-match-service/internal/cache"
	config "task-match-service.com/task-match-service/internal/configs"
	httpapi "task-match-service.com/task-match-service/internal/http"
	repository "task-match-service.com/task-match-service/internal/repositories"
	"task-match-service.com/task-match-service/internal/scoring"
	"task-match-service.com/task-match-service/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task matching HTTP API: lifecycle operations and personalized recommendations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		database := config.NewDatabaseClient(cfg.DatabaseDSN)

		redisClient := config.NewRedisClient(cfg.RedisAddr)
		defer redisClient.Close()

		rankCache := cache.NewRedisRankCache(redisClient, cfg.RedisPoolGenKey, cfg.RedisRankKeyPrefix)

		taskRepo := repository.NewTaskRepository(database)
		userRepo := repository.NewUserRepository(database)
		propertyRepo := repository.NewPropertyRepository(database)
		behaviorRepo := repository.NewBehaviorRepository(database)

		tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)

		ranker := scoring.NewRanker(
			cfg.RankWeights,
			cfg.RankNormalization,
			time.Duration(cfg.FreshnessHalfLifeHours)*time.Hour,
		)

		lifecycle := services.NewLifecycleService(taskRepo, rankCache, cfg.AllowDeactivateApproved)
		recommendations := services.NewRecommendationService(
			taskRepo,
			propertyRepo,
			behaviorRepo,
			ranker,
			rankCache,
			time.Duration(cfg.RankCacheTTLSeconds)*time.Second,
			cfg.DefaultRecommendLimit,
			cfg.MaxRecommendLimit,
		)
		users := services.NewUserService(userRepo, tokens)
		properties := services.NewPropertyService(propertyRepo, behaviorRepo, taskRepo, rankCache)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := echo.New()
		httpapi.Register(
			e,
			httpapi.NewTaskHandler(lifecycle, recommendations),
			httpapi.NewUserHandler(users),
			httpapi.NewPropertyHandler(properties),
			tokens,
			cfg.RateLimit,
		)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
