package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"frugal-friend/internal/coach/config"
	delivery "frugal-friend/internal/coach/delivery/http"
	_ "frugal-friend/internal/coach/docs"
	"frugal-friend/internal/coach/repository"
	"frugal-friend/internal/coach/service"
	"frugal-friend/internal/market"
	"frugal-friend/pkg/common"
	"frugal-friend/pkg/lock"
	"frugal-friend/pkg/logger"
	"frugal-friend/pkg/metrics"
	"frugal-friend/pkg/postgres"
	"frugal-friend/pkg/redis"
	"frugal-friend/pkg/telegram"
	"frugal-friend/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
	"google.golang.org/genai"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the coach service",
	Run:   runServe,
}

// repositories groups the storage backends used by the services.
type repositories struct {
	positions repository.PositionRepository
	activity  repository.ActivityRepository
	expenses  repository.ExpenseRepository
	incomes   repository.IncomeRepository
	users     repository.UserRepository
	sessions  repository.SimulatorSessionRepository
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Coach Service", logger.Field("name", cfg.App.Name), logger.Field("env", cfg.App.Env))

	loc := utils.LoadLocation(cfg.App.TimeZone)
	now := utils.NowIn(loc)
	oracle := market.NewOracle(market.WithNow(now))

	// Storage
	var repos repositories
	if cfg.Storage.InMemory {
		appLogger.Warn("Using in-memory storage, data is lost on restart")
		store := repository.NewMemoryStore()
		repos = repositories{
			positions: store.Positions(),
			activity:  store.Activity(),
			expenses:  store.Expenses(),
			incomes:   store.Incomes(),
			users:     store.Users(),
			sessions:  store.SimulatorSessions(),
		}
	} else {
		db, err := postgres.NewDB(postgres.Config{
			Host:            cfg.Database.Host,
			Port:            cfg.Database.Port,
			User:            cfg.Database.User,
			Password:        cfg.Database.Password,
			DBName:          cfg.Database.DBName,
			SSLMode:         cfg.Database.SSLMode,
			TimeZone:        cfg.Database.TimeZone,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
			LogLevel:        cfg.Database.LogLevel,
		})
		if err != nil {
			appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
		}
		if sqlDB, err := db.DB.DB(); err == nil {
			defer sqlDB.Close()
		}
		repos = repositories{
			positions: repository.NewPositionRepository(db.DB),
			activity:  repository.NewActivityRepository(db.DB),
			expenses:  repository.NewExpenseRepository(db.DB),
			incomes:   repository.NewIncomeRepository(db.DB),
			users:     repository.NewUserRepository(db.DB),
			sessions:  repository.NewSimulatorSessionRepository(db.DB),
		}
	}

	// Position and lesson locks
	var locker lock.Locker
	switch cfg.Lock.Driver {
	case "redis":
		redisClient, err := redis.NewClient(redis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
		}
		defer redisClient.Close()
		locker = lock.NewRedisLocker(redisClient.Client, appLogger, common.RedisLockPrefix, cfg.Lock.TTL, cfg.Lock.RetryInterval)
	case "memory":
		locker = lock.NewKeyedMutex()
	default:
		appLogger.Fatal("Unsupported lock driver", logger.StringField("driver", cfg.Lock.Driver))
	}

	// Text generation
	var generator repository.TextGenerator
	switch cfg.AI.Provider {
	case "gemini":
		genAiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.Gemini.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			appLogger.Fatal("Failed to initialize Gemini AI client", logger.ErrorField(err))
		}
		generator, err = repository.NewGeminiTextGenerator(cfg, appLogger, genAiClient)
		if err != nil {
			appLogger.Fatal("Failed to initialize Gemini text generator", logger.ErrorField(err))
		}
	case "openai":
		generator, err = repository.NewOpenAITextGenerator(cfg, appLogger, nil)
		if err != nil {
			appLogger.Fatal("Failed to initialize chat completions text generator", logger.ErrorField(err))
		}
	default:
		appLogger.Warn("No AI provider configured, coaching texts use their fallbacks", logger.StringField("provider", cfg.AI.Provider))
		generator = repository.NewDisabledTextGenerator()
	}

	notifier, err := telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	if err != nil {
		appLogger.Fatal("Failed to initialize Telegram client", logger.ErrorField(err))
	}

	// Services
	tradeSvc := service.NewTradeService(repos.positions, oracle, locker, generator, appLogger, cfg.AI.Timeout)
	portfolioSvc := service.NewPortfolioService(repos.positions, oracle, appLogger)
	marketSvc := service.NewMarketService(oracle)
	lessonSvc := service.NewLessonService(repos.users, repos.activity, repos.sessions, locker, notifier, loc, now, appLogger)
	activitySvc := service.NewActivityService(repos.expenses, repos.incomes, repos.activity, loc, now, appLogger)
	coachSvc := service.NewCoachService(repos.users, repos.expenses, generator, appLogger, cfg.AI.Timeout, cfg.Coach.SummaryCacheTTL)
	simulatorSvc := service.NewSimulatorService(repos.sessions, repos.users, generator, appLogger, cfg.AI.Timeout)
	userSvc := service.NewUserService(repos.users, appLogger)

	e := echo.New()
	e.HideBanner = true
	e.Use(metrics.Middleware())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok", "version": cfg.App.Version})
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/swagger/*", swagger.WrapHandler)

	apiV1 := e.Group("/api/v1")
	delivery.NewMarketHandler(marketSvc, appLogger).RegisterRoutes(apiV1.Group("/market"))

	userGroup := apiV1.Group("", delivery.RequireUser())
	delivery.NewTradeHandler(tradeSvc, portfolioSvc, appLogger).RegisterRoutes(userGroup)
	delivery.NewLessonHandler(lessonSvc, appLogger).RegisterRoutes(userGroup.Group("/lessons"))
	delivery.NewActivityHandler(activitySvc, appLogger).RegisterRoutes(userGroup)
	delivery.NewCoachHandler(coachSvc, simulatorSvc, appLogger).RegisterRoutes(userGroup)
	delivery.NewUserHandler(userSvc, appLogger).RegisterRoutes(userGroup)

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop()
		}
	}()

	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title Frugal Friend Coach API
// @version 1.0
// @description Paper trading ledger and progress gated financial coach.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "coach-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-coach.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing coach-service CLI: %s\n", err)
		os.Exit(1)
	}
}
