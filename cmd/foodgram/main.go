package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"foodgram/internal/foodgram/adapters/cache"
	httpServer "foodgram/internal/foodgram/adapters/http"
	"foodgram/internal/foodgram/adapters/http/respond"
	"foodgram/internal/foodgram/adapters/postgres"
	"foodgram/internal/foodgram/adapters/services"
	"foodgram/internal/foodgram/app"
	"foodgram/internal/foodgram/config"
	"foodgram/internal/foodgram/db"
	domain "foodgram/internal/foodgram/domain/services"
	"foodgram/pkg/db/redis"
	"foodgram/pkg/logger"
	"foodgram/pkg/ratelimit"
	"foodgram/pkg/resilience"
	"foodgram/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvConfigPath  = "FOODGRAM_CONFIG_PATH"
	EnvLoggerMode  = "FOODGRAM_LOGGER_MODE"
	EnvLoggerLevel = "FOODGRAM_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitDatabase         = "failed to initialize database"
	ErrCreateRedisClient    = "failed to create Redis client"
	ErrStartHTTPServer      = "failed to start HTTP server"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "foodgram service started"
	LogServiceShutdownDone = "foodgram service shutdown complete"
	LogStoppingHTTP        = "stopping HTTP server"
	LogInitDatabase        = "initializing database"
	LogInitCache           = "initializing cache"
	LogInitServices        = "initializing services"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx, os.Getenv(EnvConfigPath))
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitDatabase)
		database, err := db.New(ctx, &cfg.Postgres)
		if err != nil {
			log.Error(ctx, ErrInitDatabase, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitCache)
		redisClient, err := redis.NewClient(ctx, cfg.Redis.ClientConfig())
		if err != nil {
			log.Error(ctx, ErrCreateRedisClient, zap.Error(err))
			database.Close(ctx)
			exitCode = 1
			return
		}
		redisCache := cache.NewRedisCache(redisClient.RawClient(), cfg.Redis.DefaultTTL)
		catalogCache := cache.NewGuardedCache(redisCache,
			resilience.NewCircuitBreaker("catalog_cache", cfg.Redis.BreakerConfig()))

		log.Info(ctx, LogInitServices)
		repos := postgres.NewRepositoryFactory(database.Pool())
		svcs := services.NewServiceFactory(cfg.JWT.SecretKey, cfg.JWT.GetAccessTokenTTL(), cfg.JWT.BCryptCost)

		validator := domain.NewCompositionValidator(repos.IngredientRepository(), repos.TagRepository())
		aggregator := domain.NewShoppingListAggregator(repos.MembershipRepository())

		useCases := httpServer.UseCases{
			Auth:  app.NewAuthUseCase(repos.UserRepository(), svcs.PasswordService(), svcs.TokenService(), redisCache),
			Users: app.NewUserUseCase(repos.UserRepository(), svcs.PasswordService()),
			Subscriptions: app.NewSubscriptionUseCase(
				repos.UserRepository(), repos.SubscriptionRepository(), repos.RecipeRepository()),
			Recipes:      app.NewRecipeUseCase(repos.RecipeRepository(), validator),
			Memberships:  app.NewMembershipUseCase(repos.RecipeRepository(), repos.MembershipRepository()),
			ShoppingList: app.NewShoppingListUseCase(repos.UserRepository(), aggregator),
			Catalog: app.NewCatalogUseCase(
				repos.TagRepository(), repos.IngredientRepository(), catalogCache, cfg.Redis.DefaultTTL),
		}

		log.Info(ctx, LogInitHTTPServer)
		server := fiber.New(fiber.Config{
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
			BodyLimit:    cfg.HTTP.BodyLimit,
		})

		loginLimiter := ratelimit.New(cfg.RateLimit.LoginRPS, cfg.RateLimit.LoginBurst, cfg.RateLimit.IdleTTL)

		httpServer.SetupRouter(server, useCases, httpServer.RouterConfig{
			Logger: log,
			Pagination: respond.Pagination{
				DefaultLimit: cfg.Pagination.DefaultLimit,
				MaxLimit:     cfg.Pagination.MaxLimit,
				PublicURL:    cfg.HTTP.GetPublicURL(),
			},
			LoginLimiter: loginLimiter,
		})

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := server.Listen(cfg.HTTP.GetAddress()); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		shutdown.Wait(ctx, cfg.Shutdown.GetTimeout(),
			// Остановка HTTP сервера.
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				return server.Shutdown()
			},
			func(context.Context) error {
				loginLimiter.Stop()
				return nil
			},
			// Закрытие Redis соединения.
			func(ctx context.Context) error {
				log.Info(ctx, "Closing Redis connection")
				return redisClient.Close()
			},
			func(ctx context.Context) error {
				log.Info(ctx, "Closing database connection")
				database.Close(ctx)
				return nil
			},
		)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
