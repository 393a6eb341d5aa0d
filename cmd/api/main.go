package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	coreport "github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/usecase"
	assetUseCase "github.com/amirhossein-jamali/exchange-ledger/internal/domain/usecase/asset"
	requestUseCase "github.com/amirhossein-jamali/exchange-ledger/internal/domain/usecase/request"
	statsUseCase "github.com/amirhossein-jamali/exchange-ledger/internal/domain/usecase/stats"
	tradingUseCase "github.com/amirhossein-jamali/exchange-ledger/internal/domain/usecase/trading"
	userUseCase "github.com/amirhossein-jamali/exchange-ledger/internal/domain/usecase/user"

	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/auth"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/correlation"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/notifier"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/scheduler"
	timeProvider "github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger, err := logger.NewZapLogger(cfg.Logger.Format == "json", cfg.Logger.Level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Exchange ledger stopped with error", map[string]any{
			"error": err.Error(),
		})
		_ = appLogger.Flush()
		os.Exit(1)
	}

	appLogger.Info("Server exited gracefully", nil)
}

func run(cfg *config.Config, appLogger coreport.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database and bring the schema up to date
	dbManager := database.NewManager(database.FromAppConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		return err
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Error("Failed to close database", map[string]any{"error": err.Error()})
		}
	}()

	if err := dbManager.Migrate(ctx); err != nil {
		return err
	}

	// Notifier
	var eventNotifier coreport.Notifier = notifier.NewLogNotifier(appLogger)
	if cfg.Notifier.Enabled {
		redisNotifier, err := notifier.NewRedisNotifier(ctx, notifier.RedisConfig{
			Addr:     cfg.Notifier.Addr,
			Password: cfg.Notifier.Password,
			DB:       cfg.Notifier.DB,
			Channel:  cfg.Notifier.Channel,
		}, appLogger)
		if err != nil {
			return err
		}
		defer func() { _ = redisNotifier.Close() }()
		eventNotifier = redisNotifier
	}

	// Unit of work, authorization and correlation codes
	uow := dbManager.CreateUnitOfWork()
	userRepo := repository.NewUserRepository(dbManager.DB(), tp, appLogger)
	authorizer := auth.NewAdminAuthorizer(userRepo, cfg.Admin.UserIDs, cfg.Admin.Email, cfg.Admin.CacheTTL, appLogger)
	codes := correlation.NewTimestampGenerator(tp)

	// Initialize use cases
	users := userUseCase.NewUserUseCase(userRepo, tp, appLogger, cfg.Exchange.SignupBonusAmount())
	trading := tradingUseCase.NewTradingService(uow, codes, eventNotifier, tp, appLogger, cfg.Exchange.CorrelationRetries)
	requests := requestUseCase.NewRequestService(uow, authorizer, codes, eventNotifier, tp, appLogger, requestUseCase.Config{
		MinAmount:              cfg.Exchange.MinRequest(),
		MaxAmount:              cfg.Exchange.MaxRequest(),
		AllowWithdrawOverdraft: cfg.Exchange.AllowWithdrawOverdraft,
		CorrelationRetries:     cfg.Exchange.CorrelationRetries,
	})
	assets := assetUseCase.NewAssetService(uow, authorizer, tp, appLogger, cfg.Exchange.PriceHistoryDays)
	stats := statsUseCase.NewStatsService(dbManager.StatsRepository(), authorizer, tp, appLogger)

	// Seed the demo catalog
	if cfg.Exchange.SeedDemoAssets {
		seedDemoAssets(ctx, cfg, assets, appLogger)
	}

	// Initialize API handlers
	if err := middleware.RegisterValidators(); err != nil {
		return err
	}
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp)
	routes.SetupRoutes(router, routes.Handlers{
		User:    handler.NewUserHandler(users, appLogger),
		Trading: handler.NewTradingHandler(trading, appLogger),
		Request: handler.NewRequestHandler(requests, appLogger),
		Asset:   handler.NewAssetHandler(assets, appLogger),
		Stats:   handler.NewStatsHandler(stats, dbManager.HealthCheck, appLogger),
	}, authorizer, appLogger)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Background jobs
	jobs := scheduler.NewScheduler(appLogger, tp)
	if err := jobs.AddJob(scheduler.PendingDigestJob, cfg.Scheduler.PendingDigestSpec,
		scheduler.NewPendingDigestJob(requests, eventNotifier, tp)); err != nil {
		return err
	}
	if err := jobs.AddJob(scheduler.PoolReportJob, cfg.Scheduler.PoolReportSpec,
		scheduler.NewPoolReportJob(dbManager.PoolMonitor().Report)); err != nil {
		return err
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		return jobs.Run(groupCtx)
	})

	group.Go(func() error {
		<-groupCtx.Done()
		appLogger.Info("Shutting down server...", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			appLogger.Error("Server forced to shutdown", map[string]any{
				"error": err.Error(),
			})
		}
		return nil
	})

	runErr := group.Wait()

	// No handler is running any more, so nothing can resolve a request while
	// the sweep runs
	sweepCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if _, err := requests.SweepCancel(sweepCtx); err != nil {
		appLogger.Error("Failed to cancel pending requests on shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	return runErr
}

// seedDemoAssets lists the demo catalog on behalf of the first configured administrator
func seedDemoAssets(ctx context.Context, cfg *config.Config, assets usecase.AssetUseCase, appLogger coreport.Logger) {
	if len(cfg.Admin.UserIDs) == 0 {
		appLogger.Warn("Skipping demo assets: no administrator id configured", nil)
		return
	}

	created, err := migration.CreateDefaultAssets(ctx, assets, cfg.Admin.UserIDs[0])
	if err != nil {
		appLogger.Error("Failed to create default assets", map[string]any{
			"error": err.Error(),
		})
		return
	}

	appLogger.Info("Demo assets ready", map[string]any{"created": created})
}
