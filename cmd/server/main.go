package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"portfolioservice/internal/cache"
	"portfolioservice/internal/config"
	"portfolioservice/internal/data"
	"portfolioservice/internal/db"
	"portfolioservice/internal/events"
	"portfolioservice/internal/export"
	"portfolioservice/internal/handler"
	"portfolioservice/internal/health"
	"portfolioservice/internal/logging"
	"portfolioservice/internal/middleware"
	"portfolioservice/internal/policy"
	"portfolioservice/internal/service"
	"portfolioservice/internal/storage"
	"portfolioservice/internal/worker"
)

type portfolioRepo interface {
	service.IPortfolioRepo
	worker.ImageRefLister
}

type repositories struct {
	portfolios   portfolioRepo
	accounts     cache.AccountSource
	applications service.IApplicationRepo
	ping         health.PingFunc
	close        func()
}

func openRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	switch cfg.StorageDriver {
	case config.DriverMongo:
		client, database, err := db.NewMongo(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &repositories{
			portfolios:   data.NewMongoPortfolioRepository(database),
			accounts:     data.NewMongoAccountRepository(database),
			applications: data.NewMongoApplicationRepository(database),
			ping:         func(ctx context.Context) error { return client.Ping(ctx, readpref.Primary()) },
			close:        func() { _ = client.Disconnect(context.Background()) },
		}, nil
	default:
		pool, err := db.NewPostgres(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &repositories{
			portfolios:   data.NewPortfolioRepository(pool),
			accounts:     data.NewAccountRepository(pool),
			applications: data.NewApplicationRepository(pool),
			ping:         pool.Ping,
			close:        pool.Close,
		}, nil
	}
}

func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	if cfg.UploadBackend == config.BackendS3 {
		client, err := storage.NewS3Client(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return storage.NewS3Store(ctx, client, cfg.S3Bucket)
	}
	return storage.NewLocalStore(cfg.UploadDir)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.New()
	if err != nil {
		panic(fmt.Sprintf("cannot load config: %v", err))
	}

	zapLogger, err := logging.NewZap(cfg.Env)
	if err != nil {
		panic(fmt.Sprintf("cannot create logger: %v", err))
	}
	logger := logging.New(zapLogger)
	defer func() { _ = logger.Sync() }()

	ctx = logging.ContextWithLogger(ctx, logger)

	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, "cannot open database", zap.String("driver", cfg.StorageDriver), zap.Error(err))
	}
	defer repos.close()

	store, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, "cannot open attachment store", zap.String("backend", cfg.UploadBackend), zap.Error(err))
	}

	accounts := repos.accounts
	if cfg.RedisURL != "" {
		redisConn := redis.NewClient(&redis.Options{
			Addr: cfg.RedisURL,
		})
		defer func() { _ = redisConn.Close() }()
		accounts = cache.NewAccountDirectory(repos.accounts, cache.NewRedisCache(redisConn), cfg.AccountCacheTTL)
	}

	var eventSender interface {
		service.StatusEventSender
		Close() error
	} = events.NoopSender{}
	if len(cfg.KafkaBrokers) > 0 {
		eventSender = events.NewEventSender(cfg.KafkaBrokers, cfg.KafkaStatusTopic)
	}

	logo, err := export.LoadLogo(cfg.ExportLogoPath)
	if err != nil {
		logger.Fatal(ctx, "cannot load export logo", zap.String("path", cfg.ExportLogoPath), zap.Error(err))
	}
	exporter := export.NewExporter(store, logo, cfg.ExportTimeout)

	pol := policy.New(accounts, cfg.RestrictAssessorReads)
	portfolioService := service.NewPortfolioService(repos.portfolios, store, accounts, pol, eventSender, exporter, cfg.StrictTransitions)
	applicationService := service.NewApplicationService(repos.applications)
	userService := service.NewUserService(accounts)

	if cfg.SweepInterval > 0 {
		sweeper := worker.NewOrphanSweeper(repos.portfolios, store, logger, cfg.SweepInterval, cfg.SweepGrace)
		go sweeper.Start(ctx)
	}

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpc_middleware.ChainUnaryServer(
			logging.NewUnaryLoggingInterceptor(logger),
		)),
	)
	healthServer := grpchealth.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	go health.WatchStore(ctx, healthServer, cfg.StorageDriver, repos.ping)

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCHealthPort))
	if err != nil {
		logger.Fatal(ctx, "cannot create listener", zap.Error(err))
	}
	go func() {
		if err := grpcServer.Serve(listener); err != nil {
			logger.Error(ctx, "grpc health server stopped", zap.Error(err))
		}
	}()

	authMiddleware := middleware.NewAuthMiddleware([]byte(cfg.JWTSecret))
	r := chi.NewRouter()
	r.Use(middleware.NewLoggingMiddleware(logger))
	r.Use(func(next http.Handler) http.Handler {
		return http.MaxBytesHandler(next, cfg.MaxBodyBytes)
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/portfolios", func(r chi.Router) {
		handler.NewPortfolioHandler(portfolioService, cfg.UploadMaxFiles).RegisterRoutes(r, authMiddleware)
	})
	r.Route("/api/applications", func(r chi.Router) {
		handler.NewApplicationHandler(applicationService).RegisterRoutes(r, authMiddleware)
	})
	r.Route("/api/users", func(r chi.Router) {
		handler.NewUserHandler(userService).RegisterRoutes(r, authMiddleware)
	})

	port := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info(ctx, "Starting server", zap.String("port", port),
		zap.String("driver", cfg.StorageDriver), zap.String("uploads", cfg.UploadBackend))

	srv := &http.Server{
		Addr:              port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal(ctx, "cannot start http server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info(ctx, "Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "server forced to shutdown", zap.Error(err))
	}

	shutdownDone := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(shutdownDone)
	}()
	select {
	case <-shutdownDone:
	case <-shutdownCtx.Done():
		logger.Info(ctx, "GracefulStop timed out, forcing Stop")
		grpcServer.Stop()
	}

	if err := eventSender.Close(); err != nil {
		logger.Error(ctx, "failed to close event sender", zap.Error(err))
	}
	logger.Info(ctx, "Server stopped")
}
