package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/or-harmony/internal/config"
	dbpkg "github.com/BruksfildServices01/or-harmony/internal/db"
	domain "github.com/BruksfildServices01/or-harmony/internal/domain/scheduling"
	"github.com/BruksfildServices01/or-harmony/internal/events"
	"github.com/BruksfildServices01/or-harmony/internal/infra/memstore"
	"github.com/BruksfildServices01/or-harmony/internal/infra/repository"
	"github.com/BruksfildServices01/or-harmony/internal/infra/slotlock"
	"github.com/BruksfildServices01/or-harmony/internal/infra/storage"
	"github.com/BruksfildServices01/or-harmony/internal/logger"
	"github.com/BruksfildServices01/or-harmony/internal/routes"
	ucDirectory "github.com/BruksfildServices01/or-harmony/internal/usecase/directory"
)

func main() {

	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ======================================================
	// STORE
	// ======================================================
	var repo domain.Repository
	switch cfg.StoreDriver {
	case config.DriverMemory:
		zlog.Warn("using in-memory store, data is lost on restart")
		repo = memstore.New()
	case config.DriverPostgres:
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			zlog.Fatal("failed to open database", zap.Error(err))
		}
		repo = repository.NewSchedulingGormRepository(db)
	default:
		zlog.Fatal("unknown STORE_DRIVER", zap.String("driver", cfg.StoreDriver))
	}

	// ======================================================
	// OPTIONAL INFRA
	// ======================================================
	var locker slotlock.Locker = slotlock.Noop{}
	if cfg.SlotLockEnabled() {
		client, err := slotlock.Connect(ctx, cfg.RedisURL)
		if err != nil {
			zlog.Fatal("failed to connect redis", zap.Error(err))
		}
		defer client.Close()
		locker = slotlock.NewRedisLocker(client, cfg.SlotLockTTL)
		zlog.Info("slot lock enabled", zap.Duration("ttl", cfg.SlotLockTTL))
	}

	var avatars ucDirectory.ObjectStore
	if cfg.AvatarsEnabled() {
		avatars = storage.NewS3Store(storage.S3Config{
			Bucket:        cfg.S3Bucket,
			Region:        cfg.S3Region,
			Endpoint:      cfg.S3Endpoint,
			PublicBaseURL: cfg.S3PublicBaseURL,
			AccessKey:     cfg.AWSAccessKey,
			SecretKey:     cfg.AWSSecretKey,
		})
		zlog.Info("avatar storage enabled", zap.String("bucket", cfg.S3Bucket))
	}

	dispatcher := events.NewDispatcher(zlog.Named("events"))
	defer dispatcher.Close()

	// ======================================================
	// HTTP
	// ======================================================
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Config:     cfg,
		Log:        zlog,
		Repo:       repo,
		Locker:     locker,
		Avatars:    avatars,
		Dispatcher: dispatcher,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zlog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("graceful shutdown failed", zap.Error(err))
	}
}
