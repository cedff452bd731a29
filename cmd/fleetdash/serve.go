package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"fleetdash/config"
	"fleetdash/engine"
	"fleetdash/fleet"
	"fleetdash/livestate"
	"fleetdash/logging"
	"fleetdash/messaging"
	"fleetdash/store"
	"fleetdash/www"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard web server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	zl, level, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer zl.Sync()
	log := zl.Sugar()

	if _, err := maxprocs.Set(maxprocs.Logger(log.Infof)); err != nil {
		log.Warnf("fleetdash: maxprocs: %v", err)
	}

	// Fleet source
	db, catalog := openCatalog(cfg, log)
	if db != nil {
		defer db.Close()
	}

	// Redis
	var redisStore *livestate.RedisStore
	if cfg.Redis.Enabled {
		redisStore = livestate.NewRedisStore(cfg.Redis)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisStore.Ping(ctx); err != nil {
			log.Warnf("fleetdash: redis not available (%v), mirroring starts once it answers", err)
		} else {
			log.Infof("fleetdash: redis connected (%s)", cfg.Redis.Address)
		}
		cancel()
		defer redisStore.Close()
	}

	// Messaging client
	msgClient := messaging.NewClient(&cfg.Messaging, log)
	if cfg.Messaging.Backend != "" {
		if err := msgClient.Connect(); err != nil {
			log.Warnf("fleetdash: messaging connect failed (%v)", err)
		} else {
			log.Infof("fleetdash: messaging connected (%s)", cfg.Messaging.Backend)
		}
	}
	defer msgClient.Close()

	// Engine
	eng := engine.New(engine.Config{
		AppConfig:  cfg,
		ConfigPath: configPath,
		Catalog:    catalog,
		DB:         db,
		Redis:      redisStore,
		MsgClient:  msgClient,
		LogLevel:   &level,
		Logger:     log,
	})
	eng.Start()
	defer eng.Stop()

	// Web server
	handler, stopWeb, err := www.NewRouter(eng)
	if err != nil {
		return fmt.Errorf("web: %w", err)
	}
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infof("fleetdash: web server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("web server: %w", err)
		}
		return nil
	})

	if _, err := os.Stat(configPath); err == nil {
		watcher, err := config.NewWatcher(configPath, log, eng.ApplyConfig)
		if err != nil {
			log.Warnf("fleetdash: %v", err)
		} else {
			g.Go(func() error {
				watcher.Run(ctx)
				return nil
			})
		}
	}

	g.Go(func() error {
		<-ctx.Done()
		log.Infof("fleetdash: shutting down...")
		stopWeb()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	log.Infof("fleetdash: ready")
	err = g.Wait()
	log.Infof("fleetdash: stopped")
	return err
}

// openCatalog returns the configured SQL store, seeded with the default
// dataset, or nil and an in-memory catalog when the driver is memory or the
// database cannot be opened.
func openCatalog(cfg *config.Config, log *zap.SugaredLogger) (*store.DB, *fleet.Catalog) {
	if cfg.Database.Driver == "memory" {
		return nil, fleet.NewCatalog(fleet.NewMemorySource(nil))
	}
	db, err := store.Open(&cfg.Database)
	if err != nil {
		log.Warnf("fleetdash: open database: %v, serving the built-in dataset", err)
		return nil, fleet.NewCatalog(fleet.NewMemorySource(nil))
	}
	if err := db.Seed(fleet.Default()); err != nil {
		log.Warnf("fleetdash: seed database: %v, serving the built-in dataset", err)
		db.Close()
		return nil, fleet.NewCatalog(fleet.NewMemorySource(nil))
	}
	log.Infof("fleetdash: database open (%s)", cfg.Database.Driver)
	return db, fleet.NewCatalog(db)
}
