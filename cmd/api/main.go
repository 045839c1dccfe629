// @title Pet Daycare API
// @version 1.0
// @description Customers, mascotas, empleados y schedules de la guardería.
// @BasePath /
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	mongostore "pet-daycare/internal/adapters/storage/mongo"
	pg "pet-daycare/internal/adapters/storage/postgres"
	"pet-daycare/internal/platform/config"
	"pet-daycare/internal/platform/logger"
	"pet-daycare/internal/platform/metrics"
	"pet-daycare/internal/router"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	// .env es opcional (dev); en prod todo viene del entorno.
	envErr := godotenv.Load()

	cfg := config.Load()
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
	if envErr != nil && !errors.Is(envErr, os.ErrNotExist) {
		log.Warn("could not load .env", map[string]any{"err": envErr})
	}

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", map[string]any{"err": err})
		os.Exit(1)
	}
}

func run(cfg config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := router.Options{
		Logger:                       log,
		CustomerPetRefs:              cfg.CustomerPetRefs,
		ScheduleRefs:                 cfg.ScheduleRefs,
		ScheduleRequireSkillCoverage: cfg.ScheduleRequireSkillCoverage,
		CORSAllowedOrigins:           cfg.CORSAllowedOrigins,
		SwaggerEnabled:               cfg.SwaggerEnabled,
	}
	if cfg.MetricsEnabled {
		opts.Metrics = metrics.New(strings.ReplaceAll(cfg.AppName, "-", "_"))
	}

	switch {
	case cfg.DBDSN != "":
		db, err := openPostgres(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer db.Close()
		opts.DB = db

	case cfg.MongoURI != "":
		client, mdb, err := openMongo(ctx, cfg)
		if err != nil {
			return err
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		opts.MongoClient = client
		opts.MongoDB = mdb
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", map[string]any{"timeout": cfg.ShutdownTimeout.String()})
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openPostgres(ctx context.Context, cfg config.Config, log logger.Logger) (*sql.DB, error) {
	db, err := pg.Open(cfg.DBDSN)
	if err != nil {
		return nil, err
	}
	if cfg.DBMigrate {
		if err := pg.Migrate(ctx, db, log); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	return db, nil
}

func openMongo(ctx context.Context, cfg config.Config) (*mongo.Client, *mongo.Database, error) {
	client, mdb, err := mongostore.Open(mongostore.Config{URI: cfg.MongoURI, Database: cfg.MongoDatabase})
	if err != nil {
		return nil, nil, err
	}
	if err := mongostore.EnsureIndexes(ctx, mdb); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}
	return client, mdb, nil
}
