package main

import (
	"context"
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "travel_catalog/internal/adapters/http_server"
	"travel_catalog/internal/adapters/observability"
	"travel_catalog/internal/catalog"
	"travel_catalog/internal/domain"
	"travel_catalog/internal/shared"
	"travel_catalog/internal/storage/mysqlstore"
	"travel_catalog/internal/storage/redisstore"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	store := openStore(ctx, cfg)

	svc, err := catalog.New(ctx, store)
	if err != nil {
		log.Fatal().Err(err).Msg("catalog init failed")
	}

	srv := server.New(cfg.RateRPS)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Catalog: svc})

	log.Info().Str("addr", cfg.HTTPAddr).Str("store", cfg.StoreBackend).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

// openStore returns nil for the "none" backend; the catalog then serves
// seed data only.
func openStore(ctx context.Context, cfg shared.Config) domain.SnapshotStore {
	switch cfg.StoreBackend {
	case "redis":
		st := redisstore.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err := st.Ping(ctx); err != nil {
			log.Fatal().Err(err).Msg("redis ping failed")
		}
		log.Info().Msg("redis connection ok")
		return st
	case "mysql":
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		st := mysqlstore.New(db)
		if err := st.Init(ctx); err != nil {
			log.Fatal().Err(err).Msg("snapshots table init failed")
		}
		log.Info().Msg("database connection ok")
		return st
	default:
		return nil
	}
}
