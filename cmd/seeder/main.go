package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"travel_catalog/internal/adapters/observability"
	"travel_catalog/internal/catalog"
	"travel_catalog/internal/domain"
	"travel_catalog/internal/shared"
	"travel_catalog/internal/storage/mysqlstore"
	"travel_catalog/internal/storage/redisstore"
)

// seeder writes the shipped seed collections into the snapshot store,
// one blob per collection. Running it resets any snapshot back to the
// seed data.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("backend", cfg.StoreBackend).
		Int("workers", cfg.SeedWorkers).
		Msg("seeder starting")

	store := openStore(ctx, cfg)
	if store == nil {
		log.Fatal().Msg("STORE_BACKEND=none: nothing to seed")
	}

	jobs := []struct {
		key  string
		data any
	}{
		{catalog.KeyTrips, catalog.SeedTrips()},
		{catalog.KeyHotels, catalog.SeedHotels()},
		{catalog.KeyAttractions, catalog.SeedAttractions()},
	}

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, job := range jobs {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(key string, data any) {
			defer wg.Done()
			defer sem.Release(1)

			if err := store.Save(ctx, key, data); err != nil {
				log.Warn().Str("key", key).Err(err).Msg("seed failed")
				return
			}
			log.Info().Str("key", key).Msg("seed ok")
		}(job.key, job.data)
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}

func openStore(ctx context.Context, cfg shared.Config) domain.SnapshotStore {
	switch cfg.StoreBackend {
	case "redis":
		st := redisstore.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err := st.Ping(ctx); err != nil {
			log.Fatal().Err(err).Msg("redis ping failed")
		}
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
		return st
	default:
		return nil
	}
}
