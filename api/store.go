package main

import (
	"context"
	"fmt"

	"github.com/rogerio-castellano/inventory-form/internal/config"
	"github.com/rogerio-castellano/inventory-form/internal/db"
	"github.com/rogerio-castellano/inventory-form/internal/redissvc"
	"github.com/rogerio-castellano/inventory-form/internal/repo"
)

// openStore opens the product store selected by cfg.Store.Driver. The returned
// func releases the underlying connection.
func openStore(ctx context.Context, cfg *config.Config) (repo.ProductRepository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Store.Driver {
	case config.DriverMemory:
		return repo.NewInMemoryProductRepository(), noop, nil
	case config.DriverSQLite:
		database, err := db.OpenSQLite(cfg.Store.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite store: %w", err)
		}
		return repo.NewSQLiteProductRepository(database, cfg.Store.Timeout), database.Close, nil
	case config.DriverPostgres:
		database, err := db.Connect(ctx, cfg.Store.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to postgres: %w", err)
		}
		return repo.NewPostgresProductRepository(database, cfg.Store.Timeout), database.Close, nil
	case config.DriverRedis:
		rdb, err := redissvc.Connect(ctx, redissvc.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis: %w", err)
		}
		return repo.NewRedisProductRepository(rdb, cfg.Redis.Prefix, cfg.Store.Timeout), rdb.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
