package app

import (
	"fmt"

	"github.com/yungbote/storefront-backend/internal/clients/catalog"
	"github.com/yungbote/storefront-backend/internal/clients/redis"
	"github.com/yungbote/storefront-backend/internal/db"
	"github.com/yungbote/storefront-backend/internal/kv"
	"github.com/yungbote/storefront-backend/internal/pkg/logger"
)

type Clients struct {
	Store   kv.Store
	Catalog catalog.Client
}

// wireClients picks the snapshot store backend and builds the catalog client.
// The returned cleanup releases whatever connection the chosen backend holds.
func wireClients(log *logger.Logger, cfg Config) (Clients, func(), error) {
	log.Info("Wiring clients...", "store_backend", cfg.StoreBackend)

	cleanup := func() {}

	var store kv.Store
	switch cfg.StoreBackend {
	case "redis":
		s, err := redis.NewKVStore(log)
		if err != nil {
			return Clients{}, nil, fmt.Errorf("init redis store: %w", err)
		}
		store = s
		cleanup = func() { _ = s.Close() }
	case "postgres":
		svc, err := db.NewPostgresService(log)
		if err != nil {
			return Clients{}, nil, fmt.Errorf("init postgres store: %w", err)
		}
		if err := svc.AutoMigrateAll(); err != nil {
			_ = svc.Close()
			return Clients{}, nil, fmt.Errorf("postgres automigrate: %w", err)
		}
		store = kv.NewGormStore(svc.DB(), log)
		cleanup = func() { _ = svc.Close() }
	case "sqlite":
		svc, err := db.NewSQLiteService(log)
		if err != nil {
			return Clients{}, nil, fmt.Errorf("init sqlite store: %w", err)
		}
		if err := svc.AutoMigrateAll(); err != nil {
			_ = svc.Close()
			return Clients{}, nil, fmt.Errorf("sqlite automigrate: %w", err)
		}
		store = kv.NewGormStore(svc.DB(), log)
		cleanup = func() { _ = svc.Close() }
	case "memory":
		log.Warn("Using in-memory store, snapshots will not survive a restart")
		store = kv.NewMemoryStore()
	default:
		return Clients{}, nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	catalogClient, err := catalog.NewClient(log)
	if err != nil {
		cleanup()
		return Clients{}, nil, fmt.Errorf("init catalog client: %w", err)
	}

	return Clients{
		Store:   store,
		Catalog: catalogClient,
	}, cleanup, nil
}
