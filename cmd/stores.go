package cmd

import (
	"fmt"

	"citypulse/internal/redisclient"
	"citypulse/internal/service"
	"citypulse/internal/storage"
)

// newService builds the configured backend pair and injects it into the
// scoring service. The returned closer releases backend resources.
func newService() (*service.Service, func(), error) {
	cfg := GetConfig()
	switch cfg.Store.Backend {
	case "memory":
		return service.New(storage.NewMemoryNewsStore(), storage.NewMemoryCityScoreStore()), func() {}, nil
	case "redis":
		rdb := redisclient.New(cfg.Redis)
		svc := service.New(storage.NewRedisNewsStore(rdb), storage.NewRedisCityScoreStore(rdb))
		return svc, func() { _ = rdb.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
