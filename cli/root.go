// Package cli implements the newsdesk commands.
package cli

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"newsdesk-api/core/ingest"
	"newsdesk-api/core/interfaces"
	"newsdesk-api/core/saved"
	"newsdesk-api/infrastructure/cache/memory"
	"newsdesk-api/infrastructure/cache/redis"
	feedfetcher "newsdesk-api/infrastructure/fetcher/gofeed"
	stdhttp "newsdesk-api/infrastructure/http/standard"
	logrusadapter "newsdesk-api/infrastructure/logger/logrus"
	"newsdesk-api/infrastructure/storage/jsonfile"
	"newsdesk-api/pkg/config"
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "newsdesk",
	Short: "Categorized feed aggregation and triage",
	Long:  "Aggregates RSS/Atom feeds per category, flags trending items and keeps a relevance-ranked list of saved news.",
}

func init() {
	RootCmd.AddCommand(serveCmd)
	RootCmd.AddCommand(refreshCmd)
}

// app bundles everything the commands need.
type app struct {
	cfg         *config.Config
	logger      interfaces.Logger
	deps        interfaces.Dependencies
	savedStore  interfaces.ItemStore
	recentStore interfaces.ItemStore
	ingest      *ingest.Service
	saved       *saved.Service
}

// buildApp loads configuration and wires all components.
func buildApp() (*app, error) {
	// .env is optional; system environment still applies without it
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logrusadapter.NewLogger(cfg.Log.Level, cfg.Log.File)

	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to connect to Redis, falling back to memory cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
				"error":   err.Error(),
			})
			cache = newMemoryCache(cfg)
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{"address": cfg.Cache.Redis.Address})
		}
	default:
		cache = newMemoryCache(cfg)
	}

	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)
	fetcher := feedfetcher.NewFetcher(httpClient, cache, logger)

	deps := interfaces.Dependencies{
		Cache:   cache,
		Fetcher: fetcher,
		Logger:  logger,
	}

	savedStore := jsonfile.NewStore(cfg.Storage.SavedPath(), logger)
	recentStore := jsonfile.NewStore(cfg.Storage.RecentPath(), logger)

	return &app{
		cfg:         cfg,
		logger:      logger,
		deps:        deps,
		savedStore:  savedStore,
		recentStore: recentStore,
		ingest:      ingest.NewService(deps, cfg.Categories, savedStore, recentStore),
		saved:       saved.NewService(savedStore, recentStore, cfg.Categories.DefaultCategory, logger),
	}, nil
}

func newMemoryCache(cfg *config.Config) interfaces.Cache {
	ttl := time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second
	return memory.NewMemoryCache(ttl, 2*ttl)
}
