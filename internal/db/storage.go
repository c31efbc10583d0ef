package rewards

import (
	"context"
	"fmt"
	"strings"

	config "github.com/glkeru/rewards/internal/config"
	interf "github.com/glkeru/rewards/internal/interfaces"
	model "github.com/glkeru/rewards/internal/models"
	"go.uber.org/zap"
)

// Хранилища сервиса по REWARDS_STORAGE
type Storage struct {
	Ledger      interf.LedgerStorage
	Payments    interf.PaymentStorage
	Completions interf.CompletionStorage
	Catalog     interf.CatalogStorage
	close       func(ctx context.Context) error
}

func (s *Storage) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

func OpenStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Storage, error) {
	switch cfg.Storage {
	case config.StorageMongo:
		mongo, err := NewMongo(cfg.Mongo, cfg.MongoDB)
		if err != nil {
			return nil, err
		}
		err = mongo.EnsureIndexes(ctx)
		if err != nil {
			mongo.Close(ctx)
			return nil, err
		}
		return &Storage{
			Ledger:      NewBalancesDB(mongo.DB, logger),
			Payments:    NewPaymentsDB(mongo.DB, logger),
			Completions: NewCompletionsDB(mongo.DB, logger),
			Catalog:     NewCatalogDB(mongo.DB, logger),
			close:       mongo.Close,
		}, nil
	case config.StoragePostgres:
		pg, err := NewPostgresDB(ctx, cfg.PostgresDSN, logger)
		if err != nil {
			return nil, err
		}
		err = pg.Migrate(ctx)
		if err != nil {
			pg.Close()
			return nil, err
		}
		return &Storage{
			Ledger:      pg,
			Payments:    pg,
			Completions: pg,
			Catalog:     pg,
			close: func(context.Context) error {
				pg.Close()
				return nil
			},
		}, nil
	case config.StorageMemory:
		logger.Warn("In-memory storage, balances are lost on restart")
		memory := NewMemoryDB()
		for key, tokens := range cfg.Catalog {
			source, id, ok := strings.Cut(key, "/")
			if !ok {
				return nil, fmt.Errorf("catalog key %q: want type/id", key)
			}
			memory.SetTokenValue(model.SourceType(source), id, tokens)
		}
		return &Storage{Ledger: memory, Payments: memory, Completions: memory, Catalog: memory}, nil
	}
	return nil, fmt.Errorf("unknown storage %q", cfg.Storage)
}

// Кэш балансов, если задан REWARDS_CACHE_URL
func OpenCache(cfg *config.Config, logger *zap.Logger) interf.CacheStorage {
	if cfg.CacheURL == "" {
		return nil
	}
	cache, err := NewCacheService(cfg.CacheURL, cfg.CacheUser, cfg.CachePwd)
	if err != nil {
		// без кэша сервис работает, балансы читаются из хранилища
		logger.Error("Cache is not available", zap.Error(err))
		return nil
	}
	return cache
}
