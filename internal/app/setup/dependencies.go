package setup

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/LavaJover/shvark-requisites-service/internal/config"
	"github.com/LavaJover/shvark-requisites-service/internal/domain"
	"github.com/LavaJover/shvark-requisites-service/internal/infrastructure/cache"
	publisher "github.com/LavaJover/shvark-requisites-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-requisites-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-requisites-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-requisites-service/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-requisites-service/internal/infrastructure/postgres/repository"
	"github.com/LavaJover/shvark-requisites-service/internal/infrastructure/seed"
	"github.com/LavaJover/shvark-requisites-service/internal/infrastructure/storage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Dependencies struct {
	Config    *config.RequisitesConfig
	Logger    *slog.Logger
	Catalog   *seed.Catalog
	Store     domain.LocalEditStore
	Publisher *publisher.KafkaPublisher
	Registry  *prometheus.Registry
	Metrics   *metrics.RequisiteMetrics

	closers []io.Closer
}

func InitializeDependencies(cfg *config.RequisitesConfig) (*Dependencies, error) {
	log, logCloser, err := logger.New(cfg.LogConfig)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	slog.SetDefault(log)

	catalog, err := seed.Load()
	if err != nil {
		return nil, fmt.Errorf("seed catalog: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	deps := &Dependencies{
		Config:   cfg,
		Logger:   log,
		Catalog:  catalog,
		Registry: registry,
		Metrics:  metrics.NewRequisiteMetrics(registry),
		closers:  []io.Closer{logCloser},
	}

	deps.Store, err = deps.initStore()
	if err != nil {
		deps.Close()
		return nil, fmt.Errorf("local store: %w", err)
	}

	if cfg.KafkaService.Enabled() {
		brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
		deps.Publisher = publisher.NewKafkaPublisher(brokers, cfg.KafkaService.Topic)
		deps.closers = append(deps.closers, deps.Publisher)
		log.Info("requisite events enabled", "brokers", brokers, "topic", cfg.KafkaService.Topic)
	}

	return deps, nil
}

func (d *Dependencies) initStore() (domain.LocalEditStore, error) {
	cfg := d.Config
	d.Logger.Info("initializing local edit store", "driver", cfg.Storage.Driver, "slot", cfg.Storage.Slot)

	switch cfg.Storage.Driver {
	case config.StorageMemory:
		return storage.NewMemoryStore(), nil
	case config.StorageFile:
		return storage.NewFileStore(cfg.Storage.FilePath), nil
	case config.StorageRedis:
		client := cache.MustInitRedis(&cfg.RedisConfig)
		d.closers = append(d.closers, client)
		return cache.NewLocalStore(client, cfg.Storage.Slot), nil
	case config.StoragePostgres:
		db := postgres.MustInitDB(cfg)
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		d.closers = append(d.closers, sqlDB)
		return repository.NewDefaultLocalSlotRepo(db, cfg.Storage.Slot), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

// Close releases resources in reverse order of acquisition.
func (d *Dependencies) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i].Close(); err != nil {
			slog.Error("failed to close dependency", "error", err.Error())
		}
	}
}
