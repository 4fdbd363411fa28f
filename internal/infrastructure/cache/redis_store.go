package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-requisites-service/internal/config"
	"github.com/LavaJover/shvark-requisites-service/internal/domain"
	"github.com/LavaJover/shvark-requisites-service/internal/infrastructure/storage"
	"github.com/go-redis/redis/v8"
)

func MustInitRedis(cfg *config.RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect to redis", "addr", client.Options().Addr, "error", err.Error())
		panic(err)
	}
	return client
}

// LocalStore keeps the slot under a single redis key.
type LocalStore struct {
	client *redis.Client
	key    string
}

func NewLocalStore(client *redis.Client, key string) *LocalStore {
	if key == "" {
		key = storage.DefaultSlot
	}
	return &LocalStore{client: client, key: key}
}

func (s *LocalStore) Load(ctx context.Context) ([]domain.Requisite, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []domain.Requisite{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", s.key, err)
	}
	return storage.DecodeSlot(raw), nil
}

func (s *LocalStore) Save(ctx context.Context, list []domain.Requisite) error {
	raw, err := storage.EncodeSlot(list)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.key, err)
	}
	return nil
}
