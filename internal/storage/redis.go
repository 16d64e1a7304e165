package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	Client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{Client: client}
}

func (r *RedisStore) snapshotKey(key string) string {
	return "snapshot:" + key
}

func (r *RedisStore) Load(ctx context.Context, key string) ([]byte, error) {
	blob, err := r.Client.Get(ctx, r.snapshotKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, err
	}
	return blob, nil
}

func (r *RedisStore) Save(ctx context.Context, key string, payload []byte) error {
	return r.Client.Set(ctx, r.snapshotKey(key), payload, 0).Err()
}

var _ SnapshotStore = (*RedisStore)(nil)
