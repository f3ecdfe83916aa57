package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

var Rdb *redis.Client

func Init(addr string) {
	Rdb = redis.NewClient(&redis.Options{
		Addr: addr,
	})
}

func Set(key string, value string) error {
	return Rdb.Set(context.Background(), key, value, 0).Err()
}

func Get(key string) (string, error) {
	return Rdb.Get(context.Background(), key).Result()
}

// ClaimOnce sets key with a TTL if it does not exist yet. Returns true when
// the claim succeeded, false when the key is still cooling down.
func ClaimOnce(key string, ttl time.Duration) (bool, error) {
	return Rdb.SetNX(context.Background(), key, "1", ttl).Result()
}
