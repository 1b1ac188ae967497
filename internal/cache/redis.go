package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// redisNewClient builds the redis client; tests can override this variable.
var redisNewClient = func(opt *redis.Options) Cache {
	return redis.NewClient(opt)
}

// NewRedisClient dials Redis and verifies the connection with a ping.
func NewRedisClient(addr string, password string, db int) (Cache, error) {
	client := redisNewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return client, nil
}
