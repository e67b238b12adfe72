package configs

import (
	"github.com/go-redis/redis/v8"
)

func ConnectRedis(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: addr,
	})
}
