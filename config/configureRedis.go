package config

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

func InitRedisServer(ctx context.Context) *redis.Client {
	db, _ := strconv.Atoi(GetEnvOr("REDIS_DB", "0"))

	client := redis.NewClient(&redis.Options{
		Addr:     GetEnvOr("REDIS_ADDRESS", "localhost:6379"),
		Password: GetEnv("REDIS_PASSWORD"),
		DB:       db,
	})

	_, err := client.Ping(ctx).Result()
	if err != nil {
		panic(err)
	}

	return client
}
