package middleware

import (
	"context"

	"dealership-backend/token"

	"github.com/redis/go-redis/v9"
)

// AppContext bundles the dependencies auth middleware needs
type AppContext struct {
	PasetoMaker token.Maker
	Ctx         context.Context
	RedisClient *redis.Client
}
