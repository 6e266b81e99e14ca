package controllers

import (
	"context"

	"dealership-backend/token"
	users_repositories "dealership-backend/users/repositories"
	users_services "dealership-backend/users/services"
	"dealership-backend/utils"

	"github.com/redis/go-redis/v9"
)

// UserController handles account CRUD and the two-step login flow.
type UserController struct {
	UserRepo    users_repositories.UserRepository
	PasetoMaker token.Maker
	OtpService  users_services.OtpService
	Mailer      *utils.Mailer
	Ctx         context.Context
	RedisClient *redis.Client
}
