package main

import (
	"context"
	"strconv"

	"dealership-backend/analytics"
	"dealership-backend/config"
	"dealership-backend/internal/bootstrap"
	"dealership-backend/middleware"
	"dealership-backend/seeds"
	"dealership-backend/token"
	"dealership-backend/utils"
	"dealership-backend/websocket"

	bookings_routes "dealership-backend/bookings/routes"
	costing_routes "dealership-backend/costing/routes"
	documents_routes "dealership-backend/documents/routes"
	leads_repositories "dealership-backend/leads/repositories"
	leads_routes "dealership-backend/leads/routes"
	leads_services "dealership-backend/leads/services"
	leads_tasks "dealership-backend/leads/tasks"
	products_repositories "dealership-backend/products/repositories"
	products_routes "dealership-backend/products/routes"
	quotations_routes "dealership-backend/quotations/routes"
	search_controllers "dealership-backend/search/controllers"
	search_repositories "dealership-backend/search/repositories"
	search_routes "dealership-backend/search/routes"
	search_services "dealership-backend/search/services"
	users_repositories "dealership-backend/users/repositories"
	users_routes "dealership-backend/users/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	config.InitLogger()

	if err := godotenv.Load(".env"); err != nil {
		config.Logger.Warn("No .env file found, relying on process environment")
	}

	app := fiber.New()
	middleware.InitCors(app)

	db := config.ConfigureDatabase()
	port := config.GetEnvOr("PORT", "8080")
	ctx := context.Background()

	redisClient := config.InitRedisServer(ctx)

	redisDB, _ := strconv.Atoi(config.GetEnvOr("REDIS_DB", "0"))
	asynqRedisOpt := asynq.RedisClientOpt{
		Addr:     config.GetEnvOr("REDIS_ADDRESS", "localhost:6379"),
		Password: config.GetEnv("REDIS_PASSWORD"),
		DB:       redisDB,
	}

	asynqClient := asynq.NewClient(asynqRedisOpt)
	defer asynqClient.Close()

	tokenMaker, err := token.NewPasetoMaker(config.GetEnv("TOKEN_SYMMETRIC_KEY"))
	if err != nil {
		config.Logger.Fatal("Cannot create token maker", zap.Error(err))
	}

	appCtx := &middleware.AppContext{
		PasetoMaker: tokenMaker,
		Ctx:         ctx,
		RedisClient: redisClient,
	}

	// Realtime hub: assignment pushes and pipeline board refreshes.
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Outbound channels
	mailer := utils.NewMailer()
	smsSender := utils.NewSMSSender()
	whatsappSender := utils.NewWhatsAppSender()
	fileStorage := utils.NewLocalFileStorage("./uploads")

	// Static assets: generated exports/quotations and uploaded media.
	app.Static("/public", "./public")
	app.Static("/uploads", "./uploads")

	// Repositories and domain services
	leadRepo := leads_repositories.NewLeadRepository(db)
	userRepo := users_repositories.NewUserRepository(db)
	productRepo := products_repositories.NewProductRepository(db)

	indexPath := config.GetEnvOr("SEARCH_INDEX_PATH", "./search_data")
	indexingService := search_services.NewIndexingService(config.Logger, indexPath)
	searchRepo := search_repositories.NewSearchRepository(indexingService)

	lifecycle := leads_services.NewLifecycleService(leadRepo, userRepo, wsHub)

	// Request analytics
	visitCounter := analytics.NewVisitCounter(redisClient, ctx)
	app.Use(visitCounter.Middleware())

	// Routes
	users_routes.UserRouterInit(app, db, mailer, appCtx)
	leads_routes.LeadRouterInit(app, db, lifecycle, leadRepo, searchRepo, mailer, smsSender, appCtx)
	costing_routes.CostingRouterInit(app, db, leadRepo, asynqClient, appCtx)
	quotations_routes.QuotationRouterInit(app, db, leadRepo, lifecycle, mailer, whatsappSender, appCtx)
	products_routes.ProductRouterInit(app, db, searchRepo, appCtx)
	bookings_routes.BookingRouterInit(app, db, smsSender, wsHub, appCtx)
	documents_routes.DocumentRouterInit(app, db, fileStorage, appCtx)

	searchController := search_controllers.NewSearchController(searchRepo)
	search_routes.SearchRouterInit(app, searchController, appCtx)

	visitCounter.RouterInit(app, middleware.ProtectedRoute(appCtx))

	wsHandler := websocket.NewWsHandler(wsHub, tokenMaker)
	app.Get("/ws", wsHandler.HandleWebSocket)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":     "ok",
			"ws_clients": wsHub.GetClientCount(),
		})
	})

	// Asynq worker: consumes costing-finalized events and drives the
	// C2 -> C3 lead transition.
	asynqServer := asynq.NewServer(asynqRedisOpt, asynq.Config{Concurrency: 5})
	mux := asynq.NewServeMux()
	mux.Handle(leads_tasks.TypeCostingFinalized, leads_tasks.NewCostingFinalizedHandler(lifecycle))
	go func() {
		if err := asynqServer.Run(mux); err != nil {
			config.Logger.Fatal("Asynq server failed", zap.Error(err))
		}
	}()

	// Cron: export cleanup, OTP sweeps and the stuck-lead reconcile.
	go utils.RunScheduledJobs(redisClient, func() {
		leads_tasks.ReconcileStuckLeads(leadRepo, asynqClient)
	})

	// Rebuild search indexes from the database.
	go bootstrap.IndexSearchData(leadRepo, productRepo, searchRepo)

	if err := seeds.SeedAll(db); err != nil {
		config.Logger.Error("Database seeding failed", zap.Error(err))
	}

	config.Logger.Info("Server starting", zap.String("port", port))
	config.Logger.Fatal("Server failed", zap.Error(app.Listen(":"+port)))
}
