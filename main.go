package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"deliwer-loyalty-system/handlers"
	"deliwer-loyalty-system/middleware"
	"deliwer-loyalty-system/services"
	"deliwer-loyalty-system/storage"
	"deliwer-loyalty-system/utils"
	"deliwer-loyalty-system/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB — banner uploads are the largest bodies we take
	})

	// 🔐 GLOBAL: all traffic comes through the Gateway
	app.Use(middleware.GatewayAuthMiddleware())

	allowedOriginsEnv := os.Getenv("ALLOWED_ORIGINS")
	if allowedOriginsEnv == "" {
		log.Println("⚠️  ALLOWED_ORIGINS environment variable not set, using default: http://localhost:3000")
		allowedOriginsEnv = "http://localhost:3000"
	}
	allowedOriginsList := strings.Split(allowedOriginsEnv, ",")
	for i, origin := range allowedOriginsList {
		allowedOriginsList[i] = strings.TrimSpace(origin)
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(allowedOriginsList, ","),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH,HEAD",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With, X-Request-ID, X-Service-Token, X-Shop-Domain",
		ExposeHeaders:    "Content-Length, Content-Type, X-Request-ID",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	if err := utils.InitMediaStore(); err != nil {
		log.Fatal("failed to initialize media store:", err)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := storage.AutoMigrate(db); err != nil {
		log.Fatal("failed to migrate database:", err)
	}
	if err := storage.SeedBadgeTypes(db); err != nil {
		log.Fatal("failed to seed badge types:", err)
	}

	stores := storage.NewStores(db)

	sessionSecret := os.Getenv("ADMIN_SESSION_SECRET")
	if sessionSecret == "" {
		log.Fatal("ADMIN_SESSION_SECRET environment variable not set")
	}
	sendgridKey := os.Getenv("SENDGRID_API_KEY")
	if sendgridKey == "" {
		log.Fatal("SENDGRID_API_KEY environment variable not set")
	}
	shopifyToken := os.Getenv("SHOPIFY_ACCESS_TOKEN")
	if shopifyToken == "" {
		log.Fatal("SHOPIFY_ACCESS_TOKEN environment variable not set")
	}
	shopDomain := os.Getenv("SHOPIFY_SHOP_DOMAIN")
	if shopDomain == "" {
		log.Fatal("SHOPIFY_SHOP_DOMAIN environment variable not set")
	}

	identityProvider := services.NewJWTIdentityProvider(sessionSecret, stores.Admins)
	accessService := services.NewAccessService(identityProvider, stores.Audit)
	heroService := services.NewHeroService(stores.Heroes, stores.Challenges, stores.Rewards)
	directory := services.NewShopifyDirectory(shopifyToken)
	mailer := services.NewSendGridMailer(sendgridKey)
	campaignService := services.NewCampaignService(stores.Campaigns, stores.Segments, directory, mailer)
	adminService := services.NewAdminService(stores.Admins)
	kitService := services.NewKitService(stores.Kits, services.NewCheckoutBuilder(shopDomain))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	refreshClient := workers.NewSegmentRefreshClient(stores.Segments, directory)
	go workers.PollSegments(ctx, refreshClient, 15*time.Minute)

	campaignService.StartDispatchScheduler()

	handlers.SetupTradeRoutes(app, heroService)
	handlers.SetupHeroRoutes(app, heroService, stores.Challenges, stores.Rewards)
	handlers.SetupKitRoutes(app, kitService)
	handlers.SetupAdminRoutes(app, accessService, campaignService, adminService)

	go func() {
		if err := app.Listen(":5300"); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Println("✅ Server running on http://localhost:5300")
	log.Println("✅ Campaign dispatch scheduler running (every 1m)")
	log.Println("✅ Segment refresh worker running (every 15m)")
	log.Println("✅ GatewayAuthMiddleware enforced globally")

	<-ctx.Done()
	log.Println("Shutting down server...")
}
