package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tawsil-app/ops-dashboard/internal/auth"
	"github.com/tawsil-app/ops-dashboard/internal/config"
	"github.com/tawsil-app/ops-dashboard/internal/db"
	"github.com/tawsil-app/ops-dashboard/internal/http/ban"
	"github.com/tawsil-app/ops-dashboard/internal/http/handlers"
	mw "github.com/tawsil-app/ops-dashboard/internal/http/middleware"
	rl "github.com/tawsil-app/ops-dashboard/internal/http/rate_limiter"
	"github.com/tawsil-app/ops-dashboard/internal/http/router"
	"github.com/tawsil-app/ops-dashboard/internal/redissvc"
	"github.com/tawsil-app/ops-dashboard/internal/repo"
)

var ctx = context.Background()

// @title Tawsil Ops Dashboard API
// @version 1.0
// @description REST API for the delivery-operations admin dashboard.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Could not load configuration: %v", err)
	}

	auth.SetSecret(cfg.JWTSecret)
	ban.SetConfig(cfg)
	rl.Configure(cfg.RateLimitPerSecond, cfg.RateLimitBurst)

	go auth.StartRefreshTokenCleaner(30 * time.Minute)
	go ban.StartDailyBanSummary(time.Hour * 24)
	go rl.StartVisitorCleanupLoop()

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	defer rdb.Close()

	redisService := redissvc.NewRedisService(rdb, ctx)
	ban.SetRedisService(redisService)
	mw.SetRedisService(redisService)

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Could not connect to database:", err)
	}
	defer database.Close()

	handlers.SetOrderRepo(repo.NewPostgresOrderRepository(database))
	handlers.SetCaptainRepo(repo.NewPostgresCaptainRepository(database))
	handlers.SetCustomerRepo(repo.NewPostgresCustomerRepository(database))
	handlers.SetMerchantRepo(repo.NewPostgresMerchantRepository(database))
	handlers.SetProductRepo(repo.NewPostgresProductRepository(database))
	handlers.SetUserRepo(repo.NewPostgresUserRepository(database))

	r := router.NewRouter()
	log.Printf("Server running on %s", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, r); err != nil {
		log.Fatal(err)
	}
}
