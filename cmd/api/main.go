package main

import (
	"context"
	"log"
	"time"

	"github.com/jobdeck/jobdeck-api/internal/automation"
	"github.com/jobdeck/jobdeck-api/internal/cache"
	"github.com/jobdeck/jobdeck-api/internal/config"
	"github.com/jobdeck/jobdeck-api/internal/database"
	"github.com/jobdeck/jobdeck-api/internal/server"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// 2. Database Connection
	db := database.Connect(cfg.DatabaseDSN)

	// 3. Optional Cache
	var store cache.Store
	if cfg.RedisAddr != "" {
		rdb := cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx); err != nil {
			if cfg.Production() {
				log.Fatal("Redis is required in production: ", err)
			}
			log.Printf("⚠️  Redis unreachable, job listings will skip the cache: %v", err)
		} else {
			log.Println("✅ Redis cache connected.")
			store = rdb
		}
	} else {
		log.Println("⚠️  REDIS_ADDR not set, job listings will skip the cache.")
	}

	// 4. Setup Router & Routes
	r := server.NewRouter(server.Deps{
		DB:            db,
		Cache:         store,
		SessionSecret: []byte(cfg.SessionSecret),
		Trigger:       automation.LogTrigger{},
	})

	log.Printf("🚀 Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
