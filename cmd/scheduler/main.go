package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	"github.com/devloperakramul/aka-loan-amortization/internal/config"
	"github.com/devloperakramul/aka-loan-amortization/internal/repository"
)

func main() {
	log.Println("Starting payoff plan scheduler...")

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	planCache := repository.NewPlanCache(redisClient)

	location, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		log.Fatalf("Invalid scheduler timezone: %v", err)
	}

	c := cron.New(cron.WithSeconds(), cron.WithLocation(location))

	// Balances drift against real statements over time; dropping cached
	// plans forces the next request to recompute from current records.
	_, err = c.AddFunc(cfg.Scheduler.RefreshSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		dropped, err := planCache.InvalidateAll(ctx)
		if err != nil {
			log.Printf("Plan cache refresh failed: %v", err)
			return
		}
		log.Printf("Plan cache refresh dropped %d cached plans", dropped)
	})
	if err != nil {
		log.Fatalf("Error scheduling plan cache refresh: %v", err)
	}

	c.Start()
	log.Println("Scheduler started successfully")

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down scheduler...")
	c.Stop()
	log.Println("Scheduler stopped")
}
