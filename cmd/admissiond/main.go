package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Edaad/allin-sub000/internal/repositories/game"
	"github.com/Edaad/allin-sub000/internal/repositories/guest_profile"
	"github.com/Edaad/allin-sub000/internal/repositories/player"
	"github.com/Edaad/allin-sub000/internal/services/admission"
	"github.com/Edaad/allin-sub000/internal/services/identity"
	"github.com/Edaad/allin-sub000/internal/services/notifier"
	"github.com/Edaad/allin-sub000/internal/services/waitlist"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	gameRepo, err := game.NewRedis(&game.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create game repository: %v", err)
	}

	playerRepo, err := player.NewRedis(&player.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create player repository: %v", err)
	}

	guestRepo, err := guest_profile.NewRedis(&guest_profile.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create guest profile repository: %v", err)
	}

	// Initialize services
	identitySvc, err := identity.NewService(&identity.Config{
		GuestRepo: guestRepo,
	})
	if err != nil {
		log.Fatalf("Failed to create identity service: %v", err)
	}

	waitlistSvc, err := waitlist.NewService(&waitlist.Config{
		PlayerRepo: playerRepo,
	})
	if err != nil {
		log.Fatalf("Failed to create waitlist service: %v", err)
	}

	notifierSvc, err := notifier.NewService(&notifier.Config{})
	if err != nil {
		log.Fatalf("Failed to create notifier service: %v", err)
	}

	_, err = admission.NewService(&admission.Config{
		GameRepo:        gameRepo,
		PlayerRepo:      playerRepo,
		GuestRepo:       guestRepo,
		IdentityService: identitySvc,
		WaitlistService: waitlistSvc,
		Notifier:        notifierSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create admission service: %v", err)
	}

	log.Println("Admission service is ready")

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Admission service has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
