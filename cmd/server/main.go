package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/wheelparty/chaoswheel/internal/commitment"
	"github.com/wheelparty/chaoswheel/internal/handlers/httpapi"
	eventRepo "github.com/wheelparty/chaoswheel/internal/repositories/event"
	participantRepo "github.com/wheelparty/chaoswheel/internal/repositories/participant"
	roomRepo "github.com/wheelparty/chaoswheel/internal/repositories/room"
	seedRepo "github.com/wheelparty/chaoswheel/internal/repositories/seed"
	voteRepo "github.com/wheelparty/chaoswheel/internal/repositories/vote"
	roomService "github.com/wheelparty/chaoswheel/internal/services/room"
	"github.com/wheelparty/chaoswheel/internal/transport"
)

func main() {
	// Load .env if present; real deployments set the environment directly
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to load .env: %v", err)
	}

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
	rooms, err := roomRepo.NewRedis(&roomRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create room repository: %v", err)
	}

	participants, err := participantRepo.NewRedis(&participantRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create participant repository: %v", err)
	}

	votes, err := voteRepo.NewRedis(&voteRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create vote repository: %v", err)
	}

	seeds, err := seedRepo.NewRedis(&seedRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create seed repository: %v", err)
	}

	events, err := eventRepo.NewRedis(&eventRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create event repository: %v", err)
	}

	// Initialize the event transport
	feed, err := transport.NewRedis(&transport.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create transport: %v", err)
	}

	// Initialize the room service
	roomSvc, err := roomService.New(&roomService.Config{
		RoomRepo:        rooms,
		ParticipantRepo: participants,
		VoteRepo:        votes,
		SeedRepo:        seeds,
		EventRepo:       events,
		Publisher:       feed,
		Generator:       commitment.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create room service: %v", err)
	}

	// Initialize the HTTP handler
	handler, err := httpapi.New(&httpapi.Config{
		Service:      roomSvc,
		Subscriber:   feed,
		ShareBaseURL: getEnv("SHARE_BASE_URL", ""),
	})
	if err != nil {
		log.Fatalf("Failed to create HTTP handler: %v", err)
	}

	mux := http.NewServeMux()
	handler.Register(mux)

	server := &http.Server{
		Addr:              getEnv("LISTEN_ADDR", ":8080"),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}
	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Server has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
