package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/corkedgame/corked/internal/common/clock"
	"github.com/corkedgame/corked/internal/common/gamecode"
	"github.com/corkedgame/corked/internal/common/uuid"
	"github.com/corkedgame/corked/internal/handlers/httpapi"
	gameRepo "github.com/corkedgame/corked/internal/repositories/game"
	playerRepo "github.com/corkedgame/corked/internal/repositories/player"
	submissionRepo "github.com/corkedgame/corked/internal/repositories/submission"
	wineRepo "github.com/corkedgame/corked/internal/repositories/wine"
	gameService "github.com/corkedgame/corked/internal/services/game"
)

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Error loading .env file: %v", err)
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
	games, err := gameRepo.NewRedis(&gameRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create game repository: %v", err)
	}

	players, err := playerRepo.NewRedis(&playerRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create player repository: %v", err)
	}

	wines, err := wineRepo.NewRedis(&wineRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create wine repository: %v", err)
	}

	submissions, err := submissionRepo.NewRedis(&submissionRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create submission repository: %v", err)
	}

	// Initialize game service
	gameSvc, err := gameService.New(&gameService.Config{
		GameRepo:       games,
		PlayerRepo:     players,
		WineRepo:       wines,
		SubmissionRepo: submissions,
		Clock:          &clock.DefaultClock{},
		UUIDGenerator:  uuid.New(),
		CodeGenerator:  gamecode.New(),
		MaxPlayers:     getEnvInt("MAX_PLAYERS", 12),
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	// Initialize HTTP handler
	handler, err := httpapi.New(&httpapi.Config{
		GameService: gameSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create HTTP handler: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + getEnv("PORT", "8080"),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
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

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return n
}
