package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/fieldside/scorekeeper/internal/common/clock"
	"github.com/fieldside/scorekeeper/internal/common/uuid"
	"github.com/fieldside/scorekeeper/internal/handlers/httpapi"
	"github.com/fieldside/scorekeeper/internal/push"
	rosterRepo "github.com/fieldside/scorekeeper/internal/repositories/roster"
	snapshotRepo "github.com/fieldside/scorekeeper/internal/repositories/snapshot"
	rosterClient "github.com/fieldside/scorekeeper/internal/roster"
	"github.com/fieldside/scorekeeper/internal/services/match"
	"github.com/fieldside/scorekeeper/internal/sink"
)

// tickInterval drives the clocks and autosave; the deadline-based clocks
// tolerate any cadence, this just bounds display latency
const tickInterval = 250 * time.Millisecond

func main() {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	snapRepo, err := snapshotRepo.NewRedis(&snapshotRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create snapshot repository: %v", err)
	}

	rostRepo, err := rosterRepo.NewRedis(&rosterRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create roster repository: %v", err)
	}

	// Initialize collaborator clients
	rosterURL := getEnv("ROSTER_URL", "")
	if rosterURL == "" {
		log.Fatal("ROSTER_URL environment variable is required")
	}
	rostClient, err := rosterClient.NewHTTP(&rosterClient.Config{
		URL: rosterURL,
	})
	if err != nil {
		log.Fatalf("Failed to create roster client: %v", err)
	}

	sinkURL := getEnv("SINK_URL", "")
	if sinkURL == "" {
		log.Fatal("SINK_URL environment variable is required")
	}
	sinkClient, err := sink.NewHTTP(&sink.Config{
		URL: sinkURL,
	})
	if err != nil {
		log.Fatalf("Failed to create sink client: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize match service
	matchSvc, err := match.New(ctx, &match.Config{
		SnapshotRepo:  snapRepo,
		RosterRepo:    rostRepo,
		RosterClient:  rostClient,
		Sink:          sinkClient,
		ExportDir:     getEnv("EXPORT_DIR", "."),
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create match service: %v", err)
	}

	// Start the viewer hub
	hub := push.NewHub()
	go hub.Run(ctx)

	handler := httpapi.NewHandler(ctx, matchSvc, hub)

	// Create router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	handler.Routes(r)

	// Drive the clocks and autosave
	go runTicker(ctx, matchSvc, handler)

	addr := ":" + strconv.Itoa(getEnvInt("PORT", 8080))
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("scorekeeper listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	log.Println("shutting down")
	cancel()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}

	// Final snapshot so a restart can offer recovery
	if out, err := matchSvc.Flush(shutdownCtx, &match.FlushInput{}); err != nil {
		log.Printf("Final snapshot failed: %v", err)
	} else if out.Warning != "" {
		log.Printf("Final snapshot: %s", out.Warning)
	}

	log.Println("scorekeeper stopped")
}

// runTicker drives the match service tick loop and pushes state to the
// viewers whenever display state changed.
func runTicker(ctx context.Context, svc match.Service, handler *httpapi.Handler) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			out, err := svc.Tick(ctx, &match.TickInput{})
			if err != nil {
				log.Printf("tick failed: %v", err)
				continue
			}
			if out.Warning != "" {
				log.Printf("tick: %s", out.Warning)
			}
			if out.Changed {
				handler.BroadcastState(ctx)
			}
		}
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
