package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"firportal/backend/internal/api/handler"
	"firportal/backend/internal/api/middleware"
	"firportal/backend/internal/auth"
	"firportal/backend/internal/casefeed"
	"firportal/backend/internal/config"
	"firportal/backend/internal/fir"
	"firportal/backend/internal/interrogation"
	"firportal/backend/internal/store"
	"firportal/backend/internal/voice"
)

func setupRedis(cfg *config.Config) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}
	return rdb
}

func main() {
	log.Println("Starting FIR Portal Backend...")

	cfg := config.Load()

	// 1. Dependencies
	rdb := setupRedis(cfg)

	memStore := store.NewMemoryStore()
	if cfg.SeedDemoData {
		if err := store.Seed(memStore); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
		log.Println("Demo data loaded.")
	}

	// 2. Services
	sessions := auth.NewSessionManager(rdb, cfg.JWTSecret)
	publisher := casefeed.NewPublisher(rdb)
	firs := fir.NewService(memStore, publisher)
	interrogations := interrogation.NewService(memStore)
	transcriber := voice.NewMockTranscriber(cfg.TranscribeDelay)

	// 3. Live case feed
	hub := casefeed.NewHub(rdb)
	go hub.Run(context.Background())

	// 4. Gin and routing
	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	h := handler.NewHandler(firs, interrogations, sessions, hub, transcriber)
	h.RegisterRoutes(r)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("Listening on :%s", cfg.Port)
	log.Fatal(server.ListenAndServe())
}
