package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/taufanAli65/social-media-todo-api/db"
	"github.com/taufanAli65/social-media-todo-api/internal/auth"
	"github.com/taufanAli65/social-media-todo-api/internal/handlers"
	"github.com/taufanAli65/social-media-todo-api/internal/identity"
	"github.com/taufanAli65/social-media-todo-api/internal/metrics"
	"github.com/taufanAli65/social-media-todo-api/internal/router"
	"github.com/taufanAli65/social-media-todo-api/internal/services"
	"github.com/taufanAli65/social-media-todo-api/internal/store"
	"github.com/taufanAli65/social-media-todo-api/internal/users"
	"github.com/taufanAli65/social-media-todo-api/internal/workflow"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	tokens, err := auth.NewTokenManager(os.Getenv("JWT_SECRET"))
	if err != nil {
		log.Fatalf("Failed to initialize token manager: %v", err)
	}

	database, err := db.Connect(dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(database); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	dataStore := store.NewGormStore(database)
	provider := identity.NewGormProvider(database, tokens)

	webhooks := &services.WebhookNotifier{
		DiscordURL: os.Getenv("DISCORD_WEBHOOK_URL"),
		SlackURL:   os.Getenv("SLACK_WEBHOOK_URL"),
	}

	contentService := workflow.NewService(dataStore, collector, handlers.ContentFeedNotifier{}, webhooks)
	userService := users.NewService(provider, dataStore)

	r := router.NewRouter(router.Deps{
		Auth:     handlers.NewAuthHandler(userService),
		Content:  handlers.NewContentHandler(contentService),
		Provider: provider,
		Store:    dataStore,
		Metrics:  collector,
		Gatherer: registry,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
		log.Println("PORT not set, defaulting to 3000")
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
