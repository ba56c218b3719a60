package main

import (
	"context"
	"log"
	"os"

	"studsafe/internal/database"
	"studsafe/internal/repository"
)

func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	sessions := repository.NewSessionRepository(db)
	purged, err := sessions.DeleteExpired(context.Background())
	if err != nil {
		log.Fatalf("cleanup sessions failed: %v", err)
	}

	log.Printf("session cleanup completed: sessions=%d", purged)
}
