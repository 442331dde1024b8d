package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"videotube/config"
	"videotube/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var creatorID string
	err = db.QueryRow(`
		INSERT INTO users (username, email, password_hash, full_name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (lower(email)) DO UPDATE SET full_name = EXCLUDED.full_name
		RETURNING id
	`, "democreator", "creator@example.com", hash, "Demo Creator").Scan(&creatorID)
	if err != nil {
		log.Fatalf("failed to seed creator: %v", err)
	}
	fmt.Printf("seeded creator: id=%s password=%s\n", creatorID, password)

	var viewerID string
	err = db.QueryRow(`
		INSERT INTO users (username, email, password_hash, full_name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (lower(email)) DO UPDATE SET full_name = EXCLUDED.full_name
		RETURNING id
	`, "demoviewer", "viewer@example.com", hash, "Demo Viewer").Scan(&viewerID)
	if err != nil {
		log.Fatalf("failed to seed viewer: %v", err)
	}
	fmt.Printf("seeded viewer: id=%s password=%s\n", viewerID, password)

	var videoID string
	err = db.QueryRow(`
		INSERT INTO videos (owner_id, title, description, video_url, thumbnail_url, duration, is_published)
		VALUES ($1, $2, $3, $4, $5, $6, true)
		RETURNING id
	`, creatorID, "Hello VideoTube", "First seeded upload",
		"https://storage.googleapis.com/demo/hello.mp4",
		"https://storage.googleapis.com/demo/hello.jpg", 42.0).Scan(&videoID)
	if err != nil {
		log.Fatalf("failed to seed video: %v", err)
	}
	fmt.Printf("seeded video: id=%s\n", videoID)

	if _, err := db.Exec(`
		INSERT INTO subscriptions (subscriber_id, channel_id)
		VALUES ($1, $2)
		ON CONFLICT (subscriber_id, channel_id) DO NOTHING
	`, viewerID, creatorID); err != nil {
		log.Fatalf("failed to seed subscription: %v", err)
	}
	fmt.Println("seeded subscription: viewer -> creator")
}
