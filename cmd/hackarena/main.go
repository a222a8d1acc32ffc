package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/adishm/hackarena/internal/app"
	"github.com/adishm/hackarena/internal/logger"
)

var version = "dev"

// envOr returns the environment variable value or a fallback
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	// .env is optional; real environments set variables directly
	godotenv.Load()

	port := flag.Int("port", 8080, "HTTP server port")
	dbPath := flag.String("db", envOr("HACKARENA_DB", "hackarena.db"), "SQLite database path")
	uploadsDir := flag.String("uploads", envOr("HACKARENA_UPLOADS", "uploads"), "Directory for uploaded files")
	jwtSecret := flag.String("jwt-secret", os.Getenv("HACKARENA_JWT_SECRET"), "Secret for signing auth tokens (auto-generated if not set)")
	adminEmail := flag.String("admin-email", os.Getenv("HACKARENA_ADMIN_EMAIL"), "Admin account email to seed at startup")
	adminPw := flag.String("admin-password", os.Getenv("HACKARENA_ADMIN_PASSWORD"), "Admin account password to seed at startup")
	logLevel := flag.String("loglevel", envOr("HACKARENA_LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `HackArena - Hackathon Management Server

Usage:
  hackarena [options]

Options:
  -port int            HTTP server port (default 8080)
  -db string           SQLite database path (default "hackarena.db")
  -uploads string      Directory for uploaded files (default "uploads")
  -jwt-secret string   Secret for signing auth tokens
  -admin-email string  Admin account email to seed at startup
  -admin-password str  Admin account password to seed at startup
  -loglevel string     Log level: debug, info, warn, error (default "info")
  -version             Show version and exit
  -help                Show this help message

Environment variables (HACKARENA_DB, HACKARENA_UPLOADS, HACKARENA_JWT_SECRET,
HACKARENA_ADMIN_EMAIL, HACKARENA_ADMIN_PASSWORD, HACKARENA_LOG_LEVEL) provide
defaults, and a .env file is loaded if present.

Examples:
  hackarena                             # Run on port 8080 with hackarena.db
  hackarena -port 80 -db /data/prod.db  # Production example

`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("hackarena %s\n", version)
		os.Exit(0)
	}

	appLog := logger.NewWithLevel(logger.ParseLevel(*logLevel))

	secret := *jwtSecret
	if secret == "" {
		// Tokens will not survive a restart with a generated secret
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			log.Fatal("Failed to generate token secret:", err)
		}
		secret = hex.EncodeToString(buf)
		appLog.Warn("No token secret configured, generated an ephemeral one")
	}

	a, err := app.New(appLog, app.Config{
		DBPath:     *dbPath,
		UploadsDir: *uploadsDir,
		JWTSecret:  secret,
	})
	if err != nil {
		log.Fatal("Failed to initialize application:", err)
	}

	if err := a.SeedAdmin(context.Background(), *adminEmail, *adminPw); err != nil {
		log.Fatal("Failed to seed admin account:", err)
	}

	addr := fmt.Sprintf(":%d", *port)
	if err := a.Run(addr); err != nil {
		log.Fatal(err)
	}
}
