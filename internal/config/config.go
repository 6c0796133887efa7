package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DBDSN          string
	SheetID        string
	FeedURL        string
	WhatsAppPhone  string
	AdminTokenHash string // bcrypt hash of the admin token, empty disables admin routes
	LogFile        string
}

// FeedURLFor builds the CSV export URL for a spreadsheet id.
func FeedURLFor(sheetID string) string {
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv&gid=0", sheetID)
}

func Load() Config {
	// .env is optional; real env always wins
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "gnstore.db" // sqlite file in project root
	}
	sheetID := os.Getenv("SHEET_ID")
	if sheetID == "" {
		sheetID = "YOUR_SHEET_ID_HERE"
	}
	feedURL := os.Getenv("FEED_URL")
	if feedURL == "" {
		feedURL = FeedURLFor(sheetID)
	}
	phone := os.Getenv("WHATSAPP_PHONE")
	if phone == "" {
		phone = "+9647707409507"
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./gnstore.log"
	}

	cfg := Config{
		Port:           port,
		DBDSN:          dsn,
		SheetID:        sheetID,
		FeedURL:        feedURL,
		WhatsAppPhone:  phone,
		AdminTokenHash: os.Getenv("ADMIN_TOKEN_HASH"),
		LogFile:        logFile,
	}
	log.Printf("[config] PORT=%s DB_DSN=%s FEED_URL=%s WHATSAPP_PHONE=%s ADMIN=%v LOG_FILE=%s",
		cfg.Port, cfg.DBDSN, cfg.FeedURL, cfg.WhatsAppPhone, cfg.AdminTokenHash != "", cfg.LogFile)
	return cfg
}
