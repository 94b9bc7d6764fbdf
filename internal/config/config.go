package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	BackendURL     string
	SQLitePath     string
	LogLevel       string
	LogColor       bool
	LogFormat      string // "text" or "json"
	DailyLogLimit  int
	VideoSearchURL string
	ShowQR         bool // Render exercise links as QR codes
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults/environment variables")
	}

	return Config{
		BackendURL:     strings.TrimRight(getenv("BACKEND_URL", "http://localhost:8001"), "/"),
		SQLitePath:     getenv("SQLITE_PATH", "./data/healthcoach.db"),
		LogLevel:       strings.ToUpper(getenv("LOG_LEVEL", "INFO")),
		LogColor:       getenvBool("LOG_COLOR", true),
		LogFormat:      strings.ToLower(getenv("LOG_FORMAT", "text")),
		DailyLogLimit:  getenvInt("DAILY_LOG_LIMIT", 30),
		VideoSearchURL: getenv("VIDEO_SEARCH_URL", "https://www.youtube.com/results?search_query="),
		ShowQR:         getenvBool("SHOW_QR", true),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
