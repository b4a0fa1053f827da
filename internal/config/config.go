package config

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

type Config struct {
	WebhookURL string // destination for extracted transactions
	ListenAddr string // HTTP listen address
	LogLevel   log.Level
}

// safely parse whatever port or address the user provides
// handles cases like "8080", ":8080", "127.0.0.1:8080"
func parseAddress(port string) string {
	port = strings.TrimSpace(port)
	if strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}

func Load() Config {
	webhookURL := os.Getenv("WEBHOOK_URL")
	if webhookURL == "" {
		panic("WEBHOOK_URL environment variable is required")
	}

	listen := os.Getenv("PORT")
	if listen == "" {
		listen = "8080"
	}

	logLevel, err := log.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = log.InfoLevel
	}

	return Config{
		WebhookURL: webhookURL,
		ListenAddr: parseAddress(listen),
		LogLevel:   logLevel,
	}
}
