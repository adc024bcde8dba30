package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	SMTP      SMTPConfig
	Assistant AssistantConfig
	History   HistoryConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	RecipeTopic        string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

// AssistantConfig selects and configures the remote AI backend. Protocol is
// either "webhook" (plain user_input/reply) or "copilot" (Direct Line style
// with continuation tokens).
type AssistantConfig struct {
	Protocol   string
	WebhookURL string
	CopilotURL string
}

// HistoryConfig selects the durable backend for per-user conversation
// history: "redis", "file" or "memory".
type HistoryConfig struct {
	Backend string
	FileDir string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			RecipeTopic:        getEnv("RECIPE_EXTRACTED_TOPIC_NAME", "RECIPE_EXTRACTED"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "SousChef"),
		},
		Assistant: AssistantConfig{
			Protocol:   getEnv("ASSISTANT_PROTOCOL", "webhook"),
			WebhookURL: getEnv("ASSISTANT_WEBHOOK_URL", "http://localhost:8090/webhook"),
			CopilotURL: getEnv("ASSISTANT_COPILOT_URL", ""),
		},
		History: HistoryConfig{
			Backend: getEnv("HISTORY_BACKEND", "redis"),
			FileDir: getEnv("HISTORY_FILE_DIR", "data/history"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
