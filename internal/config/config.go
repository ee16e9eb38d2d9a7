package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
	Keys    APIKeys
	Ai      AIConfig
	Events  EventConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	SessionTTLHours    int
}

type StorageConfig struct {
	Provider string // "file" or "redis"
	FilePath string
	RedisURL string
}

type APIKeys struct {
	GoogleGemini string
	JWTSecret    string
}

type AIConfig struct {
	NoteModel string
}

type EventConfig struct {
	ActivityTopic string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			SessionTTLHours:    getEnvAsInt("SESSION_TTL_HOURS", 24),
		},
		Storage: StorageConfig{
			Provider: getEnv("STORAGE_PROVIDER", "file"),
			FilePath: getEnv("STORAGE_FILE_PATH", "voicenote_store.json"),
			RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
			JWTSecret:    getEnv("JWT_SECRET", "dev-secret"),
		},
		Ai: AIConfig{
			NoteModel: getEnv("GEMINI_NOTE_MODEL", "gemini-3-pro-preview"),
		},
		Events: EventConfig{
			ActivityTopic: getEnv("ACTIVITY_TOPIC_NAME", "VOICENOTE_ACTIVITY"),
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
