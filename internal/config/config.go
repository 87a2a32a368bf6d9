package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	Port           string
	StorageBackend string
	RedisAddr      string
	MongoURI       string
	DBName         string
	JWTSecret      string
	AccessTokenTTL time.Duration
	AdminEmail     string
	GeminiAPIKey   string
	GeminiModel    string
	SuggestTimeout time.Duration
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		Port:           getEnvOrDefault("PORT", "8080"),
		StorageBackend: getEnvOrDefault("STORAGE_BACKEND", "memory"),
		RedisAddr:      getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		MongoURI:       getEnvOrDefault("MONGO_URI", ""),
		DBName:         getEnvOrDefault("DB_NAME", "freshmart"),
		JWTSecret:      getEnvOrDefault("JWT_SECRET", "dev-secret"),
		AccessTokenTTL: getDurationEnv("ACCESS_TOKEN_TTL", 20, time.Minute),
		AdminEmail:     getEnvOrDefault("ADMIN_EMAIL", "admin@freshmart.com"),
		GeminiAPIKey:   getEnvOrDefault("GEMINI_API_KEY", ""),
		GeminiModel:    getEnvOrDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		SuggestTimeout: getDurationEnv("SUGGEST_TIMEOUT", 10, time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}
