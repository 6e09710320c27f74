package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds all environment configuration
type Config struct {
	// Database
	DatabaseHost     string
	DatabasePort     string
	PostgresUser     string
	PostgresPassword string
	DatabaseName     string
	DatabaseSchema   string

	// Authentication
	JWTSecret             string
	AccessTokenTTLMinutes int
	RefreshTokenTTLHours  int

	// Messaging
	KafkaBroker     string
	EvaluationTopic string

	// Server
	Port        string
	CorsOrigins []string
}

var (
	appConfig *Config
	onceEnv   sync.Once
)

func loadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := &Config{
		DatabaseHost:     getEnvWithDefault("DATABASE_HOST", "localhost"),
		DatabasePort:     getEnvWithDefault("DATABASE_PORT", "5432"),
		PostgresUser:     getEnvWithDefault("POSTGRES_USER", "postgres"),
		PostgresPassword: getEnvWithDefault("POSTGRES_PASSWORD", "postgres"),
		DatabaseName:     getEnvWithDefault("DATABASE_NAME", "postgres"),
		DatabaseSchema:   getEnvWithDefault("DATABASE_SCHEMA", "staff_evaluation"),

		JWTSecret:             getEnv("JWT_SECRET"),
		AccessTokenTTLMinutes: getEnvAsInt("ACCESS_TOKEN_TTL_MINUTES", 15),
		RefreshTokenTTLHours:  getEnvAsInt("REFRESH_TOKEN_TTL_HOURS", 24*7),

		// Kafka is optional, an empty broker disables evaluation events
		KafkaBroker:     os.Getenv("KAFKA_BROKER"),
		EvaluationTopic: getEnvWithDefault("EVALUATION_TOPIC", "evaluations-submitted"),

		Port:        getEnvWithDefault("PORT", "8000"),
		CorsOrigins: getEnvAsList("CORS_ORIGINS", []string{"http://localhost", "http://localhost:3000"}),
	}
	if config.JWTSecret == "" {
		config.JWTSecret = "dummyjwt"
	}
	return config
}

func Env() *Config {
	onceEnv.Do(func() {
		appConfig = loadConfig()
	})
	return appConfig
}

// Helper functions
func getEnv(key string) string {
	value := os.Getenv(key)
	if value == "" && IsProduction() {
		panic(fmt.Sprintf("Required environment variable %s is not set", key))
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var value int
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	values := make([]string, 0)
	for _, value := range strings.Split(valueStr, ",") {
		if value = strings.TrimSpace(value); value != "" {
			values = append(values, value)
		}
	}
	return values
}

func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// IsProduction returns true if running in production
func IsProduction() bool {
	return getEnvWithDefault("ENVIRONMENT", "development") == "production"
}
