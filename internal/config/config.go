package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Store    StoreConfig
	AI       AIConfig
	Upload   UploadConfig
	Scoring  ScoringConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type StoreConfig struct {
	// Driver selects the repository implementation: "memory" or "postgres".
	Driver string
}

type AIConfig struct {
	// Provider selects the classifier backend: "gemini" or "anthropic".
	Provider        string
	GeminiAPIKey    string
	AnthropicAPIKey string
}

type UploadConfig struct {
	MaxFileSize int64
}

type ScoringConfig struct {
	// Intent thresholds over the combined 0-100 score.
	HighThreshold   int
	MediumThreshold int

	// Rule-based points (max 50 total).
	RoleDecisionMaker  int
	RoleInfluencer     int
	IndustryExact      int
	IndustryAdjacent   int
	CompletenessPoints int

	// AI label to points mapping (max 50).
	AIHigh   int
	AIMedium int
	AILow    int

	// Pause between consecutive AI calls to stay under provider rate limits.
	RequestDelay time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "lead_scoring"),
		},
		Store: StoreConfig{
			Driver: getEnv("STORE_DRIVER", "memory"),
		},
		AI: AIConfig{
			Provider:        getEnv("AI_PROVIDER", "gemini"),
			GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
			AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		},
		Upload: UploadConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 5242880),
		},
		Scoring: ScoringConfig{
			HighThreshold:      getEnvAsInt("SCORE_HIGH_THRESHOLD", 70),
			MediumThreshold:    getEnvAsInt("SCORE_MEDIUM_THRESHOLD", 40),
			RoleDecisionMaker:  20,
			RoleInfluencer:     10,
			IndustryExact:      20,
			IndustryAdjacent:   10,
			CompletenessPoints: 10,
			AIHigh:             50,
			AIMedium:           30,
			AILow:              10,
			RequestDelay:       getEnvAsDuration("SCORING_REQUEST_DELAY", "500ms"),
		},
	}
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
