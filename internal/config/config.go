package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken    string
	BotPassword string
	BotLink     string
	HTTPAddr    string
	Database    DatabaseConfig
	Quiz        QuizConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// QuizConfig holds dataset and quiz settings
type QuizConfig struct {
	VocabularyPath      string // empty means the embedded dataset
	FlashcardBatch      int
	ResultRetentionDays int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	flashcardBatch, err := getEnvInt("FLASHCARD_BATCH", 50)
	if err != nil {
		return nil, err
	}
	retention, err := getEnvInt("RESULT_RETENTION_DAYS", 60)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		BotToken:    os.Getenv("BOT_TOKEN"),
		BotPassword: os.Getenv("BOT_PASSWORD"),
		BotLink:     os.Getenv("BOT_LINK"),
		HTTPAddr:    getEnv("HTTP_ADDR", ":8080"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "vocadeck"),
			User:     getEnv("DB_USER", "vocadeck"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		Quiz: QuizConfig{
			VocabularyPath:      os.Getenv("VOCABULARY_PATH"),
			FlashcardBatch:      flashcardBatch,
			ResultRetentionDays: retention,
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.BotPassword == "" {
		return nil, fmt.Errorf("BOT_PASSWORD is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	if cfg.Quiz.FlashcardBatch < 1 {
		return nil, fmt.Errorf("FLASHCARD_BATCH must be positive")
	}
	if cfg.Quiz.ResultRetentionDays < 1 {
		return nil, fmt.Errorf("RESULT_RETENTION_DAYS must be positive")
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return n, nil
}
