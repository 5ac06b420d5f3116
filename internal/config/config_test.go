package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequired sets the variables Load cannot do without
func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("BOT_PASSWORD", "test_password")
	t.Setenv("DB_PASSWORD", "test_db_password")
}

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_KEY", "custom")

	assert.Equal(t, "custom", getEnv("TEST_KEY", "default"))
	assert.Equal(t, "default", getEnv("TEST_KEY_NOT_SET", "default"))
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name          string
		value         string
		expected      int
		expectedError bool
	}{
		{name: "not set", value: "", expected: 50},
		{name: "number", value: "20", expected: 20},
		{name: "not a number", value: "many", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT", tt.value)

			n, err := getEnvInt("TEST_INT", 50)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "TEST_INT")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, n)
			}
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, cfg.DSN())
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		unset   string
		message string
	}{
		{name: "missing bot token", unset: "BOT_TOKEN", message: "BOT_TOKEN"},
		{name: "missing bot password", unset: "BOT_PASSWORD", message: "BOT_PASSWORD"},
		{name: "missing db password", unset: "DB_PASSWORD", message: "DB_PASSWORD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.unset, "")

			cfg, err := Load()

			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	setRequired(t)
	for _, key := range []string{"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "HTTP_ADDR", "BOT_LINK",
		"VOCABULARY_PATH", "FLASHCARD_BATCH", "RESULT_RETENTION_DAYS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, "test_password", cfg.BotPassword)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "vocadeck", cfg.Database.Name)
	assert.Equal(t, "vocadeck", cfg.Database.User)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "", cfg.Quiz.VocabularyPath)
	assert.Equal(t, 50, cfg.Quiz.FlashcardBatch)
	assert.Equal(t, 60, cfg.Quiz.ResultRetentionDays)
}

func TestLoad_QuizSettings(t *testing.T) {
	setRequired(t)
	t.Setenv("VOCABULARY_PATH", "/data/words.yaml")
	t.Setenv("FLASHCARD_BATCH", "20")
	t.Setenv("RESULT_RETENTION_DAYS", "30")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/data/words.yaml", cfg.Quiz.VocabularyPath)
	assert.Equal(t, 20, cfg.Quiz.FlashcardBatch)
	assert.Equal(t, 30, cfg.Quiz.ResultRetentionDays)
}

func TestLoad_InvalidQuizSettings(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "zero batch", key: "FLASHCARD_BATCH", value: "0"},
		{name: "batch not a number", key: "FLASHCARD_BATCH", value: "lots"},
		{name: "negative retention", key: "RESULT_RETENTION_DAYS", value: "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()

			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
