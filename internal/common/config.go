package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	QA      QAConfig
	OCR     OCRConfig
	Archive ArchiveConfig
}

// QAConfig holds configuration for the extractive question-answering endpoint
type QAConfig struct {
	BaseURL string
	Model   string
	APIKey  string
	Timeout time.Duration
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Tesseract     string
	TessdataDir   string
	TesseractLang string
	PSM           int
	OEM           int
}

// ArchiveConfig holds run-archive configuration
type ArchiveConfig struct {
	Path string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		QA: QAConfig{
			BaseURL: getEnv("QA_BASE_URL", "http://localhost:8090"),
			Model:   getEnv("QA_MODEL", "deepset/roberta-base-squad2"),
			APIKey:  getEnv("QA_API_KEY", ""),
			Timeout: getEnvAsDuration("QA_TIMEOUT", 45*time.Second),
		},
		OCR: OCRConfig{
			Tesseract:     getEnv("TESSERACT_BIN", "tesseract"),
			TessdataDir:   getEnv("TESSDATA_PREFIX", ""),
			TesseractLang: getEnv("TESSERACT_LANG", "eng"),
			PSM:           getEnvAsInt("TESSERACT_PSM", 0),
			OEM:           getEnvAsInt("TESSERACT_OEM", 0),
		},
		Archive: ArchiveConfig{
			Path: getEnv("ARCHIVE_DB_PATH", ""),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.QA.BaseURL == "" {
		return NewAppError("CONFIG_ERROR", "QA_BASE_URL is required", ErrInvalidInput)
	}
	if c.QA.Model == "" {
		return NewAppError("CONFIG_ERROR", "QA_MODEL is required", ErrInvalidInput)
	}
	return nil
}
