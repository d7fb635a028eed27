package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	APIKey      string // API key for authentication

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	SaveSlot         string        // persistent slot the running game binds to
	RNGSeed          int64         // 0 seeds from the clock
	TickInterval     time.Duration // game tick cadence, nominally one second
	AutosaveInterval time.Duration
	ConfigDir        string // directory holding the game content JSON files
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		APIKey:      getEnv("API_KEY", ""),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBName:      getEnv("DB_NAME", "legendaryforge"),
		SaveSlot:    getEnv("SAVE_SLOT", "default"),
		ConfigDir:   getEnv("CONFIG_DIR", "configs/game"),
	}

	port, err := getEnvInt("PORT", 8080)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	seed, err := getEnvInt("RNG_SEED", 0)
	if err != nil {
		return nil, err
	}
	cfg.RNGSeed = int64(seed)

	tickMS, err := getEnvInt("TICK_INTERVAL_MS", 1000)
	if err != nil {
		return nil, err
	}
	cfg.TickInterval = time.Duration(tickMS) * time.Millisecond

	autosaveSec, err := getEnvInt("AUTOSAVE_INTERVAL_SECONDS", 30)
	if err != nil {
		return nil, err
	}
	cfg.AutosaveInterval = time.Duration(autosaveSec) * time.Second

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
