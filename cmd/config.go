package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config stores all configuration of the application. Values come from the
// environment, optionally seeded from a .env file.
type Config struct {
	HTTPPort string `mapstructure:"HTTP_PORT"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBSslMode  string `mapstructure:"DB_SSLMODE"`

	ResourceServiceURL   string        `mapstructure:"RESOURCE_SERVICE_URL"`
	RequestServiceURL    string        `mapstructure:"REQUEST_SERVICE_URL"`
	MappingAPIURL        string        `mapstructure:"MAPPING_API_URL"`
	MappingAPIKey        string        `mapstructure:"MAPPING_API_KEY"`
	MappingRatePerSecond float64       `mapstructure:"MAPPING_RATE_PER_SECOND"`
	OutboundTimeout      time.Duration `mapstructure:"OUTBOUND_TIMEOUT"`

	// An empty RedisAddr disables the distance cache.
	RedisAddr        string        `mapstructure:"REDIS_ADDR"`
	RedisPassword    string        `mapstructure:"REDIS_PASSWORD"`
	DistanceCacheTTL time.Duration `mapstructure:"DISTANCE_CACHE_TTL"`

	NotificationReplayEnabled  bool          `mapstructure:"NOTIFICATION_REPLAY_ENABLED"`
	NotificationReplaySchedule string        `mapstructure:"NOTIFICATION_REPLAY_SCHEDULE"`
	NotificationReplayGrace    time.Duration `mapstructure:"NOTIFICATION_REPLAY_GRACE"`
	NotificationMaxAttempts    int           `mapstructure:"NOTIFICATION_MAX_ATTEMPTS"`
}

var defaults = map[string]any{
	"HTTP_PORT":                    "8080",
	"LOG_LEVEL":                    "info",
	"DB_HOST":                      "localhost",
	"DB_PORT":                      "5432",
	"DB_USER":                      "postgres",
	"DB_PASSWORD":                  "",
	"DB_NAME":                      "logistics",
	"DB_SSLMODE":                   "disable",
	"RESOURCE_SERVICE_URL":         "http://localhost:8081",
	"REQUEST_SERVICE_URL":          "http://localhost:8082",
	"MAPPING_API_URL":              "https://maps.googleapis.com/maps/api",
	"MAPPING_API_KEY":              "",
	"MAPPING_RATE_PER_SECOND":      10.0,
	"OUTBOUND_TIMEOUT":             5 * time.Second,
	"REDIS_ADDR":                   "",
	"REDIS_PASSWORD":               "",
	"DISTANCE_CACHE_TTL":           24 * time.Hour,
	"NOTIFICATION_REPLAY_ENABLED":  false,
	"NOTIFICATION_REPLAY_SCHEDULE": "0 */5 * * * *",
	"NOTIFICATION_REPLAY_GRACE":    2 * time.Minute,
	"NOTIFICATION_MAX_ATTEMPTS":    5,
}

// LoadConfig reads envFile when it exists, then the environment. Variables
// already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return config, nil
}

// DSN renders the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
