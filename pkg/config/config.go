package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Database
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`

	MigrationsURL string `mapstructure:"MIGRATIONS_URL"`

	// Redis (rate limiting); empty disables the limiter
	RedisURL string `mapstructure:"REDIS_URL"`

	// Auth
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	AccessTokenMinutes int    `mapstructure:"ACCESS_TOKEN_MINUTES"`

	// SMS verification provider
	VerifyBaseURL    string `mapstructure:"VERIFY_BASE_URL"`
	VerifyServiceSID string `mapstructure:"VERIFY_SERVICE_SID"`
	VerifyAccountSID string `mapstructure:"VERIFY_ACCOUNT_SID"`
	VerifyAuthToken  string `mapstructure:"VERIFY_AUTH_TOKEN"`

	// Object storage for profile pictures
	StoragePath    string `mapstructure:"STORAGE_PATH"`
	StorageBaseURL string `mapstructure:"STORAGE_BASE_URL"`
}

// DSN builds the lib/pq connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

// MigrateDSN builds the URL form golang-migrate expects.
func (c *Config) MigrateDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "agromercado")
	viper.SetDefault("DB_PASSWORD", "agromercado")
	viper.SetDefault("DB_NAME", "agromercado")
	viper.SetDefault("MIGRATIONS_URL", "file://migrations")
	viper.SetDefault("ACCESS_TOKEN_MINUTES", 60)
	viper.SetDefault("VERIFY_BASE_URL", "https://verify.twilio.com/v2")
	viper.SetDefault("STORAGE_PATH", "/tmp/agromercado/uploads")
	viper.SetDefault("STORAGE_BASE_URL", "http://localhost:8000/uploads")

	// Optional .env file for local development, missing file is fine
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
