package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	CalDAV   CalDAVConfig
	JWT      JWTConfig
	App      AppConfig
}

// DatabaseConfig holds the optional PostgreSQL connection used to persist
// the quarter configuration. When Host is empty the in-memory store is used.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// CalDAVConfig holds the calendar store connection.
type CalDAVConfig struct {
	URL             string
	Username        string
	Password        string
	PrimaryCalendar string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

func Load() (*Config, error) {
	// A missing .env file is fine in production; env vars win either way.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration (optional)
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", ""),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "officeday"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// CalDAV configuration
	config.CalDAV = CalDAVConfig{
		URL:             getEnv("CALDAV_URL", ""),
		Username:        getEnv("CALDAV_USERNAME", ""),
		Password:        getEnv("CALDAV_PASSWORD", ""),
		PrimaryCalendar: getEnv("CALDAV_PRIMARY_CALENDAR", ""),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "168h"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.CalDAV.URL == "" {
		return fmt.Errorf("CALDAV_URL is required")
	}
	if c.CalDAV.Username == "" {
		return fmt.Errorf("CALDAV_USERNAME is required")
	}
	if c.CalDAV.Password == "" {
		return fmt.Errorf("CALDAV_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Database.Host != "" && c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required when DB_HOST is set")
	}
	return nil
}

// UsesDatabase reports whether a PostgreSQL store is configured.
func (c *Config) UsesDatabase() bool {
	return c.Database.Host != ""
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
