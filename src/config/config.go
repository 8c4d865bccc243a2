package config

import (
	"fmt"
	"os"
	"time"
)

func GetDSN() string {
	DATABASE_HOST := os.Getenv("DATABASE_HOST")
	DATABASE_PORT := os.Getenv("DATABASE_PORT")
	DATABASE_SSLMODE := os.Getenv("DATABASE_SSLMODE")
	DATABASE_TIMEZONE := os.Getenv("DATABASE_TIMEZONE")
	DATABASE_USER := os.Getenv("DATABASE_USER")
	DATABASE_PASSWORD := os.Getenv("DATABASE_PASSWORD")
	DATABASE_NAME := os.Getenv("DATABASE_NAME")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s", DATABASE_HOST, DATABASE_USER, DATABASE_PASSWORD, DATABASE_NAME, DATABASE_PORT, DATABASE_SSLMODE, DATABASE_TIMEZONE)
	return dsn
}

// GetDriver selects the database driver. The sqlite driver with a
// ":memory:" DSN is the in-memory configuration used for local runs.
func GetDriver() string {
	driver := os.Getenv("DATABASE_DRIVER")
	if driver == "" {
		driver = "postgres"
	}
	return driver
}

func GetSQLiteDSN() string {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = "file::memory:?cache=shared"
	}
	return dsn
}

func IsProd() bool {
	return os.Getenv("API_ENV") == "production"
}

const (
	SESSION_COOKIE_NAME = "eventspot_session"
	SESSION_TTL         = 24 * time.Hour
)
