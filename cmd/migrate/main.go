package main

import (
	"crypto_bot/internal/config" // Custom import path (Config)
	"crypto_bot/internal/db"     // Custom import path (Database)
)

// Main entry point for migration (mysql store backend only)
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Database Source Name (DSN) for MySQL connection
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	db.Migrate(dsn)
}
