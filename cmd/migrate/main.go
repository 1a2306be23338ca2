package main

import (
	"folio_fetch/internal/config" // Custom import path (Config)
	"folio_fetch/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	db.Migrate(cfg.DSN())      // Run schema migration
}
