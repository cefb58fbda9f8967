package main

import (
	"os"

	"github.com/joho/godotenv"
)

// loadEnvFiles reads .env and .env.local if present. Environment
// provided by the runtime (e.g. Docker) always wins.
func loadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

func migrationsDir() string {
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	return "db/migrations"
}
