// Package config loads application configuration from environment
// variables. Required values are enforced by must(); a missing one is a
// fatal startup error so the process never comes up half-configured.
package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable.
type Config struct {
	Port     string // HTTP port to listen on
	DBUser   string // database username
	DBPass   string // database password (optional)
	DBHost   string // database host address
	DBPort   string // database port number
	DBName   string // database name
	PoolSize int    // max open connections in the pool
}

// Load reads configuration from the environment. DB_HOST, DB_USER,
// DB_NAME and DB_PORT are required; the rest have defaults matching the
// legacy deployment (port 3000, pool of 10).
func Load() Config {
	return Config{
		Port:     getenv("PORT", "3000"),
		DBUser:   must("DB_USER"),
		DBPass:   os.Getenv("DB_PASS"),
		DBHost:   must("DB_HOST"),
		DBPort:   must("DB_PORT"),
		DBName:   must("DB_NAME"),
		PoolSize: envInt("DB_POOL_SIZE", 10),
	}
}

// must retrieves a required environment variable or exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("falta la variable de entorno: %s", key)
	}
	return v
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("valor entero inválido para %s: %q", key, v)
	}
	return n
}
