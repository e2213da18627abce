package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/lakshman261099/career-ai-sub000/internal/repositories"
)

// Applies the embedded schema migrations. Usage:
//
//	migrate [-c config.env] [up|down|status]
func main() {
	configPath, command := parseFlags()

	dsn, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := repositories.RunMigrations(context.Background(), dsn, command); err != nil {
		log.Fatalf("migration %q failed: %v", command, err)
	}

	fmt.Printf("migration %q completed\n", command)
}

// parseFlags parses command-line flags and returns the config file path and
// the goose command to run.
func parseFlags() (string, string) {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()

	command := "up"
	if args := flag.Args(); len(args) > 0 {
		command = args[0]
	}
	return *c, command
}

// parseConfig loads environment variables from a file and returns the
// PostgreSQL DSN.
func parseConfig(path string) (string, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	pgHost := getEnv("POSTGRES_HOST", "localhost")
	pgUser := getEnv("POSTGRES_USER", "user")
	pgPassword := getEnv("POSTGRES_PASSWORD", "password")
	pgDB := getEnv("POSTGRES_DB", "database")
	pgPort, err := strconv.Atoi(getEnv("POSTGRES_PORT", "5432"))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB), nil
}
