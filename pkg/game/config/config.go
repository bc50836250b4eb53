// Package config loads the play server's configuration from the environment.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"robotmaze/pkg/game/mazes"
)

// Config holds the application's configuration values.
type Config struct {
	ServerPort int    // Port for the websocket play server
	MazeName   string // Built-in maze served to new sessions
	LogLevel   string // logrus level name (debug, info, warn, error)
}

// Load reads configuration from a .env file (if present) and the
// environment. Every value has a safe default; the simulator must run with
// no environment at all.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf(".env file not found or could not be loaded: %v", err)
	}

	return Config{
		ServerPort: getEnvAsIntWithDefault("SERVER_PORT", 8080),
		MazeName:   getEnvWithDefault("MAZE_NAME", mazes.Default),
		LogLevel:   getEnvWithDefault("LOG_LEVEL", "info"),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns
// a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an environment variable as an integer,
// falling back to the default when unset or unparsable.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("environment variable %s must be an integer, using %d: %v", key, defaultValue, err)
		return defaultValue
	}
	return value
}
