// Package config loads the game configuration from the environment,
// optionally seeded from a .env file. Every value has a default so the game
// runs with no configuration at all.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the game's configuration values. It is built once at startup
// and passed explicitly into the components that need it.
type Config struct {
	PlayerName   string // Display name shown in the HUD and save records
	Sound        bool   // Whether cue sounds are emitted
	TimerMinutes int    // Countdown budget per level attempt
	TimerSeconds int
	LevelsDir    string // Optional on-disk level directory; empty uses the built-in set
	LogLevel     string // logrus level name
}

// Load reads the configuration from the environment. A .env file in the
// working directory is honored when present.
func Load() Config {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	return Config{
		PlayerName:   getEnv("LABYRINTH_PLAYER", "Player"),
		Sound:        getEnvAsBool("LABYRINTH_SOUND", true),
		TimerMinutes: getEnvAsInt("LABYRINTH_TIMER_MINUTES", 1),
		TimerSeconds: getEnvAsInt("LABYRINTH_TIMER_SECONDS", 30),
		LevelsDir:    getEnv("LABYRINTH_LEVELS_DIR", ""),
		LogLevel:     getEnv("LABYRINTH_LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback
	}
	return value
}

func getEnvAsBool(key string, fallback bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return fallback
	}
	return value
}
