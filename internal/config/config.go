package config

import (
	"log"
	"os"
)

type Config struct {
	Port    string
	DBDSN   string
	LogFile string
}

// Load reads configuration from the environment. DB_DSN has no default;
// the caller treats an empty DSN as a fatal startup error.
func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "10000"
	}
	dsn := os.Getenv("DB_DSN")
	logFile := os.Getenv("LOG_FILE")

	cfg := Config{Port: port, DBDSN: dsn, LogFile: logFile}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.LogFile)
	return cfg
}
