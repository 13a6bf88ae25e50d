package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	StoreDSN string
	LogFile  string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] no .env file, using environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("STORE_DSN")
	if dsn == "" {
		dsn = "pocketmart.db"
	} // sqlite file in project root
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./pocketmart.log" // default log sink in project root
	}

	cfg := Config{Port: port, StoreDSN: dsn, LogFile: logFile}
	log.Printf("[config] PORT=%s STORE_DSN=%s LOG_FILE=%s", cfg.Port, cfg.StoreDSN, cfg.LogFile)
	return cfg
}
