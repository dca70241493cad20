package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBUrl      string
	JWTSecret  string
	ServerPort string

	KeepAliveURL      string
	KeepAliveInterval time.Duration
}

func Load() *Config {
	// best effort: real env vars win over .env
	_ = godotenv.Load()

	return &Config{
		DBUrl:             mustEnv("DATABASE_URL"),
		JWTSecret:         mustEnv("JWT_SECRET"),
		ServerPort:        getEnv("PORT", "3000"),
		KeepAliveURL:      os.Getenv("KEEPALIVE_URL"),
		KeepAliveInterval: time.Duration(getEnvInt("KEEPALIVE_INTERVAL", 13)) * time.Minute,
	}
}

func mustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("missing required environment variable %s", key)
	}
	return v
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
