package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort int
	LogLevel   string

	// Empty means the session-scoped in-memory store.
	DatabaseURL string

	JWTSecret []byte

	// DemoOTP is the fixed login code of the demo deployment. AdminPhones
	// lists the phone numbers that get the admin role; everyone else is a
	// customer.
	DemoOTP     string
	AdminPhones []string

	KafkaBrokers []string

	ESURL      string
	ESUser     string
	ESPassword string

	SeedCatalog bool
}

func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("notice: .env file not found: %v, using system environment", err)
	}

	cfg := &Config{
		ServerPort:   envIntDefault("SERVER_PORT", 8080),
		LogLevel:     envDefault("LOG_LEVEL", "info"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		JWTSecret:    []byte(os.Getenv("JWT_HS256_SECRET")),
		DemoOTP:      envDefault("DEMO_OTP_CODE", "123456"),
		AdminPhones:  csv(os.Getenv("ADMIN_PHONES")),
		KafkaBrokers: csv(os.Getenv("KAFKA_BROKERS")),
		ESURL:        os.Getenv("ES_URL"),
		ESUser:       os.Getenv("ES_USER"),
		ESPassword:   os.Getenv("ES_PASSWORD"),
		SeedCatalog:  envBoolDefault("SEED_CATALOG", true),
	}

	if len(cfg.JWTSecret) == 0 {
		log.Fatalf("missing required env JWT_HS256_SECRET")
	}

	return cfg
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envBoolDefault(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func csv(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
