package config

import (
	"os"
	"strings"
	"time"
)

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

// Config is the whole process configuration, read once at startup and passed
// down explicitly. Nothing below main reads the environment.
type Config struct {
	Port        string
	Env         string
	TokenSecret string
	TokenTTL    time.Duration

	DB           DBConfig
	RedisAddr    string
	KafkaBrokers []string
}

// Load reads configuration from the environment. Tokens default to a 30 day
// lifetime; Redis and Kafka are optional and stay disabled when unset.
func Load() Config {
	cfg := Config{
		Port:        getEnv("PORT", "5000"),
		Env:         getEnv("APP_ENV", "development"),
		TokenSecret: os.Getenv("JWT_SECRET"),
		TokenTTL:    30 * 24 * time.Hour,
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			User:     getEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getEnv("DB_NAME", "ems"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		RedisAddr: os.Getenv("REDIS_ADDR"),
	}

	if ttl := os.Getenv("JWT_EXPIRE"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			cfg.TokenTTL = d
		}
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
