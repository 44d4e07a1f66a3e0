package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	CORSOrigin  string

	RedisAddr string
	RedisDB   int
	RedisPass string
	CacheTTL  time.Duration

	EmailHost    string
	EmailPort    int
	EmailUser    string
	EmailPass    string
	EmailFrom    string
	EmailTimeout time.Duration
	EmailRPS     int
}

func Load() Config {
	_ = godotenv.Load() // optional .env, same as the upstream dotenv setup

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	return Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ""),
		CORSOrigin:  env("CORS_ORIGIN", "http://localhost:3000"),

		RedisAddr: env("REDIS_ADDR", "localhost:6379"),
		RedisPass: env("REDIS_PASSWORD", ""),
		RedisDB:   atoi("REDIS_DB", 0),
		CacheTTL:  time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,

		EmailHost:    env("EMAIL_HOST", "smtp.gmail.com"),
		EmailPort:    atoi("EMAIL_PORT", 587),
		EmailUser:    env("EMAIL_USER", ""),
		EmailPass:    env("EMAIL_PASS", ""),
		EmailFrom:    env("EMAIL_FROM", ""),
		EmailTimeout: time.Duration(atoi("EMAIL_TIMEOUT_SECONDS", 10)) * time.Second,
		EmailRPS:     atoi("EMAIL_RPS", 5),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
