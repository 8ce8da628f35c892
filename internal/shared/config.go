package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string

	CatalogBase     string
	WeatherBase     string
	WeatherKey      string
	UpstreamRPS     int
	UpstreamTimeout time.Duration

	FirebaseCredentials string
	FirebaseProjectID   string

	WarmWorkers int
	CacheTTL    time.Duration
	WeatherTTL  time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		MySQLDSN:    env("MYSQL_DSN", "root:root@tcp(localhost:3306)/hotels?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisDB:     atoi("REDIS_DB", 0),
		RedisPass:   env("REDIS_PASSWORD", ""),

		CatalogBase:     env("CATALOG_BASE_URL", "https://fakestoreapi.com"),
		WeatherBase:     env("WEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5"),
		WeatherKey:      env("WEATHER_API_KEY", ""),
		UpstreamRPS:     atoi("UPSTREAM_RPS", 5),
		UpstreamTimeout: time.Duration(atoi("UPSTREAM_TIMEOUT_SECONDS", 10)) * time.Second,

		FirebaseCredentials: env("FIREBASE_CREDENTIALS_FILE", ""),
		FirebaseProjectID:   env("FIREBASE_PROJECT_ID", ""),

		WarmWorkers: atoi("WARM_WORKERS", 4),
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		WeatherTTL:  time.Duration(atoi("WEATHER_TTL_SECONDS", 600)) * time.Second,
	}
	if c.WeatherKey == "" {
		log.Warn().Msg("WEATHER_API_KEY is empty; weather will use fallback values")
	}
	if c.WarmWorkers < 1 {
		c.WarmWorkers = 1
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
