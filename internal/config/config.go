package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Crawler CrawlerConfig
	Fetch   FetchConfig
	Export  ExportConfig
	Server  ServerConfig
	Metrics MetricsConfig
	Logging LoggingConfig
}

type CrawlerConfig struct {
	SeedsFile string
	Workers   int
}

type FetchConfig struct {
	UserAgent         string
	AcceptLanguage    string
	Region            string
	Timeout           time.Duration
	MaxRetries        int
	RetryDelay        time.Duration
	RequestsPerSecond float64
}

type ExportConfig struct {
	OutputPath  string
	DatabaseURL string
	RedisURL    string
	RedisStream string
}

type ServerConfig struct {
	Host            string
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type MetricsConfig struct {
	Port string
}

type LoggingConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Crawler: CrawlerConfig{
			SeedsFile: getEnvOrDefault("CRAWLER_SEEDS_FILE", "start_urls.txt"),
			Workers:   getIntOrDefault("CRAWLER_WORKERS", 5),
		},
		Fetch: FetchConfig{
			UserAgent:         getEnvOrDefault("FETCH_USER_AGENT", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
			AcceptLanguage:    getEnvOrDefault("FETCH_ACCEPT_LANGUAGE", "ru-RU,ru"),
			Region:            getEnvOrDefault("FETCH_REGION", "Краснодар"),
			Timeout:           getDurationOrDefault("FETCH_TIMEOUT", 30*time.Second),
			MaxRetries:        getIntOrDefault("FETCH_MAX_RETRIES", 3),
			RetryDelay:        getDurationOrDefault("FETCH_RETRY_DELAY", 5*time.Second),
			RequestsPerSecond: getFloatOrDefault("FETCH_REQUESTS_PER_SECOND", 1),
		},
		Export: ExportConfig{
			OutputPath:  getEnvOrDefault("EXPORT_OUTPUT_PATH", "products.ndjson"),
			DatabaseURL: os.Getenv("DATABASE_URL"),
			RedisURL:    os.Getenv("REDIS_URL"),
			RedisStream: getEnvOrDefault("REDIS_STREAM", "products:extracted"),
		},
		Server: ServerConfig{
			Host:            getEnvOrDefault("SERVER_HOST", "0.0.0.0"),
			Port:            getEnvOrDefault("SERVER_PORT", "8080"),
			ReadTimeout:     getDurationOrDefault("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDurationOrDefault("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getDurationOrDefault("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Metrics: MetricsConfig{
			Port: getEnvOrDefault("METRICS_PORT", "9090"),
		},
		Logging: LoggingConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "json"),
		},
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Crawler.Workers < 1 {
		return fmt.Errorf("CRAWLER_WORKERS must be at least 1")
	}
	if c.Fetch.MaxRetries < 0 {
		return fmt.Errorf("FETCH_MAX_RETRIES cannot be negative")
	}
	if c.Fetch.RequestsPerSecond <= 0 {
		return fmt.Errorf("FETCH_REQUESTS_PER_SECOND must be positive")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
