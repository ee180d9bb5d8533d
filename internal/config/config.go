package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	DBMaxConns  int    `env:"DB_MAX_CONNS" envDefault:"10"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Responder alert webhook
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Geocoding
	GeocoderProvider   string        `env:"GEOCODER_PROVIDER" envDefault:"nominatim"`
	NominatimURL       string        `env:"NOMINATIM_URL" envDefault:"https://nominatim.openstreetmap.org/search"`
	NominatimUserAgent string        `env:"NOMINATIM_USER_AGENT" envDefault:"RuralHealthApp/1.0"`
	NominatimRPS       float64       `env:"NOMINATIM_RPS" envDefault:"1"`
	GoogleMapsAPIKey   string        `env:"GOOGLE_MAPS_API_KEY"`
	GeocodeCacheTTL    time.Duration `env:"GEOCODE_CACHE_TTL" envDefault:"24h"`

	// Facility search
	OverpassURL         string `env:"OVERPASS_URL" envDefault:"https://overpass-api.de/api/interpreter"`
	FacilityRadius      int    `env:"FACILITY_SEARCH_RADIUS" envDefault:"5000"`
	FacilityMaxResults  int    `env:"FACILITY_MAX_RESULTS" envDefault:"3"`
	FacilityConcurrency int    `env:"FACILITY_GEOCODE_CONCURRENCY" envDefault:"4"`

	// Timeout for every outbound call (geocoding, radius search, email dispatch)
	OutboundTimeout time.Duration `env:"OUTBOUND_TIMEOUT" envDefault:"10s"`

	// Postmark
	PostmarkURL           string `env:"POSTMARK_URL" envDefault:"https://api.postmarkapp.com"`
	PostmarkServerToken   string `env:"POSTMARK_SERVER_API_TOKEN"`
	PostmarkFromEmail     string `env:"POSTMARK_FROM_EMAIL" envDefault:"noreply@yourdomain.com"`
	PostmarkMessageStream string `env:"POSTMARK_MESSAGE_STREAM" envDefault:"outbound"`

	// Vocabulary override file (symptoms, critical list, health tips)
	VocabularyFile string `env:"VOCABULARY_FILE"`

	// Basic auth for the inbound email webhook
	InboundUser     string `env:"INBOUND_USER"`
	InboundPassword string `env:"INBOUND_PASSWORD"`

	// Allowed dashboard origins
	CORSOrigins []string `env:"CORS_ORIGINS"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		DBMaxConns:            getEnvAsInt("DB_MAX_CONNS", 10),
		HTTPPort:              getEnv("HTTP_PORT", "8080"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:             os.Getenv("REDIS_PASSWORD"),
		RedisDB:               getEnvAsInt("REDIS_DB", 0),
		WebhookURL:            os.Getenv("WEBHOOK_URL"),
		WebhookSecret:         os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:        getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:     getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:      getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		GeocoderProvider:      strings.ToLower(getEnv("GEOCODER_PROVIDER", "nominatim")),
		NominatimURL:          getEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org/search"),
		NominatimUserAgent:    getEnv("NOMINATIM_USER_AGENT", "RuralHealthApp/1.0"),
		NominatimRPS:          getEnvAsFloat("NOMINATIM_RPS", 1),
		GoogleMapsAPIKey:      os.Getenv("GOOGLE_MAPS_API_KEY"),
		GeocodeCacheTTL:       getEnvAsDuration("GEOCODE_CACHE_TTL", 24*time.Hour),
		OverpassURL:           getEnv("OVERPASS_URL", "https://overpass-api.de/api/interpreter"),
		FacilityRadius:        getEnvAsInt("FACILITY_SEARCH_RADIUS", 5000),
		FacilityMaxResults:    getEnvAsInt("FACILITY_MAX_RESULTS", 3),
		FacilityConcurrency:   getEnvAsInt("FACILITY_GEOCODE_CONCURRENCY", 4),
		OutboundTimeout:       getEnvAsDuration("OUTBOUND_TIMEOUT", 10*time.Second),
		PostmarkURL:           getEnv("POSTMARK_URL", "https://api.postmarkapp.com"),
		PostmarkServerToken:   os.Getenv("POSTMARK_SERVER_API_TOKEN"),
		PostmarkFromEmail:     getEnv("POSTMARK_FROM_EMAIL", "noreply@yourdomain.com"),
		PostmarkMessageStream: getEnv("POSTMARK_MESSAGE_STREAM", "outbound"),
		VocabularyFile:        os.Getenv("VOCABULARY_FILE"),
		InboundUser:           os.Getenv("INBOUND_USER"),
		InboundPassword:       os.Getenv("INBOUND_PASSWORD"),
		CORSOrigins:           getEnvAsList("CORS_ORIGINS"),
		APIKeys:               getEnvAsList("API_KEYS"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	switch cfg.GeocoderProvider {
	case "nominatim":
	case "google", "chain":
		if cfg.GoogleMapsAPIKey == "" {
			return nil, fmt.Errorf("GOOGLE_MAPS_API_KEY is required for geocoder provider %q", cfg.GeocoderProvider)
		}
	default:
		return nil, fmt.Errorf("unknown GEOCODER_PROVIDER %q", cfg.GeocoderProvider)
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList разбирает список значений, разделённых запятыми
func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var values []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			values = append(values, item)
		}
	}
	return values
}
