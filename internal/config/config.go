package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Ai        AIConfig
	Session   SessionConfig
	Catalog   CatalogConfig
	Recommend RecommendConfig
	Otel      OtelConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	NatsEnabled        bool
	RedisURL           string
	JwtSecret          string
}

type DatabaseConfig struct {
	Connection string
}

type AIConfig struct {
	EmbeddingProvider string // "local", "ollama", "gemini" or "jina"
	OllamaBaseURL     string
	OllamaModel       string
	GeminiAPIKey      string
	GeminiModel       string
	JinaAPIKey        string
	LocalDimensions   int
	Timeout           time.Duration
	CacheTTL          time.Duration
	PersistEmbeddings bool
	BreakerFailures   int
	BreakerCooldown   time.Duration
}

type SessionConfig struct {
	Backend         string // "memory" or "redis"
	MaxAge          time.Duration
	CleanupInterval time.Duration
	HistoryLimit    int
	RedisPrefix     string
}

type CatalogConfig struct {
	Source   string // "db" or "file"
	FilePath string
}

type RecommendConfig struct {
	DefaultTopK         int
	SimilarityThreshold float64
	TaxonomyPath        string
	TimeZone            string
}

type OtelConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			NatsEnabled:        getEnvAsBool("NATS_ENABLED", false),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			JwtSecret:          getEnv("JWT_SECRET", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Ai: AIConfig{
			EmbeddingProvider: strings.ToLower(getEnv("EMBEDDING_PROVIDER", "local")),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:       getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			GeminiAPIKey:      getEnv("GOOGLE_GEMINI_API_KEY", ""),
			GeminiModel:       getEnv("GEMINI_EMBEDDING_MODEL", "text-embedding-004"),
			JinaAPIKey:        getEnv("JINA_API_KEY", ""),
			LocalDimensions:   getEnvAsInt("LOCAL_EMBEDDING_DIMENSIONS", 384),
			Timeout:           getEnvAsDuration("EMBEDDING_TIMEOUT", 30*time.Second),
			CacheTTL:          getEnvAsDuration("EMBEDDING_CACHE_TTL", time.Hour),
			PersistEmbeddings: getEnvAsBool("EMBEDDING_PERSIST", true),
			BreakerFailures:   getEnvAsInt("EMBEDDING_BREAKER_FAILURES", 5),
			BreakerCooldown:   getEnvAsDuration("EMBEDDING_BREAKER_COOLDOWN", 30*time.Second),
		},
		Session: SessionConfig{
			Backend:         strings.ToLower(getEnv("SESSION_BACKEND", "memory")),
			MaxAge:          getEnvAsDuration("SESSION_MAX_AGE", 24*time.Hour),
			CleanupInterval: getEnvAsDuration("SESSION_CLEANUP_INTERVAL", time.Hour),
			HistoryLimit:    getEnvAsInt("SESSION_HISTORY_LIMIT", 5),
			RedisPrefix:     getEnv("SESSION_REDIS_PREFIX", "gift:session:"),
		},
		Catalog: CatalogConfig{
			Source:   strings.ToLower(getEnv("CATALOG_SOURCE", "db")),
			FilePath: getEnv("CATALOG_FILE", "data/products.json"),
		},
		Recommend: RecommendConfig{
			DefaultTopK:         getEnvAsInt("RECOMMEND_DEFAULT_TOP_K", 5),
			SimilarityThreshold: getEnvAsFloat("RECOMMEND_SIMILARITY_THRESHOLD", 0.15),
			TaxonomyPath:        getEnv("TAXONOMY_FILE", ""),
			TimeZone:            getEnv("RECOMMEND_TIME_ZONE", "Africa/Cairo"),
		},
		Otel: OtelConfig{
			Enabled:     getEnvAsBool("OTEL_ENABLED", false),
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "gift-recommender-backend"),
		},
	}
}

// Location resolves the configured time zone, falling back to UTC.
func (c RecommendConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		log.Printf("Warning: unknown time zone %q, using UTC", c.TimeZone)
		return time.UTC
	}
	return loc
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
