package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
)

type Config struct {
	AppPort string

	DBPath  string
	BlobDir string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs int

	// External collaborators: text extraction service and an
	// OpenAI-compatible embeddings/chat endpoint.
	ExtractorURL  string
	AIBaseURL     string
	AIAPIKey      string
	AIEmbedModel  string
	AIChatModel   string
	AITimeoutSecs int

	// Optional YAML overriding the compiled eligibility policy.
	RulesConfig string

	ParseTimeoutSecs    int
	ParseAllConcurrency int

	LogLevel  string
	LogFormat string
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func Load() *Config {
	return &Config{
		AppPort: getenv("APP_PORT", "8080"),

		DBPath:  getenv("DB_PATH", "./social_support.db"),
		BlobDir: getenv("BLOB_DIR", "./blobs"),

		RedisAddr: getenv("REDIS_ADDR", ""),
		RedisDB:   getenvInt("REDIS_DB", 0),

		IdempTTLSecs: getenvInt("IDEMPOTENCY_TTL_SECONDS", 300),

		ExtractorURL:  getenv("EXTRACTOR_URL", "http://extractor:9090"),
		AIBaseURL:     getenv("AI_BASE_URL", "https://api.openai.com/v1"),
		AIAPIKey:      os.Getenv("AI_API_KEY"),
		AIEmbedModel:  getenv("AI_EMBED_MODEL", "text-embedding-3-small"),
		AIChatModel:   getenv("AI_CHAT_MODEL", "gpt-4o-mini"),
		AITimeoutSecs: getenvInt("AI_TIMEOUT_SECONDS", 60),

		RulesConfig: os.Getenv("RULES_CONFIG"),

		ParseTimeoutSecs:    getenvInt("PARSE_TIMEOUT_SECONDS", 60),
		ParseAllConcurrency: getenvInt("PARSE_ALL_CONCURRENCY", 4),

		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "json"),
	}
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if _, err := net.LookupPort("tcp", c.AppPort); err != nil {
		return fmt.Errorf("invalid APP_PORT %q: %w", c.AppPort, err)
	}
	if c.DBPath == "" {
		return errors.New("missing DB_PATH")
	}
	if c.BlobDir == "" {
		return errors.New("missing BLOB_DIR")
	}
	if c.ExtractorURL == "" {
		return errors.New("missing EXTRACTOR_URL")
	}
	if c.AIBaseURL == "" {
		return errors.New("missing AI_BASE_URL")
	}
	if c.ParseAllConcurrency < 1 {
		return fmt.Errorf("PARSE_ALL_CONCURRENCY must be >= 1, got %d", c.ParseAllConcurrency)
	}
	return nil
}
