package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Generation
	GeminiModel string
	GenAttempts int
	GenTimeout  time.Duration

	// Chunking
	ChunkSize int

	// Input handling
	MaxUploadBytes    int64
	DefaultNumOptions int

	// ExtractionStrict makes a document that yields no text a hard error.
	// When false, an empty extraction flows through and surfaces as a
	// no-data result instead.
	ExtractionStrict bool

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8080"),

		GeminiModel: envOr("GEMINI_MODEL", "gemini-2.5-flash"),
		GenAttempts: envInt("GEN_ATTEMPTS", 3),
		GenTimeout:  envDuration("GEN_TIMEOUT", 60*time.Second),

		ChunkSize: envInt("CHUNK_SIZE", 3000),

		MaxUploadBytes:    envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB
		DefaultNumOptions: envInt("DEFAULT_NUM_OPTIONS", 5),

		ExtractionStrict: envBool("EXTRACTION_STRICT", true),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", false),
	}

	if cfg.GenAttempts <= 0 {
		cfg.GenAttempts = 3
	}
	if cfg.GenTimeout <= 0 {
		cfg.GenTimeout = 60 * time.Second
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = 3000
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.DefaultNumOptions != 4 && cfg.DefaultNumOptions != 5 {
		cfg.DefaultNumOptions = 5
	}

	return cfg
}

func (c Config) Validate() error {
	if c.GeminiModel == "" {
		return fmt.Errorf("GEMINI_MODEL must not be empty")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
