package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const defaultFirebaseJWKSURL = "https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"

type Config struct {
	Port     string
	LogLevel string
	// Document store
	DBUrl          string // empty runs on the in-memory store
	DocumentsTable string
	// Identity verification
	FirebaseProjectID string
	AuthJWKSURL       string
	AuthJWTSecret     string // HS256 secret for local tokens; empty disables
	// Inference provider
	GeminiAPIKey string
	GeminiModel  string
	// Resume processing
	AnalysisResumeMaxChars int
	UploadMaxBytes         int64
	SkillVocabulary        []string // empty uses the built-in vocabulary
	// Malware scanning (clamd); empty address disables it
	ClamAVAddress        string
	ClamAVTimeoutSeconds int
	// Redis Configuration
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds     int
	RateLimitUploadThreshold   int
	RateLimitAnalysisThreshold int
	RateLimitFailClosed        bool
	// Resume archive (S3 compatible)
	S3Bucket          string
	S3Region          string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3Endpoint        string
	// CORS
	CORSAllowedOrigins []string
}

func LoadConfig() (*Config, error) {
	// Load .env file when present (local development)
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DBUrl:          getEnv("DATABASE_URL", ""),
		DocumentsTable: getEnv("DOCUMENTS_TABLE", "documents"),

		FirebaseProjectID: getEnv("FIREBASE_PROJECT_ID", ""),
		AuthJWKSURL:       strings.TrimSpace(getEnv("AUTH_JWKS_URL", defaultFirebaseJWKSURL)),
		AuthJWTSecret:     getEnv("AUTH_JWT_SECRET", ""),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),

		AnalysisResumeMaxChars: getEnvInt("ANALYSIS_RESUME_MAX_CHARS", 6000),
		UploadMaxBytes:         getEnvInt64("UPLOAD_MAX_BYTES", 10<<20), // 10 MiB
		SkillVocabulary:        getEnvList("SKILL_VOCABULARY", nil),

		ClamAVAddress:        getEnv("CLAMAV_ADDRESS", ""),
		ClamAVTimeoutSeconds: getEnvInt("CLAMAV_TIMEOUT_SECONDS", 30),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		RateLimitWindowSeconds:     getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitUploadThreshold:   getEnvInt("RATE_LIMIT_UPLOAD_THRESHOLD", 10),
		RateLimitAnalysisThreshold: getEnvInt("RATE_LIMIT_ANALYSIS_THRESHOLD", 20),
		RateLimitFailClosed:        getEnvBool("RATE_LIMIT_FAIL_CLOSED", false),

		S3Bucket:          getEnv("S3_BUCKET", ""),
		S3Region:          getEnv("S3_REGION", "us-east-1"),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Endpoint:        strings.TrimRight(getEnv("S3_ENDPOINT", ""), "/"),

		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Using the in-memory document store.")
	}
	if cfg.FirebaseProjectID == "" {
		log.Println("WARNING: FIREBASE_PROJECT_ID not configured. Firebase ID tokens will be rejected.")
	}
	if cfg.GeminiAPIKey == "" {
		log.Println("WARNING: GEMINI_API_KEY not configured. /analysis will report failures.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return intVal
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping blank entries.
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

// ValidateAuth fails when no bearer token could ever be accepted.
func (c *Config) ValidateAuth() error {
	if c.FirebaseProjectID == "" && c.AuthJWTSecret == "" {
		return errors.New("FIREBASE_PROJECT_ID or AUTH_JWT_SECRET must be set")
	}
	return nil
}
