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
	Port        string
	Environment string
	LogLevel    string
	DBUrl       string
	FrontendURL string
	// Extra CORS origins, comma separated
	AllowedOrigins []string
	// SMTP Configuration
	SMTPHost       string
	SMTPPort       string
	SMTPUsername   string
	SMTPPassword   string
	SMTPFromEmail  string // Verified sender email (different from SMTP login)
	ContactEmailTo string
	// Redis Configuration
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
	RateLimitContactWindow   int
	RateLimitContactLimit    int
	// Contact delivery
	ContactDeliveryTimeout  time.Duration
	ContactSimulatedDelay   time.Duration
	ContactSimulateDelivery bool
	// Submission archive (AWS S3 or Wasabi)
	S3Provider           string
	S3AccessKeyID        string
	S3SecretAccessKey    string
	S3Region             string
	S3Endpoint           string
	ContactArchiveBucket string
}

func LoadConfig() (*Config, error) {
	// Only effective locally; production reads the real environment
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		DBUrl:          getEnv("DATABASE_URL", ""),
		FrontendURL:    strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "https://europlast.eu,https://www.europlast.eu")),
		// SMTP Configuration
		SMTPHost:       getEnv("SMTP_HOST", ""),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail:  getEnv("SMTP_FROM_EMAIL", "noreply@europlast.eu"),
		ContactEmailTo: getEnv("CONTACT_EMAIL_TO", "info@europlast.eu"),
		// Redis Configuration
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		RateLimitContactWindow:   getEnvInt("RATE_LIMIT_CONTACT_WINDOW_SECONDS", 600),
		RateLimitContactLimit:    getEnvInt("RATE_LIMIT_CONTACT_THRESHOLD", 5),
		// Contact delivery
		ContactDeliveryTimeout:  time.Duration(getEnvInt("CONTACT_DELIVERY_TIMEOUT_SECONDS", 15)) * time.Second,
		ContactSimulatedDelay:   time.Duration(getEnvInt("CONTACT_SIMULATED_DELAY_MS", 2000)) * time.Millisecond,
		ContactSimulateDelivery: getEnvBool("CONTACT_SIMULATE_DELIVERY", false),
		// Submission archive
		S3Provider:           getEnv("S3_PROVIDER", "aws"),
		S3AccessKeyID:        getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey:    getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Region:             getEnv("S3_REGION", ""),
		S3Endpoint:           getEnv("S3_ENDPOINT", ""),
		ContactArchiveBucket: getEnv("CONTACT_ARCHIVE_BUCKET", ""),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Contact submissions will not be archived.")
	}

	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting and submission guard will use in-memory fallback.")
	}

	return cfg, nil
}

// SMTPConfigured reports whether the mail collaborator can be used.
func (c *Config) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUsername != "" && c.SMTPPassword != ""
}

// IsProduction reports whether the service runs in release mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
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
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimRight(strings.TrimSpace(part), "/")
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
