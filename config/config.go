package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	GinMode     string
	LogLevel    string
	SiteURL     string
	ContentPath string
	// Extra origins allowed by CORS besides SiteURL (comma separated in env)
	AllowedOrigins []string
	// Mail transport: "smtp" or "mailgun"
	MailTransport  string
	MailFrom       string
	ContactEmailTo string
	// SMTP Configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	// Mailgun Configuration
	MailgunDomain string
	MailgunAPIKey string
	MailgunEU     bool
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds    int
	RateLimitContactThreshold int
}

func LoadConfig() (*Config, error) {
	// .env is optional; in production the variables come from the platform
	_ = godotenv.Load()

	smtpUser := getEnv("SMTP_USERNAME", getEnv("EMAIL_USER", ""))

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		SiteURL:        strings.TrimRight(getEnv("SITE_URL", "https://www.sportloodsoost.nl"), "/"),
		ContentPath:    getEnv("CONTENT_PATH", ""),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS"),
		MailTransport:  strings.ToLower(getEnv("MAIL_TRANSPORT", "smtp")),
		// The original site sent from the SMTP login address
		MailFrom:       getEnv("MAIL_FROM", smtpUser),
		ContactEmailTo: getEnv("CONTACT_EMAIL_TO", "info@sportloodsoost.nl"),
		// SMTP Configuration
		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUsername: smtpUser,
		SMTPPassword: getEnv("SMTP_PASSWORD", getEnv("EMAIL_PASSWORD", "")),
		// Mailgun Configuration
		MailgunDomain: getEnv("MAILGUN_DOMAIN", ""),
		MailgunAPIKey: getEnv("MAILGUN_API_KEY", ""),
		MailgunEU:     getEnvBool("MAILGUN_EU", true),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds:    getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 600),   // 10 minute window
		RateLimitContactThreshold: getEnvInt("RATE_LIMIT_CONTACT_THRESHOLD", 5), // 5 submissions per window
	}

	if cfg.MailFrom == "" {
		log.Println("WARNING: MAIL_FROM/SMTP_USERNAME is missing. Contact emails cannot be sent.")
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// IsProduction reports whether gin runs in release mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
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

// getEnvList splits a comma separated variable, dropping blanks
func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimRight(strings.TrimSpace(part), "/"); p != "" {
			out = append(out, p)
		}
	}
	return out
}
