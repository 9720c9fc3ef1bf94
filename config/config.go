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
	Port     string
	AppEnv   string
	LogLevel string
	// Mail account (the same mailbox sends and receives notifications)
	MailTransport string // "smtp" or "resend"
	SMTPHost      string
	SMTPPort      string
	EmailUser     string
	EmailPass     string
	MailFromName  string
	MailTo        string
	SMTPTimeout   time.Duration
	ResendAPIKey  string
	// Upload limits for the quote form
	MaxUploadMB int
	// Rendering
	SanitizeHTML bool
	// CORS
	AllowedOrigins []string
}

func LoadConfig() (*Config, error) {
	// .env is only present locally; missing file is not an error
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		AppEnv:   strings.ToLower(getEnv("APP_ENV", getEnv("NODE_ENV", "development"))),
		LogLevel: getEnv("LOG_LEVEL", "debug"),
		// Mail
		MailTransport: strings.ToLower(getEnv("MAIL_TRANSPORT", "smtp")),
		SMTPHost:      getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		EmailUser:     getEnv("EMAIL_USER", ""),
		EmailPass:     getEnv("EMAIL_PASS", ""),
		MailFromName:  getEnv("MAIL_FROM_NAME", "Formulaire Site Web"),
		SMTPTimeout:   time.Duration(getEnvInt("SMTP_TIMEOUT_SECONDS", 15)) * time.Second,
		ResendAPIKey:  getEnv("RESEND_API_KEY", ""),
		// Uploads
		MaxUploadMB: getEnvInt("MAX_UPLOAD_MB", 10),
		// Rendering
		SanitizeHTML: getEnvBool("SANITIZE_HTML", false),
		// CORS
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS"),
	}
	cfg.MailTo = getEnv("MAIL_TO", cfg.EmailUser)

	if cfg.EmailUser == "" {
		log.Println("WARNING: EMAIL_USER is missing. Form submissions will be rejected.")
	}
	if cfg.MailTransport == "resend" && cfg.ResendAPIKey == "" {
		log.Println("WARNING: MAIL_TRANSPORT=resend but RESEND_API_KEY is not set.")
	}

	return cfg, nil
}

// IsProduction reports whether raw error details must be hidden from clients.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// MaxUploadBytes is the multipart memory budget for the quote form.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
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

func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimRight(strings.TrimSpace(part), "/"); part != "" {
			out = append(out, part)
		}
	}
	return out
}
