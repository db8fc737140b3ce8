package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/wadjakorntonsri/cloud-resume/pkg/core/domain"
)

type Config struct {
	Port     string
	AppEnv   string
	LogLevel string

	// Storage
	DatabaseURL string
	TableName   string
	AWSRegion   string

	// Contact notifications
	MailProvider string
	MailFrom     string
	MailTo       string
	MailSubject  string
	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPass     string

	// Base URL of the API as seen by the client
	APIURL string

	LambdaFunction  string
	ShutdownTimeout time.Duration
}

func Load() *Config {
	_ = godotenv.Load() // Ignore error if .env not found (e.g. prod)

	return &Config{
		Port:            getEnv("PORT", "8080"),
		AppEnv:          getEnv("APP_ENV", "local"),
		LogLevel:        getEnv("LOG_LEVEL", "INFO"),
		DatabaseURL:     getEnv("DATABASE_URL", "file:db.sqlite"),
		TableName:       getEnv("TABLE_NAME", "visitor"),
		AWSRegion:       getEnv("AWS_REGION", "us-east-1"),
		MailProvider:    getEnv("MAIL_PROVIDER", "log"),
		MailFrom:        getEnv("MAIL_FROM", "contact@example.com"),
		MailTo:          getEnv("MAIL_TO", "owner@example.com"),
		MailSubject:     getEnv("MAIL_SUBJECT", domain.DefaultSubject),
		SMTPHost:        getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:        getEnv("SMTP_PORT", "587"),
		SMTPUser:        getEnv("SMTP_USER", ""),
		SMTPPass:        getEnv("SMTP_PASS", ""),
		APIURL:          getEnv("API_URL", "http://localhost:8080"),
		LambdaFunction:  getEnv("LAMBDA_FUNCTION", ""),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
	}
}

// Mailbox returns the fixed sender, recipient and subject of contact emails.
func (c *Config) Mailbox() domain.Mailbox {
	return domain.Mailbox{From: c.MailFrom, To: c.MailTo, Subject: c.MailSubject}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
