package infra

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	PostgresURL string

	JWTSecret string
	JWTExpiry time.Duration

	SMTP    SMTPConfig
	Storage StorageConfig
	Admin   AdminConfig
}

type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	FromName   string
	UseSSL     bool
	AppName    string
	AppBaseURL string
}

type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
	Region    string
}

// AdminConfig seeds the bootstrap admin account created at startup when no
// account with that email exists yet.
type AdminConfig struct {
	Username string
	Email    string
	Password string
	Phone    string
}

// LoadConfig reads configuration from the environment, after loading a .env
// file when one is present.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		PostgresURL: getEnv("POSTGRES_URL", ""),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		JWTExpiry:   time.Duration(getEnvInt("JWT_EXPIRY_MINUTES", 60)) * time.Minute,
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvInt("SMTP_PORT", 587),
			Username:   getEnv("SMTP_USERNAME", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			From:       getEnv("SMTP_FROM", ""),
			FromName:   getEnv("SMTP_FROM_NAME", "Barrio"),
			UseSSL:     getEnvBool("SMTP_USE_SSL", false),
			AppName:    getEnv("APP_NAME", "Barrio"),
			AppBaseURL: getEnv("APP_BASE_URL", "http://localhost:3000"),
		},
		Storage: StorageConfig{
			Endpoint:  getEnv("STORAGE_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("STORAGE_ACCESS_KEY", ""),
			SecretKey: getEnv("STORAGE_SECRET_KEY", ""),
			UseSSL:    getEnvBool("STORAGE_USE_SSL", false),
			Bucket:    getEnv("STORAGE_BUCKET", "barrio"),
			Region:    getEnv("STORAGE_REGION", ""),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", ""),
			Email:    getEnv("ADMIN_EMAIL", ""),
			Password: getEnv("ADMIN_PASSWORD", ""),
			Phone:    getEnv("ADMIN_PHONE", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid value for %s: %v", key, err)
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Invalid value for %s: %v", key, err)
		return fallback
	}
	return parsed
}
