package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBTLS      string

	SMTPHost   string
	SMTPPort   string
	SMTPSecure bool
	SMTPUser   string
	SMTPPass   string
	SMTPFrom   string

	UploadDir string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "5000"),
		JWTKey:    os.Getenv("JWT_SECRET"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "root"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "greenstech"),
		DBTLS:      getEnv("DB_TLS", "false"),

		SMTPHost:   getEnv("SMTP_HOST", ""),
		SMTPPort:   getEnv("SMTP_PORT", "587"),
		SMTPSecure: getEnv("SMTP_SECURE", "false") == "true",
		SMTPUser:   getEnv("SMTP_USER", ""),
		SMTPPass:   getEnv("SMTP_PASS", ""),
		SMTPFrom:   getEnv("SMTP_FROM", ""),

		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
	}

	// The signing secret has no usable default. Refuse to start without it.
	if AppConfig.JWTKey == "" {
		log.Fatal("JWT_SECRET is not set. Refusing to start with an empty signing secret.")
	}
	if AppConfig.SMTPHost == "" || AppConfig.SMTPUser == "" {
		log.Println("Warning: SMTP is not fully configured. Mail features will fail until SMTP_HOST/SMTP_USER/SMTP_PASS/SMTP_FROM are set.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
