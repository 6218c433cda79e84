package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Admin    AdminConfig
	Storage  StorageConfig
	Work     WorkConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	FrontendURL    string
	CompanyName    string
	CompanyAddress string
}

// AdminConfig holds the single admin credential. The auth service hashes the
// password with bcrypt at startup and only keeps the hash in memory.
type AdminConfig struct {
	Username string
	Password string
	Email    string
}

type StorageConfig struct {
	Type     string
	BasePath string
	BaseURL  string
}

// WorkConfig holds the attendance time-window thresholds. It is passed into
// the status derivation as an explicit value so tests can supply their own.
type WorkConfig struct {
	StandardStartTime          string
	StandardEndTime            string
	LateThresholdMinutes       int
	EarlyLeaveThresholdMinutes int
	HalfDayThresholdHours      float64
}

type PayrollConfig struct {
	ProcessingDay int
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hrms_lite"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		FrontendURL:    getEnv("FRONTEND_URL", "http://localhost:3000"),
		CompanyName:    getEnv("COMPANY_NAME", "HRMS Lite"),
		CompanyAddress: getEnv("COMPANY_ADDRESS", ""),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "24h"),
	}

	config.Admin = AdminConfig{
		Username: getEnv("ADMIN_USERNAME", "admin"),
		Password: getEnv("ADMIN_PASSWORD", "admin123"),
		Email:    getEnv("ADMIN_EMAIL", "admin@hrms.com"),
	}

	config.Storage = StorageConfig{
		Type:     getEnv("STORAGE_TYPE", "local"),
		BasePath: getEnv("STORAGE_BASE_PATH", "./uploads"),
		BaseURL:  getEnv("STORAGE_BASE_URL", "http://localhost:8080/uploads"),
	}

	lateThreshold, err := strconv.Atoi(getEnv("WORK_LATE_THRESHOLD_MINUTES", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORK_LATE_THRESHOLD_MINUTES: %w", err)
	}
	earlyThreshold, err := strconv.Atoi(getEnv("WORK_EARLY_LEAVE_THRESHOLD_MINUTES", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORK_EARLY_LEAVE_THRESHOLD_MINUTES: %w", err)
	}
	halfDayHours, err := strconv.ParseFloat(getEnv("WORK_HALF_DAY_THRESHOLD_HOURS", "4"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid WORK_HALF_DAY_THRESHOLD_HOURS: %w", err)
	}

	config.Work = WorkConfig{
		StandardStartTime:          getEnv("WORK_STANDARD_START_TIME", "09:00"),
		StandardEndTime:            getEnv("WORK_STANDARD_END_TIME", "18:00"),
		LateThresholdMinutes:       lateThreshold,
		EarlyLeaveThresholdMinutes: earlyThreshold,
		HalfDayThresholdHours:      halfDayHours,
	}

	processingDay, err := strconv.Atoi(getEnv("PAYROLL_PROCESSING_DAY", "28"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_PROCESSING_DAY: %w", err)
	}
	config.Payroll = PayrollConfig{ProcessingDay: processingDay}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Payroll.ProcessingDay < 1 || c.Payroll.ProcessingDay > 28 {
		return fmt.Errorf("PAYROLL_PROCESSING_DAY must be between 1 and 28")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
