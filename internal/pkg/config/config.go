package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/mittalrohan/kirana/internal/pkg/models"
)

// InitConfig loads configuration from a .env file (local environments
// only) and then from environment variables.
func InitConfig(configPath string) *models.Config {
	env := GetEnv("APP_ENV", "local")
	if env == "local" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "session-service")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9990)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NSQ config
	configs.NSQ.Address = GetEnv("NSQ_ADDRESS", "")

	// Auth config
	configs.Auth.Secret = GetEnv("AUTH_SECRET", "")
	configs.Auth.Issuer = GetEnv("AUTH_ISSUER", "kirana-session")
	configs.Auth.AssertionAudience = GetEnv("AUTH_ASSERTION_AUDIENCE", "kirana-bootstrap")
	configs.Auth.SessionAudience = GetEnv("AUTH_SESSION_AUDIENCE", "kirana-app")
	configs.Auth.AssertionExpiryMin = GetEnvAsInt("AUTH_ASSERTION_EXPIRY_MIN", 5)
	configs.Auth.SessionExpiryMin = GetEnvAsInt("AUTH_SESSION_EXPIRY_MIN", 1440)
	configs.Auth.DefaultRole = GetEnv("AUTH_DEFAULT_ROLE", models.RoleUser)
	configs.Auth.DefaultCountryCode = GetEnv("AUTH_DEFAULT_COUNTRY_CODE", "91")

	// OTP config
	configs.OTP.CodeLength = GetEnvAsInt("OTP_CODE_LENGTH", 6)
	configs.OTP.ExpiryMinutes = GetEnvAsInt("OTP_EXPIRY_MINUTES", 5)
	configs.OTP.MaxAttempts = GetEnvAsInt("OTP_MAX_ATTEMPTS", 3)
	configs.OTP.CooldownSeconds = GetEnvAsInt("OTP_COOLDOWN_SECONDS", 60)

	// Captcha config
	configs.Captcha.VerifyURL = GetEnv("CAPTCHA_VERIFY_URL", "")
	configs.Captcha.Secret = GetEnv("CAPTCHA_SECRET", "")
	configs.Captcha.TimeoutSeconds = GetEnvAsInt("CAPTCHA_TIMEOUT_SECONDS", 10)
	configs.Captcha.Enabled = GetEnvAsBool("CAPTCHA_ENABLED", true)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
