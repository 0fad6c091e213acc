package models

// Config holds the full application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	Auth     AuthConfig
	OTP      OTPConfig
	Captcha  CaptchaConfig
	Logger   LoggerConfig
}

// AppConfig holds application metadata
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig holds NSQ producer configuration
type NSQConfig struct {
	Address string
}

// AuthConfig holds token signing configuration.
// Identity assertions and session tokens share a signing secret but carry
// distinct audiences and lifetimes.
type AuthConfig struct {
	Secret             string
	Issuer             string
	AssertionAudience  string
	SessionAudience    string
	AssertionExpiryMin int
	SessionExpiryMin   int
	DefaultRole        string
	DefaultCountryCode string
}

// OTPConfig holds verification-challenge policy
type OTPConfig struct {
	CodeLength      int
	ExpiryMinutes   int
	MaxAttempts     int
	CooldownSeconds int
}

// CaptchaConfig holds the human-verification gate configuration
type CaptchaConfig struct {
	VerifyURL      string
	Secret         string
	TimeoutSeconds int
	Enabled        bool
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level string
}
