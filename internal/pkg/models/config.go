package models

import "time"

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Discord   DiscordConfig
	OTP       OTPConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ShutdownTimeout int // in seconds
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	Database    string
	SSLMode     string
	MaxConns    int
	IdleConns   int
	AutoMigrate bool
}

// RedisConfig contains Redis connection configuration.
// An empty Host disables Redis.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// DiscordConfig contains the bot credentials used for OTP delivery
type DiscordConfig struct {
	BotToken string
}

// OTPConfig controls passcode lifetime and request cooldown
type OTPConfig struct {
	TTL      time.Duration
	Cooldown time.Duration
}

// RateLimitConfig configures the per-IP limiter on auth routes
type RateLimitConfig struct {
	Limit  int
	Period time.Duration
}

// CORSConfig lists the origins allowed to call the API
type CORSConfig struct {
	AllowOrigins []string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
