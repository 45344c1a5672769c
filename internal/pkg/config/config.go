package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/models"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// InitConfig loads configuration from the environment. In the local
// environment the dotenv file at configPath is loaded first.
func InitConfig(configPath string) *models.Config {
	v := newViper()
	if v.GetString("APP_ENV") == "local" && configPath != "" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfig(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("APP_NAME", "guild-service")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_VERSION", "dev")

	v.SetDefault("SERVER_PORT", 3001)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_IDLE_CONNS", 2)
	v.SetDefault("DB_AUTO_MIGRATE", false)

	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("JWT_EXPIRATION", 15)
	v.SetDefault("JWT_ISSUER", "guild-service")

	v.SetDefault("OTP_TTL", time.Hour)
	v.SetDefault("OTP_COOLDOWN", 8*time.Hour)

	v.SetDefault("RATE_LIMIT_LIMIT", 30)
	v.SetDefault("RATE_LIMIT_PERIOD", time.Minute)

	v.SetDefault("CORS_ALLOW_ORIGINS", "*")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")
	return v
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")
	configs.Database.AutoMigrate = v.GetBool("DB_AUTO_MIGRATE")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// JWT config
	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	// Discord config
	configs.Discord.BotToken = v.GetString("DISCORD_BOT_TOKEN")

	// OTP config
	configs.OTP.TTL = v.GetDuration("OTP_TTL")
	configs.OTP.Cooldown = v.GetDuration("OTP_COOLDOWN")

	// Rate limit config
	configs.RateLimit.Limit = v.GetInt("RATE_LIMIT_LIMIT")
	configs.RateLimit.Period = v.GetDuration("RATE_LIMIT_PERIOD")

	// CORS config
	configs.CORS.AllowOrigins = splitList(v.GetString("CORS_ALLOW_ORIGINS"))

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return configs
}

// Validate checks the settings the server cannot start without
func Validate(cfg *models.Config) error {
	var errs []error
	if cfg.JWT.Secret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if cfg.Discord.BotToken == "" {
		errs = append(errs, errors.New("DISCORD_BOT_TOKEN is required"))
	}
	if cfg.Database.Database == "" {
		errs = append(errs, errors.New("DB_DATABASE is required"))
	}
	if cfg.OTP.TTL <= 0 {
		errs = append(errs, errors.New("OTP_TTL must be positive"))
	}
	return errors.Join(errs...)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
