package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host            string        `mapstructure:"SERVER_HOST" validate:"required"`
	Port            int           `mapstructure:"SERVER_PORT" validate:"required"`
	ShutdownTimeout time.Duration `mapstructure:"SERVER_SHUTDOWN_TIMEOUT" validate:"required"`
	MaxAllowedSize  int           `mapstructure:"SERVER_MAX_ALLOWED_BODY_SIZE" validate:"required"`
}

type MongoConfig struct {
	URI      string `mapstructure:"MONGO_URI" validate:"required"`
	Database string `mapstructure:"MONGO_DATABASE" validate:"required"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"REDIS_ADDR" validate:"required"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB"`
}

type JwtConfig struct {
	Secret           string        `mapstructure:"JWT_SECRET" validate:"required"`
	Issuer           string        `mapstructure:"JWT_ISSUER" validate:"required"`
	ExpiresIn        time.Duration `mapstructure:"JWT_EXPIRES_IN" validate:"required"`
	RefreshExpiresIn time.Duration `mapstructure:"JWT_REFRESH_EXPIRES_IN" validate:"required"`
}

type SecurityConfig struct {
	BcryptCost         int           `mapstructure:"BCRYPT_COST" validate:"required"`
	PasswordMaxAge     time.Duration `mapstructure:"PASSWORD_MAX_AGE" validate:"required"`
	RateLimitCapacity  int           `mapstructure:"RATE_LIMIT_CAPACITY" validate:"required"`
	RateLimitFillEvery time.Duration `mapstructure:"RATE_LIMIT_FILL_EVERY" validate:"required"`
	RateLimiterIdle    time.Duration `mapstructure:"RATE_LIMIT_IDLE_AFTER" validate:"required"`
}

type LogConfig struct {
	FilePath string `mapstructure:"LOG_FILE_PATH" validate:"required"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:",squash"`
	Mongo    MongoConfig    `mapstructure:",squash"`
	Redis    RedisConfig    `mapstructure:",squash"`
	Jwt      JwtConfig      `mapstructure:",squash"`
	Security SecurityConfig `mapstructure:",squash"`
	Log      LogConfig      `mapstructure:",squash"`
}

func setDefaults() {
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_PORT", 8000)
	viper.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "10s")
	viper.SetDefault("SERVER_MAX_ALLOWED_BODY_SIZE", 1048576)
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "farmer_ordering")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("JWT_ISSUER", "farmer-ordering-system")
	viper.SetDefault("JWT_EXPIRES_IN", "1h")
	viper.SetDefault("JWT_REFRESH_EXPIRES_IN", "24h")
	viper.SetDefault("BCRYPT_COST", 10)
	viper.SetDefault("PASSWORD_MAX_AGE", "720h")
	viper.SetDefault("RATE_LIMIT_CAPACITY", 20)
	viper.SetDefault("RATE_LIMIT_FILL_EVERY", "500ms")
	viper.SetDefault("RATE_LIMIT_IDLE_AFTER", "3m")
	viper.SetDefault("LOG_FILE_PATH", "logs/app.log")
}

// LoadConfig reads configuration from the given .env file if present and
// from the environment, then validates the result. Environment variables
// take precedence over file values.
func LoadConfig(path string) (*Config, error) {
	setDefaults()

	viper.SetConfigFile(path)
	viper.SetConfigType("env")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read the config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal the config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("failed to validate the config: %w", err)
	}
	return &cfg, nil
}

func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
