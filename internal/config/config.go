package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Sheets    SheetsConfig
	Auth      AuthConfig
	Log       LogConfig
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port           int `mapstructure:"port" validate:"required"`
	TimeoutSeconds int `mapstructure:"timeoutSeconds"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     int    `mapstructure:"port" validate:"required"`
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name" validate:"required"`
	SSLMode  string `mapstructure:"sslmode"`
}

type SheetsConfig struct {
	SpreadsheetID string `mapstructure:"spreadsheet_id" validate:"required"`
	APIKey        string `mapstructure:"api_key" validate:"required"`
}

// AuthConfig configures the credential check for the single receptionist
// login. PasswordHash is a bcrypt hash; Password is a development fallback
// that gets hashed at startup when no hash is configured.
type AuthConfig struct {
	Username      string `mapstructure:"username" validate:"required"`
	Password      string `mapstructure:"password"`
	PasswordHash  string `mapstructure:"password_hash"`
	SessionSecret string `mapstructure:"session_secret" validate:"required"`
	SessionHours  int    `mapstructure:"session_hours"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Auth.SessionHours == 0 {
		config.Auth.SessionHours = 24
	}
	if config.RateLimit.RPS == 0 {
		config.RateLimit.RPS = 20
		config.RateLimit.Burst = 40
	}

	if err := validator.New().Struct(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if config.Auth.Password == "" && config.Auth.PasswordHash == "" {
		return nil, fmt.Errorf("invalid configuration: auth.password or auth.password_hash must be set")
	}

	return &config, nil
}
