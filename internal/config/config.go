package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	SMTP      SMTPConfig
	SMS       SMSConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
}

type ServerConfig struct {
	Port        string
	Host        string
	Environment string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// JWTConfig holds every signing secret and lifetime the token codec needs.
// Constructed once at startup and passed by reference; nothing reads the
// process environment after Load returns.
type JWTConfig struct {
	ActivationSecret     string
	ActivationTTLMinutes int

	AccessSecret     string
	AccessTTLMinutes int

	RefreshSecret   string
	RefreshTTLHours int

	CustomerSecret   string
	CustomerTTLHours int

	OTPTTLMinutes int
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type SMSConfig struct {
	TwilioAccountSID string
	TwilioAuthToken  string
	FromNumber       string
}

type RateLimitConfig struct {
	GeneralRPS   float64 // Requests per second for general endpoints
	GeneralBurst int     // Burst size for general endpoints
}

type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AddConfigPath(".")
	if homeDir, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(homeDir)
	}
	viper.AutomaticEnv()

	viper.SetDefault("ACTIVATION_TTL_MINUTES", 10)
	viper.SetDefault("ACCESS_TTL_MINUTES", 15)
	viper.SetDefault("REFRESH_TTL_HOURS", 168)
	viper.SetDefault("CUSTOMER_TTL_HOURS", 24)
	viper.SetDefault("OTP_TTL_MINUTES", 10)

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		log.Printf("Warning: config file not found: %v. Falling back to environment variables only.", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:        viper.GetString("SERVER_PORT"),
			Host:        viper.GetString("SERVER_HOST"),
			Environment: viper.GetString("ENVIRONMENT"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			DBName:   viper.GetString("DB_NAME"),
			SSLMode:  viper.GetString("DB_SSLMODE"),
		},
		JWT: JWTConfig{
			ActivationSecret:     viper.GetString("ACTIVATION_SECRET"),
			ActivationTTLMinutes: viper.GetInt("ACTIVATION_TTL_MINUTES"),
			AccessSecret:         viper.GetString("ACCESS_TOKEN_SECRET"),
			AccessTTLMinutes:     viper.GetInt("ACCESS_TTL_MINUTES"),
			RefreshSecret:        viper.GetString("REFRESH_TOKEN_SECRET"),
			RefreshTTLHours:      viper.GetInt("REFRESH_TTL_HOURS"),
			CustomerSecret:       viper.GetString("CUSTOMER_TOKEN_SECRET"),
			CustomerTTLHours:     viper.GetInt("CUSTOMER_TTL_HOURS"),
			OTPTTLMinutes:        viper.GetInt("OTP_TTL_MINUTES"),
		},
		SMTP: SMTPConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASSWORD"),
			From:     viper.GetString("SMTP_FROM"),
		},
		SMS: SMSConfig{
			TwilioAccountSID: viper.GetString("TWILIO_ACCOUNT_SID"),
			TwilioAuthToken:  viper.GetString("TWILIO_AUTH_TOKEN"),
			FromNumber:       viper.GetString("TWILIO_PHONE_NUMBER"),
		},
		RateLimit: RateLimitConfig{
			GeneralRPS:   viper.GetFloat64("RATE_LIMIT_GENERAL_RPS"),
			GeneralBurst: viper.GetInt("RATE_LIMIT_GENERAL_BURST"),
		},
		CORS: CORSConfig{
			AllowedOrigins:   viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods:   viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders:   viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
			ExposedHeaders:   viper.GetStringSlice("CORS_EXPOSED_HEADERS"),
			AllowCredentials: viper.GetBool("CORS_ALLOW_CREDENTIALS"),
			MaxAge:           viper.GetInt("CORS_MAX_AGE"),
		},
	}

	return config, nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func (c *JWTConfig) ActivationTTL() time.Duration {
	return time.Duration(c.ActivationTTLMinutes) * time.Minute
}

func (c *JWTConfig) AccessTTL() time.Duration {
	return time.Duration(c.AccessTTLMinutes) * time.Minute
}

func (c *JWTConfig) RefreshTTL() time.Duration {
	return time.Duration(c.RefreshTTLHours) * time.Hour
}

func (c *JWTConfig) CustomerTTL() time.Duration {
	return time.Duration(c.CustomerTTLHours) * time.Hour
}

func (c *JWTConfig) OTPTTL() time.Duration {
	return time.Duration(c.OTPTTLMinutes) * time.Minute
}
