package config

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Site    SiteConfig
	AWS     AWSConfig
	Publish PublishConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           string
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// SiteConfig holds page rendering configuration
type SiteConfig struct {
	// BaseURL is where the interactive page is served. Links in a published
	// snapshot point there so the calculator and cards keep working.
	BaseURL string
}

// AWSConfig holds AWS/S3 configuration
type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	S3Bucket        string
	S3Endpoint      string
}

// PublishConfig holds static export configuration
type PublishConfig struct {
	Prefix string
	Dir    string
}

// Load loads configuration from environment variables and .env files
func Load() (*Config, error) {
	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "dev")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:8080,http://localhost:5173")
	viper.SetDefault("SITE_BASE_URL", "")
	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("AWS_ACCESS_KEY_ID", "")
	viper.SetDefault("AWS_SECRET_ACCESS_KEY", "")
	viper.SetDefault("S3_BUCKET", "codesigma-site")
	viper.SetDefault("S3_ENDPOINT", "")
	viper.SetDefault("S3_PREFIX", "")
	viper.SetDefault("PUBLISH_DIR", "")

	// Environment variables override .env file values
	viper.AutomaticEnv()

	// Read from .env files based on environment
	env := viper.GetString("ENVIRONMENT")
	if env == "" {
		env = "dev" // Use "dev" to match .env.dev filename
	}

	viper.SetConfigName(".env." + env)
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// Read .env file (ignore error if file doesn't exist)
	_ = viper.ReadInConfig()

	var config Config
	config.Server.Port = viper.GetString("PORT")
	config.Server.Env = viper.GetString("ENVIRONMENT")
	config.Server.LogLevel = viper.GetString("LOG_LEVEL")
	config.Server.AllowedOrigins = splitList(viper.GetString("ALLOWED_ORIGINS"))
	config.Site.BaseURL = viper.GetString("SITE_BASE_URL")
	config.AWS.Region = viper.GetString("AWS_REGION")
	config.AWS.AccessKeyID = viper.GetString("AWS_ACCESS_KEY_ID")
	config.AWS.SecretAccessKey = viper.GetString("AWS_SECRET_ACCESS_KEY")
	config.AWS.S3Bucket = viper.GetString("S3_BUCKET")
	config.AWS.S3Endpoint = viper.GetString("S3_ENDPOINT")
	config.Publish.Prefix = strings.Trim(viper.GetString("S3_PREFIX"), "/")
	config.Publish.Dir = viper.GetString("PUBLISH_DIR")

	log.Debug().
		Str("environment", config.Server.Env).
		Strs("allowed_origins", config.Server.AllowedOrigins).
		Msg("Configuration loaded")

	return &config, nil
}

// SetupLogger configures the global zerolog logger: human readable output in
// dev, JSON everywhere else.
func (c *Config) SetupLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(c.Server.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if c.Server.Env == "dev" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
