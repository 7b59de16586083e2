package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config aggregates all runtime settings. It is loaded once in main and passed
// into each component at construction instead of reading env vars ad hoc.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Mongo   MongoConfig   `mapstructure:"mongo"`
	JWT     JWTConfig     `mapstructure:"jwt"`
	Google  GoogleConfig  `mapstructure:"google"`
	Storage StorageConfig `mapstructure:"storage"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port        int    `mapstructure:"port"`
	Mode        string `mapstructure:"mode"`
	AllowOrigin string `mapstructure:"allow_origin"`
}

// MongoConfig contains MongoDB connection options.
type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

// JWTConfig holds the access-token signing secret.
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

// GoogleConfig holds the OAuth client ID used as the expected
// audience when verifying Google ID tokens.
type GoogleConfig struct {
	ClientID string `mapstructure:"client_id"`
}

// StorageConfig contains options for the S3-compatible image bucket.
type StorageConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	Bucket          string `mapstructure:"bucket"`
}

// Load reads configuration from environment variables with defaults applied.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if err := bindEnv(v); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.allow_origin", "http://localhost:5173")
	v.SetDefault("mongo.uri", "mongodb://127.0.0.1:27017")
	v.SetDefault("mongo.database", "blogfolio")
	v.SetDefault("storage.use_ssl", true)
	v.SetDefault("storage.bucket", "blogfolio-images")
}

func bindEnv(v *viper.Viper) error {
	mappings := map[string]string{
		"server.port":               "PORT",
		"server.mode":               "GIN_MODE",
		"server.allow_origin":       "ALLOW_ORIGIN",
		"mongo.uri":                 "DB_LOCATION",
		"mongo.database":            "DB_NAME",
		"jwt.secret":                "SECRET_ACCESS_KEY",
		"google.client_id":          "GOOGLE_CLIENT_ID",
		"storage.endpoint":          "S3_ENDPOINT",
		"storage.access_key_id":     "AWS_ACCESS_KEY",
		"storage.secret_access_key": "AWS_SECRET_ACCESS_KEY",
		"storage.use_ssl":           "S3_USE_SSL",
		"storage.bucket":            "S3_BUCKET",
	}

	for key, env := range mappings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s to %s: %w", key, env, err)
		}
	}

	return nil
}

func validate(cfg Config) error {
	if cfg.Server.Port <= 0 {
		return errors.New("server port must be positive")
	}
	if cfg.Mongo.URI == "" {
		return errors.New("mongo uri is required")
	}
	if cfg.Mongo.Database == "" {
		return errors.New("mongo database is required")
	}
	if cfg.JWT.Secret == "" {
		return errors.New("jwt secret is required")
	}
	return nil
}
