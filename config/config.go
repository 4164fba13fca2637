package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
	} `mapstructure:"database"`
	Redis struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	JWT struct {
		SecretKey           string `mapstructure:"secret_key"`
		AccessTokenTTLMin   int    `mapstructure:"access_token_ttl_minutes"`
		RefreshTokenTTLHour int    `mapstructure:"refresh_token_ttl_hours"`
	} `mapstructure:"jwt"`
}

var AppConfig Config

func LoadConfig(path string) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error reading config file, %s", err)
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}

// AccessTokenTTL returns the configured access token lifetime.
func (c *Config) AccessTokenTTL() time.Duration {
	if c.JWT.AccessTokenTTLMin <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(c.JWT.AccessTokenTTLMin) * time.Minute
}

// RefreshTokenTTL returns the configured refresh token lifetime.
// This is also the TTL for revocation entries, since no token
// outlives a refresh token.
func (c *Config) RefreshTokenTTL() time.Duration {
	if c.JWT.RefreshTokenTTLHour <= 0 {
		return 48 * time.Hour
	}
	return time.Duration(c.JWT.RefreshTokenTTLHour) * time.Hour
}
