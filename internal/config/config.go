package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Event    *EventConfig    `mapstructure:"event"`
	SMS      *SMSConfig      `mapstructure:"sms"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	BaseURL            string   `mapstructure:"base_url"`
	Port               string   `mapstructure:"port"`
	JWTSigningKey      string   `mapstructure:"jwt_signing_key"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
}

// EventConfig carries the ordered list of event dates (dd-mm-yyyy), one per
// VBS day for the current event instance.
type EventConfig struct {
	Dates []string `mapstructure:"dates"`
}

type SMSConfig struct {
	Endpoint       string `mapstructure:"endpoint"`
	APIKey         string `mapstructure:"api_key"`
	Sender         string `mapstructure:"sender"`
	AdminContactNo string `mapstructure:"admin_contact_no"`
}

func Load(configFile string) (*AppConfig, error) {
	viper.SetConfigFile(configFile)

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := viper.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	return conf, nil
}
