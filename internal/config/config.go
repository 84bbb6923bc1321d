package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Kiosk  KioskConfig  `mapstructure:"kiosk"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type KioskConfig struct {
	// TokenStart is the first token issued after startup.
	TokenStart  int `mapstructure:"token_start"`
	MaxQuantity int `mapstructure:"max_quantity"`
	MaxNotesLen int `mapstructure:"max_notes_len"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads the YAML config at configPath, falling back to built-in
// defaults when the file is absent. Environment variables prefixed with
// KIOSK_ override both (e.g. KIOSK_SERVER_PORT).
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 3000)
	v.SetDefault("kiosk.token_start", 101)
	v.SetDefault("kiosk.max_quantity", 50)
	v.SetDefault("kiosk.max_notes_len", 200)
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("KIOSK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			// A missing file is fine, defaults apply. Anything else is fatal.
			if _, statErr := os.Stat(configPath); statErr == nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
