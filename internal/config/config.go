package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Port        int    `yaml:"port"`
		ServiceName string `yaml:"service_name"`
	} `yaml:"server"`
	Telegram struct {
		BotToken    string `yaml:"bot_token"`
		ChatID      string `yaml:"chat_id"`
		APIBase     string `yaml:"api_base"`
		SendRetries int    `yaml:"send_retries"`
	} `yaml:"telegram"`
	Screener struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"screener"`
	Bybit struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"bybit"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	// .env first so the overrides below can see its values.
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = p
		}
	}
	if v := os.Getenv("SERVICE_NAME"); v != "" {
		cfg.Server.ServiceName = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	} else if v := os.Getenv("BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	} else if v := os.Getenv("CHANNEL_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("TELEGRAM_API_BASE"); v != "" {
		cfg.Telegram.APIBase = v
	}
	if v := os.Getenv("TELEGRAM_SEND_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Telegram.SendRetries = n
		}
	}
	if v := os.Getenv("DEXSCREENER_BASE_URL"); v != "" {
		cfg.Screener.BaseURL = v
	}
	if v := os.Getenv("BYBIT_BASE_URL"); v != "" {
		cfg.Bybit.BaseURL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3000
	}
	if cfg.Server.ServiceName == "" {
		cfg.Server.ServiceName = "satoshi-signal-bot"
	}
	if cfg.Telegram.APIBase == "" {
		cfg.Telegram.APIBase = "https://api.telegram.org"
	}
	if cfg.Screener.BaseURL == "" {
		cfg.Screener.BaseURL = "https://api.dexscreener.com"
	}
	if cfg.Bybit.BaseURL == "" {
		cfg.Bybit.BaseURL = "https://api.bybit.com"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

// Validate checks that all required fields are set. Telegram credentials are
// deliberately not required: without them telegram_alert degrades to a
// structured "not configured" result instead of refusing to start.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	if c.Screener.BaseURL == "" {
		return fmt.Errorf("screener.base_url is required")
	}
	if c.Bybit.BaseURL == "" {
		return fmt.Errorf("bybit.base_url is required")
	}
	if c.Telegram.APIBase == "" {
		return fmt.Errorf("telegram.api_base is required")
	}
	if c.Telegram.SendRetries < 0 {
		return fmt.Errorf("telegram.send_retries must not be negative")
	}
	return nil
}
