package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	TransportConsole  = "console"
	TransportTelegram = "telegram"
)

type Config struct {
	Transport string `env:"QUIZ_TRANSPORT" envDefault:"console"`
	Locale    string `env:"QUIZ_LOCALE" envDefault:"en"`
	Debug     bool   `env:"QUIZ_DEBUG"`

	TelegramToken       string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID      int64  `env:"TELEGRAM_CHAT_ID"`
	TelegramPollTimeout int    `env:"TELEGRAM_POLL_TIMEOUT" envDefault:"60"`
}

// Load reads an optional .env file and then the process environment.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Transport {
	case TransportConsole:
	case TransportTelegram:
		if c.TelegramToken == "" {
			return errors.New("TELEGRAM_BOT_TOKEN is required for the telegram transport")
		}
		if c.TelegramPollTimeout < 0 {
			return fmt.Errorf("TELEGRAM_POLL_TIMEOUT must not be negative, got %d", c.TelegramPollTimeout)
		}
	default:
		return fmt.Errorf("unknown transport %q", c.Transport)
	}
	return nil
}
