package contract

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// BotEnv holds the Discord secrets, read from the environment only.
type BotEnv struct {
	Token    string `env:"DISCORD_TOKEN,required,notEmpty"`
	AppID    string `env:"DISCORD_APP_ID,required,notEmpty"`
	DevGuild string `env:"DISCORD_DEV_GUILD"`
}

// ParseBotEnv reads BotEnv from the process environment.
func ParseBotEnv() (BotEnv, error) {
	var cfg BotEnv
	if err := env.Parse(&cfg); err != nil {
		return BotEnv{}, fmt.Errorf("parse bot env: %w", err)
	}
	return cfg, nil
}
