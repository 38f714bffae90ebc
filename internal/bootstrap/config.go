package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"

	errs "quadratum/internal/errors"
)

const (
	KindHuman = "human"
	KindBot   = "bot"
)

type Config struct {
	ServerPort       string `mapstructure:"SERVER_PORT"`
	RedisUrl         string `mapstructure:"REDIS_URL"`
	RedisChannel     string `mapstructure:"REDIS_CHANNEL"`
	IsLocalCors      bool   `mapstructure:"LOCAL_CORS"`
	CorsOrigins      string `mapstructure:"CORS_ORIGINS"`
	LogDevelopment   bool   `mapstructure:"LOG_DEVELOPMENT"`
	MinScore         int    `mapstructure:"MIN_SCORE"`
	MinLead          int    `mapstructure:"MIN_LEAD"`
	Player1Name      string `mapstructure:"PLAYER1_NAME"`
	Player2Name      string `mapstructure:"PLAYER2_NAME"`
	Player1Kind      string `mapstructure:"PLAYER1_KIND"`
	Player2Kind      string `mapstructure:"PLAYER2_KIND"`
	BotStrategy      string `mapstructure:"BOT_STRATEGY"`
	BotRandomizeTies bool   `mapstructure:"BOT_RANDOMIZE_TIES"`
	BotSeed          uint64 `mapstructure:"BOT_SEED"`
}

var defaults = map[string]any{
	"SERVER_PORT":        "8080",
	"REDIS_URL":          "",
	"REDIS_CHANNEL":      "quadratum:events",
	"LOCAL_CORS":         false,
	"CORS_ORIGINS":       "http://localhost:3000,http://localhost:5173",
	"LOG_DEVELOPMENT":    false,
	"MIN_SCORE":          150,
	"MIN_LEAD":           15,
	"PLAYER1_NAME":       "player1",
	"PLAYER2_NAME":       "player2",
	"PLAYER1_KIND":       KindHuman,
	"PLAYER2_KIND":       KindBot,
	"BOT_STRATEGY":       "accumulate",
	"BOT_RANDOMIZE_TIES": true,
	"BOT_SEED":           0,
}

// Setup reads the config file at cfgPath, if it exists, and overlays the
// environment on top of it.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		v.SetConfigType("env")

		err := v.ReadInConfig()
		var notFound viper.ConfigFileNotFoundError
		if err != nil && !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config

	err := v.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("%w: SERVER_PORT is empty", errs.ErrInvalidConfig)
	}
	if c.MinScore <= 0 {
		return fmt.Errorf("%w: MIN_SCORE must be positive, got %d", errs.ErrInvalidConfig, c.MinScore)
	}
	if c.MinLead <= 0 {
		return fmt.Errorf("%w: MIN_LEAD must be positive, got %d", errs.ErrInvalidConfig, c.MinLead)
	}
	if c.Player1Name == "" || c.Player2Name == "" {
		return fmt.Errorf("%w: player names must not be empty", errs.ErrInvalidConfig)
	}
	if c.Player1Name == c.Player2Name {
		return fmt.Errorf("%w: both players are named %q", errs.ErrInvalidConfig, c.Player1Name)
	}
	for _, kind := range []string{c.Player1Kind, c.Player2Kind} {
		if kind != KindHuman && kind != KindBot {
			return fmt.Errorf("%w: %q", errs.ErrUnknownKind, kind)
		}
	}
	if c.IsLocalCors && len(c.AllowedOrigins()) == 0 {
		return fmt.Errorf("%w: LOCAL_CORS needs CORS_ORIGINS", errs.ErrInvalidConfig)
	}
	if c.RedisUrl != "" && c.RedisChannel == "" {
		return fmt.Errorf("%w: REDIS_CHANNEL is empty", errs.ErrInvalidConfig)
	}
	return nil
}

// AllowedOrigins splits CORS_ORIGINS on commas.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.CorsOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
