package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	errs "movegraph/internal/errors"
)

const (
	StoreFile  = "file"
	StoreRedis = "redis"

	FormatJSON   = "json"
	FormatLegacy = "legacy"
)

type Config struct {
	ServerPort      string `mapstructure:"SERVER_PORT"`
	MovesetPath     string `mapstructure:"MOVESET_PATH"`
	StaticDir       string `mapstructure:"STATIC_DIR"`
	MovesetStore    string `mapstructure:"MOVESET_STORE"`
	RedisUrl        string `mapstructure:"REDIS_URL"`
	MovesetRedisKey string `mapstructure:"MOVESET_REDIS_KEY"`
	IsLocalCors     bool   `mapstructure:"LOCAL_CORS"`
	LogLevel        string `mapstructure:"LOG_LEVEL"`
	FragmentFormat  string `mapstructure:"FRAGMENT_FORMAT"`
}

var defaults = map[string]any{
	"SERVER_PORT":       "8080",
	"MOVESET_PATH":      "moveset.json",
	"STATIC_DIR":        "static",
	"MOVESET_STORE":     StoreFile,
	"REDIS_URL":         "localhost:6379",
	"MOVESET_REDIS_KEY": "moveset",
	"LOCAL_CORS":        false,
	"LOG_LEVEL":         "info",
	"FRAGMENT_FORMAT":   FormatJSON,
}

// Setup loads cfgPath into the process environment when the file exists and
// then resolves every key from the environment, falling back to defaults.
// A missing env file is not an error.
func Setup(cfgPath string) (*Config, error) {
	if cfgPath != "" {
		if err := godotenv.Load(cfgPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", cfgPath, err)
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.MovesetStore = strings.ToLower(strings.TrimSpace(cfg.MovesetStore))
	cfg.FragmentFormat = strings.ToLower(strings.TrimSpace(cfg.FragmentFormat))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.MovesetStore {
	case StoreFile:
		if c.MovesetPath == "" {
			return fmt.Errorf("MOVESET_PATH is required for the file store")
		}
	case StoreRedis:
		if c.RedisUrl == "" || c.MovesetRedisKey == "" {
			return fmt.Errorf("REDIS_URL and MOVESET_REDIS_KEY are required for the redis store")
		}
	default:
		return fmt.Errorf("%w: %q", errs.ErrUnknownStore, c.MovesetStore)
	}

	switch c.FragmentFormat {
	case FormatJSON, FormatLegacy:
	default:
		return fmt.Errorf("%w: %q", errs.ErrUnknownFormat, c.FragmentFormat)
	}

	return nil
}

func (c *Config) Addr() string {
	if strings.HasPrefix(c.ServerPort, ":") {
		return c.ServerPort
	}
	return ":" + c.ServerPort
}
