package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/lgbarn/chess-go/internal/errors"
)

// EnvPrefix prefixes environment overrides, e.g. CHESS_RULES_FIFTY_MOVE.
const EnvPrefix = "CHESS"

// Load reads configuration from the file at path (YAML, TOML or JSON by
// extension) with environment overrides on top. An empty path uses
// defaults and the environment only. The result is validated.
func Load(path string) (*Config, error) {
	cfg := NewConfig()

	v := viper.New()
	setDefaults(v, cfg)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading %s: %v: %w", path, err, errors.ErrInvalidConfig)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding %s: %v: %w", path, err, errors.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers every key so that environment variables are
// picked up even when the file does not mention them.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("start_fen", cfg.StartFEN)

	v.SetDefault("rules.insufficient_material", cfg.Rules.InsufficientMaterial)
	v.SetDefault("rules.fifty_move", cfg.Rules.FiftyMove)
	v.SetDefault("rules.repetition", cfg.Rules.Repetition)

	v.SetDefault("display.text_mode", cfg.Display.TextMode)
	v.SetDefault("display.color", cfg.Display.Color)
	v.SetDefault("display.unicode", cfg.Display.Unicode)
	v.SetDefault("display.coordinates", cfg.Display.Coordinates)
	v.SetDefault("display.json", cfg.Display.JSON)

	v.SetDefault("log.file", cfg.Log.File)
	v.SetDefault("log.level", cfg.Log.Level)
}

func invalid(key string, err error) error {
	if err == nil {
		return fmt.Errorf("%s: %w", key, errors.ErrInvalidConfig)
	}
	return fmt.Errorf("%s: %v: %w", key, err, errors.ErrInvalidConfig)
}
