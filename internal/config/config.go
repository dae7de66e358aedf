package config

import (
	"errors"
	"os"

	"github.com/benbeisheim/boardview-backend/internal/model"
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort      string `mapstructure:"SERVER_PORT"`
	AllowOrigins    string `mapstructure:"ALLOW_ORIGINS"`
	InitialRecord   string `mapstructure:"INITIAL_RECORD"`
	TileSize        int    `mapstructure:"TILE_SIZE"`
	AssetDir        string `mapstructure:"ASSET_DIR"`
	StrictPlacement bool   `mapstructure:"STRICT_PLACEMENT"`
	Debug           bool   `mapstructure:"DEBUG"`
	Theme           string `mapstructure:"THEME"`
}

var keys = map[string]interface{}{
	"SERVER_PORT":      ":8080",
	"ALLOW_ORIGINS":    "http://localhost:5173",
	"INITIAL_RECORD":   model.StartingRecord,
	"TILE_SIZE":        64,
	"ASSET_DIR":        "assets",
	"STRICT_PLACEMENT": false,
	"DEBUG":            false,
	"THEME":            "basic",
}

// Setup reads cfgPath if it exists and overlays environment variables on
// top. A missing file is not an error.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	for key, def := range keys {
		v.SetDefault(key, def)
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if cfg.TileSize <= 0 {
		return nil, errors.New("TILE_SIZE must be positive")
	}
	return &cfg, nil
}

// Path returns the config file location, CONFIG_PATH or ".env".
func Path() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return ".env"
}
