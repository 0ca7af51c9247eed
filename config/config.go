// Package config loads the server and viewer settings from YAML.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"hungrytiger.com/server/logger"
	"hungrytiger.com/server/player"
	"hungrytiger.com/server/util"
)

// Config is the top level settings document.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Level   LevelConfig   `yaml:"level"`
	Player  player.Config `yaml:"player"`
	Minimap MinimapConfig `yaml:"minimap"`
	Log     logger.Config `yaml:"log"`
}

// ServerConfig configures the websocket server.
type ServerConfig struct {
	Addr string `yaml:"addr"`
	// TickRate is the number of simulation frames per second.
	TickRate int `yaml:"tick_rate"`
}

// LevelConfig configures the generated maze.
type LevelConfig struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	CellSize float32 `yaml:"cell_size"`
	// Seed 0 picks a time based seed.
	Seed int64 `yaml:"seed"`
	// PlayerRadius is the body radius used for wall collisions.
	PlayerRadius float32 `yaml:"player_radius"`
}

// MinimapConfig places the minimap camera and icon.
type MinimapConfig struct {
	Offset     util.Vector3 `yaml:"offset"`
	IconHeight float32      `yaml:"icon_height"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:     ":8080",
			TickRate: 30,
		},
		Level: LevelConfig{
			Width:        16,
			Height:       16,
			CellSize:     2,
			PlayerRadius: 0.4,
		},
		Player: player.DefaultConfig(),
		Minimap: MinimapConfig{
			Offset:     util.Vector3{Y: 20},
			IconHeight: 10,
		},
		Log: logger.DefaultConfig(),
	}
}

// Load reads path over the defaults. The PORT environment variable, when
// set, overrides the listen address.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrapf(err, "read config %q", path)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "parse config %q", path)
		}
	}

	if port, ok := os.LookupEnv("PORT"); ok && port != "" {
		cfg.Server.Addr = ":" + port
	}

	return cfg, cfg.Validate()
}

// Validate rejects settings the simulation cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Server.TickRate <= 0:
		return errors.Errorf("server.tick_rate must be positive, got %d", c.Server.TickRate)
	case c.Level.Width < 3 || c.Level.Height < 3:
		return errors.Errorf("level must be at least 3x3, got %dx%d", c.Level.Width, c.Level.Height)
	case c.Level.CellSize <= 0:
		return errors.Errorf("level.cell_size must be positive, got %v", c.Level.CellSize)
	case c.Level.PlayerRadius < 0 || c.Level.PlayerRadius*2 >= c.Level.CellSize:
		return errors.Errorf("level.player_radius must fit in a cell, got %v", c.Level.PlayerRadius)
	case c.Player.Gravity >= 0:
		return errors.Errorf("player.gravity must be negative, got %v", c.Player.Gravity)
	}
	return nil
}
