package ecoquest

import (
	"fmt"
	"os"

	"log/slog"

	"github.com/pelletier/go-toml/v2"

	"github.com/ecoquest/ecoquest/ecoquest/database"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type Config struct {
	Log      LogConfig         `toml:"log"`
	Server   ServerConfig      `toml:"server"`
	DB       database.DBConfig `toml:"db"`
	Game     GameConfig        `toml:"game"`
	Counters []CounterDef      `toml:"counters"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	AddSource bool       `toml:"add_source"`
}

type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

type GameConfig struct {
	QuizMultiplier int64 `toml:"quiz_multiplier"`
}

// CounterDef registers a recognized counter name and its default value.
// The registry replaces scattering counter-name allowlists through the
// handlers; unknown names are rejected at the API boundary.
type CounterDef struct {
	Name    string `toml:"name"`
	Default int64  `toml:"default"`
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be set")
	}
	if c.Game.QuizMultiplier < 0 {
		return fmt.Errorf("game.quiz_multiplier must be >= 0")
	}

	seen := make(map[string]bool, len(c.Counters))
	for _, def := range c.Counters {
		if def.Name == "" {
			return fmt.Errorf("counters: name must not be empty")
		}
		if seen[def.Name] {
			return fmt.Errorf("counters: duplicate name %q", def.Name)
		}
		if def.Default < 0 {
			return fmt.Errorf("counters: default for %q must be >= 0", def.Name)
		}
		seen[def.Name] = true
	}
	return nil
}

// CounterNames returns the registered counter names in config order.
func (c *Config) CounterNames() []string {
	names := make([]string, 0, len(c.Counters))
	for _, def := range c.Counters {
		names = append(names, def.Name)
	}
	return names
}

// CounterRegistered reports whether name is in the registry.
func (c *Config) CounterRegistered(name string) bool {
	for _, def := range c.Counters {
		if def.Name == name {
			return true
		}
	}
	return false
}
