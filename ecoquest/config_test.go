package ecoquest

import (
	"testing"

	"github.com/ecoquest/ecoquest/ecoquest/database"
)

func validConfig() Config {
	return Config{
		Server: ServerConfig{Host: "127.0.0.1", Port: 8080},
		DB:     database.DBConfig{Host: "localhost", Port: 5432},
		Game:   GameConfig{QuizMultiplier: 2},
		Counters: []CounterDef{
			{Name: "trash_recycled"},
			{Name: "public_transport"},
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(cfg *Config) {}},
		{
			name:    "missing port",
			mutate:  func(cfg *Config) { cfg.Server.Port = 0 },
			wantErr: true,
		},
		{
			name:    "negative multiplier",
			mutate:  func(cfg *Config) { cfg.Game.QuizMultiplier = -1 },
			wantErr: true,
		},
		{
			name:    "empty counter name",
			mutate:  func(cfg *Config) { cfg.Counters[0].Name = "" },
			wantErr: true,
		},
		{
			name:    "duplicate counter name",
			mutate:  func(cfg *Config) { cfg.Counters[1].Name = "trash_recycled" },
			wantErr: true,
		},
		{
			name:    "negative counter default",
			mutate:  func(cfg *Config) { cfg.Counters[0].Default = -5 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_CounterHelpers(t *testing.T) {
	cfg := validConfig()

	names := cfg.CounterNames()
	if len(names) != 2 || names[0] != "trash_recycled" || names[1] != "public_transport" {
		t.Errorf("CounterNames() = %v", names)
	}

	if !cfg.CounterRegistered("trash_recycled") {
		t.Error("CounterRegistered(trash_recycled) = false")
	}
	if cfg.CounterRegistered("unknown") {
		t.Error("CounterRegistered(unknown) = true")
	}
}
