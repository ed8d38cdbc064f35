package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	World   WorldConfig   `toml:"world"`
	Demo    DemoConfig    `toml:"demo"`
	Logging LoggingConfig `toml:"logging"`
}

type WorldConfig struct {
	PoolName    string `toml:"pool_name"`
	PoolSize    int    `toml:"pool_size"`
	EntityCount int    `toml:"entity_count"`
}

type DemoConfig struct {
	TickMs int `toml:"tick_ms"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

func defaultConfig() Config {
	return Config{
		World: WorldConfig{
			PoolName:    "ACTORS",
			PoolSize:    256,
			EntityCount: 32,
		},
		Demo:    DemoConfig{TickMs: 16},
		Logging: LoggingConfig{Level: "info", File: "demo.log"},
	}
}

// loadConfig reads the TOML file at path, falling back to defaults when the
// file does not exist. Unset fields keep their default values.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	if cfg.World.PoolSize <= 0 {
		cfg.World.PoolSize = 256
	}
	if cfg.Demo.TickMs <= 0 {
		cfg.Demo.TickMs = 16
	}
	return cfg, nil
}
