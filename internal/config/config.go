package config

import (
	"encoding/json"
	"os"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	DataDir         string `json:"dataDir"`
	GRPCAddr        string `json:"grpcAddr"`
	Fsync           string `json:"fsync"` // always|interval|never
	FsyncIntervalMs int    `json:"fsyncIntervalMs"`
	LogLevel        string `json:"logLevel"`
	LogFormat       string `json:"logFormat"`

	// Delivery tunables.
	DispatchBatchRecords int `json:"dispatchBatchRecords"`
	DispatchTickMs       int `json:"dispatchTickMs"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		GRPCAddr:             ":6570",
		Fsync:                "always",
		FsyncIntervalMs:      5,
		LogLevel:             "info",
		LogFormat:            "text",
		DispatchBatchRecords: 1000,
		DispatchTickMs:       1000,
	}
}

// Load reads configuration from a JSON file. If path is empty, returns
// defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := json.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
