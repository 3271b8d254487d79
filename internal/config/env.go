package config

import (
	"os"
	"strconv"
)

// FromEnv overlays HDELIVERY_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("HDELIVERY_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("HDELIVERY_GRPC_ADDR"); v != "" {
		cfg.GRPCAddr = v
	}
	if v := os.Getenv("HDELIVERY_FSYNC"); v != "" {
		cfg.Fsync = v
	}
	if v := os.Getenv("HDELIVERY_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("HDELIVERY_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("HDELIVERY_DISPATCH_BATCH_RECORDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.DispatchBatchRecords = n
		}
	}
	if v := os.Getenv("HDELIVERY_DISPATCH_TICK_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.DispatchTickMs = n
		}
	}
}
