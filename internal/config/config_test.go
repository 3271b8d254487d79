package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.GRPCAddr == "" || cfg.Fsync != "always" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.DispatchBatchRecords != 1000 || cfg.DispatchTickMs != 1000 {
		t.Fatalf("unexpected delivery defaults: %+v", cfg)
	}
}

func TestLoadJSONOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"grpcAddr":":7000","dispatchTickMs":250}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.GRPCAddr != ":7000" {
		t.Fatalf("grpcAddr = %q", cfg.GRPCAddr)
	}
	if cfg.DispatchTickMs != 250 {
		t.Fatalf("dispatchTickMs = %d", cfg.DispatchTickMs)
	}
	// untouched fields keep defaults
	if cfg.Fsync != "always" {
		t.Fatalf("fsync = %q", cfg.Fsync)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("HDELIVERY_GRPC_ADDR", ":9000")
	t.Setenv("HDELIVERY_DISPATCH_BATCH_RECORDS", "64")
	cfg := Default()
	FromEnv(&cfg)
	if cfg.GRPCAddr != ":9000" {
		t.Fatalf("grpcAddr = %q", cfg.GRPCAddr)
	}
	if cfg.DispatchBatchRecords != 64 {
		t.Fatalf("dispatchBatchRecords = %d", cfg.DispatchBatchRecords)
	}
}
