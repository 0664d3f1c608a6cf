package config

import (
	"os"
	"testing"
)

// clearTiDBEnv unsets every variable Load reads; t.Setenv registers
// the restore before the unset.
func clearTiDBEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TIDB_URL", "TIDB_HOST", "TIDB_USERNAME", "TIDB_PASSWORD", "TIDB_DATABASE",
		"TIDB_BACKEND", "TIDB_ZERO_API_URL", "TIDB_STATE_FILE",
		"TIDB_QUERY_TIMEOUT_SECONDS", "TIDB_MAX_DISPLAY_ROWS", "BIND_ADDR", "PORT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearTiDBEnv(t)

	cfg, err := Load("test-version")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Backend != BackendHTTP {
		t.Errorf("expected default backend %q, got %q", BackendHTTP, cfg.Backend)
	}
	if cfg.TiDB.Database != "test" {
		t.Errorf("expected default database test, got %q", cfg.TiDB.Database)
	}
	if cfg.QueryTimeoutSeconds != 30 {
		t.Errorf("expected timeout 30, got %d", cfg.QueryTimeoutSeconds)
	}
	if cfg.MaxDisplayRows != 100 {
		t.Errorf("expected max rows 100, got %d", cfg.MaxDisplayRows)
	}
	if cfg.Version != "test-version" {
		t.Errorf("expected version from build injection, got %q", cfg.Version)
	}
}

func TestLoad_ExplicitConnection(t *testing.T) {
	clearTiDBEnv(t)
	t.Setenv("TIDB_BACKEND", "driver")
	t.Setenv("TIDB_HOST", "example.com")
	t.Setenv("TIDB_USERNAME", "root")
	t.Setenv("TIDB_PASSWORD", "secret")
	t.Setenv("TIDB_DATABASE", "analytics")
	t.Setenv("TIDB_QUERY_TIMEOUT_SECONDS", "10")
	t.Setenv("TIDB_MAX_DISPLAY_ROWS", "50")

	cfg, err := Load("dev")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Backend != BackendDriver {
		t.Errorf("expected driver backend, got %q", cfg.Backend)
	}
	if cfg.TiDB.Host != "example.com" || cfg.TiDB.Username != "root" || cfg.TiDB.Password != "secret" {
		t.Errorf("connection fields not loaded: %+v", cfg.TiDB)
	}
	if cfg.TiDB.Database != "analytics" {
		t.Errorf("expected database analytics, got %q", cfg.TiDB.Database)
	}
	if cfg.QueryTimeoutSeconds != 10 || cfg.MaxDisplayRows != 50 {
		t.Errorf("numeric overrides not applied: %+v", cfg)
	}
}

func TestLoad_InvalidBackend(t *testing.T) {
	clearTiDBEnv(t)
	t.Setenv("TIDB_BACKEND", "carrier-pigeon")
	t.Setenv("TIDB_QUERY_TIMEOUT_SECONDS", "30")
	t.Setenv("TIDB_MAX_DISPLAY_ROWS", "100")

	if _, err := Load("dev"); err == nil {
		t.Fatal("expected error for invalid backend")
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	clearTiDBEnv(t)
	t.Setenv("TIDB_BACKEND", "http")
	t.Setenv("TIDB_QUERY_TIMEOUT_SECONDS", "-1")
	t.Setenv("TIDB_MAX_DISPLAY_ROWS", "100")

	if _, err := Load("dev"); err == nil {
		t.Fatal("expected error for negative timeout")
	}
}
