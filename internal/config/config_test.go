package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBase != defaultAPIBase {
		t.Fatalf("APIBase = %q, want %q", cfg.APIBase, defaultAPIBase)
	}
	if cfg.StoreID != 0 {
		t.Fatalf("StoreID = %d, want 0", cfg.StoreID)
	}
	if cfg.RequestTimeout != defaultRequestTimeout || cfg.RefreshEvery != defaultRefreshEvery {
		t.Fatalf("timeouts = %v/%v, want defaults", cfg.RequestTimeout, cfg.RefreshEvery)
	}
	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
	if len(cfg.Years) != defaultYearSpan || cfg.Years[0] != time.Now().Year() {
		t.Fatalf("Years = %v, want %d years starting with the current one", cfg.Years, defaultYearSpan)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
api_base = "  10.0.0.5:9999  "
store_id = 4
years = [2024, 2023]
request_timeout_seconds = 2
refresh_seconds = 90
log_file = "  ~/.storedash/dash.log  "
log_level = " DEBUG "
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBase != "10.0.0.5:9999" {
		t.Fatalf("APIBase = %q, want %q", cfg.APIBase, "10.0.0.5:9999")
	}
	if cfg.StoreID != 4 {
		t.Fatalf("StoreID = %d, want 4", cfg.StoreID)
	}
	if !reflect.DeepEqual(cfg.Years, []int{2024, 2023}) {
		t.Fatalf("Years = %v, want [2024 2023]", cfg.Years)
	}
	if cfg.RequestTimeout != 2*time.Second || cfg.RefreshEvery != 90*time.Second {
		t.Fatalf("timeouts = %v/%v, want 2s/90s", cfg.RequestTimeout, cfg.RefreshEvery)
	}
	if !strings.HasPrefix(cfg.LogFile, home) || !strings.HasSuffix(cfg.LogFile, "dash.log") {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := writeConfig(t, `
api_base = "   "
log_file = ""
refresh_seconds = 0
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBase != defaultAPIBase {
		t.Fatalf("APIBase = %q, want %q", cfg.APIBase, defaultAPIBase)
	}
	if cfg.RefreshEvery != defaultRefreshEvery {
		t.Fatalf("RefreshEvery = %v, want %v", cfg.RefreshEvery, defaultRefreshEvery)
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, defaultLogLevel)
	}
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"invalid toml", `api_base = [`, "parse config"},
		{"negative store", `store_id = -1`, "store_id"},
		{"unknown level", `log_level = "loud"`, "log_level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatalf("Load returned nil error, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Load error = %q, want it to mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestRecentYears(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	if got := recentYears(now, 3); !reflect.DeepEqual(got, []int{2025, 2024, 2023}) {
		t.Fatalf("recentYears = %v, want [2025 2024 2023]", got)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
