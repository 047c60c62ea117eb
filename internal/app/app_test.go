package app

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/storedash/internal/api"
	"github.com/five82/storedash/internal/prefs"
	"github.com/five82/storedash/internal/state"
)

func startAPI(t *testing.T, bodies map[string]string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := bodies[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func writeAPIConfig(t *testing.T, apiBase string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := "api_base = \"" + apiBase + "\"\n" +
		"log_file = \"" + filepath.ToSlash(filepath.Join(dir, "storedash.log")) + "\"\n" +
		"years = [2024]\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestReport_ServerLowStock(t *testing.T) {
	apiBase := startAPI(t, map[string]string{
		api.PathStores:                  `[{"storeId":3,"storeName":"강남점"}]`,
		api.PathLaundrySupplies:         `[{"laundrySuppliesId":1,"laundrySuppliesName":"세제","storeCount":50,"storeId":3}]`,
		api.PathLaundrySuppliesLowStock: `[{"laundrySuppliesId":2,"laundrySuppliesName":"섬유유연제","storeCount":8,"storeId":3}]`,
	})
	opts := Options{
		ConfigPath:     writeAPIConfig(t, apiBase),
		PrefsPath:      filepath.Join(t.TempDir(), "prefs.toml"),
		StoreID:        3,
		Year:           2024,
		Month:          5,
		ServerLowStock: true,
	}

	var out bytes.Buffer
	if err := Report(context.Background(), opts, state.DomainLaundry, &out); err != nil {
		t.Fatalf("Report returned error: %v", err)
	}
	for _, want := range []string{"강남점 (#3)", "세제", "섬유유연제", "less10", "2024년 5월 판매량 TOP5"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("report missing %q:\n%s", want, out.String())
		}
	}

	if err := Report(context.Background(), opts, state.DomainOrders, &bytes.Buffer{}); err == nil {
		t.Fatalf("Report(orders, ServerLowStock) error = nil, want no server list error")
	}
}

func TestRestoreSection(t *testing.T) {
	tests := []struct {
		section string
		want    state.Domain
	}{
		{"orders", state.DomainOrders},
		{"", state.DomainMealKits},
		{"weather", state.DomainMealKits},
	}
	for _, tt := range tests {
		t.Run(tt.section, func(t *testing.T) {
			session := state.NewSession(nil, nil, state.Options{})
			restoreSection(session, prefs.Prefs{Section: tt.section})
			if got := session.Active(); got != tt.want {
				t.Fatalf("Active = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReport_MalformedPrefsFallBackToDefaults(t *testing.T) {
	apiBase := startAPI(t, map[string]string{api.PathStores: `[]`, api.PathOrdersMonthRevenue: `[]`, api.PathOrdersMonthVisitors: `[]`})
	prefsPath := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(prefsPath, []byte("theme = {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	opts := Options{ConfigPath: writeAPIConfig(t, apiBase), PrefsPath: prefsPath}
	if err := Report(context.Background(), opts, state.DomainOrders, &bytes.Buffer{}); err != nil {
		t.Fatalf("Report returned error: %v", err)
	}
}
