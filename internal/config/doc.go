// Package config loads the storedash configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/storedash/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing or empty, use defaults
//
// # Fields
//
//	api_base                 backend base URL (default http://localhost:8081)
//	store_id                 store the dashboard opens on (0 = none)
//	years                    candidate years probed for revenue (default: last three)
//	request_timeout_seconds  per-request HTTP timeout (default 5)
//	refresh_seconds          dashboard auto-refresh interval (default 30)
//	log_file                 where slog output goes (default ~/.local/share/storedash/storedash.log)
//	log_level                debug, info, warn or error (default info)
//
// Paths beginning with ~ are expanded against the user's home directory and
// made absolute. Invalid TOML, a negative store_id or an unknown log_level
// are reported as errors; everything else degrades to defaults.
//
// # Usage
//
//	cfg, err := config.Load("")
//	if err != nil {
//		return fmt.Errorf("load config: %w", err)
//	}
//	client, err := api.NewClient(cfg.APIBase, cfg.RequestTimeout)
package config
