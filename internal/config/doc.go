// Package config loads Scout's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/scout/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or empty, use defaults
//
// # TOML Format
//
//	api_url = "http://127.0.0.1:8000"
//	timeout_seconds = 10
//	rate_limit = 0
//	log_file = "~/.local/state/scout/scout.log"
//	log_level = "info"
//
// Every field is optional. rate_limit is in requests per second; zero turns
// limiting off. log_level accepts any zerolog level name. Tilde expansion is
// performed for log_file and for the config path itself.
//
// # Error Handling
//
// A missing file is not an error. Unreadable files, malformed TOML and
// out-of-range values are reported with a "parse config" prefix so the CLI can
// print them verbatim.
package config
