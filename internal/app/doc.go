// Package app is Scout's composition root.
//
// Run loads the config file, opens the zerolog file logger, reads the theme
// preference, builds the rate-limited catalog client and hands everything to
// the TUI. It blocks until the user quits or the context is cancelled.
//
//	Run()
//	  ├── config.Load()        ~/.config/scout/config.toml
//	  ├── StartLocation()      --query / positional location
//	  ├── OpenLogger()         log_file, log_level
//	  ├── prefs.Load()         theme
//	  ├── catalog.NewClient()  api_url, timeout, rate_limit
//	  └── ui.Run()             blocks
//
// The TUI owns the terminal, so nothing is logged to stdout; use the L
// overlay or tail the log file.
package app
