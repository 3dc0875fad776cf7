// Package prefs persists the user's display choices between sessions.
//
// The only preference today is the color theme. It is stored as the name of a
// theme.Variant ("dark" or "light") under the theme key of
// ~/.config/scout/prefs.toml:
//
//	theme = "light"
//
// The UI saves the file each time the theme is toggled and the composition
// root reads it once at startup to pick the initial theme.Context variant.
//
// Preferences never block startup. A missing, unreadable or malformed file,
// or a theme name that is not a known variant, loads as the dark theme. Only
// Save reports errors, so the UI can tell the user the choice was not kept.
package prefs
