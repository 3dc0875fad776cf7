package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/scout/internal/theme"
)

const (
	defaultPrefsPath = "~/.config/scout/prefs.toml"
	defaultTheme     = "dark"
)

// Prefs is the on-disk preferences record.
type Prefs struct {
	Theme string `toml:"theme"` // theme.Variant name
}

// For returns the preferences that select v.
func For(v theme.Variant) Prefs {
	return Prefs{Theme: v.String()}
}

// Variant returns the stored theme, or Dark when the name is unknown.
func (p Prefs) Variant() theme.Variant {
	v, _ := theme.ParseVariant(p.Theme)
	return v
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads the preferences at path; an empty path uses DefaultPath. The
// returned Theme is always a canonical variant name. Load never fails: any
// problem with the file yields the defaults.
func Load(path string) (Prefs, error) {
	defaults := Prefs{Theme: defaultTheme}

	resolved, err := resolvePath(path)
	if err != nil {
		return defaults, nil
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return defaults, nil
	}

	var stored Prefs
	if err := toml.Unmarshal(data, &stored); err != nil {
		return defaults, nil
	}
	v, ok := theme.ParseVariant(stored.Theme)
	if !ok {
		return defaults, nil
	}
	return For(v), nil
}

// Save writes p to path, creating parent directories. The theme is written
// under its canonical variant name.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(For(p.Variant()))
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPrefsPath
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
