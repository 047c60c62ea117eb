// Package prefs persists what the dashboard remembers between runs: the
// theme, the store last selected and the section last open. The file lives
// at ~/.config/storedash/prefs.toml and is rewritten on every change.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// ErrInvalid marks a prefs file that exists but could not be read or parsed.
// Load still returns usable defaults alongside it.
var ErrInvalid = errors.New("invalid prefs file")

// Prefs is the remembered dashboard state. StoreID zero means no store was
// picked yet; Section is a dashboard section name, empty for the default.
type Prefs struct {
	Theme   string `toml:"theme"`
	StoreID int64  `toml:"store_id"`
	Section string `toml:"section,omitempty"`
}

const (
	defaultPrefsPath = "~/.config/storedash/prefs.toml"
	defaultTheme     = "Dracula"
)

// Defaults is what a first run starts with.
func Defaults() Prefs {
	return Prefs{Theme: defaultTheme}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// normalize replaces values the dashboard cannot use with defaults.
func (p Prefs) normalize() Prefs {
	p.Theme = strings.TrimSpace(p.Theme)
	if p.Theme == "" {
		p.Theme = defaultTheme
	}
	if p.StoreID < 0 {
		p.StoreID = 0
	}
	p.Section = strings.ToLower(strings.TrimSpace(p.Section))
	return p
}

// Load reads the prefs at path. A missing file is a first run and yields
// defaults. An unreadable or malformed file also yields defaults, together
// with an error wrapping ErrInvalid so the caller can log it and go on.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Defaults(), nil
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Defaults(), nil
		}
		return Defaults(), fmt.Errorf("%w: read %s: %v", ErrInvalid, resolved, err)
	}

	p := Defaults()
	if err := toml.Unmarshal(data, &p); err != nil {
		return Defaults(), fmt.Errorf("%w: parse %s: %v", ErrInvalid, resolved, err)
	}
	return p.normalize(), nil
}

// Save writes p to path, creating directories as needed. The file is
// replaced through a rename so a crash mid-write leaves the old prefs.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p.normalize())
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	return writeAtomic(resolved, data)
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("create temp prefs: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close prefs: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPrefsPath
	}
	trimmed := strings.TrimSpace(path)
	if rest, ok := strings.CutPrefix(trimmed, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, rest)
	}
	return filepath.Abs(trimmed)
}
