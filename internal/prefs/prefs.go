package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Prefs is the small persisted user-preference record. Everything else
// about dashboard state is rebuilt from polls, so this is the only file
// the dashboard writes.
type Prefs struct {
	LogPanelHeight int       `toml:"log_panel_height"`
	AutoShowLog    bool      `toml:"auto_show_log"`
	LogLevel       string    `toml:"log_level"`
	SavedAt        time.Time `toml:"saved_at"`
}

const (
	MinPanelHeight = 3
	MaxPanelHeight = 15
)

func Default() Prefs {
	return Prefs{
		LogPanelHeight: 6,
		AutoShowLog:    false,
		LogLevel:       "info",
	}
}

// DefaultPath is ~/.config/gh-hud/prefs.toml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "gh-hud", "prefs.toml")
}

// Load reads the record at path. Any failure degrades to defaults: a
// missing file silently, a corrupt or unreadable one with a non-nil
// error the caller logs. Preferences are never worth failing startup
// over.
func Load(path string) (Prefs, error) {
	p := Default()
	if path == "" {
		return p, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return p, fmt.Errorf("read preferences: %w", err)
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("parse preferences: %w", err)
	}
	p.clamp()
	return p, nil
}

func (p *Prefs) clamp() {
	if p.LogPanelHeight < MinPanelHeight {
		p.LogPanelHeight = MinPanelHeight
	}
	if p.LogPanelHeight > MaxPanelHeight {
		p.LogPanelHeight = MaxPanelHeight
	}
	switch p.LogLevel {
	case "info", "debug", "trace":
	default:
		p.LogLevel = "info"
	}
}

// Save writes the whole record, stamping SavedAt. Called on every
// preference change and once more at shutdown. Write-then-rename keeps
// a crash mid-write from corrupting the previous record.
func (p Prefs) Save(path string) error {
	if path == "" {
		return fmt.Errorf("no preferences path")
	}
	p.SavedAt = time.Now()
	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create preferences dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace preferences: %w", err)
	}
	return nil
}
