// Package config stores user preferences between runs.
//
// Preferences live in config.json under the user's config directory. A few
// environment variables override the file; command-line flags are applied on
// top by main.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

// Environment variables that override stored preferences.
const (
	EnvSound    = "MINESWEEPER_SOUND"
	EnvLang     = "MINESWEEPER_LANG"
	EnvRenderer = "MINESWEEPER_RENDERER"
)

const (
	DefaultTileSize = 32
	MinTileSize     = 16
	MaxTileSize     = 64
)

// Settings are the fields kept in config.json.
type Settings struct {
	Difficulty string `json:"difficulty"`
	Renderer   string `json:"renderer"`
	Generator  string `json:"generator"`
	TileSize   int    `json:"tile_size"`
	Sound      bool   `json:"sound"`
	Language   string `json:"language"`
	// Bindings maps action names ("Flag", "Restart") to a single key code.
	Bindings map[string]string `json:"bindings,omitempty"`
}

// Preferences are the effective user settings. Environment and flag
// overrides change the embedded Settings only; Save writes the stored copy
// with the fields changed through the setters.
type Preferences struct {
	Settings

	mu     sync.Mutex
	path   string
	stored Settings
}

func defaultSettings() Settings {
	return Settings{
		Difficulty: "beginner",
		Renderer:   "ebiten",
		Generator:  "uniform",
		TileSize:   DefaultTileSize,
		Language:   "en",
	}
}

// Defaults returns the preferences of a first run.
func Defaults() *Preferences {
	s := defaultSettings()
	return &Preferences{Settings: s, stored: s}
}

var (
	currentMu sync.Mutex
	current   *Preferences
)

// Current returns the process-wide preferences, loading them from the
// default path on first use. Load errors yield defaults.
func Current() *Preferences {
	currentMu.Lock()
	defer currentMu.Unlock()

	if current == nil {
		p, err := Load(DefaultPath())
		if err != nil {
			p = Defaults()
			p.path = DefaultPath()
		}
		current = p
	}
	return current
}

// SetCurrent replaces the process-wide preferences.
func SetCurrent(p *Preferences) {
	currentMu.Lock()
	current = p
	currentMu.Unlock()
}

// DefaultPath returns <user config dir>/minesweeper/config.json, or "" if
// the platform has no config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "minesweeper", "config.json")
}

// Load reads preferences from path. A missing file gives defaults.
// Environment overrides are applied either way.
func Load(path string) (*Preferences, error) {
	p := Defaults()
	p.path = path

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read preferences: %w", err)
		default:
			if err := json.Unmarshal(data, &p.stored); err != nil {
				return nil, fmt.Errorf("parse preferences %s: %w", path, err)
			}
		}
	}

	p.Settings = p.stored
	p.applyEnv()
	p.clamp()
	return p, nil
}

func (p *Preferences) applyEnv() {
	if v, ok := os.LookupEnv(EnvSound); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			p.Sound = b
		}
	}
	if v := os.Getenv(EnvLang); v != "" {
		p.Language = v
	}
	if v := os.Getenv(EnvRenderer); v != "" {
		p.Renderer = v
	}
}

func (p *Preferences) clamp() {
	p.TileSize = clampTileSize(p.TileSize)
}

func clampTileSize(size int) int {
	if size == 0 {
		size = DefaultTileSize
	}
	return max(MinTileSize, min(size, MaxTileSize))
}

// Path returns the file the preferences are saved to
func (p *Preferences) Path() string {
	return p.path
}

// Stored returns the settings as they will be written to disk.
func (p *Preferences) Stored() Settings {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stored
}

// Save writes the stored settings back to their file
func (p *Preferences) Save() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.saveLocked()
}

func (p *Preferences) saveLocked() error {
	if p.path == "" {
		return errors.New("no preferences path")
	}
	data, err := json.MarshalIndent(p.stored, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(p.path, data, 0o644)
}

// SetTileSize stores a new zoom level and saves
func (p *Preferences) SetTileSize(size int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.TileSize = clampTileSize(size)
	p.stored.TileSize = p.TileSize
	return p.saveLocked()
}

// SetDifficulty remembers the last chosen difficulty and saves
func (p *Preferences) SetDifficulty(name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Difficulty = name
	p.stored.Difficulty = name
	return p.saveLocked()
}
