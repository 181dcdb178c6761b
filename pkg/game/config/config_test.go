package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "config.json")
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Difficulty != "beginner" || p.TileSize != DefaultTileSize || p.Sound {
		t.Errorf("defaults = %+v", p)
	}
	if p.Path() != path {
		t.Errorf("Path() = %q, want %q", p.Path(), path)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minesweeper", "config.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(`{"sound": true, "bindings": {"Flag": "x"}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := p.SetDifficulty("expert"); err != nil {
		t.Fatalf("SetDifficulty: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Difficulty != "expert" || !got.Sound || got.Bindings["Flag"] != "x" {
		t.Errorf("reloaded = %+v", got.Settings)
	}
}

func TestSave_KeepsOverridesOutOfFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	t.Setenv(EnvRenderer, "tui")
	t.Setenv(EnvLang, "de")

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	// a command-line override
	p.Generator = "shuffle"
	if err := p.SetDifficulty("expert"); err != nil {
		t.Fatalf("SetDifficulty: %v", err)
	}
	if err := p.SetTileSize(48); err != nil {
		t.Fatalf("SetTileSize: %v", err)
	}
	if p.Renderer != "tui" || p.Generator != "shuffle" {
		t.Errorf("effective settings lost overrides: %+v", p.Settings)
	}

	os.Unsetenv(EnvRenderer)
	os.Unsetenv(EnvLang)
	got, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	want := defaultSettings()
	want.Difficulty = "expert"
	want.TileSize = 48
	if got.Renderer != want.Renderer || got.Language != want.Language || got.Generator != want.Generator {
		t.Errorf("overrides written to file: %+v", got.Settings)
	}
	if got.Difficulty != want.Difficulty || got.TileSize != want.TileSize {
		t.Errorf("reloaded = %+v, want %+v", got.Settings, want)
	}
	if s := got.Stored(); s.Renderer != "ebiten" {
		t.Errorf("Stored().Renderer = %q", s.Renderer)
	}
}

func TestSetTileSize_Clamps(t *testing.T) {
	p, _ := Load(filepath.Join(t.TempDir(), "config.json"))
	if err := p.SetTileSize(500); err != nil {
		t.Fatalf("SetTileSize: %v", err)
	}
	if p.TileSize != MaxTileSize {
		t.Errorf("TileSize = %d, want %d", p.TileSize, MaxTileSize)
	}
	if err := p.SetTileSize(1); err != nil {
		t.Fatalf("SetTileSize: %v", err)
	}
	if p.TileSize != MinTileSize {
		t.Errorf("TileSize = %d, want %d", p.TileSize, MinTileSize)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvSound, "true")
	t.Setenv(EnvLang, "de")
	t.Setenv(EnvRenderer, "tcell")

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !p.Sound || p.Language != "de" || p.Renderer != "tcell" {
		t.Errorf("env overrides not applied: %+v", p)
	}
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load of truncated JSON: want error")
	}
}

func TestSave_NoPath(t *testing.T) {
	p := Defaults()
	if err := p.Save(); err == nil {
		t.Error("Save without path: want error")
	}
}
