package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blog.yaml")
	content := "source_dir: posts\nbase_url: https://example.com\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SourceDir != "posts" {
		t.Errorf("SourceDir = %q", cfg.SourceDir)
	}
	if cfg.BaseURL != "https://example.com" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	// Unset keys keep their defaults.
	if cfg.OutputDir != Default().OutputDir {
		t.Errorf("OutputDir = %q, want default", cfg.OutputDir)
	}
	if cfg.HighlightStyle != Default().HighlightStyle {
		t.Errorf("HighlightStyle = %q, want default", cfg.HighlightStyle)
	}
}

func TestLoad_MalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blog.yaml")
	if err := os.WriteFile(path, []byte(":\n\t- bad"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed config")
	}
}
