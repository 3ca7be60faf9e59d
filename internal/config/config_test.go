package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aayushdutt/zuluquery/internal/zulu"
)

func writeConfig(t *testing.T, content string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvAPIURL, "")
	if content == "" {
		return
	}
	if err := os.MkdirAll(filepath.Join(dir, "zuluquery"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "zuluquery", "config.json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	writeConfig(t, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.APIURL != zulu.DefaultBaseURL {
		t.Errorf("APIURL = %q, want default", cfg.APIURL)
	}
	if cfg.RetryMax != 0 || cfg.Verbose || cfg.Timeout != 0 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_File(t *testing.T) {
	writeConfig(t, `{"apiURL":"http://localhost:9999/packages","retryMax":2,"timeout":"45s","verbose":true}`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.APIURL != "http://localhost:9999/packages" {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
	if cfg.RetryMax != 2 {
		t.Errorf("RetryMax = %d, want 2", cfg.RetryMax)
	}
	if time.Duration(cfg.Timeout) != 45*time.Second {
		t.Errorf("Timeout = %v, want 45s", time.Duration(cfg.Timeout))
	}
	if !cfg.Verbose {
		t.Error("Verbose should be true")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	writeConfig(t, `{"apiURL":"http://from-file"}`)
	t.Setenv(EnvAPIURL, "http://from-env")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.APIURL != "http://from-env" {
		t.Errorf("APIURL = %q, want env value", cfg.APIURL)
	}
}

func TestLoad_EmptyURLFallsBack(t *testing.T) {
	writeConfig(t, `{"apiURL":"","retryMax":-3}`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.APIURL != zulu.DefaultBaseURL {
		t.Errorf("APIURL = %q, want default", cfg.APIURL)
	}
	if cfg.RetryMax != 0 {
		t.Errorf("RetryMax = %d, want clamp to 0", cfg.RetryMax)
	}
}

func TestLoad_BadJSON(t *testing.T) {
	writeConfig(t, `{"timeout": 30}`)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for numeric timeout")
	}
}
