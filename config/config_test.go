package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDaemonCreatesDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg, path, err := LoadDaemon()
	if !errors.Is(err, ErrDefaultCreated) {
		t.Fatalf("err = %v, want ErrDefaultCreated", err)
	}
	if cfg != DefaultDaemon() {
		t.Errorf("cfg = %+v", cfg)
	}
	if _, statErr := os.Stat(path); statErr != nil {
		t.Errorf("expected config file at %s: %v", path, statErr)
	}

	cfg2, _, err2 := LoadDaemon()
	if err2 != nil {
		t.Fatalf("second load: %v", err2)
	}
	if cfg2 != cfg {
		t.Errorf("reloaded cfg = %+v, want %+v", cfg2, cfg)
	}
}

func TestLoadDaemonEnvToken(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("STREAMCHAT_TWITCH_OAUTH_TOKEN", "abc123")

	if _, _, err := LoadDaemon(); !errors.Is(err, ErrDefaultCreated) {
		t.Fatalf("err = %v", err)
	}
	cfg, _, err := LoadDaemon()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.OAuthToken != "abc123" {
		t.Errorf("oauth_token = %q, want abc123", cfg.OAuthToken)
	}
}

func TestLoadClientDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg, path, err := LoadClient()
	if !errors.Is(err, ErrDefaultCreated) {
		t.Fatalf("err = %v", err)
	}
	if cfg.LeftFringe.Fringe != "⤷" {
		t.Errorf("left fringe = %q", cfg.LeftFringe.Fringe)
	}
	if filepath.Base(path) != clientFileName {
		t.Errorf("path = %q", path)
	}
}
