package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const daemonFileName = "streamchatd.toml"

// Daemon is the streamchatd.toml shape from spec.md §6, plus the optional
// extra transport sinks described in §4.5's design notes.
type Daemon struct {
	Address    string `toml:"address"`
	OAuthToken string `toml:"oauth_token"`
	Limit      int    `toml:"limit"`
	Channel    string `toml:"channel"`
	Nick       string `toml:"nick"`

	// LogPath, if set, appends every record to this file as a second
	// sink alongside the socket broker.
	LogPath string `toml:"log_path"`
	// LogFormatted switches LogPath's output from raw JSON lines to
	// "<name>: <data>" lines for human reading.
	LogFormatted bool `toml:"log_formatted"`
	// WebSocketAddress, if set, serves a websocket broadcast sink on
	// this address alongside the socket broker.
	WebSocketAddress string `toml:"websocket_address"`
}

// DefaultDaemon mirrors the original implementation's defaults.
func DefaultDaemon() Daemon {
	return Daemon{
		Address: "localhost:51002",
		Limit:   32,
		Channel: "museun",
		Nick:    "museun",
	}
}

// DaemonPath returns the path streamchatd.toml is read from and written to.
func DaemonPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, daemonFileName), nil
}

// ErrDefaultCreated is returned by LoadDaemon and LoadClient when no config
// file existed and a default one was just written; callers should exit with
// code 2.
var ErrDefaultCreated = fmt.Errorf("config: default config created")

// LoadDaemon loads streamchatd.toml, writing and returning a default
// config (wrapped in ErrDefaultCreated) if none exists yet.
func LoadDaemon() (Daemon, string, error) {
	path, err := DaemonPath()
	if err != nil {
		return Daemon{}, "", err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		def := DefaultDaemon()
		if err := saveDaemon(path, def); err != nil {
			return Daemon{}, path, fmt.Errorf("config: writing default: %w", err)
		}
		return def, path, ErrDefaultCreated
	}

	var cfg Daemon
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Daemon{}, path, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if cfg.OAuthToken == "" {
		cfg.OAuthToken = os.Getenv("STREAMCHAT_TWITCH_OAUTH_TOKEN")
	}
	return cfg, path, nil
}

func saveDaemon(path string, cfg Daemon) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}
