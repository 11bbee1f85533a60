package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const clientFileName = "streamchatc.toml"

// FringeConfig is one of the left/right fringe cells.
type FringeConfig struct {
	Fringe string `toml:"fringe"`
	Color  string `toml:"color"`
}

// Client is the streamchatc.toml shape from spec.md §6.
type Client struct {
	Address    string       `toml:"address"`
	BufferMax  int          `toml:"buffer_max"`
	NickMax    int          `toml:"nick_max"`
	LeftFringe FringeConfig `toml:"left_fringe"`
	RightFringe FringeConfig `toml:"right_fringe"`
}

// DefaultClient mirrors the original implementation's defaults.
func DefaultClient() Client {
	return Client{
		Address:     "localhost:51002",
		BufferMax:   32,
		NickMax:     10,
		LeftFringe:  FringeConfig{Fringe: "⤷", Color: "#0000FF"},
		RightFringe: FringeConfig{Fringe: "⤶", Color: "#FFFF00"},
	}
}

// ClientPath returns the path streamchatc.toml is read from and written to.
func ClientPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, clientFileName), nil
}

// LoadClient loads streamchatc.toml, writing and returning a default config
// (wrapped in ErrDefaultCreated) if none exists yet.
func LoadClient() (Client, string, error) {
	path, err := ClientPath()
	if err != nil {
		return Client{}, "", err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		def := DefaultClient()
		if err := saveClient(path, def); err != nil {
			return Client{}, path, fmt.Errorf("config: writing default: %w", err)
		}
		return def, path, ErrDefaultCreated
	}

	var cfg Client
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Client{}, path, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return cfg, path, nil
}

func saveClient(path string, cfg Client) error {
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
