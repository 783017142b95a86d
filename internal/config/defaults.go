package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/connect4.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It mirrors defaults/connect4.yaml
// and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Rows: 6,
			Cols: 7,
		},
		Players: PlayersConfig{
			Player1: "Player 1",
			Player2: "Player 2",
		},
		Theme: ThemeConfig{
			Board:     "yellow",
			Player1:   "bright_red",
			Player2:   "bright_blue",
			Empty:     "white",
			Highlight: "bright_green",
		},
		Storage: StorageConfig{
			DBPath: "~/.connect4/stats.db",
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
