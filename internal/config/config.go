// Package config provides YAML-based configuration loading for the game:
// board dimensions, player names, colors, storage and SSH settings.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-connect4/internal/core"
)

// Board size limits accepted from config. The engine itself takes any
// positive size; these bounds keep the board drawable and winnable.
const (
	MinBoardSize = 4
	MaxBoardSize = 16
)

// Config contains all configuration for the game.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Players PlayersConfig `yaml:"players"`
	Theme   ThemeConfig   `yaml:"theme"`
	Storage StorageConfig `yaml:"storage"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// BoardConfig defines the grid dimensions, fixed when a game is created.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// PlayersConfig holds the display names for both players.
type PlayersConfig struct {
	Player1 string `yaml:"player1"`
	Player2 string `yaml:"player2"`
}

// ThemeConfig holds color names, see core.ColorNames for accepted values.
type ThemeConfig struct {
	Board     string `yaml:"board"`
	Player1   string `yaml:"player1"`
	Player2   string `yaml:"player2"`
	Empty     string `yaml:"empty"`
	Highlight string `yaml:"highlight"`
}

// StorageConfig defines where win/draw tallies are kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// SSHConfig defines the remote play server.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"` // empty = ~/.connect4/host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Palette is a resolved ThemeConfig.
type Palette struct {
	Board     core.Color
	Player1   core.Color
	Player2   core.Color
	Empty     core.Color
	Highlight core.Color
}

// Palette resolves the theme's color names.
func (t ThemeConfig) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		val  string
		dst  *core.Color
	}{
		{"board", t.Board, &p.Board},
		{"player1", t.Player1, &p.Player1},
		{"player2", t.Player2, &p.Player2},
		{"empty", t.Empty, &p.Empty},
		{"highlight", t.Highlight, &p.Highlight},
	}
	for _, f := range fields {
		c, err := core.ParseColor(f.val)
		if err != nil {
			return Palette{}, fmt.Errorf("theme.%s: %w", f.name, err)
		}
		*f.dst = c
	}
	return p, nil
}

// Validate checks the configuration and reports every problem found.
func (c Config) Validate() error {
	var errs []error

	if c.Board.Rows < MinBoardSize || c.Board.Rows > MaxBoardSize {
		errs = append(errs, fmt.Errorf("board.rows must be in [%d, %d], got %d", MinBoardSize, MaxBoardSize, c.Board.Rows))
	}
	if c.Board.Cols < MinBoardSize || c.Board.Cols > MaxBoardSize {
		errs = append(errs, fmt.Errorf("board.cols must be in [%d, %d], got %d", MinBoardSize, MaxBoardSize, c.Board.Cols))
	}
	if strings.TrimSpace(c.Players.Player1) == "" || strings.TrimSpace(c.Players.Player2) == "" {
		errs = append(errs, errors.New("players: names must not be empty"))
	}
	if _, err := c.Theme.Palette(); err != nil {
		errs = append(errs, err)
	}
	if c.SSH.IdleTimeout < 0 {
		errs = append(errs, fmt.Errorf("ssh.idle_timeout must not be negative, got %s", c.SSH.IdleTimeout))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
