package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/platform/tui"
	"github.com/vovakirdan/tui-connect4/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a hot-seat game",
	Long: `Start a two-player game in this terminal. Players take turns at the
same keyboard (or mouse).

Controls:
  Left/Right, h/l  - Move the column selector
  Enter/Space/Down - Drop a disc
  1-9              - Drop straight into that column
  Mouse            - Point to select, click to drop
  R                - Restart (after game over)
  ?                - Toggle full help
  Q/Ctrl+C         - Quit

Examples:
  connect4 play
  connect4 play --rows 8 --cols 10
  connect4 play --config ./my-connect4.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

// helpLines is the height of the short help under the board.
const helpLines = 1

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	} else {
		logger.Debug("cannot read terminal size, using defaults", "error", termErr)
	}

	needW, needH := core.MinScreenSize(cfg.Board.Rows, cfg.Board.Cols)
	needH += helpLines
	if width < needW || height < needH {
		fatal("terminal too small for a %dx%d board: need %dx%d, have %dx%d",
			cfg.Board.Rows, cfg.Board.Cols, needW, needH, width, height)
	}

	opts, err := tui.OptionsFromConfig(cfg, width, height)
	if err != nil {
		fatal("%v", err)
	}

	// Open stats storage
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open stats database", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		opts.Recorder = store
	}

	logger.Debug("starting game", "size", fmt.Sprintf("%dx%d", width, height))
	runErr := tui.Run(opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fatal("running game: %v", runErr)
	}
}
