// connect4 is a two-player Connect Four game for the terminal.
//
// Usage:
//
//	connect4                 - Play a hot-seat game (same as "connect4 play")
//	connect4 play            - Play a hot-seat game
//	connect4 serve           - Start SSH server, one game per connection
//	connect4 stats           - Show win/draw tallies
//	connect4 config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.connect4, ./configs)
//	--db <path>         - Stats database path (default: ~/.connect4/stats.db)
//	--rows, --cols      - Board size override
//	--log-level <level> - debug, info, warn, error (default: info)
//
// Flag defaults can also come from CONNECT4_CONFIG, CONNECT4_DB and
// CONNECT4_LOG_LEVEL, read from the environment or a .env file.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-connect4/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagRows     int
	flagCols     int
	flagLogLevel string

	logger *log.Logger
)

// envFlags maps persistent flags to the environment variables that
// provide their defaults.
var envFlags = map[string]string{
	"config":    "CONNECT4_CONFIG",
	"db":        "CONNECT4_DB",
	"log-level": "CONNECT4_LOG_LEVEL",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "connect4",
	Short: "Connect Four - two players, one terminal",
	Long: `Connect Four for the terminal. Two players take turns dropping discs
into a vertical grid; the first to line up four in a row, column or
diagonal wins.

Available commands:
  play     - Play a hot-seat game (default)
  serve    - Start SSH server for remote play
  stats    - Show win/draw tallies
  config   - Print the effective configuration

Examples:
  connect4
  connect4 play --rows 8 --cols 9
  connect4 serve --ssh :2222
  connect4 stats --reset`,
	PersistentPreRunE: setup,
	Run:               runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to stats database (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagRows, "rows", 0, "Board rows (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagCols, "cols", 0, "Board columns (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads .env, applies environment defaults to unset flags and
// builds the logger. It runs before every command.
func setup(cmd *cobra.Command, _ []string) error {
	dotenvErr := godotenv.Load()

	for name, env := range envFlags {
		if cmd.Flags().Changed(name) {
			continue
		}
		if v, ok := os.LookupEnv(env); ok && v != "" {
			if err := cmd.Flags().Set(name, v); err != nil {
				return fmt.Errorf("%s: %w", env, err)
			}
		}
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "connect4",
		Level:           level,
	})
	if dotenvErr != nil && !os.IsNotExist(dotenvErr) {
		logger.Warn("could not read .env", "error", dotenvErr)
	}
	return nil
}

// loadConfig loads the configuration file and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagRows != 0 {
		cfg.Board.Rows = flagRows
	}
	if flagCols != 0 {
		cfg.Board.Cols = flagCols
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	logger.Debug("configuration loaded",
		"board", fmt.Sprintf("%dx%d", cfg.Board.Rows, cfg.Board.Cols),
		"db", cfg.Storage.DBPath,
	)
	return cfg, nil
}

// fatal prints an error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
