package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-connect4/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration connect4 would use, after applying the
config file and flag overrides, as YAML.

Use --defaults to print the built-in defaults instead, for example to
start a new config file:

  connect4 config --defaults > ~/.connect4/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fatal("%v", err)
	}
	fmt.Print(string(data))
}
