package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-connect4/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Connect Four SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own hot-seat game: two players share one
terminal. There is no matchmaking between connections. All connections
add to the same stats tallies.

Host key handling:
  - If --host-key (or ssh.host_key_path) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.connect4/host_key

Examples:
  connect4 serve                           # Listen on the configured address
  connect4 serve --ssh :2222               # Listen on port 2222
  connect4 serve --host-key ./my_host_key  # Use specific host key
  connect4 serve --idle-timeout 10m

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address host:port (overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (overrides config)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (overrides config)")
}

func runServe(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}

	if flagSSHAddr != "" {
		cfg.SSH.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.SSH.HostKeyPath = flagHostKey
	}
	if cmd.Flags().Changed("idle-timeout") {
		cfg.SSH.IdleTimeout = flagIdleTimeout
	}

	server, err := tui.NewSSHServer(cfg, logger.WithPrefix("connect4-ssh"))
	if err != nil {
		fatal("creating server: %v", err)
	}

	fmt.Printf("Starting Connect Four SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fatal("server: %v", err)
	}
}
