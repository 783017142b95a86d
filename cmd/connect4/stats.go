package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-connect4/internal/config"
	"github.com/vovakirdan/tui-connect4/internal/storage"
)

var flagReset bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show win/draw tallies",
	Long: `Display how many games each player has won and how many were drawn.
Only totals are kept; individual games are not recorded.

Examples:
  connect4 stats
  connect4 stats --reset
  connect4 stats --db ./stats.db`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagReset, "reset", false, "Clear all tallies")
}

func runStats(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fatal("opening stats database: %v", err)
	}
	defer store.Close()

	if flagReset {
		if err := store.ResetTallies(); err != nil {
			fatal("%v", err)
		}
		logger.Info("tallies cleared", "db", cfg.Storage.DBPath)
		return
	}

	tallies, err := store.Tallies()
	if err != nil {
		fatal("%v", err)
	}

	fmt.Println("Connect Four - Results")
	fmt.Println()

	if tallies.Total() == 0 {
		fmt.Println("No games finished yet.")
		fmt.Println()
		fmt.Println("Run 'connect4 play' to start one!")
		return
	}

	fmt.Println(tallyTable(tallies, cfg.Players))
	fmt.Println()
	fmt.Printf("Last game: %s\n", tallies.LastPlayed.Local().Format("2006-01-02 15:04"))
}

// tallyTable renders the tallies as a static table.
func tallyTable(t storage.Tallies, players config.PlayersConfig) string {
	total := t.Total()
	share := func(n int) string {
		return fmt.Sprintf("%.0f%%", float64(n)*100/float64(total))
	}

	rows := []table.Row{
		{players.Player1 + " wins", strconv.Itoa(t.Player1Wins), share(t.Player1Wins)},
		{players.Player2 + " wins", strconv.Itoa(t.Player2Wins), share(t.Player2Wins)},
		{"Draws", strconv.Itoa(t.Draws), share(t.Draws)},
		{"Total", strconv.Itoa(total), ""},
	}

	nameW := 8
	for _, r := range rows {
		nameW = max(nameW, lipgloss.Width(r[0]))
	}

	tbl := table.New(
		table.WithColumns([]table.Column{
			{Title: "Result", Width: nameW},
			{Title: "Games", Width: 6},
			{Title: "Share", Width: 6},
		}),
		table.WithRows(rows),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	// Nothing is selected in a printed table
	s.Selected = lipgloss.NewStyle()
	tbl.SetStyles(s)
	// Header plus its border, then every row
	tbl.SetHeight(len(rows) + 2)

	return tbl.View()
}
