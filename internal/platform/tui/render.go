package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-connect4/internal/connect4"
	"github.com/vovakirdan/tui-connect4/internal/core"
)

// Glyphs used for the board.
const (
	discRune     = '●'
	lastMoveRune = '◉'
	emptyRune    = '○'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// draw renders the whole game view into the model's screen buffer.
func (m Model) draw() *core.Screen {
	s := m.screen
	s.Clear()

	if m.goodbye {
		s.DrawTextCentered(s.Height()/2, "GOODBYE!", m.palette.Highlight)
		return s
	}

	l := m.layout
	snap := m.engine.Snapshot()

	s.DrawTextCentered(l.TitleY, "CONNECT FOUR", m.palette.Highlight)

	// Preview disc above the selected column
	if !m.fall.active && !snap.State.Terminal() {
		s.SetCell(l.DiscX(m.cursor), l.PreviewY, discRune, m.playerColor(snap.Current))
	}

	s.DrawBox(l.Board, m.palette.Board)

	winning := make(map[[2]int]bool)
	for _, pos := range m.engine.WinningLine() {
		winning[pos] = true
	}

	for row := 0; row < snap.Rows; row++ {
		for col := 0; col < snap.Cols; col++ {
			x, y := l.DiscX(col), l.DiscY(row)
			p := snap.Grid[row][col]

			if m.fall.active && row == m.fall.row && col == m.fall.col {
				p = connect4.None
			}

			switch {
			case p == connect4.None:
				s.SetCell(x, y, emptyRune, m.palette.Empty)
			case winning[[2]int{row, col}] && !m.fall.active:
				s.SetCell(x, y, discRune, m.palette.Highlight)
			case snap.LastMove != nil && snap.LastMove.Row == row && snap.LastMove.Col == col:
				s.SetCell(x, y, lastMoveRune, m.playerColor(p))
			default:
				s.SetCell(x, y, discRune, m.playerColor(p))
			}
		}
	}

	if m.fall.active {
		y := l.PreviewY
		if m.fall.y >= 0 {
			y = l.DiscY(m.fall.y)
		}
		s.SetCell(l.DiscX(m.fall.col), y, discRune, m.playerColor(m.fall.player))
	}

	// Column numbers, highlighted under the selector
	for col := 0; col < snap.Cols; col++ {
		c := m.palette.Board
		if col == m.cursor && !snap.State.Terminal() {
			c = m.palette.Highlight
		}
		label := fmt.Sprintf("%d", col+1)
		s.DrawTextColor(l.DiscX(col)-(len(label)-1)/2, l.LabelsY, label, c)
	}

	status, statusColor := m.statusLine(snap)
	s.DrawTextCentered(l.StatusY, status, statusColor)

	if snap.State.Terminal() && !m.fall.active {
		m.drawBanner(s, snap.State)
	}

	return s
}

// drawBanner draws the end-of-game message with its Restart and Quit buttons.
func (m Model) drawBanner(s *core.Screen, st connect4.State) {
	l := m.layout
	s.DrawRect(l.Banner, ' ', core.ColorDefault)
	s.DrawBox(l.Banner, m.palette.Highlight)

	msg := bannerText(st, m.names)
	msgColor := m.palette.Highlight
	if st.Status == connect4.Won {
		msgColor = m.playerColor(st.Winner)
	}
	s.DrawTextColor(l.Banner.X+(l.Banner.W-len([]rune(msg)))/2, l.Banner.Y+2, msg, msgColor)

	restartColor, quitColor := core.ColorWhite, core.ColorWhite
	if m.focus == focusRestart {
		restartColor = m.palette.Highlight
	} else {
		quitColor = m.palette.Highlight
	}
	s.DrawTextColor(l.Restart.X, l.Restart.Y, core.RestartLabel, restartColor)
	s.DrawTextColor(l.Quit.X, l.Quit.Y, core.QuitLabel, quitColor)
}

// statusLine returns the text and color shown under the board.
func (m Model) statusLine(snap connect4.Snapshot) (string, core.Color) {
	if m.status != "" {
		return m.status, core.ColorBrightYellow
	}
	switch snap.State.Status {
	case connect4.Won:
		return bannerText(snap.State, m.names), m.playerColor(snap.State.Winner)
	case connect4.Draw:
		return bannerText(snap.State, m.names), m.palette.Highlight
	}
	return fmt.Sprintf("%s's turn", m.playerName(snap.Current)), m.playerColor(snap.Current)
}

// bannerText is the end-of-game message.
func bannerText(st connect4.State, names [2]string) string {
	if st.Status == connect4.Draw {
		return "It's a Draw!"
	}
	return fmt.Sprintf("%s Has Won!", names[st.Winner-1])
}

// moveErrorText turns a rejected move into a status line message.
func moveErrorText(err error, col int) string {
	switch {
	case errors.Is(err, connect4.ErrGameAlreadyOver):
		return "The game is over, press r to restart"
	case errors.Is(err, connect4.ErrInvalidColumn):
		return fmt.Sprintf("There is no column %d", col+1)
	case errors.Is(err, connect4.ErrIllegalMove):
		return fmt.Sprintf("Column %d is full", col+1)
	}
	return err.Error()
}
