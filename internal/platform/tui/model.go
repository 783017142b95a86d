package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-connect4/internal/config"
	"github.com/vovakirdan/tui-connect4/internal/connect4"
	"github.com/vovakirdan/tui-connect4/internal/core"
)

// OutcomeRecorder receives the result of every finished game.
// *storage.Store satisfies it.
type OutcomeRecorder interface {
	RecordOutcome(st connect4.State) error
}

// Options configures a game model.
type Options struct {
	Config  core.RuntimeConfig
	Names   [2]string
	Palette config.Palette

	// Recorder is optional; nil disables stats.
	Recorder OutcomeRecorder

	// Logger is optional. The local TUI leaves it nil so nothing is
	// written while the alternate screen is active.
	Logger *log.Logger
}

// OptionsFromConfig builds model options from the loaded configuration.
func OptionsFromConfig(cfg config.Config, screenW, screenH int) (Options, error) {
	palette, err := cfg.Theme.Palette()
	if err != nil {
		return Options{}, err
	}
	return Options{
		Config: core.RuntimeConfig{
			ScreenW: screenW,
			ScreenH: screenH,
			Rows:    cfg.Board.Rows,
			Cols:    cfg.Board.Cols,
		},
		Names:   [2]string{cfg.Players.Player1, cfg.Players.Player2},
		Palette: palette,
	}, nil
}

type bannerFocus int

const (
	focusRestart bannerFocus = iota
	focusQuit
)

// fallState tracks the disc currently falling into place.
type fallState struct {
	active bool
	col    int
	row    int // landing row
	y      int // current row, -1 while still in the preview row
	player connect4.Player
}

// Model is the Bubble Tea model for a hot-seat Connect Four game.
type Model struct {
	engine   *connect4.Engine
	screen   *core.Screen
	layout   core.Layout
	config   core.RuntimeConfig
	names    [2]string
	palette  config.Palette
	recorder OutcomeRecorder
	logger   *log.Logger
	keys     KeyMap
	help     help.Model

	cursor   int
	fall     fallState
	status   string // last rejected move, cleared by the next drop
	focus    bannerFocus
	recorded bool // outcome of the current game has been recorded
	goodbye  bool
	quitting bool
}

// NewModel creates a new game model.
func NewModel(opts Options) (Model, error) {
	engine, err := connect4.New(opts.Config.Rows, opts.Config.Cols)
	if err != nil {
		return Model{}, err
	}

	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	h.Styles.FullKey = h.Styles.ShortKey

	m := Model{
		engine:   engine,
		screen:   core.NewScreen(opts.Config.ScreenW, opts.Config.ScreenH),
		config:   opts.Config,
		names:    opts.Names,
		palette:  opts.Palette,
		recorder: opts.Recorder,
		logger:   opts.Logger,
		keys:     DefaultKeyMap(),
		help:     h,
		cursor:   engine.Cols() / 2,
	}
	m.relayout()
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.relayout()
		return m, nil

	case fallTickMsg:
		return m.handleFallTick()

	case goodbyeMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, col := m.keys.MapKey(msg)

	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if m.goodbye {
		return m, nil
	}
	if action == core.ActionHelp {
		m.help.ShowAll = !m.help.ShowAll
		m.relayout()
		return m, nil
	}

	// Input is ignored while a disc is falling
	if m.fall.active {
		return m, nil
	}

	if m.engine.State().Terminal() {
		switch action {
		case core.ActionRestart:
			return m.restart()
		case core.ActionLeft, core.ActionRight:
			if m.focus == focusRestart {
				m.focus = focusQuit
			} else {
				m.focus = focusRestart
			}
		case core.ActionDrop:
			if col >= 0 {
				// Digits only pick columns
				return m, nil
			}
			if m.focus == focusQuit {
				return m.sayGoodbye()
			}
			return m.restart()
		}
		return m, nil
	}

	switch action {
	case core.ActionLeft:
		m.cursor = core.Clamp(m.cursor-1, 0, m.engine.Cols()-1)
	case core.ActionRight:
		m.cursor = core.Clamp(m.cursor+1, 0, m.engine.Cols()-1)
	case core.ActionDrop:
		if col >= 0 {
			if col >= m.engine.Cols() {
				m.status = moveErrorText(connect4.ErrInvalidColumn, col)
				return m, nil
			}
			m.cursor = col
		}
		return m.drop(m.cursor)
	}

	return m, nil
}

// handleMouse moves the selector with the pointer and drops on left click.
// Once the game is over, clicks hit-test the banner buttons instead.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.goodbye || m.fall.active {
		return m, nil
	}

	if m.engine.State().Terminal() {
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		switch {
		case m.layout.Restart.Contains(msg.X, msg.Y):
			return m.restart()
		case m.layout.Quit.Contains(msg.X, msg.Y):
			return m.sayGoodbye()
		}
		return m, nil
	}

	col, ok := m.layout.ColumnAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	m.cursor = col

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return m.drop(col)
	}
	return m, nil
}

// drop plays the current player's disc into col and starts the fall animation.
func (m Model) drop(col int) (tea.Model, tea.Cmd) {
	row, st, err := m.engine.Drop(col)
	if err != nil {
		m.status = moveErrorText(err, col)
		return m, nil
	}
	m.status = ""

	move, _ := m.engine.LastMove()
	m.fall = fallState{active: true, col: col, row: row, y: -1, player: move.Player}

	if st.Terminal() {
		m.recordOutcome(st)
	}

	return m, fallTickCmd()
}

// handleFallTick moves the falling disc down one row.
func (m Model) handleFallTick() (tea.Model, tea.Cmd) {
	if !m.fall.active {
		return m, nil
	}
	m.fall.y++
	if m.fall.y >= m.fall.row {
		m.fall.active = false
		return m, nil
	}
	return m, fallTickCmd()
}

// recordOutcome adds the finished game to the stats once.
func (m *Model) recordOutcome(st connect4.State) {
	if m.recorded {
		return
	}
	m.recorded = true

	if m.logger != nil {
		m.logger.Info("game finished", "status", st.Status, "winner", st.Winner, "moves", len(m.engine.Moves()))
	}
	if m.recorder == nil {
		return
	}
	if err := m.recorder.RecordOutcome(st); err != nil {
		if m.logger != nil {
			m.logger.Warn("could not record outcome", "error", err)
		} else {
			m.status = "Could not save stats"
		}
	}
}

// restart begins a new game on the same board size.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.engine.Reset()
	m.cursor = m.engine.Cols() / 2
	m.fall = fallState{}
	m.status = ""
	m.focus = focusRestart
	m.recorded = false
	return m, nil
}

// sayGoodbye shows the farewell screen and exits after a short delay.
func (m Model) sayGoodbye() (tea.Model, tea.Cmd) {
	m.goodbye = true
	return m, goodbyeCmd()
}

// relayout recomputes geometry after a resize or a help toggle.
// The help view is rendered below the screen buffer.
func (m *Model) relayout() {
	m.help.Width = m.config.ScreenW
	h := m.config.ScreenH - lipgloss.Height(m.help.View(m.keys))
	m.screen.Resize(m.config.ScreenW, core.Max(h, 0))
	m.layout = core.NewLayout(m.screen.Width(), m.screen.Height(), m.engine.Rows(), m.engine.Cols())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	screen := RenderScreen(m.draw())
	if m.goodbye {
		return screen
	}
	return screen + "\n" + m.help.View(m.keys)
}

// playerColor returns the configured disc color for p.
func (m Model) playerColor(p connect4.Player) core.Color {
	switch p {
	case connect4.Player1:
		return m.palette.Player1
	case connect4.Player2:
		return m.palette.Player2
	}
	return m.palette.Empty
}

// playerName returns the configured display name for p.
func (m Model) playerName(p connect4.Player) string {
	if p == connect4.Player1 || p == connect4.Player2 {
		return m.names[p-1]
	}
	return p.String()
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // preview disc follows the pointer
	)

	_, err = p.Run()
	return err
}
