package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-connect4/internal/config"
	"github.com/vovakirdan/tui-connect4/internal/connect4"
	"github.com/vovakirdan/tui-connect4/internal/core"
)

type fakeRecorder struct {
	outcomes []connect4.State
	err      error
}

func (f *fakeRecorder) RecordOutcome(st connect4.State) error {
	f.outcomes = append(f.outcomes, st)
	return f.err
}

func newTestModel(t *testing.T, rec OutcomeRecorder) Model {
	t.Helper()
	opts, err := OptionsFromConfig(config.Default(), 80, 24)
	if err != nil {
		t.Fatalf("OptionsFromConfig failed: %v", err)
	}
	opts.Recorder = rec
	m, err := NewModel(opts)
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	m, _ = update(t, m, msg)
	return m
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// settle runs the fall animation to completion.
func settle(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; m.fall.active; i++ {
		if i > 100 {
			t.Fatal("fall animation never finished")
		}
		m = send(t, m, fallTickMsg{})
	}
	return m
}

// playColumns drops discs with the digit keys, zero-based columns.
func playColumns(t *testing.T, m Model, cols ...int) Model {
	t.Helper()
	for _, col := range cols {
		m = send(t, m, runeKey(rune('1'+col)))
		m = settle(t, m)
	}
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelInitialState(t *testing.T) {
	m := newTestModel(t, nil)

	if m.cursor != 3 {
		t.Errorf("cursor = %d, expected 3", m.cursor)
	}
	if m.engine.Rows() != 6 || m.engine.Cols() != 7 {
		t.Errorf("board = %dx%d, expected 6x7", m.engine.Rows(), m.engine.Cols())
	}
	if m.Init() != nil {
		t.Error("Init should not schedule anything")
	}

	out := m.draw().String()
	for _, want := range []string{"CONNECT FOUR", "Player 1's turn", "1   2   3   4   5   6   7"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
}

func TestModelRejectsBadBoardSize(t *testing.T) {
	opts, _ := OptionsFromConfig(config.Default(), 80, 24)
	opts.Config.Rows = 0
	if _, err := NewModel(opts); !errors.Is(err, connect4.ErrInvalidDimensions) {
		t.Errorf("NewModel error = %v, expected ErrInvalidDimensions", err)
	}
}

func TestModelCursorMovesAndClamps(t *testing.T) {
	m := newTestModel(t, nil)

	for i := 0; i < 5; i++ {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	}
	if m.cursor != 0 {
		t.Errorf("cursor after left = %d, expected 0", m.cursor)
	}

	for i := 0; i < 10; i++ {
		m = send(t, m, runeKey('l'))
	}
	if m.cursor != 6 {
		t.Errorf("cursor after right = %d, expected 6", m.cursor)
	}
	if len(m.engine.Moves()) != 0 {
		t.Error("moving the selector should not play")
	}
}

func TestModelDropAnimatesAndBlocksInput(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("drop should schedule the fall animation")
	}
	if !m.fall.active || m.fall.row != 5 || m.fall.col != 3 {
		t.Errorf("fall = %+v, expected active into (5, 3)", m.fall)
	}
	if m.engine.Cell(5, 3) != connect4.Player1 {
		t.Error("engine should hold the disc immediately")
	}

	// Input during the animation is ignored
	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if len(m.engine.Moves()) != 1 || m.cursor != 3 {
		t.Errorf("moves = %d, cursor = %d; input leaked through animation", len(m.engine.Moves()), m.cursor)
	}

	// The landing cell stays empty in the view until the disc arrives
	if got := m.draw().Get(m.layout.DiscX(3), m.layout.DiscY(5)); got != emptyRune {
		t.Errorf("landing cell = %q while falling, expected %q", got, emptyRune)
	}

	ticks := 0
	for m.fall.active {
		m = send(t, m, fallTickMsg{})
		ticks++
	}
	if ticks != 6 {
		t.Errorf("fall took %d ticks, expected 6", ticks)
	}
	if got := m.draw().Get(m.layout.DiscX(3), m.layout.DiscY(5)); got != lastMoveRune {
		t.Errorf("landed cell = %q, expected %q", got, lastMoveRune)
	}

	// A stray tick after landing is harmless
	m, cmd = update(t, m, fallTickMsg{})
	if cmd != nil || m.fall.active {
		t.Error("tick without animation should do nothing")
	}
}

func TestModelDigitDrop(t *testing.T) {
	m := newTestModel(t, nil)
	m = playColumns(t, m, 2)

	if m.engine.Cell(5, 2) != connect4.Player1 {
		t.Error("digit 3 should drop into column index 2")
	}
	if m.cursor != 2 {
		t.Errorf("cursor = %d, expected 2", m.cursor)
	}
	if m.engine.CurrentPlayer() != connect4.Player2 {
		t.Error("turn should pass to Player 2")
	}
	if !strings.Contains(m.draw().String(), "Player 2's turn") {
		t.Error("status should announce Player 2")
	}
}

func TestModelDigitOutOfRange(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, runeKey('9'))

	if len(m.engine.Moves()) != 0 {
		t.Error("column 9 does not exist on a 7-column board")
	}
	if m.status != "There is no column 9" {
		t.Errorf("status = %q", m.status)
	}
}

func TestModelFullColumn(t *testing.T) {
	m := newTestModel(t, nil)
	m = playColumns(t, m, 0, 0, 0, 0, 0, 0)

	m = send(t, m, runeKey('1'))
	if m.status != "Column 1 is full" {
		t.Errorf("status = %q, expected full column message", m.status)
	}
	if len(m.engine.Moves()) != 6 {
		t.Errorf("moves = %d, expected 6", len(m.engine.Moves()))
	}
	if m.engine.CurrentPlayer() != connect4.Player1 {
		t.Error("a rejected move must not change the turn")
	}
	if !strings.Contains(m.draw().String(), "Column 1 is full") {
		t.Error("status line should show the rejection")
	}

	// The next legal drop clears the message
	m = playColumns(t, m, 1)
	if m.status != "" {
		t.Errorf("status = %q, expected cleared", m.status)
	}
}

func TestModelWinShowsBannerAndRecordsOnce(t *testing.T) {
	rec := &fakeRecorder{}
	m := newTestModel(t, rec)
	m = playColumns(t, m, 0, 6, 1, 6, 2, 6, 3)

	st := m.engine.State()
	if st.Status != connect4.Won || st.Winner != connect4.Player1 {
		t.Fatalf("state = %+v, expected Player 1 win", st)
	}

	out := m.draw().String()
	for _, want := range []string{"Player 1 Has Won!", core.RestartLabel, core.QuitLabel} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}

	// Further drops are rejected and not recorded again
	m = send(t, m, runeKey('5'))
	m = send(t, m, tea.MouseMsg{X: m.layout.DiscX(4), Y: m.layout.PreviewY, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if len(m.engine.Moves()) != 7 {
		t.Errorf("moves = %d, expected 7", len(m.engine.Moves()))
	}
	if len(rec.outcomes) != 1 || rec.outcomes[0] != st {
		t.Errorf("outcomes = %+v, expected exactly one %+v", rec.outcomes, st)
	}

	// Restart and win again as Player 2
	m = send(t, m, runeKey('r'))
	if m.engine.State().Terminal() || len(m.engine.Moves()) != 0 {
		t.Fatal("r should start a new game")
	}
	m = playColumns(t, m, 0, 6, 1, 6, 2, 6, 4, 6)
	if len(rec.outcomes) != 2 || rec.outcomes[1].Winner != connect4.Player2 {
		t.Errorf("outcomes = %+v, expected a second Player 2 win", rec.outcomes)
	}
}

func TestModelDrawBanner(t *testing.T) {
	opts, _ := OptionsFromConfig(config.Default(), 80, 24)
	opts.Config.Rows, opts.Config.Cols = 4, 4
	rec := &fakeRecorder{}
	opts.Recorder = rec
	m, err := NewModel(opts)
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}

	// Columns paired so no line of four forms
	m = playColumns(t, m, 0, 1, 0, 1, 1, 0, 1, 0, 2, 3, 2, 3, 3, 2, 3, 2)

	if m.engine.State().Status != connect4.Draw {
		t.Fatalf("state = %+v, expected draw", m.engine.State())
	}
	if !strings.Contains(m.draw().String(), "It's a Draw!") {
		t.Error("draw banner missing")
	}
	if len(rec.outcomes) != 1 || rec.outcomes[0].Status != connect4.Draw {
		t.Errorf("outcomes = %+v, expected one draw", rec.outcomes)
	}
}

func TestModelRecorderError(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	m := newTestModel(t, rec)
	m = playColumns(t, m, 0, 6, 1, 6, 2, 6, 3)

	if m.status != "Could not save stats" {
		t.Errorf("status = %q, expected save failure message", m.status)
	}
}

func TestModelMouse(t *testing.T) {
	m := newTestModel(t, nil)
	l := m.layout

	m = send(t, m, tea.MouseMsg{X: l.DiscX(5), Y: l.DiscY(2), Action: tea.MouseActionMotion})
	if m.cursor != 5 {
		t.Errorf("cursor = %d after motion, expected 5", m.cursor)
	}
	if len(m.engine.Moves()) != 0 {
		t.Error("motion should not play")
	}

	// Pointer outside the board leaves the selector alone
	m = send(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	if m.cursor != 5 {
		t.Errorf("cursor = %d after off-board motion, expected 5", m.cursor)
	}

	m = send(t, m, tea.MouseMsg{X: l.DiscX(1), Y: l.PreviewY, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = settle(t, m)
	if m.engine.Cell(5, 1) != connect4.Player1 {
		t.Error("left click should drop into the column under the pointer")
	}

	m = send(t, m, tea.MouseMsg{X: l.DiscX(2), Y: l.PreviewY, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if len(m.engine.Moves()) != 1 {
		t.Error("right click should not play")
	}
}

func TestModelBannerButtons(t *testing.T) {
	m := newTestModel(t, nil)
	m = playColumns(t, m, 0, 6, 1, 6, 2, 6, 3)

	// Restart button
	x, y := m.layout.Restart.Center()
	m = send(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.engine.State().Terminal() {
		t.Fatal("clicking Restart should start a new game")
	}

	// Quit button shows the farewell screen, then exits
	m = playColumns(t, m, 0, 6, 1, 6, 2, 6, 3)
	x, y = m.layout.Quit.Center()
	m, cmd := update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.goodbye || cmd == nil {
		t.Fatal("clicking Quit should show the farewell screen")
	}
	if !strings.Contains(m.View(), "GOODBYE!") {
		t.Error("farewell screen missing")
	}

	// Keys other than quit are ignored on the farewell screen
	m = send(t, m, runeKey('r'))
	if !m.goodbye {
		t.Error("r should not leave the farewell screen")
	}

	m, cmd = update(t, m, goodbyeMsg{})
	if !m.quitting || !isQuit(cmd) {
		t.Error("goodbye timer should quit the program")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelBannerKeyboardFocus(t *testing.T) {
	m := newTestModel(t, nil)
	m = playColumns(t, m, 0, 6, 1, 6, 2, 6, 3)

	if m.focus != focusRestart {
		t.Fatal("Restart should be focused first")
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.focus != focusQuit {
		t.Fatal("right should focus Quit")
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.engine.State().Terminal() {
		t.Error("enter on Restart should start a new game")
	}

	m = playColumns(t, m, 0, 6, 1, 6, 2, 6, 3)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.goodbye {
		t.Error("enter on Quit should show the farewell screen")
	}
}

func TestModelQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		m := newTestModel(t, nil)
		m, cmd := update(t, m, msg)
		if !m.quitting || !isQuit(cmd) {
			t.Errorf("%q should quit immediately", msg.String())
		}
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel(t, nil)
	shortH := m.screen.Height()

	m = send(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Fatal("? should show the full help")
	}
	if m.screen.Height() >= shortH {
		t.Errorf("screen height = %d, expected less than %d with full help", m.screen.Height(), shortH)
	}
	if lines := strings.Count(m.View(), "\n") + 1; lines != 24 {
		t.Errorf("view has %d lines, expected 24", lines)
	}

	m = send(t, m, runeKey('?'))
	if m.help.ShowAll || m.screen.Height() != shortH {
		t.Error("second ? should restore the short help")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, nil)
	m = playColumns(t, m, 3)

	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.screen.Width() != 120 {
		t.Errorf("screen width = %d, expected 120", m.screen.Width())
	}
	if m.layout.Board.X != (120-31)/2 {
		t.Errorf("board x = %d, expected centered", m.layout.Board.X)
	}
	if m.engine.Cell(5, 3) != connect4.Player1 {
		t.Error("resize must keep the game in progress")
	}
}
