package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

const (
	defaultFPS     = 30
	journalRows    = 5 // Games listed under the game over screen
	tableHeader    = 2 // Header line and its bottom border
	journalPadding = 5 // Caption, table header and the rounded frame around it
)

// Options configures a Model.
type Options struct {
	Settings engine.Settings
	FPS      int
	Seed     int64 // 0 picks a time-based seed

	// Journal receives every finished game. Nil disables the history table.
	Journal *storage.Journal
	Session string
	Player  string

	// Leaderboard adds the best games of every session next to the history
	// table. The SSH server turns it on since its journal is shared.
	Leaderboard bool

	// ScreenshotDir is where ctrl+s writes frames. Empty means
	// ~/.snake/screenshots.
	ScreenshotDir string

	Logger *log.Logger
	Width  int
	Height int
}

// Model is the Bubble Tea model for one game of snake. The engine is a
// pointer, so value copies of Model share the same game.
type Model struct {
	engine  *engine.Engine
	journal *storage.Journal
	session string
	logger  *log.Logger

	screen  *core.Screen
	keys    KeyMap
	help    help.Model
	history table.Model
	leaders table.Model
	caption string
	rows    int // Tallest of the two tables, in rows

	leaderboard bool

	fps           int
	screenshotDir string
	lastFrame     time.Time
	width         int
	height        int
	quitting      bool
}

// NewModel builds the engine and wires finished games into the journal.
func NewModel(opts Options) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.FPS <= 0 {
		opts.FPS = defaultFPS
	}
	if opts.Session == "" {
		opts.Session = storage.NewSession()
	}
	logger = logger.With("session", opts.Session)

	journal := opts.Journal
	session, player := opts.Session, opts.Player
	eng, err := engine.New(opts.Settings,
		engine.WithSeed(opts.Seed),
		engine.WithLogger(logger),
		engine.WithGameOverHook(func(res engine.Result) {
			if journal == nil {
				return
			}
			if _, err := journal.Record(session, player, res); err != nil {
				logger.Warn("could not record game", "error", err)
			}
		}),
	)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	h := help.New()
	h.ShowAll = false
	h.Width = opts.Width

	return Model{
		engine:        eng,
		journal:       journal,
		session:       session,
		logger:        logger,
		screen:        core.NewScreen(opts.Width, max(opts.Height-1, 0)),
		keys:          DefaultKeyMap(),
		help:          h,
		history:       newTable(historyColumns()),
		leaders:       newTable(leaderColumns()),
		leaderboard:   opts.Leaderboard,
		fps:           opts.FPS,
		screenshotDir: opts.ScreenshotDir,
		width:         opts.Width,
		height:        opts.Height,
	}, nil
}

func historyColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 7},
		{Title: "Length", Width: 7},
		{Title: "Cause", Width: 18},
	}
}

func leaderColumns() []table.Column {
	return []table.Column{
		{Title: "Rank", Width: 4},
		{Title: "Player", Width: 10},
		{Title: "Score", Width: 6},
	}
}

// newTable creates a read-only table for the game over screen.
func newTable(columns []table.Column) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(journalRows+tableHeader),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)
	return t
}

// Engine exposes the underlying engine, mainly for tests.
func (m Model) Engine() *engine.Engine {
	return m.engine
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if in, ok := IntentForMouse(msg, m.engine.State()); ok {
			m.apply(in)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if in, ok := m.keys.IntentForKey(msg, m.engine.State()); ok {
		m.apply(in)
	}
	return m, nil
}

// apply feeds an intent to the engine and refreshes the history table when
// a game ends as a result.
func (m *Model) apply(in engine.Intent) {
	before := m.engine.State()
	m.engine.Apply(in)
	m.afterChange(before)
}

// handleTick advances the engine by the wall-clock time since the previous
// frame. The first frame only sets the reference point.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed time.Duration
	if !m.lastFrame.IsZero() {
		elapsed = now.Sub(m.lastFrame)
	}
	m.lastFrame = now

	before := m.engine.State()
	m.engine.Advance(elapsed)
	m.afterChange(before)

	return m, tickCmd(m.fps)
}

func (m *Model) afterChange(before engine.State) {
	if before != engine.StateGameOver && m.engine.State() == engine.StateGameOver {
		m.refreshHistory()
	}
}

// refreshHistory reloads the newest games of this session into the history
// table, and the best games of all sessions when the leaderboard is on.
func (m *Model) refreshHistory() {
	if m.journal == nil {
		return
	}
	records, err := m.journal.Recent(m.session, journalRows)
	if err != nil {
		m.logger.Warn("could not load history", "error", err)
		return
	}
	stats, err := m.journal.Stats(m.session)
	if err != nil {
		m.logger.Warn("could not load stats", "error", err)
		return
	}

	rows := make([]table.Row, 0, len(records))
	for i, r := range records {
		rows = append(rows, table.Row{
			strconv.Itoa(stats.Games - i),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Length),
			r.Cause,
		})
	}
	m.history.SetRows(rows)
	m.history.SetHeight(len(rows) + tableHeader)
	m.rows = len(rows)
	m.caption = fmt.Sprintf("Session: %d games, best %d, avg %.1f, %d moves",
		stats.Games, stats.BestScore, stats.AvgScore, stats.Ticks)

	if !m.leaderboard {
		return
	}
	top, err := m.journal.Top(journalRows)
	if err != nil {
		m.logger.Warn("could not load leaderboard", "error", err)
		return
	}
	leaders := make([]table.Row, 0, len(top))
	for i, r := range top {
		leaders = append(leaders, table.Row{
			strconv.Itoa(i + 1),
			r.Player,
			strconv.Itoa(r.Score),
		})
	}
	m.leaders.SetRows(leaders)
	m.leaders.SetHeight(len(leaders) + tableHeader)
	m.rows = max(m.rows, len(leaders))
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() (string, error) {
	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".snake", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	m.render()
	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// historyVisible reports whether the history table goes under the frame.
func (m Model) historyVisible() bool {
	if m.rows == 0 || m.engine.State() != engine.StateGameOver {
		return false
	}
	_, minH := MinSize(m.engine.Settings().Grid)
	return m.height-1-(m.rows+journalPadding) >= minH
}

// render draws the engine state into the screen buffer. The last terminal
// row is kept for the help line, and the history table takes rows from the
// bottom on the game over screen.
func (m *Model) render() {
	h := m.height - 1
	if m.historyVisible() {
		h -= m.rows + journalPadding
	}
	m.screen.Resize(m.width, max(h, 0))
	Draw(m.screen, m.engine.Snapshot())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()
	parts := []string{RenderScreen(m.screen)}
	if m.historyVisible() {
		frame := lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
		tables := frame.Render(m.history.View())
		if m.leaderboard {
			tables = lipgloss.JoinHorizontal(lipgloss.Top, tables, " ", frame.Render(m.leaders.View()))
		}
		caption := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(m.caption)
		block := lipgloss.JoinVertical(lipgloss.Center, caption, tables)
		parts = append(parts, lipgloss.PlaceHorizontal(m.width, lipgloss.Center, block))
	}
	parts = append(parts, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
