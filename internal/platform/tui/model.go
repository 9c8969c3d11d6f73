package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/midway/internal/core"
	"github.com/vovakirdan/midway/internal/registry"
	"github.com/vovakirdan/midway/internal/storage"
)

// cursorReporter is implemented by games that want the pointer shown on
// some pages.
type cursorReporter interface {
	CursorVisible() bool
}

// summarizer is implemented by games that describe a finished run.
type summarizer interface {
	Summary() core.RunSummary
}

// ScoreSaver persists finished runs.
type ScoreSaver interface {
	SaveRun(r storage.Run) (int64, error)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      ScoreSaver
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	holds      *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	cursorOn   bool // Bubble Tea starts with the cursor hidden
	quitting   bool
	back       bool // Leave to the menu rather than exit
	embedded   bool // Hosted by a SessionModel, which owns quitting
	scoreSaved bool // Whether the current game over has been saved
	loop       uint64
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store ScoreSaver, logger *log.Logger, cfg core.RuntimeConfig) *Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger.With("game", game.ID()),
		config:     cfg,
		keys:       NewKeyMapper(),
		holds:      HoldTrackerFor(cfg.TickRate),
		inputFrame: core.NewInputFrame(),
		loop:       newTickLoop(),
	}
}

// Init resets the game and starts the tick loop.
func (m *Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.logger.Info("session started", "seed", m.config.Seed, "size", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH))
	return tea.Batch(m.syncCursor(), tickCmd(m.config.TickRate, m.loop))
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch k := m.keys.MapKey(msg); k {
	case core.KeyQuit:
		m.quitting = true
		return m, m.leave()
	case core.KeyBack:
		m.back = true
		return m, m.leave()
	default:
		m.holds.Press(k, &m.inputFrame)
	}
	return m, nil
}

func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	m.holds.Tick(&m.inputFrame)

	prev := m.gameState
	m.gameState = m.game.Step(m.inputFrame).State
	m.inputFrame.Clear()

	switch {
	case m.gameState.GameOver && !prev.GameOver:
		m.logger.Info("game over", "score", m.gameState.Score)
		m.saveRun()
		m.holds.Reset()
	case !m.gameState.GameOver && prev.GameOver:
		m.scoreSaved = false
	}

	return m, tea.Batch(m.syncCursor(), tickCmd(m.config.TickRate, m.loop))
}

// leave restores the cursor and ends the program unless a session hosts
// the model.
func (m *Model) leave() tea.Cmd {
	m.cursorOn = true
	if m.embedded {
		return tea.ShowCursor
	}
	return tea.Sequence(tea.ShowCursor, tea.Quit)
}

// saveRun records the current game over once.
func (m *Model) saveRun() {
	if m.scoreSaved || m.store == nil || m.gameState.Score <= 0 {
		m.scoreSaved = true
		return
	}
	run := storage.Run{
		Variant:   m.game.ID(),
		Score:     m.gameState.Score,
		LivesLeft: m.gameState.Lives,
		Seed:      m.config.Seed,
	}
	if s, ok := m.game.(summarizer); ok {
		sum := s.Summary()
		run.Ticks = sum.Ticks
		run.PowerUpCollected = sum.PowerUpCollected
		run.Hash = sum.Hash
		run.Seed = sum.Seed
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Error("cannot save run", "err", err)
	} else {
		m.logger.Debug("run saved", "score", run.Score, "ticks", run.Ticks)
	}
	m.scoreSaved = true
}

// syncCursor returns a command toggling the terminal cursor when the game's
// preference changed.
func (m *Model) syncCursor() tea.Cmd {
	want := true
	if c, ok := m.game.(cursorReporter); ok {
		want = c.CursorVisible()
	}
	if want == m.cursorOn {
		return nil
	}
	m.cursorOn = want
	if want {
		return tea.ShowCursor
	}
	return tea.HideCursor
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot locate home directory", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting || m.back {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// WantsMenu reports whether the player left with Back.
func (m *Model) WantsMenu() bool { return m.back }

// IsQuitting reports whether the player asked to exit.
func (m *Model) IsQuitting() bool { return m.quitting }

// Run starts the Bubble Tea program for game. It reports whether the player
// asked to return to the menu.
func Run(game registry.Game, store ScoreSaver, logger *log.Logger, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(*Model); ok {
		return fm.WantsMenu(), nil
	}
	return false, nil
}
