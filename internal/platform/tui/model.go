package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/babaam/internal/core"
	"github.com/vovakirdan/babaam/internal/sim"
	"github.com/vovakirdan/babaam/internal/storage"
)

// sessionMode tracks where the player is in the run lifecycle.
type sessionMode int

const (
	modePlaying sessionMode = iota
	modeInitials
	modeScores
)

// Model is the Bubble Tea model running one game session.
type Model struct {
	game       *sim.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	held       *heldKeys
	cueSink    CueSink

	mode       sessionMode
	initials   textinput.Model
	rank       int
	topScores  []storage.ScoreEntry
	scoreSaved bool
	quitting   bool
}

// NewModel creates a model for the given game and runtime config.
func NewModel(game *sim.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	ti := textinput.New()
	ti.Placeholder = "AAA"
	ti.CharLimit = 3
	ti.Width = 5

	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
	if os.Getenv("BABAAM_DEBUG") != "" {
		logger.SetLevel(log.DebugLevel)
	}

	if store != nil {
		game.SetLeaderboard(store)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		held:       newHeldKeys(),
		cueSink:    NewLogCueSink(logger),
		initials:   ti,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.mode == modeInitials {
		return m.handleInitialsKey(msg)
	}

	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		if m.gameState.GameOver {
			m.quitting = true
			return m, tea.Quit
		}
		m.inputFrame.Set(core.ActionQuit)
		return m, nil
	}

	switch action {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionFire:
		// Held buttons bridge the terminal's key-repeat gaps.
		m.held.press(action)
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	// Raw runes feed the cheat buffer.
	if msg.Type == tea.KeyRunes {
		for _, r := range msg.Runes {
			m.inputFrame.PushKey(r)
		}
	}

	return m, nil
}

// handleInitialsKey drives the name entry after a ranking run.
func (m Model) handleInitialsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		name := strings.ToUpper(strings.TrimSpace(m.initials.Value()))
		if name == "" {
			name = "???"
		}
		m.saveScore(name)
		m.mode = modeScores
		m.loadTopScores()
		return m, nil
	}

	var cmd tea.Cmd
	m.initials, cmd = m.initials.Update(msg)
	return m, cmd
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// The scoreboard dimension is tied to the field size, so a resize
	// mid-run starts over.
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Restart resets the whole session flow.
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.rank = 0
		m.mode = modePlaying
		m.topScores = nil
		m.initials.Reset()
		m.inputFrame.Clear()
		m.held.release()
		return m, tickCmd(m.config.TickRate)
	}

	m.held.apply(&m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, cue := range result.Cues {
		m.cueSink.Handle(cue)
	}

	if m.gameState.GameOver && !m.scoreSaved && m.mode == modePlaying {
		m.held.release()
		m.rank = m.game.Rank()
		if m.store != nil && m.gameState.Score > 0 && m.rank > 0 {
			m.mode = modeInitials
			m.initials.Focus()
		} else {
			if m.store != nil && m.gameState.Score > 0 {
				m.saveScore("???")
			}
			m.mode = modeScores
			m.loadTopScores()
		}
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScore persists the finished run under the given initials.
func (m *Model) saveScore(initials string) {
	if m.store == nil || m.scoreSaved {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	//nolint:errcheck // Best-effort save, session continues regardless
	m.store.SaveScore(ctx, storage.ScoreEntry{
		Initials:  initials,
		Score:     m.gameState.Score,
		Kills:     m.gameState.Kills,
		Dimension: m.dimension(),
		Cause:     string(m.gameState.Cause),
	})
	m.scoreSaved = true
}

// loadTopScores refreshes the cached top entries for the overlay.
func (m *Model) loadTopScores() {
	if m.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	scores, err := m.store.TopScores(ctx, m.dimension(), storage.TopSize)
	if err == nil {
		m.topScores = scores
	}
}

// dimension is the scoreboard key for the current field size.
func (m *Model) dimension() string {
	return fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".babaam", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("babaam_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	switch m.mode {
	case modeInitials:
		m.drawInitialsPrompt()
	case modeScores:
		m.drawScoreOverlay()
	}

	return RenderScreen(m.screen)
}

// drawInitialsPrompt overlays the name entry line on the game-over screen.
func (m Model) drawInitialsPrompt() {
	y := m.screen.Height()/2 + 3
	m.screen.DrawTextCentered(y, fmt.Sprintf("New high score! Rank #%d", m.rank))
	m.screen.DrawTextCentered(y+1, "Enter your initials: "+m.initials.View())
}

// drawScoreOverlay overlays the top scores under the game-over text.
func (m Model) drawScoreOverlay() {
	y := m.screen.Height()/2 + 3
	if len(m.topScores) == 0 {
		return
	}
	m.screen.DrawTextCentered(y, fmt.Sprintf("-- TOP %d [%s] --", storage.TopSize, m.dimension()))
	for i, e := range m.topScores {
		line := fmt.Sprintf("%d. %-3s %6d", i+1, e.Initials, e.Score)
		m.screen.DrawTextCentered(y+1+i, line)
	}
}

// Run starts the Bubble Tea program with the given model.
func Run(game *sim.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
