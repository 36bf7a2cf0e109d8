package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/knife-master/internal/catalog"
	"github.com/vovakirdan/knife-master/internal/core"
	"github.com/vovakirdan/knife-master/internal/games/knife"
	"github.com/vovakirdan/knife-master/internal/session"
)

// Model is the Bubble Tea model for one player's session. The session is
// shared between copies of the model; Bubble Tea serializes every call.
type Model struct {
	sess       *session.Session
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	input      core.InputFrame
	cursor     int // menu, settings and game over buttons
	shop       shop
	board      scoreboard
	showScores bool
	quitting   bool
	lastTick   time.Time
}

// NewModel creates the model. scores may be nil when no database is open.
func NewModel(sess *session.Session, scores ScoreSource, cfg core.RuntimeConfig) Model {
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		sess:      sess,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      h,
		input:     core.NewInputFrame(),
		shop:      newShop(cfg.ScreenH),
		board:     newScoreboard(scores, cfg.ScreenH),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.shop.resize(msg.Height)
		m.board.resize(msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case tea.MouseMsg:
		if m.sess.Phase() == knife.PhasePlaying && !m.showScores &&
			msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.input.Set(core.ActionThrow)
		}
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

// handleTick steps the game once with the keys pressed since the last tick.
// The step covers the wall time since the previous tick; the first tick, or
// one with a clock that went backwards, covers one nominal interval.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.config.TickInterval()
	if !m.lastTick.IsZero() && now.After(m.lastTick) {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	before := m.sess.Phase()
	m.sess.Advance(m.input, dt)
	m.input.Clear()
	if m.sess.Phase() != before {
		m.cursor = 0
	}
	return m, tickCmd(m.config.TickRate)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if _, quit := m.keyMapper.MapKey(msg); quit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.showScores {
		return m.handleScoresKey(msg)
	}

	switch m.sess.Phase() {
	case knife.PhasePlaying:
		return m.handlePlayingKey(msg)
	case knife.PhaseGameOver:
		return m.handleGameOverKey(msg)
	case knife.PhaseShop:
		return m.handleShopKey(msg)
	case knife.PhaseSettings:
		return m.handleSettingsKey(msg)
	default:
		return m.handleMenuKey(msg)
	}
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)
	if action != MenuActionSelect {
		m.cursor = moveCursor(m.cursor, action, int(menuItemCount))
		return m, nil
	}

	switch menuItem(m.cursor) {
	case menuPlay:
		m.sess.Play()
		m.input.Clear()
	case menuShop:
		m.sess.OpenShop()
		m.shop.clearNotice()
		m.shop.refresh(m.sess.Profile(), m.sess.Printer())
	case menuSettings:
		m.sess.OpenSettings()
		m.cursor = 0
	case menuScores:
		m.showScores = true
		m.board.reload()
	case menuQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handlePlayingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, _ := m.keyMapper.MapKey(msg)
	if action == core.ActionBack {
		m.sess.BackToMenu()
		m.cursor = 0
		return m, nil
	}
	m.keyMapper.MapKeyToFrame(msg, &m.input)
	return m, nil
}

func (m Model) handleGameOverKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if action, _ := m.keyMapper.MapKey(msg); action == core.ActionRestart {
		m.sess.Retry()
		return m, nil
	}

	switch action := m.keyMapper.MapKeyToMenuAction(msg); action {
	case MenuActionBack:
		m.sess.BackToMenu()
		m.cursor = 0
	case MenuActionSelect:
		if gameOverItem(m.cursor) == gameOverRetry {
			m.sess.Retry()
		} else {
			m.sess.BackToMenu()
		}
		m.cursor = 0
	default:
		m.cursor = moveCursor(m.cursor, action, int(gameOverItemCount))
	}
	return m, nil
}

func (m Model) handleShopKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionBack:
		m.sess.BackToMenu()
		m.cursor = 0
		return m, nil

	case MenuActionSelect:
		k := m.shop.selected()
		res, err := m.sess.Buy(k.ID)
		if errors.Is(err, catalog.ErrUnknownKnife) {
			return m, nil
		}
		m.shop.report(res, k, m.sess.Printer())
		m.shop.refresh(m.sess.Profile(), m.sess.Printer())
		return m, nil
	}

	var cmd tea.Cmd
	m.shop, cmd = m.shop.update(msg)
	return m, cmd
}

func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keyMapper.MapKeyToMenuAction(msg); action {
	case MenuActionBack:
		m.sess.BackToMenu()
		m.cursor = 0
	case MenuActionSelect:
		switch settingsItem(m.cursor) {
		case settingsLanguage:
			m.sess.CycleLanguage()
		case settingsSound:
			m.sess.ToggleSound()
		default:
			m.sess.BackToMenu()
			m.cursor = 0
		}
	default:
		m.cursor = moveCursor(m.cursor, action, int(settingsItemCount))
	}
	return m, nil
}

func (m Model) handleScoresKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToMenuAction(msg) == MenuActionBack {
		m.showScores = false
		return m, nil
	}
	var cmd tea.Cmd
	m.board, cmd = m.board.update(msg)
	return m, cmd
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch {
	case m.showScores:
		return m.page(m.board.view(m.config.ScreenW, m.sess.Printer()))
	case m.sess.Phase() == knife.PhasePlaying:
		return m.playingView()
	case m.sess.Phase() == knife.PhaseGameOver:
		return m.gameOverView()
	case m.sess.Phase() == knife.PhaseShop:
		return m.page(m.shop.view(m.config.ScreenW, m.sess.Profile().Apples, m.sess.Printer()))
	case m.sess.Phase() == knife.PhaseSettings:
		return m.page(settingsView(m.sess.Printer(), m.sess.Profile(), m.cursor))
	default:
		return m.page(menuView(m.sess.Printer(), m.sess.Profile(), m.cursor))
	}
}

// page centers body on the screen above the help bar.
func (m Model) page(body string) string {
	h := m.config.ScreenH - 1
	if h < 1 {
		h = 1
	}
	placed := lipgloss.Place(m.config.ScreenW, h, lipgloss.Center, lipgloss.Center, body)
	return placed + "\n" + dimStyle.Render(m.help.View(m.keyMapper.Keys()))
}

func (m Model) playingView() string {
	m.screen.Clear()
	snap := m.sess.Game().Snapshot()
	knife.Render(&snap, m.screen)
	drawHUD(m.screen, &snap, m.sess.Printer())
	return RenderScreen(m.screen)
}

const (
	gameOverPanelW = 30
	gameOverPanelH = 9
)

// gameOverView draws the summary over the last bursts of the run.
func (m Model) gameOverView() string {
	p := m.sess.Printer()
	run := m.sess.LastRun()

	m.screen.Clear()
	snap := m.sess.Game().Snapshot()
	knife.Render(&snap, m.screen)

	panel := core.CenteredRect(m.screen.Width(), m.screen.Height(), gameOverPanelW, gameOverPanelH)
	m.screen.FillRect(panel, ' ')
	m.screen.DrawBox(panel, core.ColorDarkGray)

	y := panel.Y + 1
	m.screen.DrawTextCentered(y, p.T("gameover.title"), core.ColorBrightRed)
	m.screen.DrawTextCentered(y+2, p.T("gameover.score", run.Score), core.ColorBrightWhite)
	if run.NewHighScore {
		m.screen.DrawTextCentered(y+3, p.T("gameover.best"), core.ColorBrightYellow)
	}

	buttons := []string{p.T("gameover.retry"), p.T("gameover.menu")}
	for i, label := range buttons {
		color := core.ColorGray
		if i == m.cursor {
			label = "> " + label + " <"
			color = core.ColorBrightWhite
		}
		m.screen.DrawTextCentered(y+5+i, label, color)
	}
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program and closes the session when it exits.
func Run(sess *session.Session, scores ScoreSource, cfg core.RuntimeConfig) error {
	model := NewModel(sess, scores, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	sess.Close()
	return err
}
