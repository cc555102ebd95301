package model

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/crazy-eights/internal/game"
	"github.com/palemoky/crazy-eights/internal/game/card"
	"github.com/palemoky/crazy-eights/internal/game/session"
	"github.com/palemoky/crazy-eights/internal/logger"
	"github.com/palemoky/crazy-eights/internal/sound"
	"github.com/palemoky/crazy-eights/internal/storage"
	"github.com/palemoky/crazy-eights/internal/ui/input"
	"github.com/palemoky/crazy-eights/internal/ui/view"
)

// GameModel is the bubbletea model for a game against the computer.
type GameModel struct {
	session *session.Session

	// UI components
	keys    input.KeyMap
	help    help.Model
	spinner spinner.Model
	width   int
	height  int

	// Services
	sounds  Sounds
	history History
	records []*storage.GameRecord

	delay       time.Duration
	selected    int
	thinking    bool
	celebrating bool
	showRules   bool
}

// NewGameModel creates a GameModel and deals the first game.
func NewGameModel(opts Options) *GameModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	delay := opts.Delay
	if delay < 0 {
		delay = DefaultComputerDelay
	}

	m := &GameModel{
		keys:    input.DefaultKeyMap(),
		help:    help.New(),
		spinner: sp,
		sounds:  opts.Sounds,
		history: opts.History,
		delay:   delay,
	}

	sessOpts := []session.Option{session.WithPlayerWinHook(m.onPlayerWin)}
	if opts.Rand != nil {
		sessOpts = append(sessOpts, session.WithRand(opts.Rand))
	}
	if opts.History != nil {
		sessOpts = append(sessOpts, session.WithRecorder(opts.History))
	}
	m.session = session.New(sessOpts...)
	m.session.Restart()

	return m
}

func (m *GameModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadHistory(0),
		m.scheduleComputer(),
	)
}

func (m *GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case ComputerTurnMsg:
		return m, m.runComputer(msg.Ticket)

	case HistoryMsg:
		m.records = msg.Records
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *GameModel) View() string {
	return view.GameView(view.Table{
		State:       m.session.State(),
		Selected:    m.selected,
		Message:     m.session.Message(),
		Thinking:    m.thinking,
		Spinner:     m.spinner.View(),
		Celebrating: m.celebrating,
		ShowRules:   m.showRules,
		History:     m.records,
		Help:        m.help.View(m.keys),
		Width:       m.width,
		Height:      m.height,
	})
}

// --- Accessors ---

func (m *GameModel) Session() *session.Session { return m.session }
func (m *GameModel) Selected() int             { return m.selected }
func (m *GameModel) Thinking() bool            { return m.thinking }
func (m *GameModel) Celebrating() bool         { return m.celebrating }
func (m *GameModel) ShowingRules() bool        { return m.showRules }
func (m *GameModel) Records() []*storage.GameRecord {
	return m.records
}

// --- Input ---

func (m *GameModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showRules = !m.showRules
		return nil
	case key.Matches(msg, m.keys.Restart):
		return m.restart()
	case key.Matches(msg, m.keys.Clear):
		return m.clearHistory()
	}

	if m.showRules {
		return nil
	}

	state := m.session.State()
	if state.Status == game.StatusAwaitingSuit {
		if suit, ok := m.keys.SuitFor(msg); ok {
			return m.chooseSuit(suit)
		}
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		m.moveSelection(-1, len(state.PlayerHand))
	case key.Matches(msg, m.keys.Right):
		m.moveSelection(1, len(state.PlayerHand))
	case key.Matches(msg, m.keys.Play):
		return m.playSelected(state)
	case key.Matches(msg, m.keys.Draw):
		return m.draw(state)
	}
	return nil
}

func (m *GameModel) moveSelection(delta, n int) {
	if n == 0 {
		m.selected = 0
		return
	}
	m.selected = (m.selected + delta + n) % n
}

func (m *GameModel) playSelected(state game.State) tea.Cmd {
	if m.selected < 0 || m.selected >= len(state.PlayerHand) {
		return nil
	}
	if _, err := m.session.Play(state.PlayerHand[m.selected].ID, card.SuitNone); err == nil {
		m.playSound(sound.NamePlay)
	}
	return m.afterAction(state.Status)
}

func (m *GameModel) draw(state game.State) tea.Cmd {
	if _, err := m.session.Draw(); err == nil {
		m.playSound(sound.NameDraw)
	}
	return m.afterAction(state.Status)
}

func (m *GameModel) chooseSuit(suit card.Suit) tea.Cmd {
	prev := m.session.State().Status
	if _, err := m.session.ChooseSuit(suit); err == nil {
		m.playSound(sound.NamePlay)
	}
	return m.afterAction(prev)
}

func (m *GameModel) restart() tea.Cmd {
	m.session.Restart()
	m.selected = 0
	m.thinking = false
	m.celebrating = false
	return tea.Batch(m.scheduleComputer(), m.loadHistory(0))
}

// --- Computer turns ---

// scheduleComputer 轮到电脑时延迟发送 ComputerTurnMsg
func (m *GameModel) scheduleComputer() tea.Cmd {
	ticket, due := m.session.ComputerTurnDue()
	if !due {
		m.thinking = false
		return nil
	}
	// 已有待执行的回合，不重复调度
	if m.thinking {
		return nil
	}
	m.thinking = true
	return tea.Tick(m.delay, func(time.Time) tea.Msg {
		return ComputerTurnMsg{Ticket: ticket}
	})
}

func (m *GameModel) runComputer(ticket session.Ticket) tea.Cmd {
	// 重开局之前调度的回合直接丢弃
	if ticket.Generation != m.session.Generation() {
		return nil
	}

	prev := m.session.State().Status
	m.thinking = false
	if _, ran := m.session.RunComputerTurn(ticket); ran {
		m.playSound(sound.NamePlay)
	}
	return m.afterAction(prev)
}

// afterAction 修正选中位置，必要时调度电脑回合或刷新历史
func (m *GameModel) afterAction(prev game.Status) tea.Cmd {
	state := m.session.State()
	if m.selected >= len(state.PlayerHand) {
		m.selected = max(len(state.PlayerHand)-1, 0)
	}

	cmds := []tea.Cmd{m.scheduleComputer()}
	if prev != game.StatusFinished && state.Status == game.StatusFinished {
		cmds = append(cmds, m.loadHistory(historyRefreshDelay))
	}
	return tea.Batch(cmds...)
}

func (m *GameModel) onPlayerWin() {
	m.celebrating = true
	if m.sounds != nil {
		m.sounds.Celebrate()
	}
}

func (m *GameModel) playSound(name string) {
	if m.sounds != nil {
		m.sounds.Play(name)
	}
}

// --- History ---

func (m *GameModel) loadHistory(delay time.Duration) tea.Cmd {
	if m.history == nil {
		return nil
	}

	h := m.history
	load := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), historyTimeout)
		defer cancel()
		records, err := h.RecentResults(ctx, historyLimit)
		if err != nil {
			logger.LogError("failed to load recent games: %v", err)
			return nil
		}
		return HistoryMsg{Records: records}
	}

	if delay <= 0 {
		return load
	}
	return tea.Tick(delay, func(time.Time) tea.Msg { return load() })
}

func (m *GameModel) clearHistory() tea.Cmd {
	if m.history == nil {
		return nil
	}

	h := m.history
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), historyTimeout)
		defer cancel()
		if err := h.ClearResults(ctx); err != nil {
			logger.LogError("failed to clear recent games: %v", err)
			return nil
		}
		return HistoryMsg{}
	}
}
