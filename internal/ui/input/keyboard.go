// Package input handles keyboard input processing.
package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/crazy-eights/internal/game/card"
)

// KeyMap 游戏中的全部快捷键
type KeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Play     key.Binding
	Draw     key.Binding
	Hearts   key.Binding
	Diamonds key.Binding
	Clubs    key.Binding
	Spades   key.Binding
	Restart  key.Binding
	Clear    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Play: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter", "play"),
		),
		Draw: key.NewBinding(
			key.WithKeys("d", "D"),
			key.WithHelp("d", "draw"),
		),
		// 选花色时 h/d/c/s 优先于移动和摸牌
		Hearts:   key.NewBinding(key.WithKeys("1", "h", "H"), key.WithHelp("1/h", "♥")),
		Diamonds: key.NewBinding(key.WithKeys("2", "d", "D"), key.WithHelp("2/d", "♦")),
		Clubs:    key.NewBinding(key.WithKeys("3", "c", "C"), key.WithHelp("3/c", "♣")),
		Spades:   key.NewBinding(key.WithKeys("4", "s", "S"), key.WithHelp("4/s", "♠")),
		Restart: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "restart"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x", "X"),
			key.WithHelp("x", "clear history"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "rules"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Play, k.Draw, k.Restart, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Play, k.Draw},
		{k.Hearts, k.Diamonds, k.Clubs, k.Spades},
		{k.Restart, k.Clear, k.Help, k.Quit},
	}
}

// SuitFor 把数字键映射为花色，不是选花色键时返回 false
func (k KeyMap) SuitFor(msg tea.KeyMsg) (card.Suit, bool) {
	switch {
	case key.Matches(msg, k.Hearts):
		return card.Hearts, true
	case key.Matches(msg, k.Diamonds):
		return card.Diamonds, true
	case key.Matches(msg, k.Clubs):
		return card.Clubs, true
	case key.Matches(msg, k.Spades):
		return card.Spades, true
	}
	return card.SuitNone, false
}
