// Package common provides shared styles and utilities for the UI.
package common

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/crazy-eights/internal/game/card"
)

// Icon constants
const (
	PlayerIcon   = "🧑"
	ComputerIcon = "🤖"
	TrophyIcon   = "🏆"
	CardBackIcon = "🂠"
)

// Lipgloss Styles
var (
	DocStyle      = lipgloss.NewStyle().Margin(1, 2)
	RedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#CD0000")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	BlackStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	GrayStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	BackStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#1E3A8A")).Bold(true)
	TitleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	AccentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#34D399")).Bold(true)
	HintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	TurnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	BoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	SelectedStyle = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color("220")).Padding(0, 1)
	PromptStyle   = lipgloss.NewStyle().MarginTop(1)
	ErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	WinStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FACC15")).Bold(true).Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("#34D399")).Padding(1, 4)
)

// CardStyle returns the face style matching the card colour.
func CardStyle(c card.Card) lipgloss.Style {
	if c.Color == card.Red {
		return RedStyle
	}
	return BlackStyle
}

// SuitStyle returns the style used to show a bare suit symbol.
func SuitStyle(s card.Suit) lipgloss.Style {
	if s.Color() == card.Red {
		return RedStyle
	}
	return BlackStyle
}
