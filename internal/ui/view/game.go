// Package view provides UI rendering functions.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/crazy-eights/internal/ui/common"
)

// RenderGameRules renders the game rules.
func RenderGameRules() string {
	var sb strings.Builder

	sb.WriteString("[Goal]\n")
	sb.WriteString("Be the first to play every card in your hand.\n\n")

	sb.WriteString("[Deck]\n")
	sb.WriteString("• 52 cards plus 2 jokers, 8 cards dealt to each side\n")
	sb.WriteString("• Every 8 and both jokers are wild\n\n")

	sb.WriteString("[Playing]\n")
	sb.WriteString("1. Match the active suit or the rank of the top card\n")
	sb.WriteString("2. A wild card can always be played, then you choose the next suit\n")
	sb.WriteString("3. Can't play? Draw a card. If it fits, you may play it\n")
	sb.WriteString("4. When the deck runs out the discard pile is reshuffled\n")
	sb.WriteString("5. With nothing left to draw, the turn is skipped\n\n")

	sb.WriteString("[Keys]\n")
	sb.WriteString("• ←/→: select a card\n")
	sb.WriteString("• Enter/Space: play the selected card\n")
	sb.WriteString("• D: draw a card\n")
	sb.WriteString("• 1-4 or H/D/C/S: choose ♥ ♦ ♣ ♠ after a wild card\n")
	sb.WriteString("• R: restart\n")
	sb.WriteString("• X: clear recent games\n")
	sb.WriteString("• ?: show/hide this help\n")
	sb.WriteString("• Q: quit\n")

	return common.BoxStyle.Render(sb.String())
}

// RulesView renders the full rules view.
func RulesView(width, height int) string {
	var sb strings.Builder

	title := common.TitleStyle("📖 Rules")
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, title))
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, RenderGameRules()))
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, common.HintStyle.Render("Press ? to return to the table")))

	if height <= 0 {
		return sb.String()
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, sb.String())
}
