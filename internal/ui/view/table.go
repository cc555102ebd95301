package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/crazy-eights/internal/game"
	"github.com/palemoky/crazy-eights/internal/game/card"
	"github.com/palemoky/crazy-eights/internal/game/rule"
	"github.com/palemoky/crazy-eights/internal/storage"
	"github.com/palemoky/crazy-eights/internal/ui/common"
)

// 最多显示的历史记录条数
const historyLines = 5

// Table 渲染一帧所需的全部数据
type Table struct {
	State       game.State
	Selected    int
	Message     string
	Thinking    bool
	Spinner     string
	Celebrating bool
	ShowRules   bool
	History     []*storage.GameRecord
	Help        string
	Width       int
	Height      int
}

// GameView renders the table: computer hand, piles, player hand and prompt.
func GameView(t Table) string {
	if t.ShowRules {
		return RulesView(t.Width, t.Height)
	}

	width := t.Width
	state := t.State

	sections := []string{
		common.TitleStyle("🎴 Crazy Eights"),
		renderOpponent(len(state.ComputerHand), state.Turn == game.SideComputer && state.Status == game.StatusPlaying),
		renderPiles(state),
		renderPlayerHand(state, t.Selected),
		renderPrompt(t),
	}
	if history := renderHistory(t.History); history != "" {
		sections = append(sections, history)
	}
	if t.Help != "" {
		sections = append(sections, t.Help)
	}

	var sb strings.Builder
	for i, s := range sections {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s))
	}

	if width <= 0 || t.Height <= 0 {
		return sb.String()
	}
	return lipgloss.Place(width, t.Height, lipgloss.Center, lipgloss.Center, sb.String())
}

func renderOpponent(count int, active bool) string {
	nameStyle := lipgloss.NewStyle()
	if active {
		nameStyle = common.TurnStyle
	}
	backs := strings.Repeat(common.BackStyle.Render(common.CardBackIcon)+" ", min(count, 20))
	info := fmt.Sprintf("%s %s (%s)\n%s", common.ComputerIcon, nameStyle.Render("Computer"), common.Plural(count, "card"), backs)
	return common.BoxStyle.Render(info)
}

func renderPiles(state game.State) string {
	deck := common.BoxStyle.Width(12).Render(fmt.Sprintf("Deck\n%s %d", common.CardBackIcon, state.DrawCount()))

	discardContent := "Discard\n(empty)"
	if top, ok := state.TopCard(); ok {
		rank, suit := cardFace(top)
		style := common.CardStyle(top).Align(lipgloss.Center)
		discardContent = lipgloss.JoinVertical(lipgloss.Center, "Discard", style.Render(rank), style.Render(suit))
	}
	discard := common.BoxStyle.Width(12).Render(discardContent)

	suitContent := "Suit\n-"
	if state.ActiveSuit.IsReal() {
		suitContent = fmt.Sprintf("Suit\n%s %s",
			common.SuitStyle(state.ActiveSuit).Render(state.ActiveSuit.String()), state.ActiveSuit.Name())
	}
	suit := common.BoxStyle.Width(14).Render(suitContent)

	return lipgloss.JoinHorizontal(lipgloss.Top, deck, discard, suit)
}

// cardFace 返回牌面的点数行与花色行
func cardFace(c card.Card) (string, string) {
	if c.Rank == card.RankJoker {
		return "JK", "★"
	}
	return c.Rank.String(), c.Suit.String()
}

func renderPlayerHand(state game.State, selected int) string {
	hand := state.PlayerHand
	title := fmt.Sprintf("%s Your hand (%s)", common.PlayerIcon, common.Plural(len(hand), "card"))
	if len(hand) == 0 {
		return common.BoxStyle.Render(title + "\n(no cards)")
	}

	myTurn := state.Turn == game.SidePlayer && state.Status == game.StatusPlaying
	playable := make(map[string]bool)
	if top, ok := state.TopCard(); ok && myTurn {
		for _, c := range rule.PlayableCards(hand, top, state.ActiveSuit) {
			playable[c.ID] = true
		}
	}

	var rankStr, suitStr, markStr strings.Builder
	for i, c := range hand {
		style := common.CardStyle(c)
		if myTurn && !playable[c.ID] {
			style = common.GrayStyle
		}
		style = style.Align(lipgloss.Center).Margin(0, 1)
		rank, suit := cardFace(c)
		rankStr.WriteString(style.Render(fmt.Sprintf("%-2s", rank)))
		suitStr.WriteString(style.Render(fmt.Sprintf("%-2s", suit)))

		mark := "  "
		if i == selected {
			mark = "▲ "
		}
		markStr.WriteString(lipgloss.NewStyle().Margin(0, 1).Render(mark))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, title, rankStr.String(), suitStr.String(), markStr.String())
	return common.BoxStyle.Render(content)
}

func renderPrompt(t Table) string {
	var sb strings.Builder
	state := t.State

	switch {
	case state.Status == game.StatusFinished:
		if state.Winner == game.SidePlayer {
			banner := "🎉 You win! 🎉"
			if t.Celebrating {
				banner = common.WinStyle.Render(common.TrophyIcon + " You win! " + common.TrophyIcon)
			}
			sb.WriteString(banner)
		} else {
			sb.WriteString(common.ErrorStyle.Render("Computer wins!"))
		}
		sb.WriteString("\n")
		sb.WriteString(common.HintStyle.Render("Press R to play again, Q to quit"))
	case state.Status == game.StatusAwaitingSuit:
		sb.WriteString(t.Message)
		sb.WriteString("\n")
		var options []string
		for i, s := range card.Suits {
			options = append(options, fmt.Sprintf("[%d] %s %s", i+1, common.SuitStyle(s).Render(s.String()), s.Name()))
		}
		sb.WriteString(common.AccentStyle.Render("Choose a suit: ") + strings.Join(options, "  "))
	case t.Thinking || state.Turn == game.SideComputer:
		fmt.Fprintf(&sb, "%s %s", t.Spinner, t.Message)
	default:
		sb.WriteString(common.TurnStyle.Render("⏳ "))
		sb.WriteString(t.Message)
	}

	return common.PromptStyle.Render(sb.String())
}

func renderHistory(records []*storage.GameRecord) string {
	if len(records) == 0 {
		return ""
	}

	wins := 0
	for _, r := range records {
		if r.Winner == game.SidePlayer.String() {
			wins++
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Recent games: %d won, %d lost\n", wins, len(records)-wins)
	for _, r := range records[:min(historyLines, len(records))] {
		result := "Lost"
		if r.Winner == game.SidePlayer.String() {
			result = "Won "
		}
		fmt.Fprintf(&sb, "%s  %s, %s, %s\n", result,
			common.Plural(r.Plays, "play"), common.Plural(r.Draws, "draw"), common.FormatDuration(r.Duration()))
	}
	return common.HintStyle.Render(strings.TrimRight(sb.String(), "\n"))
}
