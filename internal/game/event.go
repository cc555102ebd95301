package game

import (
	"fmt"

	"github.com/palemoky/crazy-eights/internal/game/card"
)

// EventKind 状态转换中发生的事件
type EventKind int

const (
	EventDealt EventKind = iota
	EventDrew
	EventReshuffled
	EventNoCards
	EventPlayed
	EventSuitPending
	EventSuitChosen
	EventTurnPassed
	EventWon
)

// Event 描述一次转换的结果，供界面展示
type Event struct {
	Kind  EventKind
	Actor Side
	Card  card.Card
	Suit  card.Suit
}

// Message 面向玩家的提示文字
func (e Event) Message() string {
	switch e.Kind {
	case EventDealt:
		return "Your turn! Match the suit or rank."
	case EventDrew:
		if e.Actor == SidePlayer {
			return fmt.Sprintf("You drew %s.", e.Card.Label())
		}
		return "Computer drew a card."
	case EventReshuffled:
		return "Deck reshuffled!"
	case EventNoCards:
		if e.Actor == SidePlayer {
			return "No cards left to draw! Turn skipped."
		}
		return "Computer has no cards to draw and skips turn."
	case EventPlayed:
		if e.Actor == SidePlayer {
			return fmt.Sprintf("You played %s.", e.Card.Label())
		}
		return fmt.Sprintf("Computer played %s.", e.Card.Label())
	case EventSuitPending:
		return fmt.Sprintf("You played %s. Choose a suit!", e.Card.Label())
	case EventSuitChosen:
		if e.Actor == SidePlayer {
			return fmt.Sprintf("You changed the suit to %s.", e.Suit.Name())
		}
		return fmt.Sprintf("Computer played %s and chose %s.", e.Card.Label(), e.Suit.Name())
	case EventTurnPassed:
		if e.Actor == SidePlayer {
			return "Computer is thinking..."
		}
		return "Your turn!"
	case EventWon:
		if e.Actor == SidePlayer {
			return "You win!"
		}
		return "Computer wins!"
	}
	return ""
}

// LastMessage 返回最后一个有意义事件的提示
func LastMessage(events []Event) string {
	for i := len(events) - 1; i >= 0; i-- {
		if msg := events[i].Message(); msg != "" {
			return msg
		}
	}
	return ""
}
