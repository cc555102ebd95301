// Package bot implements the computer opponent.
//
// The policy is intentionally naive: play a random legal non-wild card if there
// is one, otherwise a random legal wild card, otherwise draw and play the drawn
// card when it is legal.
package bot

import (
	"github.com/palemoky/crazy-eights/internal/game"
	"github.com/palemoky/crazy-eights/internal/game/card"
	"github.com/palemoky/crazy-eights/internal/game/rule"
)

// MoveKind is the kind of decision the computer made.
type MoveKind int

const (
	MoveNone MoveKind = iota // not the computer's turn
	MovePlay
	MoveDraw
)

// Move is the computer's decision for the current snapshot.
type Move struct {
	Kind MoveKind
	Card card.Card
}

// Decide picks the computer's move without applying it.
func Decide(s game.State, r card.Rand) Move {
	if s.Turn != game.SideComputer || s.Status != game.StatusPlaying {
		return Move{Kind: MoveNone}
	}

	top, _ := s.TopCard()
	normal, wild := rule.SplitWild(rule.PlayableCards(s.ComputerHand, top, s.ActiveSuit))

	switch {
	case len(normal) > 0:
		return Move{Kind: MovePlay, Card: normal[r.IntN(len(normal))]}
	case len(wild) > 0:
		return Move{Kind: MovePlay, Card: wild[r.IntN(len(wild))]}
	}
	return Move{Kind: MoveDraw}
}

// TakeTurn runs one full computer turn. It is a no-op unless it is the
// computer's turn and the game is in progress.
func TakeTurn(s game.State, r card.Rand) (game.State, []game.Event, error) {
	move := Decide(s, r)

	switch move.Kind {
	case MoveNone:
		return s, nil, nil
	case MovePlay:
		return game.Play(s, game.SideComputer, move.Card.ID, card.SuitNone, r)
	}

	next, events, err := game.Draw(s, game.SideComputer, r)
	if err != nil {
		return s, nil, err
	}

	// Draw keeps the turn only when the drawn card is legal.
	if next.Turn != game.SideComputer || next.Status != game.StatusPlaying {
		return next, events, nil
	}

	drawn, ok := drawnCard(events)
	if !ok {
		return next, events, nil
	}

	played, more, err := game.Play(next, game.SideComputer, drawn.ID, card.SuitNone, r)
	if err != nil {
		return next, events, err
	}
	return played, append(events, more...), nil
}

func drawnCard(events []game.Event) (card.Card, bool) {
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Kind == game.EventDrew {
			return events[i].Card, true
		}
	}
	return card.Card{}, false
}
