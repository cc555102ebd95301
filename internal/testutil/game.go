//go:build !production

package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palemoky/crazy-eights/internal/game"
	"github.com/palemoky/crazy-eights/internal/game/card"
)

// NewState 构造一个合法快照：指定手牌和弃牌，其余牌按原顺序放进牌堆
func NewState(player, computer, discard []card.Card, activeSuit card.Suit, turn game.Side) game.State {
	used := make(map[string]bool)
	for _, group := range [][]card.Card{player, computer, discard} {
		for _, c := range group {
			used[c.ID] = true
		}
	}

	var draw []card.Card
	for _, c := range card.NewDeck() {
		if !used[c.ID] {
			draw = append(draw, c)
		}
	}

	return game.State{
		DrawPile:     draw,
		DiscardPile:  discard,
		PlayerHand:   player,
		ComputerHand: computer,
		Turn:         turn,
		Status:       game.StatusPlaying,
		ActiveSuit:   activeSuit,
	}
}

// StackDrawPile 把指定的牌依次移到牌堆顶，最后一个 ID 位于最上面
func StackDrawPile(s game.State, ids ...string) game.State {
	next := s.Clone()
	for _, id := range ids {
		idx := card.IndexOf(next.DrawPile, id)
		if idx < 0 {
			continue
		}
		c := next.DrawPile[idx]
		next.DrawPile = append(card.Remove(next.DrawPile, id), c)
	}
	return next
}

// EmptyDrawPile 把牌堆全部压到弃牌堆底部，保留原堆顶
func EmptyDrawPile(s game.State) game.State {
	next := s.Clone()
	top, _ := next.TopCard()
	rest := next.DiscardPile[:len(next.DiscardPile)-1]

	discard := make([]card.Card, 0, len(next.DrawPile)+len(rest)+1)
	discard = append(discard, next.DrawPile...)
	discard = append(discard, rest...)
	next.DiscardPile = append(discard, top)
	next.DrawPile = nil
	return next
}

// AssertConsistent 检查 54 张牌守恒且互不重复
func AssertConsistent(t *testing.T, s game.State) {
	t.Helper()

	seen := make(map[string]bool)
	groups := [][]card.Card{s.DrawPile, s.DiscardPile, s.PlayerHand, s.ComputerHand}
	if s.Pending != nil {
		groups = append(groups, []card.Card{*s.Pending})
	}
	for _, group := range groups {
		for _, c := range group {
			assert.False(t, seen[c.ID], "card %s appears twice", c.ID)
			seen[c.ID] = true
		}
	}
	assert.Len(t, seen, card.DeckSize)
	assert.Equal(t, card.DeckSize, s.CardCount())
}
