package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/crazy-eights/internal/apperrors"
	"github.com/palemoky/crazy-eights/internal/game/card"
	"github.com/palemoky/crazy-eights/internal/game/rule"
)

func c(s card.Suit, r card.Rank) card.Card { return card.NewCard(s, r) }

// 以下辅助函数与 testutil 中的同名函数对应；testutil 依赖 game 包，包内测试无法反向导入

// assertConsistent 检查 54 张牌守恒且互不重复
func assertConsistent(t *testing.T, s State) {
	t.Helper()

	assert.Equal(t, card.DeckSize, s.CardCount())

	seen := make(map[string]string)
	check := func(where string, cards []card.Card) {
		for _, cc := range cards {
			if prev, ok := seen[cc.ID]; ok {
				t.Errorf("card %s in both %s and %s", cc.ID, prev, where)
			}
			seen[cc.ID] = where
		}
	}
	check("draw", s.DrawPile)
	check("discard", s.DiscardPile)
	check("player", s.PlayerHand)
	check("computer", s.ComputerHand)
	if s.Pending != nil {
		check("pending", []card.Card{*s.Pending})
	}
	assert.Len(t, seen, card.DeckSize)
}

// stateWith 构造一个合法快照：指定手牌、弃牌，其余牌放进牌堆
func stateWith(player, computer, discard []card.Card, activeSuit card.Suit) State {
	used := make(map[string]bool)
	for _, group := range [][]card.Card{player, computer, discard} {
		for _, cc := range group {
			used[cc.ID] = true
		}
	}
	var draw []card.Card
	for _, cc := range card.NewDeck() {
		if !used[cc.ID] {
			draw = append(draw, cc)
		}
	}
	return State{
		DrawPile:     draw,
		DiscardPile:  discard,
		PlayerHand:   player,
		ComputerHand: computer,
		Turn:         SidePlayer,
		Status:       StatusPlaying,
		ActiveSuit:   activeSuit,
	}
}

// moveToDiscard 把牌堆全部移入弃牌堆底部，保留原堆顶
func moveToDiscard(s State) State {
	next := s.Clone()
	top, _ := next.TopCard()
	next.DiscardPile = append(next.DrawPile, next.DiscardPile[:len(next.DiscardPile)-1]...)
	next.DiscardPile = append(next.DiscardPile, top)
	next.DrawPile = nil
	return next
}

func TestInitialize(t *testing.T) {
	t.Parallel()

	s := Initialize(card.NewSeededRand(3))

	assert.Len(t, s.PlayerHand, HandSize)
	assert.Len(t, s.ComputerHand, HandSize)
	require.Len(t, s.DiscardPile, 1)
	assert.Len(t, s.DrawPile, card.DeckSize-2*HandSize-1)
	assert.False(t, s.DiscardPile[0].Wild)
	assert.Equal(t, s.DiscardPile[0].Suit, s.ActiveSuit)
	assert.Equal(t, SidePlayer, s.Turn)
	assert.Equal(t, StatusPlaying, s.Status)
	assert.Equal(t, SideNone, s.Winner)
	assertConsistent(t, s)
}

func TestInitializeFromDeck_SkipsWildStartCard(t *testing.T) {
	t.Parallel()

	deck := card.NewDeck()
	// 第 17、18 张放万能牌，第 19 张放梅花 5
	order := []string{"hearts-8", "joker-red", "clubs-5"}
	for i, id := range order {
		j := card.IndexOf(deck, id)
		deck[2*HandSize+i], deck[j] = deck[j], deck[2*HandSize+i]
	}

	s := InitializeFromDeck(deck)

	require.Len(t, s.DiscardPile, 1)
	assert.Equal(t, "clubs-5", s.DiscardPile[0].ID)
	assert.Equal(t, card.Clubs, s.ActiveSuit)
	assert.Equal(t, SidePlayer, s.Turn)
	assert.Equal(t, StatusPlaying, s.Status)
	assert.Equal(t, deck[:HandSize], card.Deck(s.PlayerHand))
	assert.Equal(t, deck[HandSize:2*HandSize], card.Deck(s.ComputerHand))
	// 被跳过的万能牌仍留在牌堆前部
	assert.Equal(t, "hearts-8", s.DrawPile[0].ID)
	assert.Equal(t, "joker-red", s.DrawPile[1].ID)
	assertConsistent(t, s)
}

func TestInitializeFromDeck_AllWildFallback(t *testing.T) {
	t.Parallel()

	var wilds, others []card.Card
	for _, cc := range card.NewDeck() {
		if cc.Wild {
			wilds = append(wilds, cc)
		} else {
			others = append(others, cc)
		}
	}
	// 只留下两手牌和万能牌，保证剩余全是万能牌
	deck := append(others[:2*HandSize:2*HandSize], wilds...)

	s := InitializeFromDeck(deck)

	require.Len(t, s.DiscardPile, 1)
	assert.Equal(t, wilds[0].ID, s.DiscardPile[0].ID)
	assert.Len(t, s.DrawPile, len(wilds)-1)
}

func TestDraw_FromPile(t *testing.T) {
	t.Parallel()

	s := stateWith(
		[]card.Card{c(card.Hearts, card.Rank2)},
		[]card.Card{c(card.Spades, card.Rank3)},
		[]card.Card{c(card.Clubs, card.Rank9)},
		card.Clubs,
	)
	// 堆顶放一张不能出的牌
	top := c(card.Diamonds, card.Rank4)
	idx := card.IndexOf(s.DrawPile, top.ID)
	s.DrawPile = append(card.Remove(s.DrawPile, top.ID), s.DrawPile[idx])

	next, events, err := Draw(s, SidePlayer, card.NewSeededRand(1))
	require.NoError(t, err)

	assert.Len(t, next.PlayerHand, 2)
	assert.Equal(t, top.ID, next.PlayerHand[1].ID)
	assert.Equal(t, len(s.DrawPile)-1, next.DrawCount())
	assert.Equal(t, SideComputer, next.Turn, "unplayable draw passes the turn")
	assert.Equal(t, EventDrew, events[0].Kind)
	assert.Equal(t, EventTurnPassed, events[len(events)-1].Kind)
	assertConsistent(t, next)

	// 原快照不变
	assert.Len(t, s.PlayerHand, 1)
}

func TestDraw_PlayableKeepsTurn(t *testing.T) {
	t.Parallel()

	s := stateWith(
		[]card.Card{c(card.Hearts, card.Rank2)},
		[]card.Card{c(card.Spades, card.Rank3)},
		[]card.Card{c(card.Clubs, card.Rank9)},
		card.Clubs,
	)
	playable := c(card.Clubs, card.RankK)
	idx := card.IndexOf(s.DrawPile, playable.ID)
	s.DrawPile = append(card.Remove(s.DrawPile, playable.ID), s.DrawPile[idx])

	next, events, err := Draw(s, SidePlayer, card.NewSeededRand(1))
	require.NoError(t, err)

	assert.Equal(t, SidePlayer, next.Turn)
	assert.Len(t, events, 1)
	assert.Equal(t, "You drew K♣.", LastMessage(events))
}

func TestDraw_Reshuffle(t *testing.T) {
	t.Parallel()

	s := stateWith(
		[]card.Card{c(card.Hearts, card.Rank2)},
		[]card.Card{c(card.Spades, card.Rank3)},
		[]card.Card{c(card.Diamonds, card.Rank6), c(card.Clubs, card.Rank9)},
		card.Clubs,
	)
	s = moveToDiscard(s)
	k := len(s.DiscardPile)
	top, _ := s.TopCard()

	next, events, err := Draw(s, SidePlayer, card.NewSeededRand(9))
	require.NoError(t, err)

	require.Len(t, next.DiscardPile, 1)
	assert.Equal(t, top, next.DiscardPile[0])
	assert.Equal(t, k-2, next.DrawCount(), "k-1 reshuffled then one drawn")
	assert.Len(t, next.PlayerHand, 2)
	assert.Equal(t, EventReshuffled, events[0].Kind)
	assert.Equal(t, EventDrew, events[1].Kind)
	assertConsistent(t, next)
}

func TestReshuffle_Sizes(t *testing.T) {
	t.Parallel()

	s := moveToDiscard(stateWith(
		[]card.Card{c(card.Hearts, card.Rank2)},
		[]card.Card{c(card.Spades, card.Rank3)},
		[]card.Card{c(card.Clubs, card.Rank9)},
		card.Clubs,
	))
	k := len(s.DiscardPile)
	top, _ := s.TopCard()

	next := s.Clone()
	reshuffle(&next, card.NewSeededRand(5))

	assert.Len(t, next.DrawPile, k-1)
	require.Len(t, next.DiscardPile, 1)
	assert.Equal(t, top.ID, next.DiscardPile[0].ID)
	assertConsistent(t, next)
}

func TestDraw_NoCardsSkipsTurn(t *testing.T) {
	t.Parallel()

	all := card.NewDeck()
	s := State{
		DrawPile:     nil,
		DiscardPile:  []card.Card{all[0]},
		PlayerHand:   all[1:27],
		ComputerHand: all[27:],
		Turn:         SidePlayer,
		Status:       StatusPlaying,
		ActiveSuit:   all[0].Suit,
	}

	next, events, err := Draw(s, SidePlayer, card.NewSeededRand(1))
	require.NoError(t, err)

	assert.Equal(t, SideComputer, next.Turn)
	assert.Equal(t, s.PlayerHand, next.PlayerHand)
	assert.Len(t, next.DiscardPile, 1)
	assert.Equal(t, EventNoCards, events[0].Kind)
	assert.Equal(t, "No cards left to draw! Turn skipped.", events[0].Message())
	assertConsistent(t, next)
}

func TestDraw_Preconditions(t *testing.T) {
	t.Parallel()

	s := Initialize(card.NewSeededRand(11))

	_, _, err := Draw(s, SideComputer, card.NewSeededRand(1))
	assert.ErrorIs(t, err, apperrors.ErrNotYourTurn)

	waiting := State{}
	_, _, err = Draw(waiting, SidePlayer, card.NewSeededRand(1))
	assert.ErrorIs(t, err, apperrors.ErrWrongStatus)

	done := s.Clone()
	done.Status = StatusFinished
	_, _, err = Draw(done, SidePlayer, card.NewSeededRand(1))
	assert.ErrorIs(t, err, apperrors.ErrGameOver)
}

func TestPlay_NonWild(t *testing.T) {
	t.Parallel()

	s := stateWith(
		[]card.Card{c(card.Hearts, card.Rank9), c(card.Spades, card.Rank2)},
		[]card.Card{c(card.Spades, card.Rank3)},
		[]card.Card{c(card.Clubs, card.Rank9)},
		card.Clubs,
	)

	next, events, err := Play(s, SidePlayer, "hearts-9", card.SuitNone, card.NewSeededRand(1))
	require.NoError(t, err)

	top, _ := next.TopCard()
	assert.Equal(t, "hearts-9", top.ID)
	assert.Equal(t, card.Hearts, next.ActiveSuit)
	assert.Len(t, next.PlayerHand, 1)
	assert.Equal(t, SideComputer, next.Turn)
	assert.Equal(t, EventPlayed, events[0].Kind)
	assertConsistent(t, next)
}

func TestPlay_Rejections(t *testing.T) {
	t.Parallel()

	s := stateWith(
		[]card.Card{c(card.Hearts, card.Rank5), c(card.Spades, card.Rank2)},
		[]card.Card{c(card.Spades, card.Rank3)},
		[]card.Card{c(card.Clubs, card.Rank9)},
		card.Diamonds,
	)

	tests := []struct {
		name   string
		actor  Side
		cardID string
		err    error
	}{
		{"illegal card", SidePlayer, "hearts-5", apperrors.ErrIllegalCard},
		{"card not in hand", SidePlayer, "clubs-K", apperrors.ErrCardNotInHand},
		{"out of turn", SideComputer, "spades-3", apperrors.ErrNotYourTurn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			next, events, err := Play(s, tt.actor, tt.cardID, card.SuitNone, card.NewSeededRand(1))
			assert.ErrorIs(t, err, tt.err)
			assert.Nil(t, events)
			assert.Equal(t, s, next)
		})
	}
}

func TestPlay_HumanWildAwaitsSuit(t *testing.T) {
	t.Parallel()

	s := stateWith(
		[]card.Card{c(card.Hearts, card.Rank8), c(card.Spades, card.Rank2)},
		[]card.Card{c(card.Spades, card.Rank3)},
		[]card.Card{c(card.Clubs, card.Rank9)},
		card.Clubs,
	)

	next, events, err := Play(s, SidePlayer, "hearts-8", card.SuitNone, card.NewSeededRand(1))
	require.NoError(t, err)

	assert.Equal(t, StatusAwaitingSuit, next.Status)
	require.NotNil(t, next.Pending)
	assert.Equal(t, "hearts-8", next.Pending.ID)
	assert.Len(t, next.DiscardPile, 1, "wild card not discarded before a suit is chosen")
	assert.Equal(t, card.Clubs, next.ActiveSuit)
	assert.Equal(t, SidePlayer, next.Turn)
	assert.Equal(t, EventSuitPending, events[0].Kind)
	assertConsistent(t, next)

	// 选花色前不能摸牌或出牌
	_, _, err = Draw(next, SidePlayer, card.NewSeededRand(1))
	assert.ErrorIs(t, err, apperrors.ErrWrongStatus)

	chosen, events, err := ChooseSuit(next, card.Diamonds)
	require.NoError(t, err)

	top, _ := chosen.TopCard()
	assert.Equal(t, "hearts-8", top.ID)
	assert.Equal(t, card.Diamonds, chosen.ActiveSuit)
	assert.Equal(t, StatusPlaying, chosen.Status)
	assert.Nil(t, chosen.Pending)
	assert.Equal(t, SideComputer, chosen.Turn)
	assert.Equal(t, EventSuitChosen, events[0].Kind)
	assertConsistent(t, chosen)
}

func TestPlay_HumanWildWithSuit(t *testing.T) {
	t.Parallel()

	s := stateWith(
		[]card.Card{card.NewJoker(card.Red), c(card.Spades, card.Rank2)},
		[]card.Card{c(card.Spades, card.Rank3)},
		[]card.Card{c(card.Clubs, card.Rank9)},
		card.Clubs,
	)

	next, _, err := Play(s, SidePlayer, "joker-red", card.Hearts, card.NewSeededRand(1))
	require.NoError(t, err)

	assert.Equal(t, StatusPlaying, next.Status)
	assert.Equal(t, card.Hearts, next.ActiveSuit)
	assert.Nil(t, next.Pending)
	assert.Equal(t, SideComputer, next.Turn)
}

func TestPlay_ComputerWildPicksRealSuit(t *testing.T) {
	t.Parallel()

	s := stateWith(
		[]card.Card{c(card.Hearts, card.Rank2)},
		[]card.Card{c(card.Spades, card.Rank8), c(card.Spades, card.Rank3)},
		[]card.Card{c(card.Clubs, card.Rank9)},
		card.Clubs,
	)
	s.Turn = SideComputer

	seen := make(map[card.Suit]bool)
	r := card.NewSeededRand(2)
	for range 200 {
		next, _, err := Play(s, SideComputer, "spades-8", card.SuitNone, r)
		require.NoError(t, err)
		assert.True(t, next.ActiveSuit.IsReal())
		assert.Equal(t, StatusPlaying, next.Status)
		assert.Equal(t, SidePlayer, next.Turn)
		seen[next.ActiveSuit] = true
	}
	assert.Len(t, seen, 4)
}

func TestChooseSuit_Rejections(t *testing.T) {
	t.Parallel()

	s := stateWith(
		[]card.Card{c(card.Hearts, card.Rank8), c(card.Spades, card.Rank2)},
		[]card.Card{c(card.Spades, card.Rank3)},
		[]card.Card{c(card.Clubs, card.Rank9)},
		card.Clubs,
	)

	_, _, err := ChooseSuit(s, card.Hearts)
	assert.ErrorIs(t, err, apperrors.ErrNoPending)

	pending, _, err := Play(s, SidePlayer, "hearts-8", card.SuitNone, card.NewSeededRand(1))
	require.NoError(t, err)

	same, _, err := ChooseSuit(pending, card.SuitNone)
	assert.ErrorIs(t, err, apperrors.ErrInvalidSuit)
	assert.Equal(t, pending, same)
}

func TestPlay_WinEndsGame(t *testing.T) {
	t.Parallel()

	s := stateWith(
		[]card.Card{c(card.Clubs, card.RankQ)},
		[]card.Card{c(card.Spades, card.Rank3)},
		[]card.Card{c(card.Clubs, card.Rank9)},
		card.Clubs,
	)

	next, events, err := Play(s, SidePlayer, "clubs-Q", card.SuitNone, card.NewSeededRand(1))
	require.NoError(t, err)

	assert.Equal(t, StatusFinished, next.Status)
	assert.Equal(t, SidePlayer, next.Winner)
	assert.Equal(t, SidePlayer, next.Turn, "no handoff after a win")
	assert.Equal(t, EventWon, events[len(events)-1].Kind)
	for _, e := range events {
		assert.NotEqual(t, EventTurnPassed, e.Kind)
	}

	_, _, err = Draw(next, SideComputer, card.NewSeededRand(1))
	assert.ErrorIs(t, err, apperrors.ErrGameOver)
}

func TestChooseSuit_WinWithLastWild(t *testing.T) {
	t.Parallel()

	s := stateWith(
		[]card.Card{card.NewJoker(card.Black)},
		[]card.Card{c(card.Spades, card.Rank3)},
		[]card.Card{c(card.Clubs, card.Rank9)},
		card.Clubs,
	)

	pending, _, err := Play(s, SidePlayer, "joker-black", card.SuitNone, card.NewSeededRand(1))
	require.NoError(t, err)
	assert.Equal(t, StatusAwaitingSuit, pending.Status, "win is only checked after the suit is chosen")

	done, _, err := ChooseSuit(pending, card.Spades)
	require.NoError(t, err)
	assert.Equal(t, StatusFinished, done.Status)
	assert.Equal(t, SidePlayer, done.Winner)
	assert.Equal(t, card.Spades, done.ActiveSuit)
}

func TestApply_Dispatch(t *testing.T) {
	t.Parallel()

	s := stateWith(
		[]card.Card{c(card.Hearts, card.Rank8), c(card.Spades, card.Rank2)},
		[]card.Card{c(card.Spades, card.Rank3)},
		[]card.Card{c(card.Clubs, card.Rank9)},
		card.Clubs,
	)
	r := card.NewSeededRand(1)

	next, _, err := Apply(s, Action{Kind: ActionPlay, Actor: SidePlayer, CardID: "hearts-8"}, r)
	require.NoError(t, err)
	next, _, err = Apply(next, Action{Kind: ActionChooseSuit, Suit: card.Spades}, r)
	require.NoError(t, err)
	assert.Equal(t, card.Spades, next.ActiveSuit)

	_, _, err = Apply(next, Action{Kind: ActionKind(99)}, r)
	assert.Error(t, err)
}

// TestRandomWalk_Conservation 随机走完多局，每一步都检查牌数守恒
func TestRandomWalk_Conservation(t *testing.T) {
	t.Parallel()

	r := card.NewSeededRand(2024)
	for game := range 50 {
		s := Initialize(r)
		for step := 0; step < 500 && s.Status != StatusFinished; step++ {
			var err error
			switch s.Status {
			case StatusAwaitingSuit:
				s, _, err = ChooseSuit(s, card.Suits[r.IntN(4)])
			default:
				top, _ := s.TopCard()
				playable := rule.PlayableCards(s.Hand(s.Turn), top, s.ActiveSuit)
				if len(playable) > 0 && r.IntN(4) > 0 {
					s, _, err = Play(s, s.Turn, playable[r.IntN(len(playable))].ID, card.SuitNone, r)
				} else {
					s, _, err = Draw(s, s.Turn, r)
				}
			}
			require.NoError(t, err, "game %d step %d", game, step)
			assertConsistent(t, s)
			if s.Status == StatusFinished {
				assert.Empty(t, s.Hand(s.Winner))
			}
		}
	}
}
