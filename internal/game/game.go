package game

import (
	"github.com/palemoky/crazy-eights/internal/apperrors"
	"github.com/palemoky/crazy-eights/internal/game/card"
	"github.com/palemoky/crazy-eights/internal/game/rule"
)

// ActionKind 动作类型
type ActionKind int

const (
	ActionDraw ActionKind = iota
	ActionPlay
	ActionChooseSuit
)

// Action 一次行动请求
type Action struct {
	Kind   ActionKind
	Actor  Side
	CardID string    // ActionPlay 使用
	Suit   card.Suit // ActionChooseSuit 必填；ActionPlay 打万能牌时可选
}

// Apply 状态转换入口：apply(state, action) -> newState
func Apply(s State, a Action, r card.Rand) (State, []Event, error) {
	switch a.Kind {
	case ActionDraw:
		return Draw(s, a.Actor, r)
	case ActionPlay:
		return Play(s, a.Actor, a.CardID, a.Suit, r)
	case ActionChooseSuit:
		return ChooseSuit(s, a.Suit)
	}
	return s, nil, apperrors.ErrWrongStatus
}

// Initialize 洗牌、发牌并翻开第一张弃牌
func Initialize(r card.Rand) State {
	return InitializeFromDeck(card.NewShuffledDeck(r))
}

// InitializeFromDeck 使用给定顺序的整副牌开局
// 玩家和电脑依次从牌首各拿 8 张，剩余牌中第一张非万能牌作为起始弃牌，找不到则取第一张
func InitializeFromDeck(deck card.Deck) State {
	remaining := make([]card.Card, len(deck))
	copy(remaining, deck)

	playerHand := take(&remaining, HandSize)
	computerHand := take(&remaining, HandSize)

	idx := 0
	for i, c := range remaining {
		if !c.Wild {
			idx = i
			break
		}
	}

	var discard []card.Card
	activeSuit := card.SuitNone
	if len(remaining) > 0 {
		first := remaining[idx]
		remaining = append(remaining[:idx], remaining[idx+1:]...)
		discard = []card.Card{first}
		activeSuit = first.Suit
	}

	return State{
		DrawPile:     remaining,
		DiscardPile:  discard,
		PlayerHand:   playerHand,
		ComputerHand: computerHand,
		Turn:         SidePlayer,
		Status:       StatusPlaying,
		Winner:       SideNone,
		ActiveSuit:   activeSuit,
	}
}

func take(cards *[]card.Card, n int) []card.Card {
	n = min(n, len(*cards))
	out := make([]card.Card, n)
	copy(out, (*cards)[:n])
	*cards = (*cards)[n:]
	return out
}

// checkActor 校验当前是否允许 actor 正常行动
func checkActor(s State, actor Side) error {
	switch s.Status {
	case StatusFinished:
		return apperrors.ErrGameOver
	case StatusPlaying:
	default:
		return apperrors.ErrWrongStatus
	}
	if s.Turn != actor {
		return apperrors.ErrNotYourTurn
	}
	return nil
}

// Draw 当前行动方摸一张牌
// 牌堆为空时，把除堆顶外的弃牌洗回牌堆再摸；弃牌也不够时跳过回合
// 摸到的牌能出则保留回合，否则交给对手
func Draw(s State, actor Side, r card.Rand) (State, []Event, error) {
	if err := checkActor(s, actor); err != nil {
		return s, nil, err
	}

	next := s.Clone()
	var events []Event

	if len(next.DrawPile) == 0 {
		if len(next.DiscardPile) <= 1 {
			events = append(events, Event{Kind: EventNoCards, Actor: actor})
			events = append(events, passTurn(&next, actor))
			return next, events, nil
		}
		reshuffle(&next, r)
		events = append(events, Event{Kind: EventReshuffled, Actor: actor})
	}

	last := len(next.DrawPile) - 1
	drawn := next.DrawPile[last]
	next.DrawPile = next.DrawPile[:last]
	next.setHand(actor, append(next.Hand(actor), drawn))
	events = append(events, Event{Kind: EventDrew, Actor: actor, Card: drawn})

	top, _ := next.TopCard()
	if !rule.CanPlayCard(drawn, top, next.ActiveSuit) {
		events = append(events, passTurn(&next, actor))
	}

	return next, events, nil
}

// reshuffle 保留弃牌堆顶，其余洗成新牌堆
func reshuffle(s *State, r card.Rand) {
	last := len(s.DiscardPile) - 1
	top := s.DiscardPile[last]
	s.DrawPile = card.Shuffle(s.DiscardPile[:last], r)
	s.DiscardPile = []card.Card{top}
}

// Play 当前行动方出一张牌
// 万能牌：玩家未指定花色则进入选花色状态；电脑随机选择花色
func Play(s State, actor Side, cardID string, suit card.Suit, r card.Rand) (State, []Event, error) {
	if err := checkActor(s, actor); err != nil {
		return s, nil, err
	}

	hand := s.Hand(actor)
	idx := card.IndexOf(hand, cardID)
	if idx < 0 {
		return s, nil, apperrors.ErrCardNotInHand
	}
	played := hand[idx]

	top, _ := s.TopCard()
	if !rule.CanPlayCard(played, top, s.ActiveSuit) {
		return s, nil, apperrors.ErrIllegalCard
	}

	next := s.Clone()
	next.setHand(actor, card.Remove(next.Hand(actor), cardID))

	if !played.Wild {
		return finalize(next, actor, played, played.Suit)
	}

	if suit.IsReal() {
		return finalize(next, actor, played, suit)
	}

	if actor == SideComputer {
		return finalize(next, actor, played, card.Suits[r.IntN(len(card.Suits))])
	}

	next.Pending = &played
	next.Status = StatusAwaitingSuit
	return next, []Event{{Kind: EventSuitPending, Actor: actor, Card: played}}, nil
}

// ChooseSuit 为待定的万能牌指定花色并完成出牌
func ChooseSuit(s State, suit card.Suit) (State, []Event, error) {
	if s.Status != StatusAwaitingSuit {
		if s.Status == StatusFinished {
			return s, nil, apperrors.ErrGameOver
		}
		return s, nil, apperrors.ErrNoPending
	}
	if s.Pending == nil {
		return s, nil, apperrors.ErrNoPending
	}
	if !suit.IsReal() {
		return s, nil, apperrors.ErrInvalidSuit
	}

	next := s.Clone()
	played := *next.Pending
	next.Pending = nil
	return finalize(next, next.Turn, played, suit)
}

// finalize 牌进入弃牌堆，更新花色，检查胜负并交换回合
func finalize(next State, actor Side, played card.Card, suit card.Suit) (State, []Event, error) {
	next.DiscardPile = append(next.DiscardPile, played)
	next.ActiveSuit = suit
	next.Status = StatusPlaying

	var events []Event
	if played.Wild {
		events = append(events, Event{Kind: EventSuitChosen, Actor: actor, Card: played, Suit: suit})
	} else {
		events = append(events, Event{Kind: EventPlayed, Actor: actor, Card: played, Suit: suit})
	}

	if len(next.Hand(actor)) == 0 {
		next.Status = StatusFinished
		next.Winner = actor
		events = append(events, Event{Kind: EventWon, Actor: actor})
		return next, events, nil
	}

	events = append(events, passTurn(&next, actor))
	return next, events, nil
}

func passTurn(s *State, from Side) Event {
	s.Turn = from.Other()
	return Event{Kind: EventTurnPassed, Actor: from}
}
