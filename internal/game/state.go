package game

import (
	"slices"

	"github.com/palemoky/crazy-eights/internal/game/card"
)

// HandSize 开局每人发牌数
const HandSize = 8

// Side 行动方
type Side int

const (
	SideNone Side = iota
	SidePlayer
	SideComputer
)

// Other 返回对手
func (s Side) Other() Side {
	switch s {
	case SidePlayer:
		return SideComputer
	case SideComputer:
		return SidePlayer
	}
	return SideNone
}

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideComputer:
		return "computer"
	}
	return "none"
}

// Status 游戏状态
type Status int

const (
	StatusWaiting      Status = iota // 尚未发牌
	StatusPlaying                    // 正常轮流出牌
	StatusAwaitingSuit               // 玩家打出万能牌，等待选择花色
	StatusFinished                   // 有人出完手牌
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusAwaitingSuit:
		return "awaiting-suit-choice"
	case StatusFinished:
		return "finished"
	}
	return "waiting"
}

// State 一局游戏的完整快照
// 所有状态转换都返回新的快照，不修改传入的 State
type State struct {
	DrawPile     []card.Card // 牌堆，最后一张为堆顶
	DiscardPile  []card.Card // 弃牌堆，最后一张为堆顶
	PlayerHand   []card.Card
	ComputerHand []card.Card
	Turn         Side
	Status       Status
	Winner       Side
	ActiveSuit   card.Suit  // 当前需要匹配的花色，打出万能牌后可能与堆顶花色不同
	Pending      *card.Card // 等待选择花色的万能牌，尚未进入弃牌堆
}

// TopCard 弃牌堆顶的牌
func (s State) TopCard() (card.Card, bool) {
	if len(s.DiscardPile) == 0 {
		return card.Card{}, false
	}
	return s.DiscardPile[len(s.DiscardPile)-1], true
}

// DrawCount 牌堆剩余张数
func (s State) DrawCount() int {
	return len(s.DrawPile)
}

// Hand 返回某一方的手牌
func (s State) Hand(side Side) []card.Card {
	switch side {
	case SidePlayer:
		return s.PlayerHand
	case SideComputer:
		return s.ComputerHand
	}
	return nil
}

// CardCount 所有容器中的牌数之和，含待定的万能牌
func (s State) CardCount() int {
	n := len(s.DrawPile) + len(s.DiscardPile) + len(s.PlayerHand) + len(s.ComputerHand)
	if s.Pending != nil {
		n++
	}
	return n
}

// Clone 深拷贝所有切片
func (s State) Clone() State {
	next := s
	next.DrawPile = slices.Clone(s.DrawPile)
	next.DiscardPile = slices.Clone(s.DiscardPile)
	next.PlayerHand = slices.Clone(s.PlayerHand)
	next.ComputerHand = slices.Clone(s.ComputerHand)
	if s.Pending != nil {
		p := *s.Pending
		next.Pending = &p
	}
	return next
}

func (s *State) setHand(side Side, hand []card.Card) {
	switch side {
	case SidePlayer:
		s.PlayerHand = hand
	case SideComputer:
		s.ComputerHand = hand
	}
}
