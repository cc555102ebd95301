package card

import (
	"fmt"
	"strconv"
)

// Suit 定义花色
type Suit int

// Rank 定义点数
type Rank int

// CardColor 定义牌的颜色
type CardColor int

const (
	Black CardColor = iota
	Red
)

func (c CardColor) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

const (
	SuitNone Suit = iota // 王牌没有花色
	Hearts               // 红心
	Diamonds             // 方块
	Clubs                // 梅花
	Spades               // 黑桃
)

// Suits 四种真实花色，按建牌顺序排列
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// suitSymbols 花色符号映射表
var suitSymbols = map[Suit]string{
	Hearts:   "♥",
	Diamonds: "♦",
	Clubs:    "♣",
	Spades:   "♠",
	SuitNone: "",
}

// suitNames 花色名称映射表，同时用于牌的 ID
var suitNames = map[Suit]string{
	Hearts:   "hearts",
	Diamonds: "diamonds",
	Clubs:    "clubs",
	Spades:   "spades",
	SuitNone: "none",
}

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return ""
}

// Name 返回花色的英文名
func (s Suit) Name() string {
	if name, ok := suitNames[s]; ok {
		return name
	}
	return "none"
}

// IsReal 是否是四种真实花色之一
func (s Suit) IsReal() bool {
	return s >= Hearts && s <= Spades
}

// Color 花色对应的颜色
func (s Suit) Color() CardColor {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

const (
	Rank2 Rank = iota + 2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ // Jack
	RankQ // Queen
	RankK // King
	RankA // Ace
	RankJoker
)

// rankNames 牌面值字符串映射表
var rankNames = map[Rank]string{
	RankJ:     "J",
	RankQ:     "Q",
	RankK:     "K",
	RankA:     "A",
	RankJoker: "JOKER",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

// Card 定义一张牌，创建后不再修改
type Card struct {
	ID    string
	Suit  Suit
	Rank  Rank
	Wild  bool
	Color CardColor
}

// NewCard 创建一张普通牌，8 为万能牌
func NewCard(s Suit, r Rank) Card {
	return Card{
		ID:    fmt.Sprintf("%s-%s", s.Name(), r.String()),
		Suit:  s,
		Rank:  r,
		Wild:  r == Rank8,
		Color: s.Color(),
	}
}

// NewJoker 创建一张王牌
func NewJoker(color CardColor) Card {
	return Card{
		ID:    "joker-" + color.String(),
		Suit:  SuitNone,
		Rank:  RankJoker,
		Wild:  true,
		Color: color,
	}
}

// Label 牌面简写，例如 "10♥"、"JOKER"
func (c Card) Label() string {
	if c.Rank == RankJoker {
		return "JOKER"
	}
	return c.Rank.String() + c.Suit.String()
}

func (c Card) String() string {
	return c.Label()
}
