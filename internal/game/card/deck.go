package card

import (
	"math/rand/v2"
	"slices"
)

// DeckSize 一副牌的张数（52 + 2 张王）
const DeckSize = 54

// Rand 洗牌和电脑决策使用的随机源，*rand.Rand 即满足该接口
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// NewRand 返回使用全局熵源的随机源
func NewRand() Rand {
	return globalRand{}
}

// NewSeededRand 返回可复现的随机源，用于测试和固定牌局
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Deck 定义一组有序的牌
type Deck []Card

// NewDeck 按花色、点数顺序建一副未洗的牌，末尾是黑王和红王
func NewDeck() Deck {
	deck := make(Deck, 0, DeckSize)
	for _, s := range Suits {
		for r := Rank2; r <= RankA; r++ {
			deck = append(deck, NewCard(s, r))
		}
	}
	deck = append(deck, NewJoker(Black), NewJoker(Red))
	return deck
}

// NewShuffledDeck 建一副牌并洗好
func NewShuffledDeck(r Rand) Deck {
	return Shuffle(NewDeck(), r)
}

// Shuffle 返回洗好的新切片，不修改传入的牌
func Shuffle(cards []Card, r Rand) []Card {
	out := slices.Clone(cards)
	for i := len(out) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// IndexOf 按 ID 查找牌的位置，找不到返回 -1
func IndexOf(cards []Card, id string) int {
	return slices.IndexFunc(cards, func(c Card) bool { return c.ID == id })
}

// Remove 返回移除指定 ID 后的新切片
func Remove(cards []Card, id string) []Card {
	idx := IndexOf(cards, id)
	if idx < 0 {
		return slices.Clone(cards)
	}
	out := make([]Card, 0, len(cards)-1)
	out = append(out, cards[:idx]...)
	return append(out, cards[idx+1:]...)
}
