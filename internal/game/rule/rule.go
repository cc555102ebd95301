package rule

import (
	"github.com/palemoky/crazy-eights/internal/game/card"
)

// CanPlayCard 判断一张牌能否压在弃牌堆顶上
// 满足任一即可：万能牌；花色等于当前花色；点数与堆顶相同（王不参与点数匹配）
func CanPlayCard(c, top card.Card, activeSuit card.Suit) bool {
	if c.Wild {
		return true
	}
	if c.Suit == activeSuit {
		return true
	}
	return c.Rank == top.Rank && c.Rank != card.RankJoker
}

// PlayableCards 返回手牌中所有可出的牌，保持手牌顺序
func PlayableCards(hand []card.Card, top card.Card, activeSuit card.Suit) []card.Card {
	var result []card.Card
	for _, c := range hand {
		if CanPlayCard(c, top, activeSuit) {
			result = append(result, c)
		}
	}
	return result
}

// SplitWild 把牌分成普通牌和万能牌
func SplitWild(cards []card.Card) (normal, wild []card.Card) {
	for _, c := range cards {
		if c.Wild {
			wild = append(wild, c)
		} else {
			normal = append(normal, c)
		}
	}
	return normal, wild
}
