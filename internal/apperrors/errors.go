package apperrors

import "errors"

// 错误码
const (
	ErrCodeUnknown = iota + 1000
	ErrCodeNotYourTurn
	ErrCodeWrongStatus
	ErrCodeCardNotInHand
	ErrCodeIllegalCard
	ErrCodeInvalidSuit
	ErrCodeNoPending
	ErrCodeGameOver
)

// GameError 游戏错误，非法操作一律以它返回，状态保持不变
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrNotYourTurn   = &GameError{Code: ErrCodeNotYourTurn, Message: "It's not your turn!"}
	ErrWrongStatus   = &GameError{Code: ErrCodeWrongStatus, Message: "That action isn't available right now."}
	ErrCardNotInHand = &GameError{Code: ErrCodeCardNotInHand, Message: "That card isn't in your hand."}
	ErrIllegalCard   = &GameError{Code: ErrCodeIllegalCard, Message: "Cannot play that card!"}
	ErrInvalidSuit   = &GameError{Code: ErrCodeInvalidSuit, Message: "Pick hearts, diamonds, clubs or spades."}
	ErrNoPending     = &GameError{Code: ErrCodeNoPending, Message: "There is no wild card waiting for a suit."}
	ErrGameOver      = &GameError{Code: ErrCodeGameOver, Message: "The game is over. Press R to play again."}
)

// Code 提取错误码，非 GameError 返回 ErrCodeUnknown
func Code(err error) int {
	var ge *GameError
	if errors.As(err, &ge) {
		return ge.Code
	}
	return ErrCodeUnknown
}
