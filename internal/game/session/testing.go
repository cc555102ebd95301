//go:build !production

package session

import "github.com/palemoky/crazy-eights/internal/game"

// SetStateForTest 直接替换当前快照，用于构造测试场景
func (s *Session) SetStateForTest(st game.State) {
	s.state = st
}
