// Package model contains the UI model implementations.
package model

import (
	"context"
	"time"

	"github.com/palemoky/crazy-eights/internal/game/card"
	"github.com/palemoky/crazy-eights/internal/game/session"
	"github.com/palemoky/crazy-eights/internal/storage"
)

const (
	// DefaultComputerDelay 电脑行动前的默认等待
	DefaultComputerDelay = 1500 * time.Millisecond

	// 对局结束后等记录写入再刷新历史
	historyRefreshDelay = 300 * time.Millisecond
	historyTimeout      = 2 * time.Second
	historyLimit        = 10
)

// Sounds plays sound effects.
type Sounds interface {
	Play(name string)
	Celebrate()
}

// History saves finished games and reads recent results back.
type History interface {
	session.Recorder
	RecentResults(ctx context.Context, limit int) ([]*storage.GameRecord, error)
	ClearResults(ctx context.Context) error
}

// Options configures a GameModel.
type Options struct {
	Rand    card.Rand
	Delay   time.Duration
	Sounds  Sounds
	History History
}

// --- Tea Messages ---

// ComputerTurnMsg fires when a scheduled computer turn is due.
type ComputerTurnMsg struct {
	Ticket session.Ticket
}

// HistoryMsg carries recently recorded games.
type HistoryMsg struct {
	Records []*storage.GameRecord
}
