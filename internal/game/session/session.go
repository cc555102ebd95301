package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/palemoky/crazy-eights/internal/apperrors"
	"github.com/palemoky/crazy-eights/internal/game"
	"github.com/palemoky/crazy-eights/internal/game/bot"
	"github.com/palemoky/crazy-eights/internal/game/card"
	"github.com/palemoky/crazy-eights/internal/logger"
	"github.com/palemoky/crazy-eights/internal/storage"
)

// 保存对局记录的超时
const recordTimeout = 3 * time.Second

// Recorder 对局结束后保存摘要
type Recorder interface {
	RecordResult(ctx context.Context, rec *storage.GameRecord) error
}

// Ticket 电脑回合的调度凭证，重开局后旧凭证失效
type Ticket struct {
	Generation uint64
}

// Session 持有当前牌局，所有调用都来自同一个事件循环，不加锁
type Session struct {
	id         string
	state      game.State
	generation uint64
	message    string

	rng         card.Rand
	recorder    Recorder
	onPlayerWin func()
	now         func() time.Time

	// 本局统计
	plays     int
	draws     int
	startedAt time.Time
}

// Option 会话选项
type Option func(*Session)

// WithRand 指定随机源
func WithRand(r card.Rand) Option {
	return func(s *Session) { s.rng = r }
}

// WithRecorder 指定对局记录存储
func WithRecorder(r Recorder) Option {
	return func(s *Session) { s.recorder = r }
}

// WithPlayerWinHook 玩家获胜时调用一次
func WithPlayerWinHook(fn func()) Option {
	return func(s *Session) { s.onPlayerWin = fn }
}

// WithClock 指定时钟，测试用
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New 创建会话，此时尚未发牌
func New(opts ...Option) *Session {
	s := &Session{
		rng:     card.NewRand(),
		now:     time.Now,
		message: "Welcome to Crazy Eights!",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Restart 丢弃当前牌局和所有待执行的电脑回合，重新发牌
func (s *Session) Restart() game.State {
	s.generation++
	s.id = uuid.NewString()
	s.state = game.Initialize(s.rng)
	s.plays, s.draws = 0, 0
	s.startedAt = s.now()
	s.message = game.Event{Kind: game.EventDealt}.Message()

	top, _ := s.state.TopCard()
	logger.LogInfo("game %s started (generation %d), first card %s", s.id, s.generation, top.Label())
	return s.State()
}

// ID 当前牌局 ID
func (s *Session) ID() string { return s.id }

// Generation 当前代数
func (s *Session) Generation() uint64 { return s.generation }

// Message 最近一条提示
func (s *Session) Message() string { return s.message }

// State 当前快照的副本
func (s *Session) State() game.State { return s.state.Clone() }

// Draw 玩家摸牌
func (s *Session) Draw() (game.State, error) {
	return s.apply(func(st game.State) (game.State, []game.Event, error) {
		return game.Draw(st, game.SidePlayer, s.rng)
	})
}

// Play 玩家出牌；打万能牌时 suit 为 SuitNone 则等待选花色
func (s *Session) Play(cardID string, suit card.Suit) (game.State, error) {
	return s.apply(func(st game.State) (game.State, []game.Event, error) {
		return game.Play(st, game.SidePlayer, cardID, suit, s.rng)
	})
}

// ChooseSuit 玩家为万能牌选择花色
func (s *Session) ChooseSuit(suit card.Suit) (game.State, error) {
	return s.apply(func(st game.State) (game.State, []game.Event, error) {
		return game.ChooseSuit(st, suit)
	})
}

// ComputerTurnDue 轮到电脑时返回调度凭证，调用方自行决定延迟多久后执行
func (s *Session) ComputerTurnDue() (Ticket, bool) {
	if s.state.Turn != game.SideComputer || s.state.Status != game.StatusPlaying {
		return Ticket{}, false
	}
	return Ticket{Generation: s.generation}, true
}

// RunComputerTurn 执行电脑回合；凭证过期或条件不满足时什么也不做
func (s *Session) RunComputerTurn(t Ticket) (game.State, bool) {
	if t.Generation != s.generation {
		return s.State(), false
	}
	if _, due := s.ComputerTurnDue(); !due {
		return s.State(), false
	}

	next, err := s.apply(func(st game.State) (game.State, []game.Event, error) {
		return bot.TakeTurn(st, s.rng)
	})
	if err != nil {
		logger.LogError("computer turn failed: %v", err)
		return next, false
	}
	return next, true
}

// apply 执行一次转换，失败时状态不变，只更新提示
func (s *Session) apply(transition func(game.State) (game.State, []game.Event, error)) (game.State, error) {
	prev := s.state
	next, events, err := transition(prev)
	if err != nil {
		logger.LogInfo("game %s: action rejected (code %d): %v", s.id, apperrors.Code(err), err)
		s.message = err.Error()
		return s.State(), err
	}

	s.state = next
	s.count(events)
	if msg := game.LastMessage(events); msg != "" {
		s.message = msg
	}

	if prev.Status != game.StatusFinished && next.Status == game.StatusFinished {
		s.finish()
	}
	return s.State(), nil
}

func (s *Session) count(events []game.Event) {
	for _, e := range events {
		switch e.Kind {
		case game.EventPlayed, game.EventSuitChosen:
			s.plays++
		case game.EventDrew:
			s.draws++
		}
	}
}

// finish 记录对局并触发玩家获胜回调
func (s *Session) finish() {
	logger.LogInfo("game %s finished, winner: %s, plays: %d", s.id, s.state.Winner, s.plays)

	if s.state.Winner == game.SidePlayer && s.onPlayerWin != nil {
		s.onPlayerWin()
	}

	if s.recorder == nil {
		return
	}

	rec := &storage.GameRecord{
		ID:            s.id,
		Winner:        s.state.Winner.String(),
		Plays:         s.plays,
		Draws:         s.draws,
		PlayerCards:   len(s.state.PlayerHand),
		ComputerCards: len(s.state.ComputerHand),
		StartedAt:     s.startedAt.Unix(),
		FinishedAt:    s.now().Unix(),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()
		if err := s.recorder.RecordResult(ctx, rec); err != nil {
			logger.LogError("failed to record game %s: %v", rec.ID, err)
		}
	}()
}
