package leaderboard

import (
	"context"
	"fmt"

	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/event"
	"github.com/osse101/CasinoBot_Go/internal/logger"
	"github.com/osse101/CasinoBot_Go/internal/repository"
	"github.com/osse101/CasinoBot_Go/internal/worker"
)

// Service serves the biggest-winners board
type Service interface {
	TopWinners(ctx context.Context, limit int) ([]domain.WinnerEntry, error)
}

// PlayerLookup resolves usernames for board rows
type PlayerLookup interface {
	GetPlayer(ctx context.Context, id string) (*domain.Player, error)
}

type service struct {
	board   WinnersBoard
	spinLog repository.SpinLog
	players PlayerLookup
}

// NewService creates the winners service. board may be nil, in which case
// the spin log aggregation is the only source.
func NewService(board WinnersBoard, spinLog repository.SpinLog, players PlayerLookup) Service {
	return &service{board: board, spinLog: spinLog, players: players}
}

func (s *service) TopWinners(ctx context.Context, limit int) ([]domain.WinnerEntry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	if s.board != nil {
		entries, err := s.board.TopWinners(ctx, limit)
		if err == nil {
			s.fillUsernames(ctx, entries)
			return entries, nil
		}
		logger.FromContext(ctx).Warn(LogMsgRedisUnavailable, "error", err)
	}

	entries, err := s.spinLog.TopWinners(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFallbackErr, err)
	}
	return entries, nil
}

func (s *service) fillUsernames(ctx context.Context, entries []domain.WinnerEntry) {
	for i := range entries {
		if entries[i].Username != "" {
			continue
		}
		if p, err := s.players.GetPlayer(ctx, entries[i].PlayerID); err == nil {
			entries[i].Username = p.Username
		}
	}
}

// Recorder feeds settled spins into a WinnersBoard off the publisher's goroutine
type Recorder struct {
	board WinnersBoard
	pool  *worker.Pool
}

// NewRecorder creates a recorder that runs board writes on pool
func NewRecorder(board WinnersBoard, pool *worker.Pool) *Recorder {
	return &Recorder{board: board, pool: pool}
}

// Register subscribes to spin.completed
func (r *Recorder) Register(bus event.Bus) {
	bus.Subscribe(domain.EventTypeSpinCompleted, r.HandleSpinCompleted)
}

// HandleSpinCompleted queues the spin's winnings for the board
func (r *Recorder) HandleSpinCompleted(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[domain.SpinCompletedPayload](evt.Payload)
	if err != nil {
		return err
	}
	if p.TotalWinnings <= 0 {
		return nil
	}

	queued := r.pool.TryEnqueue(worker.JobFunc(func(ctx context.Context) error {
		if err := r.board.RecordWin(ctx, p.PlayerID, p.TotalWinnings); err != nil {
			logger.FromContext(ctx).Error(LogMsgRecordWinFailed, "player_id", p.PlayerID, "error", err)
			return err
		}
		return nil
	}))
	if !queued {
		logger.FromContext(ctx).Warn(LogMsgRecordQueueFull, "player_id", p.PlayerID)
	}
	return nil
}
