package core

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/SkylineKAI/platform-api/internal/loaders"
	"github.com/SkylineKAI/platform-api/internal/utils"
)

// TurnStore persists conversation turns; implemented by loaders.PostgresClient.
type TurnStore interface {
	AppendConversationTurns(ctx context.Context, turns []loaders.ConversationTurn) error
}

const (
	defaultTurnBatchSize   = 200
	defaultFlushInterval   = 500 * time.Millisecond
	defaultChannelCapacity = 5000
	defaultFlushTimeout    = 5 * time.Second
	defaultFallbackTimeout = 3 * time.Second
)

// ConversationSaver appends chat turns to session transcripts off the
// request path. Turns are buffered and flushed in batches; on shutdown
// the channel is drained before the goroutine exits.
type ConversationSaver struct {
	store         TurnStore
	ch            chan loaders.ConversationTurn
	batchSize     int
	flushInterval time.Duration
	stopCh        chan struct{}
	stoppedCh     chan struct{}
}

func NewConversationSaver(store TurnStore) *ConversationSaver {
	s := &ConversationSaver{
		store:         store,
		ch:            make(chan loaders.ConversationTurn, defaultChannelCapacity),
		batchSize:     defaultTurnBatchSize,
		flushInterval: defaultFlushInterval,
		stopCh:        make(chan struct{}),
		stoppedCh:     make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *ConversationSaver) run() {
	defer close(s.stoppedCh)
	batch := make([]loaders.ConversationTurn, 0, s.batchSize)
	ticker := time.NewTicker(s.flushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), defaultFlushTimeout)
		defer cancel()
		if err := s.store.AppendConversationTurns(ctx, batch); err != nil {
			utils.Zlog.Error("Failed to flush conversation turns", zap.Error(err), zap.Int("count", len(batch)))
			// Best-effort: retry once
			if err2 := s.store.AppendConversationTurns(ctx, batch); err2 != nil {
				utils.Zlog.Error("Retry failed for conversation turns", zap.Error(err2), zap.Int("count", len(batch)))
			}
		}
		batch = batch[:0]
	}

	for {
		select {
		case turn := <-s.ch:
			batch = append(batch, turn)
			if len(batch) >= s.batchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-s.stopCh:
			for {
				select {
				case turn := <-s.ch:
					batch = append(batch, turn)
					if len(batch) >= s.batchSize {
						flush()
					}
				default:
					flush()
					return
				}
			}
		}
	}
}

// Save enqueues turns without blocking the request. When the queue is
// full the turn is written directly in its own goroutine instead of
// being dropped.
func (s *ConversationSaver) Save(turns ...loaders.ConversationTurn) {
	for _, turn := range turns {
		if turn.CreatedAt.IsZero() {
			turn.CreatedAt = time.Now().UTC()
		}
		select {
		case s.ch <- turn:
		default:
			go func(t loaders.ConversationTurn) {
				ctx, cancel := context.WithTimeout(context.Background(), defaultFallbackTimeout)
				defer cancel()
				_ = s.store.AppendConversationTurns(ctx, []loaders.ConversationTurn{t})
			}(turn)
		}
	}
}

// Stop drains pending turns and waits for the worker to exit.
func (s *ConversationSaver) Stop() {
	close(s.stopCh)
	<-s.stoppedCh
}
