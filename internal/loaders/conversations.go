package loaders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/SkylineKAI/platform-api/internal/types"
)

// ConversationTurn is a single message appended to a session transcript.
type ConversationTurn struct {
	BusinessID string    `json:"-"`
	SessionID  string    `json:"-"`
	Channel    string    `json:"-"`
	Role       string    `json:"role"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"timestamp"`
}

// AppendConversationTurns appends turns to their per-session transcripts,
// creating the conversation row on first write. Turns are applied in one
// pgx batch round trip.
func (c *PostgresClient) AppendConversationTurns(ctx context.Context, turns []ConversationTurn) error {
	if len(turns) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, turn := range turns {
		entry, err := json.Marshal([]ConversationTurn{turn})
		if err != nil {
			return fmt.Errorf("failed to marshal conversation turn: %w", err)
		}
		batch.Queue(`
			INSERT INTO conversations (business_id, session_id, channel, messages)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (business_id, session_id) DO UPDATE SET
				messages   = (conversations.messages::jsonb || EXCLUDED.messages::jsonb)::text,
				updated_at = now()`,
			turn.BusinessID, turn.SessionID, turn.Channel, string(entry))
	}

	results := c.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range turns {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to append conversation turn: %w", err)
		}
	}
	return nil
}

func (c *PostgresClient) GetConversation(ctx context.Context, businessID, sessionID string) (*types.Conversation, error) {
	var conv types.Conversation
	err := c.pool.QueryRow(ctx, `
		SELECT id, business_id, session_id, channel, COALESCE(external_thread_id, ''), messages, created_at, updated_at
		FROM conversations WHERE business_id = $1 AND session_id = $2`,
		businessID, sessionID,
	).Scan(&conv.ID, &conv.BusinessID, &conv.SessionID, &conv.Channel, &conv.ExternalThreadID,
		&conv.Messages, &conv.CreatedAt, &conv.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query conversation: %w", err)
	}
	return &conv, nil
}
