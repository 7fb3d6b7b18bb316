package loaders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/SkylineKAI/platform-api/internal/types"
)

const subscriptionColumns = `id, business_id, plan, status, credits_total, credits_used, period_start, period_end`

func (c *PostgresClient) CreateSubscription(ctx context.Context, businessID, plan, status string, creditsTotal int, periodEnd time.Time) (*types.Subscription, error) {
	var s types.Subscription
	err := c.pool.QueryRow(ctx, `
		INSERT INTO subscriptions (business_id, plan, status, credits_total, credits_used, period_end)
		VALUES ($1, $2, $3, $4, 0, $5)
		RETURNING `+subscriptionColumns,
		businessID, plan, status, creditsTotal, periodEnd,
	).Scan(&s.ID, &s.BusinessID, &s.Plan, &s.Status, &s.CreditsTotal, &s.CreditsUsed, &s.PeriodStart, &s.PeriodEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}
	return &s, nil
}

func (c *PostgresClient) GetSubscriptionByBusiness(ctx context.Context, businessID string) (*types.Subscription, error) {
	var s types.Subscription
	err := c.pool.QueryRow(ctx,
		`SELECT `+subscriptionColumns+` FROM subscriptions WHERE business_id = $1`, businessID,
	).Scan(&s.ID, &s.BusinessID, &s.Plan, &s.Status, &s.CreditsTotal, &s.CreditsUsed, &s.PeriodStart, &s.PeriodEnd)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query subscription: %w", err)
	}
	return &s, nil
}

// IncrementCreditsUsed debits one credit for the business in a single
// UPDATE so concurrent webhook deliveries cannot lose increments.
// A business without a subscription row is a no-op, matching the
// unenforced nature of the credit ledger.
func (c *PostgresClient) IncrementCreditsUsed(ctx context.Context, businessID string) error {
	_, err := c.pool.Exec(ctx,
		`UPDATE subscriptions SET credits_used = credits_used + 1 WHERE business_id = $1`, businessID)
	if err != nil {
		return fmt.Errorf("failed to increment credits: %w", err)
	}
	return nil
}
