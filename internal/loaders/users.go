package loaders

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/SkylineKAI/platform-api/internal/types"
)

func (c *PostgresClient) CreateUser(ctx context.Context, email, passwordHash, name string) (*types.User, error) {
	var u types.User
	err := c.pool.QueryRow(ctx, `
		INSERT INTO users (email, password, name)
		VALUES ($1, $2, $3)
		RETURNING id, email, password, name, created_at`,
		email, passwordHash, name,
	).Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &u, nil
}

func (c *PostgresClient) GetUser(ctx context.Context, id string) (*types.User, error) {
	return c.scanUser(ctx, `SELECT id, email, password, name, created_at FROM users WHERE id = $1`, id)
}

func (c *PostgresClient) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	return c.scanUser(ctx, `SELECT id, email, password, name, created_at FROM users WHERE email = $1`, email)
}

func (c *PostgresClient) scanUser(ctx context.Context, query string, arg any) (*types.User, error) {
	var u types.User
	err := c.pool.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &u, nil
}
