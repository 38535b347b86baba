package client

import "context"

type Repository interface {
	Create(ctx context.Context, c *Client) error
	GetByID(ctx context.Context, id uint64) (*Client, error)
	GetByClientID(ctx context.Context, clientID string) (*Client, error)
}
