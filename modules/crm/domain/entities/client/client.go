package client

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("client not found")

type Client struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	Name      string
	Email     string
	Phone     string
	Projects  []*Project
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Project struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	ClientID  uuid.UUID
	Name      string
	Status    string
	CreatedAt time.Time
}

type FindParams struct {
	Limit  int
	Offset int
}

type Repository interface {
	// List returns clients with their projects, newest first.
	List(ctx context.Context, params *FindParams) ([]*Client, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Client, error)
	Count(ctx context.Context) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
	Create(ctx context.Context, c *Client) error
	Delete(ctx context.Context, id uuid.UUID) error
}
