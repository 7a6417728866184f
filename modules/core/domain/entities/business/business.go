package business

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a lookup matches no business row.
var ErrNotFound = errors.New("business not found")

// Business is the tenant root. Every other entity is scoped by its id.
type Business struct {
	ID                      uuid.UUID
	Name                    string
	Email                   string
	NotificationPhoneNumber string
	TwilioPhoneNumber       string
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Business, error)
	// First returns the oldest business row, used as the demo-mode fallback.
	First(ctx context.Context) (*Business, error)
	GetByTwilioNumber(ctx context.Context, number string) (*Business, error)
	UpdateNotificationPhone(ctx context.Context, id uuid.UUID, phone string) error
	Create(ctx context.Context, b *Business) error
}
