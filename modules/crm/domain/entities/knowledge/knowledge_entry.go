package knowledge

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("knowledge entry not found")

type Entry struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type UpdateParams struct {
	Title   *string
	Content *string
}

type Repository interface {
	List(ctx context.Context) ([]*Entry, error)
	Create(ctx context.Context, e *Entry) error
	Update(ctx context.Context, id uuid.UUID, params *UpdateParams) (*Entry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
