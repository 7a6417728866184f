package leadquestion

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("lead capture question not found")

// Question is one ordered lead-capture prompt, optionally with a fixed
// choice list.
type Question struct {
	ID         uuid.UUID
	TenantID   uuid.UUID
	Question   string
	OrderIndex int
	Required   bool
	Choices    []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// UpdateParams carries a partial update; nil fields are left untouched.
type UpdateParams struct {
	Question   *string
	OrderIndex *int
	Required   *bool
	Choices    *[]string
}

type Repository interface {
	// List returns questions ordered by order_index.
	List(ctx context.Context) ([]*Question, error)
	Create(ctx context.Context, q *Question) error
	Update(ctx context.Context, id uuid.UUID, params *UpdateParams) (*Question, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
