package lead

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("lead not found")

type Status string

const (
	StatusNew       Status = "NEW"
	StatusContacted Status = "CONTACTED"
	StatusQualified Status = "QUALIFIED"
	StatusLost      Status = "LOST"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusQualified, StatusLost:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityNormal Priority = "NORMAL"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type Lead struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	Name      string
	Phone     string
	Status    Status
	Priority  Priority
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type FindParams struct {
	Status   Status
	Priority Priority
	Limit    int
	Offset   int
}

// UpdateParams carries a partial update; nil fields are left untouched.
type UpdateParams struct {
	Name     *string
	Phone    *string
	Status   *Status
	Priority *Priority
	Notes    *string
}

type Repository interface {
	List(ctx context.Context, params *FindParams) ([]*Lead, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Lead, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)
	Create(ctx context.Context, l *Lead) error
	Update(ctx context.Context, id uuid.UUID, params *UpdateParams) (*Lead, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
