package calllog

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CallLog is append-only; rows exist only for the analytics export.
type CallLog struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	CallSid   string
	From      string
	To        string
	Status    string
	Direction string
	CreatedAt time.Time
}

type FindParams struct {
	Limit  int
	Offset int
}

type Repository interface {
	List(ctx context.Context, params *FindParams) ([]*CallLog, error)
	Create(ctx context.Context, log *CallLog) error
}
