package composables

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/ringdesk/ringdesk/pkg/constants"
)

var ErrNoTenantID = errors.New("no tenant id found in context")

// Tenant is the minimal identity of the business a request is scoped to.
type Tenant struct {
	ID    uuid.UUID
	Name  string
	Email string
}

func WithTenantID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, constants.TenantIDKey, id)
}

func UseTenantID(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctx.Value(constants.TenantIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, ErrNoTenantID
	}
	return id, nil
}

func WithTenant(ctx context.Context, t *Tenant) context.Context {
	ctx = context.WithValue(ctx, constants.BusinessKey, t)
	return WithTenantID(ctx, t.ID)
}

// UseTenant returns the resolved tenant identity, if any.
func UseTenant(ctx context.Context) (*Tenant, bool) {
	t, ok := ctx.Value(constants.BusinessKey).(*Tenant)
	return t, ok && t != nil
}
