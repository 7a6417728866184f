package services

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/ringdesk/ringdesk/modules/core/domain/entities/business"
	"github.com/ringdesk/ringdesk/pkg/composables"
)

const (
	BusinessIDQueryParam = "businessId"
	BusinessIDHeader     = "x-business-id"
	BusinessIDCookie     = "businessId"
)

// TenantResolver maps an inbound request to exactly one business, or none.
//
// Signals are evaluated in strict priority order: query parameter, header,
// cookie, configured default, and finally the oldest business row (demo
// mode). A candidate that parses but matches no row falls through to the
// next signal; the demo fallback is unconditional.
type TenantResolver struct {
	repo              business.Repository
	defaultBusinessID string
}

func NewTenantResolver(repo business.Repository, defaultBusinessID string) *TenantResolver {
	return &TenantResolver{
		repo:              repo,
		defaultBusinessID: defaultBusinessID,
	}
}

// Resolve returns the tenant the request belongs to, or (nil, nil) when no
// business exists at all. The request is optional; without one only the
// configured default and the demo fallback are consulted. Read-only, no side
// effects.
func (s *TenantResolver) Resolve(ctx context.Context, r *http.Request) (*composables.Tenant, error) {
	for _, candidate := range s.candidates(r) {
		id, err := uuid.Parse(candidate)
		if err != nil {
			continue
		}
		b, err := s.repo.GetByID(ctx, id)
		if errors.Is(err, business.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return tenantOf(b), nil
	}

	b, err := s.repo.First(ctx)
	if errors.Is(err, business.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return tenantOf(b), nil
}

func (s *TenantResolver) candidates(r *http.Request) []string {
	candidates := make([]string, 0, 4)
	if r != nil {
		if v := strings.TrimSpace(r.URL.Query().Get(BusinessIDQueryParam)); v != "" {
			candidates = append(candidates, v)
		}
		if v := strings.TrimSpace(r.Header.Get(BusinessIDHeader)); v != "" {
			candidates = append(candidates, v)
		}
		if v, ok := composables.UseCookie(r, BusinessIDCookie); ok {
			candidates = append(candidates, strings.TrimSpace(v))
		}
	}
	if s.defaultBusinessID != "" {
		candidates = append(candidates, s.defaultBusinessID)
	}
	return candidates
}

func tenantOf(b *business.Business) *composables.Tenant {
	return &composables.Tenant{
		ID:    b.ID,
		Name:  b.Name,
		Email: b.Email,
	}
}
