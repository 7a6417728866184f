package services

import (
	"context"

	"github.com/ringdesk/ringdesk/modules/core/domain/entities/business"
	"github.com/ringdesk/ringdesk/pkg/composables"
	"github.com/ringdesk/ringdesk/pkg/eventbus"
)

type BusinessService struct {
	repo      business.Repository
	publisher eventbus.EventBus
}

func NewBusinessService(repo business.Repository, publisher eventbus.EventBus) *BusinessService {
	return &BusinessService{
		repo:      repo,
		publisher: publisher,
	}
}

// Current returns the business the request context is scoped to.
func (s *BusinessService) Current(ctx context.Context) (*business.Business, error) {
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, tenantID)
}

// NotificationPhone returns the stored notification phone, or an empty
// string when unset.
func (s *BusinessService) NotificationPhone(ctx context.Context) (string, error) {
	b, err := s.Current(ctx)
	if err != nil {
		return "", err
	}
	return b.NotificationPhoneNumber, nil
}

func (s *BusinessService) SetNotificationPhone(ctx context.Context, phone string) error {
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return err
	}
	if err := s.repo.UpdateNotificationPhone(ctx, tenantID, phone); err != nil {
		return err
	}
	s.publisher.Publish(&NotificationPhoneUpdatedEvent{
		BusinessID:  tenantID,
		PhoneNumber: phone,
	})
	return nil
}
