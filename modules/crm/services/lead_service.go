package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/ringdesk/ringdesk/modules/crm/domain/entities/lead"
	"github.com/ringdesk/ringdesk/pkg/eventbus"
)

type LeadService struct {
	repo      lead.Repository
	publisher eventbus.EventBus
}

func NewLeadService(repo lead.Repository, publisher eventbus.EventBus) *LeadService {
	return &LeadService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *LeadService) List(ctx context.Context, params *lead.FindParams) ([]*lead.Lead, error) {
	return s.repo.List(ctx, params)
}

func (s *LeadService) GetByID(ctx context.Context, id uuid.UUID) (*lead.Lead, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *LeadService) Create(ctx context.Context, l *lead.Lead) error {
	if err := s.repo.Create(ctx, l); err != nil {
		return err
	}
	s.publisher.Publish(&LeadCreatedEvent{Result: *l})
	return nil
}

func (s *LeadService) Update(ctx context.Context, id uuid.UUID, params *lead.UpdateParams) (*lead.Lead, error) {
	updated, err := s.repo.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(&LeadUpdatedEvent{Result: *updated})
	return updated, nil
}

func (s *LeadService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(&LeadDeletedEvent{ID: id})
	return nil
}
