package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/ringdesk/ringdesk/modules/crm/domain/entities/knowledge"
	"github.com/ringdesk/ringdesk/pkg/eventbus"
)

type KnowledgeService struct {
	repo      knowledge.Repository
	publisher eventbus.EventBus
}

func NewKnowledgeService(repo knowledge.Repository, publisher eventbus.EventBus) *KnowledgeService {
	return &KnowledgeService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *KnowledgeService) List(ctx context.Context) ([]*knowledge.Entry, error) {
	return s.repo.List(ctx)
}

func (s *KnowledgeService) Create(ctx context.Context, e *knowledge.Entry) error {
	if err := s.repo.Create(ctx, e); err != nil {
		return err
	}
	s.publisher.Publish(&KnowledgeEntryCreatedEvent{Result: *e})
	return nil
}

func (s *KnowledgeService) Update(ctx context.Context, id uuid.UUID, params *knowledge.UpdateParams) (*knowledge.Entry, error) {
	updated, err := s.repo.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(&KnowledgeEntryUpdatedEvent{Result: *updated})
	return updated, nil
}

func (s *KnowledgeService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(&KnowledgeEntryDeletedEvent{ID: id})
	return nil
}
