package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/ringdesk/ringdesk/modules/crm/domain/entities/leadquestion"
	"github.com/ringdesk/ringdesk/pkg/eventbus"
)

type LeadQuestionService struct {
	repo      leadquestion.Repository
	publisher eventbus.EventBus
}

func NewLeadQuestionService(repo leadquestion.Repository, publisher eventbus.EventBus) *LeadQuestionService {
	return &LeadQuestionService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *LeadQuestionService) List(ctx context.Context) ([]*leadquestion.Question, error) {
	return s.repo.List(ctx)
}

func (s *LeadQuestionService) Create(ctx context.Context, q *leadquestion.Question) error {
	if err := s.repo.Create(ctx, q); err != nil {
		return err
	}
	s.publisher.Publish(&LeadQuestionCreatedEvent{Result: *q})
	return nil
}

func (s *LeadQuestionService) Update(ctx context.Context, id uuid.UUID, params *leadquestion.UpdateParams) (*leadquestion.Question, error) {
	updated, err := s.repo.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(&LeadQuestionUpdatedEvent{Result: *updated})
	return updated, nil
}

func (s *LeadQuestionService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(&LeadQuestionDeletedEvent{ID: id})
	return nil
}
