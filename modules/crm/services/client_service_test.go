package services

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ringdesk/ringdesk/modules/crm/domain/entities/client"
	"github.com/ringdesk/ringdesk/modules/crm/domain/entities/lead"
	"github.com/ringdesk/ringdesk/pkg/eventbus"
)

type stubClientRepo struct {
	clients  []*client.Client
	countErr error
}

func (s *stubClientRepo) List(_ context.Context, _ *client.FindParams) ([]*client.Client, error) {
	return s.clients, nil
}

func (s *stubClientRepo) GetByID(_ context.Context, _ uuid.UUID) (*client.Client, error) {
	return nil, client.ErrNotFound
}

func (s *stubClientRepo) Count(_ context.Context) (int64, error) {
	if s.countErr != nil {
		return 0, s.countErr
	}
	return int64(len(s.clients)), nil
}

func (s *stubClientRepo) CountCreatedSince(_ context.Context, since time.Time) (int64, error) {
	var n int64
	for _, c := range s.clients {
		if !c.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (s *stubClientRepo) Create(_ context.Context, c *client.Client) error {
	s.clients = append(s.clients, c)
	return nil
}

func (s *stubClientRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return nil
}

type stubLeadRepo struct {
	qualified int64
}

func (s *stubLeadRepo) List(_ context.Context, _ *lead.FindParams) ([]*lead.Lead, error) {
	return nil, nil
}

func (s *stubLeadRepo) GetByID(_ context.Context, _ uuid.UUID) (*lead.Lead, error) {
	return nil, lead.ErrNotFound
}

func (s *stubLeadRepo) CountByStatus(_ context.Context, status lead.Status) (int64, error) {
	if status == lead.StatusQualified {
		return s.qualified, nil
	}
	return 0, nil
}

func (s *stubLeadRepo) Create(_ context.Context, _ *lead.Lead) error { return nil }

func (s *stubLeadRepo) Update(_ context.Context, _ uuid.UUID, _ *lead.UpdateParams) (*lead.Lead, error) {
	return nil, lead.ErrNotFound
}

func (s *stubLeadRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func quietBus() eventbus.EventBus {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return eventbus.NewEventPublisher(logger)
}

func TestClientService_ListDashboard(t *testing.T) {
	now := time.Now()
	clients := &stubClientRepo{clients: []*client.Client{
		{ID: uuid.New(), CreatedAt: now.AddDate(0, 0, -30)},
		{ID: uuid.New(), CreatedAt: now.AddDate(0, 0, -3)},
		{ID: uuid.New(), CreatedAt: now.AddDate(0, 0, -1)},
	}}
	service := NewClientService(clients, &stubLeadRepo{qualified: 4}, quietBus())

	got, stats, err := service.ListDashboard(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.EqualValues(t, 3, stats.ClientsTotal)
	assert.EqualValues(t, 2, stats.ClientsNewWeek)
	assert.EqualValues(t, 4, stats.LeadsQualified)
}

func TestClientService_ListDashboard_AnyFailureFailsWhole(t *testing.T) {
	clients := &stubClientRepo{countErr: errors.New("connection reset")}
	service := NewClientService(clients, &stubLeadRepo{}, quietBus())

	_, _, err := service.ListDashboard(context.Background(), nil)
	require.Error(t, err)
}
