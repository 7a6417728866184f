package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ringdesk/ringdesk/modules/crm/domain/entities/client"
	"github.com/ringdesk/ringdesk/modules/crm/domain/entities/lead"
	"github.com/ringdesk/ringdesk/pkg/eventbus"
)

// newClientWindow is the lookback used for the "new this week" counter
// on the clients dashboard.
const newClientWindow = 7 * 24 * time.Hour

// DashboardStats are the headline counters shown alongside the client
// list.
type DashboardStats struct {
	ClientsTotal   int64 `json:"clientsTotal"`
	ClientsNewWeek int64 `json:"clientsNewWeek"`
	LeadsQualified int64 `json:"leadsQualified"`
}

type ClientService struct {
	clients   client.Repository
	leads     lead.Repository
	publisher eventbus.EventBus
}

func NewClientService(
	clients client.Repository,
	leads lead.Repository,
	publisher eventbus.EventBus,
) *ClientService {
	return &ClientService{
		clients:   clients,
		leads:     leads,
		publisher: publisher,
	}
}

func (s *ClientService) List(ctx context.Context, params *client.FindParams) ([]*client.Client, error) {
	return s.clients.List(ctx, params)
}

func (s *ClientService) GetByID(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	return s.clients.GetByID(ctx, id)
}

// ListDashboard loads the client list and the dashboard counters in
// parallel. The queries run against the shared pool, so they are safe
// to issue concurrently within one request.
func (s *ClientService) ListDashboard(ctx context.Context, params *client.FindParams) ([]*client.Client, *DashboardStats, error) {
	var (
		clients []*client.Client
		stats   DashboardStats
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		clients, err = s.clients.List(ctx, params)
		return err
	})
	g.Go(func() error {
		var err error
		stats.ClientsTotal, err = s.clients.Count(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.ClientsNewWeek, err = s.clients.CountCreatedSince(ctx, time.Now().Add(-newClientWindow))
		return err
	})
	g.Go(func() error {
		var err error
		stats.LeadsQualified, err = s.leads.CountByStatus(ctx, lead.StatusQualified)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return clients, &stats, nil
}

func (s *ClientService) Create(ctx context.Context, c *client.Client) error {
	if err := s.clients.Create(ctx, c); err != nil {
		return err
	}
	s.publisher.Publish(&ClientCreatedEvent{Result: *c})
	return nil
}

func (s *ClientService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.clients.Delete(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(&ClientDeletedEvent{ID: id})
	return nil
}
