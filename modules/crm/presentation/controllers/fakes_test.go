package controllers_test

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/ringdesk/ringdesk/modules/crm/domain/entities/calllog"
	"github.com/ringdesk/ringdesk/modules/crm/domain/entities/client"
	"github.com/ringdesk/ringdesk/modules/crm/domain/entities/knowledge"
	"github.com/ringdesk/ringdesk/modules/crm/domain/entities/lead"
	"github.com/ringdesk/ringdesk/modules/crm/domain/entities/leadquestion"
	"github.com/ringdesk/ringdesk/modules/crm/presentation/controllers"
	"github.com/ringdesk/ringdesk/modules/crm/services"
	"github.com/ringdesk/ringdesk/pkg/application"
	"github.com/ringdesk/ringdesk/pkg/composables"
	"github.com/ringdesk/ringdesk/pkg/eventbus"
)

type fakeClientRepo struct {
	clients []*client.Client
}

func (f *fakeClientRepo) List(_ context.Context, _ *client.FindParams) ([]*client.Client, error) {
	return f.clients, nil
}

func (f *fakeClientRepo) GetByID(_ context.Context, id uuid.UUID) (*client.Client, error) {
	for _, c := range f.clients {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, client.ErrNotFound
}

func (f *fakeClientRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.clients)), nil
}

func (f *fakeClientRepo) CountCreatedSince(_ context.Context, since time.Time) (int64, error) {
	var n int64
	for _, c := range f.clients {
		if !c.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (f *fakeClientRepo) Create(_ context.Context, c *client.Client) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	f.clients = append(f.clients, c)
	return nil
}

func (f *fakeClientRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, c := range f.clients {
		if c.ID == id {
			f.clients = append(f.clients[:i], f.clients[i+1:]...)
			return nil
		}
	}
	return client.ErrNotFound
}

type fakeLeadRepo struct {
	leads []*lead.Lead
}

func (f *fakeLeadRepo) List(_ context.Context, _ *lead.FindParams) ([]*lead.Lead, error) {
	return f.leads, nil
}

func (f *fakeLeadRepo) GetByID(_ context.Context, id uuid.UUID) (*lead.Lead, error) {
	for _, l := range f.leads {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, lead.ErrNotFound
}

func (f *fakeLeadRepo) CountByStatus(_ context.Context, status lead.Status) (int64, error) {
	var n int64
	for _, l := range f.leads {
		if l.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeLeadRepo) Create(_ context.Context, l *lead.Lead) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.Status == "" {
		l.Status = lead.StatusNew
	}
	if l.Priority == "" {
		l.Priority = lead.PriorityNormal
	}
	l.CreatedAt = time.Now()
	l.UpdatedAt = l.CreatedAt
	f.leads = append(f.leads, l)
	return nil
}

func (f *fakeLeadRepo) Update(_ context.Context, id uuid.UUID, params *lead.UpdateParams) (*lead.Lead, error) {
	for _, l := range f.leads {
		if l.ID != id {
			continue
		}
		if params.Name != nil {
			l.Name = *params.Name
		}
		if params.Phone != nil {
			l.Phone = *params.Phone
		}
		if params.Status != nil {
			l.Status = *params.Status
		}
		if params.Priority != nil {
			l.Priority = *params.Priority
		}
		if params.Notes != nil {
			l.Notes = *params.Notes
		}
		l.UpdatedAt = time.Now()
		return l, nil
	}
	return nil, lead.ErrNotFound
}

func (f *fakeLeadRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, l := range f.leads {
		if l.ID == id {
			f.leads = append(f.leads[:i], f.leads[i+1:]...)
			return nil
		}
	}
	return lead.ErrNotFound
}

type fakeCallLogRepo struct {
	logs []*calllog.CallLog
}

func (f *fakeCallLogRepo) List(_ context.Context, params *calllog.FindParams) ([]*calllog.CallLog, error) {
	logs := f.logs
	if params != nil && params.Limit > 0 && params.Limit < len(logs) {
		logs = logs[:params.Limit]
	}
	return logs, nil
}

func (f *fakeCallLogRepo) Create(_ context.Context, log *calllog.CallLog) error {
	f.logs = append(f.logs, log)
	return nil
}

type fakeQuestionRepo struct {
	questions []*leadquestion.Question
	failWith  error
}

func (f *fakeQuestionRepo) List(_ context.Context) ([]*leadquestion.Question, error) {
	return f.questions, nil
}

func (f *fakeQuestionRepo) Create(_ context.Context, q *leadquestion.Question) error {
	if f.failWith != nil {
		return f.failWith
	}
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	f.questions = append(f.questions, q)
	return nil
}

func (f *fakeQuestionRepo) Update(_ context.Context, id uuid.UUID, params *leadquestion.UpdateParams) (*leadquestion.Question, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, q := range f.questions {
		if q.ID != id {
			continue
		}
		if params.Question != nil {
			q.Question = *params.Question
		}
		if params.OrderIndex != nil {
			q.OrderIndex = *params.OrderIndex
		}
		if params.Required != nil {
			q.Required = *params.Required
		}
		if params.Choices != nil {
			q.Choices = *params.Choices
		}
		return q, nil
	}
	return nil, leadquestion.ErrNotFound
}

func (f *fakeQuestionRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.failWith != nil {
		return f.failWith
	}
	for i, q := range f.questions {
		if q.ID == id {
			f.questions = append(f.questions[:i], f.questions[i+1:]...)
			return nil
		}
	}
	return leadquestion.ErrNotFound
}

type fakeKnowledgeRepo struct {
	entries []*knowledge.Entry
}

func (f *fakeKnowledgeRepo) List(_ context.Context) ([]*knowledge.Entry, error) {
	return f.entries, nil
}

func (f *fakeKnowledgeRepo) Create(_ context.Context, e *knowledge.Entry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	f.entries = append(f.entries, e)
	return nil
}

func (f *fakeKnowledgeRepo) Update(_ context.Context, id uuid.UUID, params *knowledge.UpdateParams) (*knowledge.Entry, error) {
	for _, e := range f.entries {
		if e.ID != id {
			continue
		}
		if params.Title != nil {
			e.Title = *params.Title
		}
		if params.Content != nil {
			e.Content = *params.Content
		}
		return e, nil
	}
	return nil, knowledge.ErrNotFound
}

func (f *fakeKnowledgeRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, e := range f.entries {
		if e.ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return knowledge.ErrNotFound
}

type repos struct {
	clients   *fakeClientRepo
	leads     *fakeLeadRepo
	callLogs  *fakeCallLogRepo
	questions *fakeQuestionRepo
	knowledge *fakeKnowledgeRepo
}

func newRepos() *repos {
	return &repos{
		clients:   &fakeClientRepo{},
		leads:     &fakeLeadRepo{},
		callLogs:  &fakeCallLogRepo{},
		questions: &fakeQuestionRepo{},
		knowledge: &fakeKnowledgeRepo{},
	}
}

func newHandler(r *repos, tenant *composables.Tenant) http.Handler {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	app := application.New(&application.ApplicationOptions{
		EventBus: eventbus.NewEventPublisher(logger),
		Logger:   logger,
	})
	app.RegisterServices(
		services.NewClientService(r.clients, r.leads, app.EventPublisher()),
		services.NewLeadService(r.leads, app.EventPublisher()),
		services.NewCallLogService(r.callLogs),
		services.NewLeadQuestionService(r.questions, app.EventPublisher()),
		services.NewKnowledgeService(r.knowledge, app.EventPublisher()),
	)

	router := mux.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if tenant != nil {
				req = req.WithContext(composables.WithTenant(req.Context(), tenant))
			}
			next.ServeHTTP(w, req)
		})
	})
	for _, c := range []application.Controller{
		controllers.NewClientsController(app),
		controllers.NewLeadsController(app),
		controllers.NewLeadQuestionsController(app),
		controllers.NewKnowledgeBaseController(app),
		controllers.NewAnalyticsController(app),
	} {
		c.Register(router)
	}
	return router
}

func testTenant() *composables.Tenant {
	return &composables.Tenant{ID: uuid.New(), Name: "Acme"}
}
