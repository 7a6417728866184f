package client

import (
	"context"
	"io"
	"net/http"
	"time"
)

type Project struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type BusinessClient struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Projects  []Project `json:"projects"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type DashboardStats struct {
	ClientsTotal   int64 `json:"clientsTotal"`
	ClientsNewWeek int64 `json:"clientsNewWeek"`
	LeadsQualified int64 `json:"leadsQualified"`
}

type ClientList struct {
	Clients []BusinessClient `json:"clients"`
	Stats   DashboardStats   `json:"stats"`
}

type CreateClientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type Lead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Status    string    `json:"status"`
	Priority  string    `json:"priority"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateLeadRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	Status   string `json:"status,omitempty"`
	Priority string `json:"priority,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

type UpdateLeadRequest struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Status   *string `json:"status,omitempty"`
	Priority *string `json:"priority,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

type LeadQuestion struct {
	ID         string    `json:"id"`
	Question   string    `json:"question"`
	OrderIndex int       `json:"orderIndex"`
	Required   bool      `json:"required"`
	Choices    []string  `json:"choices"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type CreateLeadQuestionRequest struct {
	Question   string   `json:"question"`
	OrderIndex int      `json:"orderIndex"`
	Required   bool     `json:"required"`
	Choices    []string `json:"choices,omitempty"`
}

type UpdateLeadQuestionRequest struct {
	Question   *string   `json:"question,omitempty"`
	OrderIndex *int      `json:"orderIndex,omitempty"`
	Required   *bool     `json:"required,omitempty"`
	Choices    *[]string `json:"choices,omitempty"`
}

type KnowledgeEntry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateKnowledgeEntryRequest struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content"`
}

type UpdateKnowledgeEntryRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

type NotificationPhone struct {
	PhoneNumber string `json:"phoneNumber"`
}

type Identity struct {
	Authenticated bool   `json:"authenticated"`
	BusinessID    string `json:"businessId,omitempty"`
	Name          string `json:"name,omitempty"`
	Email         string `json:"email,omitempty"`
}

type HealthStatus struct {
	OK         bool `json:"ok"`
	Twilio     bool `json:"twilio"`
	OpenAI     bool `json:"openai"`
	ElevenLabs bool `json:"elevenLabs"`
}

func (c *Client) ListClients(ctx context.Context) (*ClientList, error) {
	var out ClientList
	if err := c.do(ctx, http.MethodGet, "/api/clients", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateClient(ctx context.Context, req *CreateClientRequest) (*BusinessClient, error) {
	var out BusinessClient
	if err := c.do(ctx, http.MethodPost, "/api/clients", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListLeads(ctx context.Context) ([]Lead, error) {
	var out []Lead
	if err := c.do(ctx, http.MethodGet, "/api/leads", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateLead(ctx context.Context, req *CreateLeadRequest) (*Lead, error) {
	var out Lead
	if err := c.do(ctx, http.MethodPost, "/api/leads", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateLead(ctx context.Context, id string, req *UpdateLeadRequest) (*Lead, error) {
	var out Lead
	if err := c.do(ctx, http.MethodPut, "/api/leads/"+id, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteLead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/leads/"+id, nil, nil)
}

func (c *Client) ListLeadQuestions(ctx context.Context) ([]LeadQuestion, error) {
	var out []LeadQuestion
	if err := c.do(ctx, http.MethodGet, "/api/lead-questions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateLeadQuestion(ctx context.Context, req *CreateLeadQuestionRequest) (*LeadQuestion, error) {
	var out LeadQuestion
	if err := c.do(ctx, http.MethodPost, "/api/lead-questions", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateLeadQuestion(ctx context.Context, id string, req *UpdateLeadQuestionRequest) (*LeadQuestion, error) {
	var out LeadQuestion
	if err := c.do(ctx, http.MethodPut, "/api/lead-questions/"+id, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteLeadQuestion(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/lead-questions/"+id, nil, nil)
}

func (c *Client) ListKnowledgeEntries(ctx context.Context) ([]KnowledgeEntry, error) {
	var out []KnowledgeEntry
	if err := c.do(ctx, http.MethodGet, "/api/knowledge-base", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateKnowledgeEntry(ctx context.Context, req *CreateKnowledgeEntryRequest) (*KnowledgeEntry, error) {
	var out KnowledgeEntry
	if err := c.do(ctx, http.MethodPost, "/api/knowledge-base", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateKnowledgeEntry(ctx context.Context, id string, req *UpdateKnowledgeEntryRequest) (*KnowledgeEntry, error) {
	var out KnowledgeEntry
	if err := c.do(ctx, http.MethodPut, "/api/knowledge-base/"+id, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteKnowledgeEntry(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/knowledge-base/"+id, nil, nil)
}

func (c *Client) NotificationPhone(ctx context.Context) (string, error) {
	var out NotificationPhone
	if err := c.do(ctx, http.MethodGet, "/api/business/notification-phone", nil, &out); err != nil {
		return "", err
	}
	return out.PhoneNumber, nil
}

func (c *Client) SetNotificationPhone(ctx context.Context, phone string) error {
	return c.do(ctx, http.MethodPut, "/api/business/notification-phone", &NotificationPhone{PhoneNumber: phone}, nil)
}

func (c *Client) Me(ctx context.Context) (*Identity, error) {
	var out Identity
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var out HealthStatus
	if err := c.do(ctx, http.MethodGet, "/api/healthz", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AnalyticsReport returns the raw CSV export.
func (c *Client) AnalyticsReport(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/analytics/report", nil)
	if err != nil {
		return nil, err
	}
	if c.businessID != "" {
		req.Header.Set(businessIDHeader, c.businessID)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, decodeAPIError(resp)
	}
	return io.ReadAll(resp.Body)
}
