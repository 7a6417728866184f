package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/ringdesk/ringdesk/modules/crm/domain/entities/client"
	"github.com/ringdesk/ringdesk/modules/crm/services"
	"github.com/ringdesk/ringdesk/pkg/application"
	"github.com/ringdesk/ringdesk/pkg/httpapi"
)

// ClientsController serves the client list with its dashboard counters.
type ClientsController struct {
	app           application.Application
	clientService *services.ClientService
	basePath      string
}

func NewClientsController(app application.Application) application.Controller {
	return &ClientsController{
		app:           app,
		clientService: app.Service(services.ClientService{}).(*services.ClientService),
		basePath:      "/api/clients",
	}
}

func (c *ClientsController) Key() string {
	return c.basePath
}

func (c *ClientsController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Create).Methods(http.MethodPost)
}

type projectResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type clientResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email,omitempty"`
	Phone     string            `json:"phone,omitempty"`
	Projects  []projectResponse `json:"projects"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

type clientListResponse struct {
	Clients []clientResponse        `json:"clients"`
	Stats   *services.DashboardStats `json:"stats"`
}

type createClientRequest struct {
	Name  *string `json:"name" validate:"required"`
	Email string  `json:"email"`
	Phone string  `json:"phone"`
}

func toClientResponse(c *client.Client) clientResponse {
	projects := make([]projectResponse, 0, len(c.Projects))
	for _, p := range c.Projects {
		projects = append(projects, projectResponse{
			ID:        p.ID.String(),
			Name:      p.Name,
			Status:    p.Status,
			CreatedAt: p.CreatedAt,
		})
	}
	return clientResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Projects:  projects,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (c *ClientsController) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireTenant(w, r); !ok {
		return
	}
	clients, stats, err := c.clientService.ListDashboard(r.Context(), nil)
	if err != nil {
		writeInternalError(w, r, "clients.list", err)
		return
	}
	resp := clientListResponse{
		Clients: make([]clientResponse, 0, len(clients)),
		Stats:   stats,
	}
	for _, cl := range clients {
		resp.Clients = append(resp.Clients, toClientResponse(cl))
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, &resp)
}

func (c *ClientsController) Create(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireTenant(w, r); !ok {
		return
	}
	var payload createClientRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeInvalidPayload(w, "malformed JSON body")
		return
	}
	if err := validate.Struct(&payload); err != nil {
		writeInvalidPayload(w, "name is required")
		return
	}
	entity := &client.Client{
		Name:  *payload.Name,
		Email: payload.Email,
		Phone: payload.Phone,
	}
	if err := c.clientService.Create(r.Context(), entity); err != nil {
		writeInternalError(w, r, "clients.create", err)
		return
	}
	resp := toClientResponse(entity)
	_ = httpapi.WriteJSON(w, http.StatusCreated, &resp)
}
