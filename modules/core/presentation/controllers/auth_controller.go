package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ringdesk/ringdesk/pkg/application"
	"github.com/ringdesk/ringdesk/pkg/httpapi"
)

// AuthController echoes the resolved tenant identity. This is not credential
// verification; the authenticated flag only reports whether a tenant
// resolved.
type AuthController struct {
	app      application.Application
	basePath string
}

func NewAuthController(app application.Application) application.Controller {
	return &AuthController{
		app:      app,
		basePath: "/api/auth",
	}
}

func (c *AuthController) Key() string {
	return c.basePath
}

func (c *AuthController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("/me", c.Me).Methods(http.MethodGet)
}

type meResponse struct {
	Authenticated bool   `json:"authenticated"`
	BusinessID    string `json:"businessId,omitempty"`
	Name          string `json:"name,omitempty"`
	Email         string `json:"email,omitempty"`
}

func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	tenant, ok := requireTenant(w, r)
	if !ok {
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, &meResponse{
		Authenticated: true,
		BusinessID:    tenant.ID.String(),
		Name:          tenant.Name,
		Email:         tenant.Email,
	})
}
