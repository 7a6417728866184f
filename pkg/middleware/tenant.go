package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ringdesk/ringdesk/pkg/composables"
)

// TenantResolver maps an inbound request to the business it belongs to.
// A nil tenant with a nil error means no business exists at all.
type TenantResolver interface {
	Resolve(ctx context.Context, r *http.Request) (*composables.Tenant, error)
}

// WithTenant resolves the request's tenant and stores it in context. A
// request that resolves to nothing passes through untouched; handlers that
// require a tenant answer 404 themselves.
func WithTenant(resolver TenantResolver) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tenant, err := resolver.Resolve(r.Context(), r)
			if err != nil {
				logger := composables.UseLogger(r.Context())
				logger.WithError(err).Warn("tenant resolution failed")
				next.ServeHTTP(w, r)
				return
			}
			if tenant == nil {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(composables.WithTenant(r.Context(), tenant)))
		})
	}
}
