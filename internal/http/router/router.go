// Package router arma el árbol de rutas chi con el middleware chain común.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dropDatabas3/usergate/internal/http/controllers"
	httperrors "github.com/dropDatabas3/usergate/internal/http/errors"
	mw "github.com/dropDatabas3/usergate/internal/http/middlewares"
	"github.com/dropDatabas3/usergate/internal/metrics"
)

// Deps contiene las dependencias del router.
type Deps struct {
	Controllers *controllers.Controllers

	// CORSAllowedOrigins: "*" acepta cualquier origen.
	CORSAllowedOrigins []string
	Production         bool

	// MetricsPath vacío = no se expone /metrics.
	MetricsPath    string
	MetricsHandler http.Handler
}

// New crea el handler raíz.
//
// Orden: recover -> request id -> logging -> metrics -> security -> cors -> rutas.
func New(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		mw.WithRecover(),
		mw.WithRequestID(),
		mw.WithLogging(),
		metrics.WithHTTP,
		mw.WithSecurityHeaders(deps.Production),
		mw.WithCORS(deps.CORSAllowedOrigins),
	)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httperrors.WriteError(w, httperrors.ErrRouteNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httperrors.WriteError(w, httperrors.ErrMethodNotAllowed)
	})

	if c := deps.Controllers; c != nil {
		if c.Health != nil {
			RegisterHealthRoutes(r, c.Health)
		}
		if c.Users != nil {
			RegisterUserRoutes(r, c.Users)
		}
	}

	if deps.MetricsPath != "" && deps.MetricsHandler != nil {
		r.Method(http.MethodGet, deps.MetricsPath, deps.MetricsHandler)
	}

	return r
}
