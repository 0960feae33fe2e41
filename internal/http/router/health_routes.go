package router

import (
	"github.com/go-chi/chi/v5"

	ctrl "github.com/dropDatabas3/usergate/internal/http/controllers/health"
)

// RegisterHealthRoutes registra /readyz. Público.
func RegisterHealthRoutes(r chi.Router, c *ctrl.HealthController) {
	r.Get("/readyz", c.Readyz)
}
