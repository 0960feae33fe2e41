// Package health contiene el controller para health checks.
package health

import (
	"net/http"

	"github.com/dropDatabas3/usergate/internal/http/helpers"
	svc "github.com/dropDatabas3/usergate/internal/http/services/health"
	"github.com/dropDatabas3/usergate/internal/observability/logger"
)

// HealthController maneja las rutas de health check.
type HealthController struct {
	service svc.HealthService
}

// NewHealthController crea un nuevo controller de health check.
func NewHealthController(service svc.HealthService) *HealthController {
	return &HealthController{service: service}
}

// Readyz maneja GET /readyz
func (c *HealthController) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("HealthController.Readyz"))

	response := c.service.Check(ctx)
	if response.Version != "" {
		w.Header().Set("X-Service-Version", response.Version)
	}

	log.Debug("health check completed", logger.String("status", response.Status))
	helpers.WriteJSON(w, http.StatusOK, response)
}
