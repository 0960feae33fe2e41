// Package health contiene el service para health checks.
package health

import (
	"context"
	"net/url"
	"time"

	dto "github.com/dropDatabas3/usergate/internal/http/dto/health"
	"github.com/dropDatabas3/usergate/internal/observability/logger"
)

// HealthService define las operaciones de health check.
type HealthService interface {
	Check(ctx context.Context) dto.HealthResponse
}

// Deps contiene las dependencias del health service.
type Deps struct {
	Version     string
	UpstreamURL string
}

type healthService struct {
	deps Deps
	host string
}

// NewHealthService crea un nuevo service de health check.
func NewHealthService(deps Deps) HealthService {
	host := ""
	if u, err := url.Parse(deps.UpstreamURL); err == nil {
		host = u.Host
	}
	return &healthService{deps: deps, host: host}
}

// Check es un liveness: no llama al upstream, solo reporta a cuál apunta.
func (s *healthService) Check(ctx context.Context) dto.HealthResponse {
	logger.From(ctx).Debug("health check",
		logger.Layer("service"),
		logger.Component("health"),
		logger.Op("Check"),
	)
	return dto.HealthResponse{
		Status:    "ok",
		Version:   s.deps.Version,
		Upstream:  s.host,
		Timestamp: time.Now().UTC(),
	}
}
