// Package services agrupa los services HTTP. Es el composition root:
// cada dominio vive en services/{dominio} con su propio Deps y Services.
//
//	svcs := services.New(services.Deps{Upstream: client, ...})
//	// svcs.Users.Provisioning, svcs.Users.Records, svcs.Health
package services

import (
	"time"

	"github.com/dropDatabas3/usergate/internal/http/services/health"
	"github.com/dropDatabas3/usergate/internal/http/services/users"
)

// Deps contiene las dependencias compartidas por todos los services.
type Deps struct {
	Upstream          users.Upstream
	UpstreamURL       string
	DefaultPictureURL string
	Version           string
	Now               func() time.Time
}

// Services agrupa todos los services por dominio.
type Services struct {
	Users  users.Services
	Health health.HealthService
}

// New crea el agregador de services.
func New(d Deps) Services {
	return Services{
		Users: users.NewServices(users.Deps{
			Upstream:          d.Upstream,
			DefaultPictureURL: d.DefaultPictureURL,
			Now:               d.Now,
		}),
		Health: health.NewHealthService(health.Deps{
			Version:     d.Version,
			UpstreamURL: d.UpstreamURL,
		}),
	}
}
