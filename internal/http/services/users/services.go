// Package users contiene los services de /users: el saga de alta
// (identidad + registro) y el acceso al registro por id.
package users

import (
	"context"
	"time"

	"github.com/dropDatabas3/usergate/internal/upstream"
)

// Upstream es la parte del cliente upstream que usan los services.
type Upstream interface {
	Do(ctx context.Context, req upstream.Request) (*upstream.Response, error)
}

// DefaultPictureURL es el sentinel que se guarda cuando el alta no trae foto.
const DefaultPictureURL = "default_profile_picture_url"

// Deps contiene las dependencias para crear los services users.
type Deps struct {
	Upstream          Upstream
	DefaultPictureURL string
	// Now es el reloj para last_login; nil = time.Now.
	Now func() time.Time
}

// Services agrupa los services del dominio users.
type Services struct {
	Provisioning ProvisioningService
	Records      RecordService
}

// NewServices crea el agregador de services users.
func NewServices(d Deps) Services {
	return Services{
		Provisioning: NewProvisioningService(d),
		Records:      NewRecordService(d.Upstream),
	}
}
