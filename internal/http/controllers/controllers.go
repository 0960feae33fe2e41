// Package controllers agrupa los controllers HTTP. Cada dominio vive en
// controllers/{dominio} y recibe sus services ya construidos.
//
//	svcs := services.New(deps)
//	ctrls := controllers.New(svcs)
//	router.New(router.Deps{Controllers: ctrls, ...})
package controllers

import (
	"github.com/dropDatabas3/usergate/internal/http/controllers/health"
	"github.com/dropDatabas3/usergate/internal/http/controllers/users"
	"github.com/dropDatabas3/usergate/internal/http/services"
)

// Controllers agrupa todos los controllers por dominio.
type Controllers struct {
	Users  *users.Controllers
	Health *health.HealthController
}

// New crea el agregador de controllers.
func New(s services.Services) *Controllers {
	return &Controllers{
		Users:  users.NewControllers(s.Users),
		Health: health.NewHealthController(s.Health),
	}
}
