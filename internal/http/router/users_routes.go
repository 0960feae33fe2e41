package router

import (
	"github.com/go-chi/chi/v5"

	ctrl "github.com/dropDatabas3/usergate/internal/http/controllers/users"
	mw "github.com/dropDatabas3/usergate/internal/http/middlewares"
)

// RegisterUserRoutes registra las rutas de /users.
//
//	POST /users             alta (identidad + registro)
//	GET  /users/{user_id}   fetch del registro
//	PUT  /users/{user_id}   patch del registro
func RegisterUserRoutes(r chi.Router, c *ctrl.Controllers) {
	r.Route("/users", func(r chi.Router) {
		// Respuestas con tokens y datos personales: no cachear.
		r.Use(mw.WithNoStore())

		r.Post("/", c.Accounts.Create)
		r.Get("/{"+ctrl.UserIDParam+"}", c.Records.Get)
		r.Put("/{"+ctrl.UserIDParam+"}", c.Records.Update)
	})
}
