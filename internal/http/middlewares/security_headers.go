package middlewares

import (
	"net/http"

	"github.com/unrolled/secure"
)

// WithSecurityHeaders inyecta cabeceras de seguridad para una API JSON.
// En prod agrega HSTS cuando el request llegó por HTTPS (directo o proxy).
func WithSecurityHeaders(production bool) Middleware {
	sec := secure.New(secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		ReferrerPolicy:        "no-referrer",
		ContentSecurityPolicy: "default-src 'none'; frame-ancestors 'none'",
		PermissionsPolicy:     "geolocation=(), microphone=(), camera=(), payment=()",
		STSSeconds:            15552000,
		STSIncludeSubdomains:  true,
		SSLProxyHeaders:       map[string]string{"X-Forwarded-Proto": "https"},
		IsDevelopment:         !production,
	})
	return Adapt(sec.Handler)
}

// WithNoStore agrega Cache-Control: no-store a la respuesta.
func WithNoStore() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "no-store")
			next.ServeHTTP(w, r)
		})
	}
}
