package middlewares

import (
	"net/http"
	"strings"
)

const (
	corsAllowMethods  = "GET,POST,PUT,DELETE,OPTIONS"
	corsExposeHeaders = "X-Request-ID, X-Error-Code"
)

// WithCORS maneja CORS para los orígenes permitidos. "*" acepta cualquier
// origen. Los preflight responden 204 sin llegar al handler.
func WithCORS(allowed []string) Middleware {
	trim := func(s string) string { return strings.TrimRight(strings.TrimSpace(s), "/") }

	anyOrigin := false
	alist := make([]string, 0, len(allowed))
	for _, v := range allowed {
		v = trim(v)
		if v == "*" {
			anyOrigin = true
		}
		if v != "" {
			alist = append(alist, v)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := trim(r.Header.Get("Origin"))
			h := w.Header()
			h.Add("Vary", "Origin")

			allowedOrigin := ""
			switch {
			case anyOrigin:
				allowedOrigin = "*"
			case origin != "":
				for _, a := range alist {
					if strings.EqualFold(origin, a) {
						allowedOrigin = origin
						break
					}
				}
			}

			if allowedOrigin != "" {
				h.Set("Access-Control-Allow-Origin", allowedOrigin)
				h.Set("Access-Control-Allow-Methods", corsAllowMethods)
				h.Set("Access-Control-Expose-Headers", corsExposeHeaders)
				if reqHeaders := r.Header.Get("Access-Control-Request-Headers"); reqHeaders != "" {
					h.Set("Access-Control-Allow-Headers", reqHeaders)
				} else {
					h.Set("Access-Control-Allow-Headers", "*")
				}
				h.Set("Access-Control-Max-Age", "600")
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
