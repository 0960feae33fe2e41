package errors

import (
	"net/http"
)

// WriteError escribe status + mensaje en texto plano. El código queda en el
// header X-Error-Code para quien lo quiera sin parsear el body.
func WriteError(w http.ResponseWriter, err error) {
	appErr := FromError(err)

	h := w.Header()
	h.Set("Content-Type", "text/plain; charset=utf-8")
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("X-Error-Code", appErr.Code)
	w.WriteHeader(appErr.HTTPStatus)
	_, _ = w.Write([]byte(appErr.Message))
}
