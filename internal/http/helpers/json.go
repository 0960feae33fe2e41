package helpers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	httperrors "github.com/dropDatabas3/usergate/internal/http/errors"
)

// MaxBodyBytes limita el body de entrada.
const MaxBodyBytes = 1 << 20

// ReadJSON decodifica el body en v. Tolera campos desconocidos. Exige
// Content-Type JSON y un body no vacío. Devuelve *AppError listo para
// WriteError.
func ReadJSON(w http.ResponseWriter, r *http.Request, v any) error {
	ct := strings.ToLower(r.Header.Get("Content-Type"))
	if !strings.Contains(ct, "application/json") {
		return httperrors.ErrBadRequest.WithMessage("Content-Type must be application/json")
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return httperrors.ErrInvalidJSON.WithMessage("Request body is empty").WithCause(err)
		}
		return httperrors.ErrInvalidJSON.WithCause(err)
	}
	return nil
}

// WriteJSON escribe v como JSON con el status dado.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
