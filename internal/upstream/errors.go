package upstream

import (
	"errors"
	"fmt"
)

// ErrTransport marca fallos de red/transporte: el upstream nunca respondió.
var ErrTransport = errors.New("upstream transport failure")

// StatusError es una respuesta non-2xx del upstream. Body es el texto
// recibido tal cual, para diagnóstico y para devolverlo al caller.
type StatusError struct {
	Resource Resource
	Method   string
	Status   int
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream %s %s returned %d: %s", e.Resource, e.Method, e.Status, e.Body)
}

// AsStatusError extrae un *StatusError de la cadena de err.
func AsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
