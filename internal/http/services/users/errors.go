package users

import (
	"errors"
	"fmt"
)

// Step identifica en qué punto falló una operación.
type Step string

const (
	StepValidate Step = "validate"
	StepIdentity Step = "identity"
	StepRecord   Step = "record"
	StepFetch    Step = "fetch"
	StepUpdate   Step = "update"
)

// Errores sentinel. Definen la clase del fallo; el texto para el caller
// viaja en StepError.Message.
var (
	ErrMissingCredentials  = errors.New("email and password are required")
	ErrIdentityUnavailable = errors.New("identity sign-up request failed")
	ErrIdentityRejected    = errors.New("identity sign-up rejected")
	ErrIdentityMalformed   = errors.New("identity sign-up response malformed")
	ErrRecordFailed        = errors.New("user record insert failed")
	ErrFetchFailed         = errors.New("user record fetch failed")
	ErrUpdateFailed        = errors.New("user record update failed")
)

// StepError es el fallo de una operación de users. Err es un sentinel de
// este paquete; Message es el texto que se devuelve tal cual (ej. el body
// del upstream).
type StepError struct {
	Step    Step
	Err     error
	Message string
}

func (e *StepError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Step, e.Err, e.Message)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

func stepErr(step Step, sentinel error, msg string) *StepError {
	return &StepError{Step: step, Err: sentinel, Message: msg}
}
