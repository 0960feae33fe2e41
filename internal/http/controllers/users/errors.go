package users

import (
	"errors"
	"net/http"

	httperrors "github.com/dropDatabas3/usergate/internal/http/errors"
	svc "github.com/dropDatabas3/usergate/internal/http/services/users"
	"github.com/dropDatabas3/usergate/internal/observability/logger"
	"go.uber.org/zap"
)

// handleError mapea errores del service a respuestas HTTP.
func handleError(w http.ResponseWriter, err error, log *zap.Logger) {
	var appErr *httperrors.AppError
	if errors.As(err, &appErr) {
		httperrors.WriteError(w, appErr)
		return
	}

	var out *httperrors.AppError
	switch {
	case errors.Is(err, svc.ErrMissingCredentials):
		out = httperrors.ErrMissingFields
	case errors.Is(err, svc.ErrIdentityRejected):
		out = httperrors.ErrUpstreamRejected
	case errors.Is(err, svc.ErrIdentityUnavailable):
		out = httperrors.ErrUpstreamUnavailable
	case errors.Is(err, svc.ErrIdentityMalformed):
		out = httperrors.ErrUpstreamResponse
	case errors.Is(err, svc.ErrRecordFailed),
		errors.Is(err, svc.ErrFetchFailed),
		errors.Is(err, svc.ErrUpdateFailed):
		out = httperrors.ErrUserRecord
	default:
		log.Error("unexpected users error", logger.Err(err))
		httperrors.WriteError(w, httperrors.ErrInternalServerError.WithCause(err))
		return
	}

	// El mensaje del StepError es el body del upstream tal cual, aunque
	// venga vacío.
	var stepErr *svc.StepError
	if errors.As(err, &stepErr) {
		out = out.WithMessage(stepErr.Message)
	}
	httperrors.WriteError(w, out.WithCause(err))
}
