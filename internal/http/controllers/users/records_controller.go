package users

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	dto "github.com/dropDatabas3/usergate/internal/http/dto/users"
	httperrors "github.com/dropDatabas3/usergate/internal/http/errors"
	"github.com/dropDatabas3/usergate/internal/http/helpers"
	svc "github.com/dropDatabas3/usergate/internal/http/services/users"
	"github.com/dropDatabas3/usergate/internal/observability/logger"
)

// UserIDParam es el nombre del parámetro de ruta.
const UserIDParam = "user_id"

// RecordsController maneja GET y PUT /users/{user_id}.
type RecordsController struct {
	service svc.RecordService
}

// NewRecordsController crea el controller de registros.
func NewRecordsController(service svc.RecordService) *RecordsController {
	return &RecordsController{service: service}
}

// Get maneja GET /users/{user_id}
func (c *RecordsController) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("RecordsController.Get"))

	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	docs, err := c.service.Fetch(ctx, userID)
	if err != nil {
		handleError(w, err, log)
		return
	}

	helpers.WriteJSON(w, http.StatusOK, docs)
}

// Update maneja PUT /users/{user_id}. El body se reenvía sin validar.
func (c *RecordsController) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("RecordsController.Update"))

	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	var patch dto.Document
	if err := helpers.ReadJSON(w, r, &patch); err != nil {
		log.Error("invalid update body", logger.Err(err))
		handleError(w, err, log)
		return
	}
	if patch == nil {
		log.Error("update body is not a JSON object")
		httperrors.WriteError(w, httperrors.ErrInvalidJSON.WithMessage("Request body must be a JSON object"))
		return
	}

	if err := c.service.Update(ctx, userID, patch); err != nil {
		handleError(w, err, log)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func userIDFrom(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := strings.TrimSpace(chi.URLParam(r, UserIDParam))
	if id == "" {
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithMessage("user_id is required"))
		return "", false
	}
	return id, true
}
