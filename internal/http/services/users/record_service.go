package users

import (
	"context"
	"encoding/json"
	"net/http"

	dto "github.com/dropDatabas3/usergate/internal/http/dto/users"
	"github.com/dropDatabas3/usergate/internal/observability/logger"
	"github.com/dropDatabas3/usergate/internal/upstream"
)

// RecordService lee y modifica el registro de un usuario por id. Una sola
// llamada upstream por operación.
type RecordService interface {
	// Fetch devuelve las filas que matchean el id. Cero matches es una lista
	// vacía, no un error.
	Fetch(ctx context.Context, userID string) ([]dto.Document, error)
	// Update reenvía patch sin modificar, campos desconocidos incluidos.
	Update(ctx context.Context, userID string, patch dto.Document) error
}

type recordService struct {
	upstream Upstream
}

// NewRecordService crea el service de acceso a registros.
func NewRecordService(up Upstream) RecordService {
	return &recordService{upstream: up}
}

const componentRecords = "users.records"

func (s *recordService) Fetch(ctx context.Context, userID string) ([]dto.Document, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component(componentRecords),
		logger.Op("Fetch"),
		logger.UserID(userID),
	)

	resp, err := s.upstream.Do(ctx, upstream.Request{
		Resource: upstream.ResourceDatabase,
		Method:   http.MethodGet,
		Path:     upstream.UsersPath,
		Query:    upstream.FilterByID(userID),
	})
	if err != nil {
		serr := upstreamStepErr(StepFetch, ErrFetchFailed, err)
		log.Error("fetch failed", logger.Err(serr))
		return nil, serr
	}

	// Un body 2xx que no es un array se trata como cero matches.
	docs := []dto.Document{}
	if err := json.Unmarshal(resp.Body, &docs); err != nil || docs == nil {
		log.Warn("fetch returned a non-array body, answering empty list", logger.Err(err))
		docs = []dto.Document{}
	}

	log.Info("user fetched", logger.Int("matches", len(docs)))
	return docs, nil
}

func (s *recordService) Update(ctx context.Context, userID string, patch dto.Document) error {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component(componentRecords),
		logger.Op("Update"),
		logger.UserID(userID),
	)

	_, err := s.upstream.Do(ctx, upstream.Request{
		Resource: upstream.ResourceDatabase,
		Method:   http.MethodPatch,
		Path:     upstream.UsersPath,
		Query:    upstream.FilterByID(userID),
		Body:     patch,
	})
	if err != nil {
		serr := upstreamStepErr(StepUpdate, ErrUpdateFailed, err)
		log.Error("update failed", logger.Err(serr))
		return serr
	}

	log.Info("user updated")
	return nil
}
