package users

import (
	"net/http"

	dto "github.com/dropDatabas3/usergate/internal/http/dto/users"
	"github.com/dropDatabas3/usergate/internal/http/helpers"
	svc "github.com/dropDatabas3/usergate/internal/http/services/users"
	"github.com/dropDatabas3/usergate/internal/observability/logger"
)

// AccountsController maneja POST /users.
type AccountsController struct {
	service svc.ProvisioningService
}

// NewAccountsController crea el controller de alta.
func NewAccountsController(service svc.ProvisioningService) *AccountsController {
	return &AccountsController{service: service}
}

// Create maneja POST /users
func (c *AccountsController) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("AccountsController.Create"))

	var req dto.CreateUserRequest
	if err := helpers.ReadJSON(w, r, &req); err != nil {
		log.Error("invalid create body", logger.Err(err))
		handleError(w, err, log)
		return
	}

	result, err := c.service.CreateUser(ctx, req)
	if err != nil {
		handleError(w, err, log)
		return
	}

	helpers.WriteJSON(w, http.StatusCreated, dto.CreateUserResponse{
		UserID:      result.UserID,
		AccessToken: result.AccessToken,
	})
}
