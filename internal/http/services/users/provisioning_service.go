package users

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	dto "github.com/dropDatabas3/usergate/internal/http/dto/users"
	"github.com/dropDatabas3/usergate/internal/observability/logger"
	"github.com/dropDatabas3/usergate/internal/upstream"
)

// ProvisioningService crea una cuenta: identidad en Auth y luego el registro
// en Database con el id de la identidad.
//
// Si el registro falla, la identidad ya creada NO se revierte: no hay
// llamada de compensación y la cuenta queda sin registro.
type ProvisioningService interface {
	CreateUser(ctx context.Context, in dto.CreateUserRequest) (*dto.CreateUserResult, error)
}

type provisioningService struct {
	upstream   Upstream
	pictureURL string
	now        func() time.Time
	validate   *validator.Validate
}

// NewProvisioningService crea el service de alta.
func NewProvisioningService(d Deps) ProvisioningService {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.DefaultPictureURL == "" {
		d.DefaultPictureURL = DefaultPictureURL
	}
	return &provisioningService{
		upstream:   d.Upstream,
		pictureURL: d.DefaultPictureURL,
		now:        d.Now,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}
}

const componentProvisioning = "users.provisioning"

func (s *provisioningService) CreateUser(ctx context.Context, in dto.CreateUserRequest) (*dto.CreateUserResult, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component(componentProvisioning),
		logger.Op("CreateUser"),
		logger.Email(in.Email),
	)

	if err := s.validate.Struct(in); err != nil {
		log.Error("sign-up validation failed", logger.Err(err))
		return nil, stepErr(StepValidate, ErrMissingCredentials, "Email and password are required")
	}

	if in.SubscriptionPlan != "" && !dto.Plan(in.SubscriptionPlan).Valid() {
		log.Warn("unknown subscription_plan ignored", logger.String("subscription_plan", in.SubscriptionPlan))
	}

	// Step A: identidad
	identity, err := s.signUp(ctx, in)
	if err != nil {
		log.Error("identity step failed", logger.Step(string(StepIdentity)), logger.Err(err))
		return nil, err
	}
	log = log.With(logger.UserID(identity.User.ID))

	// Step B: registro. Un fallo acá deja la identidad huérfana.
	if err := s.insertRecord(ctx, in, identity.User.ID); err != nil {
		log.Error("record step failed, identity left without record",
			logger.Step(string(StepRecord)),
			logger.Err(err),
		)
		return nil, err
	}

	log.Info("user created")
	return &dto.CreateUserResult{
		UserID:      identity.User.ID,
		AccessToken: identity.AccessToken,
	}, nil
}

func (s *provisioningService) signUp(ctx context.Context, in dto.CreateUserRequest) (*dto.AuthIdentity, error) {
	resp, err := s.upstream.Do(ctx, upstream.Request{
		Resource: upstream.ResourceAuth,
		Method:   http.MethodPost,
		Path:     upstream.AuthSignUpPath,
		Body: dto.SignUpPayload{
			Email:    in.Email,
			Password: in.Password,
			Data:     dto.SignUpMetadata{Username: in.Username},
		},
	})
	if err != nil {
		if se, ok := upstream.AsStatusError(err); ok {
			return nil, stepErr(StepIdentity, ErrIdentityRejected, se.Body)
		}
		return nil, stepErr(StepIdentity, ErrIdentityUnavailable, "Failed to send sign-up request")
	}

	var identity dto.AuthIdentity
	if err := resp.Decode(&identity); err != nil {
		return nil, stepErr(StepIdentity, ErrIdentityMalformed, err.Error())
	}
	if identity.User.ID == "" || identity.AccessToken == "" {
		return nil, stepErr(StepIdentity, ErrIdentityMalformed, "sign-up response is missing user.id or access_token")
	}
	return &identity, nil
}

func (s *provisioningService) insertRecord(ctx context.Context, in dto.CreateUserRequest, userID string) error {
	picture := s.pictureURL
	if in.ProfilePictureURL != nil {
		picture = *in.ProfilePictureURL
	}

	record := dto.UserRecord{
		ID:                userID,
		Email:             in.Email,
		Username:          in.Username,
		SubscriptionPlan:  dto.DefaultPlan,
		ProfilePictureURL: picture,
		LastLogin:         s.now().UTC().Format(time.RFC3339),
	}

	_, err := s.upstream.Do(ctx, upstream.Request{
		Resource: upstream.ResourceDatabase,
		Method:   http.MethodPost,
		Path:     upstream.UsersPath,
		Body:     record,
		Prefer:   "return=minimal",
	})
	return upstreamStepErr(StepRecord, ErrRecordFailed, err)
}

// upstreamStepErr clasifica un fallo del upstream: body textual si hubo
// respuesta, texto del error si no.
func upstreamStepErr(step Step, sentinel, err error) error {
	if err == nil {
		return nil
	}
	if se, ok := upstream.AsStatusError(err); ok {
		return stepErr(step, sentinel, se.Body)
	}
	return stepErr(step, sentinel, err.Error())
}
