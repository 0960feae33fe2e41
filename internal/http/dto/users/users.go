// Package users contiene los DTOs de /users y los shapes del upstream.
package users

// Plan es el tier de suscripción de un usuario.
type Plan string

const (
	PlanBasic    Plan = "basic"
	PlanStandard Plan = "standard"
	PlanPremium  Plan = "premium"
)

// DefaultPlan es el tier con el que nace toda cuenta.
const DefaultPlan = PlanBasic

// Valid indica si p es un tier conocido.
func (p Plan) Valid() bool {
	switch p {
	case PlanBasic, PlanStandard, PlanPremium:
		return true
	}
	return false
}

// Document es un JSON abierto: resultados de fetch y patches se reenvían
// sin validar su forma.
type Document = map[string]any

// CreateUserRequest es el body de POST /users.
type CreateUserRequest struct {
	Email             string  `json:"email" validate:"required"`
	Password          string  `json:"password" validate:"required"`
	Username          *string `json:"username,omitempty"`
	SubscriptionPlan  string  `json:"subscription_plan"`
	ProfilePictureURL *string `json:"profile_picture_url,omitempty"`
}

// CreateUserResponse es la respuesta 201 de POST /users.
type CreateUserResponse struct {
	UserID      string `json:"user_id"`
	AccessToken string `json:"access_token"`
}

// CreateUserResult es el resultado interno del saga de alta.
type CreateUserResult struct {
	UserID      string
	AccessToken string
}
