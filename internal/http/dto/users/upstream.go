package users

// SignUpPayload es el body de /auth/v1/signup. El username viaja como
// metadata de la identidad.
type SignUpPayload struct {
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Data     SignUpMetadata `json:"data"`
}

type SignUpMetadata struct {
	Username *string `json:"username"`
}

// AuthIdentity es la respuesta de alta del recurso Auth. Solo User.ID y
// AccessToken se usan aguas abajo.
type AuthIdentity struct {
	AccessToken  string       `json:"access_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int64        `json:"expires_in"`
	ExpiresAt    int64        `json:"expires_at"`
	RefreshToken string       `json:"refresh_token"`
	User         IdentityUser `json:"user"`
}

// IdentityUser es la metadata anidada de la identidad creada.
type IdentityUser struct {
	ID           string   `json:"id"`
	Aud          string   `json:"aud"`
	Role         string   `json:"role"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	AppMetadata  Document `json:"app_metadata"`
	UserMetadata Document `json:"user_metadata"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
	IsAnonymous  bool     `json:"is_anonymous"`
}

// UserRecord es la fila de la colección users. Su id es el de la identidad.
type UserRecord struct {
	ID                string  `json:"id"`
	Email             string  `json:"email"`
	Username          *string `json:"username"`
	SubscriptionPlan  Plan    `json:"subscription_plan"`
	ProfilePictureURL string  `json:"profile_picture_url"`
	LastLogin         string  `json:"last_login"`
}
