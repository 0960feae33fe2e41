package users

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	dto "github.com/dropDatabas3/usergate/internal/http/dto/users"
	"github.com/dropDatabas3/usergate/internal/upstream"
)

var fixedNow = time.Date(2024, 5, 1, 12, 30, 0, 0, time.FixedZone("ART", -3*3600))

func newProvisioning(up Upstream) ProvisioningService {
	return NewProvisioningService(Deps{
		Upstream: up,
		Now:      func() time.Time { return fixedNow },
	})
}

func strPtr(s string) *string { return &s }

func TestCreateUser_Success(t *testing.T) {
	fake := newFake(okIdentity("u1", "t1"), reply{status: http.StatusCreated})
	ctx, logs := observedCtx()

	res, err := newProvisioning(fake).CreateUser(ctx, dto.CreateUserRequest{
		Email:            "a@b.com",
		Password:         "pw",
		Username:         strPtr("neo"),
		SubscriptionPlan: "premium",
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", res.UserID)
	assert.Equal(t, "t1", res.AccessToken)

	calls := fake.Calls()
	require.Len(t, calls, 2)

	signUp := calls[0]
	assert.Equal(t, upstream.ResourceAuth, signUp.Resource)
	assert.Equal(t, http.MethodPost, signUp.Method)
	assert.Equal(t, upstream.AuthSignUpPath, signUp.Path)
	assert.JSONEq(t, `{"email":"a@b.com","password":"pw","data":{"username":"neo"}}`, bodyJSON(t, signUp))

	insert := calls[1]
	assert.Equal(t, upstream.ResourceDatabase, insert.Resource)
	assert.Equal(t, http.MethodPost, insert.Method)
	assert.Equal(t, upstream.UsersPath, insert.Path)
	assert.Equal(t, "return=minimal", insert.Prefer)
	// El plan pedido se ignora: toda cuenta nace basic.
	assert.JSONEq(t, `{
		"id":"u1",
		"email":"a@b.com",
		"username":"neo",
		"subscription_plan":"basic",
		"profile_picture_url":"default_profile_picture_url",
		"last_login":"2024-05-01T15:30:00Z"
	}`, bodyJSON(t, insert))

	assert.Equal(t, 1, logs.FilterMessage("user created").FilterField(zap.String("user_id", "u1")).Len())
}

func TestCreateUser_NullUsernameAndCustomPicture(t *testing.T) {
	fake := newFake(okIdentity("u2", "t2"), reply{status: http.StatusCreated})
	ctx, _ := observedCtx()

	_, err := newProvisioning(fake).CreateUser(ctx, dto.CreateUserRequest{
		Email:             "x@y.com",
		Password:          "pw",
		ProfilePictureURL: strPtr("https://cdn.example.com/p.png"),
	})
	require.NoError(t, err)

	calls := fake.Calls()
	require.Len(t, calls, 2)
	assert.JSONEq(t, `{"email":"x@y.com","password":"pw","data":{"username":null}}`, bodyJSON(t, calls[0]))

	rec, ok := calls[1].Body.(dto.UserRecord)
	require.True(t, ok)
	assert.Nil(t, rec.Username)
	assert.Equal(t, "https://cdn.example.com/p.png", rec.ProfilePictureURL)
	assert.Equal(t, dto.PlanBasic, rec.SubscriptionPlan)
}

func TestCreateUser_ConfiguredDefaultPicture(t *testing.T) {
	fake := newFake(okIdentity("u3", "t3"), reply{status: http.StatusCreated})
	svc := NewProvisioningService(Deps{Upstream: fake, DefaultPictureURL: "https://cdn.example.com/default.png"})

	ctx, _ := observedCtx()
	_, err := svc.CreateUser(ctx, dto.CreateUserRequest{Email: "a@b.com", Password: "pw"})
	require.NoError(t, err)

	rec := fake.Calls()[1].Body.(dto.UserRecord)
	assert.Equal(t, "https://cdn.example.com/default.png", rec.ProfilePictureURL)
	_, err = time.Parse(time.RFC3339, rec.LastLogin)
	assert.NoError(t, err)
}

func TestCreateUser_MissingCredentialsMakesNoCalls(t *testing.T) {
	cases := map[string]dto.CreateUserRequest{
		"empty email":    {Email: "", Password: "pw"},
		"empty password": {Email: "a@b.com", Password: ""},
		"both empty":     {},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			fake := newFake()
			ctx, logs := observedCtx()

			res, err := newProvisioning(fake).CreateUser(ctx, in)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, ErrMissingCredentials)

			var stepErr *StepError
			require.ErrorAs(t, err, &stepErr)
			assert.Equal(t, StepValidate, stepErr.Step)
			assert.Equal(t, "Email and password are required", stepErr.Message)

			assert.Empty(t, fake.Calls())
			assert.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
		})
	}
}

func TestCreateUser_IdentityRejectedSkipsRecord(t *testing.T) {
	fake := newFake(reply{status: http.StatusUnprocessableEntity, body: `{"msg":"User already registered"}`})
	ctx, logs := observedCtx()

	_, err := newProvisioning(fake).CreateUser(ctx, dto.CreateUserRequest{Email: "a@b.com", Password: "pw"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIdentityRejected)

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, StepIdentity, stepErr.Step)
	assert.Equal(t, `{"msg":"User already registered"}`, stepErr.Message)

	assert.Len(t, fake.Calls(), 1)
	assert.GreaterOrEqual(t, logs.FilterLevelExact(zapcore.ErrorLevel).Len(), 1)
}

func TestCreateUser_IdentityTransportFailure(t *testing.T) {
	fake := newFake(reply{transport: true})
	ctx, _ := observedCtx()

	_, err := newProvisioning(fake).CreateUser(ctx, dto.CreateUserRequest{Email: "a@b.com", Password: "pw"})
	assert.ErrorIs(t, err, ErrIdentityUnavailable)

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, "Failed to send sign-up request", stepErr.Message)
	assert.Len(t, fake.Calls(), 1)
}

func TestCreateUser_IdentityMalformed(t *testing.T) {
	cases := map[string]string{
		"not json":      `<html>oops</html>`,
		"missing id":    `{"access_token":"t1","user":{}}`,
		"missing token": `{"user":{"id":"u1"}}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			fake := newFake(reply{status: http.StatusOK, body: body})
			ctx, _ := observedCtx()

			_, err := newProvisioning(fake).CreateUser(ctx, dto.CreateUserRequest{Email: "a@b.com", Password: "pw"})
			assert.ErrorIs(t, err, ErrIdentityMalformed)
			assert.Len(t, fake.Calls(), 1)
		})
	}
}

func TestCreateUser_RecordFailureLeavesIdentity(t *testing.T) {
	fake := newFake(okIdentity("u1", "t1"), reply{status: http.StatusConflict, body: `{"code":"23505","message":"duplicate key"}`})
	ctx, logs := observedCtx()

	res, err := newProvisioning(fake).CreateUser(ctx, dto.CreateUserRequest{Email: "a@b.com", Password: "pw"})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrRecordFailed)

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, StepRecord, stepErr.Step)
	assert.Equal(t, `{"code":"23505","message":"duplicate key"}`, stepErr.Message)

	// Sin compensación: solo signup + insert, nunca un DELETE.
	calls := fake.Calls()
	require.Len(t, calls, 2)
	for _, c := range calls {
		assert.NotEqual(t, http.MethodDelete, c.Method)
	}
	assert.Equal(t, 1, logs.FilterMessage("record step failed, identity left without record").Len())
}

func TestCreateUser_RecordTransportFailure(t *testing.T) {
	fake := newFake(okIdentity("u1", "t1"), reply{transport: true})
	ctx, _ := observedCtx()

	_, err := newProvisioning(fake).CreateUser(ctx, dto.CreateUserRequest{Email: "a@b.com", Password: "pw"})
	assert.ErrorIs(t, err, ErrRecordFailed)

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Contains(t, stepErr.Message, "connection refused")
	assert.Len(t, fake.Calls(), 2)
}

func TestCreateUser_IdentityRejectedWithEmptyBody(t *testing.T) {
	fake := newFake(reply{status: http.StatusUnprocessableEntity, body: ""})
	ctx, _ := observedCtx()

	_, err := newProvisioning(fake).CreateUser(ctx, dto.CreateUserRequest{Email: "a@b.com", Password: "pw"})
	assert.ErrorIs(t, err, ErrIdentityRejected)

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, "", stepErr.Message)
	assert.Len(t, fake.Calls(), 1)
}

func TestCreateUser_UnknownPlanIsIgnored(t *testing.T) {
	fake := newFake(okIdentity("u1", "t1"), reply{status: http.StatusCreated})
	ctx, logs := observedCtx()

	_, err := newProvisioning(fake).CreateUser(ctx, dto.CreateUserRequest{
		Email:            "a@b.com",
		Password:         "pw",
		SubscriptionPlan: "platinum",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("unknown subscription_plan ignored").FilterLevelExact(zapcore.WarnLevel).Len())
	rec := fake.Calls()[1].Body.(dto.UserRecord)
	assert.Equal(t, dto.PlanBasic, rec.SubscriptionPlan)
}

func TestCreateUser_KnownOrMissingPlanDoesNotWarn(t *testing.T) {
	for _, plan := range []string{"", "basic", "standard", "premium"} {
		fake := newFake(okIdentity("u1", "t1"), reply{status: http.StatusCreated})
		ctx, logs := observedCtx()

		_, err := newProvisioning(fake).CreateUser(ctx, dto.CreateUserRequest{Email: "a@b.com", Password: "pw", SubscriptionPlan: plan})
		require.NoError(t, err)
		assert.Zero(t, logs.FilterMessage("unknown subscription_plan ignored").Len(), "plan %q", plan)
	}
}
