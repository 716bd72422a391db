package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/contactdesk/contactdesk-backend/internal/apierr"
	"github.com/contactdesk/contactdesk-backend/internal/validation"
)

func register(t *testing.T, env *testEnv, username string) {
	t.Helper()
	_, err := env.auth.Register(context.Background(), validation.RegisterUserRequest{
		Username: username,
		Password: "rahasia",
		Name:     username,
	})
	require.NoError(t, err)
}

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := env.auth.Register(ctx, validation.RegisterUserRequest{
		Username: "khannedy",
		Password: "rahasia",
		Name:     "Eko Khannedy",
	})
	require.NoError(t, err)
	require.Equal(t, "khannedy", resp.Username)
	require.Equal(t, "Eko Khannedy", resp.Name)

	tok, err := env.auth.Login(ctx, validation.LoginUserRequest{
		Username: "khannedy",
		Password: "rahasia",
	})
	require.NoError(t, err)
	require.NotEmpty(t, tok.Token)

	user, err := env.auth.ResolveToken(ctx, tok.Token)
	require.NoError(t, err)
	require.Equal(t, "khannedy", user.Username)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	env := newTestEnv(t)
	register(t, env, "khannedy")

	_, err := env.auth.Register(context.Background(), validation.RegisterUserRequest{
		Username: "khannedy",
		Password: "other",
		Name:     "Other",
	})
	requireStatus(t, err, 400)
	require.EqualError(t, err, "Username already exists")
}

func TestLoginFailuresShareOneMessage(t *testing.T) {
	env := newTestEnv(t)
	register(t, env, "khannedy")
	ctx := context.Background()

	_, badPassword := env.auth.Login(ctx, validation.LoginUserRequest{
		Username: "khannedy",
		Password: "wrong",
	})
	requireStatus(t, badPassword, 401)

	_, badUsername := env.auth.Login(ctx, validation.LoginUserRequest{
		Username: "nobody",
		Password: "rahasia",
	})
	requireStatus(t, badUsername, 401)

	// Identical messages, so the response never reveals which usernames
	// exist.
	require.Equal(t, badPassword.Error(), badUsername.Error())
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Register(context.Background(), validation.RegisterUserRequest{})
	requireStatus(t, err, 400)
	apiErr, _ := apierr.From(err)
	require.NotEmpty(t, apiErr.Details)
}

func TestLogoutClearsToken(t *testing.T) {
	env := newTestEnv(t)
	register(t, env, "khannedy")
	ctx := context.Background()

	tok, err := env.auth.Login(ctx, validation.LoginUserRequest{
		Username: "khannedy",
		Password: "rahasia",
	})
	require.NoError(t, err)

	require.NoError(t, env.auth.Logout(authedCtx(t, env, "khannedy")))

	_, err = env.auth.ResolveToken(ctx, tok.Token)
	requireStatus(t, err, 401)
}

func TestResolveTokenRejectsEmptyAndUnknown(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.auth.ResolveToken(ctx, "")
	requireStatus(t, err, 401)

	_, err = env.auth.ResolveToken(ctx, "no-such-token")
	requireStatus(t, err, 401)
}
