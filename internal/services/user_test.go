package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/contactdesk/contactdesk-backend/internal/types"
	"github.com/contactdesk/contactdesk-backend/internal/validation"
)

func TestGetCurrent(t *testing.T) {
	env := newTestEnv(t)
	register(t, env, "khannedy")

	resp, err := env.user.GetCurrent(authedCtx(t, env, "khannedy"))
	require.NoError(t, err)
	require.Equal(t, "khannedy", resp.Username)
}

func TestGetCurrentWithoutIdentity(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.user.GetCurrent(context.Background())
	requireStatus(t, err, 401)
}

func TestUpdateCurrentPatchesNameOnly(t *testing.T) {
	env := newTestEnv(t)
	register(t, env, "khannedy")
	ctx := authedCtx(t, env, "khannedy")

	var before types.User
	require.NoError(t, env.db.Where("username = ?", "khannedy").First(&before).Error)

	resp, err := env.user.UpdateCurrent(ctx, validation.UpdateUserRequest{Name: "Eko Baru"})
	require.NoError(t, err)
	require.Equal(t, "Eko Baru", resp.Name)

	var after types.User
	require.NoError(t, env.db.Where("username = ?", "khannedy").First(&after).Error)
	require.Equal(t, "Eko Baru", after.Name)
	require.Equal(t, before.Password, after.Password)
}

func TestUpdateCurrentPatchesPasswordOnly(t *testing.T) {
	env := newTestEnv(t)
	register(t, env, "khannedy")
	ctx := authedCtx(t, env, "khannedy")

	var before types.User
	require.NoError(t, env.db.Where("username = ?", "khannedy").First(&before).Error)

	_, err := env.user.UpdateCurrent(ctx, validation.UpdateUserRequest{Password: "rahasialagi"})
	require.NoError(t, err)

	var after types.User
	require.NoError(t, env.db.Where("username = ?", "khannedy").First(&after).Error)
	require.Equal(t, before.Name, after.Name)
	require.NotEqual(t, before.Password, after.Password)

	// The new password works for login.
	_, err = env.auth.Login(context.Background(), validation.LoginUserRequest{
		Username: "khannedy",
		Password: "rahasialagi",
	})
	require.NoError(t, err)
}

func TestUpdateCurrentRejectsEmptyPatch(t *testing.T) {
	env := newTestEnv(t)
	register(t, env, "khannedy")

	_, err := env.user.UpdateCurrent(authedCtx(t, env, "khannedy"), validation.UpdateUserRequest{})
	requireStatus(t, err, 400)
}
