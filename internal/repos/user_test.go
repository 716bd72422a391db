package repos

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserRepoPatchTouchesOnlyGivenColumns(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepo(db, testLog())
	ctx := context.Background()

	seedUser(t, db, "khannedy")

	err := repo.Patch(ctx, nil, "khannedy", map[string]any{"name": "Eko Khannedy"})
	require.NoError(t, err)

	user, err := repo.GetByUsername(ctx, nil, "khannedy")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, "Eko Khannedy", user.Name)
	require.Equal(t, "hashed", user.Password)

	err = repo.Patch(ctx, nil, "khannedy", map[string]any{"password": "rehashed"})
	require.NoError(t, err)

	user, err = repo.GetByUsername(ctx, nil, "khannedy")
	require.NoError(t, err)
	require.Equal(t, "Eko Khannedy", user.Name)
	require.Equal(t, "rehashed", user.Password)
}

func TestUserRepoTokenLifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepo(db, testLog())
	ctx := context.Background()

	seedUser(t, db, "khannedy")

	require.NoError(t, repo.SetToken(ctx, nil, "khannedy", "token-123"))

	user, err := repo.GetByToken(ctx, nil, "token-123")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, "khannedy", user.Username)

	require.NoError(t, repo.ClearToken(ctx, nil, "khannedy"))

	user, err = repo.GetByToken(ctx, nil, "token-123")
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestUserRepoGetByUsernameMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepo(db, testLog())

	user, err := repo.GetByUsername(context.Background(), nil, "nobody")
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestUserRepoCountByUsername(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepo(db, testLog())
	ctx := context.Background()

	seedUser(t, db, "khannedy")

	count, err := repo.CountByUsername(ctx, nil, "khannedy")
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	count, err = repo.CountByUsername(ctx, nil, "nobody")
	require.NoError(t, err)
	require.EqualValues(t, 0, count)
}
