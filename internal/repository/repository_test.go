package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorCatalogRepository_FindAll(t *testing.T) {
	repo := NewDoctorCatalogRepository()

	doctors, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, doctors, 4)
	assert.Equal(t, "Dr. Sarah Johnson", doctors[0].Name)

	doctors[0].Name = "changed"
	again, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Dr. Sarah Johnson", again[0].Name)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = repo.FindAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemorySessionTokenRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionTokenRepository().(*memorySessionTokenRepository)
	now := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	require.NoError(t, repo.Save(ctx, "s1", "t1", time.Minute))
	ok, err := repo.Exists(ctx, "s1", "t1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = repo.Exists(ctx, "s2", "t1")
	assert.False(t, ok, "token is bound to its session")

	now = now.Add(2 * time.Minute)
	ok, _ = repo.Exists(ctx, "s1", "t1")
	assert.False(t, ok, "expired")

	require.NoError(t, repo.Save(ctx, "s1", "t2", time.Minute))
	assert.Len(t, repo.tokens, 1, "expired entries are pruned on save")

	require.NoError(t, repo.Revoke(ctx, "s1", "t2"))
	ok, _ = repo.Exists(ctx, "s1", "t2")
	assert.False(t, ok)
}
