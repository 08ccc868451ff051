package integration

import (
	"context"
	"testing"
	"time"

	"gift-recommender-be/internal/pkg/logger"
	"gift-recommender-be/internal/repository/redisstore"
	"gift-recommender-be/pkg/preference"
	"gift-recommender-be/pkg/session"
	"gift-recommender-be/pkg/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisSessionRepository(t *testing.T) {
	rdb := openTestRedis(t)
	ctx := context.Background()
	prefix := "test:" + uuid.NewString()[:8] + ":"
	repo := redisstore.NewSessionRepository(rdb, prefix, time.Hour)

	now := time.Date(2025, 2, 20, 11, 0, 0, 0, time.UTC)

	_, err := repo.Get(ctx, "nope")
	assert.ErrorIs(t, err, store.ErrSessionNotFound)

	fresh := store.New("fresh", now)
	fresh.QuestionHistory = []string{"هدية لأختي"}
	fresh.Preferences = preference.Record{Gender: preference.GenderFemale}
	require.NoError(t, repo.Save(ctx, fresh))

	stale := store.New("stale", now.Add(-48*time.Hour))
	require.NoError(t, repo.Save(ctx, stale))

	got, err := repo.Get(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, []string{"هدية لأختي"}, got.QuestionHistory)
	assert.Equal(t, preference.GenderFemale, got.Preferences.Gender)

	ids, err := repo.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"fresh", "stale"}, ids)

	removed, err := repo.Sweep(ctx, 24*time.Hour, now)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	ok, err := repo.Delete(ctx, "fresh")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(ctx, "fresh")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisBackedManager(t *testing.T) {
	rdb := openTestRedis(t)
	ctx := context.Background()
	prefix := "test:" + uuid.NewString()[:8] + ":"

	m := session.NewManager(redisstore.NewSessionRepository(rdb, prefix, time.Hour), logger.NewNopLogger())

	_, err := m.Record(ctx, "conv", "هدية عيد ميلاد", preference.Record{Occasion: "birthday"})
	require.NoError(t, err)
	s, err := m.Record(ctx, "conv", "لأختي", preference.Record{Gender: preference.GenderFemale})
	require.NoError(t, err)

	assert.Equal(t, "birthday", s.Preferences.Occasion)
	assert.Equal(t, preference.GenderFemale, s.Preferences.Gender)
	assert.Equal(t, []string{"هدية عيد ميلاد", "لأختي"}, s.QuestionHistory)
}
