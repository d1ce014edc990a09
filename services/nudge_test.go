package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"deenly-backend/models"
)

type nudgeStore struct {
	fakeStore
	inactive    []models.Profile
	inactiveErr error
	gotCutoff   time.Time
}

func (n *nudgeStore) InactiveProfiles(ctx context.Context, cutoff time.Time) ([]models.Profile, error) {
	n.gotCutoff = cutoff
	return n.inactive, n.inactiveErr
}

type fakeGenerator struct {
	text string
	err  error
}

func (f *fakeGenerator) Generate(ctx context.Context, profile models.Profile) (string, error) {
	return f.text, f.err
}

func TestNudgeCycleGeneratedMessage(t *testing.T) {
	store := &nudgeStore{
		inactive: []models.Profile{
			{ID: uuid.New(), Username: "amina", StreakCount: 12, ExpoPushToken: "tok-a"},
		},
	}
	expo := &fakeExpo{}
	n := NewNudgeService(store, &fakeGenerator{text: "Your streak misses you!"}, expo, zap.NewNop())

	summary, err := n.RunCycle(context.Background())
	require.NoError(t, err)

	assert.True(t, summary.Success)
	assert.Equal(t, 1, summary.Processed)
	require.Len(t, summary.Details, 1)
	assert.Equal(t, "amina", summary.Details[0].Username)
	assert.Equal(t, "ok", summary.Details[0].Status)
	assert.Equal(t, []string{"tok-a"}, expo.tokens)
	assert.Equal(t, []string{"Your streak misses you!"}, expo.bodies)
}

func TestNudgeCycleGeneratorFailureUsesFallback(t *testing.T) {
	store := &nudgeStore{
		inactive: []models.Profile{
			{ID: uuid.New(), Username: "bilal", ExpoPushToken: "tok-b"},
		},
	}
	expo := &fakeExpo{}
	n := NewNudgeService(store, &fakeGenerator{err: errors.New("model overloaded")}, expo, zap.NewNop())

	summary, err := n.RunCycle(context.Background())
	require.NoError(t, err)

	// Generation failure never surfaces; the fallback is delivered instead.
	assert.True(t, summary.Success)
	require.Len(t, expo.bodies, 1)
	assert.Equal(t, NudgeFallback, expo.bodies[0])
	assert.Equal(t, "ok", summary.Details[0].Status)
}

func TestNudgeCycleDeliveryFailureRecorded(t *testing.T) {
	store := &nudgeStore{
		inactive: []models.Profile{
			{ID: uuid.New(), Username: "dawud", ExpoPushToken: "tok-d"},
		},
	}
	expo := &fakeExpo{err: errors.New("push gateway 502")}
	n := NewNudgeService(store, &fakeGenerator{text: "hi"}, expo, zap.NewNop())

	summary, err := n.RunCycle(context.Background())
	require.NoError(t, err)
	require.Len(t, summary.Details, 1)
	assert.Equal(t, "error", summary.Details[0].Status)
}

func TestNudgeCycleCutoffIs24Hours(t *testing.T) {
	store := &nudgeStore{}
	n := NewNudgeService(store, &fakeGenerator{text: "hi"}, &fakeExpo{}, zap.NewNop())
	now := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)
	n.now = func() time.Time { return now }

	_, err := n.RunCycle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, now.Add(-24*time.Hour), store.gotCutoff)
}

func TestNudgeCycleStoreFailure(t *testing.T) {
	store := &nudgeStore{inactiveErr: errors.New("db down")}
	n := NewNudgeService(store, &fakeGenerator{text: "hi"}, &fakeExpo{}, zap.NewNop())

	_, err := n.RunCycle(context.Background())
	assert.Error(t, err)
}
