package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandpulse-srv/internal/analysis"
	"brandpulse-srv/internal/analysis/repository"
)

func TestCache_SaveThenGet(t *testing.T) {
	r, err := newWithClock(4, time.Now)
	require.NoError(t, err)
	ctx := context.Background()

	out := analysis.AnalyzeOutput{Metadata: analysis.Metadata{RequestID: "r1", Source: analysis.SourceFallback}}
	require.NoError(t, r.SaveAnalysis(ctx, repository.SaveAnalysisOptions{Key: "k", Output: out, TTL: time.Minute}))

	got, err := r.GetAnalysis(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "r1", got.Metadata.RequestID)
}

func TestCache_Miss(t *testing.T) {
	r, err := newWithClock(4, time.Now)
	require.NoError(t, err)

	_, err = r.GetAnalysis(context.Background(), "absent")
	assert.ErrorIs(t, err, repository.ErrCacheMiss)
}

func TestCache_ExpiresAfterTTL(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	r, err := newWithClock(4, func() time.Time { return now })
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, r.SaveAnalysis(ctx, repository.SaveAnalysisOptions{Key: "k", TTL: time.Minute}))
	_, err = r.GetAnalysis(ctx, "k")
	require.NoError(t, err)

	now = now.Add(time.Minute)
	_, err = r.GetAnalysis(ctx, "k")
	assert.ErrorIs(t, err, repository.ErrCacheMiss)
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	r, err := newWithClock(2, time.Now)
	require.NoError(t, err)
	ctx := context.Background()

	for _, k := range []string{"a", "b", "c"} {
		require.NoError(t, r.SaveAnalysis(ctx, repository.SaveAnalysisOptions{Key: k}))
	}

	_, err = r.GetAnalysis(ctx, "a")
	assert.ErrorIs(t, err, repository.ErrCacheMiss)
	_, err = r.GetAnalysis(ctx, "c")
	assert.NoError(t, err)
}
