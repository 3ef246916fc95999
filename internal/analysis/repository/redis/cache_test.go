package redis

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandpulse-srv/internal/analysis"
	"brandpulse-srv/internal/analysis/repository"
	"brandpulse-srv/pkg/log"
	pkgRedis "brandpulse-srv/pkg/redis"
)

func TestSaveAndGetAnalysis(t *testing.T) {
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	client, err := pkgRedis.NewRedis(pkgRedis.RedisConfig{Host: mr.Host(), Port: port})
	require.NoError(t, err)
	defer client.Close()

	repo := New(client, log.NewNop())
	ctx := context.Background()

	_, err = repo.GetAnalysis(ctx, "nike|techguru")
	assert.ErrorIs(t, err, repository.ErrCacheMiss)

	out := analysis.AnalyzeOutput{Metadata: analysis.Metadata{RequestID: "req-1", Brand: "nike", Source: analysis.SourceFallback}}
	require.NoError(t, repo.SaveAnalysis(ctx, repository.SaveAnalysisOptions{Key: "nike|techguru", Output: out, TTL: time.Minute}))

	got, err := repo.GetAnalysis(ctx, "nike|techguru")
	require.NoError(t, err)
	assert.Equal(t, "req-1", got.Metadata.RequestID)
	assert.Equal(t, analysis.SourceFallback, got.Metadata.Source)
	assert.True(t, mr.Exists(keyPrefix+"nike|techguru"))

	mr.FastForward(2 * time.Minute)
	_, err = repo.GetAnalysis(ctx, "nike|techguru")
	assert.ErrorIs(t, err, repository.ErrCacheMiss)
}
