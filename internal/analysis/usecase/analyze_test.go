package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandpulse-srv/internal/analysis"
	"brandpulse-srv/internal/analysis/repository/memory"
	"brandpulse-srv/internal/model"
	"brandpulse-srv/pkg/llm"
	"brandpulse-srv/pkg/log"
)

type fakeProvider struct {
	mu       sync.Mutex
	response string
	err      error
	calls    int
	prompts  []string
}

func (f *fakeProvider) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.prompts = append(f.prompts, userPrompt)
	return f.response, f.err
}

func (f *fakeProvider) Name() string  { return "fake" }
func (f *fakeProvider) Model() string { return "fake-1" }

type fakeProducer struct {
	events []analysis.AnalysisCompleted
	err    error
}

func (f *fakeProducer) PublishAnalysisCompleted(ctx context.Context, event analysis.AnalysisCompleted) error {
	f.events = append(f.events, event)
	return f.err
}

func newTestUseCase(provider llm.IProvider) *implUseCase {
	uc := newUseCase(log.NewNop(), provider, nil, nil, Config{Seed: 1})
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func TestAnalyze_NoProviderUsesFallback(t *testing.T) {
	uc := newTestUseCase(nil)

	out, err := uc.Analyze(context.Background(), analysis.AnalyzeInput{
		Influencer: "techguru",
		Brand:      "nike",
		Platform:   model.PlatformInstagram,
		Limit:      3,
	})

	require.NoError(t, err)
	assert.Contains(t, model.Sentiments, out.Analysis.OverallSentiment)
	assert.Equal(t, 3, out.Report.TotalPosts)
	assert.Len(t, out.Posts, 3)
	assert.LessOrEqual(t, len(out.Report.Tags), 5)
	d := out.Report.SentimentDistribution
	assert.Equal(t, 100, d.Positive+d.Neutral+d.Negative)
	assert.Equal(t, analysis.SourceFallback, out.Metadata.Source)
	assert.Empty(t, out.Metadata.Provider)
	assert.NotEmpty(t, out.Metadata.RequestID)
	assert.Equal(t, fixedNow, out.Metadata.AnalyzedAt)
	assertSchemaValid(t, out.Analysis)
}

func TestAnalyze_ProviderResponseIsNormalized(t *testing.T) {
	p := &fakeProvider{response: "Here you go:\n" + validResponse}
	uc := newTestUseCase(p)

	out, err := uc.Analyze(context.Background(), analysis.AnalyzeInput{Influencer: "techguru", Brand: "nike", Limit: 2})

	require.NoError(t, err)
	assert.Equal(t, 1, p.calls)
	assert.Equal(t, analysis.SourceAI, out.Metadata.Source)
	assert.Equal(t, "fake", out.Metadata.Provider)
	assert.Equal(t, "fake-1", out.Metadata.Model)
	assert.Equal(t, 82, out.Analysis.SentimentScore)
	assert.Equal(t, model.SentimentDistribution{Positive: 50, Neutral: 50, Negative: 0}, out.Report.SentimentDistribution)
	assert.Contains(t, p.prompts[0], `"`+out.Posts[0].CaptionText+`"`)
}

func TestAnalyze_GatewayFailureFallsBack(t *testing.T) {
	p := &fakeProvider{err: &llm.LLMError{Provider: "fake", Status: 401, Message: "invalid api key"}}
	uc := newTestUseCase(p)

	out, err := uc.Analyze(context.Background(), analysis.AnalyzeInput{Influencer: "techguru", Brand: "nike", Limit: 3})

	require.NoError(t, err)
	assert.Equal(t, analysis.SourceFallback, out.Metadata.Source)
	assert.Len(t, out.Analysis.ContentAnalysis, 3)
}

func TestAnalyze_UnparseableResponseFallsBack(t *testing.T) {
	p := &fakeProvider{response: "I'm sorry, I can't provide that analysis."}
	uc := newTestUseCase(p)

	out, err := uc.Analyze(context.Background(), analysis.AnalyzeInput{Influencer: "techguru", Brand: "nike", Limit: 3})

	require.NoError(t, err)
	assert.Equal(t, analysis.SourceFallback, out.Metadata.Source)
	assertSchemaValid(t, out.Analysis)
}

func TestAnalyze_CancelledContextIsReturned(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := &fakeProvider{err: context.Canceled}
	uc := newTestUseCase(p)

	_, err := uc.Analyze(ctx, analysis.AnalyzeInput{Influencer: "techguru", Brand: "nike", Limit: 3})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyze_Validation(t *testing.T) {
	uc := newTestUseCase(nil)
	long := make([]byte, analysis.MaxNameLength+1)
	for i := range long {
		long[i] = 'a'
	}

	tests := []struct {
		name  string
		input analysis.AnalyzeInput
		want  error
	}{
		{"missing influencer", analysis.AnalyzeInput{Brand: "nike"}, analysis.ErrInvalidInfluencer},
		{"blank influencer", analysis.AnalyzeInput{Influencer: "   ", Brand: "nike"}, analysis.ErrInvalidInfluencer},
		{"long influencer", analysis.AnalyzeInput{Influencer: string(long), Brand: "nike"}, analysis.ErrInvalidInfluencer},
		{"missing brand", analysis.AnalyzeInput{Influencer: "techguru"}, analysis.ErrInvalidBrand},
		{"bad platform", analysis.AnalyzeInput{Influencer: "techguru", Brand: "nike", Platform: "myspace"}, analysis.ErrInvalidPlatform},
		{"limit too big", analysis.AnalyzeInput{Influencer: "techguru", Brand: "nike", Limit: 51}, analysis.ErrInvalidLimit},
		{"negative limit", analysis.AnalyzeInput{Influencer: "techguru", Brand: "nike", Limit: -1}, analysis.ErrInvalidLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Analyze(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAnalyze_Defaults(t *testing.T) {
	uc := newTestUseCase(nil)

	out, err := uc.Analyze(context.Background(), analysis.AnalyzeInput{Influencer: " techguru ", Brand: "nike", Platform: "TikTok"})

	require.NoError(t, err)
	assert.Equal(t, 10, out.Report.TotalPosts)
	assert.Equal(t, model.PlatformTikTok, out.Metadata.Platform)
	assert.Equal(t, "techguru", out.Metadata.Influencer)
	for _, p := range out.Posts {
		assert.NotNil(t, p.Engagement.Views)
	}
}

func TestAnalyze_CachesByInput(t *testing.T) {
	cache, err := memory.New(8)
	require.NoError(t, err)
	p := &fakeProvider{response: validResponse}
	uc := newUseCase(log.NewNop(), p, cache, nil, Config{Seed: 1})

	in := analysis.AnalyzeInput{Influencer: "techguru", Brand: "nike", Limit: 2}
	first, err := uc.Analyze(context.Background(), in)
	require.NoError(t, err)
	second, err := uc.Analyze(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, 1, p.calls)
	assert.False(t, first.Metadata.Cached)
	assert.True(t, second.Metadata.Cached)
	assert.Equal(t, first.Analysis, second.Analysis)
	assert.Equal(t, first.Posts, second.Posts)

	_, err = uc.Analyze(context.Background(), analysis.AnalyzeInput{Influencer: "techguru", Brand: "adidas", Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, p.calls)
}

func TestAnalyze_PublishesEvent(t *testing.T) {
	producer := &fakeProducer{err: errors.New("broker down")}
	uc := newUseCase(log.NewNop(), nil, nil, producer, Config{Seed: 1})

	out, err := uc.Analyze(context.Background(), analysis.AnalyzeInput{Influencer: "techguru", Brand: "nike", Limit: 3})

	require.NoError(t, err, "publish failures must not fail the analysis")
	require.Len(t, producer.events, 1)
	ev := producer.events[0]
	assert.Equal(t, out.Metadata.RequestID, ev.RequestID)
	assert.Equal(t, "nike", ev.Brand)
	assert.Equal(t, analysis.SourceFallback, ev.Source)
	assert.Equal(t, 3, ev.TotalPosts)
	assert.Equal(t, out.Report.Tags, ev.Tags)
}

func TestAnalyze_UsesRequestIDFromContext(t *testing.T) {
	uc := newTestUseCase(nil)
	ctx := context.WithValue(context.Background(), log.RequestIDKey, "req-123")

	out, err := uc.Analyze(ctx, analysis.AnalyzeInput{Influencer: "techguru", Brand: "nike", Limit: 1})

	require.NoError(t, err)
	assert.Equal(t, "req-123", out.Metadata.RequestID)
}

func TestAnalyze_SeededRunsAreReproducible(t *testing.T) {
	in := analysis.AnalyzeInput{Influencer: "techguru", Brand: "nike", Limit: 5}

	a, err := newTestUseCase(nil).Analyze(context.Background(), in)
	require.NoError(t, err)
	b, err := newTestUseCase(nil).Analyze(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, a.Posts, b.Posts)
	assert.Equal(t, a.Analysis, b.Analysis)
}

func TestGeneratePosts_BrandIsOptional(t *testing.T) {
	uc := newTestUseCase(nil)

	out, err := uc.GeneratePosts(context.Background(), analysis.PostsInput{Influencer: "techguru", Platform: model.PlatformTwitter, Limit: 4})

	require.NoError(t, err)
	assert.Len(t, out.Posts, 4)
	for _, p := range out.Posts {
		assert.Equal(t, model.PlatformTwitter, p.Platform)
	}

	_, err = uc.GeneratePosts(context.Background(), analysis.PostsInput{Brand: "nike"})
	assert.ErrorIs(t, err, analysis.ErrInvalidInfluencer)
}
