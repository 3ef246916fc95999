package analysis

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Analyze runs the full pipeline for one influencer/brand pair.
	// Gateway and parse failures never reach the caller; they degrade to a synthesized analysis.
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)
	// GeneratePosts returns a synthetic post corpus without analysing it.
	GeneratePosts(ctx context.Context, input PostsInput) (PostsOutput, error)
}

// Producer publishes analysis events.
type Producer interface {
	PublishAnalysisCompleted(ctx context.Context, event AnalysisCompleted) error
}
