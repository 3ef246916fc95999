package repository

import (
	"time"

	"brandpulse-srv/internal/analysis"
)

type SaveAnalysisOptions struct {
	Key    string
	Output analysis.AnalyzeOutput
	TTL    time.Duration
}
