package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandpulse-srv/internal/analysis"
	kafkaDelivery "brandpulse-srv/internal/analysis/delivery/kafka"
	"brandpulse-srv/internal/model"
	"brandpulse-srv/pkg/log"
)

type recordingProducer struct {
	key, value []byte
	headers    map[string]string
	err        error
}

func (r *recordingProducer) Publish(key, value []byte, headers map[string]string) error {
	r.key, r.value, r.headers = key, value, headers
	return r.err
}
func (r *recordingProducer) Close() error       { return nil }
func (r *recordingProducer) HealthCheck() error { return nil }

func TestPublishAnalysisCompleted(t *testing.T) {
	rec := &recordingProducer{}
	p := New(log.NewNop(), rec)
	completed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	err := p.PublishAnalysisCompleted(context.Background(), analysis.AnalysisCompleted{
		RequestID:        "req-1",
		Influencer:       "techguru",
		Brand:            "nike",
		Platform:         model.PlatformInstagram,
		Source:           analysis.SourceAI,
		OverallSentiment: model.SentimentPositive,
		SentimentScore:   81,
		BrandAlignment:   model.AlignmentHigh,
		TotalPosts:       3,
		Tags:             []string{"Excellent Brand Advocate"},
		CompletedAt:      completed,
	})

	require.NoError(t, err)
	assert.Equal(t, "req-1", string(rec.key))
	assert.Equal(t, kafkaDelivery.EventTypeAnalysisCompleted, rec.headers["event"])

	var msg kafkaDelivery.AnalysisCompletedMessage
	require.NoError(t, json.Unmarshal(rec.value, &msg))
	assert.Equal(t, "instagram", msg.Platform)
	assert.Equal(t, "Positive", msg.OverallSentiment)
	assert.Equal(t, 81, msg.SentimentScore)
	assert.True(t, completed.Equal(msg.CompletedAt))
}

func TestPublishAnalysisCompleted_WrapsError(t *testing.T) {
	broker := errors.New("broker unavailable")
	p := New(log.NewNop(), &recordingProducer{err: broker})

	err := p.PublishAnalysisCompleted(context.Background(), analysis.AnalysisCompleted{RequestID: "r"})

	assert.ErrorIs(t, err, broker)
}
