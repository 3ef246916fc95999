package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"brandpulse-srv/internal/analysis"
	kafkaDelivery "brandpulse-srv/internal/analysis/delivery/kafka"
)

// PublishAnalysisCompleted publishes an analysis completed event keyed by request id
func (p *implProducer) PublishAnalysisCompleted(ctx context.Context, event analysis.AnalysisCompleted) error {
	msg := kafkaDelivery.AnalysisCompletedMessage{
		RequestID:        event.RequestID,
		Influencer:       event.Influencer,
		Brand:            event.Brand,
		Platform:         string(event.Platform),
		Source:           event.Source,
		OverallSentiment: string(event.OverallSentiment),
		SentimentScore:   event.SentimentScore,
		BrandAlignment:   string(event.BrandAlignment),
		TotalPosts:       event.TotalPosts,
		Tags:             event.Tags,
		CompletedAt:      event.CompletedAt,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis event: %w", err)
	}

	headers := map[string]string{"event": kafkaDelivery.EventTypeAnalysisCompleted}
	if err := p.producer.Publish([]byte(event.RequestID), body, headers); err != nil {
		return fmt.Errorf("failed to publish analysis event: %w", err)
	}

	p.l.Debugf(ctx, "Published analysis event %s for %s/%s (%s)", event.RequestID, event.Influencer, event.Brand, event.Source)
	return nil
}
