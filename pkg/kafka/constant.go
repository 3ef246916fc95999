package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const (
	// DefaultClientID is sent to the brokers when Config.ClientID is empty.
	DefaultClientID = "brandpulse-srv"

	producerTimeout      = 10 * time.Second
	producerRetryMax     = 3
	producerRetryBackoff = 250 * time.Millisecond
	// Analysis events are small; anything near this size is a bug upstream.
	producerMaxMessageBytes = 1 << 20
)

var kafkaVersion = sarama.V2_8_0_0

// newSaramaConfig returns the producer settings for analysis events:
// leader ack, snappy, bounded retries.
func newSaramaConfig(clientID string) *sarama.Config {
	config := sarama.NewConfig()
	config.Version = kafkaVersion
	config.ClientID = DefaultClientID
	if clientID != "" {
		config.ClientID = clientID
	}

	config.Producer.RequiredAcks = sarama.WaitForLocal
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = producerRetryMax
	config.Producer.Retry.Backoff = producerRetryBackoff
	config.Producer.Timeout = producerTimeout
	config.Producer.MaxMessageBytes = producerMaxMessageBytes
	return config
}
