package kafka

import (
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProducerConfig(t *testing.T) {
	assert.Error(t, validateProducerConfig(Config{Topic: "t"}))
	assert.Error(t, validateProducerConfig(Config{Brokers: []string{"localhost:9092"}}))
	assert.NoError(t, validateProducerConfig(Config{Brokers: []string{"localhost:9092"}, Topic: "t"}))
}

func TestPublish_SetsTopicKeyAndHeaders(t *testing.T) {
	cfg := mocks.NewTestConfig()
	cfg.Producer.Return.Successes = true
	mp := mocks.NewSyncProducer(t, cfg)
	mp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		assert.JSONEq(t, `{"ok":true}`, string(val))
		return nil
	})
	p := &producerImpl{producer: mp, topic: "brandpulse.analysis.completed"}

	require.NoError(t, p.Publish([]byte("req-1"), []byte(`{"ok":true}`), map[string]string{"event": "analysis.completed"}))
	require.NoError(t, p.Close())
}

func TestPublish_WrapsSendFailure(t *testing.T) {
	mp := mocks.NewSyncProducer(t, mocks.NewTestConfig())
	mp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	p := &producerImpl{producer: mp, topic: "t"}

	err := p.Publish([]byte("k"), []byte("v"), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	_ = p.Close()
}

func TestNewSaramaConfig(t *testing.T) {
	cfg := newSaramaConfig("")
	assert.Equal(t, DefaultClientID, cfg.ClientID)
	assert.True(t, cfg.Producer.Return.Successes)
	assert.NoError(t, cfg.Validate())

	assert.Equal(t, "analysis-worker", newSaramaConfig("analysis-worker").ClientID)
}
