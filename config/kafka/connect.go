package kafka

import (
	"fmt"
	"sync"

	"brandpulse-srv/config"
	"brandpulse-srv/pkg/kafka"
)

var (
	instance kafka.IProducer
	mu       sync.Mutex
)

// Connect creates the analysis event producer once and returns the shared instance.
// A failed attempt is not cached, so the next call retries.
func Connect(cfg config.KafkaConfig) (kafka.IProducer, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	p, err := kafka.NewProducer(kafka.Config{
		Brokers:  cfg.Brokers,
		Topic:    cfg.Topic,
		ClientID: cfg.ClientID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kafka producer: %w", err)
	}
	instance = p
	return instance, nil
}

// HealthCheck reports whether the producer is up.
func HealthCheck() error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return fmt.Errorf("Kafka producer not initialized")
	}
	return instance.HealthCheck()
}

// Disconnect closes the producer and clears the shared instance.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}
	err := instance.Close()
	instance = nil
	return err
}
