package producer

import (
	"brandpulse-srv/internal/analysis"
	pkgKafka "brandpulse-srv/pkg/kafka"
	"brandpulse-srv/pkg/log"
)

// Producer interface for analysis domain
type Producer interface {
	analysis.Producer
}

// implProducer implements the Producer interface
type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new analysis producer
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
