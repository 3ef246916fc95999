package httpserver

import (
	"errors"

	"brandpulse-srv/config"
	"brandpulse-srv/internal/analysis"
	"brandpulse-srv/internal/brief"
	"brandpulse-srv/internal/tracker"
	"brandpulse-srv/pkg/discord"
	pkgKafka "brandpulse-srv/pkg/kafka"
	"brandpulse-srv/pkg/llm"
	"brandpulse-srv/pkg/log"
	pkgRedis "brandpulse-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	config      *config.Config

	// Completion gateway (nil when no API key is configured)
	llm llm.IProvider

	// Optional infrastructure
	redis         pkgRedis.IRedis
	kafkaProducer pkgKafka.IProducer

	// Monitoring & Notification Configuration
	discord discord.IDiscord

	// Domain UseCases
	analysisUC analysis.UseCase
	trackerUC  tracker.UseCase
	briefUC    brief.UseCase
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string
	Config      *config.Config

	LLM           llm.IProvider
	Redis         pkgRedis.IRedis
	KafkaProducer pkgKafka.IProducer

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		config:      cfg.Config,

		llm:           cfg.LLM,
		redis:         cfg.Redis,
		kafkaProducer: cfg.KafkaProducer,

		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}

	// llm, redis, kafkaProducer and discord are optional
	return nil
}
