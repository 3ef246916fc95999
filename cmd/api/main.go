package main

import (
	"context"
	"fmt"

	"brandpulse-srv/config"
	configKafka "brandpulse-srv/config/kafka"
	configLLM "brandpulse-srv/config/llm"
	configRedis "brandpulse-srv/config/redis"
	_ "brandpulse-srv/docs" // Import swagger docs
	analysisKafka "brandpulse-srv/internal/analysis/delivery/kafka"
	"brandpulse-srv/internal/httpserver"
	"brandpulse-srv/pkg/discord"
	pkgKafka "brandpulse-srv/pkg/kafka"
	"brandpulse-srv/pkg/log"
	pkgRedis "brandpulse-srv/pkg/redis"
)

// @title       BrandPulse API
// @description Influencer sentiment and brand alignment analysis.
// @version     1
// @BasePath    /
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	ctx := context.Background()

	// 3. Initialize Discord (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookID != "" {
		discordClient, err = discord.New(logger, &discord.DiscordWebhook{
			ID:    cfg.Discord.WebhookID,
			Token: cfg.Discord.WebhookToken,
		})
		if err != nil {
			logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
			discordClient = nil
		} else {
			logger.Infof(ctx, "Discord webhook initialized successfully")
		}
	}

	// 4. Initialize completion gateway (optional)
	provider, err := configLLM.Connect(logger, cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM provider: %v", err)
		return
	}
	if provider == nil {
		logger.Warnf(ctx, "No LLM API key configured; every analysis will be synthesized locally")
	} else {
		logger.Infof(ctx, "LLM provider initialized: %s (%s)", provider.Name(), provider.Model())
	}

	// 5. Initialize Redis (optional)
	var redisClient pkgRedis.IRedis
	if cfg.Redis.Enabled {
		redisClient, err = configRedis.Connect(ctx, cfg.Redis)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
			return
		}
		defer configRedis.Disconnect()
		logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
	}

	// 6. Initialize Kafka producer (optional)
	var kafkaProducer pkgKafka.IProducer
	if cfg.Kafka.Enabled {
		if cfg.Kafka.Topic == "" {
			cfg.Kafka.Topic = analysisKafka.TopicAnalysisCompleted
		}
		kafkaProducer, err = configKafka.Connect(cfg.Kafka)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to Kafka: %v", err)
			return
		}
		defer configKafka.Disconnect()
		logger.Infof(ctx, "Kafka producer connected to %v (topic %s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}

	// 7. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Config:      cfg,

		LLM:           provider,
		Redis:         redisClient,
		KafkaProducer: kafkaProducer,

		Discord: discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}
}
