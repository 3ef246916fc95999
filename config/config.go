package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig
	CORS       CORSConfig

	// LLM - Completion gateway
	LLM LLMConfig

	// Analysis - Corpus generation and caching
	Analysis AnalysisConfig

	// Redis - Shared analysis cache, tracker storage
	Redis RedisConfig

	// Kafka - Analysis events (optional)
	Kafka KafkaConfig

	// Briefs - Simulated periodic briefs
	Briefs BriefsConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// RateLimitConfig is the per-IP request budget.
type RateLimitConfig struct {
	Enabled bool
	Limit   int
	Window  time.Duration
}

// CORSConfig lists the origins allowed by the CORS middleware.
type CORSConfig struct {
	AllowedOrigins []string
}

// LLMConfig is the configuration for the completion provider.
// An empty APIKey disables the gateway and every analysis is synthesized locally.
type LLMConfig struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	TimeoutMS   int
	MaxRetries  int
	RetryBaseMS int
	Temperature float64
	MaxTokens   int
}

// AnalysisConfig tunes the post corpus generator and the response cache.
type AnalysisConfig struct {
	DefaultLimit            int
	MaxLimit                int
	BrandMentionProbability float64
	EngagementVariance      float64
	// Seed fixes the random source. Zero seeds from the clock.
	Seed      int64
	CacheTTL  time.Duration
	CacheSize int
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// KafkaConfig is the configuration for Kafka
type KafkaConfig struct {
	Enabled  bool
	Brokers  []string
	Topic    string
	ClientID string
}

// BriefsConfig controls the brief scheduler.
type BriefsConfig struct {
	Enabled     bool
	Interval    time.Duration
	Concurrency int
	PostLimit   int
}

type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	// .env is a local convenience; real deployments inject the environment directly.
	_ = godotenv.Load()

	// Set config file name and paths
	viper.SetConfigName("brandpulse-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/brandpulse/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.Limit = viper.GetInt("rate_limit.limit")
	cfg.RateLimit.Window = viper.GetDuration("rate_limit.window")
	cfg.CORS.AllowedOrigins = viper.GetStringSlice("cors.allowed_origins")

	// LLM
	cfg.LLM.Provider = strings.ToLower(viper.GetString("llm.provider"))
	cfg.LLM.APIKey = viper.GetString("llm.api_key")
	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = viper.GetString("openai.api_key") // shorthand
	}
	cfg.LLM.Model = viper.GetString("llm.model")
	cfg.LLM.BaseURL = viper.GetString("llm.base_url")
	cfg.LLM.TimeoutMS = viper.GetInt("llm.timeout_ms")
	cfg.LLM.MaxRetries = viper.GetInt("llm.max_retries")
	cfg.LLM.RetryBaseMS = viper.GetInt("llm.retry_base_ms")
	cfg.LLM.Temperature = viper.GetFloat64("llm.temperature")
	cfg.LLM.MaxTokens = viper.GetInt("llm.max_tokens")

	// Analysis
	cfg.Analysis.DefaultLimit = viper.GetInt("analysis.default_limit")
	cfg.Analysis.MaxLimit = viper.GetInt("analysis.max_limit")
	cfg.Analysis.BrandMentionProbability = viper.GetFloat64("analysis.brand_mention_probability")
	cfg.Analysis.EngagementVariance = viper.GetFloat64("analysis.engagement_variance")
	cfg.Analysis.Seed = viper.GetInt64("analysis.seed")
	cfg.Analysis.CacheTTL = viper.GetDuration("analysis.cache_ttl")
	cfg.Analysis.CacheSize = viper.GetInt("analysis.cache_size")

	// Redis
	cfg.Redis.Enabled = viper.GetBool("redis.enabled")
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.PoolSize = viper.GetInt("redis.pool_size")

	// Kafka - Event publishing (optional)
	cfg.Kafka.Enabled = viper.GetBool("kafka.enabled")
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")
	cfg.Kafka.ClientID = viper.GetString("kafka.client_id")

	// Briefs
	cfg.Briefs.Enabled = viper.GetBool("briefs.enabled")
	cfg.Briefs.Interval = viper.GetDuration("briefs.interval")
	cfg.Briefs.Concurrency = viper.GetInt("briefs.concurrency")
	cfg.Briefs.PostLimit = viper.GetInt("briefs.post_limit")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// Rate limit & CORS
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.limit", 60)
	viper.SetDefault("rate_limit.window", time.Minute)
	viper.SetDefault("cors.allowed_origins", []string{"http://localhost:3000", "http://localhost:5173"})

	// 1. LLM
	viper.SetDefault("llm.provider", "openai")
	viper.SetDefault("llm.timeout_ms", 30000)
	viper.SetDefault("llm.max_retries", 3)
	viper.SetDefault("llm.retry_base_ms", 1000)
	viper.SetDefault("llm.temperature", 0.7)
	viper.SetDefault("llm.max_tokens", 2000)

	// 2. Analysis
	viper.SetDefault("analysis.default_limit", 10)
	viper.SetDefault("analysis.max_limit", 50)
	viper.SetDefault("analysis.brand_mention_probability", 0.7)
	viper.SetDefault("analysis.engagement_variance", 0.3)
	viper.SetDefault("analysis.seed", 0)
	viper.SetDefault("analysis.cache_ttl", 10*time.Minute)
	viper.SetDefault("analysis.cache_size", 512)

	// 3. Redis
	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.pool_size", 10)

	// 4. Kafka
	viper.SetDefault("kafka.enabled", false)
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.topic", "brandpulse.analysis.completed")
	viper.SetDefault("kafka.client_id", "brandpulse-srv")

	// 5. Briefs
	viper.SetDefault("briefs.enabled", false)
	viper.SetDefault("briefs.interval", time.Hour)
	viper.SetDefault("briefs.concurrency", 4)
	viper.SetDefault("briefs.post_limit", 5)
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port must be between 1 and 65535")
	}

	if cfg.LLM.APIKey != "" {
		switch cfg.LLM.Provider {
		case "openai", "gemini":
		default:
			return fmt.Errorf("llm.provider must be one of openai, gemini")
		}
		if cfg.LLM.MaxRetries < 1 {
			return fmt.Errorf("llm.max_retries must be at least 1")
		}
		if cfg.LLM.TimeoutMS <= 0 {
			return fmt.Errorf("llm.timeout_ms must be positive")
		}
	}

	if cfg.Analysis.MaxLimit < 1 {
		return fmt.Errorf("analysis.max_limit must be at least 1")
	}
	if cfg.Analysis.DefaultLimit < 1 || cfg.Analysis.DefaultLimit > cfg.Analysis.MaxLimit {
		return fmt.Errorf("analysis.default_limit must be between 1 and analysis.max_limit")
	}
	if cfg.Analysis.BrandMentionProbability < 0 || cfg.Analysis.BrandMentionProbability > 1 {
		return fmt.Errorf("analysis.brand_mention_probability must be between 0 and 1")
	}
	if cfg.Analysis.EngagementVariance < 0 || cfg.Analysis.EngagementVariance >= 1 {
		return fmt.Errorf("analysis.engagement_variance must be in [0, 1)")
	}

	if cfg.Kafka.Enabled && (len(cfg.Kafka.Brokers) == 0 || cfg.Kafka.Topic == "") {
		return fmt.Errorf("kafka.brokers and kafka.topic are required when kafka.enabled")
	}

	if cfg.Briefs.Enabled && cfg.Briefs.Interval <= 0 {
		return fmt.Errorf("briefs.interval must be positive when briefs.enabled")
	}

	return nil
}
