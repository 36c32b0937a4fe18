package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type CognitConfig struct {
	Env          string `yaml:"env" env:"COGNIT_ENV" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	GRPCServer   `yaml:"grpc_server"`
	Database     `yaml:"database"`
	LogConfig    `yaml:"log_config"`
	Submission   `yaml:"submission"`
	Reward       `yaml:"reward"`
	Payment      `yaml:"payment"`
	Admin        `yaml:"admin"`
	KafkaService `yaml:"kafka-service"`
}

type HTTPServer struct {
	Host            string   `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            string   `yaml:"port" env:"HTTP_PORT" env-default:"5000"`
	AllowedOrigins  []string `yaml:"allowed_origins" env:"ALLOWED_ORIGINS" env-separator:","`
	RateLimitPerMin uint     `yaml:"rate_limit_per_min" env:"RATE_LIMIT_PER_MIN" env-default:"30"`
}

type GRPCServer struct {
	Host string `yaml:"host" env:"GRPC_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"GRPC_PORT" env-default:"50051"`
}

type Database struct {
	Dsn            string `yaml:"dsn" env:"DATABASE_DSN" env-required:"true"`
	MigrationsPath string `yaml:"migrations_path" env:"MIGRATIONS_PATH"`
}

type LogConfig struct {
	LogLevel     string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	LogDirectory string `yaml:"log_directory" env:"LOG_DIRECTORY" env-default:"logs"`
	MaxSizeMB    int    `yaml:"max_size_mb" env-default:"10"`
	MaxBackups   int    `yaml:"max_backups" env-default:"3"`
	MaxAgeDays   int    `yaml:"max_age_days" env-default:"7"`
}

type Submission struct {
	MinWordCount   int     `yaml:"min_word_count" env:"MIN_WORD_COUNT" env-default:"20"`
	TooFastSeconds float64 `yaml:"too_fast_seconds" env:"TOO_FAST_SECONDS" env-default:"5"`
	IPHashSalt     string  `yaml:"ip_hash_salt" env:"IP_HASH_SALT" env-default:"local-salt"`
}

type Reward struct {
	Amount float64 `yaml:"amount" env:"REWARD_AMOUNT" env-default:"500"`
	// Cooldown is the global window between two winners. The study protocol
	// runs at 60s; other values are an operator override for load tests and
	// staging.
	Cooldown time.Duration `yaml:"cooldown" env:"REWARD_COOLDOWN" env-default:"60s"`
}

type Payment struct {
	KeyID         string `yaml:"key_id" env:"RAZORPAY_KEY_ID" env-required:"true"`
	KeySecret     string `yaml:"key_secret" env:"RAZORPAY_KEY_SECRET" env-required:"true"`
	WebhookSecret string `yaml:"webhook_secret" env:"RAZORPAY_WEBHOOK_SECRET" env-required:"true"`
	BaseURL       string `yaml:"base_url" env:"RAZORPAY_BASE_URL" env-default:"https://api.razorpay.com"`
	Amount        int64  `yaml:"amount" env:"PAYMENT_AMOUNT" env-default:"5000"`
	Currency      string `yaml:"currency" env:"PAYMENT_CURRENCY" env-default:"INR"`
}

type Admin struct {
	APIKey string `yaml:"api_key" env:"ADMIN_API_KEY" env-default:"changeme"`
}

type KafkaService struct {
	Brokers     []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
	TopicPrefix string   `yaml:"topic_prefix" env:"KAFKA_TOPIC_PREFIX" env-default:"cognit"`
}

// Load reads the YAML file at path and applies environment overrides.
func Load(path string) (*CognitConfig, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	var cfg CognitConfig
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if cfg.Submission.MinWordCount < 0 {
		return nil, fmt.Errorf("min_word_count must not be negative")
	}
	if cfg.Reward.Cooldown <= 0 {
		return nil, fmt.Errorf("reward cooldown must be positive")
	}

	return &cfg, nil
}

func MustLoad() *CognitConfig {
	configPath := os.Getenv("COGNIT_CONFIG_PATH")
	if configPath == "" {
		log.Fatalf("COGNIT_CONFIG_PATH was not found\n")
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("%v\n", err)
	}

	return cfg
}
