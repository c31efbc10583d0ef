package rewards

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

const (
	StorageMongo    = "mongo"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	Port     string `envconfig:"REWARDS_PORT" default:"8080"`
	GrpcPort string `envconfig:"REWARDS_GRPC_PORT" default:"9090"`
	Storage  string `envconfig:"REWARDS_STORAGE" default:"mongo"`

	// общий секрет внутренних вызовов (/completions, gRPC). Пустой - маршрут отключен
	InternalToken string `envconfig:"REWARDS_INTERNAL_TOKEN"`

	// стоимость курсов и проектов для memory: course/c1:50,project/p1:40
	Catalog map[string]int64 `envconfig:"REWARDS_CATALOG"`

	// mongo
	Mongo   string `envconfig:"REWARDS_MONGO"`
	MongoDB string `envconfig:"REWARDS_MONGO_DB" default:"rewardsDB"`

	// postgres
	PostgresDSN string `envconfig:"REWARDS_POSTGRES_DSN"`

	// redis, кэш балансов (необязательный)
	CacheURL  string `envconfig:"REWARDS_CACHE_URL"`
	CacheUser string `envconfig:"REWARDS_CACHE_USER"`
	CachePwd  string `envconfig:"REWARDS_CACHE_PWD"`

	// выплаты
	Rate           decimal.Decimal `envconfig:"REWARDS_RATE" default:"1"`
	MinCashout     int64           `envconfig:"REWARDS_MIN_CASHOUT" default:"1"`
	Currency       string          `envconfig:"REWARDS_CURRENCY" default:"inr"`
	GatewayTimeout time.Duration   `envconfig:"REWARDS_GATEWAY_TIMEOUT" default:"10s"`

	// stripe
	StripeKey           string `envconfig:"REWARDS_STRIPE_KEY"`
	StripeWebhookSecret string `envconfig:"REWARDS_STRIPE_WEBHOOK_SECRET"`
	StripeURL           string `envconfig:"REWARDS_STRIPE_URL"`

	// kafka
	KafkaBrokers []string `envconfig:"REWARDS_KAFKA_BROKERS"`
	KafkaTopic   string   `envconfig:"REWARDS_KAFKA_TOPIC" default:"completions"`
	KafkaGroup   string   `envconfig:"REWARDS_KAFKA_GROUP" default:"rewards_completions"`
	Workers      int      `envconfig:"REWARDS_WORKERS" default:"5"`

	// rabbitmq (необязательный)
	RabbitURL string `envconfig:"REWARDS_RABBIT_URL"`

	OtelEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage {
	case StorageMongo:
		if c.Mongo == "" {
			return fmt.Errorf("env REWARDS_MONGO is not set")
		}
	case StoragePostgres:
		if c.PostgresDSN == "" {
			return fmt.Errorf("env REWARDS_POSTGRES_DSN is not set")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unknown storage %q", c.Storage)
	}
	if !c.Rate.IsPositive() {
		return fmt.Errorf("env REWARDS_RATE must be positive")
	}
	if c.MinCashout < 1 {
		c.MinCashout = 1
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	return nil
}

// Настройки сервера выплат
func (c *Config) RequireGateway() error {
	if c.StripeKey == "" {
		return fmt.Errorf("env REWARDS_STRIPE_KEY is not set")
	}
	if c.StripeWebhookSecret == "" {
		return fmt.Errorf("env REWARDS_STRIPE_WEBHOOK_SECRET is not set")
	}
	return nil
}

func (c *Config) RequireKafka() error {
	if len(c.KafkaBrokers) == 0 {
		return fmt.Errorf("env REWARDS_KAFKA_BROKERS is not set")
	}
	return nil
}
