package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyLogger  = key("logger")
	KeyUUID    = key("uuid")
	KeyMetrics = key("metrics")
)

type Config struct {
	Service    Service
	Postgres   Postgres
	Redis      Redis
	Kafka      Kafka
	Centrifuge Centrifuge
	Chat       Chat
	Logger     Logger
	Metrics    Metrics
	Platform   Platform
}

type Service struct {
	Name string `env:"CHAT_SERVICE_NAME" env-default:"chat-service"`
	Port string `env:"CHAT_SERVICE_PORT" env-default:"8080"`
}

type Postgres struct {
	User     string `env:"CHAT_SERVICE_POSTGRES_USER" env-required:"true"`
	Password string `env:"CHAT_SERVICE_POSTGRES_PASSWORD" env-required:"true"`
	Database string `env:"CHAT_SERVICE_POSTGRES_DB" env-required:"true"`
	Host     string `env:"CHAT_SERVICE_POSTGRES_HOST" env-required:"true"`
	Port     string `env:"CHAT_SERVICE_POSTGRES_PORT" env-default:"5432"`
}

type Redis struct {
	Host      string        `env:"CHAT_SERVICE_REDIS_HOST" env-required:"true"`
	Port      string        `env:"CHAT_SERVICE_REDIS_PORT" env-default:"6379"`
	Password  string        `env:"CHAT_SERVICE_REDIS_PASSWORD" env-default:""`
	DB        int           `env:"CHAT_SERVICE_REDIS_DB" env-default:"0"`
	UnreadTTL time.Duration `env:"CHAT_SERVICE_REDIS_UNREAD_TTL" env-default:"30s"`
}

type Kafka struct {
	Host            string `env:"KAFKA_HOST" env-required:"true"`
	Port            string `env:"KAFKA_PORT" env-required:"true"`
	ChangefeedTopic string `env:"CHAT_CHANGEFEED_TOPIC" env-default:"chat.changefeed"`
	UserTopic       string `env:"USER_DATA_TOPIC" env-default:"user.updated"`
}

type Centrifuge struct {
	BaseURL   string        `env:"CENTRIFUGO_BASE_URL" env-required:"true"`
	APIKey    string        `env:"CENTRIFUGO_API_KEY" env-required:"true"`
	JWTSecret string        `env:"CENTRIFUGO_JWT_SECRET" env-required:"true"`
	Timeout   time.Duration `env:"CENTRIFUGO_TIMEOUT" env-default:"5s"`
}

type Chat struct {
	PageSize int `env:"CHAT_PAGE_SIZE" env-default:"20"`
}

type Logger struct {
	Host string `env:"LOGGER_HOST" env-required:"true"`
	Port string `env:"LOGGER_PORT" env-required:"true"`
}

type Metrics struct {
	Host string `env:"METRICS_HOST" env-required:"true"`
	Port int    `env:"METRICS_PORT" env-required:"true"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

func MustLoad() *Config {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read env variables: %v", err)
	}
	return cfg
}
