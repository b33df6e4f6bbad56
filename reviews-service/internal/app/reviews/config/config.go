package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"

	"reviewsapi/reviews-service/internal/app/reviews/entity"
)

// Порты по умолчанию зависят от выбранного хранилища
const (
	DefaultMongoDBPort = "5000"
	DefaultFilePort    = "3000"
)

type Config struct {
	Storage StorageConfig `envconfig:""`
	Server  ServerConfig  `envconfig:""`
	MongoDB MongoDBConfig `envconfig:""`
	Kafka   KafkaConfig   `envconfig:""`
	Log     LogConfig     `envconfig:""`
}

type StorageConfig struct {
	Backend     string `envconfig:"STORAGE_BACKEND" default:"mongodb" validate:"oneof=mongodb file"` // Основное хранилище, выбирается один раз при старте
	ReviewsFile string `envconfig:"REVIEWS_FILE" default:"reviews.json" validate:"required"`       // JSON-файл с отзывами (используется и как запасной вариант)
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port string `envconfig:"SERVER_PORT" validate:"omitempty,numeric"` // Пусто - порт по умолчанию для хранилища
}

type MongoDBConfig struct {
	URI            string        `envconfig:"MONGODB_URI" default:"mongodb://localhost:27017" validate:"required"`
	Database       string        `envconfig:"MONGODB_DATABASE" default:"reviewsDB" validate:"required"`
	ConnectTimeout time.Duration `envconfig:"MONGODB_CONNECT_TIMEOUT" default:"10s" validate:"gt=0"`
}

type KafkaConfig struct {
	Brokers []string `envconfig:"KAFKA_BROKERS"` // Пусто - публикация событий отключена
	Topic   string   `envconfig:"KAFKA_TOPIC" default:"review_events" validate:"required"`
}

type LogConfig struct {
	Level        string `envconfig:"LOG_LEVEL" default:"info"`
	LogstashAddr string `envconfig:"LOGSTASH_ADDR"`
}

// Load читает конфигурацию из переменных окружения и проверяет её
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = DefaultMongoDBPort
		if cfg.PrimaryBackend() == entity.BackendFile {
			cfg.Server.Port = DefaultFilePort
		}
	}

	return &cfg, nil
}

// PrimaryBackend возвращает хранилище, выбранное при старте
func (c *Config) PrimaryBackend() entity.Backend {
	return entity.Backend(c.Storage.Backend)
}

// KafkaEnabled - публиковать ли события о новых отзывах
func (c *Config) KafkaEnabled() bool {
	return len(c.Kafka.Brokers) > 0
}

func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}
