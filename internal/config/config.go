package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Postgres: карты и журнал транзакций
type Postgres struct {
	Host     string `env:"CARDS_DB,required"`
	Port     string `env:"CARDS_DB_PORT" envDefault:"5432"`
	User     string `env:"CARDS_DB_USER,required"`
	Password string `env:"CARDS_DB_PASSWORD,required"`
	Database string `env:"CARDS_DB_BASE,required"`
}

// DSN escapes credentials and the database name.
func (p Postgres) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(p.User, p.Password),
		Host:   net.JoinHostPort(p.Host, p.Port),
		Path:   "/" + p.Database,
	}
	return u.String()
}

// Mongo: программы и награды
type Mongo struct {
	Host     string `env:"CARDS_MONGO,required"`
	Database string `env:"CARDS_MONGO_DB" envDefault:"cardsDB"`
}

func (m Mongo) URI() string {
	return "mongodb://" + m.Host
}

// Redis: кэш балансов, без адреса кэш выключен
type Cache struct {
	Addr     string        `env:"CARDS_CACHE_URL"`
	User     string        `env:"CARDS_CACHE_USER"`
	Password string        `env:"CARDS_CACHE_PWD"`
	TTL      time.Duration `env:"CARDS_CACHE_TTL" envDefault:"5m"`
}

func (c Cache) Enabled() bool {
	return c.Addr != ""
}

type Kafka struct {
	Host  string `env:"KAFKA_URL,required"`
	Port  string `env:"KAFKA_PORT,required"`
	Group string `env:"KAFKA_GROUP" envDefault:"cards"`
}

func (k Kafka) Broker() string {
	return k.Host + ":" + k.Port
}

type Rabbit struct {
	Host         string `env:"RABBIT_URL,required"`
	Port         string `env:"RABBIT_PORT" envDefault:"5672"`
	User         string `env:"RABBIT_USER,required"`
	Password     string `env:"RABBIT_PASSWORD,required"`
	Queue        string `env:"RABBIT_QUEUE" envDefault:"redemptions"`
	ConfirmQueue string `env:"RABBIT_CONFIRM_QUEUE" envDefault:"redemption_confirms"`
}

func (r Rabbit) URL() string {
	u := url.URL{
		Scheme: "amqp",
		User:   url.UserPassword(r.User, r.Password),
		Host:   net.JoinHostPort(r.Host, r.Port),
		Path:   "/",
	}
	return u.String()
}

type Tracing struct {
	Endpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4317"`
}

// кол-во параллельных обработчиков
type Workers struct {
	Count int `env:"CARDS_WORKERS" envDefault:"3"`
}

// Конфигурации бинарников

type Server struct {
	Port string `env:"CARDS_HTTP_PORT" envDefault:"8080"`
	Postgres
	Mongo
	Cache
	Tracing
}

type GRPCServer struct {
	Port string `env:"CARDS_GRPC_PORT" envDefault:"50051"`
	Postgres
	Mongo
	Cache
}

// Consumer covers the kafka purchase and return consumers.
type Consumer struct {
	Postgres
	Mongo
	Cache
	Kafka
	Workers
}

type Redeemer struct {
	Postgres
	Mongo
	Cache
	Rabbit
	Workers
}

type Expirer struct {
	Postgres
	Mongo
	Cache
	Workers
}

// Load reads an optional .env file and then parses the environment into T.
// Variables already set in the environment win over .env values.
func Load[T any](files ...string) (T, error) {
	var cfg T
	err := godotenv.Load(files...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}
	err = env.Parse(&cfg)
	if err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
