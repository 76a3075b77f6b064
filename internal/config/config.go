// Package config предоставляет структуры и функцию для парсинга и загрузки конфига.
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек сервиса.
type Config struct {
	Env                     string `yaml:"env" env-default:"local"`
	StorageConnectionString string `yaml:"storage_connection_string" env:"STORAGE_CONNECTION_STRING"`
	RedisConnection         `yaml:"redis_connection"`
	RabbitConnection        `yaml:"rabbitmq"`
	HTTPServer              `yaml:"http_server"`
	JWTToken                `yaml:"jwttoken"`
	Paystack                `yaml:"paystack"`
}

// HTTPServer структура для настройки сервера.
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env-default:":8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"30s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// RedisConnection структура для настройки подключения к redis.
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis"`
	Password     string        `yaml:"password"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries"`
	DialTimeout  time.Duration `yaml:"dial_timeout" env-default:"5s"`
	TimeoutRedis time.Duration `yaml:"timeoutredis" env-default:"5s"`
}

// RabbitConnection структура для подключения к RabbitMQ,
// куда публикуются события активации подписок.
type RabbitConnection struct {
	AMQPURL  string `yaml:"amqp_url" env:"AMQP_URL"`
	Exchange string `yaml:"exchange" env-default:"campusfit.events"`
}

// JWTToken структура для работы с jwt-токеном.
// Секретный ключ обязателен: резервного значения по умолчанию нет.
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key" env:"JWT_SECRET_KEY"`
	TokenTTL     time.Duration `yaml:"token_ttl" env-default:"24h"`
	Issuer       string        `yaml:"issuer" env-default:"campusfit"`
	Audience     string        `yaml:"audience" env-default:"campusfit-clients"`
}

// Paystack структура для настройки платёжного шлюза.
type Paystack struct {
	BaseURL     string `yaml:"base_url" env-default:"https://api.paystack.co"`
	SecretKey   string `yaml:"secret_key" env:"PAYSTACK_SECRET_KEY"`
	CallbackURL string `yaml:"callback_url"`
	Currency    string `yaml:"currency" env-default:"GHS"`
}

// MustLoad загружает конфиг по пути из CONFIG_PATH и валидирует секреты.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	if cfg.JWTSecretKey == "" {
		log.Fatal("jwttoken.jwt_secret_key is required")
	}
	if cfg.Paystack.SecretKey == "" {
		log.Fatal("paystack.secret_key is required")
	}
	return &cfg
}
