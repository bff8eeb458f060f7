// Package config предоставляет структуры и функцию загрузки настроек
// сервиса из переменных окружения.
package config

import (
	"fmt"
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек сервиса.
type Config struct {
	Env string `env:"ENV" env-default:"local"`
	HTTPServer
	MongoConnection
	RedisConnection
}

// HTTPServer структура для настройки HTTP-сервера.
type HTTPServer struct {
	Address     string        `env:"HTTP_ADDRESS" env-default:":8080"`
	Timeout     time.Duration `env:"HTTP_TIMEOUT" env-default:"10s"`
	IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// MongoConnection структура для настройки подключения к MongoDB.
// Хост и порт обязательны: без них процесс не стартует.
type MongoConnection struct {
	MongoHost string `env:"MONGODB_HOST" env-required:"true"`
	MongoPort string `env:"MONGODB_PORT" env-required:"true"`
}

// RedisConnection структура для настройки подключения к Redis.
// Хост и порт обязательны: без них процесс не стартует.
type RedisConnection struct {
	RedisHost   string        `env:"REDIS_HOST" env-required:"true"`
	RedisPort   string        `env:"REDIS_PORT" env-required:"true"`
	Password    string        `env:"REDIS_PASSWORD" env-default:""`
	DB          int           `env:"REDIS_DB" env-default:"0"`
	MaxRetries  int           `env:"REDIS_MAX_RETRIES" env-default:"0"`
	DialTimeout time.Duration `env:"REDIS_DIAL_TIMEOUT" env-default:"5s"`
	Timeout     time.Duration `env:"REDIS_TIMEOUT" env-default:"3s"`
}

// URI возвращает строку подключения к MongoDB.
func (m MongoConnection) URI() string {
	return fmt.Sprintf("mongodb://%s:%s", m.MongoHost, m.MongoPort)
}

// Addr возвращает адрес Redis в виде host:port.
func (r RedisConnection) Addr() string {
	return fmt.Sprintf("%s:%s", r.RedisHost, r.RedisPort)
}

// MustLoad загружает конфигурацию из переменных окружения. Процесс
// завершается, если отсутствует хотя бы одна обязательная переменная
// ( MONGODB_HOST, MONGODB_PORT, REDIS_HOST, REDIS_PORT ).
func MustLoad() *Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config from environment: %s", err)
	}
	return &cfg
}
