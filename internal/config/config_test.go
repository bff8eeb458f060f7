package config

import (
	"os"
	"testing"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("MONGODB_HOST", "mongo.local")
	t.Setenv("MONGODB_PORT", "27017")
	t.Setenv("REDIS_HOST", "redis.local")
	t.Setenv("REDIS_PORT", "6379")
}

func TestReadEnv_Defaults(t *testing.T) {
	setRequiredEnv(t)

	var cfg Config
	require.NoError(t, cleanenv.ReadEnv(&cfg))

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, ":8080", cfg.Address)
	assert.Equal(t, 10*time.Second, cfg.HTTPServer.Timeout)
	assert.Equal(t, 60*time.Second, cfg.IdleTimeout)
	assert.Equal(t, 0, cfg.DB)
	assert.Equal(t, 5*time.Second, cfg.DialTimeout)
	assert.Equal(t, 3*time.Second, cfg.RedisConnection.Timeout)
}

func TestReadEnv_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ENV", "prod")
	t.Setenv("HTTP_ADDRESS", ":9090")
	t.Setenv("REDIS_PASSWORD", "secret")
	t.Setenv("REDIS_DB", "3")

	var cfg Config
	require.NoError(t, cleanenv.ReadEnv(&cfg))

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, ":9090", cfg.Address)
	assert.Equal(t, "secret", cfg.Password)
	assert.Equal(t, 3, cfg.DB)
}

func TestReadEnv_MissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		missing string
	}{
		{name: "без хоста MongoDB", missing: "MONGODB_HOST"},
		{name: "без порта MongoDB", missing: "MONGODB_PORT"},
		{name: "без хоста Redis", missing: "REDIS_HOST"},
		{name: "без порта Redis", missing: "REDIS_PORT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			// t.Setenv выше регистрирует восстановление, здесь переменную
			// нужно именно убрать из окружения.
			require.NoError(t, os.Unsetenv(tt.missing))

			var cfg Config
			assert.Error(t, cleanenv.ReadEnv(&cfg))
		})
	}
}

func TestMongoConnection_URI(t *testing.T) {
	m := MongoConnection{MongoHost: "mongo.local", MongoPort: "27017"}
	assert.Equal(t, "mongodb://mongo.local:27017", m.URI())
}

func TestRedisConnection_Addr(t *testing.T) {
	r := RedisConnection{RedisHost: "redis.local", RedisPort: "6379"}
	assert.Equal(t, "redis.local:6379", r.Addr())
}
