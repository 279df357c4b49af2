package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnv_Defaults(t *testing.T) {
	cfg := LoadEnv()

	assert.Equal(t, ":8080", cfg.Server.HTTPPort)
	assert.Equal(t, "customer_service", cfg.Postgres.DBName)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "items-commands", cfg.Kafka.CommandsTopic)
	assert.Equal(t, 300, cfg.PriceList.CacheTTLSeconds)
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", ":9000")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("POSTGRES_MAX_OPEN_CONNS", "25")
	t.Setenv("LOGGER_DISABLE_STACKTRACE", "false")

	cfg := LoadEnv()

	assert.Equal(t, ":9000", cfg.Server.HTTPPort)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 25, cfg.Postgres.MaxOpenConns)
	assert.False(t, cfg.Logger.DisableStacktrace)
}

func TestLoadEnv_MalformedIntFallsBack(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := LoadEnv()

	assert.Equal(t, 0, cfg.Redis.DB)
}
