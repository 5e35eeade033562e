package session_test

import (
	"testing"

	"github.com/ouvidoria/plataforma-denuncias/internal/app/session"
	"github.com/stretchr/testify/assert"
)

func TestRedisConfigOptions(t *testing.T) {
	cfg := session.RedisConfig{
		Address:      "redis:6379",
		Password:     "s3nh4",
		DB:           2,
		PoolSize:     20,
		MinIdleConns: 4,
	}

	opts := cfg.Options()
	assert.Equal(t, "redis:6379", opts.Addr)
	assert.Equal(t, "s3nh4", opts.Password)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 20, opts.PoolSize)
	assert.Equal(t, 4, opts.MinIdleConns)
}
