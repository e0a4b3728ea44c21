package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compliancedesk/internal/platform/config"
)

func TestNewWithoutURL(t *testing.T) {
	client, err := New(context.Background(), config.RedisConfig{})

	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestOptionsFrom(t *testing.T) {
	t.Run("pool settings override the url", func(t *testing.T) {
		opts, err := optionsFrom(config.RedisConfig{
			URL:          "redis://cache:6380/2",
			PoolSize:     20,
			MinIdleConns: 4,
			ReadTimeout:  time.Second,
		})

		require.NoError(t, err)
		assert.Equal(t, "cache:6380", opts.Addr)
		assert.Equal(t, 2, opts.DB)
		assert.Equal(t, 20, opts.PoolSize)
		assert.Equal(t, 4, opts.MinIdleConns)
		assert.Equal(t, time.Second, opts.ReadTimeout)
	})

	t.Run("zero values keep defaults", func(t *testing.T) {
		opts, err := optionsFrom(config.RedisConfig{URL: "redis://cache:6379/0"})

		require.NoError(t, err)
		assert.Zero(t, opts.PoolSize)
		assert.Zero(t, opts.DialTimeout)
	})

	t.Run("bad url", func(t *testing.T) {
		_, err := optionsFrom(config.RedisConfig{URL: "http://cache"})
		assert.ErrorContains(t, err, "parse redis url")
	})
}
