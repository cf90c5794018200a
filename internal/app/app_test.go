package app

import (
	"context"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/containerno/internal/config"
)

func TestNew_Wiring(t *testing.T) {
	gin.SetMode(gin.TestMode)

	a, err := New(context.Background(), config.Config{Port: 8081, MaxBatch: 4, RateLimitRPS: 2, RateLimitBurst: 2})
	require.NoError(t, err)
	assert.Equal(t, ":8081", a.Addr())
	assert.Equal(t, 4, a.Service.MaxBatch())
	require.NotNil(t, a.Limiter)
	require.NoError(t, a.Close())
}

func TestNew_NoLimiter(t *testing.T) {
	a, err := New(context.Background(), config.Config{})
	require.NoError(t, err)
	assert.Nil(t, a.Limiter)
	assert.Equal(t, 10, a.Service.MaxBatch())
	require.NoError(t, a.Close())
}

func TestNew_BadPort(t *testing.T) {
	_, err := New(context.Background(), config.Config{Port: 70000})
	assert.Error(t, err)
}

func TestStart_StopsOnCancel(t *testing.T) {
	a, err := New(context.Background(), config.Config{Port: 0})
	require.NoError(t, err)
	defer a.Close()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- a.Start(ctx) }()
	cancel()
	assert.NoError(t, <-errCh)
}
