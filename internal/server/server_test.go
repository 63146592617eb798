package server

import (
	"context"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestServerShutdown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := New(gin.New(), "127.0.0.1", "0", zap.NewNop())

	done := make(chan error, 1)
	go func() { done <- srv.Start() }()

	// Give the listener a moment to bind before shutting down.
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, srv.Shutdown(ctx))
	assert.NoError(t, <-done)
}
