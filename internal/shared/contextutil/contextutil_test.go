package contextutil_test

import (
	"context"
	"testing"

	"go-ems/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, contextutil.GetRequestID(ctx))

	ctx = contextutil.WithRequestID(ctx, "req-123")
	assert.Equal(t, "req-123", contextutil.GetRequestID(ctx))
}

func TestUserID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, contextutil.GetUserID(ctx))

	ctx = contextutil.WithUserID(ctx, "user-42")
	assert.Equal(t, "user-42", contextutil.GetUserID(ctx))
}

func TestLogger(t *testing.T) {
	scoped := zap.NewNop().Named("request")
	fallback := zap.NewNop().Named("service")

	t.Run("request-scoped logger wins", func(t *testing.T) {
		ctx := contextutil.WithLogger(context.Background(), scoped)
		assert.Same(t, scoped, contextutil.GetLogger(ctx, fallback))
	})

	t.Run("falls back when the context carries none", func(t *testing.T) {
		assert.Same(t, fallback, contextutil.GetLogger(context.Background(), fallback))
	})

	t.Run("never returns nil", func(t *testing.T) {
		assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))
	})
}
