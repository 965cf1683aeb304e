package logger_test

import (
	"context"
	"testing"

	"leakwatch/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGet_fallsBackToDefault(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	got := logger.Get(context.Background())
	require.NotNil(t, got)
}

func TestWithLogger_roundTrip(t *testing.T) {
	custom := zap.NewNop()
	ctx := logger.WithLogger(context.Background(), custom)

	require.Same(t, custom, logger.Get(ctx))
}

func TestWithFields_derivesNewLogger(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	base := context.Background()
	derived := logger.WithFields(base, zap.String("cycle", "leak_recheck"))

	require.NotSame(t, logger.Get(base), logger.Get(derived))
}
