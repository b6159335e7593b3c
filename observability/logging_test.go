package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("default config", func(t *testing.T) {
		t.Parallel()

		logger, err := NewLogger(DefaultLogConfig())
		require.NoError(t, err)
		assert.NotNil(t, logger)
	})

	t.Run("console format", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultLogConfig()
		cfg.Format = "console"
		cfg.Output = "stderr"

		logger, err := NewLogger(cfg)
		require.NoError(t, err)
		assert.NotNil(t, logger)
	})

	t.Run("invalid level", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultLogConfig()
		cfg.Level = "loudest"

		logger, err := NewLogger(cfg)
		assert.Error(t, err)
		assert.Nil(t, logger)
	})
}

func TestNopLogger(t *testing.T) {
	t.Parallel()

	logger := NopLogger()

	assert.NotPanics(t, func() {
		logger.Debug("debug", String("k", "v"))
		logger.Info("info", Int("n", 1))
		logger.Warn("warn", Bool("b", true))
		logger.Error("error", Error(assert.AnError))
		logger.With(String("component", "test")).Info("with")
	})
	assert.NoError(t, logger.Sync())
}
