package automation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

func TestZapLogger(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	logger := automation.NewZapLogger(zap.New(core))

	logger.Debug("HTTP Request", map[string]interface{}{"method": "GET"})
	logger.Info("info", nil)
	logger.Warn("warn", nil)
	logger.Error("error", map[string]interface{}{"status_code": 500})

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "GET", entries[0].ContextMap()["method"])
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.EqualValues(t, 500, entries[3].ContextMap()["status_code"])
	assert.NotNil(t, logger.Zap())
}

func TestZapLogger_Nil(t *testing.T) {
	t.Parallel()

	logger := automation.NewZapLogger(nil)
	assert.NotPanics(t, func() { logger.Info("ignored", nil) })
}
