package security

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved() (*SecurityLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewSecurityLogger(zap.New(core), "europlast-backend", "test"), logs
}

func TestLogValidationFailed(t *testing.T) {
	sl, logs := newObserved()

	sl.LogValidationFailed(context.Background(), "10.0.0.1", "req-1", []string{"phone", "email"})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, "validation_failed", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, "10.0.0.1", fields["ip"])
	assert.Equal(t, `{"fields":"email,phone"}`, fields["details"])
}

func TestLogSubmissionOutcome(t *testing.T) {
	sl, logs := newObserved()

	sl.LogSubmission(context.Background(), "sub-1", "alice@example.com", "10.0.0.1", "req-1", nil)
	sl.LogSubmission(context.Background(), "sub-2", "alice@example.com", "10.0.0.1", "req-2", errors.New("smtp down"))

	require.Equal(t, 2, logs.Len())
	accepted, failed := logs.All()[0], logs.All()[1]
	assert.Equal(t, zapcore.InfoLevel, accepted.Level)
	assert.Equal(t, "a***@example.com", accepted.ContextMap()["subject_value"])
	assert.Equal(t, zapcore.ErrorLevel, failed.Level)
	assert.Equal(t, "delivery_failed", failed.Message)
	assert.Contains(t, failed.ContextMap()["details"], "smtp down")
}

func TestLogDuplicateSubmissionHashesKey(t *testing.T) {
	sl, logs := newObserved()

	sl.LogDuplicateSubmission(context.Background(), "session-123", "10.0.0.1", "req-1")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, HashValue("session-123"), logs.All()[0].ContextMap()["subject_value"])
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "j***@example.com", MaskEmail("john@example.com"))
	assert.Equal(t, "***", MaskEmail("ab"))
	assert.Equal(t, "***@example.com", MaskEmail("a@example.com"))
}

func TestDefaultLoggerIsUsableBeforeInit(t *testing.T) {
	assert.NotPanics(t, func() {
		DefaultLogger().LogRateLimitTriggered(context.Background(), "ip", "ua", "req", "/v1/contact")
	})
}
