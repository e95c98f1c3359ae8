package security

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSeverity(t *testing.T) {
	tests := []struct {
		event EventType
		want  Severity
	}{
		{EventSubmissionAccepted, SeverityINFO},
		{EventValidationFailed, SeverityMEDIUM},
		{EventDuplicateSubmission, SeverityMEDIUM},
		{EventRateLimitTriggered, SeverityWARN},
		{EventDeliveryFailed, SeverityHIGH},
		{EventType("unknown"), SeverityMEDIUM},
	}
	for _, tt := range tests {
		t.Run(string(tt.event), func(t *testing.T) {
			assert.Equal(t, tt.want, GetSeverity(tt.event))
		})
	}
	assert.True(t, IsHighOrAbove(EventDeliveryFailed))
	assert.False(t, IsHighOrAbove(EventRateLimitTriggered))
}

func TestLogAttachesSeverity(t *testing.T) {
	sl, logs := newObserved()

	sl.LogRateLimitTriggered(context.Background(), "10.0.0.1", "curl/8", "req-1", "/v1/contact")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "WARN", logs.All()[0].ContextMap()["severity"])
}
