package security_test

import (
	"context"
	"testing"

	"skillmatch-backend/pkg/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSecurityLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sl := security.WithZap(zap.New(core), "skillmatch", "test")

	sl.LogUnauthorized(context.Background(), "10.0.0.1", "curl", "req-1", "/analysis", "expired")
	sl.LogFileEvent(context.Background(), security.EventMalwareDetected, "user-1", "cv.pdf",
		map[string]interface{}{"threat": "Eicar-Signature"})

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "unauthorized_access", entries[0].Message)
	assert.Equal(t, "10.0.0.1", entries[0].ContextMap()["ip"])
	assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	fields := entries[1].ContextMap()
	assert.Equal(t, "CRITICAL", fields["severity"])
	assert.Equal(t, security.HashValue("user-1"), fields["subject_value"])
	assert.NotContains(t, fields["subject_value"], "user-1")
}

func TestNilSecurityLoggerDiscards(t *testing.T) {
	var sl *security.SecurityLogger
	assert.NotPanics(t, func() {
		sl.LogRateLimitTriggered(context.Background(), "ip", "ua", "req", "/upload-resume")
		_ = sl.Sync()
	})
}

func TestGetSeverity(t *testing.T) {
	assert.Equal(t, security.SeverityCRITICAL, security.GetSeverity(security.EventMalwareDetected))
	assert.Equal(t, security.SeverityMEDIUM, security.GetSeverity("unknown"))
}
