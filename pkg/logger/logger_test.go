package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeKVsRedactsSensitiveKeys(t *testing.T) {
	out := sanitizeKVs([]interface{}{"user_id", "u1", "Password", "hunter2", "access_token", "abc", "email", "a@b.c"})
	assert.Equal(t, []interface{}{"user_id", "u1", "Password", "[REDACTED]", "access_token", "[REDACTED]", "email", "[REDACTED]"}, out)
}

func TestSanitizeKVsOddLength(t *testing.T) {
	out := sanitizeKVs([]interface{}{"path", "/health", "dangling"})
	assert.Equal(t, []interface{}{"path", "/health", "dangling"}, out)
}

func TestNopDoesNotPanic(t *testing.T) {
	l := Nop().With("component", "test")
	l.Info("hello", "k", 1)
	l.Sync()
}
