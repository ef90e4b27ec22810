package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureJSON(t *testing.T, fn func()) map[string]interface{} {
	t.Helper()
	var buf bytes.Buffer
	std := logrus.StandardLogger()
	prevOut, prevFmt := std.Out, std.Formatter
	std.SetOutput(&buf)
	std.SetFormatter(&logrus.JSONFormatter{})
	defer func() {
		std.SetOutput(prevOut)
		std.SetFormatter(prevFmt)
	}()

	fn()

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestWithContextTagsUserAndRequest(t *testing.T) {
	ctx := ContextWithUserID(context.Background(), "user-1")
	ctx = ContextWithRequestID(ctx, "req-1")

	entry := captureJSON(t, func() {
		WithContext(ctx).WithField("op", "send_invite").Info("hello")
	})

	assert.Equal(t, "user-1", entry["user_id"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "send_invite", entry["op"])
	assert.Equal(t, "hello", entry["msg"])
}

func TestWithContextAnonymous(t *testing.T) {
	entry := captureJSON(t, func() {
		WithContext(context.Background()).Warn("no user")
	})

	assert.Equal(t, "anonymous", entry["user_id"])
	_, hasRequest := entry["request_id"]
	assert.False(t, hasRequest)
}

func TestRequestID(t *testing.T) {
	assert.Equal(t, "", RequestID(context.Background()))
	assert.Equal(t, "abc", RequestID(ContextWithRequestID(context.Background(), "abc")))
}
