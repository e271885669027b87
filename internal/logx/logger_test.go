// Package logx_test internal/logx/logger_test.go
package logx_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsdraven/rsa-keycheck/internal/logx"
)

func TestNew(t *testing.T) {
	l := logx.New(slog.LevelInfo, nil)
	require.NotNil(t, l, "expected non-nil logger")
}

func TestNew_LevelAndJSON(t *testing.T) {
	var buf bytes.Buffer
	l := logx.New(slog.LevelWarn, &buf)

	l.Info("info_message")
	l.Warn("check_complete", "check", "modulus")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte{'\n'})
	require.Len(t, lines, 1, "INFO must be filtered at WARN level")

	var m map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &m))
	assert.Equal(t, "WARN", m["level"])
	assert.Equal(t, "check_complete", m["msg"])
	assert.Equal(t, "modulus", m["check"])
}
