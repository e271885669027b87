package entry_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/jsdraven/rsa-keycheck/internal/config"
	"github.com/jsdraven/rsa-keycheck/internal/entry"
	"github.com/jsdraven/rsa-keycheck/internal/report"
)

func TestRun_CompiledInKeyPasses(t *testing.T) {
	cfg := &config.Config{LogLevel: slog.LevelInfo, Lang: language.English}
	var out, logs bytes.Buffer

	code := entry.Run(cfg, &out, &logs)
	require.Equal(t, report.ExitOK, code, out.String())
	assert.Contains(t, out.String(), "[PASS] MODULUS OK")
	assert.NotContains(t, out.String(), `"msg"`, "logs must not leak into the report")

	lines := bytes.Split(bytes.TrimSpace(logs.Bytes()), []byte{'\n'})
	require.NotEmpty(t, lines)
	var last map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &last))
	assert.Equal(t, "run_complete", last["msg"])
	assert.EqualValues(t, 0, last["exit_code"])
	runID, ok := last["run_id"].(string)
	require.True(t, ok)
	assert.Len(t, runID, 36)
}

func TestRun_ErrorLevelKeepsLogsQuiet(t *testing.T) {
	cfg := &config.Config{LogLevel: slog.LevelError, Lang: language.Vietnamese}
	var out, logs bytes.Buffer

	code := entry.Run(cfg, &out, &logs)
	assert.Equal(t, report.ExitOK, code)
	assert.Empty(t, logs.String())
	assert.Contains(t, out.String(), "MODULUS ĐÚNG!")
}
