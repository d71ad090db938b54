package formatter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loglens/loglens/pkg/model"
)

// TestWriteJSON emits the recovered document verbatim, pretty-printed with
// two-space indent and the model's key order intact.
func TestWriteJSON(t *testing.T) {
	result := model.NewStructured(json.RawMessage(`{"summary":"ok","errors":[],"recommendations":[]}`))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, result, "json"))

	assert.True(t, json.Valid(buf.Bytes()))
	assert.Equal(t, "{\n  \"summary\": \"ok\",\n  \"errors\": [],\n  \"recommendations\": []\n}\n", buf.String())
}

// TestWriteJSONFallback emits the raw_response document for unstructured
// replies.
func TestWriteJSONFallback(t *testing.T) {
	result := model.NewRawFallback("no structure here")

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, result, "json"))
	assert.JSONEq(t, `{"raw_response":"no structure here"}`, buf.String())
}

// TestWriteYAML renders both variants through the yaml view.
func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	structured := model.NewStructured(json.RawMessage(`{"summary":"ok","errors":[{"type":"db","count":2}]}`))
	require.NoError(t, Write(&buf, structured, "yaml"))
	assert.Contains(t, buf.String(), "summary: ok")
	assert.Contains(t, buf.String(), "type: db")

	buf.Reset()
	require.NoError(t, Write(&buf, model.NewRawFallback("plain text"), "yaml"))
	assert.Contains(t, buf.String(), "raw_response: plain text")
}

// TestWriteHuman renders both variants without error.
func TestWriteHuman(t *testing.T) {
	doc := `{"summary":"two error families","errors":[{"type":"db timeout","count":3,"earliest":"08:13","latest":"08:24","examples":["Connection to database failed"],"severity":"high","recommendation":"check the pool"}],"recommendations":["add retries"]}`

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, model.NewStructured(json.RawMessage(doc)), "human"))
	out := buf.String()
	assert.Contains(t, out, "two error families")
	assert.Contains(t, out, "db timeout")
	assert.Contains(t, out, "(x3)")
	assert.Contains(t, out, "Connection to database failed")
	assert.Contains(t, out, "add retries")

	buf.Reset()
	require.NoError(t, Write(&buf, model.NewRawFallback("free text reply"), "human"))
	assert.Contains(t, buf.String(), "free text reply")
}

// TestWriteFile puts the same bytes in the file that Write produces.
func TestWriteFile(t *testing.T) {
	result := model.NewStructured(json.RawMessage(`{"summary":"ok"}`))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, result, "json"))

	path := filepath.Join(t.TempDir(), "analysis.json")
	require.NoError(t, WriteFile(path, result, "json"))

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, buf.String(), string(written))
}

// TestWriteFileError surfaces a failed write instead of reporting success.
func TestWriteFileError(t *testing.T) {
	result := model.NewRawFallback("x")

	err := WriteFile(filepath.Join(t.TempDir(), "missing", "analysis.json"), result, "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write output file")
}

// TestWriteFileHumanPlain keeps ANSI escapes out of file targets even when
// terminal color is enabled.
func TestWriteFileHumanPlain(t *testing.T) {
	orig := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = orig })

	doc := `{"summary":"ok","errors":[{"type":"db timeout","count":2,"examples":["conn reset"],"severity":"high","recommendation":"check the pool"}],"recommendations":["add retries"]}`
	result := model.NewStructured(json.RawMessage(doc))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, result, "human"))
	assert.Contains(t, buf.String(), "\x1b[")

	path := filepath.Join(t.TempDir(), "analysis.txt")
	require.NoError(t, WriteFile(path, result, "human"))
	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(written), "\x1b[")
	assert.Contains(t, string(written), "db timeout")
	assert.Contains(t, string(written), "conn reset")
}

// TestWriteUnknownFormat falls back to the json contract format.
func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, model.NewRawFallback("x"), "csv"))
	assert.True(t, json.Valid(buf.Bytes()))
}
