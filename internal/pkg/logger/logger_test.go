package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureDefault(t *testing.T, cfg Config) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	cfg.Output = &buf
	Init(cfg)
	t.Cleanup(func() { Init(Config{Level: "info", Format: "json", RedactSecrets: true}) })
	return &buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func TestInfoWritesStructuredFields(t *testing.T) {
	buf := captureDefault(t, Config{Level: "info", RedactSecrets: true})

	Info("campaign generated", "intent", "cart_abandonment", "size", 150)

	entry := lastEntry(t, buf)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "campaign generated", entry["message"])
	assert.Equal(t, "cart_abandonment", entry["intent"])
	assert.Equal(t, "150", entry["size"])
	assert.Contains(t, entry, "time")
}

func TestLevelFiltering(t *testing.T) {
	buf := captureDefault(t, Config{Level: "warn", RedactSecrets: true})

	Debug("hidden")
	Info("hidden")
	assert.Empty(t, buf.String())

	Warn("shown")
	assert.Equal(t, "shown", lastEntry(t, buf)["message"])
}

func TestSecretsAreRedacted(t *testing.T) {
	buf := captureDefault(t, Config{Level: "info", RedactSecrets: true})

	Info("connect", "api_key", "sk_live_abcdef123456", "owner_email", "john.doe@example.com", "note", "ping jane@corp.io")

	entry := lastEntry(t, buf)
	assert.Equal(t, "****3456", entry["api_key"])
	assert.Equal(t, "jo***@example.com", entry["owner_email"])
	assert.Equal(t, "ping ja***@corp.io", entry["note"])
}

func TestErrorsKeptWhenRedactionDisabled(t *testing.T) {
	buf := captureDefault(t, Config{Level: "info", RedactSecrets: false})

	Error("failed", "error", errors.New("boom"))

	assert.Equal(t, "boom", lastEntry(t, buf)["error"])
}

func TestRedactHelpers(t *testing.T) {
	assert.True(t, IsSecretKey("Access_Token"))
	assert.True(t, IsSecretKey("client_secret"))
	assert.False(t, IsSecretKey("source_id"))

	assert.Equal(t, "****", RedactSecret("short"))
	assert.Equal(t, "***@example.com", RedactEmail("ab@example.com"))
	assert.Equal(t, "***@***", RedactEmail("not-an-email"))
}
