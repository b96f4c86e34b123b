package notify

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadWriteFile(t *testing.T) {
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	p := NewPayload("me@example.com", "Job Monitor: 2 New Jobs Found - 2026-08-30", "<html></html>", now)

	path := filepath.Join(t.TempDir(), "output", "email_to_send.json")
	require.NoError(t, p.WriteFile(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	// external-workflow contract: exact field names
	var got map[string]string
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "me@example.com", got["to"])
	assert.Equal(t, "Job Monitor: 2 New Jobs Found - 2026-08-30", got["subject"])
	assert.Equal(t, "<html></html>", got["body"])
	assert.Equal(t, "2026-08-30T09:00:00Z", got["timestamp"])
}
