package llm

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loglens/loglens/pkg/config"
)

// TestClaudeChat verifies the Anthropic wire format: auth headers, the
// top-level system field and reply extraction from the content array.
func TestClaudeChat(t *testing.T) {
	var gotPath, gotKey, gotVersion string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		payload, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(payload, &gotBody))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"content":[{"text":"claude reply"}]}`)
	}))
	defer server.Close()

	client := NewClaude(testConfig(config.ProviderClaude, server.URL))
	reply, err := client.Chat("system text", "user text")
	require.NoError(t, err)
	assert.Equal(t, "claude reply", reply)

	assert.Equal(t, "/v1/messages", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "2023-06-01", gotVersion)
	assert.Equal(t, "test-model", gotBody["model"])
	assert.Equal(t, "system text", gotBody["system"])
	assert.Equal(t, float64(1500), gotBody["max_tokens"])
	assert.Equal(t, float64(0), gotBody["temperature"])

	messages, ok := gotBody["messages"].([]interface{})
	require.True(t, ok)
	require.Len(t, messages, 1)
	user := messages[0].(map[string]interface{})
	assert.Equal(t, "user", user["role"])
	assert.Equal(t, "user text", user["content"])
}

// TestClaudeChatStatusError surfaces non-200 responses with status and body.
func TestClaudeChatStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"error":{"message":"invalid x-api-key"}}`)
	}))
	defer server.Close()

	client := NewClaude(testConfig(config.ProviderClaude, server.URL))
	_, err := client.Chat("s", "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
	assert.Contains(t, err.Error(), "invalid x-api-key")
}

// TestClaudeChatEmptyContent treats a reply without content as an error.
func TestClaudeChatEmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"content":[]}`)
	}))
	defer server.Close()

	client := NewClaude(testConfig(config.ProviderClaude, server.URL))
	_, err := client.Chat("s", "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response from Claude")
}
