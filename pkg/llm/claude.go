package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/loglens/loglens/pkg/config"
)

const defaultClaudeEndpoint = "https://api.anthropic.com"

type Claude struct {
	apiKey    string
	endpoint  string
	client    *http.Client
	model     string
	maxTokens int
}

func NewClaude(cfg config.Config) *Claude {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultClaudeEndpoint
	}
	return &Claude{
		apiKey:    cfg.APIKey,
		endpoint:  endpoint,
		client:    &http.Client{Timeout: cfg.Timeout},
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
	}
}

func (c *Claude) Chat(system, user string) (string, error) {
	// The Anthropic API carries the system prompt as a top-level field.
	body := map[string]interface{}{
		"model":  c.model,
		"system": system,
		"messages": []map[string]string{{
			"role":    "user",
			"content": user,
		}},
		"max_tokens":  c.maxTokens,
		"temperature": 0,
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", c.endpoint+"/v1/messages", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	log.Debug().Str("model", c.model).Int("status", resp.StatusCode).Int("reply_bytes", len(respBytes)).Msg("claude chat completion")
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Claude API error (status %d): %s", resp.StatusCode, string(respBytes))
	}

	// Minimal struct to pull out the content text.
	var claudeResp struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(respBytes, &claudeResp); err != nil {
		return "", err
	}
	if claudeResp.Error.Message != "" {
		return "", fmt.Errorf("Claude API error: %s", claudeResp.Error.Message)
	}
	if len(claudeResp.Content) == 0 {
		return "", fmt.Errorf("empty response from Claude")
	}
	return claudeResp.Content[0].Text, nil
}

// GetModel returns the model being used by this Claude client
func (c *Claude) GetModel() string {
	return c.model
}
