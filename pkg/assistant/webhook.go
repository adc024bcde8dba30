package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// WebhookClient speaks the stateless protocol: a single JSON object with
// the prompt in, a single JSON object with the reply out.
type WebhookClient struct {
	URL    string
	Client *http.Client
}

var _ Client = &WebhookClient{}

func NewWebhookClient(url string) *WebhookClient {
	return &WebhookClient{
		URL: url,
		Client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type webhookRequest struct {
	UserInput string `json:"user_input"`
}

type webhookResponse struct {
	Reply *string `json:"reply"`
}

func (c *WebhookClient) Send(ctx context.Context, prompt string, _ *Session) (*Result, error) {
	payload, err := json.Marshal(webhookRequest{UserInput: prompt})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("assistant returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed webhookResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	result := &Result{}
	if parsed.Reply != nil {
		result.Reply = *parsed.Reply
		result.HasReply = true
	}
	return result, nil
}
