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

// CopilotClient speaks the session-based protocol. The conversation id and
// DirectLine token from each response must be carried into the next call.
type CopilotClient struct {
	URL    string
	Client *http.Client
}

var _ Client = &CopilotClient{}

func NewCopilotClient(url string) *CopilotClient {
	return &CopilotClient{
		URL: url,
		Client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type copilotRequest struct {
	UserInput              string  `json:"userInput"`
	CurrentConversationId  *string `json:"currentConversationId"`
	CurrentDirectLineToken *string `json:"currentDirectLineToken"`
}

type copilotResponse struct {
	Recommendation  *string `json:"recommendation"`
	ConversationId  string  `json:"conversationId"`
	DirectLineToken string  `json:"directLineToken"`
}

func (c *CopilotClient) Send(ctx context.Context, prompt string, session *Session) (*Result, error) {
	reqBody := copilotRequest{UserInput: prompt}
	if session != nil {
		if session.ConversationID != "" {
			reqBody.CurrentConversationId = &session.ConversationID
		}
		if session.DirectLineToken != "" {
			reqBody.CurrentDirectLineToken = &session.DirectLineToken
		}
	}

	payload, err := json.Marshal(reqBody)
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

	var parsed copilotResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	result := &Result{}
	if parsed.Recommendation != nil {
		result.Reply = *parsed.Recommendation
		result.HasReply = true
	}
	if parsed.ConversationId != "" || parsed.DirectLineToken != "" {
		result.Session = &Session{
			ConversationID:  parsed.ConversationId,
			DirectLineToken: parsed.DirectLineToken,
		}
	}
	return result, nil
}
