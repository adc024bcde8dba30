// Package assistant wraps the remote AI completion service. Two wire
// protocols exist: a stateless webhook and a session-based copilot
// endpoint; both are hidden behind the Client interface.
package assistant

import (
	"context"
)

// Session carries the continuation tokens a session-based assistant hands
// back; stateless protocols leave it nil.
type Session struct {
	ConversationID  string
	DirectLineToken string
}

// Result is the parsed assistant response. HasReply is false when the
// response was well-formed but carried no reply text; callers substitute
// their own fallback message in that case.
type Result struct {
	Reply    string
	HasReply bool
	Session  *Session
}

// Client defines the contract for any assistant backend.
type Client interface {
	// Send forwards an enriched prompt. A non-2xx status or transport
	// failure is returned as an error; a missing reply field is not.
	Send(ctx context.Context, prompt string, session *Session) (*Result, error)
}
