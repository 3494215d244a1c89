// Package engine talks to an agent-hosting service. A session is created once
// per conversation, then each user message is relayed with StreamQuery, which
// yields the event records the service emits while the agent works.
package engine

import (
	"context"
	"iter"

	"google.golang.org/genai"
)

// Session is what the hosting service returns when a session is created.
type Session struct {
	ID             string  `json:"id"`
	UserID         string  `json:"userId"`
	AppName        string  `json:"appName"`
	LastUpdateTime float64 `json:"lastUpdateTime"`
}

// Event is one record emitted while the agent processes a query. Content is
// optional; progress and state-only events carry none.
type Event struct {
	Author  string         `json:"author,omitempty"`
	Content *genai.Content `json:"content,omitempty"`
}

// ModelText returns the event's text if the content role is "model" and a
// non-empty text part is present.
func (e *Event) ModelText() (string, bool) {
	if e == nil || e.Content == nil || e.Content.Role != "model" {
		return "", false
	}
	for _, p := range e.Content.Parts {
		if p != nil && p.Text != "" {
			return p.Text, true
		}
	}
	return "", false
}

// Engine is a conversational agent host. Implementations: Remote (hosted API
// server), Local (in-process ADK runner), Scripted (canned replies).
type Engine interface {
	// CreateSession registers a new conversation context for the user.
	CreateSession(ctx context.Context, userID string) (*Session, error)

	// StreamQuery relays one user message and yields the resulting events in
	// order. The sequence ends when the agent finishes the turn; a yielded
	// error ends the stream.
	StreamQuery(ctx context.Context, userID, sessionID, message string) iter.Seq2[*Event, error]
}
