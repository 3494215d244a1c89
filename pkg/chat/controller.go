package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pradella/helpline/pkg/engine"
)

// Controller drives one conversation against an engine. It is not safe for
// concurrent use; the waiting flag — checked before every submission — keeps
// at most one relay in flight, so callers that disable input while waiting
// need no further coordination.
type Controller struct {
	eng       engine.Engine
	userID    string
	sessionID string
	turns     []Turn
	waiting   bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithUserID pins the user identity instead of generating one.
func WithUserID(id string) Option {
	return func(c *Controller) { c.userID = id }
}

// New creates a controller with a fresh user identity. The identity is
// immutable for the controller's lifetime.
func New(eng engine.Engine, opts ...Option) *Controller {
	c := &Controller{eng: eng}
	for _, opt := range opts {
		opt(c)
	}
	if c.userID == "" {
		c.userID = fmt.Sprintf("user-%s", uuid.New())
	}
	return c
}

// UserID returns the client's opaque user identity.
func (c *Controller) UserID() string { return c.userID }

// SessionID returns the active session handle, or "" before one is created.
func (c *Controller) SessionID() string { return c.sessionID }

// HasSession reports whether a session is active.
func (c *Controller) HasSession() bool { return c.sessionID != "" }

// Waiting reports whether a relay is in flight.
func (c *Controller) Waiting() bool { return c.waiting }

// Turns returns a copy of the transcript.
func (c *Controller) Turns() []Turn {
	out := make([]Turn, len(c.turns))
	copy(out, c.turns)
	return out
}

// CreateSession creates a new session, replacing any active one. On success
// the transcript and waiting flag are cleared; on failure all prior state is
// left untouched. No retries.
func (c *Controller) CreateSession(ctx context.Context) (*engine.Session, error) {
	sess, err := c.eng.CreateSession(ctx, c.userID)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	c.sessionID = sess.ID
	c.turns = nil
	c.waiting = false
	return sess, nil
}

// SubmitUserTurn appends the user's message and raises the waiting flag. The
// transcript is only touched when the submission is accepted.
func (c *Controller) SubmitUserTurn(text string) error {
	if !c.HasSession() {
		return ErrNoActiveSession
	}
	if c.waiting {
		return ErrRelayInFlight
	}
	if strings.TrimSpace(text) == "" {
		return ErrEmptyTurn
	}
	c.turns = append(c.turns, Turn{Role: RoleUser, Content: text})
	c.waiting = true
	return nil
}

// Relay forwards the latest user turn to the agent and appends its reply. The
// event stream is scanned for model-role text parts; the last one wins. When
// no such event arrives the fixed fallback is used, and a transport failure
// appends an error fallback turn while also returning the error — the caller
// surfaces it as a banner and the conversation continues. The waiting flag is
// cleared on every exit path.
func (c *Controller) Relay(ctx context.Context) (Turn, error) {
	if !c.HasSession() {
		return Turn{}, ErrNoActiveSession
	}
	defer func() { c.waiting = false }()

	message, ok := c.lastUserTurn()
	if !ok {
		return Turn{}, ErrNothingToRelay
	}

	var reply string
	var found bool
	for event, err := range c.eng.StreamQuery(ctx, c.userID, c.sessionID, message) {
		if err != nil {
			turn := Turn{Role: RoleAssistant, Content: FallbackRelayError}
			c.turns = append(c.turns, turn)
			return turn, fmt.Errorf("failed to relay message: %w", err)
		}
		if text, ok := event.ModelText(); ok {
			// Last wins: later events overwrite earlier assistant text from
			// the same stream.
			reply, found = text, true
		}
	}

	if !found {
		reply = FallbackNoResponse
	}
	turn := Turn{Role: RoleAssistant, Content: reply}
	c.turns = append(c.turns, turn)
	return turn, nil
}

func (c *Controller) lastUserTurn() (string, bool) {
	for i := len(c.turns) - 1; i >= 0; i-- {
		if c.turns[i].Role == RoleUser {
			return c.turns[i].Content, true
		}
	}
	return "", false
}
