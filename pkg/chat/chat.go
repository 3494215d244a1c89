// Package chat holds the client-side conversation state: one user identity,
// at most one active session, an append-only transcript, and a waiting flag
// that admits at most one relay at a time.
package chat

import "errors"

// Role attributes a turn to one side of the conversation.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in the transcript.
type Turn struct {
	Role    Role
	Content string
}

// Fallback texts appended when a relay yields nothing usable.
const (
	FallbackNoResponse = "I received your message but couldn't generate a response."
	FallbackRelayError = "Sorry, there was an error processing your request."
)

var (
	// ErrNoActiveSession is returned when a message is submitted or relayed
	// before a session exists.
	ErrNoActiveSession = errors.New("no active session")

	// ErrRelayInFlight is returned when a submission arrives while a relay is
	// still running.
	ErrRelayInFlight = errors.New("relay already in flight")

	// ErrEmptyTurn is returned for blank submissions.
	ErrEmptyTurn = errors.New("empty message")

	// ErrNothingToRelay is returned when Relay is called without a pending
	// user turn.
	ErrNothingToRelay = errors.New("no user turn to relay")
)
