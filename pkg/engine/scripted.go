package engine

import (
	"context"
	"fmt"
	"iter"
	"sync"
	"time"

	"google.golang.org/genai"
)

// defaultScript is cycled through when a Scripted engine is built without
// replies. The texture mimics a fraud-support exchange for demos.
var defaultScript = []string{
	"Hello! I'm the fraud support agent. I can help you review suspicious " +
		"activity on your account. What would you like to check?",
	"I looked into that transaction. It was flagged because the merchant is " +
		"outside your usual spending area. If you don't recognize it, I can " +
		"open a dispute for you.",
	"Done. I've opened dispute case FR-20931 and blocked the card ending in " +
		"4417. A replacement card ships within 5 business days.",
	"Is there anything else I can help you with?",
}

// Scripted is an offline engine that answers from a fixed list of replies,
// cycling when the list runs out. Used by the demo flag and in tests.
type Scripted struct {
	mu      sync.Mutex
	replies []string
	next    int

	// Typing simulates response latency per event. Zero in tests.
	Typing time.Duration
}

// NewScripted returns a scripted engine. With no replies the default
// fraud-support script is used.
func NewScripted(replies ...string) *Scripted {
	if len(replies) == 0 {
		replies = defaultScript
	}
	return &Scripted{replies: replies}
}

// CreateSession mints a synthetic session and rewinds the script.
func (s *Scripted) CreateSession(ctx context.Context, userID string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next = 0
	now := time.Now()
	return &Session{
		ID:             fmt.Sprintf("session-%d", now.Unix()),
		UserID:         userID,
		AppName:        "scripted",
		LastUpdateTime: float64(now.Unix()),
	}, nil
}

// StreamQuery yields a bookkeeping event without content followed by the next
// scripted reply, mirroring the record shape a hosted agent emits.
func (s *Scripted) StreamQuery(ctx context.Context, userID, sessionID, message string) iter.Seq2[*Event, error] {
	return func(yield func(*Event, error) bool) {
		s.mu.Lock()
		reply := s.replies[s.next%len(s.replies)]
		s.next++
		typing := s.Typing
		s.mu.Unlock()

		if typing > 0 {
			select {
			case <-time.After(typing):
			case <-ctx.Done():
				yield(nil, ctx.Err())
				return
			}
		}

		if !yield(&Event{Author: "scripted"}, nil) {
			return
		}
		yield(&Event{
			Author:  "scripted",
			Content: genai.NewContentFromText(reply, genai.RoleModel),
		}, nil)
	}
}
