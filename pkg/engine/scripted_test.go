package engine

import (
	"context"
	"testing"

	"google.golang.org/genai"
)

func modelEventFor(text string) *Event {
	return &Event{Content: genai.NewContentFromText(text, genai.RoleModel)}
}

func userEventFor(text string) *Event {
	return &Event{Content: genai.NewContentFromText(text, genai.RoleUser)}
}

func collectModelText(t *testing.T, eng Engine, userID, sessionID, msg string) string {
	t.Helper()
	var last string
	for ev, err := range eng.StreamQuery(context.Background(), userID, sessionID, msg) {
		if err != nil {
			t.Fatalf("stream failed: %v", err)
		}
		if text, ok := ev.ModelText(); ok {
			last = text
		}
	}
	return last
}

func TestScriptedRepliesInOrder(t *testing.T) {
	eng := NewScripted("one", "two")

	sess, err := eng.CreateSession(context.Background(), "user-abc")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if sess.UserID != "user-abc" {
		t.Errorf("session user = %s", sess.UserID)
	}
	if sess.ID == "" {
		t.Error("expected a session id")
	}

	if got := collectModelText(t, eng, "user-abc", sess.ID, "a"); got != "one" {
		t.Errorf("first reply = %q", got)
	}
	if got := collectModelText(t, eng, "user-abc", sess.ID, "b"); got != "two" {
		t.Errorf("second reply = %q", got)
	}
	// Cycles once exhausted.
	if got := collectModelText(t, eng, "user-abc", sess.ID, "c"); got != "one" {
		t.Errorf("wrapped reply = %q", got)
	}
}

func TestScriptedRewindsOnNewSession(t *testing.T) {
	eng := NewScripted("one", "two")

	sess, err := eng.CreateSession(context.Background(), "user-abc")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	collectModelText(t, eng, "user-abc", sess.ID, "a")

	sess2, err := eng.CreateSession(context.Background(), "user-abc")
	if err != nil {
		t.Fatalf("second CreateSession failed: %v", err)
	}
	if got := collectModelText(t, eng, "user-abc", sess2.ID, "a"); got != "one" {
		t.Errorf("reply after rewind = %q, expected %q", got, "one")
	}
}

func TestScriptedDefaultScript(t *testing.T) {
	eng := NewScripted()
	sess, err := eng.CreateSession(context.Background(), "user-abc")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if got := collectModelText(t, eng, "user-abc", sess.ID, "hi"); got == "" {
		t.Error("default script yielded no reply")
	}
}
