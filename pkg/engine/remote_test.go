package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRemoteCreateSession(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, expected POST", r.Method)
		}
		json.NewEncoder(w).Encode(Session{
			ID:             "session-1712000000",
			UserID:         "user-abc",
			AppName:        "fraud_support_agent",
			LastUpdateTime: 1712000000.5,
		})
	}))
	defer srv.Close()

	eng := NewRemote(srv.URL, "fraud_support_agent")
	eng.now = func() time.Time { return time.Unix(1712000000, 0) }

	sess, err := eng.CreateSession(context.Background(), "user-abc")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	wantPath := "/apps/fraud_support_agent/users/user-abc/sessions/session-1712000000"
	if gotPath != wantPath {
		t.Errorf("path = %s, expected %s", gotPath, wantPath)
	}
	if sess.ID != "session-1712000000" {
		t.Errorf("session id = %s", sess.ID)
	}
	if sess.AppName != "fraud_support_agent" {
		t.Errorf("app name = %s", sess.AppName)
	}
	if sess.LastUpdateTime != 1712000000.5 {
		t.Errorf("last update time = %f", sess.LastUpdateTime)
	}
}

func TestRemoteCreateSessionServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "agent not found", http.StatusNotFound)
	}))
	defer srv.Close()

	eng := NewRemote(srv.URL, "missing_agent")
	if _, err := eng.CreateSession(context.Background(), "user-abc"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestRemoteStreamQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/run_sse" {
			t.Errorf("path = %s, expected /run_sse", r.URL.Path)
		}
		var req runRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode run request: %v", err)
		}
		if req.AppName != "fraud_support_agent" || req.UserID != "user-abc" || req.SessionID != "session-1" {
			t.Errorf("run request routing = %+v", req)
		}
		if req.NewMessage == nil || len(req.NewMessage.Parts) == 0 || req.NewMessage.Parts[0].Text != "hello" {
			t.Errorf("run request message = %+v", req.NewMessage)
		}

		w.Header().Set("Content-Type", "text/event-stream")
		// Progress record without content, a malformed line, then two model
		// replies and a trailing comment.
		fmt.Fprint(w, "data: {\"author\":\"fraud_support_agent\"}\n\n")
		fmt.Fprint(w, ": keepalive\n\n")
		fmt.Fprint(w, "data: not-json\n\n")
		fmt.Fprint(w, "data: {\"author\":\"fraud_support_agent\",\"content\":{\"role\":\"model\",\"parts\":[{\"text\":\"working on it\"}]}}\n\n")
		fmt.Fprint(w, "data: {\"author\":\"fraud_support_agent\",\"content\":{\"role\":\"model\",\"parts\":[{\"text\":\"Approved\"}]}}\n\n")
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer srv.Close()

	eng := NewRemote(srv.URL, "fraud_support_agent")

	var texts []string
	var eventCount int
	for ev, err := range eng.StreamQuery(context.Background(), "user-abc", "session-1", "hello") {
		if err != nil {
			t.Fatalf("stream yielded error: %v", err)
		}
		eventCount++
		if text, ok := ev.ModelText(); ok {
			texts = append(texts, text)
		}
	}

	if eventCount != 3 {
		t.Errorf("expected 3 decoded events, got %d", eventCount)
	}
	if len(texts) != 2 || texts[0] != "working on it" || texts[1] != "Approved" {
		t.Errorf("model texts = %v", texts)
	}
}

func TestRemoteStreamQueryTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "session expired", http.StatusBadRequest)
	}))
	defer srv.Close()

	eng := NewRemote(srv.URL, "fraud_support_agent")

	var gotErr error
	for _, err := range eng.StreamQuery(context.Background(), "user-abc", "session-1", "hello") {
		if err != nil {
			gotErr = err
		}
	}
	if gotErr == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestRemoteStreamQueryUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	eng := NewRemote(srv.URL, "fraud_support_agent")

	var gotErr error
	for _, err := range eng.StreamQuery(context.Background(), "user-abc", "session-1", "hello") {
		if err != nil {
			gotErr = err
		}
	}
	if gotErr == nil {
		t.Fatal("expected transport error")
	}
}

func TestModelText(t *testing.T) {
	tests := []struct {
		name   string
		event  *Event
		want   string
		wantOK bool
	}{
		{name: "nil event"},
		{name: "no content", event: &Event{Author: "x"}},
		{name: "user role", event: userEventFor("hi")},
		{name: "model role", event: modelEventFor("hi"), want: "hi", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.event.ModelText()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ModelText() = (%q, %v), expected (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
