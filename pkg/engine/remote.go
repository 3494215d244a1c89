package engine

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"net/http"
	"net/url"
	"strings"
	"time"

	"google.golang.org/genai"
)

// Remote is a client for a hosted agent API server. Sessions live under
// /apps/{agentRef}/users/{userID}/sessions/{sessionID}; queries go through
// /run_sse, which answers with a server-sent event stream of event records.
type Remote struct {
	baseURL  string
	agentRef string
	client   *http.Client

	// now is swapped in tests to mint deterministic session ids.
	now func() time.Time
}

// RemoteOption configures a Remote engine.
type RemoteOption func(*Remote)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c *http.Client) RemoteOption {
	return func(r *Remote) { r.client = c }
}

// NewRemote creates a client for the agent API server at baseURL. agentRef is
// the opaque reference of the deployed agent (the app name on the server).
func NewRemote(baseURL, agentRef string, opts ...RemoteOption) *Remote {
	r := &Remote{
		baseURL:  strings.TrimRight(baseURL, "/"),
		agentRef: agentRef,
		// No request timeout: the stream stays open until the agent finishes
		// the turn, so we rely on the transport defaults.
		client: &http.Client{},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Remote) sessionURL(userID, sessionID string) string {
	return fmt.Sprintf("%s/apps/%s/users/%s/sessions/%s",
		r.baseURL,
		url.PathEscape(r.agentRef),
		url.PathEscape(userID),
		url.PathEscape(sessionID))
}

// CreateSession registers a new session on the server. The session id is
// minted client-side; the server echoes the authoritative record back.
func (r *Remote) CreateSession(ctx context.Context, userID string) (*Session, error) {
	sessionID := fmt.Sprintf("session-%d", r.now().Unix())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.sessionURL(userID, sessionID), strings.NewReader("{}"))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to create session: %s - %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var sess Session
	if err := json.NewDecoder(resp.Body).Decode(&sess); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	if sess.ID == "" {
		sess.ID = sessionID
	}
	if sess.UserID == "" {
		sess.UserID = userID
	}
	if sess.AppName == "" {
		sess.AppName = r.agentRef
	}
	return &sess, nil
}

type runRequest struct {
	AppName    string         `json:"appName"`
	UserID     string         `json:"userId"`
	SessionID  string         `json:"sessionId"`
	NewMessage *genai.Content `json:"newMessage"`
	Streaming  bool           `json:"streaming"`
}

// StreamQuery posts one user message and yields each event the server emits.
func (r *Remote) StreamQuery(ctx context.Context, userID, sessionID, message string) iter.Seq2[*Event, error] {
	return func(yield func(*Event, error) bool) {
		body, err := json.Marshal(runRequest{
			AppName:    r.agentRef,
			UserID:     userID,
			SessionID:  sessionID,
			NewMessage: genai.NewContentFromText(message, genai.RoleUser),
			Streaming:  true,
		})
		if err != nil {
			yield(nil, fmt.Errorf("failed to encode query: %w", err))
			return
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/run_sse", bytes.NewReader(body))
		if err != nil {
			yield(nil, fmt.Errorf("failed to create request: %w", err))
			return
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "text/event-stream")

		resp, err := r.client.Do(req)
		if err != nil {
			yield(nil, fmt.Errorf("failed to query agent: %w", err))
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			respBody, _ := io.ReadAll(resp.Body)
			yield(nil, fmt.Errorf("failed to query agent: %s - %s", resp.Status, strings.TrimSpace(string(respBody))))
			return
		}

		scanner := bufio.NewScanner(resp.Body)
		// Model responses can exceed the default token size.
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		for scanner.Scan() {
			line := scanner.Text()
			if !strings.HasPrefix(line, "data:") {
				continue
			}
			data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			if data == "" || data == "[DONE]" {
				continue
			}

			var event Event
			if err := json.Unmarshal([]byte(data), &event); err != nil {
				// Skip records we don't understand rather than killing the
				// stream; the server interleaves bookkeeping payloads.
				continue
			}
			if !yield(&event, nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield(nil, fmt.Errorf("event stream interrupted: %w", err))
		}
	}
}
