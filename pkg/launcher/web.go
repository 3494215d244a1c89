package launcher

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/pradella/helpline/pkg/chat"
	"github.com/pradella/helpline/pkg/engine"
	"github.com/pradella/helpline/web"
)

// WebConfig contains configuration for the browser launcher.
type WebConfig struct {
	Engine engine.Engine
	Port   int
}

// chatServer holds one controller per browser session. Each websocket
// drives its controller sequentially, so the map lock is the only shared
// state to guard.
type chatServer struct {
	eng      engine.Engine
	md       goldmark.Markdown
	upgrader websocket.Upgrader

	mu          sync.RWMutex
	controllers map[string]*chat.Controller
}

type socketRequest struct {
	Message string `json:"message"`
}

type socketReply struct {
	Role  string `json:"role"`
	Text  string `json:"text"`
	HTML  string `json:"html,omitempty"`
	Error string `json:"error,omitempty"`
}

// RunWeb serves the single-page chat interface. Sessions are created over
// POST /api/session and messages relayed over a websocket.
func RunWeb(cfg *WebConfig) error {
	server := newChatServer(cfg.Engine)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("Starting web UI on http://localhost:%d", cfg.Port)
	return http.ListenAndServe(addr, server.routes())
}

func newChatServer(eng engine.Engine) *chatServer {
	return &chatServer{
		eng: eng,
		md:  goldmark.New(goldmark.WithExtensions(extension.GFM)),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		controllers: make(map[string]*chat.Controller),
	}
}

func (s *chatServer) routes() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/api/session", s.handleCreateSession).Methods("POST")
	router.HandleFunc("/ws/{session}", s.handleSocket)
	router.PathPrefix("/").Handler(http.FileServer(http.FS(web.StaticFS())))
	return router
}

func (s *chatServer) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	ctrl := chat.New(s.eng)
	sess, err := ctrl.CreateSession(r.Context())
	if err != nil {
		writeJSONError(w, http.StatusBadGateway, err)
		return
	}

	s.mu.Lock()
	s.controllers[sess.ID] = ctrl
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sess)
}

func (s *chatServer) handleSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session"]

	s.mu.RLock()
	ctrl, ok := s.controllers[sessionID]
	s.mu.RUnlock()
	if !ok {
		http.Error(w, "unknown session", http.StatusNotFound)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	for {
		var req socketRequest
		if err := conn.ReadJSON(&req); err != nil {
			return
		}

		if err := ctrl.SubmitUserTurn(req.Message); err != nil {
			if writeErr := conn.WriteJSON(socketReply{Error: err.Error()}); writeErr != nil {
				return
			}
			continue
		}

		turn, relayErr := ctrl.Relay(r.Context())
		reply := socketReply{
			Role: string(turn.Role),
			Text: turn.Content,
			HTML: s.renderHTML(turn.Content),
		}
		if relayErr != nil {
			reply.Error = relayErr.Error()
		}
		if err := conn.WriteJSON(reply); err != nil {
			return
		}
	}
}

// renderHTML converts an agent reply's markdown to HTML for the browser,
// falling back to raw text on conversion failure.
func (s *chatServer) renderHTML(text string) string {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(text), &buf); err != nil {
		return text
	}
	return buf.String()
}

func writeJSONError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
