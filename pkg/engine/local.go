package engine

import (
	"context"
	"fmt"
	"iter"
	"time"

	adkagent "google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/genai"
)

// DefaultInstruction is the system instruction for the embedded agent when the
// config provides none.
const DefaultInstruction = "You are a fraud support agent. Help the user understand and " +
	"resolve suspicious activity on their account. Be concise and factual."

// LocalConfig configures an in-process engine.
type LocalConfig struct {
	// AppName identifies the agent in the session store. Required.
	AppName string

	// Model backs the embedded agent. Required.
	Model model.LLM

	// Instruction overrides DefaultInstruction when set.
	Instruction string

	// SessionService overrides the in-memory default, e.g. in tests.
	SessionService session.Service
}

// Local runs the agent in-process instead of calling a hosted deployment. It
// keeps the same session/event surface as Remote, backed by an ADK runner and
// an in-memory session service.
type Local struct {
	appName string
	service session.Service
	runner  *runner.Runner
}

// autoInitService guards against session services that create sessions with
// nil state maps (InMemoryService in ADK v0.2.0 did).
type autoInitService struct {
	session.Service
}

func (s *autoInitService) Create(ctx context.Context, req *session.CreateRequest) (*session.CreateResponse, error) {
	if req.State == nil {
		req.State = make(map[string]any)
	}
	return s.Service.Create(ctx, req)
}

// NewLocal builds the embedded agent and its runner.
func NewLocal(cfg LocalConfig) (*Local, error) {
	if cfg.AppName == "" {
		return nil, fmt.Errorf("app name required")
	}
	if cfg.Model == nil {
		return nil, fmt.Errorf("model required")
	}

	instruction := cfg.Instruction
	if instruction == "" {
		instruction = DefaultInstruction
	}

	agent, err := llmagent.New(llmagent.Config{
		Name:        cfg.AppName,
		Model:       cfg.Model,
		Instruction: instruction,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	service := cfg.SessionService
	if service == nil {
		service = session.InMemoryService()
	}
	service = &autoInitService{Service: service}

	r, err := runner.New(runner.Config{
		AppName:        cfg.AppName,
		Agent:          agent,
		SessionService: service,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create runner: %w", err)
	}

	return &Local{
		appName: cfg.AppName,
		service: service,
		runner:  r,
	}, nil
}

// CreateSession registers a session with the in-process session service.
func (l *Local) CreateSession(ctx context.Context, userID string) (*Session, error) {
	resp, err := l.service.Create(ctx, &session.CreateRequest{
		AppName: l.appName,
		UserID:  userID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return &Session{
		ID:             resp.Session.ID(),
		UserID:         userID,
		AppName:        l.appName,
		LastUpdateTime: float64(time.Now().Unix()),
	}, nil
}

// StreamQuery runs the embedded agent for one user message.
func (l *Local) StreamQuery(ctx context.Context, userID, sessionID, message string) iter.Seq2[*Event, error] {
	return func(yield func(*Event, error) bool) {
		userMsg := genai.NewContentFromText(message, genai.RoleUser)

		for ev, err := range l.runner.Run(ctx, userID, sessionID, userMsg, adkagent.RunConfig{}) {
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(&Event{Author: ev.Author, Content: ev.LLMResponse.Content}, nil) {
				return
			}
		}
	}
}
