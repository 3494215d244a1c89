package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pradella/helpline/pkg/chat"
	"github.com/pradella/helpline/pkg/engine"
)

func pressKey(m ChatModel, key string) (ChatModel, tea.Cmd) {
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+n":
		msg = tea.KeyMsg{Type: tea.KeyCtrlN}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, cmd := m.Update(msg)
	return next.(ChatModel), cmd
}

func readyModel(t *testing.T) ChatModel {
	t.Helper()
	ctrl := chat.New(engine.NewScripted("ok"))
	m := NewChatModel(ctrl, "")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	model := next.(ChatModel)

	// Run the session command Init would have issued.
	msg := createSessionCmd(ctrl)()
	next, _ = model.Update(msg)
	return next.(ChatModel)
}

func TestSubmitStartsRelay(t *testing.T) {
	m := readyModel(t)
	m.input.SetValue("my card was charged twice")

	m, cmd := pressKey(m, "enter")
	if !m.waiting {
		t.Error("expected waiting after submit")
	}
	if cmd == nil {
		t.Fatal("expected a relay command")
	}
	if len(m.turns) != 1 || m.turns[0].Role != chat.RoleUser {
		t.Errorf("transcript = %+v", m.turns)
	}
	if m.input.Value() != "" {
		t.Error("input not cleared after submit")
	}
}

func TestInputGatedWhileWaiting(t *testing.T) {
	m := readyModel(t)
	m.waiting = true
	m.input.SetValue("second message")

	m, cmd := pressKey(m, "enter")
	if cmd != nil {
		t.Error("expected no command while waiting")
	}
	if len(m.turns) != 0 {
		t.Errorf("transcript grew while waiting: %+v", m.turns)
	}

	// New-session is gated too.
	if _, cmd := pressKey(m, "ctrl+n"); cmd != nil {
		t.Error("expected ctrl+n ignored while waiting")
	}
}

func TestRelayDoneAppendsReply(t *testing.T) {
	m := readyModel(t)
	m.waiting = true

	next, _ := m.Update(relayDoneMsg{turn: chat.Turn{Role: chat.RoleAssistant, Content: "Approved"}})
	m = next.(ChatModel)
	if m.waiting {
		t.Error("waiting flag not cleared")
	}
	if len(m.turns) != 1 || m.turns[0].Content != "Approved" {
		t.Errorf("transcript = %+v", m.turns)
	}
	if m.banner != "" {
		t.Errorf("unexpected banner: %s", m.banner)
	}
}

func TestRelayFailureRaisesBanner(t *testing.T) {
	m := readyModel(t)
	m.waiting = true

	next, _ := m.Update(relayDoneMsg{
		turn: chat.Turn{Role: chat.RoleAssistant, Content: chat.FallbackRelayError},
		err:  errFake,
	})
	m = next.(ChatModel)
	if m.banner == "" {
		t.Error("expected an error banner")
	}
	if len(m.turns) != 1 || m.turns[0].Content != chat.FallbackRelayError {
		t.Errorf("transcript = %+v", m.turns)
	}
}

func TestSessionFailureLeavesTranscript(t *testing.T) {
	m := readyModel(t)
	m.turns = []chat.Turn{{Role: chat.RoleUser, Content: "hello"}}

	next, _ := m.Update(sessionCreatedMsg{err: errFake})
	m = next.(ChatModel)
	if m.banner == "" {
		t.Error("expected an error banner")
	}
	if len(m.turns) != 1 {
		t.Errorf("transcript changed on failed session creation: %+v", m.turns)
	}
	if !strings.Contains(m.banner, "Could not create a session") {
		t.Errorf("banner = %s", m.banner)
	}
}

var errFake = &fakeError{}

type fakeError struct{}

func (*fakeError) Error() string { return "boom" }
