package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pradella/helpline/pkg/chat"
	"github.com/pradella/helpline/pkg/engine"
)

// ChatModel is the full-screen chat page. It keeps its own transcript
// snapshot so the view never reads controller state while a relay command is
// running in the background.
type ChatModel struct {
	ctrl *chat.Controller

	viewport viewport.Model
	input    textinput.Model
	spin     spinner.Model

	title   string
	turns   []chat.Turn
	banner  string
	waiting bool
	ready   bool
	width   int
	height  int
}

type sessionCreatedMsg struct {
	sess *engine.Session
	err  error
}

type relayDoneMsg struct {
	turn chat.Turn
	err  error
}

// NewChatModel builds the chat page around a controller. The session is
// created on Init.
func NewChatModel(ctrl *chat.Controller, title string) ChatModel {
	ti := textinput.New()
	ti.Placeholder = "Describe the suspicious activity..."
	ti.CharLimit = 0
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPink)

	if title == "" {
		title = "Fraud Support Helpline"
	}

	return ChatModel{
		ctrl:  ctrl,
		input: ti,
		spin:  sp,
		title: title,
	}
}

func createSessionCmd(ctrl *chat.Controller) tea.Cmd {
	return func() tea.Msg {
		sess, err := ctrl.CreateSession(context.Background())
		return sessionCreatedMsg{sess: sess, err: err}
	}
}

func relayCmd(ctrl *chat.Controller) tea.Cmd {
	return func() tea.Msg {
		turn, err := ctrl.Relay(context.Background())
		return relayDoneMsg{turn: turn, err: err}
	}
}

func (m ChatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, createSessionCmd(m.ctrl))
}

func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		chromeHeight := 6 // title, session line, input, help, spacing
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-chromeHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - chromeHeight
		}
		m.input.Width = msg.Width - 4
		m.refreshTranscript()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+n":
			if m.waiting {
				return m, nil
			}
			return m, createSessionCmd(m.ctrl)
		case "enter":
			if m.waiting {
				return m, nil
			}
			text := m.input.Value()
			if err := m.ctrl.SubmitUserTurn(text); err != nil {
				if errors.Is(err, chat.ErrEmptyTurn) {
					return m, nil
				}
				m.banner = err.Error()
				return m, nil
			}
			m.turns = append(m.turns, chat.Turn{Role: chat.RoleUser, Content: text})
			m.waiting = true
			m.banner = ""
			m.input.Reset()
			m.refreshTranscript()
			return m, tea.Batch(relayCmd(m.ctrl), m.spin.Tick)
		}

	case sessionCreatedMsg:
		if msg.err != nil {
			m.banner = fmt.Sprintf("Could not create a session: %v", msg.err)
			return m, nil
		}
		m.turns = nil
		m.banner = ""
		m.waiting = false
		m.refreshTranscript()
		return m, nil

	case relayDoneMsg:
		m.waiting = false
		if msg.turn.Content != "" {
			m.turns = append(m.turns, msg.turn)
		}
		if msg.err != nil {
			m.banner = fmt.Sprintf("Message delivery failed: %v", msg.err)
		} else {
			m.banner = ""
		}
		m.refreshTranscript()
		return m, nil

	case spinner.TickMsg:
		if !m.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *ChatModel) refreshTranscript() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

func (m ChatModel) renderTranscript() string {
	if len(m.turns) == 0 {
		return helpStyle.Render("Ask about a suspicious charge, a blocked card, or anything else.")
	}

	wrap := m.width - 4
	var sb strings.Builder
	for i, turn := range m.turns {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		switch turn.Role {
		case chat.RoleUser:
			sb.WriteString(userLabelStyle.Render("You"))
			sb.WriteString("\n")
			sb.WriteString(turn.Content)
		case chat.RoleAssistant:
			sb.WriteString(assistantLabelStyle.Render("Agent"))
			sb.WriteString("\n")
			sb.WriteString(RenderMarkdown(turn.Content, wrap))
		}
	}
	return sb.String()
}

func (m ChatModel) View() string {
	if !m.ready {
		return "loading..."
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(m.title))
	sb.WriteString("\n")

	if m.ctrl.HasSession() {
		sb.WriteString(sessionInfoStyle.Render(fmt.Sprintf("session %s · %s", m.ctrl.SessionID(), m.ctrl.UserID())))
	} else {
		sb.WriteString(sessionInfoStyle.Render("no active session"))
	}
	sb.WriteString("\n\n")

	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")

	if m.banner != "" {
		sb.WriteString(bannerStyle.Width(m.width - 2).Render(m.banner))
		sb.WriteString("\n")
	}

	if m.waiting {
		sb.WriteString(fmt.Sprintf("%s thinking...", m.spin.View()))
	} else {
		sb.WriteString(m.input.View())
	}
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("enter send · ctrl+n new session · ctrl+c quit"))
	return sb.String()
}
