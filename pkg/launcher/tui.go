package launcher

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pradella/helpline/pkg/chat"
	"github.com/pradella/helpline/pkg/engine"
	"github.com/pradella/helpline/pkg/ui"
)

// TUIConfig contains configuration for the full-screen terminal launcher.
type TUIConfig struct {
	Engine engine.Engine
	UserID string
	Title  string
}

// RunTUI runs the chat page as a full-screen bubbletea program. The session
// is created on startup; failures surface as an inline banner and the user
// can retry with ctrl+n.
func RunTUI(cfg *TUIConfig) error {
	var opts []chat.Option
	if cfg.UserID != "" {
		opts = append(opts, chat.WithUserID(cfg.UserID))
	}
	ctrl := chat.New(cfg.Engine, opts...)

	p := tea.NewProgram(ui.NewChatModel(ctrl, cfg.Title), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run chat UI: %w", err)
	}
	return nil
}
