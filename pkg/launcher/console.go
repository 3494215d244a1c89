package launcher

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pradella/helpline/pkg/chat"
	"github.com/pradella/helpline/pkg/engine"
	"github.com/pradella/helpline/pkg/ui"
)

// ANSI color codes for plain-console output.
const (
	colorReset = "\033[0m"
	colorCyan  = "\033[36m"
	colorBlue  = "\033[34m"
	colorGray  = "\033[90m"
)

// ConsoleConfig contains configuration for the plain-console launcher, used
// when stdout is not a TTY or when --plain is set.
type ConsoleConfig struct {
	Engine engine.Engine
	UserID string
	Title  string
	In     io.Reader
	Out    io.Writer
}

// RunConsole runs the conversation as a line-oriented stdin loop. "/new"
// replaces the session, "/quit" exits.
func RunConsole(ctx context.Context, cfg *ConsoleConfig) error {
	in := cfg.In
	if in == nil {
		in = os.Stdin
	}
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	var opts []chat.Option
	if cfg.UserID != "" {
		opts = append(opts, chat.WithUserID(cfg.UserID))
	}
	ctrl := chat.New(cfg.Engine, opts...)

	title := cfg.Title
	if title == "" {
		title = "Fraud Support Helpline"
	}
	fmt.Fprintf(out, "%s\n%s\n", title, strings.Repeat("=", len(title)))

	sess, err := ctrl.CreateSession(ctx)
	if err != nil {
		fmt.Fprint(out, ui.RenderSessionErrorBox(err))
		return err
	}
	fmt.Fprintf(out, "%ssession %s · %s%s\n", colorGray, sess.ID, ctrl.UserID(), colorReset)
	fmt.Fprintf(out, "%stype /new for a fresh session, /quit to exit%s\n\n", colorGray, colorReset)

	reader := bufio.NewReader(in)
	for {
		fmt.Fprintf(out, "%sYou:%s ", colorCyan, colorReset)
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				fmt.Fprintln(out)
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		text := strings.TrimSpace(line)
		switch text {
		case "":
			continue
		case "/quit", "/exit":
			return nil
		case "/new":
			sess, err := ctrl.CreateSession(ctx)
			if err != nil {
				fmt.Fprint(out, ui.RenderSessionErrorBox(err))
				continue
			}
			fmt.Fprintf(out, "%snew session %s%s\n\n", colorGray, sess.ID, colorReset)
			continue
		}

		if err := ctrl.SubmitUserTurn(text); err != nil {
			fmt.Fprint(out, ui.RenderErrorBox("Message not accepted", "", err.Error()))
			continue
		}

		turn, err := ctrl.Relay(ctx)
		if err != nil {
			fmt.Fprint(out, ui.RenderRelayErrorBox(err))
		}
		fmt.Fprintf(out, "%sAgent:%s\n%s\n\n", colorBlue, colorReset, ui.RenderMarkdown(turn.Content, 100))
	}
}
