package openai

import (
	"testing"

	"github.com/sashabaranov/go-openai"
	"google.golang.org/adk/model"
	"google.golang.org/genai"
)

func TestToChatMessages(t *testing.T) {
	req := &model.LLMRequest{
		Config: &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText("be brief", genai.RoleUser),
		},
		Contents: []*genai.Content{
			genai.NewContentFromText("hello", genai.RoleUser),
			genai.NewContentFromText("hi there", genai.RoleModel),
			genai.NewContentFromText("what about this charge?", genai.RoleUser),
		},
	}

	messages := toChatMessages(req)
	if len(messages) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(messages))
	}

	wantRoles := []string{
		openai.ChatMessageRoleSystem,
		openai.ChatMessageRoleUser,
		openai.ChatMessageRoleAssistant,
		openai.ChatMessageRoleUser,
	}
	for i, want := range wantRoles {
		if messages[i].Role != want {
			t.Errorf("message %d role = %s, expected %s", i, messages[i].Role, want)
		}
	}
	if messages[0].Content != "be brief" {
		t.Errorf("system content = %q", messages[0].Content)
	}
	if messages[2].Content != "hi there" {
		t.Errorf("assistant content = %q", messages[2].Content)
	}
}

func TestToLLMResponse(t *testing.T) {
	resp := openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: "Approved"}},
		},
	}

	got := toLLMResponse(resp)
	if got.Content == nil || got.Content.Role != "model" {
		t.Fatalf("content = %+v", got.Content)
	}
	if got.Content.Parts[0].Text != "Approved" {
		t.Errorf("text = %q", got.Content.Parts[0].Text)
	}

	empty := toLLMResponse(openai.ChatCompletionResponse{})
	if empty.Content != nil {
		t.Errorf("expected empty response for no choices, got %+v", empty.Content)
	}
}
