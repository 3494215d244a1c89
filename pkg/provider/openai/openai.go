package openai

import (
	"context"
	"errors"
	"io"
	"iter"
	"strings"

	"github.com/sashabaranov/go-openai"
	"google.golang.org/adk/model"
	"google.golang.org/genai"
)

// Provider implements model.LLM over any OpenAI-compatible chat endpoint.
// Text conversations only.
type Provider struct {
	client *openai.Client
	model  string
}

func NewProvider(client *openai.Client, modelName string) *Provider {
	return &Provider{
		client: client,
		model:  modelName,
	}
}

// Name implements model.LLM.
func (p *Provider) Name() string {
	return p.model
}

// GenerateContent implements model.LLM.
func (p *Provider) GenerateContent(ctx context.Context, req *model.LLMRequest, streaming bool) iter.Seq2[*model.LLMResponse, error] {
	return func(yield func(*model.LLMResponse, error) bool) {
		chatReq := openai.ChatCompletionRequest{
			Model:    p.model,
			Messages: toChatMessages(req),
		}

		if !streaming {
			resp, err := p.client.CreateChatCompletion(ctx, chatReq)
			if err != nil {
				yield(nil, err)
				return
			}
			yield(toLLMResponse(resp), nil)
			return
		}

		stream, err := p.client.CreateChatCompletionStream(ctx, chatReq)
		if err != nil {
			yield(nil, err)
			return
		}
		defer stream.Close()

		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(toStreamResponse(resp), nil) {
				return
			}
		}
	}
}

func toChatMessages(req *model.LLMRequest) []openai.ChatCompletionMessage {
	var messages []openai.ChatCompletionMessage

	if req.Config != nil && req.Config.SystemInstruction != nil {
		var sb strings.Builder
		for _, part := range req.Config.SystemInstruction.Parts {
			sb.WriteString(part.Text)
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: sb.String(),
		})
	}

	for _, c := range req.Contents {
		role := openai.ChatMessageRoleUser
		if c.Role == "model" {
			role = openai.ChatMessageRoleAssistant
		}

		var sb strings.Builder
		for _, part := range c.Parts {
			sb.WriteString(part.Text)
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: sb.String(),
		})
	}
	return messages
}

func toLLMResponse(resp openai.ChatCompletionResponse) *model.LLMResponse {
	if len(resp.Choices) == 0 {
		return &model.LLMResponse{}
	}
	return &model.LLMResponse{
		Content: genai.NewContentFromText(resp.Choices[0].Message.Content, genai.RoleModel),
	}
}

func toStreamResponse(resp openai.ChatCompletionStreamResponse) *model.LLMResponse {
	if len(resp.Choices) == 0 {
		return &model.LLMResponse{}
	}
	return &model.LLMResponse{
		Content: genai.NewContentFromText(resp.Choices[0].Delta.Content, genai.RoleModel),
	}
}
