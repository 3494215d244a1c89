package openai

import (
	"context"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// ListModels fetches the chat-capable model IDs from OpenAI.
func ListModels(ctx context.Context, apiKey string) ([]string, error) {
	client := openai.NewClient(apiKey)
	models, err := client.ListModels(ctx)
	if err != nil {
		return nil, err
	}

	var modelNames []string
	for _, m := range models.Models {
		if strings.HasPrefix(m.ID, "gpt") {
			modelNames = append(modelNames, m.ID)
		}
	}
	return modelNames, nil
}
