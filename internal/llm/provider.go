package llm

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// Client is the minimal surface the annotator needs to call a chat model.
// It mirrors the one CreateChatCompletion method in use so that any
// OpenAI-compatible server, or a canned fake in tests, can stand in.
type Client interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIProvider adapts *openai.Client to the Client interface.
type OpenAIProvider struct {
	Inner *openai.Client
}

func (p *OpenAIProvider) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return p.Inner.CreateChatCompletion(ctx, request)
}
