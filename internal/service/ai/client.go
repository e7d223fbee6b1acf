package ai

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/ottoman-ai/chef-chat/internal/config"
	"github.com/ottoman-ai/chef-chat/internal/model/chat"
)

// Completer produces a completion for a conversation transcript.
type Completer interface {
	Complete(ctx context.Context, transcript []chat.Turn) (string, error)
}

// Client calls an Azure OpenAI chat-completions deployment. The call is
// synchronous with no client-side timeout; cancellation only happens through
// the request context.
type Client struct {
	client      *openai.Client
	deployment  string
	maxTokens   int
	temperature float32
}

// NewClient builds a client from the upstream deployment configuration.
func NewClient(cfg config.AIConfig) (*Client, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("missing Azure OpenAI credentials: endpoint, api key and deployment name are required")
	}

	clientCfg := openai.DefaultAzureConfig(cfg.APIKey, cfg.Endpoint)
	clientCfg.APIVersion = cfg.APIVersion
	deployment := cfg.Deployment
	clientCfg.AzureModelMapperFunc = func(string) string { return deployment }

	return &Client{
		client:      openai.NewClientWithConfig(clientCfg),
		deployment:  deployment,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}, nil
}

// Complete sends the whole transcript and returns the first choice's content.
func (c *Client) Complete(ctx context.Context, transcript []chat.Turn) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(transcript))
	for _, turn := range transcript {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    turn.Role,
			Content: turn.Content,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.deployment,
		Messages:    messages,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion response contained no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
