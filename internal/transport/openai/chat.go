package openai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// ChatConfig holds one chat-completion provider's settings.
type ChatConfig struct {
	Name    string // provider identifier used in insight tagging
	APIKey  string
	BaseURL string
	Model   string
	Logger  *zap.Logger
}

const (
	chatMaxTokens   = 180
	chatTemperature = 0.4
)

// ChatProvider implements insight.Provider over an OpenAI-compatible
// chat-completions endpoint. Instantiated once per upstream (gateway,
// OpenAI direct) with different base URLs.
type ChatProvider struct {
	client *openai.Client
	name   string
	model  string
	system string
	logger *zap.Logger
}

// NewChatProvider creates a chat-completion content provider.
func NewChatProvider(cfg ChatConfig, systemPrompt string) *ChatProvider {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &ChatProvider{
		client: openai.NewClientWithConfig(clientCfg),
		name:   cfg.Name,
		model:  cfg.Model,
		system: systemPrompt,
		logger: cfg.Logger,
	}
}

// Name implements insight.Provider.
func (p *ChatProvider) Name() string { return p.name }

// Generate implements insight.Provider: transport and raw text
// extraction only, no schema validation.
func (p *ChatProvider) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: p.system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   chatMaxTokens,
		Temperature: chatTemperature,
	})
	if err != nil {
		return "", parseAPIError("chat completion", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty chat completion response")
	}
	return resp.Choices[0].Message.Content, nil
}
