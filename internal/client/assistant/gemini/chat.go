// Package gemini adapts a Google GenAI chat session to assistant.Model.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"net/http"

	"github.com/dmitrijs2005/findash/internal/client/assistant"
	"google.golang.org/genai"
)

var ErrNoAPIKey = errors.New("gemini: api key is not set")

type Config struct {
	APIKey            string
	Model             string
	SystemInstruction string
	// HTTPClient is optional; tests point it at a local server.
	HTTPClient *http.Client
	// BaseURL overrides the service endpoint when set.
	BaseURL string
}

// Chat is one conversation with the model. History is kept by the SDK, so
// follow-up questions see earlier turns.
type Chat struct {
	chat *genai.Chat
}

var _ assistant.Model = (*Chat)(nil)

func New(ctx context.Context, cfg Config) (*Chat, error) {
	if cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: new client: %w", err)
	}

	var gc *genai.GenerateContentConfig
	if cfg.SystemInstruction != "" {
		gc = &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(cfg.SystemInstruction, genai.RoleUser),
		}
	}

	chat, err := client.Chats.Create(ctx, cfg.Model, gc, nil)
	if err != nil {
		return nil, fmt.Errorf("gemini: create chat: %w", err)
	}
	return &Chat{chat: chat}, nil
}

// Factory returns an assistant.ModelFactory for cfg.
func Factory(cfg Config) assistant.ModelFactory {
	return func(ctx context.Context) (assistant.Model, error) {
		c, err := New(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}

func (c *Chat) SendMessageStream(ctx context.Context, message string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for resp, err := range c.chat.SendMessageStream(ctx, genai.Part{Text: message}) {
			if err != nil {
				yield("", err)
				return
			}
			if !yield(resp.Text(), nil) {
				return
			}
		}
	}
}
