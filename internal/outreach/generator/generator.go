// Package generator produces the career tool documents (resume, cover letter,
// profile rewrite) with a language model.
package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const DefaultOpenAIModel = "gpt-4o-mini"

var ErrEmptyResponse = errors.New("generator: model returned no content")

// Prompt is a single system + user exchange.
type Prompt struct {
	System string
	User   string
}

type Generator interface {
	Generate(ctx context.Context, p Prompt) (string, error)
}

// LLM adapts any langchaingo model to Generator.
type LLM struct {
	model llms.Model
	opts  []llms.CallOption
}

var _ Generator = (*LLM)(nil)

func New(model llms.Model, opts ...llms.CallOption) *LLM {
	return &LLM{model: model, opts: opts}
}

// NewOpenAI builds a generator on the OpenAI chat API.
func NewOpenAI(apiKey, model string) (*LLM, error) {
	if apiKey == "" {
		return nil, errors.New("generator: openai api key is empty")
	}
	if model == "" {
		model = DefaultOpenAIModel
	}

	llm, err := openai.New(openai.WithToken(apiKey), openai.WithModel(model))
	if err != nil {
		return nil, fmt.Errorf("create openai client: %w", err)
	}
	return New(llm, llms.WithTemperature(0.4)), nil
}

func (g *LLM) Generate(ctx context.Context, p Prompt) (string, error) {
	messages := make([]llms.MessageContent, 0, 2)
	if p.System != "" {
		messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, p.System))
	}
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, p.User))

	resp, err := g.model.GenerateContent(ctx, messages, g.opts...)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	content := strings.TrimSpace(resp.Choices[0].Content)
	if content == "" {
		return "", ErrEmptyResponse
	}
	return content, nil
}
