package generator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aussiebroadwan/mutuals/internal/outreach/generator"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

// fakeModel records what it was asked and answers with a fixed reply.
type fakeModel struct {
	reply    string
	err      error
	messages []llms.MessageContent
}

func (f *fakeModel) GenerateContent(_ context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	f.messages = messages
	if f.err != nil {
		return nil, f.err
	}
	if f.reply == "" {
		return &llms.ContentResponse{}, nil
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: f.reply}}}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

func text(t *testing.T, m llms.MessageContent) string {
	t.Helper()
	require.Len(t, m.Parts, 1)
	part, ok := m.Parts[0].(llms.TextContent)
	require.True(t, ok)
	return part.Text
}

func TestGenerate(t *testing.T) {
	model := &fakeModel{reply: "  A tidy resume\n"}
	g := generator.New(model)

	out, err := g.Generate(context.Background(), generator.Prompt{System: "be brief", User: "job: PM"})
	require.NoError(t, err)
	require.Equal(t, "A tidy resume", out)

	require.Len(t, model.messages, 2)
	require.Equal(t, llms.ChatMessageTypeSystem, model.messages[0].Role)
	require.Equal(t, "be brief", text(t, model.messages[0]))
	require.Equal(t, llms.ChatMessageTypeHuman, model.messages[1].Role)
	require.Equal(t, "job: PM", text(t, model.messages[1]))
}

func TestGenerateWithoutSystemPrompt(t *testing.T) {
	model := &fakeModel{reply: "ok"}
	_, err := generator.New(model).Generate(context.Background(), generator.Prompt{User: "hi"})
	require.NoError(t, err)
	require.Len(t, model.messages, 1)
}

func TestGenerateErrors(t *testing.T) {
	_, err := generator.New(&fakeModel{}).Generate(context.Background(), generator.Prompt{User: "hi"})
	require.ErrorIs(t, err, generator.ErrEmptyResponse)

	boom := errors.New("quota exceeded")
	_, err = generator.New(&fakeModel{err: boom}).Generate(context.Background(), generator.Prompt{User: "hi"})
	require.ErrorIs(t, err, boom)
}

func TestNewOpenAIRequiresKey(t *testing.T) {
	_, err := generator.NewOpenAI("", "")
	require.Error(t, err)
}
