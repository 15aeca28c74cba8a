package tips

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type mockModels struct {
	response *genai.GenerateContentResponse
	err      error

	gotModel    string
	gotContents []*genai.Content
	gotConfig   *genai.GenerateContentConfig
}

func (m *mockModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	m.gotModel = model
	m.gotContents = contents
	m.gotConfig = config
	return m.response, m.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: genai.NewContentFromText(text, genai.RoleModel)},
		},
	}
}

func TestGeminiGenerator_GenerateTip(t *testing.T) {
	t.Run("returns trimmed model text", func(t *testing.T) {
		models := &mockModels{response: textResponse("  Keep your bar path vertical.\n")}
		g := &GeminiGenerator{models: models, model: "gemini-test"}

		tip, err := g.GenerateTip(context.Background(), "How do I squat deeper?")
		require.NoError(t, err)

		assert.Equal(t, "Keep your bar path vertical.", tip)
		assert.Equal(t, "gemini-test", models.gotModel)
		require.Len(t, models.gotContents, 1)
		require.Len(t, models.gotContents[0].Parts, 1)
		assert.Equal(t, "How do I squat deeper?", models.gotContents[0].Parts[0].Text)
		require.NotNil(t, models.gotConfig)
		assert.NotNil(t, models.gotConfig.SystemInstruction)
	})

	t.Run("rejects empty prompt without calling the model", func(t *testing.T) {
		models := &mockModels{}
		g := &GeminiGenerator{models: models, model: "gemini-test"}

		_, err := g.GenerateTip(context.Background(), "   ")

		assert.ErrorIs(t, err, ErrEmptyPrompt)
		assert.Empty(t, models.gotModel)
	})

	t.Run("wraps API errors", func(t *testing.T) {
		apiErr := errors.New("quota exceeded")
		g := &GeminiGenerator{models: &mockModels{err: apiErr}, model: "gemini-test"}

		_, err := g.GenerateTip(context.Background(), "tip please")

		assert.ErrorIs(t, err, apiErr)
	})

	t.Run("empty answer is an error", func(t *testing.T) {
		g := &GeminiGenerator{models: &mockModels{response: textResponse("")}, model: "gemini-test"}

		_, err := g.GenerateTip(context.Background(), "tip please")

		assert.Error(t, err)
	})
}

func TestNewGeminiGenerator(t *testing.T) {
	t.Run("requires api key", func(t *testing.T) {
		_, err := NewGeminiGenerator(context.Background(), "", "gemini-test")
		assert.ErrorIs(t, err, ErrNotConfigured)
	})
}

func TestDisabled(t *testing.T) {
	var g Generator = Disabled{}

	_, err := g.GenerateTip(context.Background(), "anything")

	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Equal(t, "disabled", g.Name())
}
