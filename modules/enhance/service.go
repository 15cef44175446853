package enhance

import (
	"context"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"

	"remix-gallery-server/modules/common/config"
	"remix-gallery-server/modules/common/gemini"
)

// systemInstruction steers the model toward prompts the video model responds
// well to. Output must be the rewritten prompt only, no commentary.
const systemInstruction = `You rewrite short video descriptions into rich, visual text-to-video prompts.
Keep the subject and intent of the input. Add concrete visual detail: setting, lighting, camera movement, mood.
Respond with the rewritten prompt only, as a single paragraph, no quotes and no explanations.`

// Enhancer - rewrites a rough prompt into a richer one
type Enhancer interface {
	Enhance(ctx context.Context, prompt string) (string, error)
}

// Service - Gemini-backed prompt enhancement
type Service struct {
	apiKeys []string
	model   string
}

// NewService - build the enhancer from the loaded config
func NewService(cfg *config.Config) *Service {
	return &Service{
		apiKeys: cfg.APIKeys(),
		model:   cfg.TextModel,
	}
}

var _ Enhancer = (*Service)(nil)

// Enhance - rewrite the prompt via the text model, rotating API keys on rate
// limits. An empty model response is an error, never an empty prompt.
func (s *Service) Enhance(ctx context.Context, prompt string) (string, error) {
	log.Printf("✨ Enhancing prompt (%d chars)", len(prompt))

	contents := genai.Text(prompt)
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
	}

	result, err := gemini.GenerateContentWithRetry(ctx, s.apiKeys, s.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("failed to enhance prompt: %w", err)
	}

	enhanced := strings.TrimSpace(result.Text())
	if enhanced == "" {
		return "", fmt.Errorf("model returned an empty prompt")
	}
	return enhanced, nil
}
