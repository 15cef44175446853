package gemini

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"google.golang.org/genai"
)

const (
	maxAttemptsPerKey = 3
	rateLimitBackoff  = 2 * time.Second
)

// GenerateContentWithRetry calls Gemini with each API key in turn, retrying
// rate-limited (429) attempts up to maxAttemptsPerKey times per key. Errors
// other than rate limits are returned immediately.
func GenerateContentWithRetry(
	ctx context.Context,
	apiKeys []string,
	model string,
	contents []*genai.Content,
	cfg *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {

	if len(apiKeys) == 0 {
		return nil, fmt.Errorf("no API keys provided")
	}

	var lastErr error

	for keyIndex, apiKey := range apiKeys {
		for attempt := 1; attempt <= maxAttemptsPerKey; attempt++ {
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				lastErr = err
				continue
			}

			result, err := client.Models.GenerateContent(ctx, model, contents, cfg)
			if err == nil {
				return result, nil
			}
			lastErr = err

			if !isRateLimited(err) {
				return nil, err
			}

			log.Printf("⚠️  Gemini key #%d rate limited (attempt %d/%d)", keyIndex+1, attempt, maxAttemptsPerKey)
			if attempt < maxAttemptsPerKey {
				time.Sleep(rateLimitBackoff)
			}
		}
		log.Printf("⚠️  Gemini key #%d exhausted, trying next key", keyIndex+1)
	}

	return nil, fmt.Errorf("all %d API keys exhausted: %w", len(apiKeys), lastErr)
}

// isRateLimited - 429 / quota errors are worth retrying, everything else is not
func isRateLimited(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "resource_exhausted")
}
