package veo

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"

	"remix-gallery-server/modules/common/config"
)

// SubmitRequest - what the remix worker hands to the generation service
type SubmitRequest struct {
	Prompt      string
	Count       int
	AspectRatio string
}

// Result - one remote result reference yielded by a finished operation
type Result struct {
	URI      string
	MIMEType string
}

// Operation - snapshot of the long-running generation job. Results is only
// populated once Done is true.
type Operation struct {
	Done    bool
	Results []Result

	raw *genai.GenerateVideosOperation
}

// Generator - submit a generation job and refresh its operation handle.
// The worker polls Refresh at a fixed interval; the service itself offers no
// push notification.
type Generator interface {
	Submit(ctx context.Context, req SubmitRequest) (*Operation, error)
	Refresh(ctx context.Context, op *Operation) (*Operation, error)
}

// Client - Veo generation via the Gemini API
type Client struct {
	genaiClient *genai.Client
	model       string
}

// NewClient - genai-backed Veo client using the configured API key
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	log.Printf("✅ Veo client initialized (model: %s)", cfg.VeoModel)
	return &Client{genaiClient: genaiClient, model: cfg.VeoModel}, nil
}

// Submit - start a generation job for {prompt, count, aspect ratio}
func (c *Client) Submit(ctx context.Context, req SubmitRequest) (*Operation, error) {
	log.Printf("🎬 Submitting Veo job: %d variation(s), %s, prompt %d chars",
		req.Count, req.AspectRatio, len(req.Prompt))

	op, err := c.genaiClient.Models.GenerateVideos(ctx, c.model, req.Prompt, nil, &genai.GenerateVideosConfig{
		NumberOfVideos: int32(req.Count),
		AspectRatio:    req.AspectRatio,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to submit generation job: %w", err)
	}

	return wrap(op), nil
}

// Refresh - re-poll the operation for its current completion state
func (c *Client) Refresh(ctx context.Context, op *Operation) (*Operation, error) {
	if op.raw == nil {
		return op, nil
	}

	fresh, err := c.genaiClient.Operations.GetVideosOperation(ctx, op.raw, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to poll generation job: %w", err)
	}

	return wrap(fresh), nil
}

// wrap - flatten the SDK operation into our snapshot type
func wrap(raw *genai.GenerateVideosOperation) *Operation {
	op := &Operation{Done: raw.Done, raw: raw}
	if !raw.Done || raw.Response == nil {
		return op
	}

	for _, gv := range raw.Response.GeneratedVideos {
		if gv == nil || gv.Video == nil || gv.Video.URI == "" {
			continue
		}
		op.Results = append(op.Results, Result{
			URI:      gv.Video.URI,
			MIMEType: gv.Video.MIMEType,
		})
	}
	return op
}

var _ Generator = (*Client)(nil)
