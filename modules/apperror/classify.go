package apperror

import (
	"errors"
	"strings"
)

// Kind - coarse failure classification, used only to pick display text and a
// remedial action for the client.
type Kind string

const (
	// KindKey covers invalid, missing, or quota-exhausted API keys. It is the
	// fallback when nothing else matches: in practice a bad or exhausted key
	// is the most common way generation fails.
	KindKey        Kind = "key"
	KindGeneration Kind = "generation"
	KindNetwork    Kind = "network"
	KindUnknown    Kind = "unknown"
)

// ErrNoVideos - the generation job finished but yielded zero results.
var ErrNoVideos = errors.New("No videos generated")

// Detail - what the client renders in the error banner.
type Detail struct {
	Kind     Kind     `json:"kind"`
	Title    string   `json:"title"`
	Messages []string `json:"messages"`
	// Action is a hint for the client: "select_key" asks it to open the
	// API key picker when dismissing the banner.
	Action string `json:"action,omitempty"`
}

// Classify maps a generation-flow failure onto a Detail by message substring.
func Classify(err error) *Detail {
	if err == nil || strings.TrimSpace(err.Error()) == "" {
		return &Detail{
			Kind:     KindUnknown,
			Title:    "Something went wrong",
			Messages: []string{"An unexpected error occurred.", "Please try again."},
		}
	}

	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "no videos generated"):
		return &Detail{
			Kind:  KindGeneration,
			Title: "Video generation failed",
			Messages: []string{
				"The model did not return any videos for this prompt.",
				"Try adjusting the description and generating again.",
			},
		}
	case strings.Contains(msg, "download") || strings.Contains(msg, "failed to fetch"):
		return &Detail{
			Kind:  KindNetwork,
			Title: "Video download failed",
			Messages: []string{
				"A generated video could not be downloaded.",
				err.Error(),
				"Check your connection and try again.",
			},
		}
	default:
		return &Detail{
			Kind:  KindKey,
			Title: "Invalid API key",
			Messages: []string{
				"Your API key is invalid, expired, or out of quota.",
				"Select a different key and try again.",
			},
			Action: "select_key",
		}
	}
}
