package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind Kind
	}{
		{"zero results", ErrNoVideos, KindGeneration},
		{"wrapped zero results", fmt.Errorf("remix failed: %w", ErrNoVideos), KindGeneration},
		{"download failure", errors.New("failed to download video: status 403 Forbidden"), KindNetwork},
		{"fetch failure", errors.New("failed to fetch result: connection reset"), KindNetwork},
		{"api key message", errors.New("API key not valid. Please pass a valid API key."), KindKey},
		{"quota message", errors.New("RESOURCE_EXHAUSTED: quota exceeded"), KindKey},
		{"anything else falls back to key", errors.New("some backend hiccup"), KindKey},
		{"nil error", nil, KindUnknown},
		{"empty message", errors.New("   "), KindUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := Classify(tc.err)
			if d.Kind != tc.kind {
				t.Errorf("Classify(%v).Kind = %q, want %q", tc.err, d.Kind, tc.kind)
			}
			if d.Title == "" || len(d.Messages) == 0 {
				t.Errorf("Classify(%v) produced empty display text: %+v", tc.err, d)
			}
		})
	}
}

func TestKeyKindCarriesSelectAction(t *testing.T) {
	d := Classify(errors.New("API key not valid"))
	if d.Action != "select_key" {
		t.Errorf("key errors must ask the client to open the key picker, got action %q", d.Action)
	}

	d = Classify(ErrNoVideos)
	if d.Action != "" {
		t.Errorf("generation errors carry no action, got %q", d.Action)
	}
}
