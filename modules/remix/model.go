package remix

import (
	"time"

	"remix-gallery-server/modules/apperror"
	"remix-gallery-server/modules/common/fallback"
)

// Quality - generation quality tier
type Quality string

const (
	QualityFast Quality = "fast"
	QualityHigh Quality = "quality"
)

// Duration - generation duration tier. The default tier adds nothing to the
// prompt; the named tiers each map to one fixed phrase.
type Duration string

const (
	DurationDefault Duration = "default"
	DurationShort   Duration = "short"
	DurationMedium  Duration = "medium"
	DurationLong    Duration = "long"
)

// Options - generation options picked in the remix editor
type Options struct {
	Count       int      `json:"count"`
	Quality     Quality  `json:"quality"`
	Duration    Duration `json:"duration"`
	AspectRatio string   `json:"aspectRatio"`
}

// Request - a remix submission. Description doubles as the base prompt.
//
// MaskDataURL is accepted but never forwarded to the generation service: a
// drawn mask only gates whether Instruction is appended to the prompt. The
// generated region is not actually constrained.
type Request struct {
	VideoID     string `json:"videoId,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Instruction string `json:"instruction,omitempty"`
	MaskActive  bool   `json:"maskActive"`
	MaskDataURL string `json:"maskDataUrl,omitempty"`
	Options
}

// Normalize - clamp and default every option so downstream code only ever
// sees closed-enum values
func (r *Request) Normalize() {
	r.Count = fallback.ClampVariations(r.Count)
	r.AspectRatio = fallback.SafeAspectRatio(r.AspectRatio)

	switch r.Quality {
	case QualityFast, QualityHigh:
	default:
		r.Quality = QualityFast
	}

	switch r.Duration {
	case DurationDefault, DurationShort, DurationMedium, DurationLong:
	default:
		r.Duration = DurationDefault
	}

	// a drawn mask implies the mask is active even if the flag was dropped
	if r.MaskDataURL != "" {
		r.MaskActive = true
	}
}

// Job statuses
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Job - registry entry for one remix request. Jobs live in memory only; there
// is no retry and no cancellation once a job is queued.
type Job struct {
	ID        string           `json:"jobId"`
	Status    Status           `json:"status"`
	Phase     string           `json:"phase,omitempty"`
	Request   Request          `json:"request"`
	RecordIDs []string         `json:"recordIds,omitempty"`
	Error     *apperror.Detail `json:"error,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}
