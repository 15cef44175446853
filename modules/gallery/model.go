package gallery

import "time"

// VideoRecord - one entry in the gallery. Records are immutable once added;
// the playable URL is either a remote URL, a Supabase Storage object URL, or
// an embedded data URI.
type VideoRecord struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"` // doubles as the base generation prompt
	VideoURL    string    `json:"videoUrl"`
	PosterURL   string    `json:"posterUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
