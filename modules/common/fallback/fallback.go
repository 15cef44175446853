package fallback

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Variation count bounds for a single remix request.
const (
	MinVariations = 1
	MaxVariations = 4
)

var allowedAspectRatios = map[string]bool{
	"16:9": true,
	"9:16": true,
	"1:1":  true,
	"4:3":  true,
	"3:4":  true,
}

// SafeString returns a trimmed string or the provided fallback.
func SafeString(value interface{}, fb string) string {
	if s, ok := value.(string); ok {
		s = strings.TrimSpace(s)
		if s != "" {
			return s
		}
	}
	return fb
}

// SafeInt converts common number shapes into int with a fallback.
func SafeInt(value interface{}, fb int) int {
	switch v := value.(type) {
	case float64:
		if v > 0 {
			return int(v)
		}
	case float32:
		if v > 0 {
			return int(v)
		}
	case int:
		if v > 0 {
			return v
		}
	case int64:
		if v > 0 {
			return int(v)
		}
	case json.Number:
		if n, err := strconv.Atoi(v.String()); err == nil && n > 0 {
			return n
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			return n
		}
	}
	return fb
}

// ClampVariations bounds a requested variation count to [1,4].
// Zero or negative input counts as "not provided" and yields the minimum.
func ClampVariations(n int) int {
	if n < MinVariations {
		return MinVariations
	}
	if n > MaxVariations {
		return MaxVariations
	}
	return n
}

// SafeAspectRatio returns the ratio if it is one of the supported values,
// otherwise the 16:9 default.
func SafeAspectRatio(value string) string {
	if allowedAspectRatios[strings.TrimSpace(value)] {
		return strings.TrimSpace(value)
	}
	return "16:9"
}
