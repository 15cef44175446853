package remix

import "strings"

// qualitySuffix - appended once when the quality tier is selected
const qualitySuffix = ", cinematic quality, 4k, high detail"

// durationPhrases - fixed pacing phrase per duration tier. DurationDefault is
// deliberately absent: the default tier leaves the prompt untouched.
var durationPhrases = map[Duration]string{
	DurationShort:  ", a quick 4 second clip",
	DurationMedium: ", an 8 second cinematic shot",
	DurationLong:   ", a sweeping 15 second sequence",
}

// BuildPrompt - compose the final generation prompt from the base description
// and the selected options. Composition is deterministic: the same inputs
// always yield the same prompt, and suffixes are appended in a fixed order
// (quality, then duration, then masked instruction).
//
// The instruction is only appended while the mask is active; an instruction
// typed with the mask cleared is silently ignored.
func BuildPrompt(description string, opts Options, maskActive bool, instruction string) string {
	var b strings.Builder
	b.WriteString(description)

	if opts.Quality == QualityHigh {
		b.WriteString(qualitySuffix)
	}

	if phrase, ok := durationPhrases[opts.Duration]; ok {
		b.WriteString(phrase)
	}

	if maskActive {
		if ins := strings.TrimSpace(instruction); ins != "" {
			b.WriteString(". In the selected area: ")
			b.WriteString(ins)
		}
	}

	return b.String()
}
