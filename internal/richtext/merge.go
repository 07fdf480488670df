package richtext

import "strings"

// MergeText returns a new slice in which consecutive text runs sharing the
// same style are concatenated. The input slice is left untouched.
func MergeText(elements []Inline) []Inline {
	if len(elements) == 0 {
		return []Inline{}
	}

	merged := make([]Inline, 0, len(elements))
	for _, element := range elements {
		current, ok := element.(Text)
		if !ok {
			merged = append(merged, element)
			continue
		}
		if n := len(merged); n > 0 {
			if last, ok := merged[n-1].(Text); ok && last.Style == current.Style {
				merged[n-1] = Text{Text: last.Text + current.Text, Style: last.Style}
				continue
			}
		}
		merged = append(merged, current)
	}
	return merged
}

// CleanEmpty returns a new slice without whitespace-only text runs.
func CleanEmpty(elements []Inline) []Inline {
	out := make([]Inline, 0, len(elements))
	for _, element := range elements {
		if text, ok := element.(Text); ok && strings.TrimSpace(text.Text) == "" {
			continue
		}
		out = append(out, element)
	}
	return out
}
