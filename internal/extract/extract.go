package extract

import (
	"maps"
	"slices"
	"strings"
)

// DefaultMaxDepth bounds recursion over externally supplied trees.
const DefaultMaxDepth = 32

// priorityFields are inspected, in order, before any other key.
var priorityFields = []string{"text", "value", "content", "title", "alt_text"}

// Extractor pulls best-effort text out of generic JSON-like values
// (string, []any, map[string]any). Anything else yields "".
type Extractor struct {
	MaxDepth int
}

// New returns an extractor capped at maxDepth levels; non-positive values use
// DefaultMaxDepth.
func New(maxDepth int) Extractor {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return Extractor{MaxDepth: maxDepth}
}

// Text returns the first non-empty text found in value.
func Text(value any) string {
	return New(DefaultMaxDepth).Text(value)
}

// Joined returns every non-empty text found in the items of a sequence,
// space-joined. Non-sequence values behave like Text.
func Joined(value any) string {
	return New(DefaultMaxDepth).Joined(value)
}

// Text returns the first non-empty text found in value.
func (e Extractor) Text(value any) string {
	return e.first(value, e.depth())
}

// Joined space-joins every non-empty per-item result of a sequence.
func (e Extractor) Joined(value any) string {
	items, ok := value.([]any)
	if !ok {
		return e.Text(value)
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		if text := e.first(item, e.depth()-1); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

func (e Extractor) depth() int {
	if e.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return e.MaxDepth
}

func (e Extractor) first(value any, depth int) string {
	if depth <= 0 {
		return ""
	}

	switch typed := value.(type) {
	case string:
		return typed
	case map[string]any:
		return e.fromMap(typed, depth)
	case []any:
		for _, item := range typed {
			if text := e.first(item, depth-1); text != "" {
				return text
			}
		}
	case []map[string]any:
		for _, item := range typed {
			if text := e.fromMap(item, depth-1); text != "" {
				return text
			}
		}
	}
	return ""
}

func (e Extractor) fromMap(m map[string]any, depth int) string {
	if depth <= 0 {
		return ""
	}
	for _, field := range priorityFields {
		value, ok := m[field]
		if !ok {
			continue
		}
		switch typed := value.(type) {
		case string:
			return typed
		case map[string]any:
			if text := e.fromMap(typed, depth-1); text != "" {
				return text
			}
		}
	}

	for _, key := range slices.Sorted(maps.Keys(m)) {
		if key == "type" || key == "kind" {
			continue
		}
		if text := e.first(m[key], depth-1); text != "" {
			return text
		}
	}
	return ""
}
