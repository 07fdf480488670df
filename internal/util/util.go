package util

// FirstNonEmpty returns the first non-empty string in values.
func FirstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

// CloneWith returns a shallow copy of raw with key set to value. An empty
// value leaves key as raw had it. The result is never nil.
func CloneWith(raw map[string]any, key, value string) map[string]any {
	out := make(map[string]any, len(raw)+1)
	for k, v := range raw {
		out[k] = v
	}
	if value != "" {
		out[key] = value
	}
	return out
}
