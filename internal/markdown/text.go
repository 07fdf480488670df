package markdown

import (
	"regexp"
	"strings"
)

var (
	escaper = strings.NewReplacer(
		`\`, `\\`, "`", "\\`", `*`, `\*`, `_`, `\_`,
		`{`, `\{`, `}`, `\}`, `[`, `\[`, `]`, `\]`,
		`(`, `\(`, `)`, `\)`, `#`, `\#`, `+`, `\+`,
		`-`, `\-`, `.`, `\.`, `!`, `\!`, `|`, `\|`, `~`, `\~`,
	)

	excessNewlines = regexp.MustCompile(`\n{3,}`)
	repeatedSpaces = regexp.MustCompile(` +`)
)

// Escape backslash-escapes every markdown metacharacter in plain text.
func Escape(text string) string {
	return escaper.Replace(text)
}

// Normalize collapses three or more consecutive newlines into a blank line
// and trims surrounding whitespace.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	return strings.TrimSpace(excessNewlines.ReplaceAllString(text, "\n\n"))
}

// NormalizeWhitespace collapses runs of spaces and trims every line.
func NormalizeWhitespace(text string) string {
	lines := strings.Split(repeatedSpaces.ReplaceAllString(text, " "), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}
