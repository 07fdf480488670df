package mrkdwn

import "strings"

var (
	escaper = strings.NewReplacer(
		`*`, `\*`, `_`, `\_`, `~`, `\~`, "`", "\\`",
		`<`, `\<`, `>`, `\>`, `|`, `\|`,
		`[`, `\[`, `]`, `\]`, `(`, `\(`, `)`, `\)`,
	)
	unescaper = strings.NewReplacer(
		`\*`, `*`, `\_`, `_`, `\~`, `~`, "\\`", "`",
		`\<`, `<`, `\>`, `>`, `\|`, `|`,
		`\[`, `[`, `\]`, `]`, `\(`, `(`, `\)`, `)`,
	)
)

// Escape backslash-escapes the characters that carry meaning in mrkdwn.
func Escape(text string) string {
	return escaper.Replace(text)
}

// Unescape reverses Escape.
func Unescape(text string) string {
	return unescaper.Replace(text)
}
