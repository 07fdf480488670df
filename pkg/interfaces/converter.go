package interfaces

import (
	"fmt"
	"strings"
)

// Format names one of the text or wire formats the converter understands.
type Format string

const (
	// FormatMrkdwn is the platform's inline markup.
	FormatMrkdwn Format = "mrkdwn"
	// FormatDocument is rich text JSON.
	FormatDocument Format = "document"
	// FormatLayout is layout block JSON, one block or a list of blocks.
	FormatLayout Format = "layout"
	// FormatMarkdown is standard markdown.
	FormatMarkdown Format = "markdown"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatMrkdwn, FormatDocument, FormatLayout, FormatMarkdown}
}

// ParseFormat resolves a user supplied format name. "md" and "blocks" are
// accepted as aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mrkdwn", "slack":
		return FormatMrkdwn, nil
	case "document", "rich_text", "richtext":
		return FormatDocument, nil
	case "layout", "blocks", "blockkit":
		return FormatLayout, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown format %q", name)
	}
}

// String implements fmt.Stringer.
func (f Format) String() string {
	return string(f)
}

// ConverterService converts between serialized formats. Inputs and outputs
// are raw bytes: markup as text and the wire formats as JSON.
type ConverterService interface {
	Convert(from, to Format, input []byte) ([]byte, error)
}

