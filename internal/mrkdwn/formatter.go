package mrkdwn

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-slackfmt/internal/extract"
	"github.com/goliatone/go-slackfmt/internal/richtext"
)

const bulletPrefix = "• "

// Format serializes a Document back into mrkdwn. A nil document renders as
// the empty string; unknown blocks render their extracted text. Root children
// that render to nothing are skipped.
func Format(doc richtext.Block) string {
	switch typed := doc.(type) {
	case richtext.Root:
		parts := make([]string, 0, len(typed.Elements))
		for _, child := range typed.Elements {
			if text := Format(child); text != "" {
				parts = append(parts, text)
			}
		}
		return strings.Join(parts, "\n")
	case richtext.Section:
		return FormatSection(typed)
	case richtext.List:
		return formatList(typed)
	case richtext.Quote:
		return formatQuote(typed)
	case richtext.Preformatted:
		return formatPreformatted(typed)
	case richtext.UnknownBlock:
		return extract.Text(typed.Raw)
	default:
		return ""
	}
}

// FormatSection concatenates the rendering of every inline element.
func FormatSection(section richtext.Section) string {
	var b strings.Builder
	for _, element := range section.Elements {
		b.WriteString(FormatInline(element))
	}
	return b.String()
}

// FormatInline renders a single inline element.
func FormatInline(element richtext.Inline) string {
	switch typed := element.(type) {
	case richtext.Text:
		return ApplyStyle(typed.Text, typed.Style)
	case richtext.Link:
		if typed.Text == "" || typed.Text == typed.URL {
			return "<" + typed.URL + ">"
		}
		return "<" + typed.URL + "|" + typed.Text + ">"
	case richtext.Emoji:
		if typed.Name == "" {
			return ""
		}
		return ":" + typed.Name + ":"
	case richtext.User:
		return "<@" + typed.UserID + ">"
	case richtext.Channel:
		return "<#" + typed.ChannelID + ">"
	case richtext.Broadcast:
		return "@" + typed.Range
	case richtext.UnknownInline:
		return extract.Text(typed.Raw)
	default:
		return ""
	}
}

// ApplyStyle wraps text in mrkdwn markers, innermost first: code, bold,
// italic, strike. Bold with italic yields _*text*_.
func ApplyStyle(text string, style richtext.Style) string {
	if style.Code {
		text = "`" + text + "`"
	}
	if style.Bold {
		text = "*" + text + "*"
	}
	if style.Italic {
		text = "_" + text + "_"
	}
	if style.Strike {
		text = "~" + text + "~"
	}
	return text
}

func formatList(list richtext.List) string {
	lines := make([]string, 0, len(list.Items))
	for i, item := range list.Items {
		prefix := bulletPrefix
		if list.Style == richtext.ListOrdered {
			prefix = strconv.Itoa(i+1) + ". "
		}
		lines = append(lines, prefix+FormatSection(item))
	}
	return strings.Join(lines, "\n")
}

func formatQuote(quote richtext.Quote) string {
	parts := make([]string, 0, len(quote.Elements))
	for _, section := range quote.Elements {
		parts = append(parts, FormatSection(section))
	}
	lines := strings.Split(strings.Join(parts, "\n"), "\n")
	for i, line := range lines {
		lines[i] = "> " + line
	}
	return strings.Join(lines, "\n")
}

func formatPreformatted(pre richtext.Preformatted) string {
	var b strings.Builder
	b.WriteString("```\n")
	for _, text := range pre.Elements {
		b.WriteString(text.Text)
	}
	b.WriteString("\n```")
	return b.String()
}
