package markdown

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-slackfmt/internal/blockkit"
	"github.com/goliatone/go-slackfmt/internal/extract"
	"github.com/goliatone/go-slackfmt/internal/richtext"
	"github.com/goliatone/go-slackfmt/internal/util"
)

const (
	headerPrefix    = "## "
	dividerMarkdown = "---"
	quotePrefix     = "> "
	fence           = "```"
	defaultAltText  = "Image"
)

// Formatter renders layout blocks to plain markdown. This target is distinct
// from mrkdwn: bold is **, bullets are -, links are [text](url).
type Formatter struct {
	extractor extract.Extractor
}

// NewFormatter returns a formatter whose fallback extraction is capped at
// maxDepth levels.
func NewFormatter(maxDepth int) Formatter {
	return Formatter{extractor: extract.New(maxDepth)}
}

var defaultFormatter = NewFormatter(extract.DefaultMaxDepth)

// BlockToText renders one layout block with the default formatter.
func BlockToText(block blockkit.Block) string {
	return defaultFormatter.BlockToText(block)
}

// BlocksToText renders blocks with the default formatter.
func BlocksToText(blocks []blockkit.Block) string {
	return defaultFormatter.BlocksToText(blocks)
}

// DocumentToText renders a Document with the default formatter.
func DocumentToText(doc richtext.Block) string {
	return defaultFormatter.DocumentToText(doc)
}

// BlockToText renders one layout block. A nil block renders as "".
func (f Formatter) BlockToText(block blockkit.Block) string {
	switch typed := block.(type) {
	case nil:
		return ""
	case blockkit.Section:
		if typed.Text == nil {
			return ""
		}
		return textObject(*typed.Text)
	case blockkit.Header:
		return headerPrefix + typed.Text.Text
	case blockkit.Divider:
		return dividerMarkdown
	case blockkit.Context:
		return f.context(typed)
	case blockkit.Image:
		return image(typed)
	case blockkit.RichText:
		return f.joinBlocks(typed.Elements)
	case blockkit.Unknown:
		return f.extractor.Text(typed.Raw)
	default:
		return ""
	}
}

// BlocksToText renders blocks separated by a blank line, skipping blocks that
// render to nothing.
func (f Formatter) BlocksToText(blocks []blockkit.Block) string {
	parts := make([]string, 0, len(blocks))
	for _, block := range blocks {
		if text := f.BlockToText(block); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n\n")
}

// DocumentToText renders a Document straight to markdown. Root children are
// separated by a blank line.
func (f Formatter) DocumentToText(doc richtext.Block) string {
	if root, ok := doc.(richtext.Root); ok {
		return f.joinBlocks(root.Elements)
	}
	return f.richBlock(doc)
}

func (f Formatter) joinBlocks(blocks []richtext.Block) string {
	parts := make([]string, 0, len(blocks))
	for _, child := range blocks {
		if text := f.richBlock(child); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n\n")
}

func (f Formatter) richBlock(block richtext.Block) string {
	switch typed := block.(type) {
	case richtext.Section:
		return f.section(typed)
	case richtext.List:
		return f.list(typed)
	case richtext.Quote:
		return f.quote(typed)
	case richtext.Preformatted:
		return preformatted(typed)
	case richtext.Root:
		return f.joinBlocks(typed.Elements)
	case richtext.UnknownBlock:
		return f.extractor.Text(typed.Raw)
	default:
		return ""
	}
}

func textObject(text blockkit.TextObject) string {
	if text.Type == blockkit.TextMrkdwn {
		return text.Text
	}
	return Escape(text.Text)
}

func (f Formatter) context(ctx blockkit.Context) string {
	var b strings.Builder
	for _, element := range ctx.Elements {
		switch typed := element.(type) {
		case blockkit.TextObject:
			b.WriteString(textObject(typed))
		case blockkit.ContextImage:
			b.WriteString(Escape(typed.AltText))
		case blockkit.Unknown:
			b.WriteString(Escape(f.extractor.Text(typed.Raw)))
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return "_" + b.String() + "_"
}

func image(img blockkit.Image) string {
	alt := util.FirstNonEmpty(img.AltText, defaultAltText)
	if img.ImageURL == "" {
		return "*[" + alt + "]*"
	}
	if img.Title != nil && img.Title.Text != "" {
		return "![" + alt + "](" + img.ImageURL + " \"" + img.Title.Text + "\")"
	}
	return "![" + alt + "](" + img.ImageURL + ")"
}

func (f Formatter) section(section richtext.Section) string {
	var b strings.Builder
	for _, element := range section.Elements {
		b.WriteString(f.inline(element))
	}
	return b.String()
}

func (f Formatter) inline(element richtext.Inline) string {
	switch typed := element.(type) {
	case richtext.Text:
		return ApplyStyle(typed.Text, typed.Style)
	case richtext.Link:
		if typed.URL == "" {
			return typed.Text
		}
		return "[" + util.FirstNonEmpty(typed.Text, typed.URL) + "](" + typed.URL + ")"
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
		if typed.Range == "" {
			return "@" + richtext.RangeHere
		}
		return "@" + typed.Range
	case richtext.UnknownInline:
		return f.extractor.Text(typed.Raw)
	default:
		return ""
	}
}

// ApplyStyle wraps text in markdown markers, innermost first: code, then
// bold/italic (*** when both), then strike. Empty text is left bare.
func ApplyStyle(text string, style richtext.Style) string {
	if text == "" {
		return text
	}
	if style.Code {
		text = "`" + text + "`"
	}
	switch {
	case style.Bold && style.Italic:
		text = "***" + text + "***"
	case style.Bold:
		text = "**" + text + "**"
	case style.Italic:
		text = "*" + text + "*"
	}
	if style.Strike {
		text = "~~" + text + "~~"
	}
	return text
}

func (f Formatter) list(list richtext.List) string {
	lines := make([]string, 0, len(list.Items))
	for i, item := range list.Items {
		prefix := "- "
		if list.Style == richtext.ListOrdered {
			prefix = strconv.Itoa(i+1) + ". "
		}
		lines = append(lines, prefix+f.section(item))
	}
	return strings.Join(lines, "\n")
}

func (f Formatter) quote(quote richtext.Quote) string {
	parts := make([]string, 0, len(quote.Elements))
	for _, section := range quote.Elements {
		parts = append(parts, f.section(section))
	}
	lines := strings.Split(strings.Join(parts, "\n"), "\n")
	for i, line := range lines {
		lines[i] = quotePrefix + line
	}
	return strings.Join(lines, "\n")
}

func preformatted(pre richtext.Preformatted) string {
	var b strings.Builder
	for _, text := range pre.Elements {
		b.WriteString(text.Text)
	}
	return fence + "\n" + b.String() + "\n" + fence
}
