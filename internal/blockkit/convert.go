package blockkit

import (
	"github.com/goliatone/go-slackfmt/internal/extract"
	"github.com/goliatone/go-slackfmt/internal/mrkdwn"
	"github.com/goliatone/go-slackfmt/internal/richtext"
)

const dividerText = "---"

// Converter moves content between layout blocks and Documents.
type Converter struct {
	extractor extract.Extractor
}

// NewConverter returns a converter whose fallback text extraction is capped
// at maxDepth levels.
func NewConverter(maxDepth int) Converter {
	return Converter{extractor: extract.New(maxDepth)}
}

var defaultConverter = NewConverter(extract.DefaultMaxDepth)

// FromDocument renders doc as mrkdwn inside a Section block.
func FromDocument(doc richtext.Block) Section {
	return defaultConverter.FromDocument(doc)
}

// ToDocument converts a layout block into a Document.
func ToDocument(block Block) richtext.Block {
	return defaultConverter.ToDocument(block)
}

// FromDocument renders doc as mrkdwn inside a Section block. A nil document
// yields a Section with empty text.
func (c Converter) FromDocument(doc richtext.Block) Section {
	if doc == nil {
		return EmptySection()
	}
	text := Mrkdwn(mrkdwn.Format(doc))
	return Section{Text: &text}
}

// RichTextFromDocument embeds doc unchanged in a rich_text block.
func (c Converter) RichTextFromDocument(doc richtext.Block) RichText {
	switch typed := doc.(type) {
	case nil:
		return RichText{Elements: []richtext.Block{}}
	case richtext.Root:
		elements := make([]richtext.Block, len(typed.Elements))
		copy(elements, typed.Elements)
		return RichText{Elements: elements}
	default:
		return RichText{Elements: []richtext.Block{doc}}
	}
}

// ToDocument converts a layout block into a Document. It never fails:
// unmodelled blocks degrade to their best-effort text.
func (c Converter) ToDocument(block Block) richtext.Block {
	switch typed := block.(type) {
	case nil:
		return richtext.EmptySection()
	case RichText:
		if len(typed.Elements) == 0 {
			return richtext.EmptySection()
		}
		elements := make([]richtext.Block, len(typed.Elements))
		copy(elements, typed.Elements)
		return richtext.Root{Elements: elements}
	case Section:
		return sectionToDocument(typed)
	case Header:
		return textSection(typed.Text.Text, richtext.Style{Bold: true})
	case Divider:
		return textSection(dividerText, richtext.Style{})
	case Context:
		return c.contextToDocument(typed)
	case Image:
		if typed.Title != nil && typed.Title.Text != "" {
			return textSection(typed.Title.Text, richtext.Style{})
		}
		return textSection(typed.AltText, richtext.Style{})
	case Unknown:
		return textSection(c.extractor.Text(typed.Raw), richtext.Style{})
	default:
		return richtext.EmptySection()
	}
}

func sectionToDocument(section Section) richtext.Block {
	if section.Text == nil {
		return richtext.EmptySection()
	}
	if section.Text.Type == TextMrkdwn {
		return mrkdwn.Parse(section.Text.Text)
	}
	return textSection(section.Text.Text, richtext.Style{})
}

func (c Converter) contextToDocument(ctx Context) richtext.Section {
	elements := []richtext.Inline{}
	appendPlain := func(text string) {
		if text != "" {
			elements = append(elements, richtext.Text{Text: text})
		}
	}

	for _, element := range ctx.Elements {
		switch typed := element.(type) {
		case TextObject:
			if typed.Type == TextMrkdwn {
				elements = append(elements, mrkdwn.Tokenize(typed.Text)...)
				continue
			}
			appendPlain(typed.Text)
		case ContextImage:
			appendPlain(typed.AltText)
		case Unknown:
			appendPlain(c.extractor.Text(typed.Raw))
		}
	}
	return richtext.Section{Elements: elements}
}

func textSection(text string, style richtext.Style) richtext.Section {
	if text == "" {
		return richtext.EmptySection()
	}
	return richtext.Section{Elements: []richtext.Inline{richtext.Text{Text: text, Style: style}}}
}
