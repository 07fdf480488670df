package blockkit

import "github.com/goliatone/go-slackfmt/internal/richtext"

// Kind is the layout block discriminator carried in the "type" field.
type Kind string

const (
	KindSection  Kind = "section"
	KindHeader   Kind = "header"
	KindDivider  Kind = "divider"
	KindContext  Kind = "context"
	KindImage    Kind = "image"
	KindRichText Kind = "rich_text"
)

// TextType distinguishes formatted from plain text objects.
type TextType string

const (
	TextMrkdwn TextType = "mrkdwn"
	TextPlain  TextType = "plain_text"
)

// TextObject is the platform's composition text object.
type TextObject struct {
	Type TextType `json:"type"`
	Text string   `json:"text"`
}

// Mrkdwn builds a mrkdwn text object.
func Mrkdwn(text string) TextObject {
	return TextObject{Type: TextMrkdwn, Text: text}
}

// PlainText builds a plain_text text object.
func PlainText(text string) TextObject {
	return TextObject{Type: TextPlain, Text: text}
}

// Block is implemented by every layout block. The set is closed.
type Block interface {
	Kind() Kind
	block()
}

// ContextElement is implemented by the elements a Context block may hold.
type ContextElement interface {
	contextElement()
}

// Section carries one text object.
type Section struct {
	BlockID string
	Text    *TextObject
}

// Header carries a plain text title.
type Header struct {
	BlockID string
	Text    TextObject
}

// Divider is a horizontal rule.
type Divider struct {
	BlockID string
}

// Context holds small secondary text and images.
type Context struct {
	BlockID  string
	Elements []ContextElement
}

// ContextImage is an image element inside a Context block.
type ContextImage struct {
	ImageURL string
	AltText  string
}

// Image is a standalone image block.
type Image struct {
	BlockID  string
	ImageURL string
	AltText  string
	Title    *TextObject
}

// RichText embeds a rich text document.
type RichText struct {
	BlockID  string
	Elements []richtext.Block
}

// Unknown keeps a block, or context element, whose type is not modelled.
type Unknown struct {
	Type string
	Raw  map[string]any
}

func (Section) Kind() Kind  { return KindSection }
func (Header) Kind() Kind   { return KindHeader }
func (Divider) Kind() Kind  { return KindDivider }
func (Context) Kind() Kind  { return KindContext }
func (Image) Kind() Kind    { return KindImage }
func (RichText) Kind() Kind { return KindRichText }
func (u Unknown) Kind() Kind {
	return Kind(u.Type)
}

func (Section) block()  {}
func (Header) block()   {}
func (Divider) block()  {}
func (Context) block()  {}
func (Image) block()    {}
func (RichText) block() {}
func (Unknown) block()  {}

func (TextObject) contextElement()   {}
func (ContextImage) contextElement() {}
func (Unknown) contextElement()      {}

// EmptySection is the layout produced for absent input.
func EmptySection() Section {
	text := Mrkdwn("")
	return Section{Text: &text}
}
