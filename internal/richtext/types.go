package richtext

// Kind is the wire discriminator carried in the "type" field of every node.
type Kind string

const (
	KindText      Kind = "text"
	KindLink      Kind = "link"
	KindUser      Kind = "user"
	KindChannel   Kind = "channel"
	KindBroadcast Kind = "broadcast"
	KindEmoji     Kind = "emoji"

	KindSection      Kind = "rich_text_section"
	KindList         Kind = "rich_text_list"
	KindQuote        Kind = "rich_text_quote"
	KindPreformatted Kind = "rich_text_preformatted"
	KindRoot         Kind = "rich_text"
)

// ListStyle selects the marker used when a list is rendered.
type ListStyle string

const (
	ListBullet  ListStyle = "bullet"
	ListOrdered ListStyle = "ordered"
)

// Broadcast ranges accepted by the platform.
const (
	RangeHere     = "here"
	RangeChannel  = "channel"
	RangeEveryone = "everyone"
)

// Style holds the independent formatting flags of a text run.
type Style struct {
	Bold   bool `json:"bold,omitempty"`
	Italic bool `json:"italic,omitempty"`
	Strike bool `json:"strike,omitempty"`
	Code   bool `json:"code,omitempty"`
}

// IsZero reports whether no flag is set.
func (s Style) IsZero() bool {
	return !s.Bold && !s.Italic && !s.Strike && !s.Code
}

// Node is implemented by every tree node. The set of implementations is closed.
type Node interface {
	Kind() Kind
	node()
}

// Inline nodes live inside a Section.
type Inline interface {
	Node
	inline()
}

// Block nodes are the top-level building blocks of a Document. A Document is
// any Block; Root is only valid at the top of the tree.
type Block interface {
	Node
	block()
}

// Text is a run of text sharing one Style.
type Text struct {
	Text  string
	Style Style
}

// Link points at a URL. Text defaults to URL when no display text was given.
type Link struct {
	URL  string
	Text string
}

// User mentions a user by id.
type User struct {
	UserID string
}

// Channel mentions a channel by id.
type Channel struct {
	ChannelID string
}

// Broadcast notifies a group, Range is one of here, channel or everyone.
type Broadcast struct {
	Range string
}

// Emoji is a named emoji reference.
type Emoji struct {
	Name string
}

// UnknownInline keeps an inline element whose type is not modelled so that
// formatters can fall back to best-effort text extraction.
type UnknownInline struct {
	Type string
	Raw  map[string]any
}

// Section is one paragraph or line of inline content.
type Section struct {
	Elements []Inline
}

// List is a flat list of sections. Nested lists are not supported.
type List struct {
	Style ListStyle
	Items []Section
}

// Quote is a block quotation made of sections.
type Quote struct {
	Elements []Section
}

// Preformatted is a code block made of text runs.
type Preformatted struct {
	Elements []Text
}

// Root wraps multiple top-level blocks.
type Root struct {
	Elements []Block
}

// UnknownBlock keeps a block element whose type is not modelled.
type UnknownBlock struct {
	Type string
	Raw  map[string]any
}

func (Text) Kind() Kind      { return KindText }
func (Link) Kind() Kind      { return KindLink }
func (User) Kind() Kind      { return KindUser }
func (Channel) Kind() Kind   { return KindChannel }
func (Broadcast) Kind() Kind { return KindBroadcast }
func (Emoji) Kind() Kind     { return KindEmoji }
func (u UnknownInline) Kind() Kind {
	return Kind(u.Type)
}

func (Section) Kind() Kind      { return KindSection }
func (List) Kind() Kind         { return KindList }
func (Quote) Kind() Kind        { return KindQuote }
func (Preformatted) Kind() Kind { return KindPreformatted }
func (Root) Kind() Kind         { return KindRoot }
func (u UnknownBlock) Kind() Kind {
	return Kind(u.Type)
}

func (Text) node()          {}
func (Link) node()          {}
func (User) node()          {}
func (Channel) node()       {}
func (Broadcast) node()     {}
func (Emoji) node()         {}
func (UnknownInline) node() {}
func (Section) node()       {}
func (List) node()          {}
func (Quote) node()         {}
func (Preformatted) node()  {}
func (Root) node()          {}
func (UnknownBlock) node()  {}

func (Text) inline()          {}
func (Link) inline()          {}
func (User) inline()          {}
func (Channel) inline()       {}
func (Broadcast) inline()     {}
func (Emoji) inline()         {}
func (UnknownInline) inline() {}

func (Section) block()      {}
func (List) block()         {}
func (Quote) block()        {}
func (Preformatted) block() {}
func (Root) block()         {}
func (UnknownBlock) block() {}

// EmptySection is the canonical empty Document.
func EmptySection() Section {
	return Section{Elements: []Inline{}}
}

// NewLink builds a link, defaulting the display text to the URL.
func NewLink(url, text string) Link {
	if text == "" {
		text = url
	}
	return Link{URL: url, Text: text}
}

// Wrap returns blocks as a Document: the block itself when there is exactly
// one, a Root when there are several and an empty Section when there are none.
func Wrap(blocks []Block) Block {
	switch len(blocks) {
	case 0:
		return EmptySection()
	case 1:
		return blocks[0]
	default:
		out := make([]Block, len(blocks))
		copy(out, blocks)
		return Root{Elements: out}
	}
}

// IsEmpty reports whether doc carries no content.
func IsEmpty(doc Block) bool {
	switch typed := doc.(type) {
	case nil:
		return true
	case Section:
		return len(typed.Elements) == 0
	case Root:
		return len(typed.Elements) == 0
	case List:
		return len(typed.Items) == 0
	case Quote:
		return len(typed.Elements) == 0
	case Preformatted:
		return len(typed.Elements) == 0
	default:
		return false
	}
}
