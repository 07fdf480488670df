package blockkit

import (
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-slackfmt/internal/richtext"
	"github.com/goliatone/go-slackfmt/internal/util"
)

// ErrInvalidJSON is returned when a layout payload is not valid JSON. It is
// the same sentinel the rich text codec uses.
var ErrInvalidJSON = richtext.ErrInvalidJSON

type sectionWire struct {
	Type    Kind        `json:"type"`
	BlockID string      `json:"block_id,omitempty"`
	Text    *TextObject `json:"text,omitempty"`
}

type headerWire struct {
	Type    Kind       `json:"type"`
	BlockID string     `json:"block_id,omitempty"`
	Text    TextObject `json:"text"`
}

type dividerWire struct {
	Type    Kind   `json:"type"`
	BlockID string `json:"block_id,omitempty"`
}

type contextWire struct {
	Type     Kind             `json:"type"`
	BlockID  string           `json:"block_id,omitempty"`
	Elements []ContextElement `json:"elements"`
}

type contextImageWire struct {
	Type     string `json:"type"`
	ImageURL string `json:"image_url"`
	AltText  string `json:"alt_text"`
}

type imageWire struct {
	Type     Kind        `json:"type"`
	BlockID  string      `json:"block_id,omitempty"`
	ImageURL string      `json:"image_url,omitempty"`
	AltText  string      `json:"alt_text"`
	Title    *TextObject `json:"title,omitempty"`
}

type richTextWire struct {
	Type     Kind             `json:"type"`
	BlockID  string           `json:"block_id,omitempty"`
	Elements []richtext.Block `json:"elements"`
}

func (s Section) MarshalJSON() ([]byte, error) {
	return json.Marshal(sectionWire{Type: KindSection, BlockID: s.BlockID, Text: s.Text})
}

func (h Header) MarshalJSON() ([]byte, error) {
	return json.Marshal(headerWire{Type: KindHeader, BlockID: h.BlockID, Text: h.Text})
}

func (d Divider) MarshalJSON() ([]byte, error) {
	return json.Marshal(dividerWire{Type: KindDivider, BlockID: d.BlockID})
}

func (c Context) MarshalJSON() ([]byte, error) {
	elements := c.Elements
	if elements == nil {
		elements = []ContextElement{}
	}
	return json.Marshal(contextWire{Type: KindContext, BlockID: c.BlockID, Elements: elements})
}

func (c ContextImage) MarshalJSON() ([]byte, error) {
	return json.Marshal(contextImageWire{Type: string(KindImage), ImageURL: c.ImageURL, AltText: c.AltText})
}

func (i Image) MarshalJSON() ([]byte, error) {
	return json.Marshal(imageWire{
		Type:     KindImage,
		BlockID:  i.BlockID,
		ImageURL: i.ImageURL,
		AltText:  i.AltText,
		Title:    i.Title,
	})
}

func (r RichText) MarshalJSON() ([]byte, error) {
	elements := r.Elements
	if elements == nil {
		elements = []richtext.Block{}
	}
	return json.Marshal(richTextWire{Type: KindRichText, BlockID: r.BlockID, Elements: elements})
}

func (u Unknown) MarshalJSON() ([]byte, error) {
	return json.Marshal(util.CloneWith(u.Raw, "type", u.Type))
}

// Decode parses one layout block. A JSON null decodes to nil.
func Decode(data []byte) (Block, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return FromValue(raw), nil
}

// DecodeAll parses either a JSON array of blocks or an object carrying a
// "blocks" array. A single block object decodes to a one-element slice.
func DecodeAll(data []byte) ([]Block, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return AllFromValue(raw)
}

// AllFromValue is DecodeAll over an already decoded JSON value. Absent
// blocks are dropped.
func AllFromValue(raw any) ([]Block, error) {
	var items []any
	switch typed := raw.(type) {
	case nil:
		return []Block{}, nil
	case []any:
		items = typed
	case map[string]any:
		if nested, ok := typed["blocks"].([]any); ok {
			items = nested
		} else {
			items = []any{typed}
		}
	default:
		return nil, fmt.Errorf("%w: expected an array or object, got %T", ErrInvalidJSON, raw)
	}

	blocks := make([]Block, 0, len(items))
	for _, item := range items {
		if block := FromValue(item); block != nil {
			blocks = append(blocks, block)
		}
	}
	return blocks, nil
}

// FromValue converts a generic JSON value into a layout block. Non-object and
// empty values yield nil, the absent block.
func FromValue(value any) Block {
	m, ok := value.(map[string]any)
	if !ok || len(m) == 0 {
		return nil
	}

	blockID := stringField(m, "block_id")
	switch Kind(stringField(m, "type")) {
	case KindSection:
		return Section{BlockID: blockID, Text: textObjectField(m, "text")}
	case KindHeader:
		text := textObjectField(m, "text")
		if text == nil {
			plain := PlainText("")
			text = &plain
		}
		return Header{BlockID: blockID, Text: *text}
	case KindDivider:
		return Divider{BlockID: blockID}
	case KindContext:
		items, _ := m["elements"].([]any)
		elements := make([]ContextElement, 0, len(items))
		for _, item := range items {
			if element := contextElementFromValue(item); element != nil {
				elements = append(elements, element)
			}
		}
		return Context{BlockID: blockID, Elements: elements}
	case KindImage:
		return Image{
			BlockID:  blockID,
			ImageURL: stringField(m, "image_url"),
			AltText:  stringField(m, "alt_text"),
			Title:    textObjectField(m, "title"),
		}
	case KindRichText:
		items, _ := m["elements"].([]any)
		elements := make([]richtext.Block, 0, len(items))
		for _, item := range items {
			if child, ok := item.(map[string]any); ok {
				elements = append(elements, richtext.BlockFromMap(child))
			}
		}
		return RichText{BlockID: blockID, Elements: elements}
	default:
		return Unknown{Type: stringField(m, "type"), Raw: m}
	}
}

func contextElementFromValue(value any) ContextElement {
	m, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	switch typ := stringField(m, "type"); typ {
	case string(TextMrkdwn), string(TextPlain):
		return TextObject{Type: TextType(typ), Text: stringField(m, "text")}
	case string(KindImage):
		return ContextImage{ImageURL: stringField(m, "image_url"), AltText: stringField(m, "alt_text")}
	default:
		return Unknown{Type: typ, Raw: m}
	}
}

// textObjectField reads a text object. A bare string is accepted as plain text.
func textObjectField(m map[string]any, key string) *TextObject {
	switch typed := m[key].(type) {
	case map[string]any:
		return &TextObject{Type: TextType(stringField(typed, "type")), Text: stringField(typed, "text")}
	case string:
		text := PlainText(typed)
		return &text
	default:
		return nil
	}
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
