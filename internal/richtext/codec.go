package richtext

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goliatone/go-slackfmt/internal/util"
)

// ErrInvalidJSON is returned when a payload cannot be decoded as JSON.
var ErrInvalidJSON = errors.New("slackfmt: invalid json")

type textWire struct {
	Type  Kind   `json:"type"`
	Text  string `json:"text"`
	Style *Style `json:"style,omitempty"`
}

type linkWire struct {
	Type Kind   `json:"type"`
	URL  string `json:"url"`
	Text string `json:"text"`
}

type userWire struct {
	Type   Kind   `json:"type"`
	UserID string `json:"user_id"`
}

type channelWire struct {
	Type      Kind   `json:"type"`
	ChannelID string `json:"channel_id"`
}

type broadcastWire struct {
	Type  Kind   `json:"type"`
	Range string `json:"range"`
}

type emojiWire struct {
	Type Kind   `json:"type"`
	Name string `json:"name"`
}

type sectionWire struct {
	Type     Kind     `json:"type"`
	Elements []Inline `json:"elements"`
}

type listWire struct {
	Type     Kind      `json:"type"`
	Style    ListStyle `json:"style"`
	Elements []Section `json:"elements"`
}

type quoteWire struct {
	Type     Kind      `json:"type"`
	Elements []Section `json:"elements"`
}

type preformattedWire struct {
	Type     Kind   `json:"type"`
	Elements []Text `json:"elements"`
}

type rootWire struct {
	Type     Kind    `json:"type"`
	Elements []Block `json:"elements"`
}

func (t Text) MarshalJSON() ([]byte, error) {
	wire := textWire{Type: KindText, Text: t.Text}
	if !t.Style.IsZero() {
		style := t.Style
		wire.Style = &style
	}
	return json.Marshal(wire)
}

func (l Link) MarshalJSON() ([]byte, error) {
	return json.Marshal(linkWire{Type: KindLink, URL: l.URL, Text: l.Text})
}

func (u User) MarshalJSON() ([]byte, error) {
	return json.Marshal(userWire{Type: KindUser, UserID: u.UserID})
}

func (c Channel) MarshalJSON() ([]byte, error) {
	return json.Marshal(channelWire{Type: KindChannel, ChannelID: c.ChannelID})
}

func (b Broadcast) MarshalJSON() ([]byte, error) {
	return json.Marshal(broadcastWire{Type: KindBroadcast, Range: b.Range})
}

func (e Emoji) MarshalJSON() ([]byte, error) {
	return json.Marshal(emojiWire{Type: KindEmoji, Name: e.Name})
}

func (u UnknownInline) MarshalJSON() ([]byte, error) {
	return json.Marshal(withType(u.Raw, u.Type))
}

func (s Section) MarshalJSON() ([]byte, error) {
	return json.Marshal(sectionWire{Type: KindSection, Elements: nonNil(s.Elements)})
}

func (l List) MarshalJSON() ([]byte, error) {
	style := l.Style
	if style == "" {
		style = ListBullet
	}
	return json.Marshal(listWire{Type: KindList, Style: style, Elements: nonNil(l.Items)})
}

func (q Quote) MarshalJSON() ([]byte, error) {
	return json.Marshal(quoteWire{Type: KindQuote, Elements: nonNil(q.Elements)})
}

func (p Preformatted) MarshalJSON() ([]byte, error) {
	return json.Marshal(preformattedWire{Type: KindPreformatted, Elements: nonNil(p.Elements)})
}

func (r Root) MarshalJSON() ([]byte, error) {
	return json.Marshal(rootWire{Type: KindRoot, Elements: nonNil(r.Elements)})
}

func (u UnknownBlock) MarshalJSON() ([]byte, error) {
	return json.Marshal(withType(u.Raw, u.Type))
}

// Decode parses a JSON document. A JSON null decodes to the empty Section.
func Decode(data []byte) (Block, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return FromValue(raw), nil
}

// FromValue converts a generic JSON value (as produced by encoding/json) into
// a Document. Unknown shapes degrade instead of failing; nil and non-object
// values yield the empty Section.
func FromValue(value any) Block {
	m, ok := value.(map[string]any)
	if !ok || len(m) == 0 {
		return EmptySection()
	}
	return BlockFromMap(m)
}

// BlockFromMap converts one block object.
func BlockFromMap(m map[string]any) Block {
	switch Kind(stringField(m, "type")) {
	case KindRoot:
		items := sliceField(m, "elements")
		blocks := make([]Block, 0, len(items))
		for _, item := range items {
			if child, ok := item.(map[string]any); ok {
				blocks = append(blocks, BlockFromMap(child))
			}
		}
		if len(blocks) == 0 {
			return EmptySection()
		}
		return Root{Elements: blocks}
	case KindSection:
		return sectionFromMap(m)
	case KindList:
		style := ListStyle(stringField(m, "style"))
		if style != ListOrdered {
			style = ListBullet
		}
		return List{Style: style, Items: sectionsFromSlice(sliceField(m, "elements"))}
	case KindQuote:
		return Quote{Elements: sectionsFromSlice(sliceField(m, "elements"))}
	case KindPreformatted:
		items := sliceField(m, "elements")
		texts := make([]Text, 0, len(items))
		for _, item := range items {
			child, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if text, ok := InlineFromMap(child).(Text); ok {
				texts = append(texts, text)
			}
		}
		return Preformatted{Elements: texts}
	default:
		return UnknownBlock{Type: stringField(m, "type"), Raw: m}
	}
}

// InlineFromMap converts one inline element object.
func InlineFromMap(m map[string]any) Inline {
	switch Kind(stringField(m, "type")) {
	case KindText:
		return Text{Text: stringField(m, "text"), Style: styleFromValue(m["style"])}
	case KindLink:
		return NewLink(stringField(m, "url"), stringField(m, "text"))
	case KindUser:
		return User{UserID: stringField(m, "user_id")}
	case KindChannel:
		return Channel{ChannelID: stringField(m, "channel_id")}
	case KindBroadcast:
		return Broadcast{Range: stringField(m, "range")}
	case KindEmoji:
		return Emoji{Name: stringField(m, "name")}
	default:
		return UnknownInline{Type: stringField(m, "type"), Raw: m}
	}
}

func sectionFromMap(m map[string]any) Section {
	items := sliceField(m, "elements")
	elements := make([]Inline, 0, len(items))
	for _, item := range items {
		if child, ok := item.(map[string]any); ok {
			elements = append(elements, InlineFromMap(child))
		}
	}
	return Section{Elements: elements}
}

func sectionsFromSlice(items []any) []Section {
	sections := make([]Section, 0, len(items))
	for _, item := range items {
		child, ok := item.(map[string]any)
		if !ok {
			continue
		}
		sections = append(sections, sectionFromMap(child))
	}
	return sections
}

func styleFromValue(value any) Style {
	m, ok := value.(map[string]any)
	if !ok {
		return Style{}
	}
	flag := func(key string) bool {
		b, _ := m[key].(bool)
		return b
	}
	return Style{
		Bold:   flag("bold"),
		Italic: flag("italic"),
		Strike: flag("strike"),
		Code:   flag("code"),
	}
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func sliceField(m map[string]any, key string) []any {
	items, _ := m[key].([]any)
	return items
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func withType(raw map[string]any, typ string) map[string]any {
	return util.CloneWith(raw, "type", typ)
}
