package blockkit

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-slackfmt/internal/richtext"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    Block
	}{
		{name: "null", payload: `null`, want: nil},
		{name: "empty object", payload: `{}`, want: nil},
		{
			name:    "section",
			payload: `{"type":"section","block_id":"b1","text":{"type":"mrkdwn","text":"*hi*"}}`,
			want:    Section{BlockID: "b1", Text: &TextObject{Type: TextMrkdwn, Text: "*hi*"}},
		},
		{
			name:    "header with bare text",
			payload: `{"type":"header","text":"Title"}`,
			want:    Header{Text: PlainText("Title")},
		},
		{name: "header without text", payload: `{"type":"header"}`, want: Header{Text: PlainText("")}},
		{name: "divider", payload: `{"type":"divider"}`, want: Divider{}},
		{
			name: "context",
			payload: `{"type":"context","elements":[
				{"type":"mrkdwn","text":"a"},
				{"type":"image","image_url":"https://x/i.png","alt_text":"pic"},
				{"type":"button","text":{"type":"plain_text","text":"Go"}},
				"skipped"
			]}`,
			want: Context{Elements: []ContextElement{
				Mrkdwn("a"),
				ContextImage{ImageURL: "https://x/i.png", AltText: "pic"},
				Unknown{Type: "button", Raw: map[string]any{
					"type": "button",
					"text": map[string]any{"type": "plain_text", "text": "Go"},
				}},
			}},
		},
		{
			name:    "image",
			payload: `{"type":"image","image_url":"https://x/l.png","alt_text":"Logo","title":{"type":"plain_text","text":"Brand"}}`,
			want:    Image{ImageURL: "https://x/l.png", AltText: "Logo", Title: &TextObject{Type: TextPlain, Text: "Brand"}},
		},
		{
			name:    "rich text",
			payload: `{"type":"rich_text","elements":[{"type":"rich_text_section","elements":[{"type":"text","text":"x"}]}]}`,
			want: RichText{Elements: []richtext.Block{
				richtext.Section{Elements: []richtext.Inline{richtext.Text{Text: "x"}}},
			}},
		},
		{
			name:    "unknown",
			payload: `{"type":"actions","elements":[]}`,
			want:    Unknown{Type: "actions", Raw: map[string]any{"type": "actions", "elements": []any{}}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode([]byte(tc.payload))
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Decode mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeAll(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    int
	}{
		{name: "array", payload: `[{"type":"divider"},null,{"type":"header","text":"T"}]`, want: 2},
		{name: "message envelope", payload: `{"text":"fallback","blocks":[{"type":"divider"}]}`, want: 1},
		{name: "single block", payload: `{"type":"divider"}`, want: 1},
		{name: "null", payload: `null`, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			blocks, err := DecodeAll([]byte(tc.payload))
			if err != nil {
				t.Fatalf("DecodeAll: %v", err)
			}
			if len(blocks) != tc.want {
				t.Fatalf("expected %d blocks, got %d (%#v)", tc.want, len(blocks), blocks)
			}
		})
	}

	if _, err := DecodeAll([]byte(`"nope"`)); !errors.Is(err, ErrInvalidJSON) {
		t.Fatalf("expected ErrInvalidJSON for scalar payload, got %v", err)
	}
	if _, err := DecodeAll([]byte(`[`)); !errors.Is(err, ErrInvalidJSON) {
		t.Fatalf("expected ErrInvalidJSON for truncated payload, got %v", err)
	}
}

func TestMarshalJSON(t *testing.T) {
	title := PlainText("Brand")
	blocks := []Block{
		EmptySection(),
		Header{BlockID: "h", Text: PlainText("T")},
		Divider{},
		Context{Elements: []ContextElement{Mrkdwn("a"), ContextImage{ImageURL: "u", AltText: "alt"}}},
		Image{ImageURL: "u", AltText: "alt", Title: &title},
		RichText{},
		Unknown{Type: "actions", Raw: map[string]any{"elements": []any{}}},
	}

	data, err := json.Marshal(blocks)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	want := `[{"type":"section","text":{"type":"mrkdwn","text":""}},` +
		`{"type":"header","block_id":"h","text":{"type":"plain_text","text":"T"}},` +
		`{"type":"divider"},` +
		`{"type":"context","elements":[{"type":"mrkdwn","text":"a"},{"type":"image","image_url":"u","alt_text":"alt"}]},` +
		`{"type":"image","image_url":"u","alt_text":"alt","title":{"type":"plain_text","text":"Brand"}},` +
		`{"type":"rich_text","elements":[]},` +
		`{"elements":[],"type":"actions"}]`

	if string(data) != want {
		t.Fatalf("Marshal =\n%s\nwant\n%s", data, want)
	}
}
