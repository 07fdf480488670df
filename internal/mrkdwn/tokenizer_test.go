package mrkdwn

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-slackfmt/internal/richtext"
)

func TestTokenize(t *testing.T) {
	bold := richtext.Style{Bold: true}

	cases := []struct {
		name string
		line string
		want []richtext.Inline
	}{
		{
			name: "mixed styles",
			line: "Hello *bold* and _italic_ text",
			want: []richtext.Inline{
				richtext.Text{Text: "Hello "},
				richtext.Text{Text: "bold", Style: bold},
				richtext.Text{Text: " and "},
				richtext.Text{Text: "italic", Style: richtext.Style{Italic: true}},
				richtext.Text{Text: " text"},
			},
		},
		{
			name: "strike and code",
			line: "~gone~`x := 1`",
			want: []richtext.Inline{
				richtext.Text{Text: "gone", Style: richtext.Style{Strike: true}},
				richtext.Text{Text: "x := 1", Style: richtext.Style{Code: true}},
			},
		},
		{
			name: "unterminated marker",
			line: "*unclosed bold",
			want: []richtext.Inline{richtext.Text{Text: "*unclosed bold"}},
		},
		{
			name: "adjacent markers",
			line: "a ** b",
			want: []richtext.Inline{richtext.Text{Text: "a ** b"}},
		},
		{
			name: "nested markers taken literally",
			line: "*a _b_ c*",
			want: []richtext.Inline{richtext.Text{Text: "a _b_ c", Style: bold}},
		},
		{
			name: "link with display text",
			line: "see <https://x.com| Y >!",
			want: []richtext.Inline{
				richtext.Text{Text: "see "},
				richtext.Link{URL: "https://x.com", Text: "Y"},
				richtext.Text{Text: "!"},
			},
		},
		{
			name: "bare link",
			line: "<https://x.com>",
			want: []richtext.Inline{richtext.Link{URL: "https://x.com", Text: "https://x.com"}},
		},
		{
			name: "empty display text is literal",
			line: "<https://x.com|>",
			want: []richtext.Inline{richtext.Text{Text: "<https://x.com|>"}},
		},
		{
			name: "empty link is literal",
			line: "a <> b",
			want: []richtext.Inline{richtext.Text{Text: "a <> b"}},
		},
		{
			name: "unclosed link consumes the rest",
			line: "a <b *c*",
			want: []richtext.Inline{richtext.Text{Text: "a <b *c*"}},
		},
		{
			name: "empty line",
			line: "",
			want: []richtext.Inline{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, Tokenize(tc.line)); diff != "" {
				t.Fatalf("Tokenize(%q) mismatch (-want +got):\n%s", tc.line, diff)
			}
		})
	}
}
