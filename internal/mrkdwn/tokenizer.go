package mrkdwn

import (
	"strings"

	"github.com/goliatone/go-slackfmt/internal/richtext"
)

const markers = "*_~`<"

// Tokenize scans one line of mrkdwn and returns its inline elements in order.
// Style spans are not nested: the text between two identical markers is taken
// literally. Unterminated or empty spans and malformed links degrade to
// literal text, so Tokenize never fails.
func Tokenize(line string) []richtext.Inline {
	t := tokenizer{src: line}
	t.run()
	return t.out
}

type tokenizer struct {
	src   string
	pos   int
	plain strings.Builder
	out   []richtext.Inline
}

func (t *tokenizer) run() {
	t.out = []richtext.Inline{}
	for t.pos < len(t.src) {
		next := strings.IndexAny(t.src[t.pos:], markers)
		if next < 0 {
			t.plain.WriteString(t.src[t.pos:])
			break
		}
		if next > 0 {
			t.plain.WriteString(t.src[t.pos : t.pos+next])
			t.pos += next
		}

		marker := t.src[t.pos]
		if marker == '<' {
			if !t.link() {
				break
			}
			continue
		}
		t.span(marker)
	}
	t.flush()
}

// span handles a style marker at t.pos.
func (t *tokenizer) span(marker byte) {
	closing := strings.IndexByte(t.src[t.pos+1:], marker)
	if closing <= 0 {
		// unterminated, or adjacent markers enclosing nothing
		t.plain.WriteByte(marker)
		t.pos++
		return
	}

	content := t.src[t.pos+1 : t.pos+1+closing]
	t.emit(richtext.Text{Text: content, Style: styleFor(marker)})
	t.pos += closing + 2
}

// link handles "<" at t.pos. It returns false when the rest of the line was
// consumed as literal text.
func (t *tokenizer) link() bool {
	closing := strings.IndexByte(t.src[t.pos+1:], '>')
	if closing < 0 {
		t.plain.WriteString(t.src[t.pos:])
		t.pos = len(t.src)
		return false
	}

	raw := t.src[t.pos : t.pos+closing+2]
	content := raw[1 : len(raw)-1]
	t.pos += len(raw)

	if link, ok := parseLink(content); ok {
		t.emit(link)
		return true
	}
	t.plain.WriteString(raw)
	return true
}

func parseLink(content string) (richtext.Link, bool) {
	if content == "" {
		return richtext.Link{}, false
	}
	url, display, piped := strings.Cut(content, "|")
	url = strings.TrimSpace(url)
	if !piped {
		if url == "" {
			return richtext.Link{}, false
		}
		return richtext.Link{URL: url, Text: url}, true
	}
	display = strings.TrimSpace(display)
	if url == "" || display == "" {
		return richtext.Link{}, false
	}
	return richtext.Link{URL: url, Text: display}, true
}

func (t *tokenizer) emit(node richtext.Inline) {
	t.flush()
	t.out = append(t.out, node)
}

func (t *tokenizer) flush() {
	if t.plain.Len() == 0 {
		return
	}
	t.out = append(t.out, richtext.Text{Text: t.plain.String()})
	t.plain.Reset()
}

func styleFor(marker byte) richtext.Style {
	switch marker {
	case '*':
		return richtext.Style{Bold: true}
	case '_':
		return richtext.Style{Italic: true}
	case '~':
		return richtext.Style{Strike: true}
	case '`':
		return richtext.Style{Code: true}
	}
	return richtext.Style{}
}
