package mrkdwn

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-slackfmt/internal/richtext"
)

var (
	listItemPattern    = regexp.MustCompile(`^([•*-]|\d+\.)\s+`)
	orderedItemPattern = regexp.MustCompile(`^\d+\.\s+`)
)

// Parse converts multi-line mrkdwn into a Document.
//
// Blank lines are dropped. Each list line becomes its own single-item List;
// consecutive list lines are not grouped. One resulting block is returned as
// is, several are wrapped in a Root, none yield the empty Section.
func Parse(text string) richtext.Block {
	if text == "" {
		return richtext.EmptySection()
	}

	lines := strings.Split(normalizeLineBreaks(text), "\n")
	blocks := make([]richtext.Block, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		blocks = append(blocks, parseLine(line))
	}
	return richtext.Wrap(blocks)
}

func parseLine(line string) richtext.Block {
	prefix := listItemPattern.FindString(line)
	if prefix == "" {
		return richtext.Section{Elements: Tokenize(line)}
	}

	style := richtext.ListBullet
	if orderedItemPattern.MatchString(prefix) {
		style = richtext.ListOrdered
	}
	item := richtext.Section{Elements: Tokenize(line[len(prefix):])}
	return richtext.List{Style: style, Items: []richtext.Section{item}}
}

func normalizeLineBreaks(text string) string {
	if !strings.Contains(text, "\r") {
		return text
	}
	return strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(text)
}
