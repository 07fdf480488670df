package markdown

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-slackfmt/internal/util"
)

// ParseFrontMatter splits source into its front matter values and the
// markdown body. Sources without front matter return an empty map and the
// input unchanged.
func ParseFrontMatter(source []byte) (map[string]any, []byte, error) {
	var meta frontMatterEnvelope

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &meta)
	if err != nil {
		return nil, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return meta.values(), body, nil
}

type frontMatterEnvelope struct {
	Title  string         `yaml:"title"`
	Custom map[string]any `yaml:",inline"`
}

func (env frontMatterEnvelope) values() map[string]any {
	return util.CloneWith(env.Custom, "title", env.Title)
}
