package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/goliatone/go-slackfmt/internal/richtext"
)

// ImportOptions controls how standard markdown is read.
type ImportOptions struct {
	// Extensions names the goldmark extensions to enable. Empty selects
	// strikethrough and linkify.
	Extensions []string
}

// Importer turns standard markdown into a Document using goldmark.
// It is stateless and safe for concurrent use.
type Importer struct {
	engine goldmark.Markdown
}

// NewImporter constructs an importer with the supplied options.
func NewImporter(opts ImportOptions) *Importer {
	return &Importer{
		engine: goldmark.New(goldmark.WithExtensions(collectExtensions(opts.Extensions)...)),
	}
}

// Import strips any front matter from source, parses the remaining markdown
// and returns the Document together with the front matter values.
func (i *Importer) Import(source []byte) (richtext.Block, map[string]any, error) {
	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, nil, err
	}
	return i.Document(body), meta, nil
}

// Document parses markdown without front matter handling.
func (i *Importer) Document(body []byte) richtext.Block {
	root := i.engine.Parser().Parse(text.NewReader(body))
	w := walker{source: body}
	return richtext.Wrap(w.blocks(root))
}

var extensionRegistry = map[string]goldmark.Extender{
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"table":         extension.Table,
	"tables":        extension.Table,
	"tasklist":      extension.TaskList,
	"gfm":           extension.GFM,
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{
			extension.Strikethrough,
			extension.Linkify,
		}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}
		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}

	return extenders
}

type walker struct {
	source []byte
}

func (w walker) blocks(parent ast.Node) []richtext.Block {
	var out []richtext.Block
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Paragraph, *ast.TextBlock:
			out = append(out, richtext.Section{Elements: w.inlines(node, richtext.Style{})})
		case *ast.Heading:
			out = append(out, richtext.Section{Elements: w.inlines(node, richtext.Style{Bold: true})})
		case *ast.ThematicBreak:
			out = append(out, richtext.Section{Elements: []richtext.Inline{richtext.Text{Text: dividerMarkdown}}})
		case *ast.List:
			out = append(out, w.list(node))
		case *ast.Blockquote:
			out = append(out, richtext.Quote{Elements: w.sections(node)})
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			code := strings.TrimSuffix(w.lines(node), "\n")
			out = append(out, richtext.Preformatted{Elements: []richtext.Text{{Text: code}}})
		case *ast.HTMLBlock:
			if html := strings.TrimSpace(w.lines(node)); html != "" {
				out = append(out, richtext.Section{Elements: []richtext.Inline{richtext.Text{Text: html}}})
			}
		default:
			if n.HasChildren() {
				out = append(out, w.blocks(n)...)
			}
		}
	}
	return out
}

// list keeps one Section per item; nested lists are flattened into their
// parent item.
func (w walker) list(list *ast.List) richtext.List {
	style := richtext.ListBullet
	if list.IsOrdered() {
		style = richtext.ListOrdered
	}
	items := []richtext.Section{}
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		items = append(items, richtext.Section{Elements: w.flatten(item)})
	}
	return richtext.List{Style: style, Items: items}
}

func (w walker) sections(parent ast.Node) []richtext.Section {
	sections := []richtext.Section{}
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		if elements := w.flattenNode(n); len(elements) > 0 {
			sections = append(sections, richtext.Section{Elements: elements})
		}
	}
	return sections
}

func (w walker) flatten(parent ast.Node) []richtext.Inline {
	var out []richtext.Inline
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		elements := w.flattenNode(n)
		if len(elements) == 0 {
			continue
		}
		if len(out) > 0 {
			out = append(out, richtext.Text{Text: " "})
		}
		out = append(out, elements...)
	}
	if out == nil {
		return []richtext.Inline{}
	}
	return richtext.MergeText(out)
}

func (w walker) flattenNode(n ast.Node) []richtext.Inline {
	switch node := n.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		return w.inlines(node, richtext.Style{})
	case *ast.Heading:
		return w.inlines(node, richtext.Style{Bold: true})
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		code := strings.TrimSuffix(w.lines(node), "\n")
		return []richtext.Inline{richtext.Text{Text: code, Style: richtext.Style{Code: true}}}
	default:
		return w.flatten(n)
	}
}

func (w walker) inlines(parent ast.Node, style richtext.Style) []richtext.Inline {
	out := []richtext.Inline{}
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Text:
			out = append(out, richtext.Text{Text: string(node.Segment.Value(w.source)), Style: style})
			switch {
			case node.HardLineBreak():
				out = append(out, richtext.Text{Text: "\n", Style: style})
			case node.SoftLineBreak():
				out = append(out, richtext.Text{Text: " ", Style: style})
			}
		case *ast.String:
			out = append(out, richtext.Text{Text: string(node.Value), Style: style})
		case *ast.CodeSpan:
			code := style
			code.Code = true
			out = append(out, richtext.Text{Text: w.plain(node), Style: code})
		case *ast.Emphasis:
			nested := style
			if node.Level >= 2 {
				nested.Bold = true
			} else {
				nested.Italic = true
			}
			out = append(out, w.inlines(node, nested)...)
		case *east.Strikethrough:
			nested := style
			nested.Strike = true
			out = append(out, w.inlines(node, nested)...)
		case *ast.Link:
			out = append(out, richtext.NewLink(string(node.Destination), w.plain(node)))
		case *ast.AutoLink:
			out = append(out, richtext.NewLink(string(node.URL(w.source)), string(node.Label(w.source))))
		case *ast.Image:
			out = append(out, richtext.NewLink(string(node.Destination), w.plain(node)))
		case *ast.RawHTML:
			var b strings.Builder
			for i := 0; i < node.Segments.Len(); i++ {
				segment := node.Segments.At(i)
				b.Write(segment.Value(w.source))
			}
			out = append(out, richtext.Text{Text: b.String(), Style: style})
		default:
			out = append(out, w.inlines(n, style)...)
		}
	}
	return richtext.MergeText(out)
}

// plain concatenates the literal text below n.
func (w walker) plain(n ast.Node) string {
	var b strings.Builder
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch typed := child.(type) {
		case *ast.Text:
			b.Write(typed.Segment.Value(w.source))
			if typed.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(typed.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

func (w walker) lines(n ast.Node) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		b.Write(segment.Value(w.source))
	}
	return b.String()
}
