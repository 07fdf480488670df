package convert

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goliatone/go-slackfmt/internal/blockkit"
	"github.com/goliatone/go-slackfmt/internal/identity"
	"github.com/goliatone/go-slackfmt/internal/logging"
	"github.com/goliatone/go-slackfmt/internal/markdown"
	"github.com/goliatone/go-slackfmt/internal/mrkdwn"
	"github.com/goliatone/go-slackfmt/internal/richtext"
	"github.com/goliatone/go-slackfmt/internal/runtimeconfig"
	"github.com/goliatone/go-slackfmt/internal/validation"
	"github.com/goliatone/go-slackfmt/pkg/interfaces"
)

// Service composes the conversion packages behind one configured value.
// Conversions never fail; only JSON decoding and markdown import return
// errors. A Service is safe for concurrent use.
type Service struct {
	cfg       runtimeconfig.Config
	converter blockkit.Converter
	formatter markdown.Formatter
	importer  *markdown.Importer

	mrkdwnLog   interfaces.Logger
	blockkitLog interfaces.Logger
	markdownLog interfaces.Logger
}

var _ interfaces.ConverterService = (*Service)(nil)

// NewService builds a service. A nil provider disables logging.
func NewService(cfg runtimeconfig.Config, provider interfaces.LoggerProvider) *Service {
	return &Service{
		cfg:         cfg,
		converter:   blockkit.NewConverter(cfg.Extract.MaxDepth),
		formatter:   markdown.NewFormatter(cfg.Extract.MaxDepth),
		importer:    markdown.NewImporter(markdown.ImportOptions{Extensions: cfg.Markdown.Extensions}),
		mrkdwnLog:   logging.ModuleLogger(provider, logging.MrkdwnModule),
		blockkitLog: logging.ModuleLogger(provider, logging.BlockKitModule),
		markdownLog: logging.ModuleLogger(provider, logging.MarkdownModule),
	}
}

// Config returns the configuration the service was built with.
func (s *Service) Config() runtimeconfig.Config {
	return s.cfg
}

// MarkupToDocument parses mrkdwn into a Document.
func (s *Service) MarkupToDocument(text string) richtext.Block {
	doc := mrkdwn.Parse(text)
	s.mrkdwnLog.Debug("mrkdwn.parse", "input_bytes", len(text), "kind", kindOf(doc))
	return doc
}

// DocumentToMarkup renders a Document as mrkdwn.
func (s *Service) DocumentToMarkup(doc richtext.Block) string {
	text := mrkdwn.Format(doc)
	s.mrkdwnLog.Debug("mrkdwn.format", "kind", kindOf(doc), "output_bytes", len(text))
	return text
}

// DocumentToLayout renders a Document into a mrkdwn Section block.
func (s *Service) DocumentToLayout(doc richtext.Block) blockkit.Section {
	section := s.converter.FromDocument(doc)
	if s.cfg.Output.BlockIDs && section.Text != nil {
		section.BlockID = identity.BlockID(section.Text.Text)
	}
	s.blockkitLog.Debug("blockkit.from_document", "kind", kindOf(doc), "block_id", section.BlockID)
	return section
}

// DocumentToRichText embeds a Document in a rich_text block.
func (s *Service) DocumentToRichText(doc richtext.Block) blockkit.RichText {
	block := s.converter.RichTextFromDocument(doc)
	if s.cfg.Output.BlockIDs {
		block.BlockID = identity.BlockID(mrkdwn.Format(doc))
	}
	s.blockkitLog.Debug("blockkit.rich_text_from_document", "kind", kindOf(doc), "elements", len(block.Elements))
	return block
}

// MarkupToLayout parses mrkdwn and renders it into a Section block.
func (s *Service) MarkupToLayout(text string) blockkit.Section {
	return s.DocumentToLayout(s.MarkupToDocument(text))
}

// LayoutToDocument converts a layout block into a Document.
func (s *Service) LayoutToDocument(block blockkit.Block) richtext.Block {
	if unknown, ok := block.(blockkit.Unknown); ok {
		s.blockkitLog.Debug("blockkit.unknown_block", "type", unknown.Type)
	}
	doc := s.converter.ToDocument(block)
	s.blockkitLog.Debug("blockkit.to_document", "block", blockKind(block), "kind", kindOf(doc))
	return doc
}

// LayoutsToDocument converts several blocks into one Document. Root results
// are flattened so the Document stays one level deep.
func (s *Service) LayoutsToDocument(blocks []blockkit.Block) richtext.Block {
	out := make([]richtext.Block, 0, len(blocks))
	for _, block := range blocks {
		doc := s.LayoutToDocument(block)
		if root, ok := doc.(richtext.Root); ok {
			out = append(out, root.Elements...)
			continue
		}
		if richtext.IsEmpty(doc) {
			continue
		}
		out = append(out, doc)
	}
	return richtext.Wrap(out)
}

// LayoutToText renders one block as standard markdown.
func (s *Service) LayoutToText(block blockkit.Block) string {
	if unknown, ok := block.(blockkit.Unknown); ok {
		s.markdownLog.Debug("markdown.unknown_block", "type", unknown.Type)
	}
	text := s.formatter.BlockToText(block)
	s.markdownLog.Debug("markdown.block_to_text", "block", blockKind(block), "output_bytes", len(text))
	return text
}

// LayoutsToText renders blocks separated by blank lines, normalized when
// the output config asks for it.
func (s *Service) LayoutsToText(blocks []blockkit.Block) string {
	text := s.formatter.BlocksToText(blocks)
	if s.cfg.Output.NormalizeBatch {
		text = markdown.Normalize(text)
	}
	s.markdownLog.Debug("markdown.blocks_to_text", "blocks", len(blocks), "output_bytes", len(text))
	return text
}

// DocumentToText renders a Document as standard markdown.
func (s *Service) DocumentToText(doc richtext.Block) string {
	text := s.formatter.DocumentToText(doc)
	s.markdownLog.Debug("markdown.document_to_text", "kind", kindOf(doc), "output_bytes", len(text))
	return text
}

// ImportMarkdown reads standard markdown, with optional front matter, into
// a Document.
func (s *Service) ImportMarkdown(source []byte) (richtext.Block, map[string]any, error) {
	doc, meta, err := s.importer.Import(source)
	if err != nil {
		s.markdownLog.Warn("markdown.import.failed", "error", err)
		return nil, nil, err
	}
	s.markdownLog.Debug("markdown.import", "input_bytes", len(source), "kind", kindOf(doc), "front_matter_keys", len(meta))
	return doc, meta, nil
}

// DecodeDocument decodes rich text JSON. In strict mode the payload shape is
// validated first.
func (s *Service) DecodeDocument(data []byte) (richtext.Block, error) {
	raw, err := decodeJSON(data)
	if err != nil {
		return nil, err
	}
	if s.cfg.Validation.Strict {
		if err := validation.ValidateDocument(raw); err != nil {
			return nil, err
		}
	}
	return richtext.FromValue(raw), nil
}

// DecodeLayout decodes one layout block. A JSON null yields nil.
func (s *Service) DecodeLayout(data []byte) (blockkit.Block, error) {
	raw, err := decodeJSON(data)
	if err != nil {
		return nil, err
	}
	if s.cfg.Validation.Strict && raw != nil {
		if err := validation.ValidateLayout(raw); err != nil {
			return nil, err
		}
	}
	return blockkit.FromValue(raw), nil
}

// DecodeLayouts decodes a block array, a {"blocks": [...]} message or a
// single block.
func (s *Service) DecodeLayouts(data []byte) ([]blockkit.Block, error) {
	raw, err := decodeJSON(data)
	if err != nil {
		return nil, err
	}
	if s.cfg.Validation.Strict && raw != nil {
		if err := validation.ValidateLayouts(raw); err != nil {
			return nil, err
		}
	}
	return blockkit.AllFromValue(raw)
}

// Convert reads input in one format and writes it in another. Wire formats
// are JSON; mrkdwn and markdown are text.
func (s *Service) Convert(from, to interfaces.Format, input []byte) ([]byte, error) {
	if from == interfaces.FormatLayout {
		blocks, err := s.DecodeLayouts(input)
		if err != nil {
			return nil, err
		}
		return s.fromLayouts(blocks, to)
	}

	doc, err := s.readDocument(from, input)
	if err != nil {
		return nil, err
	}
	return s.fromDocument(doc, to)
}

func (s *Service) readDocument(from interfaces.Format, input []byte) (richtext.Block, error) {
	switch from {
	case interfaces.FormatMrkdwn:
		return s.MarkupToDocument(string(input)), nil
	case interfaces.FormatDocument:
		return s.DecodeDocument(input)
	case interfaces.FormatMarkdown:
		doc, _, err := s.ImportMarkdown(input)
		return doc, err
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, from)
	}
}

func (s *Service) fromDocument(doc richtext.Block, to interfaces.Format) ([]byte, error) {
	switch to {
	case interfaces.FormatMrkdwn:
		return []byte(s.DocumentToMarkup(doc)), nil
	case interfaces.FormatDocument:
		return json.Marshal(doc)
	case interfaces.FormatLayout:
		return json.Marshal([]blockkit.Block{s.DocumentToLayout(doc)})
	case interfaces.FormatMarkdown:
		return []byte(s.DocumentToText(doc)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, to)
	}
}

func (s *Service) fromLayouts(blocks []blockkit.Block, to interfaces.Format) ([]byte, error) {
	switch to {
	case interfaces.FormatMrkdwn:
		parts := make([]string, 0, len(blocks))
		for _, block := range blocks {
			if text := s.DocumentToMarkup(s.LayoutToDocument(block)); text != "" {
				parts = append(parts, text)
			}
		}
		return []byte(strings.Join(parts, "\n")), nil
	case interfaces.FormatDocument:
		return json.Marshal(s.LayoutsToDocument(blocks))
	case interfaces.FormatLayout:
		return json.Marshal(blocks)
	case interfaces.FormatMarkdown:
		return []byte(s.LayoutsToText(blocks)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, to)
	}
}

func decodeJSON(data []byte) (any, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", richtext.ErrInvalidJSON, err)
	}
	return raw, nil
}

func kindOf(doc richtext.Block) string {
	if doc == nil {
		return ""
	}
	return string(doc.Kind())
}

func blockKind(block blockkit.Block) string {
	if block == nil {
		return ""
	}
	return string(block.Kind())
}
