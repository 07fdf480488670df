// Package slackfmt converts between the platform's mrkdwn markup, its rich
// text Document tree, its layout blocks and standard markdown.
//
// The package level functions use DefaultConfig without logging. Build a
// Module with New to apply a custom Config.
package slackfmt

import (
	"fmt"
	"io"

	"github.com/goliatone/go-slackfmt/internal/blockkit"
	convertcmd "github.com/goliatone/go-slackfmt/internal/commands/convert"
	"github.com/goliatone/go-slackfmt/internal/convert"
	"github.com/goliatone/go-slackfmt/internal/logging"
	"github.com/goliatone/go-slackfmt/internal/logging/console"
	"github.com/goliatone/go-slackfmt/internal/logging/gologger"
	"github.com/goliatone/go-slackfmt/internal/richtext"
	"github.com/goliatone/go-slackfmt/internal/runtimeconfig"
	"github.com/goliatone/go-slackfmt/internal/validation"
	"github.com/goliatone/go-slackfmt/pkg/interfaces"
)

// Document is any rich text node that can stand at the root of a tree.
type Document = richtext.Block

// LayoutBlock is any layout block.
type LayoutBlock = blockkit.Block

// Section is the layout block produced from Documents.
type Section = blockkit.Section

// Format names a serialized format accepted by Convert.
type Format = interfaces.Format

const (
	FormatMrkdwn   = interfaces.FormatMrkdwn
	FormatDocument = interfaces.FormatDocument
	FormatLayout   = interfaces.FormatLayout
	FormatMarkdown = interfaces.FormatMarkdown
)

var (
	ErrInvalidJSON       = richtext.ErrInvalidJSON
	ErrSchemaValidation  = validation.ErrSchemaValidation
	ErrUnsupportedFormat = convert.ErrUnsupportedFormat
)

// PayloadValidationError carries the schema issues of a rejected payload.
type PayloadValidationError = validation.PayloadValidationError

var defaultService = convert.NewService(runtimeconfig.DefaultConfig(), nil)

// MarkupToDocument parses mrkdwn into a Document. Empty text yields the
// empty Section.
func MarkupToDocument(text string) Document { return defaultService.MarkupToDocument(text) }

// DocumentToLayout renders doc as mrkdwn inside a Section block.
func DocumentToLayout(doc Document) Section { return defaultService.DocumentToLayout(doc) }

// LayoutToDocument converts a layout block into a Document.
func LayoutToDocument(block LayoutBlock) Document { return defaultService.LayoutToDocument(block) }

// LayoutToText renders a layout block as standard markdown.
func LayoutToText(block LayoutBlock) string { return defaultService.LayoutToText(block) }

// LayoutsToText renders blocks as standard markdown separated by blank
// lines.
func LayoutsToText(blocks []LayoutBlock) string { return defaultService.LayoutsToText(blocks) }

// DocumentToMarkup renders doc as mrkdwn.
func DocumentToMarkup(doc Document) string { return defaultService.DocumentToMarkup(doc) }

// MarkupToLayout parses mrkdwn and renders it into a Section block.
func MarkupToLayout(text string) Section { return defaultService.MarkupToLayout(text) }

// DocumentToText renders doc as standard markdown.
func DocumentToText(doc Document) string { return defaultService.DocumentToText(doc) }

// ImportMarkdown reads standard markdown with optional front matter.
func ImportMarkdown(source []byte) (Document, map[string]any, error) {
	return defaultService.ImportMarkdown(source)
}

// DecodeDocument decodes rich text JSON.
func DecodeDocument(data []byte) (Document, error) { return defaultService.DecodeDocument(data) }

// DecodeLayout decodes one layout block.
func DecodeLayout(data []byte) (LayoutBlock, error) { return defaultService.DecodeLayout(data) }

// DecodeLayouts decodes a block array, a {"blocks": [...]} message or a
// single block.
func DecodeLayouts(data []byte) ([]LayoutBlock, error) { return defaultService.DecodeLayouts(data) }

// Convert reads input in one format and writes it in another.
func Convert(from, to Format, input []byte) ([]byte, error) {
	return defaultService.Convert(from, to, input)
}

// Module is a configured converter with its own logger provider.
type Module struct {
	*convert.Service
	provider interfaces.LoggerProvider
}

// Option customises Module construction.
type Option func(*moduleOptions)

type moduleOptions struct {
	provider  interfaces.LoggerProvider
	logWriter io.Writer
}

// WithLoggerProvider replaces the provider selected by Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(o *moduleOptions) {
		o.provider = provider
	}
}

// WithLogWriter redirects the console provider, which writes to stderr by
// default.
func WithLogWriter(w io.Writer) Option {
	return func(o *moduleOptions) {
		o.logWriter = w
	}
}

// New validates cfg and builds a Module.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var options moduleOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	provider := options.provider
	if provider == nil {
		var err error
		provider, err = loggerProvider(cfg.Logging, options.logWriter)
		if err != nil {
			return nil, err
		}
	}
	return &Module{
		Service:  convert.NewService(cfg, provider),
		provider: provider,
	}, nil
}

// Logger returns the named module logger.
func (m *Module) Logger(module string) interfaces.Logger {
	return logging.ModuleLogger(m.provider, module)
}

// ConvertHandler returns a command handler writing conversion results to out.
func (m *Module) ConvertHandler(out io.Writer) *convertcmd.ConvertHandler {
	return convertcmd.NewConvertHandler(m.Service, out, logging.CommandLogger(m.provider, "convert"))
}

func loggerProvider(cfg LoggingConfig, writer io.Writer) (interfaces.LoggerProvider, error) {
	switch runtimeconfig.NormalizeProvider(cfg.Provider) {
	case "":
		return nil, nil
	case "console":
		opts := console.Options{Writer: writer}
		if level, ok := console.ParseLevel(cfg.Level); ok {
			opts.MinLevel = &level
		}
		return console.NewProvider(opts), nil
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
		if err != nil {
			return nil, fmt.Errorf("build go-logger provider: %w", err)
		}
		return provider, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, cfg.Provider)
	}
}
