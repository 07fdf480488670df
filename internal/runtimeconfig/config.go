package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var ErrLoggingProviderUnknown = errors.New("slackfmt config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("slackfmt config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("slackfmt config: logging format is invalid")

// ErrExtractDepthInvalid guards the recursion cap used for fallback text extraction.
var ErrExtractDepthInvalid = errors.New("slackfmt config: extract max depth must be positive")

// Config aggregates the knobs of the conversion module.
type Config struct {
	Logging    LoggingConfig
	Output     OutputConfig
	Validation ValidationConfig
	Extract    ExtractConfig
	Markdown   MarkdownConfig
}

// LoggingConfig selects and tunes the logger provider. An empty provider
// disables logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// OutputConfig shapes converter output.
type OutputConfig struct {
	// NormalizeBatch collapses blank-line runs when several blocks are
	// rendered together.
	NormalizeBatch bool
	// BlockIDs stamps layout blocks produced from Documents with a
	// deterministic block_id derived from their text.
	BlockIDs bool
}

// ValidationConfig controls wire payload checks.
type ValidationConfig struct {
	// Strict validates payload shape before decoding.
	Strict bool
}

// ExtractConfig bounds fallback text extraction.
type ExtractConfig struct {
	MaxDepth int
}

// MarkdownConfig tunes the standard markdown importer.
type MarkdownConfig struct {
	// Extensions names goldmark extensions; empty enables strikethrough and
	// linkify.
	Extensions []string
}

// DefaultConfig returns the defaults used by the root package.
func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Provider: "",
			Level:    "info",
			Format:   "",
		},
		Output: OutputConfig{
			NormalizeBatch: true,
		},
		Extract: ExtractConfig{
			MaxDepth: 32,
		},
	}
}

// Validate performs consistency checks.
func (cfg Config) Validate() error {
	if cfg.Extract.MaxDepth <= 0 {
		return fmt.Errorf("%w: %d", ErrExtractDepthInvalid, cfg.Extract.MaxDepth)
	}

	provider := NormalizeProvider(cfg.Logging.Provider)
	if provider == "" {
		return nil
	}
	if err := validation.Validate(provider, validation.In("console", "gologger")); err != nil {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.ToLower(strings.TrimSpace(cfg.Logging.Level)); level != "" {
		if err := validation.Validate(level, validation.In("trace", "debug", "info", "warn", "warning", "error", "fatal")); err != nil {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
	}
	if provider == "gologger" {
		if format := strings.ToLower(strings.TrimSpace(cfg.Logging.Format)); format != "" {
			if err := validation.Validate(format, validation.In("json", "console", "pretty")); err != nil {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

// NormalizeProvider lowercases and trims a provider name.
func NormalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}
