package slackfmt

import "github.com/goliatone/go-slackfmt/internal/runtimeconfig"

var (
	ErrLoggingProviderUnknown = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid    = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid   = runtimeconfig.ErrLoggingFormatInvalid
	ErrExtractDepthInvalid    = runtimeconfig.ErrExtractDepthInvalid
)

type (
	Config           = runtimeconfig.Config
	LoggingConfig    = runtimeconfig.LoggingConfig
	OutputConfig     = runtimeconfig.OutputConfig
	ValidationConfig = runtimeconfig.ValidationConfig
	ExtractConfig    = runtimeconfig.ExtractConfig
	MarkdownConfig   = runtimeconfig.MarkdownConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
