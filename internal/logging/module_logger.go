package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-slackfmt/pkg/interfaces"
)

const (
	RootModule     = "slackfmt"
	MrkdwnModule   = "slackfmt.mrkdwn"
	BlockKitModule = "slackfmt.blockkit"
	MarkdownModule = "slackfmt.markdown"
	CommandsModule = "slackfmt.commands"
)

const (
	fieldOperation = "operation"
	fieldFrom      = "from"
	fieldTo        = "to"
)

// ModuleLogger returns the logger for module, annotated with a "module"
// field. A nil provider yields the no-op logger.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = RootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{"module": module})
}

// CommandLogger returns the logger for a named command under the commands
// namespace.
func CommandLogger(provider interfaces.LoggerProvider, command string) interfaces.Logger {
	command = strings.Trim(strings.TrimSpace(command), ".")
	if command == "" {
		return ModuleLogger(provider, CommandsModule)
	}
	return ModuleLogger(provider, CommandsModule+"."+command)
}

// WithConversion tags logger with the conversion being performed. Empty
// values are skipped.
func WithConversion(logger interfaces.Logger, operation, from, to string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(operation); trimmed != "" {
		fields[fieldOperation] = trimmed
	}
	if trimmed := strings.TrimSpace(from); trimmed != "" {
		fields[fieldFrom] = trimmed
	}
	if trimmed := strings.TrimSpace(to); trimmed != "" {
		fields[fieldTo] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that discards every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var (
	_ interfaces.Logger       = noopLogger{}
	_ interfaces.FieldsLogger = noopLogger{}
)

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
