package convertcmd

import (
	"context"
	"io"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-slackfmt/internal/commands"
	"github.com/goliatone/go-slackfmt/internal/logging"
	"github.com/goliatone/go-slackfmt/pkg/interfaces"
)

const convertOperation = "convert"

var _ command.Commander[ConvertCommand] = (*ConvertHandler)(nil)

// ConvertHandler runs a ConvertCommand against a converter and writes the
// result to its output.
type ConvertHandler struct {
	inner *commands.Handler[ConvertCommand]
}

// NewConvertHandler binds service and out. A nil out discards results.
func NewConvertHandler(service interfaces.ConverterService, out io.Writer, logger interfaces.Logger, opts ...commands.HandlerOption[ConvertCommand]) *ConvertHandler {
	if logger == nil {
		logger = logging.NoOp()
	}
	if out == nil {
		out = io.Discard
	}

	exec := func(ctx context.Context, msg ConvertCommand) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		from, to := msg.Formats()
		result, err := service.Convert(from, to, msg.Input)
		if err != nil {
			return err
		}
		if _, err := out.Write(result); err != nil {
			return err
		}

		logging.WithFields(logging.WithConversion(logger.WithContext(ctx), convertOperation, from.String(), to.String()), map[string]any{
			"output_bytes": len(result),
		}).Debug("convert.command.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[ConvertCommand]{
		commands.WithLogger[ConvertCommand](logger),
		commands.WithOperation[ConvertCommand](convertOperation),
		commands.WithMessageFields(func(msg ConvertCommand) map[string]any {
			return map[string]any{
				"from":        msg.From,
				"to":          msg.To,
				"input_bytes": len(msg.Input),
			}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ConvertCommand](nil)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ConvertHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[ConvertCommand].
func (h *ConvertHandler) Execute(ctx context.Context, msg ConvertCommand) error {
	return h.inner.Execute(ctx, msg)
}
