package convertcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-slackfmt/pkg/interfaces"
)

const convertMessageType = "slackfmt.convert"

// ConvertCommand asks for Input to be read as From and written as To.
// Format names accept the aliases understood by interfaces.ParseFormat.
type ConvertCommand struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Input []byte `json:"input"`
}

// Type implements command.Message.
func (ConvertCommand) Type() string { return convertMessageType }

// Validate requires two distinct known formats and a non-nil Input. An empty
// Input is accepted; every conversion has a defined empty result.
func (cmd ConvertCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.From, validation.Required, validation.By(knownFormat)),
		validation.Field(&cmd.To, validation.Required, validation.By(knownFormat), validation.By(cmd.distinctFrom)),
		validation.Field(&cmd.Input, validation.NotNil),
	)
}

// Formats resolves From and To. Call after Validate.
func (cmd ConvertCommand) Formats() (interfaces.Format, interfaces.Format) {
	from, _ := interfaces.ParseFormat(cmd.From)
	to, _ := interfaces.ParseFormat(cmd.To)
	return from, to
}

func (cmd ConvertCommand) distinctFrom(any) error {
	from, to := cmd.Formats()
	if from != "" && from == to {
		return validation.NewError("slackfmt.convert.formats_equal", "must differ from the source format")
	}
	return nil
}

func knownFormat(value any) error {
	name, _ := value.(string)
	if strings.TrimSpace(name) == "" {
		return nil
	}
	if _, err := interfaces.ParseFormat(name); err != nil {
		return validation.NewError("slackfmt.convert.format_unknown", "unknown format")
	}
	return nil
}
