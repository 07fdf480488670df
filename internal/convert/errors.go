package convert

import "errors"

// ErrUnsupportedFormat is returned by Convert for a format it cannot read
// or write.
var ErrUnsupportedFormat = errors.New("slackfmt: unsupported format")
