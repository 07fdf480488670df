// Package markdown renders layout blocks and Documents to standard markdown
// and reads standard markdown back into Documents through goldmark.
package markdown
