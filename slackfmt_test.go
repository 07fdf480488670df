package slackfmt_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	slackfmt "github.com/goliatone/go-slackfmt"
	convertcmd "github.com/goliatone/go-slackfmt/internal/commands/convert"
	"github.com/goliatone/go-slackfmt/internal/richtext"
)

func TestPublicEntryPoints(t *testing.T) {
	const input = "Hello *bold* and _italic_ text"

	doc := slackfmt.MarkupToDocument(input)
	if got := slackfmt.DocumentToMarkup(doc); got != input {
		t.Fatalf("DocumentToMarkup = %q", got)
	}

	layout := slackfmt.DocumentToLayout(doc)
	if diff := cmp.Diff(slackfmt.MarkupToLayout(input), layout); diff != "" {
		t.Fatalf("MarkupToLayout differs from composition (-want +got):\n%s", diff)
	}

	back := slackfmt.LayoutToDocument(layout)
	if diff := cmp.Diff(doc, back); diff != "" {
		t.Fatalf("layout round trip mismatch (-want +got):\n%s", diff)
	}

	if got := slackfmt.LayoutToText(layout); got != input {
		t.Fatalf("LayoutToText = %q", got)
	}
	if got := slackfmt.DocumentToText(doc); got != "Hello **bold** and *italic* text" {
		t.Fatalf("DocumentToText = %q", got)
	}
}

func TestPublicEmptyInputs(t *testing.T) {
	if diff := cmp.Diff(slackfmt.Document(richtext.EmptySection()), slackfmt.MarkupToDocument("")); diff != "" {
		t.Fatalf("MarkupToDocument mismatch:\n%s", diff)
	}
	if got := slackfmt.DocumentToMarkup(nil); got != "" {
		t.Fatalf("DocumentToMarkup(nil) = %q", got)
	}
	if got := slackfmt.LayoutsToText(nil); got != "" {
		t.Fatalf("LayoutsToText(nil) = %q", got)
	}
}

func TestPublicDecodeAndBatch(t *testing.T) {
	blocks, err := slackfmt.DecodeLayouts([]byte(`{"blocks":[
		{"type":"header","text":{"type":"plain_text","text":"Title"}},
		{"type":"section","text":{"type":"plain_text","text":"a*b"}},
		{"type":"divider"}
	]}`))
	if err != nil {
		t.Fatalf("DecodeLayouts: %v", err)
	}
	if got := slackfmt.LayoutsToText(blocks); got != "## Title\n\na\\*b\n\n---" {
		t.Fatalf("LayoutsToText = %q", got)
	}

	if _, err := slackfmt.DecodeDocument([]byte(`[`)); !errors.Is(err, slackfmt.ErrInvalidJSON) {
		t.Fatalf("expected ErrInvalidJSON, got %v", err)
	}
}

func TestPublicImportMarkdown(t *testing.T) {
	doc, meta, err := slackfmt.ImportMarkdown([]byte("---\ntitle: Notes\n---\n**bold** text\n"))
	if err != nil {
		t.Fatalf("ImportMarkdown: %v", err)
	}
	if meta["title"] != "Notes" {
		t.Fatalf("expected title front matter, got %#v", meta)
	}
	if got := slackfmt.DocumentToMarkup(doc); got != "*bold* text" {
		t.Fatalf("DocumentToMarkup = %q", got)
	}
}

func TestModuleStrictMode(t *testing.T) {
	cfg := slackfmt.DefaultConfig()
	cfg.Validation.Strict = true
	module, err := slackfmt.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = module.DecodeLayout([]byte(`{"type":"section","text":"plain"}`))
	if !errors.Is(err, slackfmt.ErrSchemaValidation) {
		t.Fatalf("expected ErrSchemaValidation, got %v", err)
	}
	var payloadErr *slackfmt.PayloadValidationError
	if !errors.As(err, &payloadErr) || len(payloadErr.Issues) == 0 {
		t.Fatalf("expected payload issues, got %#v", err)
	}
}

func TestModuleConsoleLogging(t *testing.T) {
	cfg := slackfmt.DefaultConfig()
	cfg.Logging.Provider = "console"
	cfg.Logging.Level = "debug"

	var logs bytes.Buffer
	module, err := slackfmt.New(cfg, slackfmt.WithLogWriter(&logs))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var out bytes.Buffer
	err = module.ConvertHandler(&out).Execute(context.Background(), convertcmd.ConvertCommand{
		From:  "mrkdwn",
		To:    "markdown",
		Input: []byte("*hi*"),
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out.String() != "**hi**" {
		t.Fatalf("unexpected output %q", out.String())
	}

	text := logs.String()
	for _, want := range []string{"mrkdwn.parse", "module=slackfmt.mrkdwn", "command.execute.success", "module=slackfmt.commands.convert"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in logs:\n%s", want, text)
		}
	}
}

func TestPublicConvertUnsupported(t *testing.T) {
	if _, err := slackfmt.Convert("html", slackfmt.FormatMrkdwn, nil); !errors.Is(err, slackfmt.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}
