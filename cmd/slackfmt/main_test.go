package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	slackfmt "github.com/goliatone/go-slackfmt"
)

func TestRunConvertsStdin(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"--from", "mrkdwn", "--to", "markdown"}, strings.NewReader("*hi* _there_"), &stdout, &stderr)
	if err != nil {
		t.Fatalf("run: %v (stderr: %s)", err, stderr.String())
	}
	if got := stdout.String(); got != "**hi** *there*\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRunReadsFileAndIndents(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"--in", "testdata/notes.mrkdwn", "--to", "layout", "--indent"}, strings.NewReader(""), &stdout, &stderr)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "[\n  {\n    \"type\": \"section\",\n    \"text\": {\n      \"type\": \"mrkdwn\",\n      \"text\": \"Release *notes*\\n• first\\n• second\"\n    }\n  }\n]\n"
	if got := stdout.String(); got != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestRunRejectsUnknownFormat(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"--from", "html"}, strings.NewReader("x"), &stdout, &stderr)
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected no output, got %q", stdout.String())
	}
}

func TestRunStrictRejectsMalformedLayout(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"--from", "layout", "--to", "markdown", "--strict"}, strings.NewReader(`[{"type":"header"}]`), &stdout, &stderr)
	if !errors.Is(err, slackfmt.ErrSchemaValidation) {
		t.Fatalf("expected schema validation error, got %v", err)
	}
}

func TestRunLogsToStderr(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"--to", "document", "--log", "console", "--log-level", "debug"}, strings.NewReader("hi"), &stdout, &stderr)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := stdout.String(); got != "{\"type\":\"rich_text_section\",\"elements\":[{\"type\":\"text\",\"text\":\"hi\"}]}\n" {
		t.Fatalf("unexpected output %q", got)
	}
	if !strings.Contains(stderr.String(), "command.execute.success") {
		t.Fatalf("expected logs on stderr, got %q", stderr.String())
	}
}
