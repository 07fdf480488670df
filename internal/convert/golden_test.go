package convert

import (
	"strings"
	"testing"

	"github.com/goliatone/go-slackfmt/internal/runtimeconfig"
	"github.com/goliatone/go-slackfmt/pkg/testsupport"
)

func TestGoldenMessage(t *testing.T) {
	svc := newService(t, func(cfg *runtimeconfig.Config) { cfg.Validation.Strict = true })

	blocks, err := svc.DecodeLayouts(testsupport.LoadFixture(t, "testdata/message.json"))
	if err != nil {
		t.Fatalf("DecodeLayouts: %v", err)
	}
	if len(blocks) != 6 {
		t.Fatalf("expected 6 blocks, got %d", len(blocks))
	}

	testsupport.AssertJSONGolden(t, "testdata/message.document.golden.json", svc.LayoutsToDocument(blocks))

	want := strings.TrimRight(string(testsupport.LoadFixture(t, "testdata/message.golden.md")), "\n")
	if got := svc.LayoutsToText(blocks); got != want {
		t.Fatalf("LayoutsToText mismatch:\n%s\nwant:\n%s", got, want)
	}
}
