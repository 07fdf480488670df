package util

import "testing"

func TestFirstNonEmpty(t *testing.T) {
	if got := FirstNonEmpty("", "alt", "url"); got != "alt" {
		t.Fatalf("expected alt, got %q", got)
	}
	if got := FirstNonEmpty("", ""); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestCloneWith(t *testing.T) {
	raw := map[string]any{"text": "hi"}
	out := CloneWith(raw, "type", "actions")
	if out["type"] != "actions" || out["text"] != "hi" {
		t.Fatalf("unexpected clone %#v", out)
	}
	if _, ok := raw["type"]; ok {
		t.Fatal("expected source map to stay untouched")
	}
	if got := CloneWith(nil, "type", ""); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil map, got %#v", got)
	}
}
