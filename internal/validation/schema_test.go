package validation

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func decode(t *testing.T, payload string) any {
	t.Helper()
	var value any
	if err := json.Unmarshal([]byte(payload), &value); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	return value
}

func TestValidateDocument(t *testing.T) {
	valid := []string{
		`{"type":"rich_text","elements":[{"type":"rich_text_section","elements":[{"type":"text","text":"hi","style":{"bold":true}}]}]}`,
		`{"type":"rich_text_list","style":"ordered","elements":[{"type":"rich_text_section","elements":[]}]}`,
		`{"type":"rich_text_quote","elements":[]}`,
		`{"type":"rich_text_section","elements":[{"type":"date","timestamp":1}]}`,
	}
	for _, payload := range valid {
		if err := ValidateDocument(decode(t, payload)); err != nil {
			t.Fatalf("expected %s to be valid, got %v", payload, err)
		}
	}

	invalid := []string{
		`{"type":"paragraph"}`,
		`{"elements":[]}`,
		`{"type":"rich_text_list","elements":[]}`,
		`{"type":"rich_text_list","style":"dotted","elements":[]}`,
		`{"type":"rich_text_section","elements":[{"text":"missing type"}]}`,
		`{"type":"rich_text_section","elements":[{"type":"text"}]}`,
		`{"type":"rich_text","elements":[{"type":"section"}]}`,
		`{"type":"rich_text_section","elements":"nope"}`,
		`[]`,
	}
	for _, payload := range invalid {
		err := ValidateDocument(decode(t, payload))
		if err == nil {
			t.Fatalf("expected %s to be rejected", payload)
		}
		if !errors.Is(err, ErrSchemaValidation) {
			t.Fatalf("expected ErrSchemaValidation, got %v", err)
		}
		if len(Issues(err)) == 0 {
			t.Fatalf("expected issues for %s", payload)
		}
	}
}

func TestValidateLayout(t *testing.T) {
	valid := []string{
		`{"type":"section","text":{"type":"mrkdwn","text":"*hi*"}}`,
		`{"type":"header","text":{"type":"plain_text","text":"Title"}}`,
		`{"type":"divider","block_id":"d1"}`,
		`{"type":"context","elements":[{"type":"mrkdwn","text":"a"}]}`,
		`{"type":"image","image_url":"https://x/i.png","alt_text":"pic"}`,
		`{"type":"actions","elements":[]}`,
		`{"type":"rich_text","elements":[{"type":"rich_text_section","elements":[]}]}`,
	}
	for _, payload := range valid {
		if err := ValidateLayout(decode(t, payload)); err != nil {
			t.Fatalf("expected %s to be valid, got %v", payload, err)
		}
	}

	invalid := []string{
		`{"type":"section"}`,
		`{"type":"section","text":"bare"}`,
		`{"type":"section","text":{"type":"html","text":"x"}}`,
		`{"type":"table"}`,
		`{"text":"no type"}`,
		`{"type":"context"}`,
		`{"type":"rich_text","elements":[{"type":"rich_text_list","elements":[]}]}`,
	}
	for _, payload := range invalid {
		if err := ValidateLayout(decode(t, payload)); !errors.Is(err, ErrSchemaValidation) {
			t.Fatalf("expected %s to be rejected, got %v", payload, err)
		}
	}
}

func TestValidateLayouts(t *testing.T) {
	for _, payload := range []string{
		`[{"type":"divider"},{"type":"header","text":{"type":"plain_text","text":"T"}}]`,
		`{"blocks":[{"type":"divider"}]}`,
		`{"type":"divider"}`,
	} {
		if err := ValidateLayouts(decode(t, payload)); err != nil {
			t.Fatalf("expected %s to be valid, got %v", payload, err)
		}
	}

	if err := ValidateLayouts(decode(t, `[{"type":"divider"},{"type":"section"}]`)); err == nil {
		t.Fatalf("expected invalid block inside batch to be rejected")
	}
}

func TestPayloadValidationError_Error(t *testing.T) {
	err := &PayloadValidationError{Issues: []ValidationIssue{
		{Location: "/elements/0", Message: "missing properties: 'type'"},
		{Location: "", Message: "bad"},
	}}
	got := err.Error()
	if !strings.Contains(got, "#/elements/0: missing properties") || !strings.Contains(got, "#: bad") {
		t.Fatalf("unexpected error text %q", got)
	}
}

func TestValidatePayload_CustomSchema(t *testing.T) {
	schema := map[string]any{
		"type":     "object",
		"required": []any{"name"},
	}
	if err := ValidatePayload(schema, map[string]any{"name": "x"}); err != nil {
		t.Fatalf("expected payload to be valid: %v", err)
	}
	if err := ValidatePayload(schema, map[string]any{}); !errors.Is(err, ErrSchemaValidation) {
		t.Fatalf("expected ErrSchemaValidation, got %v", err)
	}
	if err := ValidatePayload(nil, "anything"); err != nil {
		t.Fatalf("expected empty schema to accept payload, got %v", err)
	}
}
