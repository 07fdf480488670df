// Package testsupport holds fixture and golden file helpers shared by the
// package tests.
package testsupport

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// LoadFixture reads a testdata file, failing tb when it cannot.
func LoadFixture(tb testing.TB, path string) []byte {
	tb.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		tb.Fatalf("read fixture %s: %v", path, err)
	}
	return data
}

// LoadGolden decodes the JSON golden file at path into v.
func LoadGolden(tb testing.TB, path string, v any) {
	tb.Helper()
	if err := json.Unmarshal(LoadFixture(tb, path), v); err != nil {
		tb.Fatalf("decode golden %s: %v", path, err)
	}
}

// AssertJSONGolden marshals got and compares it structurally with the JSON
// golden file at path. Key order and whitespace are ignored.
func AssertJSONGolden(tb testing.TB, path string, got any) {
	tb.Helper()

	data, err := json.Marshal(got)
	if err != nil {
		tb.Fatalf("marshal result: %v", err)
	}
	var actual any
	if err := json.Unmarshal(data, &actual); err != nil {
		tb.Fatalf("decode result: %v", err)
	}

	var want any
	LoadGolden(tb, path, &want)

	if diff := cmp.Diff(want, actual); diff != "" {
		tb.Fatalf("golden %s mismatch (-want +got):\n%s", path, diff)
	}
}
