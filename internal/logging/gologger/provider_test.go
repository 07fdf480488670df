package gologger

import (
	"context"
	"testing"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-slackfmt/internal/logging"
)

func TestNewProviderFormats(t *testing.T) {
	cases := []struct {
		format  string
		wantErr bool
	}{
		{format: ""},
		{format: "json"},
		{format: " Console "},
		{format: "pretty"},
		{format: "xml", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.format, func(t *testing.T) {
			provider, err := NewProvider(Config{Level: "debug", Format: tc.format, Focus: []string{" ", logging.MrkdwnModule}})
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected format %q to be rejected", tc.format)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewProvider(%q): %v", tc.format, err)
			}
			logging.ModuleLogger(provider, logging.MrkdwnModule).Debug("mrkdwn.parse", "input_bytes", 4)
		})
	}
}

func TestOptionsForLevel(t *testing.T) {
	withLevel, err := optionsFor(Config{Level: "WARNING"})
	if err != nil {
		t.Fatalf("optionsFor: %v", err)
	}
	withoutLevel, err := optionsFor(Config{Level: "chatty"})
	if err != nil {
		t.Fatalf("optionsFor: %v", err)
	}
	if len(withLevel) != len(withoutLevel)+1 {
		t.Fatalf("expected a level option only for known levels, got %d and %d", len(withLevel), len(withoutLevel))
	}
	if levels["warning"] != glog.Warn {
		t.Fatalf("expected warning to map to %q", glog.Warn)
	}
}

func TestNilProviderFallsBackToNoOp(t *testing.T) {
	var provider *Provider
	logger := provider.GetLogger(logging.BlockKitModule)
	if logger == nil {
		t.Fatal("expected a logger from a nil provider")
	}
	logger.Info("blockkit.to_document")
}

func TestAdapterForwardsEntries(t *testing.T) {
	rec := &recorder{}
	logger := wrap(rec)

	logger.Debug("markdown.import", "front_matter_keys", 2)
	logger.Warn("markdown.import.failed")

	fields := map[string]any{"operation": "convert"}
	logging.WithFields(logger, fields).Info("convert.command.completed")
	fields["operation"] = "mutated"

	ctx := context.Background()
	logger.WithContext(ctx).Error("command.execute.failed")

	want := []string{"debug markdown.import", "warn markdown.import.failed", "info convert.command.completed", "error command.execute.failed"}
	if len(rec.entries) != len(want) {
		t.Fatalf("expected %d entries, got %v", len(want), rec.entries)
	}
	for i := range want {
		if rec.entries[i] != want[i] {
			t.Fatalf("entry %d: expected %q, got %q", i, want[i], rec.entries[i])
		}
	}
	if rec.fields["operation"] != "convert" {
		t.Fatalf("expected fields to be copied before forwarding, got %v", rec.fields)
	}
	if rec.ctx != ctx {
		t.Fatal("expected context to be forwarded")
	}
}

type recorder struct {
	entries []string
	fields  map[string]any
	ctx     context.Context
}

var (
	_ glog.Logger       = (*recorder)(nil)
	_ glog.FieldsLogger = (*recorder)(nil)
)

func (r *recorder) log(level, msg string) { r.entries = append(r.entries, level+" "+msg) }

func (r *recorder) Trace(msg string, _ ...any) { r.log("trace", msg) }
func (r *recorder) Debug(msg string, _ ...any) { r.log("debug", msg) }
func (r *recorder) Info(msg string, _ ...any)  { r.log("info", msg) }
func (r *recorder) Warn(msg string, _ ...any)  { r.log("warn", msg) }
func (r *recorder) Error(msg string, _ ...any) { r.log("error", msg) }
func (r *recorder) Fatal(msg string, _ ...any) { r.log("fatal", msg) }

func (r *recorder) WithContext(ctx context.Context) glog.Logger {
	r.ctx = ctx
	return r
}

func (r *recorder) WithFields(fields map[string]any) glog.Logger {
	r.fields = fields
	return r
}
