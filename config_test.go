package slackfmt_test

import (
	"errors"
	"testing"

	slackfmt "github.com/goliatone/go-slackfmt"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := slackfmt.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected default config to validate, got %v", err)
	}
	if !cfg.Output.NormalizeBatch {
		t.Fatal("expected batch normalization on by default")
	}
	if cfg.Extract.MaxDepth != 32 {
		t.Fatalf("expected default max depth 32, got %d", cfg.Extract.MaxDepth)
	}
}

func TestConfigValidateSentinels(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*slackfmt.Config)
		want   error
	}{
		{
			name:   "unknown provider",
			mutate: func(cfg *slackfmt.Config) { cfg.Logging.Provider = "syslog" },
			want:   slackfmt.ErrLoggingProviderUnknown,
		},
		{
			name: "invalid level",
			mutate: func(cfg *slackfmt.Config) {
				cfg.Logging.Provider = "console"
				cfg.Logging.Level = "loud"
			},
			want: slackfmt.ErrLoggingLevelInvalid,
		},
		{
			name: "invalid format",
			mutate: func(cfg *slackfmt.Config) {
				cfg.Logging.Provider = "gologger"
				cfg.Logging.Format = "xml"
			},
			want: slackfmt.ErrLoggingFormatInvalid,
		},
		{
			name:   "zero depth",
			mutate: func(cfg *slackfmt.Config) { cfg.Extract.MaxDepth = 0 },
			want:   slackfmt.ErrExtractDepthInvalid,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := slackfmt.DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if _, err := slackfmt.New(cfg); !errors.Is(err, tc.want) {
				t.Fatalf("expected New to reject config with %v, got %v", tc.want, err)
			}
		})
	}
}
