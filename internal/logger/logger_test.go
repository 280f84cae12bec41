package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	for _, tc := range []struct {
		name  string
		json  bool
		debug bool
	}{
		{"console info", false, false},
		{"json debug", true, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			l, err := New(tc.json, tc.debug)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			if l == nil {
				t.Fatal("expected logger")
			}
		})
	}
}

func TestWithCompany(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	WithCompany(logger, "acme").Info("analyzing")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["company_id"]; got != "acme" {
		t.Fatalf("expected company_id acme, got %q", got)
	}
}

func TestWithCompany_NilLogger(t *testing.T) {
	l := WithCompany(nil, "acme")
	if l == nil {
		t.Fatal("expected fallback logger when nil provided")
	}
	// Must not panic.
	l.Info("noop")
}
