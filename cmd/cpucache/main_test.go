package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/slashdevops/cpucache"
)

func TestParseFlagsDefaults(t *testing.T) {
	var stderr bytes.Buffer

	opts, err := parseFlags(nil, &stderr)
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	if opts.native || opts.fallback || opts.debug || opts.diagnostics || opts.version || opts.versionLong {
		t.Errorf("unexpected defaults: %+v", opts)
	}
	if opts.timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", opts.timeout)
	}
}

func TestParseFlags(t *testing.T) {
	var stderr bytes.Buffer

	opts, err := parseFlags([]string{"-native", "-fallback", "-diagnostics", "-timeout", "2s"}, &stderr)
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	if !opts.native || !opts.fallback || !opts.diagnostics || opts.timeout != 2*time.Second {
		t.Errorf("opts = %+v", opts)
	}
}

func TestParseFlagsRejectsArguments(t *testing.T) {
	var stderr bytes.Buffer

	if _, err := parseFlags([]string{"extra"}, &stderr); err == nil {
		t.Error("expected error for positional arguments")
	}
	if !strings.Contains(stderr.String(), "Usage:") {
		t.Errorf("expected usage on stderr, got %q", stderr.String())
	}
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer

	if code := run(t.Context(), []string{"-version"}, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}
	if !strings.HasPrefix(stdout.String(), "cpucache version: ") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunVersionLong(t *testing.T) {
	var stdout, stderr bytes.Buffer

	if code := run(t.Context(), []string{"-version.long"}, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}
	if !strings.Contains(stdout.String(), "Go version: ") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer

	if code := run(t.Context(), []string{"-h"}, &stdout, &stderr); code != 0 {
		t.Errorf("run(-h) = %d, want 0", code)
	}
}

func TestRunBadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer

	if code := run(t.Context(), []string{"-no-such-flag"}, &stdout, &stderr); code != 2 {
		t.Errorf("run() = %d, want 2", code)
	}
}

// The real host is probed; whatever it is, a report must be printed.
func TestRunPrintsReport(t *testing.T) {
	var stdout, stderr bytes.Buffer

	if code := run(t.Context(), []string{"-diagnostics", "-timeout", "2s"}, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d, want 0; stderr: %s", code, stderr.String())
	}

	out := stdout.String()
	for _, want := range []string{"Architecture: ", "Cache Information:\n==================\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("stdout missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(stderr.String(), "Diagnostics:") {
		t.Errorf("stderr missing diagnostics:\n%s", stderr.String())
	}
}

func TestPrintDiagnostics(t *testing.T) {
	var buf bytes.Buffer

	printDiagnostics(&buf, &cpucache.DiagnosticInfo{
		Strategy:  "linux",
		Collected: []string{"/proc/cpuinfo"},
		Fallback:  []string{"L2"},
		Errors: map[string]error{
			"b-source": errors.New("second"),
			"a-source": errors.New("first"),
		},
	})

	out := buf.String()
	for _, want := range []string{"Strategy: linux", "Collected: 1 sources", "Fallback: [L2]"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "a-source") > strings.Index(out, "b-source") {
		t.Errorf("errors should be sorted by source:\n%s", out)
	}
}

func TestPrintDiagnosticsNil(t *testing.T) {
	var buf bytes.Buffer

	printDiagnostics(&buf, nil)

	if !strings.Contains(buf.String(), "no diagnostic information available") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestReportUnsupportedOS(t *testing.T) {
	var stdout, stderr bytes.Buffer

	detector := cpucache.New().WithPlatform(cpucache.Platform{OS: "plan9", Arch: "amd64"})

	if code := report(t.Context(), detector, options{}, &stdout, &stderr); code != 0 {
		t.Fatalf("report() = %d, want 0", code)
	}

	if got := stderr.String(); got != "Unsupported operating system: plan9\n" {
		t.Errorf("stderr = %q, want the unsupported OS notice", got)
	}

	want := "Architecture: x86 - amd64\n\nCache Information:\n==================\n"
	if got := stdout.String(); got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestReportCancelledContext(t *testing.T) {
	var stdout, stderr bytes.Buffer

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	if code := report(ctx, cpucache.New(), options{}, &stdout, &stderr); code != 1 {
		t.Fatalf("report() = %d, want 1", code)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", stdout.String())
	}
	if !strings.Contains(stderr.String(), "context canceled") {
		t.Errorf("stderr = %q, want the context error", stderr.String())
	}
}
