package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/slashdevops/cpucache"
	"github.com/slashdevops/cpucache/internal/version"
)

const applicationName = "cpucache"

// options holds the parsed command line.
type options struct {
	native      bool
	fallback    bool
	debug       bool
	diagnostics bool
	timeout     time.Duration
	version     bool
	versionLong bool
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 2
	}

	if opts.version {
		fmt.Fprintln(stdout, version.Short(applicationName))
		return 0
	}

	if opts.versionLong {
		fmt.Fprintln(stdout, version.Long(applicationName))
		return 0
	}

	return report(ctx, newDetector(opts, stderr), opts, stdout, stderr)
}

// report runs detection and writes the report to stdout and any notices and
// diagnostics to stderr.
func report(ctx context.Context, detector *cpucache.Detector, opts options, stdout, stderr io.Writer) int {
	info, err := detector.Detect(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", applicationName, err)
		return 1
	}

	diag := detector.Diagnostics()
	for _, notice := range diag.Notices {
		fmt.Fprintln(stderr, notice)
	}

	fmt.Fprintln(stdout, info.String())

	if opts.diagnostics {
		printDiagnostics(stderr, diag)
	}

	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet(applicationName, flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.BoolVar(&opts.native, "native", false, "Read sysctl values through the sysctl(3) syscall instead of the sysctl command (macOS only)")
	fs.BoolVar(&opts.fallback, "fallback", false, "Fill undetected fields from the CPUID instruction and gopsutil")
	fs.BoolVar(&opts.debug, "debug", false, "Log every queried source to stderr")
	fs.BoolVar(&opts.diagnostics, "diagnostics", false, "Show which sources were read and which failed")
	fs.DurationVar(&opts.timeout, "timeout", 5*time.Second, "Timeout for each system command")
	fs.BoolVar(&opts.version, "version", false, "Show version information")
	fs.BoolVar(&opts.versionLong, "version.long", false, "Show detailed version information")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "cpucache - Report the CPU cache hierarchy of this machine\n\n")
		fmt.Fprintf(stderr, "Usage:\n  cpucache [flags]\n\nFlags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  cpucache                      Print the cache report\n")
		fmt.Fprintf(stderr, "  cpucache -diagnostics         Also list the sources that failed\n")
		fmt.Fprintf(stderr, "  cpucache -fallback            Fill gaps from CPUID\n")
		fmt.Fprintf(stderr, "  cpucache -native              Use sysctl(3) on macOS\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", fs.Args())
		fs.Usage()

		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return opts, nil
}

func newDetector(opts options, stderr io.Writer) *cpucache.Detector {
	detector := cpucache.New().WithTimeout(opts.timeout)

	if opts.native {
		detector.WithNativeSysctl()
	}

	if opts.fallback {
		detector.WithFallback()
	}

	if opts.debug {
		detector.WithLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	return detector
}

func printDiagnostics(w io.Writer, diag *cpucache.DiagnosticInfo) {
	if diag == nil {
		fmt.Fprintln(w, "no diagnostic information available")
		return
	}

	fmt.Fprintln(w, "\nDiagnostics:")
	fmt.Fprintf(w, "  Strategy: %s\n", diag.Strategy)
	fmt.Fprintf(w, "  Collected: %d sources\n", len(diag.Collected))

	if len(diag.Fallback) > 0 {
		fmt.Fprintf(w, "  Fallback: %v\n", diag.Fallback)
	}

	if len(diag.Errors) > 0 {
		sources := make([]string, 0, len(diag.Errors))
		for source := range diag.Errors {
			sources = append(sources, source)
		}
		sort.Strings(sources)

		fmt.Fprintln(w, "  Errors:")
		for _, source := range sources {
			fmt.Fprintf(w, "    %s: %v\n", source, diag.Errors[source])
		}
	}
}
