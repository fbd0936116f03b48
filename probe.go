package cpucache

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
)

// probe bundles the collaborators a detection run reads from and records
// the outcome of every read in the run's diagnostics.
type probe struct {
	executor CommandExecutor
	files    FileReader
	sysctl   SysctlReader
	logger   *slog.Logger
	diag     *DiagnosticInfo
}

// run executes a command and records a failure under the full command line.
func (p *probe) run(ctx context.Context, name string, args ...string) (string, error) {
	output, err := p.executor.Execute(ctx, name, args...)
	if err != nil {
		p.fail(commandLine(name, args), err)

		return "", err
	}

	return output, nil
}

// sysctlUint reads a numeric sysctl value, 0 when missing or malformed.
func (p *probe) sysctlUint(ctx context.Context, name string) uint64 {
	value, err := p.sysctl.Sysctl(ctx, name)

	return p.uintOrZero(name, value, err)
}

// uintOrZero is the degrade-to-sentinel step shared by every numeric field:
// any read error or unparseable text becomes 0 and is recorded.
func (p *probe) uintOrZero(source, value string, err error) uint64 {
	if err != nil {
		p.fail(source, err)

		return 0
	}

	value = strings.TrimSpace(value)
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		p.fail(source, &ParseError{Source: source, Value: value, Err: err})

		return 0
	}

	p.collected(source, value)

	return n
}

// sizeOrZero is uintOrZero for suffixed sysfs sizes such as "32K".
// A well-formed zero size such as "0K" is collected as 0.
func (p *probe) sizeOrZero(source, value string, err error) uint64 {
	if err != nil {
		p.fail(source, err)

		return 0
	}

	value = strings.TrimSpace(value)
	size, err := parseSize(value)
	if err != nil {
		p.fail(source, &ParseError{Source: source, Value: value, Err: err})

		return 0
	}

	p.collected(source, value)

	return size
}

// scaledOrZero is uintOrZero for values counted in units, such as the KiB
// wmic reports. A product that overflows degrades to 0.
func (p *probe) scaledOrZero(source, value string, err error, unit uint64) uint64 {
	if err != nil {
		p.fail(source, err)

		return 0
	}

	value = strings.TrimSpace(value)
	n, err := strconv.ParseUint(value, 10, 64)
	if err == nil {
		n, err = scaleSize(n, unit)
	}
	if err != nil {
		p.fail(source, &ParseError{Source: source, Value: value, Err: err})

		return 0
	}

	p.collected(source, value)

	return n
}

// textOrEmpty is the string counterpart of uintOrZero.
func (p *probe) textOrEmpty(source, value string, err error) string {
	if err != nil {
		p.fail(source, err)

		return ""
	}

	value = strings.TrimSpace(value)
	if value == "" {
		p.fail(source, ErrEmptyValue)

		return ""
	}

	p.collected(source, value)

	return value
}

func (p *probe) fail(source string, err error) {
	p.diag.Errors[source] = err
	if p.logger != nil {
		p.logger.Warn("source unavailable", "source", source, "error", err)
	}
}

func (p *probe) collected(source, value string) {
	p.diag.Collected = append(p.diag.Collected, source)
	if p.logger != nil {
		p.logger.Debug("source collected", "source", source, "value", value)
	}
}

func (p *probe) debug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}

func commandLine(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
