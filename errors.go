package cpucache

import (
	"errors"
	"fmt"
)

// Sentinel errors recorded in [DiagnosticInfo.Errors].
var (
	// ErrUnsupportedPlatform is recorded when no detection strategy exists
	// for the running operating system.
	ErrUnsupportedPlatform = errors.New("unsupported operating system")

	// ErrEmptyValue is recorded when a source answered with an empty value.
	ErrEmptyValue = errors.New("empty value returned")

	// ErrNotFound is recorded when a value is not found in command output
	// or system files.
	ErrNotFound = errors.New("value not found")

	// ErrNativeSysctlUnavailable is returned by the native sysctl reader on
	// platforms without sysctl(3).
	ErrNativeSysctlUnavailable = errors.New("native sysctl is only available on darwin")
)

// CommandError records a failed system command execution.
// Use [errors.As] to extract the command name from wrapped errors.
type CommandError struct {
	Command string // command name, e.g. "sysctl", "wmic"
	Err     error  // underlying error from exec
}

// Error returns a human-readable description of the command failure.
func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q failed: %v", e.Command, e.Err)
}

// Unwrap returns the underlying error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// ReadError records a failed file read.
type ReadError struct {
	Path string // file path, e.g. "/proc/cpuinfo"
	Err  error  // underlying error from the reader
}

// Error returns a human-readable description of the read failure.
func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ReadError) Unwrap() error {
	return e.Err
}

// ParseError records a value that was read but could not be interpreted.
// Use [errors.As] to extract the source from wrapped errors.
type ParseError struct {
	Source string // data source, e.g. "hw.l2cachesize", "wmic output"
	Value  string // raw text that failed to parse
	Err    error  // underlying parse error
}

// Error returns a human-readable description of the parse failure.
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s value %q: %v", e.Source, e.Value, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
