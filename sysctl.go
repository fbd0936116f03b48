package cpucache

import (
	"context"
	"encoding/binary"
	"strconv"
	"strings"
)

// SysctlReader answers sysctl(8) style queries by name, e.g. "hw.l2cachesize".
type SysctlReader interface {
	Sysctl(ctx context.Context, name string) (string, error)
}

// commandSysctl shells out to `sysctl -n <name>`.
type commandSysctl struct {
	executor CommandExecutor
}

// Sysctl runs `sysctl -n name` and returns the trimmed output.
func (s commandSysctl) Sysctl(ctx context.Context, name string) (string, error) {
	output, err := s.executor.Execute(ctx, "sysctl", "-n", name)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(output), nil
}

// nativeSysctlReader reads values through the sysctl(3) syscall.
type nativeSysctlReader struct{}

// Sysctl reads name without spawning a process. It fails with
// ErrNativeSysctlUnavailable outside darwin.
func (nativeSysctlReader) Sysctl(_ context.Context, name string) (string, error) {
	return nativeSysctl(name)
}

// decodeSysctl converts a raw sysctl value into the text `sysctl -n` would print.
// Cache and level values are 32 or 64 bit little-endian integers; anything
// else, and any NUL-terminated printable value, is treated as a string.
func decodeSysctl(raw []byte) string {
	if isSysctlString(raw) {
		return strings.TrimSpace(strings.TrimRight(string(raw), "\x00"))
	}

	switch len(raw) {
	case 4:
		return strconv.FormatUint(uint64(binary.LittleEndian.Uint32(raw)), 10)
	case 8:
		return strconv.FormatUint(binary.LittleEndian.Uint64(raw), 10)
	}

	return strings.TrimSpace(strings.TrimRight(string(raw), "\x00"))
}

func isSysctlString(raw []byte) bool {
	if len(raw) < 2 || raw[len(raw)-1] != 0 {
		return false
	}

	for _, b := range raw[:len(raw)-1] {
		if b < 0x20 || b > 0x7e {
			return false
		}
	}

	return true
}
