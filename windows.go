package cpucache

import (
	"context"
	"strings"
)

// wmic reports cache sizes in KiB.
var wmicCacheFields = []string{"L1CacheSize=", "L2CacheSize=", "L3CacheSize="}

// windowsStrategy queries Win32_Processor through wmic.
type windowsStrategy struct{}

func (windowsStrategy) name() string { return "windows" }

func (windowsStrategy) levels(ctx context.Context, p *probe) ([]PerformanceLevel, error) {
	level := PerformanceLevel{Name: LevelDefault}

	output, err := p.run(ctx, "wmic", "cpu", "get", "L1CacheSize,L2CacheSize,L3CacheSize", "/value")
	if err != nil {
		return []PerformanceLevel{level}, nil
	}

	sizes := make([]uint64, len(wmicCacheFields))
	for i, prefix := range wmicCacheFields {
		value, err := parseWmicValue(output, prefix)
		sizes[i] = p.scaledOrZero("wmic "+strings.TrimSuffix(prefix, "="), value, err, kib)
	}

	// wmic does not split L1 into instruction and data caches.
	level.L1.Unified = sizes[0]
	level.L2 = sizes[1]
	level.L3 = sizes[2]

	return []PerformanceLevel{level}, nil
}

// windowsModelName reads the processor name through wmic, with PowerShell fallback.
func windowsModelName(ctx context.Context, p *probe) string {
	output, err := p.run(ctx, "wmic", "cpu", "get", "name", "/value")
	if err == nil {
		value, parseErr := parseWmicValue(output, "Name=")

		return p.textOrEmpty("wmic Name", value, parseErr)
	}

	// wmic is deprecated on recent Windows releases.
	psOutput, psErr := p.run(ctx, "powershell", "-NoProfile", "-Command",
		"Get-CimInstance -ClassName Win32_Processor | Select-Object -First 1 -ExpandProperty Name")
	if psErr != nil {
		return ""
	}

	return p.textOrEmpty("powershell Win32_Processor.Name", psOutput, nil)
}

// parseWmicValue extracts the value of the first line starting with prefix
// from `wmic ... /value` output.
func parseWmicValue(output, prefix string) (string, error) {
	for line := range strings.Lines(output) {
		line = strings.TrimSpace(line)
		if value, ok := strings.CutPrefix(line, prefix); ok {
			return strings.TrimSpace(value), nil
		}
	}

	return "", ErrNotFound
}
