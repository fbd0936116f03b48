package cpucache

import (
	"fmt"
	"strings"
)

const cacheHeader = "Cache Information:"

// Render converts info into the ordered lines of the human-readable report.
func Render(info *ProcessorInfo) []string {
	lines := []string{
		fmt.Sprintf("Architecture: %s - %s", info.Architecture, info.RawArchitecture),
	}

	if info.ModelName != "" {
		lines = append(lines, "CPU Model: "+info.ModelName)
	}

	lines = append(lines, "", cacheHeader, strings.Repeat("=", len(cacheHeader)))

	for _, level := range info.Levels {
		lines = append(lines, renderLevel(level)...)
	}

	return lines
}

// String returns the rendered report joined by newlines.
func (p *ProcessorInfo) String() string {
	return strings.Join(Render(p), "\n")
}

func renderLevel(level PerformanceLevel) []string {
	lines := []string{"", level.Name, strings.Repeat("-", len(level.Name))}
	lines = append(lines, renderL1(level.L1)...)
	lines = append(lines, "L2 Cache: "+FormatSize(level.L2))

	if level.L3 > 0 {
		lines = append(lines, "L3 Cache: "+FormatSize(level.L3))
	}

	return lines
}

// renderL1 omits undetected split caches instead of printing "Not detected".
func renderL1(l1 L1Cache) []string {
	if l1.Unified > 0 {
		return []string{"L1 Cache (Unified): " + FormatSize(l1.Unified)}
	}

	var lines []string
	if l1.Instruction > 0 {
		lines = append(lines, "L1 Instruction Cache: "+FormatSize(l1.Instruction))
	}
	if l1.Data > 0 {
		lines = append(lines, "L1 Data Cache: "+FormatSize(l1.Data))
	}

	return lines
}
