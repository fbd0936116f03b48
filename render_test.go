package cpucache

import (
	"slices"
	"strings"
	"testing"
)

func TestRenderFullReport(t *testing.T) {
	info := &ProcessorInfo{
		Architecture:    ArchAppleSilicon,
		RawArchitecture: "arm64",
		ModelName:       "Apple M1 Pro",
		Levels: []PerformanceLevel{
			{Name: LevelPerformance, L1: L1Cache{Instruction: 131072, Data: 65536}, L2: 12582912, L3: 8388608},
			{Name: "Efficiency Cores (Level 1)", L1: L1Cache{Instruction: 65536, Data: 32768}, L2: 4194304},
		},
	}

	want := []string{
		"Architecture: Apple Silicon - arm64",
		"CPU Model: Apple M1 Pro",
		"",
		"Cache Information:",
		"==================",
		"",
		"Performance Cores",
		"-----------------",
		"L1 Instruction Cache: 128.00 KB",
		"L1 Data Cache: 64.00 KB",
		"L2 Cache: 12.00 MB",
		"L3 Cache: 8.00 MB",
		"",
		"Efficiency Cores (Level 1)",
		"--------------------------",
		"L1 Instruction Cache: 64.00 KB",
		"L1 Data Cache: 32.00 KB",
		"L2 Cache: 4.00 MB",
	}

	if got := Render(info); !slices.Equal(got, want) {
		t.Errorf("Render() =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestRenderUnifiedTakesPrecedence(t *testing.T) {
	info := &ProcessorInfo{
		Architecture:    ArchX86,
		RawArchitecture: "amd64",
		Levels: []PerformanceLevel{
			{Name: LevelDefault, L1: L1Cache{Instruction: 32768, Data: 32768, Unified: 65536}, L2: 262144},
		},
	}

	got := Render(info)
	if !slices.Contains(got, "L1 Cache (Unified): 64.00 KB") {
		t.Errorf("Render() missing unified L1 line: %q", got)
	}
	for _, line := range got {
		if strings.HasPrefix(line, "L1 Instruction") || strings.HasPrefix(line, "L1 Data") {
			t.Errorf("Render() should not print split L1 when unified is set: %q", line)
		}
	}
}

func TestRenderOmitsUndetected(t *testing.T) {
	info := &ProcessorInfo{
		Architecture:    ArchX86,
		RawArchitecture: "amd64",
		Levels: []PerformanceLevel{
			{Name: LevelDefault, L1: L1Cache{Data: 49152}},
		},
	}

	got := Render(info)

	if got[1] != "" {
		t.Errorf("CPU Model line should be omitted when model name is empty, got %q", got[1])
	}
	if !slices.Contains(got, "L2 Cache: Not detected") {
		t.Errorf("Render() should always print L2, got %q", got)
	}
	for _, line := range got {
		switch {
		case strings.HasPrefix(line, "L1 Instruction"):
			t.Errorf("L1 Instruction line should be omitted when zero: %q", line)
		case strings.HasPrefix(line, "L3"):
			t.Errorf("L3 line should be omitted when zero: %q", line)
		}
	}
	if !slices.Contains(got, "L1 Data Cache: 48.00 KB") {
		t.Errorf("Render() missing L1 data line: %q", got)
	}
}

func TestRenderNoLevels(t *testing.T) {
	info := &ProcessorInfo{Architecture: "Unknown: riscv64", RawArchitecture: "riscv64"}

	want := []string{
		"Architecture: Unknown: riscv64 - riscv64",
		"",
		"Cache Information:",
		"==================",
	}

	if got := Render(info); !slices.Equal(got, want) {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestProcessorInfoString(t *testing.T) {
	info := &ProcessorInfo{Architecture: ArchX86, RawArchitecture: "amd64", ModelName: "Test CPU"}

	want := "Architecture: x86 - amd64\nCPU Model: Test CPU\n\nCache Information:\n=================="
	if got := info.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
