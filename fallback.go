package cpucache

import (
	"context"
	"strings"

	"github.com/klauspost/cpuid/v2"
	"github.com/shirou/gopsutil/v3/cpu"
)

// FallbackInfo holds values used for fields the platform sources left
// undetected. Zero values are ignored.
type FallbackInfo struct {
	ModelName     string
	L1Instruction uint64
	L1Data        uint64
	L2            uint64
	L3            uint64
}

// FallbackSource supplies [FallbackInfo] when fallbacks are enabled with
// [Detector.WithFallback].
type FallbackSource interface {
	Fallback(ctx context.Context) (FallbackInfo, error)
}

// hardwareFallback asks the CPU directly through the CPUID instruction and
// falls back to gopsutil for the model name. CPUID reports nothing useful
// outside x86, in which case only the gopsutil model name remains.
type hardwareFallback struct{}

// Fallback implements FallbackSource.
func (hardwareFallback) Fallback(ctx context.Context) (FallbackInfo, error) {
	info := FallbackInfo{
		ModelName:     strings.TrimSpace(cpuid.CPU.BrandName),
		L1Instruction: cpuidSize(cpuid.CPU.Cache.L1I),
		L1Data:        cpuidSize(cpuid.CPU.Cache.L1D),
		L2:            cpuidSize(cpuid.CPU.Cache.L2),
		L3:            cpuidSize(cpuid.CPU.Cache.L3),
	}

	if info.ModelName == "" {
		stats, err := cpu.InfoWithContext(ctx)
		if err != nil {
			return info, err
		}
		if len(stats) > 0 {
			info.ModelName = strings.TrimSpace(stats[0].ModelName)
		}
	}

	return info, nil
}

// cpuidSize maps cpuid's -1 "unknown" marker to the 0 sentinel.
func cpuidSize(size int) uint64 {
	if size <= 0 {
		return 0
	}

	return uint64(size)
}

// applyFallback fills the model name and the first level's undetected sizes
// from fb. Detected values are never replaced, and no level is invented.
func applyFallback(id *identity, levels []PerformanceLevel, fb FallbackInfo) []string {
	var filled []string

	if id.ModelName == "" && fb.ModelName != "" {
		id.ModelName = fb.ModelName
		filled = append(filled, "model name")
	}

	if len(levels) == 0 {
		return filled
	}

	first := &levels[0]
	if first.L1 == (L1Cache{}) && (fb.L1Instruction > 0 || fb.L1Data > 0) {
		first.L1.Instruction = fb.L1Instruction
		first.L1.Data = fb.L1Data
		filled = append(filled, "L1")
	}
	if first.L2 == 0 && fb.L2 > 0 {
		first.L2 = fb.L2
		filled = append(filled, "L2")
	}
	if first.L3 == 0 && fb.L3 > 0 {
		first.L3 = fb.L3
		filled = append(filled, "L3")
	}

	return filled
}
