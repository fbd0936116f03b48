package cpucache

import (
	"context"
	"fmt"
	"strings"
)

// maxPerfLevels bounds the tier loop against a garbage hw.nperflevels value.
const maxPerfLevels = 16

// appleSiliconStrategy reads per-cluster cache sizes from the
// hw.perflevel<N> sysctl tree.
type appleSiliconStrategy struct{}

func (appleSiliconStrategy) name() string { return "apple-silicon" }

func (appleSiliconStrategy) levels(ctx context.Context, p *probe) ([]PerformanceLevel, error) {
	count := p.sysctlUint(ctx, "hw.nperflevels")
	if count < 1 {
		count = 1
	}
	if count > maxPerfLevels {
		p.debug("clamping performance level count", "reported", count, "max", maxPerfLevels)
		count = maxPerfLevels
	}

	levels := make([]PerformanceLevel, 0, count)
	for i := range int(count) {
		level := PerformanceLevel{Name: perfLevelName(i)}
		level.L1.Instruction = p.sysctlUint(ctx, fmt.Sprintf("hw.perflevel%d.l1icachesize", i))
		level.L1.Data = p.sysctlUint(ctx, fmt.Sprintf("hw.perflevel%d.l1dcachesize", i))
		level.L2 = p.sysctlUint(ctx, fmt.Sprintf("hw.perflevel%d.l2cachesize", i))

		// L3 is shared by every cluster.
		if i == 0 {
			level.L3 = p.sysctlUint(ctx, "hw.l3cachesize")
		}

		levels = append(levels, level)
	}

	return levels, nil
}

// perfLevelName names tier 0 after the performance cores and every other
// tier after the efficiency cores.
func perfLevelName(i int) string {
	if i == 0 {
		return LevelPerformance
	}

	return fmt.Sprintf("Efficiency Cores (Level %d)", i)
}

// intelMacStrategy reads the flat hw.l*cachesize sysctl values.
type intelMacStrategy struct{}

func (intelMacStrategy) name() string { return "intel-mac" }

func (intelMacStrategy) levels(ctx context.Context, p *probe) ([]PerformanceLevel, error) {
	level := PerformanceLevel{Name: LevelDefault}

	if unified, err := p.sysctl.Sysctl(ctx, "hw.l1cachesize"); err == nil && strings.TrimSpace(unified) != "" {
		level.L1.Unified = p.uintOrZero("hw.l1cachesize", unified, nil)
	} else {
		p.debug("no unified L1 size, reading split caches", "error", err)
		level.L1.Instruction = p.sysctlUint(ctx, "hw.l1icachesize")
		level.L1.Data = p.sysctlUint(ctx, "hw.l1dcachesize")
	}

	level.L2 = p.sysctlUint(ctx, "hw.l2cachesize")
	level.L3 = p.sysctlUint(ctx, "hw.l3cachesize")

	return []PerformanceLevel{level}, nil
}
