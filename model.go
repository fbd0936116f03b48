package cpucache

// Names of the performance levels produced by the detection strategies.
const (
	LevelDefault     = "Default"
	LevelPerformance = "Performance Cores"
)

// L1Cache holds the first-level cache sizes in bytes. Zero means the size was
// not detected. A nonzero Unified size takes precedence over the split sizes.
type L1Cache struct {
	Instruction uint64
	Data        uint64
	Unified     uint64
}

// PerformanceLevel is one tier of cores sharing a cache configuration, e.g.
// the performance or efficiency cluster of an Apple silicon chip. L3 is
// usually shared and reported only on the first level.
type PerformanceLevel struct {
	Name string
	L1   L1Cache
	L2   uint64
	L3   uint64
}

// ProcessorInfo is the normalized result of a detection run.
type ProcessorInfo struct {
	// Architecture is the normalized label, e.g. "x86", "Apple Silicon",
	// "ARM" or "Unknown: <raw>".
	Architecture string
	// RawArchitecture is the architecture string reported by the runtime.
	RawArchitecture string
	// ModelName is empty when it could not be detected.
	ModelName string
	// Levels are kept in tier order.
	Levels []PerformanceLevel
}

// Level returns the performance level with the given name.
func (p *ProcessorInfo) Level(name string) (PerformanceLevel, bool) {
	for _, level := range p.Levels {
		if level.Name == name {
			return level, true
		}
	}

	return PerformanceLevel{}, false
}

// SetLevel appends level, or replaces the existing level with the same name
// in place so names stay unique.
func (p *ProcessorInfo) SetLevel(level PerformanceLevel) {
	for i := range p.Levels {
		if p.Levels[i].Name == level.Name {
			p.Levels[i] = level
			return
		}
	}

	p.Levels = append(p.Levels, level)
}
