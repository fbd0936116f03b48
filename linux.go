package cpucache

import (
	"context"
	"fmt"
	"strings"
)

const (
	linuxCacheDir = "/sys/devices/system/cpu/cpu0/cache"

	// linuxCacheIndices is how many index<N> directories are scanned.
	// Indices may be missing or non-contiguous.
	linuxCacheIndices = 10
)

// linuxStrategy scans the sysfs cache directories of cpu0.
type linuxStrategy struct{}

func (linuxStrategy) name() string { return "linux" }

func (linuxStrategy) levels(_ context.Context, p *probe) ([]PerformanceLevel, error) {
	level := PerformanceLevel{Name: LevelDefault}

	for i := range linuxCacheIndices {
		entry, ok := readCacheIndex(p, fmt.Sprintf("%s/index%d", linuxCacheDir, i))
		if !ok {
			continue
		}

		// Later indices overwrite earlier ones for the same level and type.
		switch entry.level {
		case 1:
			switch entry.kind {
			case "Data":
				level.L1.Data = entry.size
			case "Instruction":
				level.L1.Instruction = entry.size
			case "Unified":
				level.L1.Unified = entry.size
			default:
				p.debug("ignoring L1 cache of unknown type", "type", entry.kind)
			}
		case 2:
			level.L2 = entry.size
		case 3:
			level.L3 = entry.size
		default:
			p.debug("ignoring cache level", "level", entry.level)
		}
	}

	return []PerformanceLevel{level}, nil
}

type cacheIndex struct {
	level uint64
	kind  string
	size  uint64
}

// readCacheIndex reads the level, type and size attributes of one sysfs
// cache index. Any unreadable attribute skips the whole index.
func readCacheIndex(p *probe, dir string) (cacheIndex, bool) {
	var raw [3]string
	for i, attr := range []string{"level", "type", "size"} {
		value, err := p.files.ReadFile(dir + "/" + attr)
		if err != nil {
			p.debug("skipping cache index", "dir", dir, "attribute", attr, "error", err)

			return cacheIndex{}, false
		}
		raw[i] = value
	}

	return cacheIndex{
		level: p.uintOrZero(dir+"/level", raw[0], nil),
		kind:  strings.TrimSpace(raw[1]),
		size:  p.sizeOrZero(dir+"/size", raw[2], nil),
	}, true
}
