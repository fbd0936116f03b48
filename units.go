package cpucache

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	kib = 1024
	mib = kib * 1024
	gib = mib * 1024
)

var (
	errNoDigits     = errors.New("no leading digits")
	errSizeOverflow = errors.New("size overflows uint64")
)

// ParseSizeWithUnit converts a sysfs style size such as "32K", "8M" or "512"
// into bytes. The leading decimal digits are scaled by the trailing K, M or G
// suffix (powers of 1024). Input without leading digits, or whose scaled
// size does not fit in a uint64, yields 0.
func ParseSizeWithUnit(token string) uint64 {
	size, err := parseSize(token)
	if err != nil {
		return 0
	}

	return size
}

// parseSize is ParseSizeWithUnit reporting why a token yields no size.
func parseSize(token string) (uint64, error) {
	end := 0
	for end < len(token) && token[end] >= '0' && token[end] <= '9' {
		end++
	}

	if end == 0 {
		return 0, errNoDigits
	}

	base, err := strconv.ParseUint(token[:end], 10, 64)
	if err != nil {
		return 0, err
	}

	switch {
	case strings.HasSuffix(token, "K"):
		return scaleSize(base, kib)
	case strings.HasSuffix(token, "M"):
		return scaleSize(base, mib)
	case strings.HasSuffix(token, "G"):
		return scaleSize(base, gib)
	default:
		return base, nil
	}
}

// scaleSize multiplies n by unit, failing instead of wrapping around.
func scaleSize(n, unit uint64) (uint64, error) {
	if unit != 0 && n > math.MaxUint64/unit {
		return 0, errSizeOverflow
	}

	return n * unit, nil
}

// FormatSize renders a byte count with the largest fitting unit, e.g.
// "512 B", "32.00 KB" or "1.50 MB". Zero renders as "Not detected".
func FormatSize(size uint64) string {
	switch {
	case size == 0:
		return "Not detected"
	case size < kib:
		return fmt.Sprintf("%d B", size)
	case size < mib:
		return fmt.Sprintf("%.2f KB", float64(size)/kib)
	case size < gib:
		return fmt.Sprintf("%.2f MB", float64(size)/mib)
	default:
		return fmt.Sprintf("%.2f GB", float64(size)/gib)
	}
}
