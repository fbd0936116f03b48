package cpucache

import (
	"context"
	"fmt"
	"runtime"
)

// Architecture labels reported in [ProcessorInfo.Architecture].
const (
	ArchX86          = "x86"
	ArchARM          = "ARM"
	ArchAppleSilicon = "Apple Silicon"
)

// Platform identifies the host by its operating system and instruction-set
// architecture, using the values of runtime.GOOS and runtime.GOARCH.
type Platform struct {
	OS   string
	Arch string
}

// CurrentPlatform returns the platform the binary is running on.
func CurrentPlatform() Platform {
	return Platform{OS: runtime.GOOS, Arch: runtime.GOARCH}
}

func (p Platform) isDarwin() bool {
	return p.OS == "darwin" || p.OS == "macos"
}

// architectureLabel maps a raw architecture name onto its report label.
// ARM names need refinement by the caller and are reported with arm=true.
func architectureLabel(raw string) (label string, arm bool) {
	switch raw {
	case "x86", "x86_64", "386", "amd64":
		return ArchX86, false
	case "aarch64", "arm", "arm64":
		return ArchARM, true
	default:
		return "Unknown: " + raw, false
	}
}

// strategy collects the performance levels of one kind of host.
type strategy interface {
	name() string
	levels(ctx context.Context, p *probe) ([]PerformanceLevel, error)
}

// selectStrategy picks the cache detection strategy for platform. Macs are
// split on the architecture label produced by identity detection.
func selectStrategy(platform Platform, architecture string) strategy {
	switch {
	case platform.isDarwin() && architecture == ArchAppleSilicon:
		return appleSiliconStrategy{}
	case platform.isDarwin():
		return intelMacStrategy{}
	case platform.OS == "linux":
		return linuxStrategy{}
	case platform.OS == "windows":
		return windowsStrategy{}
	default:
		return unsupportedStrategy{os: platform.OS}
	}
}

// unsupportedStrategy reports no levels for operating systems without a probe.
type unsupportedStrategy struct {
	os string
}

func (unsupportedStrategy) name() string { return "unsupported" }

func (s unsupportedStrategy) levels(context.Context, *probe) ([]PerformanceLevel, error) {
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, s.os)
}
