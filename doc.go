// Package cpucache reports the cache hierarchy of the host CPU: L1
// instruction and data, L2 and L3 sizes, together with the architecture,
// the model name and, on Apple silicon, the performance-core tiers.
//
// # Overview
//
// A [Detector] runs in two phases. It first resolves the architecture label
// and model name, then picks a cache detection strategy for the platform at
// runtime:
//
//   - Apple silicon: per-tier hw.perflevel<N> sysctl values
//   - Intel Macs: hw.l1cachesize, hw.l2cachesize and friends
//   - Linux: /sys/devices/system/cpu/cpu0/cache/index<N> and /proc/cpuinfo
//   - Windows: wmic cpu get L1CacheSize,L2CacheSize,L3CacheSize
//
// The result is a [ProcessorInfo] whose [PerformanceLevel] entries are kept
// in tier order, so rendering is stable from run to run.
//
// # Quick Start
//
//	info, err := cpucache.New().Detect(ctx)
//	if err != nil {
//		return err
//	}
//	fmt.Println(info)
//
// # Missing Data
//
// Detection is best-effort. A command that fails, a file that cannot be read
// or a value that does not parse leaves the affected field at zero, which
// renders as "Not detected" or is omitted. Nothing short of a cancelled
// context makes [Detector.Detect] return an error. Call
// [Detector.Diagnostics] afterwards to see which sources were read and why
// the others failed.
//
// # Fallbacks
//
// [Detector.WithFallback] fills fields the platform sources left empty from
// the CPUID instruction (github.com/klauspost/cpuid/v2) and the model name
// from github.com/shirou/gopsutil. [Detector.WithNativeSysctl] reads sysctl
// values through sysctl(3) instead of spawning the sysctl command.
//
// # Testing
//
// Every external read goes through an injectable collaborator:
// [Detector.WithExecutor], [Detector.WithFileReader], [Detector.WithSysctl]
// and [Detector.WithPlatform]. Any strategy can therefore be exercised on any
// host:
//
//	info, _ := cpucache.New().
//		WithPlatform(cpucache.Platform{OS: "linux", Arch: "amd64"}).
//		WithFileReader(fakeSysfs).
//		Detect(ctx)
//
// # CLI Tool
//
// A ready-to-use command-line tool is provided in cmd/cpucache:
//
//	cpucache
//	cpucache -diagnostics
//	cpucache -fallback -debug
//	cpucache -version.long
package cpucache
