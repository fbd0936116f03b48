package cpucache

import (
	"context"
	"strings"
)

const (
	procCPUInfo       = "/proc/cpuinfo"
	sysctlBrandString = "machdep.cpu.brand_string"
)

// identity is the result of the first detection phase.
type identity struct {
	Architecture string
	ModelName    string
}

// detectIdentity resolves the architecture label and the CPU model name.
// Neither failing is an error: the model name is simply left empty.
func detectIdentity(ctx context.Context, p *probe, platform Platform) identity {
	label, arm := architectureLabel(platform.Arch)

	var id identity
	switch {
	case platform.isDarwin():
		raw, err := p.sysctl.Sysctl(ctx, sysctlBrandString)
		brand := p.textOrEmpty(sysctlBrandString, raw, err)
		if arm && strings.Contains(brand, "Apple") {
			label = ArchAppleSilicon
		}
		id.ModelName = brand
	case platform.OS == "linux":
		id.ModelName = linuxModelName(p)
	case platform.OS == "windows":
		id.ModelName = windowsModelName(ctx, p)
	}

	id.Architecture = label

	return id
}

// linuxModelName returns the first "model name" entry of /proc/cpuinfo.
func linuxModelName(p *probe) string {
	content, err := p.files.ReadFile(procCPUInfo)
	if err != nil {
		return p.textOrEmpty(procCPUInfo, "", err)
	}

	name, err := parseModelName(content)

	return p.textOrEmpty(procCPUInfo, name, err)
}

// parseModelName scans colon-delimited cpuinfo lines for the model name key.
func parseModelName(content string) (string, error) {
	for line := range strings.Lines(content) {
		key, value, ok := strings.Cut(line, ":")
		if !ok || strings.TrimSpace(key) != "model name" {
			continue
		}

		return strings.TrimSpace(value), nil
	}

	return "", ErrNotFound
}
