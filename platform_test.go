package cpucache

import (
	"errors"
	"testing"
)

func TestSelectStrategy(t *testing.T) {
	tests := []struct {
		platform     Platform
		architecture string
		want         string
	}{
		{Platform{OS: "darwin", Arch: "arm64"}, ArchAppleSilicon, "apple-silicon"},
		{Platform{OS: "macos", Arch: "aarch64"}, ArchAppleSilicon, "apple-silicon"},
		{Platform{OS: "darwin", Arch: "amd64"}, ArchX86, "intel-mac"},
		{Platform{OS: "darwin", Arch: "arm64"}, ArchARM, "intel-mac"},
		{Platform{OS: "linux", Arch: "amd64"}, ArchX86, "linux"},
		{Platform{OS: "linux", Arch: "arm64"}, ArchARM, "linux"},
		{Platform{OS: "windows", Arch: "amd64"}, ArchX86, "windows"},
		{Platform{OS: "freebsd", Arch: "amd64"}, ArchX86, "unsupported"},
	}

	for _, tt := range tests {
		if got := selectStrategy(tt.platform, tt.architecture).name(); got != tt.want {
			t.Errorf("selectStrategy(%+v, %q) = %q, want %q", tt.platform, tt.architecture, got, tt.want)
		}
	}
}

func TestUnsupportedStrategy(t *testing.T) {
	levels, err := unsupportedStrategy{os: "plan9"}.levels(t.Context(), nil)

	if len(levels) != 0 {
		t.Errorf("levels = %+v, want none", levels)
	}
	if !errors.Is(err, ErrUnsupportedPlatform) {
		t.Errorf("err = %v, want ErrUnsupportedPlatform", err)
	}
}

func TestCurrentPlatform(t *testing.T) {
	p := CurrentPlatform()
	if p.OS == "" || p.Arch == "" {
		t.Errorf("CurrentPlatform() = %+v, want both fields set", p)
	}
}
