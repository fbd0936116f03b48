//go:build darwin

package cpucache

import "golang.org/x/sys/unix"

// nativeSysctl reads a sysctl value directly from the kernel.
func nativeSysctl(name string) (string, error) {
	raw, err := unix.SysctlRaw(name)
	if err != nil {
		return "", err
	}

	return decodeSysctl(raw), nil
}
