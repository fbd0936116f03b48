//go:build !darwin

package cpucache

func nativeSysctl(string) (string, error) {
	return "", ErrNativeSysctlUnavailable
}
