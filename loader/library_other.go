// SPDX-License-Identifier: EPL-2.0

//go:build !darwin && !freebsd && !linux && !windows

package loader

// DefaultOpener has no native loader on this platform.
func DefaultOpener(path string) (Library, error) {
	return nil, ErrPlatformNotSupported
}

