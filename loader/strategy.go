// SPDX-License-Identifier: EPL-2.0

package loader

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
)

// Strategy turns a library base name ("fmod", "fmodstudio") into the file
// name handed to the opener.
type Strategy interface {
	FileName(base string, logging bool) (string, error)
}

// Desktop lays libraries out in per-architecture directories, x64 and x86,
// with the platform's prefix and extension.
type Desktop struct {
	GOOS string
	Bits int
}

// Host returns the Desktop strategy for the running binary.
func Host() Desktop {
	return Desktop{
		GOOS: runtime.GOOS,
		Bits: strconv.IntSize,
	}
}

func (d Desktop) FileName(base string, logging bool) (string, error) {
	name := decorate(base, logging)

	var file string
	switch d.GOOS {
	case "windows":
		file = name + ".dll"
	case "linux", "freebsd", "android":
		file = "lib" + name + ".so"
	case "darwin":
		file = "lib" + name + ".dylib"
	default:
		return "", fmt.Errorf("%w: %s", ErrPlatformNotSupported, d.GOOS)
	}

	return filepath.Join(d.arch(), file), nil
}

func (d Desktop) arch() string {
	if d.Bits == 32 {
		return "x86"
	}
	return "x64"
}

// Managed hands the bare name to a host that resolves libraries itself,
// as mobile runtimes do.
type Managed struct{}

func (Managed) FileName(base string, logging bool) (string, error) {
	return decorate(base, logging), nil
}

// The logging builds of the engine carry an "L" suffix.
func decorate(base string, logging bool) string {
	if logging {
		return base + "L"
	}
	return base
}
