// SPDX-License-Identifier: EPL-2.0

//go:build darwin || freebsd || linux

package loader

import (
	"fmt"

	"github.com/ebitengine/purego"
)

type dlLibrary struct {
	handle uintptr
	path   string
}

// DefaultOpener opens libraries with dlopen(RTLD_NOW|RTLD_GLOBAL). The
// studio library resolves its core symbols from the global namespace.
func DefaultOpener(path string) (Library, error) {
	h, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, err
	}

	return &dlLibrary{handle: h, path: path}, nil
}

func (l *dlLibrary) Symbol(name string) (uintptr, error) {
	addr, err := purego.Dlsym(l.handle, name)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrSymbolNotFound, name, err)
	}
	return addr, nil
}

func (l *dlLibrary) Close() error {
	if l.handle == 0 {
		return nil
	}

	err := purego.Dlclose(l.handle)
	l.handle = 0
	return err
}

func (l *dlLibrary) Path() string { return l.path }
