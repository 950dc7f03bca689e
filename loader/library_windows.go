// SPDX-License-Identifier: EPL-2.0

//go:build windows

package loader

import (
	"fmt"

	"golang.org/x/sys/windows"
)

type dllLibrary struct {
	dll  *windows.DLL
	path string
}

// DefaultOpener opens libraries with LoadLibrary.
func DefaultOpener(path string) (Library, error) {
	dll, err := windows.LoadDLL(path)
	if err != nil {
		return nil, err
	}

	return &dllLibrary{dll: dll, path: path}, nil
}

func (l *dllLibrary) Symbol(name string) (uintptr, error) {
	proc, err := l.dll.FindProc(name)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrSymbolNotFound, name, err)
	}
	return proc.Addr(), nil
}

func (l *dllLibrary) Close() error {
	if l.dll == nil {
		return nil
	}

	err := l.dll.Release()
	l.dll = nil
	return err
}

func (l *dllLibrary) Path() string { return l.path }
