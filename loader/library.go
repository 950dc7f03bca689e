// SPDX-License-Identifier: EPL-2.0

package loader

// Library is an opened shared library.
type Library interface {
	// Symbol returns the address of an exported function.
	Symbol(name string) (uintptr, error)
	Close() error
	Path() string
}

// Opener opens the shared library at path.
type Opener func(path string) (Library, error)
