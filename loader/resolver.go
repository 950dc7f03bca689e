// SPDX-License-Identifier: EPL-2.0

package loader

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
)

// Base names of the engine libraries.
const (
	CoreLibrary   = "fmod"
	StudioLibrary = "fmodstudio"
)

// Mode selects which libraries LoadAll opens.
type Mode int

const (
	ModeCore Mode = iota
	ModeCoreAndStudio
)

func (m Mode) String() string {
	switch m {
	case ModeCore:
		return "core"
	case ModeCoreAndStudio:
		return "core+studio"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Resolver locates and opens the engine libraries.
type Resolver struct {
	// Dir is prepended to every resolved file name. Empty leaves the
	// lookup to the system loader's search path.
	Dir string
	// Strategy defaults to Host().
	Strategy Strategy
	// Opener defaults to DefaultOpener.
	Opener Opener
	// Logging selects the logging ("L") builds.
	Logging bool
}

// Path returns the file the resolver would open for base.
func (r *Resolver) Path(base string) (string, error) {
	s := r.Strategy
	if s == nil {
		s = Host()
	}

	name, err := s.FileName(base, r.Logging)
	if err != nil {
		return "", err
	}
	if r.Dir == "" {
		return name, nil
	}

	return filepath.Join(r.Dir, name), nil
}

// Load opens a single library. Failures are not retried.
func (r *Resolver) Load(base string) (Library, error) {
	path, err := r.Path(base)
	if err != nil {
		return nil, err
	}

	open := r.Opener
	if open == nil {
		open = DefaultOpener
	}

	lib, err := open(path)
	if err != nil {
		Logger().Error("native library load failed", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("%w: %s: %w", ErrLibraryNotFound, path, err)
	}

	Logger().Info("native library loaded", zap.String("path", path))
	return lib, nil
}

// Libraries are the libraries opened by LoadAll. Studio is nil in
// ModeCore.
type Libraries struct {
	Core   Library
	Studio Library
}

// Close closes the studio library before the core library it depends on.
func (l *Libraries) Close() error {
	var firstErr error
	for _, lib := range []Library{l.Studio, l.Core} {
		if lib == nil {
			continue
		}
		if err := lib.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	l.Studio, l.Core = nil, nil

	return firstErr
}

// LoadAll opens the core library and, in ModeCoreAndStudio, the studio
// library. The core library is closed again if the studio library fails.
func (r *Resolver) LoadAll(mode Mode) (*Libraries, error) {
	core, err := r.Load(CoreLibrary)
	if err != nil {
		return nil, err
	}

	libs := &Libraries{Core: core}
	if mode != ModeCoreAndStudio {
		return libs, nil
	}

	studio, err := r.Load(StudioLibrary)
	if err != nil {
		_ = core.Close()
		return nil, err
	}
	libs.Studio = studio

	return libs, nil
}
