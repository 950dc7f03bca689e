// SPDX-License-Identifier: EPL-2.0

package foxaudio

import (
	"errors"
	"fmt"

	"github.com/ik5/foxaudio/native"
)

var (
	ErrNotInitialized     = errors.New("audio manager is not initialized")
	ErrAlreadyInitialized = errors.New("audio manager is already initialized")
	ErrStudioNotLoaded    = errors.New("studio system is not loaded")
	ErrDisposed           = errors.New("resource is disposed")
	ErrNoFileLoader       = errors.New("no file loader configured")
	ErrInvalidConfig      = errors.New("invalid configuration")
)

// ErrUnloaded is returned by Init after Unload. It matches
// ErrNotInitialized with errors.Is.
var ErrUnloaded error = unloadedError{}

type unloadedError struct{}

func (unloadedError) Error() string { return "audio manager is unloaded" }

func (unloadedError) Is(target error) bool { return target == ErrNotInitialized }

// nativeError wraps a failed native call with the operation name. OK maps
// to nil.
func nativeError(op string, res native.Result) error {
	if res == native.OK {
		return nil
	}

	return fmt.Errorf("%s: %w", op, res)
}
