// SPDX-License-Identifier: EPL-2.0

// Package native describes the binary interface of the audio engine that
// foxaudio wraps.
//
// The engine is handle based: every object (system, sound, channel, bank,
// event instance, ...) is an opaque pointer-sized value and every call
// returns a Result status code. The Engine interface mirrors the C API one
// call per method so that implementations stay mechanical:
//
//   - native/fmodlib binds the proprietary FMOD 2.02 shared libraries
//   - native/soft is a pure Go bookkeeping engine used for tests and demos
//
// # Results
//
// Result implements error. Callers convert with Err, which returns nil for
// OK, and can recover the code later with errors.As:
//
//	if err := engine.SystemUpdate(sys).Err(); err != nil {
//	    var res native.Result
//	    if errors.As(err, &res) && res == native.ErrInvalidHandle {
//	        // ...
//	    }
//	}
//
// # User data
//
// Sounds, channel groups, banks, event descriptions and event instances carry
// one pointer-sized user-data slot. foxaudio stores a handle.Handle there and
// never a Go pointer.
//
// # GUIDs
//
// Studio objects are identified by path ("event:/UI/Cancel") or GUID. GUID
// converts to and from github.com/google/uuid values.
package native
