// SPDX-License-Identifier: EPL-2.0

// Package fmodlib binds the FMOD 2.02 shared libraries at runtime.
//
// Libraries are located and opened by a loader.Resolver; every function is
// then resolved by name and bound with purego, so no cgo toolchain is
// needed. Engine implements native.Engine:
//
//	r := &loader.Resolver{Dir: "lib"}
//	e, err := fmodlib.Open(r, loader.ModeCoreAndStudio)
//	if err != nil {
//		return err
//	}
//	defer e.Close()
//
//	m := foxaudio.New(e)
//
// Opened in loader.ModeCore, every Studio method returns
// native.ErrStudioUninitialized without calling into the library.
//
// Sounds created with native.ModeOpenMemoryPoint and banks loaded with
// native.LoadMemoryPoint keep reading the caller's buffer; the caller must
// keep it alive and pinned (see package pin).
package fmodlib
