// SPDX-License-Identifier: EPL-2.0

// Package foxaudio binds a native audio engine (a core mixing system and
// an optional event driven studio system, modelled on the FMOD 2.02 C API)
// to Go objects with explicit lifetimes.
//
// # Engines
//
// A Manager drives any native.Engine. Two implementations ship with the
// module:
//   - native/fmodlib loads the proprietary libraries at runtime with purego,
//     using the platform file names chosen by the loader package
//   - native/soft is a pure Go bookkeeping engine for tests and demos; it
//     tracks play cursors and event states but produces no sound
//
// # Quick Start
//
//	m := foxaudio.New(soft.New())
//	if err := m.Init(foxaudio.DefaultConfig()); err != nil {
//		return err
//	}
//	defer m.Unload()
//
//	snd, err := m.LoadSound("sfx/click.wav")
//	if err != nil {
//		return err
//	}
//	defer snd.Dispose()
//
//	ch, _ := snd.Play(false)
//	for playing, _ := ch.IsPlaying(); playing; playing, _ = ch.IsPlaying() {
//		m.Update()
//		time.Sleep(time.Second / 60)
//	}
//
// # Lifetimes
//
// Every wrapper that owns native memory has a Dispose method. Dispose
// releases the native object once; later calls return nil and any other
// method of a disposed wrapper returns ErrDisposed. Streamed sounds keep
// their data pinned until they are disposed. Wrappers find their way back
// from native callbacks through handles stored as native user data (see
// package handle).
//
// Unload disposes whatever is still alive, logging each leaked kind, and
// leaves the Manager in a terminal state.
//
// # Studio
//
// In ModeCoreAndStudio the Manager also exposes banks, events, buses, VCAs
// and global parameters. Event callbacks run on the goroutine calling
// Update.
package foxaudio
