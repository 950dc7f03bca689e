// SPDX-License-Identifier: EPL-2.0

// Package pin keeps memory that native code streams from at a fixed address.
//
// A native engine opening a stream from memory keeps a raw pointer into the
// caller's buffer for the whole playback. The buffer has to stay reachable
// and must not move until the owning resource is released:
//
//	buf := pin.New(data)
//	sound, res := engine.SystemCreateSound(sys, buf.Bytes(), mode)
//	// ...
//	engine.SoundRelease(sound)
//	buf.Release()
//
// Release is idempotent so it can sit behind a once-only dispose guard and
// in error paths at the same time.
package pin
