// SPDX-License-Identifier: EPL-2.0

// Package handle links native user-data slots back to Go objects.
//
// Native engines can only carry a pointer-sized value as user data. Go values
// must not be stored in native memory, so each wrapper is registered and the
// returned Handle is what the native side keeps:
//
//	sounds := handle.NewRegistry[*Sound]()
//	h := sounds.Register(s)
//	engine.SoundSetUserData(native, h.UserData())
//
//	// later, from a native accessor or callback:
//	s, ok := sounds.ResolveUserData(p)
//	if !ok {
//	    // stale or foreign handle, the caller degrades gracefully
//	}
//
//	sounds.Release(h)
//
// Handles are never reused within a registry, so a lookup through a handle
// that has been released always fails instead of returning another object.
package handle
