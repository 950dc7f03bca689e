// SPDX-License-Identifier: EPL-2.0

//go:build darwin || freebsd || linux || windows

package fmodlib

import (
	"sync"

	"github.com/ebitengine/purego"
	"github.com/ik5/foxaudio/native"
)

// purego callbacks are never freed, so every event instance shares one
// C entry point that dispatches on the instance handle.
var (
	trampolineOnce sync.Once
	trampolineAddr uintptr

	callbackMu sync.Mutex
	callbacks  = make(map[native.EventInstance]native.EventCallback)
)

func trampoline() uintptr {
	trampolineOnce.Do(func() {
		trampolineAddr = purego.NewCallback(dispatch)
	})

	return trampolineAddr
}

// dispatch is FMOD_STUDIO_EVENT_CALLBACK. It may run on an engine thread.
func dispatch(typ, inst, params uintptr) uintptr {
	h := native.EventInstance(inst)
	t := native.EventCallbackType(typ)

	callbackMu.Lock()
	cb := callbacks[h]
	if t == native.EventCallbackDestroyed {
		delete(callbacks, h)
	}
	callbackMu.Unlock()

	if cb == nil {
		return uintptr(native.OK)
	}

	return uintptr(cb(t, h, params))
}

func setCallback(h native.EventInstance, cb native.EventCallback) {
	callbackMu.Lock()
	defer callbackMu.Unlock()

	if cb == nil {
		delete(callbacks, h)
		return
	}
	callbacks[h] = cb
}
