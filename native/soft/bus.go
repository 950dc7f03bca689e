// SPDX-License-Identifier: EPL-2.0

package soft

import (
	"strings"

	"github.com/ik5/foxaudio/native"
)

type bus struct {
	studio native.StudioSystem
	bank   native.Bank // zero for the master bus
	path   string
	id     native.GUID

	volume float32
	paused bool
	mute   bool
	locked bool
	group  native.ChannelGroup
}

type vca struct {
	studio native.StudioSystem
	bank   native.Bank
	path   string
	id     native.GUID
	volume float32
}

// routedThrough reports whether a bus path feeds into parent.
func routedThrough(path, parent string) bool {
	if strings.EqualFold(path, parent) || parent == masterBusPath {
		return true
	}

	return len(path) > len(parent) &&
		strings.EqualFold(path[:len(parent)], parent) &&
		path[len(parent)] == '/'
}

// findBus looks a bus up by path. Caller holds mu.
func (e *Engine) findBus(s native.StudioSystem, path string) (native.Bus, bool) {
	for h, b := range e.buses {
		if b.studio == s && strings.EqualFold(b.path, path) {
			return h, true
		}
	}

	return 0, false
}

// busPaused reports whether path or any bus it routes through is paused.
// Caller holds mu.
func (e *Engine) busPaused(s native.StudioSystem, path string) bool {
	for _, b := range e.buses {
		if b.studio == s && b.paused && routedThrough(path, b.path) {
			return true
		}
	}

	return false
}

// busGain is the product of the volumes along the routing of path, zero
// when any of them is muted. Caller holds mu.
func (e *Engine) busGain(s native.StudioSystem, path string) float32 {
	gain := float32(1)
	for _, b := range e.buses {
		if b.studio != s || !routedThrough(path, b.path) {
			continue
		}
		if b.mute {
			return 0
		}
		gain *= b.volume
	}

	return gain
}

func (e *Engine) withBus(h native.Bus, fn func(*bus) native.Result) native.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	b, ok := e.buses[h]
	if !ok {
		return native.ErrInvalidHandle
	}

	return fn(b)
}

// BusSetVolume also applies to the locked channel group of the bus, if any.
func (e *Engine) BusSetVolume(h native.Bus, volume float32) native.Result {
	return e.withBus(h, func(b *bus) native.Result {
		if !validFloat(volume) {
			return native.ErrInvalidFloat
		}
		if volume < 0 {
			return native.ErrInvalidParam
		}
		b.volume = volume
		if grp, ok := e.groups[b.group]; ok {
			grp.volume = volume
		}
		return native.OK
	})
}

func (e *Engine) BusVolume(h native.Bus) (volume, final float32, res native.Result) {
	res = e.withBus(h, func(b *bus) native.Result {
		volume = b.volume
		final = e.busGain(b.studio, b.path)
		return native.OK
	})

	return volume, final, res
}

func (e *Engine) BusSetPaused(h native.Bus, paused bool) native.Result {
	return e.withBus(h, func(b *bus) native.Result {
		b.paused = paused
		if grp, ok := e.groups[b.group]; ok {
			grp.paused = paused
		}
		return native.OK
	})
}

func (e *Engine) BusPaused(h native.Bus) (bool, native.Result) {
	var paused bool
	res := e.withBus(h, func(b *bus) native.Result {
		paused = b.paused
		return native.OK
	})

	return paused, res
}

func (e *Engine) BusSetMute(h native.Bus, mute bool) native.Result {
	return e.withBus(h, func(b *bus) native.Result {
		b.mute = mute
		if grp, ok := e.groups[b.group]; ok {
			grp.mute = mute
		}
		return native.OK
	})
}

func (e *Engine) BusMute(h native.Bus) (bool, native.Result) {
	var mute bool
	res := e.withBus(h, func(b *bus) native.Result {
		mute = b.mute
		return native.OK
	})

	return mute, res
}

// BusStopAllEvents stops every instance routed through the bus.
func (e *Engine) BusStopAllEvents(h native.Bus, mode native.StopMode) native.Result {
	return e.withBus(h, func(b *bus) native.Result {
		if mode != native.StopAllowFadeout && mode != native.StopImmediate {
			return native.ErrInvalidParam
		}
		for _, in := range e.insts {
			d := e.events[in.desc]
			if d.studio == b.studio && routedThrough(d.bus, b.path) {
				in.stop(mode)
			}
		}
		return native.OK
	})
}

// BusLockChannelGroup keeps a channel group for the bus alive, creating
// it on first use.
func (e *Engine) BusLockChannelGroup(h native.Bus) native.Result {
	return e.withBus(h, func(b *bus) native.Result {
		if b.group == 0 {
			core := e.studios[b.studio].core
			b.group = e.newGroup(core, b.path, false)
			grp := e.groups[b.group]
			grp.volume = b.volume
			grp.paused = b.paused
			grp.mute = b.mute
		}
		b.locked = true
		return native.OK
	})
}

// BusUnlockChannelGroup releases the channel group of a non-master bus.
func (e *Engine) BusUnlockChannelGroup(h native.Bus) native.Result {
	return e.withBus(h, func(b *bus) native.Result {
		if !b.locked {
			return native.ErrNotLocked
		}
		b.locked = false
		if b.bank == 0 {
			return native.OK
		}
		if grp, ok := e.groups[b.group]; ok {
			e.releaseGroup(b.group, grp)
		}
		b.group = 0
		return native.OK
	})
}

func (e *Engine) BusChannelGroup(h native.Bus) (native.ChannelGroup, native.Result) {
	var g native.ChannelGroup
	res := e.withBus(h, func(b *bus) native.Result {
		if b.group == 0 {
			return native.ErrStudioNotLoaded
		}
		g = b.group
		return native.OK
	})

	return g, res
}

func (e *Engine) BusPath(h native.Bus) (string, native.Result) {
	var path string
	res := e.withBus(h, func(b *bus) native.Result {
		path = b.path
		return native.OK
	})

	return path, res
}

func (e *Engine) BusID(h native.Bus) (native.GUID, native.Result) {
	var id native.GUID
	res := e.withBus(h, func(b *bus) native.Result {
		id = b.id
		return native.OK
	})

	return id, res
}

func (e *Engine) withVCA(h native.VCA, fn func(*vca) native.Result) native.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	v, ok := e.vcas[h]
	if !ok {
		return native.ErrInvalidHandle
	}

	return fn(v)
}

func (e *Engine) VCASetVolume(h native.VCA, volume float32) native.Result {
	return e.withVCA(h, func(v *vca) native.Result {
		if !validFloat(volume) {
			return native.ErrInvalidFloat
		}
		if volume < 0 {
			return native.ErrInvalidParam
		}
		v.volume = volume
		return native.OK
	})
}

func (e *Engine) VCAVolume(h native.VCA) (volume, final float32, res native.Result) {
	res = e.withVCA(h, func(v *vca) native.Result {
		volume = v.volume
		final = v.volume
		return native.OK
	})

	return volume, final, res
}

func (e *Engine) VCAPath(h native.VCA) (string, native.Result) {
	var path string
	res := e.withVCA(h, func(v *vca) native.Result {
		path = v.path
		return native.OK
	})

	return path, res
}

func (e *Engine) VCAID(h native.VCA) (native.GUID, native.Result) {
	var id native.GUID
	res := e.withVCA(h, func(v *vca) native.Result {
		id = v.id
		return native.OK
	})

	return id, res
}
