// SPDX-License-Identifier: EPL-2.0

package soft

import "github.com/ik5/foxaudio/native"

type group struct {
	sys    native.System
	name   string
	master bool
	parent native.ChannelGroup

	volume   float32
	pitch    float32
	paused   bool
	mute     bool
	userData uintptr
}

// newGroup creates a group under the master group of sys. Caller holds mu.
func (e *Engine) newGroup(sys native.System, name string, master bool) native.ChannelGroup {
	g := &group{
		sys:    sys,
		name:   name,
		master: master,
		volume: 1,
		pitch:  1,
	}
	if !master {
		g.parent = e.systems[sys].master
	}

	h := native.ChannelGroup(e.alloc())
	e.groups[h] = g

	return h
}

func (e *Engine) SystemCreateChannelGroup(sys native.System, name string) (native.ChannelGroup, native.Result) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, res := e.initializedSystem(sys); res != native.OK {
		return 0, res
	}

	return e.newGroup(sys, name, false), native.OK
}

// within reports whether g is root or one of its descendants. Caller holds mu.
func (e *Engine) within(g, root native.ChannelGroup) bool {
	for g != 0 {
		if g == root {
			return true
		}
		grp, ok := e.groups[g]
		if !ok {
			return false
		}
		g = grp.parent
	}

	return false
}

func (e *Engine) groupPaused(g native.ChannelGroup) bool {
	for g != 0 {
		grp, ok := e.groups[g]
		if !ok {
			return false
		}
		if grp.paused {
			return true
		}
		g = grp.parent
	}

	return false
}

func (e *Engine) groupPitch(g native.ChannelGroup) float64 {
	pitch := 1.0
	for g != 0 {
		grp, ok := e.groups[g]
		if !ok {
			break
		}
		pitch *= float64(grp.pitch)
		g = grp.parent
	}

	return pitch
}

// ChannelGroupRelease moves the channels and child groups of g to the
// master group. The master group itself is owned by the system.
func (e *Engine) ChannelGroupRelease(g native.ChannelGroup) native.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	grp, ok := e.groups[g]
	if !ok {
		return native.ErrInvalidHandle
	}
	if grp.master {
		return native.ErrInvalidParam
	}

	e.releaseGroup(g, grp)
	return native.OK
}

// releaseGroup reparents the members of a non-master group. Caller holds
// mu.
func (e *Engine) releaseGroup(g native.ChannelGroup, grp *group) {
	master := e.systems[grp.sys].master
	for _, c := range e.channels {
		if c.group == g {
			c.group = master
		}
	}
	for _, child := range e.groups {
		if child.parent == g {
			child.parent = master
		}
	}
	delete(e.groups, g)
}

func (e *Engine) ChannelGroupStop(g native.ChannelGroup) native.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.groups[g]; !ok {
		return native.ErrInvalidHandle
	}

	for h, c := range e.channels {
		if e.within(c.group, g) {
			delete(e.channels, h)
		}
	}

	return native.OK
}

func (e *Engine) ChannelGroupIsPlaying(g native.ChannelGroup) (bool, native.Result) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.groups[g]; !ok {
		return false, native.ErrInvalidHandle
	}

	for _, c := range e.channels {
		if e.within(c.group, g) {
			return true, native.OK
		}
	}

	return false, native.OK
}

func (e *Engine) withGroup(g native.ChannelGroup, fn func(grp *group) native.Result) native.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	grp, ok := e.groups[g]
	if !ok {
		return native.ErrInvalidHandle
	}

	return fn(grp)
}

func (e *Engine) ChannelGroupSetVolume(g native.ChannelGroup, volume float32) native.Result {
	if !validFloat(volume) {
		return native.ErrInvalidFloat
	}

	return e.withGroup(g, func(grp *group) native.Result {
		grp.volume = volume
		return native.OK
	})
}

func (e *Engine) ChannelGroupVolume(g native.ChannelGroup) (float32, native.Result) {
	var v float32
	res := e.withGroup(g, func(grp *group) native.Result {
		v = grp.volume
		return native.OK
	})

	return v, res
}

func (e *Engine) ChannelGroupSetPitch(g native.ChannelGroup, pitch float32) native.Result {
	if !validFloat(pitch) {
		return native.ErrInvalidFloat
	}

	return e.withGroup(g, func(grp *group) native.Result {
		grp.pitch = pitch
		return native.OK
	})
}

func (e *Engine) ChannelGroupPitch(g native.ChannelGroup) (float32, native.Result) {
	var v float32
	res := e.withGroup(g, func(grp *group) native.Result {
		v = grp.pitch
		return native.OK
	})

	return v, res
}

func (e *Engine) ChannelGroupSetPaused(g native.ChannelGroup, paused bool) native.Result {
	return e.withGroup(g, func(grp *group) native.Result {
		grp.paused = paused
		return native.OK
	})
}

func (e *Engine) ChannelGroupPaused(g native.ChannelGroup) (bool, native.Result) {
	var v bool
	res := e.withGroup(g, func(grp *group) native.Result {
		v = grp.paused
		return native.OK
	})

	return v, res
}

func (e *Engine) ChannelGroupSetMute(g native.ChannelGroup, mute bool) native.Result {
	return e.withGroup(g, func(grp *group) native.Result {
		grp.mute = mute
		return native.OK
	})
}

func (e *Engine) ChannelGroupMute(g native.ChannelGroup) (bool, native.Result) {
	var v bool
	res := e.withGroup(g, func(grp *group) native.Result {
		v = grp.mute
		return native.OK
	})

	return v, res
}

func (e *Engine) ChannelGroupNumChannels(g native.ChannelGroup) (int, native.Result) {
	var n int
	res := e.withGroup(g, func(*group) native.Result {
		for _, c := range e.channels {
			if c.group == g {
				n++
			}
		}
		return native.OK
	})

	return n, res
}

// ChannelGroupAddGroup reparents child under parent. Cycles and moving the
// master group are rejected.
func (e *Engine) ChannelGroupAddGroup(parent, child native.ChannelGroup) native.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, ok := e.groups[parent]
	if !ok {
		return native.ErrInvalidHandle
	}
	c, ok := e.groups[child]
	if !ok {
		return native.ErrInvalidHandle
	}
	if c.master || p.sys != c.sys || e.within(parent, child) {
		return native.ErrInvalidParam
	}

	c.parent = parent
	return native.OK
}

func (e *Engine) ChannelGroupSetUserData(g native.ChannelGroup, data uintptr) native.Result {
	return e.withGroup(g, func(grp *group) native.Result {
		grp.userData = data
		return native.OK
	})
}

func (e *Engine) ChannelGroupUserData(g native.ChannelGroup) (uintptr, native.Result) {
	var v uintptr
	res := e.withGroup(g, func(grp *group) native.Result {
		v = grp.userData
		return native.OK
	})

	return v, res
}
