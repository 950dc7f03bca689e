// SPDX-License-Identifier: EPL-2.0

package foxaudio

import (
	"github.com/ik5/foxaudio/handle"
	"github.com/ik5/foxaudio/native"
)

// ChannelGroup mixes a set of channels and child groups. Groups created
// with CreateChannelGroup are owned by the caller; the master group and
// groups of studio buses belong to the engine and Dispose only forgets
// them.
type ChannelGroup struct {
	m     *Manager
	h     native.ChannelGroup
	id    handle.Handle
	owned bool

	// system marks the master group, which lives as long as the Manager
	system bool
	life   lifetime
}

// wrapGroup registers a wrapper for g and stores its handle as the group's
// user data. The wrapper is dropped again when the user data cannot be
// set, since nothing could resolve it.
func (m *Manager) wrapGroup(g native.ChannelGroup, owned bool) (*ChannelGroup, error) {
	cg := &ChannelGroup{m: m, h: g, owned: owned}
	cg.id = m.groups.Register(cg)

	res := m.engine.ChannelGroupSetUserData(g, cg.id.UserData())
	if err := m.check("set channel group user data", res); err != nil {
		m.groups.Release(cg.id)
		return nil, err
	}

	return cg, nil
}

// resolveGroup returns the wrapper of g, wrapping groups created by the
// engine on first sight.
func (m *Manager) resolveGroup(g native.ChannelGroup) (*ChannelGroup, error) {
	if ud, res := m.engine.ChannelGroupUserData(g); res == native.OK {
		if cg, ok := m.groups.ResolveUserData(ud); ok && cg.h == g {
			return cg, nil
		}
	}

	return m.wrapGroup(g, false)
}

// MasterChannelGroup returns the group every channel ends up in.
func (m *Manager) MasterChannelGroup() (*ChannelGroup, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateInitialized {
		return nil, m.stateError()
	}

	return m.master, nil
}

// CreateChannelGroup creates a group under the master group.
func (m *Manager) CreateChannelGroup(name string) (*ChannelGroup, error) {
	core, _, err := m.systems()
	if err != nil {
		return nil, err
	}

	g, res := m.engine.SystemCreateChannelGroup(core, name)
	if err := m.check("create channel group", res); err != nil {
		return nil, err
	}

	cg, err := m.wrapGroup(g, true)
	if err != nil {
		m.engine.ChannelGroupRelease(g)
		return nil, err
	}

	return cg, nil
}

func (g *ChannelGroup) Handle() handle.Handle { return g.id }

func (g *ChannelGroup) Native() native.ChannelGroup { return g.h }

func (g *ChannelGroup) Volume() (float32, error) {
	return get(&g.life, g.m, "channel group volume", func() (float32, native.Result) {
		return g.m.engine.ChannelGroupVolume(g.h)
	})
}

func (g *ChannelGroup) SetVolume(volume float32) error {
	return set(&g.life, g.m, "set channel group volume", func() native.Result {
		return g.m.engine.ChannelGroupSetVolume(g.h, volume)
	})
}

func (g *ChannelGroup) Pitch() (float32, error) {
	return get(&g.life, g.m, "channel group pitch", func() (float32, native.Result) {
		return g.m.engine.ChannelGroupPitch(g.h)
	})
}

func (g *ChannelGroup) SetPitch(pitch float32) error {
	return set(&g.life, g.m, "set channel group pitch", func() native.Result {
		return g.m.engine.ChannelGroupSetPitch(g.h, pitch)
	})
}

func (g *ChannelGroup) Paused() (bool, error) {
	return get(&g.life, g.m, "channel group paused", func() (bool, native.Result) {
		return g.m.engine.ChannelGroupPaused(g.h)
	})
}

func (g *ChannelGroup) SetPaused(paused bool) error {
	return set(&g.life, g.m, "set channel group paused", func() native.Result {
		return g.m.engine.ChannelGroupSetPaused(g.h, paused)
	})
}

func (g *ChannelGroup) Mute() (bool, error) {
	return get(&g.life, g.m, "channel group mute", func() (bool, native.Result) {
		return g.m.engine.ChannelGroupMute(g.h)
	})
}

func (g *ChannelGroup) SetMute(mute bool) error {
	return set(&g.life, g.m, "set channel group mute", func() native.Result {
		return g.m.engine.ChannelGroupSetMute(g.h, mute)
	})
}

// IsPlaying reports whether any channel in the group or below it plays.
func (g *ChannelGroup) IsPlaying() (bool, error) {
	return get(&g.life, g.m, "channel group is playing", func() (bool, native.Result) {
		return g.m.engine.ChannelGroupIsPlaying(g.h)
	})
}

// NumChannels counts the channels assigned directly to the group.
func (g *ChannelGroup) NumChannels() (int, error) {
	return get(&g.life, g.m, "channel group channel count", func() (int, native.Result) {
		return g.m.engine.ChannelGroupNumChannels(g.h)
	})
}

// Stop stops every channel in the group and below it.
func (g *ChannelGroup) Stop() error {
	return set(&g.life, g.m, "stop channel group", func() native.Result {
		return g.m.engine.ChannelGroupStop(g.h)
	})
}

// AddGroup moves child under g.
func (g *ChannelGroup) AddGroup(child *ChannelGroup) error {
	if err := child.life.usable(child.m); err != nil {
		return err
	}

	return set(&g.life, g.m, "add channel group", func() native.Result {
		return g.m.engine.ChannelGroupAddGroup(g.h, child.h)
	})
}

// Dispose releases a group created with CreateChannelGroup; its channels
// and children move to the master group. Disposing the master group does
// nothing.
func (g *ChannelGroup) Dispose() error {
	if g.system {
		return nil
	}

	return g.dispose()
}

func (g *ChannelGroup) dispose() error {
	return g.life.dispose(func() error {
		g.m.groups.Release(g.id)
		if !g.owned {
			return nil
		}
		return g.m.check("release channel group", g.m.engine.ChannelGroupRelease(g.h))
	})
}
