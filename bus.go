// SPDX-License-Identifier: EPL-2.0

package foxaudio

import (
	"github.com/google/uuid"
	"github.com/ik5/foxaudio/native"
)

// Bus is a mixing bus of the studio system. The master bus is "bus:/".
type Bus struct {
	m    *Manager
	h    native.Bus
	life lifetime
}

func (m *Manager) Bus(path string) (*Bus, error) {
	s, err := m.studioSystem()
	if err != nil {
		return nil, err
	}

	h, res := m.engine.StudioSystemBus(s, path)
	if err := m.check("bus "+path, res); err != nil {
		return nil, err
	}

	return &Bus{m: m, h: h}, nil
}

func (m *Manager) BusByID(id uuid.UUID) (*Bus, error) {
	s, err := m.studioSystem()
	if err != nil {
		return nil, err
	}

	h, res := m.engine.StudioSystemBusByID(s, native.GUIDFromUUID(id))
	if err := m.check("bus "+id.String(), res); err != nil {
		return nil, err
	}

	return &Bus{m: m, h: h}, nil
}

func (b *Bus) Native() native.Bus { return b.h }

func (b *Bus) Volume() (float32, error) {
	if err := b.life.usable(b.m); err != nil {
		return 0, err
	}

	vol, _, res := b.m.engine.BusVolume(b.h)
	return vol, b.m.check("bus volume", res)
}

// CurrentVolume is the volume after routing, zero when muted.
func (b *Bus) CurrentVolume() (float32, error) {
	if err := b.life.usable(b.m); err != nil {
		return 0, err
	}

	_, final, res := b.m.engine.BusVolume(b.h)
	return final, b.m.check("bus volume", res)
}

func (b *Bus) SetVolume(volume float32) error {
	return set(&b.life, b.m, "set bus volume", func() native.Result {
		return b.m.engine.BusSetVolume(b.h, volume)
	})
}

func (b *Bus) Paused() (bool, error) {
	return get(&b.life, b.m, "bus paused", func() (bool, native.Result) {
		return b.m.engine.BusPaused(b.h)
	})
}

func (b *Bus) SetPaused(paused bool) error {
	return set(&b.life, b.m, "set bus paused", func() native.Result {
		return b.m.engine.BusSetPaused(b.h, paused)
	})
}

func (b *Bus) Mute() (bool, error) {
	return get(&b.life, b.m, "bus mute", func() (bool, native.Result) {
		return b.m.engine.BusMute(b.h)
	})
}

func (b *Bus) SetMute(mute bool) error {
	return set(&b.life, b.m, "set bus mute", func() native.Result {
		return b.m.engine.BusSetMute(b.h, mute)
	})
}

// StopAllEvents stops every event routed through the bus.
func (b *Bus) StopAllEvents(immediate bool) error {
	return set(&b.life, b.m, "stop bus events", func() native.Result {
		return b.m.engine.BusStopAllEvents(b.h, stopMode(immediate))
	})
}

// LockChannelGroup keeps the bus channel group alive so ChannelGroup can
// return it.
func (b *Bus) LockChannelGroup() error {
	return set(&b.life, b.m, "lock bus channel group", func() native.Result {
		return b.m.engine.BusLockChannelGroup(b.h)
	})
}

func (b *Bus) UnlockChannelGroup() error {
	return set(&b.life, b.m, "unlock bus channel group", func() native.Result {
		return b.m.engine.BusUnlockChannelGroup(b.h)
	})
}

// ChannelGroup returns the core group of the bus. The bus must be locked
// first.
func (b *Bus) ChannelGroup() (*ChannelGroup, error) {
	g, err := get(&b.life, b.m, "bus channel group", func() (native.ChannelGroup, native.Result) {
		return b.m.engine.BusChannelGroup(b.h)
	})
	if err != nil {
		return nil, err
	}

	return b.m.resolveGroup(g)
}

func (b *Bus) Path() (string, error) {
	return get(&b.life, b.m, "bus path", func() (string, native.Result) {
		return b.m.engine.BusPath(b.h)
	})
}

func (b *Bus) ID() (uuid.UUID, error) {
	id, err := get(&b.life, b.m, "bus id", func() (native.GUID, native.Result) {
		return b.m.engine.BusID(b.h)
	})

	return id.UUID(), err
}

// VCA is a studio volume control that spans several buses.
type VCA struct {
	m    *Manager
	h    native.VCA
	life lifetime
}

func (m *Manager) VCA(path string) (*VCA, error) {
	s, err := m.studioSystem()
	if err != nil {
		return nil, err
	}

	h, res := m.engine.StudioSystemVCA(s, path)
	if err := m.check("vca "+path, res); err != nil {
		return nil, err
	}

	return &VCA{m: m, h: h}, nil
}

func (m *Manager) VCAByID(id uuid.UUID) (*VCA, error) {
	s, err := m.studioSystem()
	if err != nil {
		return nil, err
	}

	h, res := m.engine.StudioSystemVCAByID(s, native.GUIDFromUUID(id))
	if err := m.check("vca "+id.String(), res); err != nil {
		return nil, err
	}

	return &VCA{m: m, h: h}, nil
}

func (v *VCA) Native() native.VCA { return v.h }

func (v *VCA) Volume() (float32, error) {
	if err := v.life.usable(v.m); err != nil {
		return 0, err
	}

	vol, _, res := v.m.engine.VCAVolume(v.h)
	return vol, v.m.check("vca volume", res)
}

func (v *VCA) CurrentVolume() (float32, error) {
	if err := v.life.usable(v.m); err != nil {
		return 0, err
	}

	_, final, res := v.m.engine.VCAVolume(v.h)
	return final, v.m.check("vca volume", res)
}

func (v *VCA) SetVolume(volume float32) error {
	return set(&v.life, v.m, "set vca volume", func() native.Result {
		return v.m.engine.VCASetVolume(v.h, volume)
	})
}

func (v *VCA) Path() (string, error) {
	return get(&v.life, v.m, "vca path", func() (string, native.Result) {
		return v.m.engine.VCAPath(v.h)
	})
}

func (v *VCA) ID() (uuid.UUID, error) {
	id, err := get(&v.life, v.m, "vca id", func() (native.GUID, native.Result) {
		return v.m.engine.VCAID(v.h)
	})

	return id.UUID(), err
}

// Parameter returns a global parameter: the value set by the game and the
// final value after automation.
func (m *Manager) Parameter(name string) (target, final float32, err error) {
	s, err := m.studioSystem()
	if err != nil {
		return 0, 0, err
	}

	target, final, res := m.engine.StudioSystemParameterByName(s, name)
	return target, final, m.check("parameter "+name, res)
}

func (m *Manager) SetParameter(name string, value float32, ignoreSeekSpeed bool) error {
	s, err := m.studioSystem()
	if err != nil {
		return err
	}

	return m.check("set parameter "+name, m.engine.StudioSystemSetParameterByName(s, name, value, ignoreSeekSpeed))
}
