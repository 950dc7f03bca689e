// SPDX-License-Identifier: EPL-2.0

package foxaudio

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ik5/foxaudio/handle"
	"github.com/ik5/foxaudio/native"
	"go.uber.org/zap"
)

// EventDescription describes an event of a loaded bank. There is one
// wrapper per native description, so the exported defaults are shared by
// every caller. They are applied to each instance CreateInstance makes.
type EventDescription struct {
	Volume     float32
	Pitch      float32
	Attributes native.Attributes3D

	m  *Manager
	h  native.EventDescription
	id handle.Handle

	// never disposed; the engine invalidates descriptions on bank unload
	life lifetime
}

// Event looks an event description up by path, e.g. "event:/UI/Click".
func (m *Manager) Event(path string) (*EventDescription, error) {
	s, err := m.studioSystem()
	if err != nil {
		return nil, err
	}

	d, res := m.engine.StudioSystemEvent(s, path)
	if err := m.check("event "+path, res); err != nil {
		return nil, err
	}

	return m.describe(d)
}

func (m *Manager) EventByID(id uuid.UUID) (*EventDescription, error) {
	s, err := m.studioSystem()
	if err != nil {
		return nil, err
	}

	d, res := m.engine.StudioSystemEventByID(s, native.GUIDFromUUID(id))
	if err := m.check("event "+id.String(), res); err != nil {
		return nil, err
	}

	return m.describe(d)
}

// describe returns the cached wrapper of d, creating it on first use.
func (m *Manager) describe(d native.EventDescription) (*EventDescription, error) {
	if ud, res := m.engine.EventDescriptionUserData(d); res == native.OK {
		if ed, ok := m.events.ResolveUserData(ud); ok && ed.h == d {
			return ed, nil
		}
	}

	ed := &EventDescription{
		Volume:     1,
		Pitch:      1,
		Attributes: native.DefaultAttributes3D(),
		m:          m,
		h:          d,
	}
	ed.id = m.events.Register(ed)

	res := m.engine.EventDescriptionSetUserData(d, ed.id.UserData())
	if err := m.check("set event user data", res); err != nil {
		m.events.Release(ed.id)
		return nil, err
	}

	return ed, nil
}

func (d *EventDescription) Native() native.EventDescription { return d.h }

func (d *EventDescription) Path() (string, error) {
	return get(&d.life, d.m, "event path", func() (string, native.Result) {
		return d.m.engine.EventDescriptionPath(d.h)
	})
}

func (d *EventDescription) ID() (uuid.UUID, error) {
	id, err := get(&d.life, d.m, "event id", func() (native.GUID, native.Result) {
		return d.m.engine.EventDescriptionID(d.h)
	})

	return id.UUID(), err
}

// Length is zero for events without a fixed length.
func (d *EventDescription) Length() (time.Duration, error) {
	ms, err := get(&d.life, d.m, "event length", func() (int, native.Result) {
		return d.m.engine.EventDescriptionLength(d.h)
	})

	return time.Duration(ms) * time.Millisecond, err
}

func (d *EventDescription) Is3D() (bool, error) {
	return get(&d.life, d.m, "event is 3d", func() (bool, native.Result) {
		return d.m.engine.EventDescriptionIs3D(d.h)
	})
}

func (d *EventDescription) IsOneshot() (bool, error) {
	return get(&d.life, d.m, "event is oneshot", func() (bool, native.Result) {
		return d.m.engine.EventDescriptionIsOneshot(d.h)
	})
}

func (d *EventDescription) IsSnapshot() (bool, error) {
	return get(&d.life, d.m, "event is snapshot", func() (bool, native.Result) {
		return d.m.engine.EventDescriptionIsSnapshot(d.h)
	})
}

func (d *EventDescription) InstanceCount() (int, error) {
	return get(&d.life, d.m, "event instance count", func() (int, native.Result) {
		return d.m.engine.EventDescriptionInstanceCount(d.h)
	})
}

func (d *EventDescription) Parameter(name string) (native.ParameterDescription, error) {
	return get(&d.life, d.m, "event parameter "+name, func() (native.ParameterDescription, native.Result) {
		return d.m.engine.EventDescriptionParameterByName(d.h, name)
	})
}

func (d *EventDescription) LoadSampleData() error {
	return set(&d.life, d.m, "load event sample data", func() native.Result {
		return d.m.engine.EventDescriptionLoadSampleData(d.h)
	})
}

func (d *EventDescription) UnloadSampleData() error {
	return set(&d.life, d.m, "unload event sample data", func() native.Result {
		return d.m.engine.EventDescriptionUnloadSampleData(d.h)
	})
}

// ReleaseAllInstances stops and releases every instance of the event.
func (d *EventDescription) ReleaseAllInstances() error {
	return set(&d.life, d.m, "release all event instances", func() native.Result {
		return d.m.engine.EventDescriptionReleaseAllInstances(d.h)
	})
}

// CreateInstance creates a stopped instance with the description's
// defaults applied.
func (d *EventDescription) CreateInstance() (*EventInstance, error) {
	if _, err := d.m.studioSystem(); err != nil {
		return nil, err
	}

	h, res := d.m.engine.EventDescriptionCreateInstance(d.h)
	if err := d.m.check("create event instance", res); err != nil {
		return nil, err
	}

	in := &EventInstance{m: d.m, h: h, desc: d}
	in.id = d.m.instances.Register(in)

	if err := in.applyDefaults(); err != nil {
		in.Dispose()
		return nil, err
	}

	return in, nil
}

// EventCallback receives the callbacks of an event instance on the
// goroutine calling Manager.Update.
type EventCallback func(inst *EventInstance, typ native.EventCallbackType)

// EventInstance is a playable instance of an event.
type EventInstance struct {
	m    *Manager
	h    native.EventInstance
	id   handle.Handle
	desc *EventDescription
	life lifetime
}

func (i *EventInstance) applyDefaults() error {
	err := i.m.check("set event instance user data", i.m.engine.EventInstanceSetUserData(i.h, i.id.UserData()))
	if err != nil {
		return err
	}
	if err := i.SetVolume(i.desc.Volume); err != nil {
		return err
	}
	if err := i.SetPitch(i.desc.Pitch); err != nil {
		return err
	}

	is3D, err := i.desc.Is3D()
	if err != nil || !is3D {
		return err
	}

	return i.SetAttributes3D(i.desc.Attributes)
}

func (i *EventInstance) Handle() handle.Handle { return i.id }

func (i *EventInstance) Native() native.EventInstance { return i.h }

func (i *EventInstance) Description() *EventDescription { return i.desc }

func (i *EventInstance) Start() error {
	return set(&i.life, i.m, "start event", func() native.Result {
		return i.m.engine.EventInstanceStart(i.h)
	})
}

// Stop stops the instance, letting it fade out unless immediate is set.
func (i *EventInstance) Stop(immediate bool) error {
	return set(&i.life, i.m, "stop event", func() native.Result {
		return i.m.engine.EventInstanceStop(i.h, stopMode(immediate))
	})
}

// KeyOff triggers the sustain cue of the instance.
func (i *EventInstance) KeyOff() error {
	return set(&i.life, i.m, "event key off", func() native.Result {
		return i.m.engine.EventInstanceKeyOff(i.h)
	})
}

func (i *EventInstance) PlaybackState() (native.PlaybackState, error) {
	return get(&i.life, i.m, "event playback state", func() (native.PlaybackState, native.Result) {
		return i.m.engine.EventInstancePlaybackState(i.h)
	})
}

func (i *EventInstance) Paused() (bool, error) {
	return get(&i.life, i.m, "event paused", func() (bool, native.Result) {
		return i.m.engine.EventInstancePaused(i.h)
	})
}

func (i *EventInstance) SetPaused(paused bool) error {
	return set(&i.life, i.m, "set event paused", func() native.Result {
		return i.m.engine.EventInstanceSetPaused(i.h, paused)
	})
}

func (i *EventInstance) Volume() (float32, error) {
	vol, _, err := i.volume()
	return vol, err
}

// CurrentVolume is the volume after automation and bus routing.
func (i *EventInstance) CurrentVolume() (float32, error) {
	_, final, err := i.volume()
	return final, err
}

func (i *EventInstance) volume() (volume, final float32, err error) {
	if err := i.life.usable(i.m); err != nil {
		return 0, 0, err
	}

	volume, final, res := i.m.engine.EventInstanceVolume(i.h)
	return volume, final, i.m.check("event volume", res)
}

func (i *EventInstance) SetVolume(volume float32) error {
	return set(&i.life, i.m, "set event volume", func() native.Result {
		return i.m.engine.EventInstanceSetVolume(i.h, volume)
	})
}

func (i *EventInstance) Pitch() (float32, error) {
	if err := i.life.usable(i.m); err != nil {
		return 0, err
	}

	pitch, _, res := i.m.engine.EventInstancePitch(i.h)
	return pitch, i.m.check("event pitch", res)
}

func (i *EventInstance) SetPitch(pitch float32) error {
	return set(&i.life, i.m, "set event pitch", func() native.Result {
		return i.m.engine.EventInstanceSetPitch(i.h, pitch)
	})
}

func (i *EventInstance) Attributes3D() (native.Attributes3D, error) {
	return get(&i.life, i.m, "event 3d attributes", func() (native.Attributes3D, native.Result) {
		return i.m.engine.EventInstance3DAttributes(i.h)
	})
}

func (i *EventInstance) SetAttributes3D(attrs native.Attributes3D) error {
	return set(&i.life, i.m, "set event 3d attributes", func() native.Result {
		return i.m.engine.EventInstanceSet3DAttributes(i.h, attrs)
	})
}

func (i *EventInstance) TimelinePosition() (time.Duration, error) {
	ms, err := get(&i.life, i.m, "event timeline position", func() (int, native.Result) {
		return i.m.engine.EventInstanceTimelinePosition(i.h)
	})

	return time.Duration(ms) * time.Millisecond, err
}

func (i *EventInstance) SetTimelinePosition(pos time.Duration) error {
	return set(&i.life, i.m, "set event timeline position", func() native.Result {
		return i.m.engine.EventInstanceSetTimelinePosition(i.h, int(pos.Milliseconds()))
	})
}

// Parameter returns the value set by the game and the final value after
// automation and modulation.
func (i *EventInstance) Parameter(name string) (target, final float32, err error) {
	if err := i.life.usable(i.m); err != nil {
		return 0, 0, err
	}

	target, final, res := i.m.engine.EventInstanceParameterByName(i.h, name)
	return target, final, i.m.check("event parameter "+name, res)
}

func (i *EventInstance) SetParameter(name string, value float32, ignoreSeekSpeed bool) error {
	return set(&i.life, i.m, "set event parameter "+name, func() native.Result {
		return i.m.engine.EventInstanceSetParameterByName(i.h, name, value, ignoreSeekSpeed)
	})
}

// SetCallback routes the callback types in mask to fn. A nil fn removes
// the callback.
func (i *EventInstance) SetCallback(fn EventCallback, mask native.EventCallbackType) error {
	var cb native.EventCallback
	if fn != nil {
		cb = i.m.eventCallback(fn)
	}

	return set(&i.life, i.m, "set event callback", func() native.Result {
		return i.m.engine.EventInstanceSetCallback(i.h, cb, mask)
	})
}

// eventCallback resolves the instance of a native callback through its
// user data. Callbacks for instances that are gone are dropped.
func (m *Manager) eventCallback(fn EventCallback) native.EventCallback {
	return func(typ native.EventCallbackType, h native.EventInstance, _ uintptr) native.Result {
		ud, res := m.engine.EventInstanceUserData(h)
		if res != native.OK {
			m.log.Debug("event callback for released instance",
				zap.Uintptr("instance", uintptr(h)),
				zap.Uint32("type", uint32(typ)),
			)
			return native.OK
		}

		inst, ok := m.instances.ResolveUserData(ud)
		if !ok {
			m.log.Debug("event callback for unknown handle",
				zap.Uint64("handle", uint64(handle.FromUserData(ud))),
				zap.Uint32("type", uint32(typ)),
			)
			return native.OK
		}

		fn(inst, typ)
		return native.OK
	}
}

// Dispose releases the instance once. The engine destroys it when it
// stops.
func (i *EventInstance) Dispose() error {
	return i.life.dispose(func() error {
		i.m.instances.Release(i.id)
		err := i.m.check("release event instance", i.m.engine.EventInstanceRelease(i.h))
		if errors.Is(err, native.ErrInvalidHandle) {
			return nil
		}
		return err
	})
}

func stopMode(immediate bool) native.StopMode {
	if immediate {
		return native.StopImmediate
	}

	return native.StopAllowFadeout
}
