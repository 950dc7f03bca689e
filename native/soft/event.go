// SPDX-License-Identifier: EPL-2.0

package soft

import (
	"math"
	"slices"
	"strings"
	"time"

	"github.com/ik5/foxaudio/native"
)

type eventDesc struct {
	studio   native.StudioSystem
	bank     native.Bank
	path     string
	id       native.GUID
	lengthMS int
	oneshot  bool
	is3D     bool
	snapshot bool
	sustain  bool
	bus      string
	params   []native.ParameterDescription
	samples  bool
	userData uintptr
}

func (d *eventDesc) parameter(name string) (native.ParameterDescription, bool) {
	for _, p := range d.params {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}

	return native.ParameterDescription{}, false
}

type instance struct {
	desc     native.EventDescription
	state    native.PlaybackState
	paused   bool
	volume   float32
	pitch    float32
	attrs    native.Attributes3D
	timeline float64 // milliseconds
	params   map[string]float32
	userData uintptr

	callback native.EventCallback
	mask     native.EventCallbackType

	restart  bool
	keyedOff bool
	released bool

	// callbacks raised by API calls, delivered on the next update
	pending []native.EventCallbackType
}

// stop moves the instance towards the stopped state. Immediate stops
// complete at once, fadeouts on the next update.
func (in *instance) stop(mode native.StopMode) {
	switch in.state {
	case native.PlaybackStopped:
		return
	case native.PlaybackPlaying, native.PlaybackSustaining:
		if mode == native.StopAllowFadeout {
			in.state = native.PlaybackStopping
			return
		}
	}

	in.state = native.PlaybackStopped
	in.pending = append(in.pending, native.EventCallbackStopped)
}

type eventCall struct {
	fn   native.EventCallback
	typ  native.EventCallbackType
	inst native.EventInstance
}

// updateEvents advances the instances of s by elapsed and collects the
// callbacks to deliver. Instances that are released and stopped are
// returned as destroyed; the caller deletes them once their Destroyed
// callbacks have run. Caller holds mu.
func (e *Engine) updateEvents(s native.StudioSystem, elapsed time.Duration) (calls []eventCall, destroyed []native.EventInstance) {
	handles := make([]native.EventInstance, 0, len(e.insts))
	for h, in := range e.insts {
		if e.events[in.desc].studio == s {
			handles = append(handles, h)
		}
	}
	slices.Sort(handles)

	ms := float64(elapsed) / float64(time.Millisecond)

	for _, h := range handles {
		in := e.insts[h]
		fired := e.advanceInstance(in, ms)
		if in.released && in.state == native.PlaybackStopped {
			fired = append(fired, native.EventCallbackDestroyed)
			destroyed = append(destroyed, h)
		}

		if in.callback == nil {
			continue
		}
		for _, typ := range fired {
			if in.mask&typ != 0 {
				calls = append(calls, eventCall{fn: in.callback, typ: typ, inst: h})
			}
		}
	}

	return calls, destroyed
}

// advanceInstance runs one step of the playback state machine and returns
// the callback types raised. Caller holds mu.
func (e *Engine) advanceInstance(in *instance, ms float64) []native.EventCallbackType {
	fired := in.pending
	in.pending = nil

	d := e.events[in.desc]

	switch in.state {
	case native.PlaybackStarting:
		if in.restart {
			fired = append(fired, native.EventCallbackRestarted)
		} else {
			fired = append(fired, native.EventCallbackStarting, native.EventCallbackStarted)
		}
		in.restart = false
		in.state = native.PlaybackPlaying

	case native.PlaybackPlaying:
		if in.paused || e.busPaused(d.studio, d.bus) {
			break
		}
		in.timeline += ms * float64(in.pitch)

		length := float64(d.lengthMS)
		if length <= 0 || in.timeline < length {
			break
		}
		switch {
		case d.sustain && !in.keyedOff:
			in.timeline = length
			in.state = native.PlaybackSustaining
		case d.oneshot:
			in.timeline = length
			in.state = native.PlaybackStopped
			fired = append(fired, native.EventCallbackStopped)
		default:
			in.timeline = math.Mod(in.timeline, length)
		}

	case native.PlaybackSustaining:
		if !in.keyedOff {
			break
		}
		if d.oneshot {
			in.state = native.PlaybackStopped
			fired = append(fired, native.EventCallbackStopped)
		} else {
			in.timeline = 0
			in.state = native.PlaybackPlaying
		}

	case native.PlaybackStopping:
		in.state = native.PlaybackStopped
		fired = append(fired, native.EventCallbackStopped)
	}

	return fired
}

func (e *Engine) withEvent(h native.EventDescription, fn func(*eventDesc) native.Result) native.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	d, ok := e.events[h]
	if !ok {
		return native.ErrInvalidHandle
	}

	return fn(d)
}

// EventDescriptionCreateInstance creates a stopped instance. Creating an
// instance loads the sample data of its event.
func (e *Engine) EventDescriptionCreateInstance(h native.EventDescription) (native.EventInstance, native.Result) {
	var ih native.EventInstance
	res := e.withEvent(h, func(d *eventDesc) native.Result {
		in := &instance{
			desc:    h,
			state:   native.PlaybackStopped,
			volume:  1,
			pitch:   1,
			attrs:   native.DefaultAttributes3D(),
			params:  make(map[string]float32, len(d.params)),
			pending: []native.EventCallbackType{native.EventCallbackCreated},
		}
		for _, p := range d.params {
			in.params[strings.ToLower(p.Name)] = p.Default
		}
		d.samples = true

		ih = native.EventInstance(e.alloc())
		e.insts[ih] = in
		return native.OK
	})

	return ih, res
}

// instancesOf lists the live instances of h in creation order. Caller holds
// mu.
func (e *Engine) instancesOf(h native.EventDescription) []native.EventInstance {
	var list []native.EventInstance
	for ih, in := range e.insts {
		if in.desc == h {
			list = append(list, ih)
		}
	}
	slices.Sort(list)

	return list
}

func (e *Engine) EventDescriptionInstanceCount(h native.EventDescription) (int, native.Result) {
	var n int
	res := e.withEvent(h, func(*eventDesc) native.Result {
		n = len(e.instancesOf(h))
		return native.OK
	})

	return n, res
}

func (e *Engine) EventDescriptionInstanceList(h native.EventDescription) ([]native.EventInstance, native.Result) {
	var list []native.EventInstance
	res := e.withEvent(h, func(*eventDesc) native.Result {
		list = e.instancesOf(h)
		return native.OK
	})

	return list, res
}

func (e *Engine) eventFlag(h native.EventDescription, get func(*eventDesc) bool) (bool, native.Result) {
	var v bool
	res := e.withEvent(h, func(d *eventDesc) native.Result {
		v = get(d)
		return native.OK
	})

	return v, res
}

func (e *Engine) EventDescriptionIs3D(h native.EventDescription) (bool, native.Result) {
	return e.eventFlag(h, func(d *eventDesc) bool { return d.is3D })
}

func (e *Engine) EventDescriptionIsOneshot(h native.EventDescription) (bool, native.Result) {
	return e.eventFlag(h, func(d *eventDesc) bool { return d.oneshot })
}

func (e *Engine) EventDescriptionIsSnapshot(h native.EventDescription) (bool, native.Result) {
	return e.eventFlag(h, func(d *eventDesc) bool { return d.snapshot })
}

func (e *Engine) EventDescriptionLength(h native.EventDescription) (int, native.Result) {
	var n int
	res := e.withEvent(h, func(d *eventDesc) native.Result {
		n = d.lengthMS
		return native.OK
	})

	return n, res
}

func (e *Engine) EventDescriptionPath(h native.EventDescription) (string, native.Result) {
	var path string
	res := e.withEvent(h, func(d *eventDesc) native.Result {
		path = d.path
		return native.OK
	})

	return path, res
}

func (e *Engine) EventDescriptionID(h native.EventDescription) (native.GUID, native.Result) {
	var id native.GUID
	res := e.withEvent(h, func(d *eventDesc) native.Result {
		id = d.id
		return native.OK
	})

	return id, res
}

func (e *Engine) EventDescriptionParameterByName(h native.EventDescription, name string) (native.ParameterDescription, native.Result) {
	var desc native.ParameterDescription
	res := e.withEvent(h, func(d *eventDesc) native.Result {
		p, ok := d.parameter(name)
		if !ok {
			return native.ErrEventNotFound
		}
		desc = p
		return native.OK
	})

	return desc, res
}

func (e *Engine) EventDescriptionLoadSampleData(h native.EventDescription) native.Result {
	return e.withEvent(h, func(d *eventDesc) native.Result {
		d.samples = true
		return native.OK
	})
}

func (e *Engine) EventDescriptionUnloadSampleData(h native.EventDescription) native.Result {
	return e.withEvent(h, func(d *eventDesc) native.Result {
		if !d.samples {
			return native.ErrStudioNotLoaded
		}
		d.samples = false
		return native.OK
	})
}

// EventDescriptionReleaseAllInstances stops every instance immediately and
// marks it released; they are destroyed on the next update.
func (e *Engine) EventDescriptionReleaseAllInstances(h native.EventDescription) native.Result {
	return e.withEvent(h, func(*eventDesc) native.Result {
		for _, ih := range e.instancesOf(h) {
			in := e.insts[ih]
			in.stop(native.StopImmediate)
			in.released = true
		}
		return native.OK
	})
}

func (e *Engine) EventDescriptionSetUserData(h native.EventDescription, data uintptr) native.Result {
	return e.withEvent(h, func(d *eventDesc) native.Result {
		d.userData = data
		return native.OK
	})
}

func (e *Engine) EventDescriptionUserData(h native.EventDescription) (uintptr, native.Result) {
	var data uintptr
	res := e.withEvent(h, func(d *eventDesc) native.Result {
		data = d.userData
		return native.OK
	})

	return data, res
}

func (e *Engine) withInstance(h native.EventInstance, fn func(*instance) native.Result) native.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	in, ok := e.insts[h]
	if !ok {
		return native.ErrInvalidHandle
	}

	return fn(in)
}

// EventInstanceStart starts the instance from the beginning of its
// timeline, restarting it when already playing.
func (e *Engine) EventInstanceStart(h native.EventInstance) native.Result {
	return e.withInstance(h, func(in *instance) native.Result {
		in.restart = in.state != native.PlaybackStopped
		in.state = native.PlaybackStarting
		in.timeline = 0
		in.keyedOff = false
		return native.OK
	})
}

func (e *Engine) EventInstanceStop(h native.EventInstance, mode native.StopMode) native.Result {
	return e.withInstance(h, func(in *instance) native.Result {
		if mode != native.StopAllowFadeout && mode != native.StopImmediate {
			return native.ErrInvalidParam
		}
		in.stop(mode)
		return native.OK
	})
}

// EventInstanceRelease marks the instance for destruction once it stops.
func (e *Engine) EventInstanceRelease(h native.EventInstance) native.Result {
	return e.withInstance(h, func(in *instance) native.Result {
		in.released = true
		return native.OK
	})
}

// EventInstanceKeyOff releases the sustain point of the instance. Events
// without one report ErrEventNotFound.
func (e *Engine) EventInstanceKeyOff(h native.EventInstance) native.Result {
	return e.withInstance(h, func(in *instance) native.Result {
		if !e.events[in.desc].sustain {
			return native.ErrEventNotFound
		}
		in.keyedOff = true
		return native.OK
	})
}

func (e *Engine) EventInstancePlaybackState(h native.EventInstance) (native.PlaybackState, native.Result) {
	state := native.PlaybackStopped
	res := e.withInstance(h, func(in *instance) native.Result {
		state = in.state
		return native.OK
	})

	return state, res
}

func (e *Engine) EventInstanceSetPaused(h native.EventInstance, paused bool) native.Result {
	return e.withInstance(h, func(in *instance) native.Result {
		in.paused = paused
		return native.OK
	})
}

func (e *Engine) EventInstancePaused(h native.EventInstance) (bool, native.Result) {
	var paused bool
	res := e.withInstance(h, func(in *instance) native.Result {
		paused = in.paused
		return native.OK
	})

	return paused, res
}

func (e *Engine) EventInstanceSetVolume(h native.EventInstance, volume float32) native.Result {
	return e.withInstance(h, func(in *instance) native.Result {
		if !validFloat(volume) {
			return native.ErrInvalidFloat
		}
		if volume < 0 {
			return native.ErrInvalidParam
		}
		in.volume = volume
		return native.OK
	})
}

// EventInstanceVolume reports the final volume after bus routing.
func (e *Engine) EventInstanceVolume(h native.EventInstance) (volume, final float32, res native.Result) {
	res = e.withInstance(h, func(in *instance) native.Result {
		d := e.events[in.desc]
		volume = in.volume
		final = in.volume * e.busGain(d.studio, d.bus)
		return native.OK
	})

	return volume, final, res
}

func (e *Engine) EventInstanceSetPitch(h native.EventInstance, pitch float32) native.Result {
	return e.withInstance(h, func(in *instance) native.Result {
		if !validFloat(pitch) {
			return native.ErrInvalidFloat
		}
		if pitch < 0 {
			return native.ErrInvalidParam
		}
		in.pitch = pitch
		return native.OK
	})
}

func (e *Engine) EventInstancePitch(h native.EventInstance) (pitch, final float32, res native.Result) {
	res = e.withInstance(h, func(in *instance) native.Result {
		pitch = in.pitch
		final = in.pitch
		return native.OK
	})

	return pitch, final, res
}

func (e *Engine) EventInstanceSet3DAttributes(h native.EventInstance, attrs native.Attributes3D) native.Result {
	return e.withInstance(h, func(in *instance) native.Result {
		if !validAttributes(attrs) {
			return native.ErrInvalidFloat
		}
		in.attrs = attrs
		return native.OK
	})
}

func (e *Engine) EventInstance3DAttributes(h native.EventInstance) (native.Attributes3D, native.Result) {
	var attrs native.Attributes3D
	res := e.withInstance(h, func(in *instance) native.Result {
		attrs = in.attrs
		return native.OK
	})

	return attrs, res
}

// EventInstanceSetTimelinePosition clamps ms to the event length.
func (e *Engine) EventInstanceSetTimelinePosition(h native.EventInstance, ms int) native.Result {
	return e.withInstance(h, func(in *instance) native.Result {
		if ms < 0 {
			return native.ErrInvalidParam
		}
		if length := e.events[in.desc].lengthMS; length > 0 {
			ms = min(ms, length)
		}
		in.timeline = float64(ms)
		return native.OK
	})
}

func (e *Engine) EventInstanceTimelinePosition(h native.EventInstance) (int, native.Result) {
	var ms int
	res := e.withInstance(h, func(in *instance) native.Result {
		ms = int(in.timeline)
		return native.OK
	})

	return ms, res
}

// EventInstanceSetParameterByName clamps value to the parameter range.
func (e *Engine) EventInstanceSetParameterByName(h native.EventInstance, name string, value float32, _ bool) native.Result {
	return e.withInstance(h, func(in *instance) native.Result {
		if !validFloat(value) {
			return native.ErrInvalidFloat
		}
		p, ok := e.events[in.desc].parameter(name)
		if !ok {
			return native.ErrEventNotFound
		}
		in.params[strings.ToLower(p.Name)] = min(max(value, p.Minimum), p.Maximum)
		return native.OK
	})
}

func (e *Engine) EventInstanceParameterByName(h native.EventInstance, name string) (value, final float32, res native.Result) {
	res = e.withInstance(h, func(in *instance) native.Result {
		v, ok := in.params[strings.ToLower(name)]
		if !ok {
			return native.ErrEventNotFound
		}
		value, final = v, v
		return native.OK
	})

	return value, final, res
}

func (e *Engine) EventInstanceDescription(h native.EventInstance) (native.EventDescription, native.Result) {
	var d native.EventDescription
	res := e.withInstance(h, func(in *instance) native.Result {
		d = in.desc
		return native.OK
	})

	return d, res
}

// EventInstanceSetCallback replaces the callback of the instance; a nil
// callback disables delivery.
func (e *Engine) EventInstanceSetCallback(h native.EventInstance, cb native.EventCallback, mask native.EventCallbackType) native.Result {
	return e.withInstance(h, func(in *instance) native.Result {
		in.callback = cb
		in.mask = mask
		return native.OK
	})
}

func (e *Engine) EventInstanceSetUserData(h native.EventInstance, data uintptr) native.Result {
	return e.withInstance(h, func(in *instance) native.Result {
		in.userData = data
		return native.OK
	})
}

func (e *Engine) EventInstanceUserData(h native.EventInstance) (uintptr, native.Result) {
	var data uintptr
	res := e.withInstance(h, func(in *instance) native.Result {
		data = in.userData
		return native.OK
	})

	return data, res
}
