// SPDX-License-Identifier: EPL-2.0

package soft

import (
	"sync"
	"testing"
	"time"

	"github.com/ik5/foxaudio/native"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBank = `
path: bank:/Master
parameters:
  - {name: TimeOfDay, min: 0, max: 24, default: 12}
buses:
  - path: bus:/SFX
vcas:
  - path: vca:/Effects
events:
  - path: event:/UI/Cancel
    length_ms: 400
    oneshot: true
    bus: bus:/SFX/UI
  - path: event:/Ambience/Wind
    id: "{2a3e48e6-94fc-4363-9468-33d2dd4d7b00}"
    length_ms: 1000
    3d: true
    parameters:
      - {name: Intensity, min: 0, max: 1, default: 0.5}
  - path: event:/Vehicle/Horn
    length_ms: 200
    oneshot: true
    sustain: true
`

type recorder struct {
	mu    sync.Mutex
	types []native.EventCallbackType
}

func (r *recorder) callback(typ native.EventCallbackType, _ native.EventInstance, _ uintptr) native.Result {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.types = append(r.types, typ)
	return native.OK
}

func (r *recorder) take() []native.EventCallbackType {
	r.mu.Lock()
	defer r.mu.Unlock()

	got := r.types
	r.types = nil
	return got
}

func newStudio(t *testing.T) (*Engine, *ManualClock, native.StudioSystem) {
	t.Helper()

	clock := NewManualClock()
	e := New(WithClock(clock))

	s, res := e.StudioSystemCreate()
	requireOK(t, res)
	requireOK(t, e.StudioSystemInitialize(s, 64, native.StudioInitNormal, native.InitNormal))

	_, res = e.StudioSystemLoadBankMemory(s, []byte(testBank), native.LoadMemory, native.LoadBankNormal)
	requireOK(t, res)

	return e, clock, s
}

func instanceOf(t *testing.T, e *Engine, s native.StudioSystem, path string) native.EventInstance {
	t.Helper()

	d, res := e.StudioSystemEvent(s, path)
	requireOK(t, res)
	inst, res := e.EventDescriptionCreateInstance(d)
	requireOK(t, res)

	return inst
}

func step(t *testing.T, e *Engine, clock *ManualClock, s native.StudioSystem, d time.Duration) {
	t.Helper()

	clock.Advance(d)
	requireOK(t, e.StudioSystemUpdate(s))
}

func TestStudio_Uninitialized(t *testing.T) {
	t.Parallel()

	e := New()
	s, res := e.StudioSystemCreate()
	requireOK(t, res)

	_, res = e.StudioSystemLoadBankMemory(s, []byte(testBank), native.LoadMemory, native.LoadBankNormal)
	assert.Equal(t, native.ErrStudioUninitialized, res)
	assert.Equal(t, native.ErrStudioUninitialized, e.StudioSystemUpdate(s))

	core, res := e.StudioSystemCoreSystem(s)
	requireOK(t, res)
	requireOK(t, e.SystemSetDSPBufferSize(core, 256, 8))
	assert.Equal(t, native.ErrInvalidParam, e.SystemRelease(core))

	requireOK(t, e.StudioSystemInitialize(s, 16, native.StudioInitNormal, native.InitNormal))
	assert.Equal(t, native.ErrInitialized, e.StudioSystemInitialize(s, 16, native.StudioInitNormal, native.InitNormal))

	length, count, res := e.DSPBufferSize(core)
	requireOK(t, res)
	assert.Equal(t, uint32(256), length)
	assert.Equal(t, 8, count)

	requireOK(t, e.StudioSystemRelease(s))
	for kind, n := range e.Live() {
		assert.Zero(t, n, kind)
	}
}

func TestStudio_LoadBankErrors(t *testing.T) {
	t.Parallel()

	e, _, s := newStudio(t)

	tests := []struct {
		name string
		data string
		want native.Result
	}{
		{"empty", "", native.ErrInvalidParam},
		{"not yaml", "\x00\x01\x02", native.ErrFileBad},
		{"unknown key", "path: bank:/X\ncolour: red\n", native.ErrFileBad},
		{"bad path", "path: X\n", native.ErrFileBad},
		{"same bank", testBank, native.ErrEventAlreadyLoaded},
		{"same event", "path: bank:/Other\nevents:\n  - path: event:/UI/Cancel\n", native.ErrEventAlreadyLoaded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, res := e.StudioSystemLoadBankMemory(s, []byte(tt.data), native.LoadMemory, native.LoadBankNormal)
			assert.Equal(t, tt.want, res)
		})
	}
}

func TestStudio_Lookup(t *testing.T) {
	t.Parallel()

	e, _, s := newStudio(t)

	wind, res := e.StudioSystemEvent(s, "event:/Ambience/Wind")
	requireOK(t, res)

	id, err := native.ParseGUID("{2a3e48e6-94fc-4363-9468-33d2dd4d7b00}")
	require.NoError(t, err)
	byID, res := e.StudioSystemEventByID(s, id)
	requireOK(t, res)
	assert.Equal(t, wind, byID)

	cancel, res := e.StudioSystemEvent(s, "event:/UI/Cancel")
	requireOK(t, res)
	gotID, res := e.EventDescriptionID(cancel)
	requireOK(t, res)
	assert.Equal(t, PathID("event:/UI/Cancel"), gotID)

	_, res = e.StudioSystemEvent(s, "event:/Missing")
	assert.Equal(t, native.ErrEventNotFound, res)

	is3D, res := e.EventDescriptionIs3D(wind)
	requireOK(t, res)
	assert.True(t, is3D)
	oneshot, res := e.EventDescriptionIsOneshot(cancel)
	requireOK(t, res)
	assert.True(t, oneshot)
	length, res := e.EventDescriptionLength(cancel)
	requireOK(t, res)
	assert.Equal(t, 400, length)

	p, res := e.EventDescriptionParameterByName(wind, "intensity")
	requireOK(t, res)
	assert.Equal(t, "Intensity", p.Name)
	assert.Equal(t, float32(0.5), p.Default)

	for _, path := range []string{"bus:/", "bus:/SFX", "bus:/SFX/UI"} {
		b, res := e.StudioSystemBus(s, path)
		requireOK(t, res)
		got, res := e.BusPath(b)
		requireOK(t, res)
		assert.Equal(t, path, got)
	}

	v, res := e.StudioSystemVCA(s, "vca:/Effects")
	requireOK(t, res)
	byVCA, res := e.StudioSystemVCAByID(s, PathID("vca:/Effects"))
	requireOK(t, res)
	assert.Equal(t, v, byVCA)
}

func TestEventInstance_OneshotLifecycle(t *testing.T) {
	t.Parallel()

	e, clock, s := newStudio(t)
	inst := instanceOf(t, e, s, "event:/UI/Cancel")

	rec := &recorder{}
	requireOK(t, e.EventInstanceSetCallback(inst, rec.callback, native.EventCallbackAll))
	requireOK(t, e.EventInstanceStart(inst))

	state, res := e.EventInstancePlaybackState(inst)
	requireOK(t, res)
	assert.Equal(t, native.PlaybackStarting, state)

	step(t, e, clock, s, 10*time.Millisecond)
	assert.Equal(t, []native.EventCallbackType{
		native.EventCallbackCreated,
		native.EventCallbackStarting,
		native.EventCallbackStarted,
	}, rec.take())

	step(t, e, clock, s, 150*time.Millisecond)
	pos, res := e.EventInstanceTimelinePosition(inst)
	requireOK(t, res)
	assert.Equal(t, 150, pos)

	requireOK(t, e.EventInstanceRelease(inst))
	step(t, e, clock, s, 300*time.Millisecond)
	assert.Equal(t, []native.EventCallbackType{
		native.EventCallbackStopped,
		native.EventCallbackDestroyed,
	}, rec.take())

	_, res = e.EventInstancePlaybackState(inst)
	assert.Equal(t, native.ErrInvalidHandle, res)
}

func TestEventInstance_StopModes(t *testing.T) {
	t.Parallel()

	e, clock, s := newStudio(t)
	inst := instanceOf(t, e, s, "event:/Ambience/Wind")
	requireOK(t, e.EventInstanceStart(inst))
	step(t, e, clock, s, time.Millisecond)

	requireOK(t, e.EventInstanceStop(inst, native.StopAllowFadeout))
	state, _ := e.EventInstancePlaybackState(inst)
	assert.Equal(t, native.PlaybackStopping, state)

	step(t, e, clock, s, time.Millisecond)
	state, _ = e.EventInstancePlaybackState(inst)
	assert.Equal(t, native.PlaybackStopped, state)

	requireOK(t, e.EventInstanceStart(inst))
	requireOK(t, e.EventInstanceStop(inst, native.StopImmediate))
	state, _ = e.EventInstancePlaybackState(inst)
	assert.Equal(t, native.PlaybackStopped, state)

	assert.Equal(t, native.ErrInvalidParam, e.EventInstanceStop(inst, native.StopMode(7)))
}

func TestEventInstance_LoopingTimeline(t *testing.T) {
	t.Parallel()

	e, clock, s := newStudio(t)
	inst := instanceOf(t, e, s, "event:/Ambience/Wind")
	requireOK(t, e.EventInstanceStart(inst))
	step(t, e, clock, s, time.Millisecond)

	step(t, e, clock, s, 1250*time.Millisecond)
	pos, res := e.EventInstanceTimelinePosition(inst)
	requireOK(t, res)
	assert.Equal(t, 250, pos)

	state, _ := e.EventInstancePlaybackState(inst)
	assert.Equal(t, native.PlaybackPlaying, state)
}

func TestEventInstance_Sustain(t *testing.T) {
	t.Parallel()

	e, clock, s := newStudio(t)

	wind := instanceOf(t, e, s, "event:/Ambience/Wind")
	assert.Equal(t, native.ErrEventNotFound, e.EventInstanceKeyOff(wind))

	horn := instanceOf(t, e, s, "event:/Vehicle/Horn")
	requireOK(t, e.EventInstanceStart(horn))
	step(t, e, clock, s, time.Millisecond)
	step(t, e, clock, s, time.Second)

	state, _ := e.EventInstancePlaybackState(horn)
	assert.Equal(t, native.PlaybackSustaining, state)

	requireOK(t, e.EventInstanceKeyOff(horn))
	step(t, e, clock, s, time.Millisecond)
	state, _ = e.EventInstancePlaybackState(horn)
	assert.Equal(t, native.PlaybackStopped, state)
}

func TestEventInstance_Properties(t *testing.T) {
	t.Parallel()

	e, _, s := newStudio(t)
	inst := instanceOf(t, e, s, "event:/Ambience/Wind")

	requireOK(t, e.EventInstanceSetParameterByName(inst, "Intensity", 4, false))
	v, final, res := e.EventInstanceParameterByName(inst, "intensity")
	requireOK(t, res)
	assert.Equal(t, float32(1), v)
	assert.Equal(t, float32(1), final)
	assert.Equal(t, native.ErrEventNotFound, e.EventInstanceSetParameterByName(inst, "Nope", 1, false))

	requireOK(t, e.EventInstanceSetVolume(inst, 0.5))
	assert.Equal(t, native.ErrInvalidParam, e.EventInstanceSetVolume(inst, -1))
	requireOK(t, e.EventInstanceSetPitch(inst, 2))
	pitch, _, res := e.EventInstancePitch(inst)
	requireOK(t, res)
	assert.Equal(t, float32(2), pitch)

	attrs := native.DefaultAttributes3D()
	attrs.Position = native.Vector{X: 4}
	requireOK(t, e.EventInstanceSet3DAttributes(inst, attrs))
	got, res := e.EventInstance3DAttributes(inst)
	requireOK(t, res)
	assert.Equal(t, attrs, got)

	requireOK(t, e.EventInstanceSetTimelinePosition(inst, 5000))
	pos, _ := e.EventInstanceTimelinePosition(inst)
	assert.Equal(t, 1000, pos)

	d, res := e.EventInstanceDescription(inst)
	requireOK(t, res)
	count, res := e.EventDescriptionInstanceCount(d)
	requireOK(t, res)
	assert.Equal(t, 1, count)

	requireOK(t, e.EventInstanceSetUserData(inst, 7))
	ud, _ := e.EventInstanceUserData(inst)
	assert.Equal(t, uintptr(7), ud)
}

func TestEventDescription_ReleaseAllInstances(t *testing.T) {
	t.Parallel()

	e, clock, s := newStudio(t)

	d, res := e.StudioSystemEvent(s, "event:/Ambience/Wind")
	requireOK(t, res)
	for range 3 {
		inst, res := e.EventDescriptionCreateInstance(d)
		requireOK(t, res)
		requireOK(t, e.EventInstanceStart(inst))
	}

	list, res := e.EventDescriptionInstanceList(d)
	requireOK(t, res)
	assert.Len(t, list, 3)

	requireOK(t, e.EventDescriptionReleaseAllInstances(d))
	step(t, e, clock, s, time.Millisecond)

	count, res := e.EventDescriptionInstanceCount(d)
	requireOK(t, res)
	assert.Zero(t, count)
}

func TestBus_PauseAndStop(t *testing.T) {
	t.Parallel()

	e, clock, s := newStudio(t)
	inst := instanceOf(t, e, s, "event:/UI/Cancel")
	requireOK(t, e.EventInstanceStart(inst))
	step(t, e, clock, s, time.Millisecond)

	sfx, res := e.StudioSystemBus(s, "bus:/SFX")
	requireOK(t, res)
	requireOK(t, e.BusSetPaused(sfx, true))
	step(t, e, clock, s, 100*time.Millisecond)

	pos, _ := e.EventInstanceTimelinePosition(inst)
	assert.Zero(t, pos)

	requireOK(t, e.BusSetVolume(sfx, 0.5))
	_, final, res := e.EventInstanceVolume(inst)
	requireOK(t, res)
	assert.InDelta(t, 0.5, final, 1e-6)

	requireOK(t, e.BusSetMute(sfx, true))
	_, final, _ = e.BusVolume(sfx)
	assert.Zero(t, final)

	requireOK(t, e.BusStopAllEvents(sfx, native.StopImmediate))
	state, _ := e.EventInstancePlaybackState(inst)
	assert.Equal(t, native.PlaybackStopped, state)
}

func TestBus_ChannelGroup(t *testing.T) {
	t.Parallel()

	e, _, s := newStudio(t)

	sfx, res := e.StudioSystemBus(s, "bus:/SFX")
	requireOK(t, res)

	_, res = e.BusChannelGroup(sfx)
	assert.Equal(t, native.ErrStudioNotLoaded, res)
	assert.Equal(t, native.ErrNotLocked, e.BusUnlockChannelGroup(sfx))

	requireOK(t, e.BusLockChannelGroup(sfx))
	g, res := e.BusChannelGroup(sfx)
	requireOK(t, res)

	requireOK(t, e.BusSetPaused(sfx, true))
	paused, res := e.ChannelGroupPaused(g)
	requireOK(t, res)
	assert.True(t, paused)

	requireOK(t, e.BusUnlockChannelGroup(sfx))
	_, res = e.ChannelGroupPaused(g)
	assert.Equal(t, native.ErrInvalidHandle, res)

	master, res := e.StudioSystemBus(s, "bus:/")
	requireOK(t, res)
	mg, res := e.BusChannelGroup(master)
	requireOK(t, res)
	core, _ := e.StudioSystemCoreSystem(s)
	want, _ := e.SystemMasterChannelGroup(core)
	assert.Equal(t, want, mg)
}

func TestStudio_GlobalParameters(t *testing.T) {
	t.Parallel()

	e, _, s := newStudio(t)

	v, _, res := e.StudioSystemParameterByName(s, "TimeOfDay")
	requireOK(t, res)
	assert.Equal(t, float32(12), v)

	requireOK(t, e.StudioSystemSetParameterByName(s, "timeofday", -3, false))
	v, final, res := e.StudioSystemParameterByName(s, "TimeOfDay")
	requireOK(t, res)
	assert.Zero(t, v)
	assert.Zero(t, final)

	_, _, res = e.StudioSystemParameterByName(s, "Missing")
	assert.Equal(t, native.ErrEventNotFound, res)
}

func TestStudio_Listeners(t *testing.T) {
	t.Parallel()

	e, _, s := newStudio(t)

	requireOK(t, e.StudioSystemSetNumListeners(s, 2))
	n, res := e.StudioSystemNumListeners(s)
	requireOK(t, res)
	assert.Equal(t, 2, n)

	attrs := native.DefaultAttributes3D()
	attrs.Position = native.Vector{Z: 9}
	requireOK(t, e.StudioSystemSetListenerAttributes(s, 1, attrs))

	got, res := e.StudioSystemListenerAttributes(s, 1)
	requireOK(t, res)
	assert.Equal(t, attrs, got)

	core, _ := e.StudioSystemCoreSystem(s)
	got, res = e.System3DListenerAttributes(core, 1)
	requireOK(t, res)
	assert.Equal(t, attrs, got)
}

func TestBank_Unload(t *testing.T) {
	t.Parallel()

	e, _, s := newStudio(t)

	b, res := e.StudioSystemLoadBankMemory(s, []byte("path: bank:/Music\nevents:\n  - path: event:/Music/Theme\n    bus: bus:/Music\n"), native.LoadMemoryPoint, native.LoadBankNormal)
	requireOK(t, res)

	path, res := e.BankPath(b)
	requireOK(t, res)
	assert.Equal(t, "bank:/Music", path)

	list, res := e.BankEventList(b)
	requireOK(t, res)
	require.Len(t, list, 1)

	inst, res := e.EventDescriptionCreateInstance(list[0])
	requireOK(t, res)

	state, res := e.BankLoadingState(b)
	requireOK(t, res)
	assert.Equal(t, native.LoadingStateLoaded, state)

	requireOK(t, e.BankLoadSampleData(b))
	requireOK(t, e.BankUnload(b))

	_, res = e.EventDescriptionPath(list[0])
	assert.Equal(t, native.ErrInvalidHandle, res)
	_, res = e.EventInstancePlaybackState(inst)
	assert.Equal(t, native.ErrInvalidHandle, res)
	_, res = e.StudioSystemBus(s, "bus:/Music")
	assert.Equal(t, native.ErrEventNotFound, res)
	assert.Equal(t, native.ErrInvalidHandle, e.BankUnload(b))
}
