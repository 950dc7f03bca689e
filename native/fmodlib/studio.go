// SPDX-License-Identifier: EPL-2.0

//go:build darwin || freebsd || linux || windows

package fmodlib

import (
	"github.com/ik5/foxaudio/native"
)

func (e *Engine) StudioSystemCreate() (native.StudioSystem, native.Result) {
	var s native.StudioSystem
	res := e.studio.systemCreate(&s, headerVersion)

	return s, res
}

func (e *Engine) StudioSystemInitialize(s native.StudioSystem, maxChannels int, studioFlags native.StudioInitFlags, coreFlags native.InitFlags) native.Result {
	return e.studio.systemInitialize(s, int32(maxChannels), studioFlags, coreFlags, 0)
}

func (e *Engine) StudioSystemRelease(s native.StudioSystem) native.Result {
	return e.studio.systemRelease(s)
}

func (e *Engine) StudioSystemUpdate(s native.StudioSystem) native.Result {
	return e.studio.systemUpdate(s)
}

func (e *Engine) StudioSystemCoreSystem(s native.StudioSystem) (native.System, native.Result) {
	var sys native.System
	res := e.studio.systemGetCoreSystem(s, &sys)

	return sys, res
}

// StudioSystemLoadBankMemory copies data unless mode is LoadMemoryPoint,
// in which case data must stay alive until the bank is unloaded.
func (e *Engine) StudioSystemLoadBankMemory(s native.StudioSystem, data []byte, mode native.LoadMemoryMode, flags native.LoadBankFlags) (native.Bank, native.Result) {
	if !fits(int64(len(data)), maxBankLength) {
		return 0, native.ErrInvalidParam
	}

	var b native.Bank
	res := e.studio.systemLoadBankMemory(s, &data[0], int32(len(data)), mode, flags, &b)

	return b, res
}

func (e *Engine) StudioSystemEvent(s native.StudioSystem, path string) (native.EventDescription, native.Result) {
	var d native.EventDescription
	res := e.studio.systemGetEvent(s, path, &d)

	return d, res
}

func (e *Engine) StudioSystemEventByID(s native.StudioSystem, id native.GUID) (native.EventDescription, native.Result) {
	var d native.EventDescription
	res := e.studio.systemGetEventByID(s, &id, &d)

	return d, res
}

func (e *Engine) StudioSystemBus(s native.StudioSystem, path string) (native.Bus, native.Result) {
	var b native.Bus
	res := e.studio.systemGetBus(s, path, &b)

	return b, res
}

func (e *Engine) StudioSystemBusByID(s native.StudioSystem, id native.GUID) (native.Bus, native.Result) {
	var b native.Bus
	res := e.studio.systemGetBusByID(s, &id, &b)

	return b, res
}

func (e *Engine) StudioSystemVCA(s native.StudioSystem, path string) (native.VCA, native.Result) {
	var v native.VCA
	res := e.studio.systemGetVCA(s, path, &v)

	return v, res
}

func (e *Engine) StudioSystemVCAByID(s native.StudioSystem, id native.GUID) (native.VCA, native.Result) {
	var v native.VCA
	res := e.studio.systemGetVCAByID(s, &id, &v)

	return v, res
}

func (e *Engine) StudioSystemParameterByName(s native.StudioSystem, name string) (value, final float32, res native.Result) {
	res = e.studio.systemGetParameterByName(s, name, &value, &final)
	return value, final, res
}

func (e *Engine) StudioSystemSetParameterByName(s native.StudioSystem, name string, value float32, ignoreSeekSpeed bool) native.Result {
	return e.studio.systemSetParameterByName(s, name, value, cbool(ignoreSeekSpeed))
}

func (e *Engine) StudioSystemSetNumListeners(s native.StudioSystem, n int) native.Result {
	return e.studio.systemSetNumListeners(s, int32(n))
}

func (e *Engine) StudioSystemNumListeners(s native.StudioSystem) (int, native.Result) {
	var n int32
	res := e.studio.systemGetNumListeners(s, &n)

	return int(n), res
}

func (e *Engine) StudioSystemSetListenerAttributes(s native.StudioSystem, listener int, attrs native.Attributes3D) native.Result {
	return e.studio.systemSetListenerAttributes(s, int32(listener), &attrs, nil)
}

func (e *Engine) StudioSystemListenerAttributes(s native.StudioSystem, listener int) (native.Attributes3D, native.Result) {
	var a native.Attributes3D
	res := e.studio.systemGetListenerAttributes(s, int32(listener), &a, nil)

	return a, res
}

func (e *Engine) BankUnload(b native.Bank) native.Result {
	return e.studio.bankUnload(b)
}

func (e *Engine) BankLoadSampleData(b native.Bank) native.Result {
	return e.studio.bankLoadSampleData(b)
}

func (e *Engine) BankUnloadSampleData(b native.Bank) native.Result {
	return e.studio.bankUnloadSampleData(b)
}

func (e *Engine) BankLoadingState(b native.Bank) (native.LoadingState, native.Result) {
	var state native.LoadingState
	res := e.studio.bankGetLoadingState(b, &state)

	return state, res
}

func (e *Engine) BankPath(b native.Bank) (string, native.Result) {
	return readPath(func(path *byte, size int32, retrieved *int32) native.Result {
		return e.studio.bankGetPath(b, path, size, retrieved)
	})
}

func (e *Engine) BankEventList(b native.Bank) ([]native.EventDescription, native.Result) {
	return readList(
		func(n *int32) native.Result { return e.studio.bankGetEventCount(b, n) },
		func(first *native.EventDescription, capacity int32, n *int32) native.Result {
			return e.studio.bankGetEventList(b, first, capacity, n)
		},
	)
}

func (e *Engine) BankSetUserData(b native.Bank, data uintptr) native.Result {
	return e.studio.bankSetUserData(b, data)
}

func (e *Engine) BankUserData(b native.Bank) (uintptr, native.Result) {
	var data uintptr
	res := e.studio.bankGetUserData(b, &data)

	return data, res
}

func (e *Engine) EventDescriptionCreateInstance(d native.EventDescription) (native.EventInstance, native.Result) {
	var i native.EventInstance
	res := e.studio.eventCreateInstance(d, &i)

	return i, res
}

func (e *Engine) EventDescriptionInstanceCount(d native.EventDescription) (int, native.Result) {
	var n int32
	res := e.studio.eventGetInstanceCount(d, &n)

	return int(n), res
}

func (e *Engine) EventDescriptionInstanceList(d native.EventDescription) ([]native.EventInstance, native.Result) {
	return readList(
		func(n *int32) native.Result { return e.studio.eventGetInstanceCount(d, n) },
		func(first *native.EventInstance, capacity int32, n *int32) native.Result {
			return e.studio.eventGetInstanceList(d, first, capacity, n)
		},
	)
}

func (e *Engine) eventFlag(d native.EventDescription, get func(native.EventDescription, *int32) native.Result) (bool, native.Result) {
	var v int32
	res := get(d, &v)

	return v != 0, res
}

func (e *Engine) EventDescriptionIs3D(d native.EventDescription) (bool, native.Result) {
	return e.eventFlag(d, e.studio.eventIs3D)
}

func (e *Engine) EventDescriptionIsOneshot(d native.EventDescription) (bool, native.Result) {
	return e.eventFlag(d, e.studio.eventIsOneshot)
}

func (e *Engine) EventDescriptionIsSnapshot(d native.EventDescription) (bool, native.Result) {
	return e.eventFlag(d, e.studio.eventIsSnapshot)
}

func (e *Engine) EventDescriptionLength(d native.EventDescription) (int, native.Result) {
	var ms int32
	res := e.studio.eventGetLength(d, &ms)

	return int(ms), res
}

func (e *Engine) EventDescriptionPath(d native.EventDescription) (string, native.Result) {
	return readPath(func(path *byte, size int32, retrieved *int32) native.Result {
		return e.studio.eventGetPath(d, path, size, retrieved)
	})
}

func (e *Engine) EventDescriptionID(d native.EventDescription) (native.GUID, native.Result) {
	var id native.GUID
	res := e.studio.eventGetID(d, &id)

	return id, res
}

func (e *Engine) EventDescriptionParameterByName(d native.EventDescription, name string) (native.ParameterDescription, native.Result) {
	var p parameterDescription
	if res := e.studio.eventGetParameterDescriptionByName(d, name, &p); res != native.OK {
		return native.ParameterDescription{}, res
	}

	return native.ParameterDescription{
		Name:    goString(p.name),
		Minimum: p.minimum,
		Maximum: p.maximum,
		Default: p.defValue,
	}, native.OK
}

func (e *Engine) EventDescriptionLoadSampleData(d native.EventDescription) native.Result {
	return e.studio.eventLoadSampleData(d)
}

func (e *Engine) EventDescriptionUnloadSampleData(d native.EventDescription) native.Result {
	return e.studio.eventUnloadSampleData(d)
}

func (e *Engine) EventDescriptionReleaseAllInstances(d native.EventDescription) native.Result {
	return e.studio.eventReleaseAllInstances(d)
}

func (e *Engine) EventDescriptionSetUserData(d native.EventDescription, data uintptr) native.Result {
	return e.studio.eventSetUserData(d, data)
}

func (e *Engine) EventDescriptionUserData(d native.EventDescription) (uintptr, native.Result) {
	var data uintptr
	res := e.studio.eventGetUserData(d, &data)

	return data, res
}

func (e *Engine) EventInstanceStart(i native.EventInstance) native.Result {
	return e.studio.instanceStart(i)
}

func (e *Engine) EventInstanceStop(i native.EventInstance, mode native.StopMode) native.Result {
	return e.studio.instanceStop(i, mode)
}

func (e *Engine) EventInstanceRelease(i native.EventInstance) native.Result {
	return e.studio.instanceRelease(i)
}

func (e *Engine) EventInstanceKeyOff(i native.EventInstance) native.Result {
	return e.studio.instanceKeyOff(i)
}

func (e *Engine) EventInstancePlaybackState(i native.EventInstance) (native.PlaybackState, native.Result) {
	var state native.PlaybackState
	res := e.studio.instanceGetPlaybackState(i, &state)

	return state, res
}

func (e *Engine) EventInstanceSetPaused(i native.EventInstance, paused bool) native.Result {
	return e.studio.instanceSetPaused(i, cbool(paused))
}

func (e *Engine) EventInstancePaused(i native.EventInstance) (bool, native.Result) {
	var v int32
	res := e.studio.instanceGetPaused(i, &v)

	return v != 0, res
}

func (e *Engine) EventInstanceSetVolume(i native.EventInstance, volume float32) native.Result {
	return e.studio.instanceSetVolume(i, volume)
}

func (e *Engine) EventInstanceVolume(i native.EventInstance) (volume, final float32, res native.Result) {
	res = e.studio.instanceGetVolume(i, &volume, &final)
	return volume, final, res
}

func (e *Engine) EventInstanceSetPitch(i native.EventInstance, pitch float32) native.Result {
	return e.studio.instanceSetPitch(i, pitch)
}

func (e *Engine) EventInstancePitch(i native.EventInstance) (pitch, final float32, res native.Result) {
	res = e.studio.instanceGetPitch(i, &pitch, &final)
	return pitch, final, res
}

func (e *Engine) EventInstanceSet3DAttributes(i native.EventInstance, attrs native.Attributes3D) native.Result {
	return e.studio.instanceSet3DAttributes(i, &attrs)
}

func (e *Engine) EventInstance3DAttributes(i native.EventInstance) (native.Attributes3D, native.Result) {
	var a native.Attributes3D
	res := e.studio.instanceGet3DAttributes(i, &a)

	return a, res
}

func (e *Engine) EventInstanceSetTimelinePosition(i native.EventInstance, ms int) native.Result {
	return e.studio.instanceSetTimelinePosition(i, int32(ms))
}

func (e *Engine) EventInstanceTimelinePosition(i native.EventInstance) (int, native.Result) {
	var ms int32
	res := e.studio.instanceGetTimelinePosition(i, &ms)

	return int(ms), res
}

func (e *Engine) EventInstanceSetParameterByName(i native.EventInstance, name string, value float32, ignoreSeekSpeed bool) native.Result {
	return e.studio.instanceSetParameterByName(i, name, value, cbool(ignoreSeekSpeed))
}

func (e *Engine) EventInstanceParameterByName(i native.EventInstance, name string) (value, final float32, res native.Result) {
	res = e.studio.instanceGetParameterByName(i, name, &value, &final)
	return value, final, res
}

func (e *Engine) EventInstanceDescription(i native.EventInstance) (native.EventDescription, native.Result) {
	var d native.EventDescription
	res := e.studio.instanceGetDescription(i, &d)

	return d, res
}

// EventInstanceSetCallback replaces the callback of i. A nil cb clears it.
func (e *Engine) EventInstanceSetCallback(i native.EventInstance, cb native.EventCallback, mask native.EventCallbackType) native.Result {
	setCallback(i, cb)

	var fn uintptr
	if cb != nil {
		fn = trampoline()
	}

	res := e.studio.instanceSetCallback(i, fn, mask)
	if res != native.OK {
		setCallback(i, nil)
	}

	return res
}

func (e *Engine) EventInstanceSetUserData(i native.EventInstance, data uintptr) native.Result {
	return e.studio.instanceSetUserData(i, data)
}

func (e *Engine) EventInstanceUserData(i native.EventInstance) (uintptr, native.Result) {
	var data uintptr
	res := e.studio.instanceGetUserData(i, &data)

	return data, res
}

func (e *Engine) BusSetVolume(b native.Bus, volume float32) native.Result {
	return e.studio.busSetVolume(b, volume)
}

func (e *Engine) BusVolume(b native.Bus) (volume, final float32, res native.Result) {
	res = e.studio.busGetVolume(b, &volume, &final)
	return volume, final, res
}

func (e *Engine) BusSetPaused(b native.Bus, paused bool) native.Result {
	return e.studio.busSetPaused(b, cbool(paused))
}

func (e *Engine) BusPaused(b native.Bus) (bool, native.Result) {
	var v int32
	res := e.studio.busGetPaused(b, &v)

	return v != 0, res
}

func (e *Engine) BusSetMute(b native.Bus, mute bool) native.Result {
	return e.studio.busSetMute(b, cbool(mute))
}

func (e *Engine) BusMute(b native.Bus) (bool, native.Result) {
	var v int32
	res := e.studio.busGetMute(b, &v)

	return v != 0, res
}

func (e *Engine) BusStopAllEvents(b native.Bus, mode native.StopMode) native.Result {
	return e.studio.busStopAllEvents(b, mode)
}

func (e *Engine) BusLockChannelGroup(b native.Bus) native.Result {
	return e.studio.busLockChannelGroup(b)
}

func (e *Engine) BusUnlockChannelGroup(b native.Bus) native.Result {
	return e.studio.busUnlockChannelGroup(b)
}

func (e *Engine) BusChannelGroup(b native.Bus) (native.ChannelGroup, native.Result) {
	var g native.ChannelGroup
	res := e.studio.busGetChannelGroup(b, &g)

	return g, res
}

func (e *Engine) BusPath(b native.Bus) (string, native.Result) {
	return readPath(func(path *byte, size int32, retrieved *int32) native.Result {
		return e.studio.busGetPath(b, path, size, retrieved)
	})
}

func (e *Engine) BusID(b native.Bus) (native.GUID, native.Result) {
	var id native.GUID
	res := e.studio.busGetID(b, &id)

	return id, res
}

func (e *Engine) VCASetVolume(v native.VCA, volume float32) native.Result {
	return e.studio.vcaSetVolume(v, volume)
}

func (e *Engine) VCAVolume(v native.VCA) (volume, final float32, res native.Result) {
	res = e.studio.vcaGetVolume(v, &volume, &final)
	return volume, final, res
}

func (e *Engine) VCAPath(v native.VCA) (string, native.Result) {
	return readPath(func(path *byte, size int32, retrieved *int32) native.Result {
		return e.studio.vcaGetPath(v, path, size, retrieved)
	})
}

func (e *Engine) VCAID(v native.VCA) (native.GUID, native.Result) {
	var id native.GUID
	res := e.studio.vcaGetID(v, &id)

	return id, res
}

