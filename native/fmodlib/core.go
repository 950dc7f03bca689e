// SPDX-License-Identifier: EPL-2.0

//go:build darwin || freebsd || linux || windows

package fmodlib

import (
	"github.com/ik5/foxaudio/native"
)

func (e *Engine) SystemCreate() (native.System, native.Result) {
	var sys native.System
	res := e.core.systemCreate(&sys, headerVersion)

	return sys, res
}

func (e *Engine) SystemInit(sys native.System, maxChannels int, flags native.InitFlags) native.Result {
	return e.core.systemInit(sys, int32(maxChannels), flags, 0)
}

func (e *Engine) SystemRelease(sys native.System) native.Result {
	return e.core.systemRelease(sys)
}

func (e *Engine) SystemUpdate(sys native.System) native.Result {
	return e.core.systemUpdate(sys)
}

func (e *Engine) SystemSetDSPBufferSize(sys native.System, length uint32, count int) native.Result {
	return e.core.systemSetDSPBufferSize(sys, length, int32(count))
}

// SystemCreateSound treats data as the file contents when mode opens
// memory and as a file name otherwise.
func (e *Engine) SystemCreateSound(sys native.System, data []byte, mode native.Mode) (native.Sound, native.Result) {
	if len(data) == 0 {
		return 0, native.ErrInvalidParam
	}

	var (
		snd  native.Sound
		info *createSoundExInfo
	)
	if mode.Has(native.ModeOpenMemory) || mode.Has(native.ModeOpenMemoryPoint) {
		if !fits(int64(len(data)), maxSoundLength) {
			return 0, native.ErrInvalidParam
		}
		info = newCreateSoundExInfo(len(data))
	} else {
		data = append(data[:len(data):len(data)], 0)
	}

	res := e.core.systemCreateSound(sys, &data[0], mode, info, &snd)
	return snd, res
}

func (e *Engine) SystemPlaySound(sys native.System, snd native.Sound, group native.ChannelGroup, paused bool) (native.Channel, native.Result) {
	var ch native.Channel
	res := e.core.systemPlaySound(sys, snd, group, cbool(paused), &ch)

	return ch, res
}

func (e *Engine) SystemMasterChannelGroup(sys native.System) (native.ChannelGroup, native.Result) {
	var g native.ChannelGroup
	res := e.core.systemGetMasterChannelGroup(sys, &g)

	return g, res
}

func (e *Engine) SystemCreateChannelGroup(sys native.System, name string) (native.ChannelGroup, native.Result) {
	var g native.ChannelGroup
	res := e.core.systemCreateChannelGroup(sys, name, &g)

	return g, res
}

func (e *Engine) SystemSet3DNumListeners(sys native.System, n int) native.Result {
	return e.core.systemSet3DNumListeners(sys, int32(n))
}

func (e *Engine) System3DNumListeners(sys native.System) (int, native.Result) {
	var n int32
	res := e.core.systemGet3DNumListeners(sys, &n)

	return int(n), res
}

func (e *Engine) SystemSet3DListenerAttributes(sys native.System, listener int, attrs native.Attributes3D) native.Result {
	return e.core.systemSet3DListenerAttributes(sys, int32(listener),
		&attrs.Position, &attrs.Velocity, &attrs.Forward, &attrs.Up)
}

func (e *Engine) System3DListenerAttributes(sys native.System, listener int) (native.Attributes3D, native.Result) {
	var a native.Attributes3D
	res := e.core.systemGet3DListenerAttributes(sys, int32(listener),
		&a.Position, &a.Velocity, &a.Forward, &a.Up)

	return a, res
}

func (e *Engine) SoundRelease(snd native.Sound) native.Result {
	return e.core.soundRelease(snd)
}

func (e *Engine) SoundLength(snd native.Sound, unit native.TimeUnit) (uint32, native.Result) {
	var n uint32
	res := e.core.soundGetLength(snd, &n, unit)

	return n, res
}

func (e *Engine) SoundSetMode(snd native.Sound, mode native.Mode) native.Result {
	return e.core.soundSetMode(snd, mode)
}

func (e *Engine) SoundMode(snd native.Sound) (native.Mode, native.Result) {
	var mode native.Mode
	res := e.core.soundGetMode(snd, &mode)

	return mode, res
}

func (e *Engine) SoundSetLoopCount(snd native.Sound, loops int) native.Result {
	return e.core.soundSetLoopCount(snd, int32(loops))
}

func (e *Engine) SoundLoopCount(snd native.Sound) (int, native.Result) {
	var n int32
	res := e.core.soundGetLoopCount(snd, &n)

	return int(n), res
}

func (e *Engine) SoundSetUserData(snd native.Sound, data uintptr) native.Result {
	return e.core.soundSetUserData(snd, data)
}

func (e *Engine) SoundUserData(snd native.Sound) (uintptr, native.Result) {
	var data uintptr
	res := e.core.soundGetUserData(snd, &data)

	return data, res
}

func (e *Engine) ChannelIsPlaying(ch native.Channel) (bool, native.Result) {
	var v int32
	res := e.core.channelIsPlaying(ch, &v)

	return v != 0, res
}

func (e *Engine) ChannelStop(ch native.Channel) native.Result {
	return e.core.channelStop(ch)
}

func (e *Engine) ChannelSetPaused(ch native.Channel, paused bool) native.Result {
	return e.core.channelSetPaused(ch, cbool(paused))
}

func (e *Engine) ChannelPaused(ch native.Channel) (bool, native.Result) {
	var v int32
	res := e.core.channelGetPaused(ch, &v)

	return v != 0, res
}

func (e *Engine) ChannelSetVolume(ch native.Channel, volume float32) native.Result {
	return e.core.channelSetVolume(ch, volume)
}

func (e *Engine) ChannelVolume(ch native.Channel) (float32, native.Result) {
	var v float32
	res := e.core.channelGetVolume(ch, &v)

	return v, res
}

func (e *Engine) ChannelSetPitch(ch native.Channel, pitch float32) native.Result {
	return e.core.channelSetPitch(ch, pitch)
}

func (e *Engine) ChannelPitch(ch native.Channel) (float32, native.Result) {
	var v float32
	res := e.core.channelGetPitch(ch, &v)

	return v, res
}

func (e *Engine) ChannelSetLowPassGain(ch native.Channel, gain float32) native.Result {
	return e.core.channelSetLowPassGain(ch, gain)
}

func (e *Engine) ChannelLowPassGain(ch native.Channel) (float32, native.Result) {
	var v float32
	res := e.core.channelGetLowPassGain(ch, &v)

	return v, res
}

func (e *Engine) ChannelSetMode(ch native.Channel, mode native.Mode) native.Result {
	return e.core.channelSetMode(ch, mode)
}

func (e *Engine) ChannelMode(ch native.Channel) (native.Mode, native.Result) {
	var mode native.Mode
	res := e.core.channelGetMode(ch, &mode)

	return mode, res
}

func (e *Engine) ChannelSetLoopCount(ch native.Channel, loops int) native.Result {
	return e.core.channelSetLoopCount(ch, int32(loops))
}

func (e *Engine) ChannelLoopCount(ch native.Channel) (int, native.Result) {
	var n int32
	res := e.core.channelGetLoopCount(ch, &n)

	return int(n), res
}

func (e *Engine) ChannelSetPosition(ch native.Channel, pos uint32, unit native.TimeUnit) native.Result {
	return e.core.channelSetPosition(ch, pos, unit)
}

func (e *Engine) ChannelPosition(ch native.Channel, unit native.TimeUnit) (uint32, native.Result) {
	var pos uint32
	res := e.core.channelGetPosition(ch, &pos, unit)

	return pos, res
}

func (e *Engine) ChannelSet3DAttributes(ch native.Channel, pos, vel native.Vector) native.Result {
	return e.core.channelSet3DAttributes(ch, &pos, &vel)
}

func (e *Engine) Channel3DAttributes(ch native.Channel) (pos, vel native.Vector, res native.Result) {
	res = e.core.channelGet3DAttributes(ch, &pos, &vel)
	return pos, vel, res
}

func (e *Engine) ChannelSet3DMinMaxDistance(ch native.Channel, minDistance, maxDistance float32) native.Result {
	return e.core.channelSet3DMinMaxDistance(ch, minDistance, maxDistance)
}

func (e *Engine) Channel3DMinMaxDistance(ch native.Channel) (minDistance, maxDistance float32, res native.Result) {
	res = e.core.channelGet3DMinMaxDistance(ch, &minDistance, &maxDistance)
	return minDistance, maxDistance, res
}

func (e *Engine) ChannelCurrentSound(ch native.Channel) (native.Sound, native.Result) {
	var snd native.Sound
	res := e.core.channelGetCurrentSound(ch, &snd)

	return snd, res
}

func (e *Engine) ChannelGroupRelease(g native.ChannelGroup) native.Result {
	return e.core.groupRelease(g)
}

func (e *Engine) ChannelGroupStop(g native.ChannelGroup) native.Result {
	return e.core.groupStop(g)
}

func (e *Engine) ChannelGroupIsPlaying(g native.ChannelGroup) (bool, native.Result) {
	var v int32
	res := e.core.groupIsPlaying(g, &v)

	return v != 0, res
}

func (e *Engine) ChannelGroupSetVolume(g native.ChannelGroup, volume float32) native.Result {
	return e.core.groupSetVolume(g, volume)
}

func (e *Engine) ChannelGroupVolume(g native.ChannelGroup) (float32, native.Result) {
	var v float32
	res := e.core.groupGetVolume(g, &v)

	return v, res
}

func (e *Engine) ChannelGroupSetPitch(g native.ChannelGroup, pitch float32) native.Result {
	return e.core.groupSetPitch(g, pitch)
}

func (e *Engine) ChannelGroupPitch(g native.ChannelGroup) (float32, native.Result) {
	var v float32
	res := e.core.groupGetPitch(g, &v)

	return v, res
}

func (e *Engine) ChannelGroupSetPaused(g native.ChannelGroup, paused bool) native.Result {
	return e.core.groupSetPaused(g, cbool(paused))
}

func (e *Engine) ChannelGroupPaused(g native.ChannelGroup) (bool, native.Result) {
	var v int32
	res := e.core.groupGetPaused(g, &v)

	return v != 0, res
}

func (e *Engine) ChannelGroupSetMute(g native.ChannelGroup, mute bool) native.Result {
	return e.core.groupSetMute(g, cbool(mute))
}

func (e *Engine) ChannelGroupMute(g native.ChannelGroup) (bool, native.Result) {
	var v int32
	res := e.core.groupGetMute(g, &v)

	return v != 0, res
}

func (e *Engine) ChannelGroupNumChannels(g native.ChannelGroup) (int, native.Result) {
	var n int32
	res := e.core.groupGetNumChannels(g, &n)

	return int(n), res
}

func (e *Engine) ChannelGroupAddGroup(parent, child native.ChannelGroup) native.Result {
	return e.core.groupAddGroup(parent, child, 1, 0)
}

func (e *Engine) ChannelGroupSetUserData(g native.ChannelGroup, data uintptr) native.Result {
	return e.core.groupSetUserData(g, data)
}

func (e *Engine) ChannelGroupUserData(g native.ChannelGroup) (uintptr, native.Result) {
	var data uintptr
	res := e.core.groupGetUserData(g, &data)

	return data, res
}
