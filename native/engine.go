// SPDX-License-Identifier: EPL-2.0

package native

// Core is the low level engine: systems, sounds, channels and channel
// groups. Each method is one engine call; the Result is returned last and
// out values are only meaningful when it is OK.
type Core interface {
	SystemCreate() (System, Result)
	SystemInit(sys System, maxChannels int, flags InitFlags) Result
	SystemRelease(sys System) Result
	SystemUpdate(sys System) Result
	SystemSetDSPBufferSize(sys System, length uint32, count int) Result
	SystemCreateSound(sys System, data []byte, mode Mode) (Sound, Result)
	SystemPlaySound(sys System, snd Sound, group ChannelGroup, paused bool) (Channel, Result)
	SystemMasterChannelGroup(sys System) (ChannelGroup, Result)
	SystemCreateChannelGroup(sys System, name string) (ChannelGroup, Result)
	SystemSet3DNumListeners(sys System, n int) Result
	System3DNumListeners(sys System) (int, Result)
	SystemSet3DListenerAttributes(sys System, listener int, attrs Attributes3D) Result
	System3DListenerAttributes(sys System, listener int) (Attributes3D, Result)

	SoundRelease(snd Sound) Result
	SoundLength(snd Sound, unit TimeUnit) (uint32, Result)
	SoundSetMode(snd Sound, mode Mode) Result
	SoundMode(snd Sound) (Mode, Result)
	SoundSetLoopCount(snd Sound, loops int) Result
	SoundLoopCount(snd Sound) (int, Result)
	SoundSetUserData(snd Sound, data uintptr) Result
	SoundUserData(snd Sound) (uintptr, Result)

	ChannelIsPlaying(ch Channel) (bool, Result)
	ChannelStop(ch Channel) Result
	ChannelSetPaused(ch Channel, paused bool) Result
	ChannelPaused(ch Channel) (bool, Result)
	ChannelSetVolume(ch Channel, volume float32) Result
	ChannelVolume(ch Channel) (float32, Result)
	ChannelSetPitch(ch Channel, pitch float32) Result
	ChannelPitch(ch Channel) (float32, Result)
	ChannelSetLowPassGain(ch Channel, gain float32) Result
	ChannelLowPassGain(ch Channel) (float32, Result)
	ChannelSetMode(ch Channel, mode Mode) Result
	ChannelMode(ch Channel) (Mode, Result)
	ChannelSetLoopCount(ch Channel, loops int) Result
	ChannelLoopCount(ch Channel) (int, Result)
	ChannelSetPosition(ch Channel, pos uint32, unit TimeUnit) Result
	ChannelPosition(ch Channel, unit TimeUnit) (uint32, Result)
	ChannelSet3DAttributes(ch Channel, pos, vel Vector) Result
	Channel3DAttributes(ch Channel) (pos, vel Vector, res Result)
	ChannelSet3DMinMaxDistance(ch Channel, minDistance, maxDistance float32) Result
	Channel3DMinMaxDistance(ch Channel) (minDistance, maxDistance float32, res Result)
	ChannelCurrentSound(ch Channel) (Sound, Result)

	ChannelGroupRelease(g ChannelGroup) Result
	ChannelGroupStop(g ChannelGroup) Result
	ChannelGroupIsPlaying(g ChannelGroup) (bool, Result)
	ChannelGroupSetVolume(g ChannelGroup, volume float32) Result
	ChannelGroupVolume(g ChannelGroup) (float32, Result)
	ChannelGroupSetPitch(g ChannelGroup, pitch float32) Result
	ChannelGroupPitch(g ChannelGroup) (float32, Result)
	ChannelGroupSetPaused(g ChannelGroup, paused bool) Result
	ChannelGroupPaused(g ChannelGroup) (bool, Result)
	ChannelGroupSetMute(g ChannelGroup, mute bool) Result
	ChannelGroupMute(g ChannelGroup) (bool, Result)
	ChannelGroupNumChannels(g ChannelGroup) (int, Result)
	ChannelGroupAddGroup(parent, child ChannelGroup) Result
	ChannelGroupSetUserData(g ChannelGroup, data uintptr) Result
	ChannelGroupUserData(g ChannelGroup) (uintptr, Result)
}

// Studio is the event layer built on top of a core system.
type Studio interface {
	StudioSystemCreate() (StudioSystem, Result)
	StudioSystemInitialize(s StudioSystem, maxChannels int, studioFlags StudioInitFlags, coreFlags InitFlags) Result
	StudioSystemRelease(s StudioSystem) Result
	StudioSystemUpdate(s StudioSystem) Result
	StudioSystemCoreSystem(s StudioSystem) (System, Result)
	StudioSystemLoadBankMemory(s StudioSystem, data []byte, mode LoadMemoryMode, flags LoadBankFlags) (Bank, Result)
	StudioSystemEvent(s StudioSystem, path string) (EventDescription, Result)
	StudioSystemEventByID(s StudioSystem, id GUID) (EventDescription, Result)
	StudioSystemBus(s StudioSystem, path string) (Bus, Result)
	StudioSystemBusByID(s StudioSystem, id GUID) (Bus, Result)
	StudioSystemVCA(s StudioSystem, path string) (VCA, Result)
	StudioSystemVCAByID(s StudioSystem, id GUID) (VCA, Result)
	StudioSystemParameterByName(s StudioSystem, name string) (value, final float32, res Result)
	StudioSystemSetParameterByName(s StudioSystem, name string, value float32, ignoreSeekSpeed bool) Result
	StudioSystemSetNumListeners(s StudioSystem, n int) Result
	StudioSystemNumListeners(s StudioSystem) (int, Result)
	StudioSystemSetListenerAttributes(s StudioSystem, listener int, attrs Attributes3D) Result
	StudioSystemListenerAttributes(s StudioSystem, listener int) (Attributes3D, Result)

	BankUnload(b Bank) Result
	BankLoadSampleData(b Bank) Result
	BankUnloadSampleData(b Bank) Result
	BankLoadingState(b Bank) (LoadingState, Result)
	BankPath(b Bank) (string, Result)
	BankEventList(b Bank) ([]EventDescription, Result)
	BankSetUserData(b Bank, data uintptr) Result
	BankUserData(b Bank) (uintptr, Result)

	EventDescriptionCreateInstance(d EventDescription) (EventInstance, Result)
	EventDescriptionInstanceCount(d EventDescription) (int, Result)
	EventDescriptionInstanceList(d EventDescription) ([]EventInstance, Result)
	EventDescriptionIs3D(d EventDescription) (bool, Result)
	EventDescriptionIsOneshot(d EventDescription) (bool, Result)
	EventDescriptionIsSnapshot(d EventDescription) (bool, Result)
	EventDescriptionLength(d EventDescription) (int, Result)
	EventDescriptionPath(d EventDescription) (string, Result)
	EventDescriptionID(d EventDescription) (GUID, Result)
	EventDescriptionParameterByName(d EventDescription, name string) (ParameterDescription, Result)
	EventDescriptionLoadSampleData(d EventDescription) Result
	EventDescriptionUnloadSampleData(d EventDescription) Result
	EventDescriptionReleaseAllInstances(d EventDescription) Result
	EventDescriptionSetUserData(d EventDescription, data uintptr) Result
	EventDescriptionUserData(d EventDescription) (uintptr, Result)

	EventInstanceStart(i EventInstance) Result
	EventInstanceStop(i EventInstance, mode StopMode) Result
	EventInstanceRelease(i EventInstance) Result
	EventInstanceKeyOff(i EventInstance) Result
	EventInstancePlaybackState(i EventInstance) (PlaybackState, Result)
	EventInstanceSetPaused(i EventInstance, paused bool) Result
	EventInstancePaused(i EventInstance) (bool, Result)
	EventInstanceSetVolume(i EventInstance, volume float32) Result
	EventInstanceVolume(i EventInstance) (volume, final float32, res Result)
	EventInstanceSetPitch(i EventInstance, pitch float32) Result
	EventInstancePitch(i EventInstance) (pitch, final float32, res Result)
	EventInstanceSet3DAttributes(i EventInstance, attrs Attributes3D) Result
	EventInstance3DAttributes(i EventInstance) (Attributes3D, Result)
	EventInstanceSetTimelinePosition(i EventInstance, ms int) Result
	EventInstanceTimelinePosition(i EventInstance) (int, Result)
	EventInstanceSetParameterByName(i EventInstance, name string, value float32, ignoreSeekSpeed bool) Result
	EventInstanceParameterByName(i EventInstance, name string) (value, final float32, res Result)
	EventInstanceDescription(i EventInstance) (EventDescription, Result)
	EventInstanceSetCallback(i EventInstance, cb EventCallback, mask EventCallbackType) Result
	EventInstanceSetUserData(i EventInstance, data uintptr) Result
	EventInstanceUserData(i EventInstance) (uintptr, Result)

	BusSetVolume(b Bus, volume float32) Result
	BusVolume(b Bus) (volume, final float32, res Result)
	BusSetPaused(b Bus, paused bool) Result
	BusPaused(b Bus) (bool, Result)
	BusSetMute(b Bus, mute bool) Result
	BusMute(b Bus) (bool, Result)
	BusStopAllEvents(b Bus, mode StopMode) Result
	BusLockChannelGroup(b Bus) Result
	BusUnlockChannelGroup(b Bus) Result
	BusChannelGroup(b Bus) (ChannelGroup, Result)
	BusPath(b Bus) (string, Result)
	BusID(b Bus) (GUID, Result)

	VCASetVolume(v VCA, volume float32) Result
	VCAVolume(v VCA) (volume, final float32, res Result)
	VCAPath(v VCA) (string, Result)
	VCAID(v VCA) (GUID, Result)
}

// Engine is a complete native engine. Implementations bound in core only
// mode answer every Studio call with ErrStudioUninitialized.
type Engine interface {
	Core
	Studio
}
