// SPDX-License-Identifier: EPL-2.0

//go:build darwin || freebsd || linux || windows

package fmodlib

import "github.com/ik5/foxaudio/native"

// binding ties an exported C function to the Go function variable purego
// fills in for it.
type binding struct {
	symbol string
	fn     any
}

// coreFuncs are the FMOD Core functions. FMOD_BOOL values travel as int32.
type coreFuncs struct {
	systemCreate                  func(sys *native.System, version uint32) native.Result
	systemInit                    func(sys native.System, maxChannels int32, flags native.InitFlags, extra uintptr) native.Result
	systemRelease                 func(sys native.System) native.Result
	systemUpdate                  func(sys native.System) native.Result
	systemSetDSPBufferSize        func(sys native.System, length uint32, count int32) native.Result
	systemCreateSound             func(sys native.System, data *byte, mode native.Mode, exinfo *createSoundExInfo, snd *native.Sound) native.Result
	systemPlaySound               func(sys native.System, snd native.Sound, g native.ChannelGroup, paused int32, ch *native.Channel) native.Result
	systemGetMasterChannelGroup   func(sys native.System, g *native.ChannelGroup) native.Result
	systemCreateChannelGroup      func(sys native.System, name string, g *native.ChannelGroup) native.Result
	systemSet3DNumListeners       func(sys native.System, n int32) native.Result
	systemGet3DNumListeners       func(sys native.System, n *int32) native.Result
	systemSet3DListenerAttributes func(sys native.System, listener int32, pos, vel, forward, up *native.Vector) native.Result
	systemGet3DListenerAttributes func(sys native.System, listener int32, pos, vel, forward, up *native.Vector) native.Result

	soundRelease      func(snd native.Sound) native.Result
	soundGetLength    func(snd native.Sound, length *uint32, unit native.TimeUnit) native.Result
	soundSetMode      func(snd native.Sound, mode native.Mode) native.Result
	soundGetMode      func(snd native.Sound, mode *native.Mode) native.Result
	soundSetLoopCount func(snd native.Sound, loops int32) native.Result
	soundGetLoopCount func(snd native.Sound, loops *int32) native.Result
	soundSetUserData  func(snd native.Sound, data uintptr) native.Result
	soundGetUserData  func(snd native.Sound, data *uintptr) native.Result

	channelIsPlaying           func(ch native.Channel, playing *int32) native.Result
	channelStop                func(ch native.Channel) native.Result
	channelSetPaused           func(ch native.Channel, paused int32) native.Result
	channelGetPaused           func(ch native.Channel, paused *int32) native.Result
	channelSetVolume           func(ch native.Channel, volume float32) native.Result
	channelGetVolume           func(ch native.Channel, volume *float32) native.Result
	channelSetPitch            func(ch native.Channel, pitch float32) native.Result
	channelGetPitch            func(ch native.Channel, pitch *float32) native.Result
	channelSetLowPassGain      func(ch native.Channel, gain float32) native.Result
	channelGetLowPassGain      func(ch native.Channel, gain *float32) native.Result
	channelSetMode             func(ch native.Channel, mode native.Mode) native.Result
	channelGetMode             func(ch native.Channel, mode *native.Mode) native.Result
	channelSetLoopCount        func(ch native.Channel, loops int32) native.Result
	channelGetLoopCount        func(ch native.Channel, loops *int32) native.Result
	channelSetPosition         func(ch native.Channel, pos uint32, unit native.TimeUnit) native.Result
	channelGetPosition         func(ch native.Channel, pos *uint32, unit native.TimeUnit) native.Result
	channelSet3DAttributes     func(ch native.Channel, pos, vel *native.Vector) native.Result
	channelGet3DAttributes     func(ch native.Channel, pos, vel *native.Vector) native.Result
	channelSet3DMinMaxDistance func(ch native.Channel, minDistance, maxDistance float32) native.Result
	channelGet3DMinMaxDistance func(ch native.Channel, minDistance, maxDistance *float32) native.Result
	channelGetCurrentSound     func(ch native.Channel, snd *native.Sound) native.Result

	groupRelease        func(g native.ChannelGroup) native.Result
	groupStop           func(g native.ChannelGroup) native.Result
	groupIsPlaying      func(g native.ChannelGroup, playing *int32) native.Result
	groupSetVolume      func(g native.ChannelGroup, volume float32) native.Result
	groupGetVolume      func(g native.ChannelGroup, volume *float32) native.Result
	groupSetPitch       func(g native.ChannelGroup, pitch float32) native.Result
	groupGetPitch       func(g native.ChannelGroup, pitch *float32) native.Result
	groupSetPaused      func(g native.ChannelGroup, paused int32) native.Result
	groupGetPaused      func(g native.ChannelGroup, paused *int32) native.Result
	groupSetMute        func(g native.ChannelGroup, mute int32) native.Result
	groupGetMute        func(g native.ChannelGroup, mute *int32) native.Result
	groupGetNumChannels func(g native.ChannelGroup, n *int32) native.Result
	groupAddGroup       func(parent, child native.ChannelGroup, propagateDSPClock int32, conn uintptr) native.Result
	groupSetUserData    func(g native.ChannelGroup, data uintptr) native.Result
	groupGetUserData    func(g native.ChannelGroup, data *uintptr) native.Result
}

func (c *coreFuncs) bindings() []binding {
	return []binding{
		{"FMOD_System_Create", &c.systemCreate},
		{"FMOD_System_Init", &c.systemInit},
		{"FMOD_System_Release", &c.systemRelease},
		{"FMOD_System_Update", &c.systemUpdate},
		{"FMOD_System_SetDSPBufferSize", &c.systemSetDSPBufferSize},
		{"FMOD_System_CreateSound", &c.systemCreateSound},
		{"FMOD_System_PlaySound", &c.systemPlaySound},
		{"FMOD_System_GetMasterChannelGroup", &c.systemGetMasterChannelGroup},
		{"FMOD_System_CreateChannelGroup", &c.systemCreateChannelGroup},
		{"FMOD_System_Set3DNumListeners", &c.systemSet3DNumListeners},
		{"FMOD_System_Get3DNumListeners", &c.systemGet3DNumListeners},
		{"FMOD_System_Set3DListenerAttributes", &c.systemSet3DListenerAttributes},
		{"FMOD_System_Get3DListenerAttributes", &c.systemGet3DListenerAttributes},
		{"FMOD_Sound_Release", &c.soundRelease},
		{"FMOD_Sound_GetLength", &c.soundGetLength},
		{"FMOD_Sound_SetMode", &c.soundSetMode},
		{"FMOD_Sound_GetMode", &c.soundGetMode},
		{"FMOD_Sound_SetLoopCount", &c.soundSetLoopCount},
		{"FMOD_Sound_GetLoopCount", &c.soundGetLoopCount},
		{"FMOD_Sound_SetUserData", &c.soundSetUserData},
		{"FMOD_Sound_GetUserData", &c.soundGetUserData},
		{"FMOD_Channel_IsPlaying", &c.channelIsPlaying},
		{"FMOD_Channel_Stop", &c.channelStop},
		{"FMOD_Channel_SetPaused", &c.channelSetPaused},
		{"FMOD_Channel_GetPaused", &c.channelGetPaused},
		{"FMOD_Channel_SetVolume", &c.channelSetVolume},
		{"FMOD_Channel_GetVolume", &c.channelGetVolume},
		{"FMOD_Channel_SetPitch", &c.channelSetPitch},
		{"FMOD_Channel_GetPitch", &c.channelGetPitch},
		{"FMOD_Channel_SetLowPassGain", &c.channelSetLowPassGain},
		{"FMOD_Channel_GetLowPassGain", &c.channelGetLowPassGain},
		{"FMOD_Channel_SetMode", &c.channelSetMode},
		{"FMOD_Channel_GetMode", &c.channelGetMode},
		{"FMOD_Channel_SetLoopCount", &c.channelSetLoopCount},
		{"FMOD_Channel_GetLoopCount", &c.channelGetLoopCount},
		{"FMOD_Channel_SetPosition", &c.channelSetPosition},
		{"FMOD_Channel_GetPosition", &c.channelGetPosition},
		{"FMOD_Channel_Set3DAttributes", &c.channelSet3DAttributes},
		{"FMOD_Channel_Get3DAttributes", &c.channelGet3DAttributes},
		{"FMOD_Channel_Set3DMinMaxDistance", &c.channelSet3DMinMaxDistance},
		{"FMOD_Channel_Get3DMinMaxDistance", &c.channelGet3DMinMaxDistance},
		{"FMOD_Channel_GetCurrentSound", &c.channelGetCurrentSound},
		{"FMOD_ChannelGroup_Release", &c.groupRelease},
		{"FMOD_ChannelGroup_Stop", &c.groupStop},
		{"FMOD_ChannelGroup_IsPlaying", &c.groupIsPlaying},
		{"FMOD_ChannelGroup_SetVolume", &c.groupSetVolume},
		{"FMOD_ChannelGroup_GetVolume", &c.groupGetVolume},
		{"FMOD_ChannelGroup_SetPitch", &c.groupSetPitch},
		{"FMOD_ChannelGroup_GetPitch", &c.groupGetPitch},
		{"FMOD_ChannelGroup_SetPaused", &c.groupSetPaused},
		{"FMOD_ChannelGroup_GetPaused", &c.groupGetPaused},
		{"FMOD_ChannelGroup_SetMute", &c.groupSetMute},
		{"FMOD_ChannelGroup_GetMute", &c.groupGetMute},
		{"FMOD_ChannelGroup_GetNumChannels", &c.groupGetNumChannels},
		{"FMOD_ChannelGroup_AddGroup", &c.groupAddGroup},
		{"FMOD_ChannelGroup_SetUserData", &c.groupSetUserData},
		{"FMOD_ChannelGroup_GetUserData", &c.groupGetUserData},
	}
}

// studioFuncs are the FMOD Studio functions.
type studioFuncs struct {
	systemCreate                func(s *native.StudioSystem, version uint32) native.Result
	systemInitialize            func(s native.StudioSystem, maxChannels int32, studioFlags native.StudioInitFlags, flags native.InitFlags, extra uintptr) native.Result
	systemRelease               func(s native.StudioSystem) native.Result
	systemUpdate                func(s native.StudioSystem) native.Result
	systemGetCoreSystem         func(s native.StudioSystem, sys *native.System) native.Result
	systemLoadBankMemory        func(s native.StudioSystem, data *byte, length int32, mode native.LoadMemoryMode, flags native.LoadBankFlags, b *native.Bank) native.Result
	systemGetEvent              func(s native.StudioSystem, path string, d *native.EventDescription) native.Result
	systemGetEventByID          func(s native.StudioSystem, id *native.GUID, d *native.EventDescription) native.Result
	systemGetBus                func(s native.StudioSystem, path string, b *native.Bus) native.Result
	systemGetBusByID            func(s native.StudioSystem, id *native.GUID, b *native.Bus) native.Result
	systemGetVCA                func(s native.StudioSystem, path string, v *native.VCA) native.Result
	systemGetVCAByID            func(s native.StudioSystem, id *native.GUID, v *native.VCA) native.Result
	systemGetParameterByName    func(s native.StudioSystem, name string, value, final *float32) native.Result
	systemSetParameterByName    func(s native.StudioSystem, name string, value float32, ignoreSeekSpeed int32) native.Result
	systemSetNumListeners       func(s native.StudioSystem, n int32) native.Result
	systemGetNumListeners       func(s native.StudioSystem, n *int32) native.Result
	systemSetListenerAttributes func(s native.StudioSystem, listener int32, attrs *native.Attributes3D, attenuation *native.Vector) native.Result
	systemGetListenerAttributes func(s native.StudioSystem, listener int32, attrs *native.Attributes3D, attenuation *native.Vector) native.Result

	bankUnload           func(b native.Bank) native.Result
	bankLoadSampleData   func(b native.Bank) native.Result
	bankUnloadSampleData func(b native.Bank) native.Result
	bankGetLoadingState  func(b native.Bank, state *native.LoadingState) native.Result
	bankGetPath          func(b native.Bank, path *byte, size int32, retrieved *int32) native.Result
	bankGetEventCount    func(b native.Bank, n *int32) native.Result
	bankGetEventList     func(b native.Bank, list *native.EventDescription, capacity int32, n *int32) native.Result
	bankSetUserData      func(b native.Bank, data uintptr) native.Result
	bankGetUserData      func(b native.Bank, data *uintptr) native.Result

	eventCreateInstance                func(d native.EventDescription, i *native.EventInstance) native.Result
	eventGetInstanceCount              func(d native.EventDescription, n *int32) native.Result
	eventGetInstanceList               func(d native.EventDescription, list *native.EventInstance, capacity int32, n *int32) native.Result
	eventIs3D                          func(d native.EventDescription, v *int32) native.Result
	eventIsOneshot                     func(d native.EventDescription, v *int32) native.Result
	eventIsSnapshot                    func(d native.EventDescription, v *int32) native.Result
	eventGetLength                     func(d native.EventDescription, ms *int32) native.Result
	eventGetPath                       func(d native.EventDescription, path *byte, size int32, retrieved *int32) native.Result
	eventGetID                         func(d native.EventDescription, id *native.GUID) native.Result
	eventGetParameterDescriptionByName func(d native.EventDescription, name string, p *parameterDescription) native.Result
	eventLoadSampleData                func(d native.EventDescription) native.Result
	eventUnloadSampleData              func(d native.EventDescription) native.Result
	eventReleaseAllInstances           func(d native.EventDescription) native.Result
	eventSetUserData                   func(d native.EventDescription, data uintptr) native.Result
	eventGetUserData                   func(d native.EventDescription, data *uintptr) native.Result

	instanceStart               func(i native.EventInstance) native.Result
	instanceStop                func(i native.EventInstance, mode native.StopMode) native.Result
	instanceRelease             func(i native.EventInstance) native.Result
	instanceKeyOff              func(i native.EventInstance) native.Result
	instanceGetPlaybackState    func(i native.EventInstance, state *native.PlaybackState) native.Result
	instanceSetPaused           func(i native.EventInstance, paused int32) native.Result
	instanceGetPaused           func(i native.EventInstance, paused *int32) native.Result
	instanceSetVolume           func(i native.EventInstance, volume float32) native.Result
	instanceGetVolume           func(i native.EventInstance, volume, final *float32) native.Result
	instanceSetPitch            func(i native.EventInstance, pitch float32) native.Result
	instanceGetPitch            func(i native.EventInstance, pitch, final *float32) native.Result
	instanceSet3DAttributes     func(i native.EventInstance, attrs *native.Attributes3D) native.Result
	instanceGet3DAttributes     func(i native.EventInstance, attrs *native.Attributes3D) native.Result
	instanceSetTimelinePosition func(i native.EventInstance, ms int32) native.Result
	instanceGetTimelinePosition func(i native.EventInstance, ms *int32) native.Result
	instanceSetParameterByName  func(i native.EventInstance, name string, value float32, ignoreSeekSpeed int32) native.Result
	instanceGetParameterByName  func(i native.EventInstance, name string, value, final *float32) native.Result
	instanceGetDescription      func(i native.EventInstance, d *native.EventDescription) native.Result
	instanceSetCallback         func(i native.EventInstance, cb uintptr, mask native.EventCallbackType) native.Result
	instanceSetUserData         func(i native.EventInstance, data uintptr) native.Result
	instanceGetUserData         func(i native.EventInstance, data *uintptr) native.Result

	busSetVolume          func(b native.Bus, volume float32) native.Result
	busGetVolume          func(b native.Bus, volume, final *float32) native.Result
	busSetPaused          func(b native.Bus, paused int32) native.Result
	busGetPaused          func(b native.Bus, paused *int32) native.Result
	busSetMute            func(b native.Bus, mute int32) native.Result
	busGetMute            func(b native.Bus, mute *int32) native.Result
	busStopAllEvents      func(b native.Bus, mode native.StopMode) native.Result
	busLockChannelGroup   func(b native.Bus) native.Result
	busUnlockChannelGroup func(b native.Bus) native.Result
	busGetChannelGroup    func(b native.Bus, g *native.ChannelGroup) native.Result
	busGetPath            func(b native.Bus, path *byte, size int32, retrieved *int32) native.Result
	busGetID              func(b native.Bus, id *native.GUID) native.Result

	vcaSetVolume func(v native.VCA, volume float32) native.Result
	vcaGetVolume func(v native.VCA, volume, final *float32) native.Result
	vcaGetPath   func(v native.VCA, path *byte, size int32, retrieved *int32) native.Result
	vcaGetID     func(v native.VCA, id *native.GUID) native.Result
}

func (s *studioFuncs) bindings() []binding {
	return []binding{
		{"FMOD_Studio_System_Create", &s.systemCreate},
		{"FMOD_Studio_System_Initialize", &s.systemInitialize},
		{"FMOD_Studio_System_Release", &s.systemRelease},
		{"FMOD_Studio_System_Update", &s.systemUpdate},
		{"FMOD_Studio_System_GetCoreSystem", &s.systemGetCoreSystem},
		{"FMOD_Studio_System_LoadBankMemory", &s.systemLoadBankMemory},
		{"FMOD_Studio_System_GetEvent", &s.systemGetEvent},
		{"FMOD_Studio_System_GetEventByID", &s.systemGetEventByID},
		{"FMOD_Studio_System_GetBus", &s.systemGetBus},
		{"FMOD_Studio_System_GetBusByID", &s.systemGetBusByID},
		{"FMOD_Studio_System_GetVCA", &s.systemGetVCA},
		{"FMOD_Studio_System_GetVCAByID", &s.systemGetVCAByID},
		{"FMOD_Studio_System_GetParameterByName", &s.systemGetParameterByName},
		{"FMOD_Studio_System_SetParameterByName", &s.systemSetParameterByName},
		{"FMOD_Studio_System_SetNumListeners", &s.systemSetNumListeners},
		{"FMOD_Studio_System_GetNumListeners", &s.systemGetNumListeners},
		{"FMOD_Studio_System_SetListenerAttributes", &s.systemSetListenerAttributes},
		{"FMOD_Studio_System_GetListenerAttributes", &s.systemGetListenerAttributes},
		{"FMOD_Studio_Bank_Unload", &s.bankUnload},
		{"FMOD_Studio_Bank_LoadSampleData", &s.bankLoadSampleData},
		{"FMOD_Studio_Bank_UnloadSampleData", &s.bankUnloadSampleData},
		{"FMOD_Studio_Bank_GetLoadingState", &s.bankGetLoadingState},
		{"FMOD_Studio_Bank_GetPath", &s.bankGetPath},
		{"FMOD_Studio_Bank_GetEventCount", &s.bankGetEventCount},
		{"FMOD_Studio_Bank_GetEventList", &s.bankGetEventList},
		{"FMOD_Studio_Bank_SetUserData", &s.bankSetUserData},
		{"FMOD_Studio_Bank_GetUserData", &s.bankGetUserData},
		{"FMOD_Studio_EventDescription_CreateInstance", &s.eventCreateInstance},
		{"FMOD_Studio_EventDescription_GetInstanceCount", &s.eventGetInstanceCount},
		{"FMOD_Studio_EventDescription_GetInstanceList", &s.eventGetInstanceList},
		{"FMOD_Studio_EventDescription_Is3D", &s.eventIs3D},
		{"FMOD_Studio_EventDescription_IsOneshot", &s.eventIsOneshot},
		{"FMOD_Studio_EventDescription_IsSnapshot", &s.eventIsSnapshot},
		{"FMOD_Studio_EventDescription_GetLength", &s.eventGetLength},
		{"FMOD_Studio_EventDescription_GetPath", &s.eventGetPath},
		{"FMOD_Studio_EventDescription_GetID", &s.eventGetID},
		{"FMOD_Studio_EventDescription_GetParameterDescriptionByName", &s.eventGetParameterDescriptionByName},
		{"FMOD_Studio_EventDescription_LoadSampleData", &s.eventLoadSampleData},
		{"FMOD_Studio_EventDescription_UnloadSampleData", &s.eventUnloadSampleData},
		{"FMOD_Studio_EventDescription_ReleaseAllInstances", &s.eventReleaseAllInstances},
		{"FMOD_Studio_EventDescription_SetUserData", &s.eventSetUserData},
		{"FMOD_Studio_EventDescription_GetUserData", &s.eventGetUserData},
		{"FMOD_Studio_EventInstance_Start", &s.instanceStart},
		{"FMOD_Studio_EventInstance_Stop", &s.instanceStop},
		{"FMOD_Studio_EventInstance_Release", &s.instanceRelease},
		{"FMOD_Studio_EventInstance_KeyOff", &s.instanceKeyOff},
		{"FMOD_Studio_EventInstance_GetPlaybackState", &s.instanceGetPlaybackState},
		{"FMOD_Studio_EventInstance_SetPaused", &s.instanceSetPaused},
		{"FMOD_Studio_EventInstance_GetPaused", &s.instanceGetPaused},
		{"FMOD_Studio_EventInstance_SetVolume", &s.instanceSetVolume},
		{"FMOD_Studio_EventInstance_GetVolume", &s.instanceGetVolume},
		{"FMOD_Studio_EventInstance_SetPitch", &s.instanceSetPitch},
		{"FMOD_Studio_EventInstance_GetPitch", &s.instanceGetPitch},
		{"FMOD_Studio_EventInstance_Set3DAttributes", &s.instanceSet3DAttributes},
		{"FMOD_Studio_EventInstance_Get3DAttributes", &s.instanceGet3DAttributes},
		{"FMOD_Studio_EventInstance_SetTimelinePosition", &s.instanceSetTimelinePosition},
		{"FMOD_Studio_EventInstance_GetTimelinePosition", &s.instanceGetTimelinePosition},
		{"FMOD_Studio_EventInstance_SetParameterByName", &s.instanceSetParameterByName},
		{"FMOD_Studio_EventInstance_GetParameterByName", &s.instanceGetParameterByName},
		{"FMOD_Studio_EventInstance_GetDescription", &s.instanceGetDescription},
		{"FMOD_Studio_EventInstance_SetCallback", &s.instanceSetCallback},
		{"FMOD_Studio_EventInstance_SetUserData", &s.instanceSetUserData},
		{"FMOD_Studio_EventInstance_GetUserData", &s.instanceGetUserData},
		{"FMOD_Studio_Bus_SetVolume", &s.busSetVolume},
		{"FMOD_Studio_Bus_GetVolume", &s.busGetVolume},
		{"FMOD_Studio_Bus_SetPaused", &s.busSetPaused},
		{"FMOD_Studio_Bus_GetPaused", &s.busGetPaused},
		{"FMOD_Studio_Bus_SetMute", &s.busSetMute},
		{"FMOD_Studio_Bus_GetMute", &s.busGetMute},
		{"FMOD_Studio_Bus_StopAllEvents", &s.busStopAllEvents},
		{"FMOD_Studio_Bus_LockChannelGroup", &s.busLockChannelGroup},
		{"FMOD_Studio_Bus_UnlockChannelGroup", &s.busUnlockChannelGroup},
		{"FMOD_Studio_Bus_GetChannelGroup", &s.busGetChannelGroup},
		{"FMOD_Studio_Bus_GetPath", &s.busGetPath},
		{"FMOD_Studio_Bus_GetID", &s.busGetID},
		{"FMOD_Studio_VCA_SetVolume", &s.vcaSetVolume},
		{"FMOD_Studio_VCA_GetVolume", &s.vcaGetVolume},
		{"FMOD_Studio_VCA_GetPath", &s.vcaGetPath},
		{"FMOD_Studio_VCA_GetID", &s.vcaGetID},
	}
}
