// SPDX-License-Identifier: EPL-2.0

package native

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// Opaque engine objects. Values are whatever the engine hands out; zero is
// the null object.
type (
	System           uintptr
	Sound            uintptr
	Channel          uintptr
	ChannelGroup     uintptr
	StudioSystem     uintptr
	Bank             uintptr
	EventDescription uintptr
	EventInstance    uintptr
	Bus              uintptr
	VCA              uintptr
)

// Mode is FMOD_MODE.
type Mode uint32

const (
	ModeDefault                Mode = 0x00000000
	ModeLoopOff                Mode = 0x00000001
	ModeLoopNormal             Mode = 0x00000002
	ModeLoopBidi               Mode = 0x00000004
	Mode2D                     Mode = 0x00000008
	Mode3D                     Mode = 0x00000010
	ModeCreateStream           Mode = 0x00000080
	ModeCreateSample           Mode = 0x00000100
	ModeCreateCompressedSample Mode = 0x00000200
	ModeOpenUser               Mode = 0x00000400
	ModeOpenMemory             Mode = 0x00000800
	ModeOpenRaw                Mode = 0x00001000
	ModeOpenOnly               Mode = 0x00002000
	ModeAccurateTime           Mode = 0x00004000
	ModeNonBlocking            Mode = 0x00010000
	ModeUnique                 Mode = 0x00020000
	Mode3DHeadRelative         Mode = 0x00040000
	Mode3DWorldRelative        Mode = 0x00080000
	Mode3DInverseRolloff       Mode = 0x00100000
	Mode3DLinearRolloff        Mode = 0x00200000
	Mode3DLinearSquareRolloff  Mode = 0x00400000
	Mode3DIgnoreGeometry       Mode = 0x40000000
	ModeIgnoreTags             Mode = 0x02000000
	ModeLowMem                 Mode = 0x08000000
	ModeOpenMemoryPoint        Mode = 0x10000000
)

// Has reports whether every bit of flag is set in m.
func (m Mode) Has(flag Mode) bool {
	return m&flag == flag
}

const loopMask = ModeLoopOff | ModeLoopNormal | ModeLoopBidi

// WithLoop replaces the loop bits of m with loop.
func (m Mode) WithLoop(loop Mode) Mode {
	return m&^loopMask | loop&loopMask
}

// InitFlags is FMOD_INITFLAGS.
type InitFlags uint32

const (
	InitNormal                 InitFlags = 0x00000000
	InitStreamFromUpdate       InitFlags = 0x00000001
	InitMixFromUpdate          InitFlags = 0x00000002
	Init3DRightHanded          InitFlags = 0x00000004
	InitClipOutput             InitFlags = 0x00000008
	InitChannelLowpass         InitFlags = 0x00000100
	InitChannelDistanceFilter  InitFlags = 0x00000200
	InitProfileEnable          InitFlags = 0x00010000
	InitVol0BecomesVirtual     InitFlags = 0x00020000
	InitGeometryUseClosest     InitFlags = 0x00040000
	InitPreferDolbyDownmix     InitFlags = 0x00080000
	InitThreadUnsafe           InitFlags = 0x00100000
	InitProfileMeterAll        InitFlags = 0x00200000
	InitMemoryTracking         InitFlags = 0x00400000
)

// StudioInitFlags is FMOD_STUDIO_INITFLAGS.
type StudioInitFlags uint32

const (
	StudioInitNormal              StudioInitFlags = 0x00000000
	StudioInitLiveUpdate          StudioInitFlags = 0x00000001
	StudioInitAllowMissingPlugins StudioInitFlags = 0x00000002
	StudioInitSynchronousUpdate   StudioInitFlags = 0x00000004
	StudioInitDeferredCallbacks   StudioInitFlags = 0x00000008
	StudioInitLoadFromUpdate      StudioInitFlags = 0x00000010
	StudioInitMemoryTracking      StudioInitFlags = 0x00000020
)

// LoadBankFlags is FMOD_STUDIO_LOAD_BANK_FLAGS.
type LoadBankFlags uint32

const (
	LoadBankNormal            LoadBankFlags = 0x00000000
	LoadBankNonBlocking       LoadBankFlags = 0x00000001
	LoadBankDecompressSamples LoadBankFlags = 0x00000002
	LoadBankUnencrypted       LoadBankFlags = 0x00000004
)

// LoadMemoryMode is FMOD_STUDIO_LOAD_MEMORY_MODE.
type LoadMemoryMode int32

const (
	LoadMemory      LoadMemoryMode = 0
	LoadMemoryPoint LoadMemoryMode = 1
)

// TimeUnit is FMOD_TIMEUNIT.
type TimeUnit uint32

const (
	TimeUnitMS       TimeUnit = 0x00000001
	TimeUnitPCM      TimeUnit = 0x00000002
	TimeUnitPCMBytes TimeUnit = 0x00000004
	TimeUnitRawBytes TimeUnit = 0x00000008
)

// PlaybackState is FMOD_STUDIO_PLAYBACK_STATE.
type PlaybackState int32

const (
	PlaybackPlaying    PlaybackState = 0
	PlaybackSustaining PlaybackState = 1
	PlaybackStopped    PlaybackState = 2
	PlaybackStarting   PlaybackState = 3
	PlaybackStopping   PlaybackState = 4
)

func (s PlaybackState) String() string {
	switch s {
	case PlaybackPlaying:
		return "playing"
	case PlaybackSustaining:
		return "sustaining"
	case PlaybackStopped:
		return "stopped"
	case PlaybackStarting:
		return "starting"
	case PlaybackStopping:
		return "stopping"
	default:
		return "unknown"
	}
}

// StopMode is FMOD_STUDIO_STOP_MODE.
type StopMode int32

const (
	StopAllowFadeout StopMode = 0
	StopImmediate    StopMode = 1
)

// LoadingState is FMOD_STUDIO_LOADING_STATE.
type LoadingState int32

const (
	LoadingStateUnloading LoadingState = 0
	LoadingStateUnloaded  LoadingState = 1
	LoadingStateLoading   LoadingState = 2
	LoadingStateLoaded    LoadingState = 3
	LoadingStateError     LoadingState = 4
)

// EventCallbackType is FMOD_STUDIO_EVENT_CALLBACK_TYPE.
type EventCallbackType uint32

const (
	EventCallbackCreated              EventCallbackType = 0x00000001
	EventCallbackDestroyed            EventCallbackType = 0x00000002
	EventCallbackStarting             EventCallbackType = 0x00000004
	EventCallbackStarted              EventCallbackType = 0x00000008
	EventCallbackRestarted            EventCallbackType = 0x00000010
	EventCallbackStopped              EventCallbackType = 0x00000020
	EventCallbackStartFailed          EventCallbackType = 0x00000040
	EventCallbackCreateProgrammerSnd  EventCallbackType = 0x00000080
	EventCallbackDestroyProgrammerSnd EventCallbackType = 0x00000100
	EventCallbackPluginCreated        EventCallbackType = 0x00000200
	EventCallbackPluginDestroyed      EventCallbackType = 0x00000400
	EventCallbackTimelineMarker       EventCallbackType = 0x00000800
	EventCallbackTimelineBeat         EventCallbackType = 0x00001000
	EventCallbackSoundPlayed          EventCallbackType = 0x00002000
	EventCallbackSoundStopped         EventCallbackType = 0x00004000
	EventCallbackRealToVirtual        EventCallbackType = 0x00008000
	EventCallbackVirtualToReal        EventCallbackType = 0x00010000
	EventCallbackStartEventCommand    EventCallbackType = 0x00020000
	EventCallbackNestedTimelineBeat   EventCallbackType = 0x00040000
	EventCallbackAll                  EventCallbackType = 0xFFFFFFFF
)

// EventCallback is invoked by the engine on its update thread. params points
// at callback-type specific data owned by the engine and is only valid for
// the duration of the call.
type EventCallback func(typ EventCallbackType, inst EventInstance, params uintptr) Result

// Vector is FMOD_VECTOR.
type Vector struct {
	X, Y, Z float32
}

var (
	VectorZero  = Vector{}
	VectorUnitY = Vector{Y: 1}
	VectorUnitZ = Vector{Z: 1}
)

// Attributes3D is FMOD_3D_ATTRIBUTES.
type Attributes3D struct {
	Position Vector
	Velocity Vector
	Forward  Vector
	Up       Vector
}

// DefaultAttributes3D is at the origin, not moving, facing +Y with +Z up.
func DefaultAttributes3D() Attributes3D {
	return Attributes3D{
		Forward: VectorUnitY,
		Up:      VectorUnitZ,
	}
}

// GUID is FMOD_GUID. Data1..Data3 are stored in native byte order by the
// engine; conversions to and from uuid.UUID use the textual (big endian)
// layout so that "{2a3e48e6-94fc-4363-9468-33d2dd4d7b00}" means the same
// object on both sides.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// GUIDFromUUID converts a uuid.UUID into the engine layout.
func GUIDFromUUID(id uuid.UUID) GUID {
	var g GUID
	g.Data1 = binary.BigEndian.Uint32(id[0:4])
	g.Data2 = binary.BigEndian.Uint16(id[4:6])
	g.Data3 = binary.BigEndian.Uint16(id[6:8])
	copy(g.Data4[:], id[8:16])

	return g
}

// UUID converts g back into a uuid.UUID.
func (g GUID) UUID() uuid.UUID {
	var id uuid.UUID
	binary.BigEndian.PutUint32(id[0:4], g.Data1)
	binary.BigEndian.PutUint16(id[4:6], g.Data2)
	binary.BigEndian.PutUint16(id[6:8], g.Data3)
	copy(id[8:16], g.Data4[:])

	return id
}

func (g GUID) String() string {
	return "{" + g.UUID().String() + "}"
}

// ParseGUID accepts both braced and bare uuid strings.
func ParseGUID(s string) (GUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return GUID{}, err
	}

	return GUIDFromUUID(id), nil
}

// ParameterDescription is the subset of FMOD_STUDIO_PARAMETER_DESCRIPTION
// the wrapper exposes.
type ParameterDescription struct {
	Name    string
	Minimum float32
	Maximum float32
	Default float32
}
