// SPDX-License-Identifier: EPL-2.0

//go:build darwin || freebsd || linux || windows

package fmodlib

import (
	"math"
	"unsafe"

	"github.com/ik5/foxaudio/native"
)

// createSoundExInfo is FMOD_CREATESOUNDEXINFO. Pointer members the
// binding never sets are kept as uintptr.
type createSoundExInfo struct {
	cbSize              int32
	length              uint32
	fileOffset          uint32
	numChannels         int32
	defaultFrequency    int32
	format              int32
	decodeBufferSize    uint32
	initialSubsound     int32
	numSubsounds        int32
	inclusionList       uintptr
	inclusionListNum    int32
	pcmReadCallback     uintptr
	pcmSetPosCallback   uintptr
	nonBlockCallback    uintptr
	dlsName             uintptr
	encryptionKey       uintptr
	maxPolyphony        int32
	userData            uintptr
	suggestedSoundType  int32
	fileUserOpen        uintptr
	fileUserClose       uintptr
	fileUserRead        uintptr
	fileUserSeek        uintptr
	fileUserAsyncRead   uintptr
	fileUserAsyncCancel uintptr
	fileUserData        uintptr
	fileBufferSize      int32
	channelOrder        int32
	initialSoundGroup   uintptr
	initialSeekPosition uint32
	initialSeekPosType  uint32
	ignoreSetFilesystem int32
	audioQueuePolicy    uint32
	minMidiGranularity  uint32
	nonBlockThreadID    int32
	fsbGUID             uintptr
}

// Largest buffers the length fields of the C API can describe.
const (
	maxSoundLength = math.MaxUint32
	maxBankLength  = math.MaxInt32
)

// fits reports whether a buffer of n bytes is within limit. n is taken as
// int64 so the comparison also holds where int is 32 bits.
func fits(n, limit int64) bool {
	return n > 0 && n <= limit
}

// newCreateSoundExInfo describes a memory buffer of length bytes. The
// caller checks length against maxSoundLength.
func newCreateSoundExInfo(length int) *createSoundExInfo {
	info := &createSoundExInfo{length: uint32(length)}
	info.cbSize = int32(unsafe.Sizeof(*info))

	return info
}

// parameterDescription is FMOD_STUDIO_PARAMETER_DESCRIPTION.
type parameterDescription struct {
	name     *byte
	id       [2]uint32
	minimum  float32
	maximum  float32
	defValue float32
	typ      int32
	flags    uint32
	guid     native.GUID
}

// goString copies the NUL terminated string at p, which is owned by the
// engine.
func goString(p *byte) string {
	if p == nil {
		return ""
	}

	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}

	return string(unsafe.Slice(p, n))
}

// readPath runs one of the GetPath calls, first asking for the size.
func readPath(get func(path *byte, size int32, retrieved *int32) native.Result) (string, native.Result) {
	var size int32
	if res := get(nil, 0, &size); res != native.OK && res != native.ErrTruncated {
		return "", res
	}
	if size <= 0 {
		return "", native.OK
	}

	buf := make([]byte, size)
	if res := get(&buf[0], size, &size); res != native.OK {
		return "", res
	}

	return goString(&buf[0]), native.OK
}

// readList runs one of the list calls, first asking for the count.
func readList[T any](count func(n *int32) native.Result, list func(first *T, capacity int32, n *int32) native.Result) ([]T, native.Result) {
	var n int32
	if res := count(&n); res != native.OK {
		return nil, res
	}
	if n <= 0 {
		return nil, native.OK
	}

	out := make([]T, n)
	if res := list(&out[0], n, &n); res != native.OK {
		return nil, res
	}

	return out[:n], native.OK
}
