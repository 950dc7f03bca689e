// SPDX-License-Identifier: EPL-2.0

package soft

import (
	"github.com/ik5/foxaudio/native"
	"go.uber.org/zap"
)

type sound struct {
	sys      native.System
	mode     native.Mode
	loops    int
	userData uintptr

	format   string
	rate     int
	chans    int
	frames   int64
	rawBytes int

	// data is a private copy for samples and the caller's slice for
	// OpenMemoryPoint streams
	data []byte
}

func (s *sound) release() {
	s.data = nil
}

func (e *Engine) SystemCreateSound(sys native.System, data []byte, mode native.Mode) (native.Sound, native.Result) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, res := e.initializedSystem(sys); res != native.OK {
		return 0, res
	}
	if len(data) == 0 {
		return 0, native.ErrInvalidParam
	}
	if !mode.Has(native.ModeOpenMemory) && !mode.Has(native.ModeOpenMemoryPoint) {
		// no file system access; callers hand over bytes
		return 0, native.ErrFileNotFound
	}
	if mode.Has(native.ModeOpenMemoryPoint) && !mode.Has(native.ModeCreateStream) {
		return 0, native.ErrMemoryCantPoint
	}

	format, stream, err := e.registry.Probe(data)
	if err != nil {
		e.log.Debug("sound probe failed", zap.Error(err))
		return 0, native.ErrFormat
	}
	_ = stream.Close()

	snd := &sound{
		sys:      sys,
		mode:     mode,
		loops:    -1,
		format:   format,
		rate:     stream.SampleRate(),
		chans:    stream.Channels(),
		frames:   stream.Length(),
		rawBytes: len(data),
	}
	if mode.Has(native.ModeOpenMemoryPoint) {
		snd.data = data
	} else {
		snd.data = append([]byte(nil), data...)
	}

	h := native.Sound(e.alloc())
	e.sounds[h] = snd

	e.log.Debug("sound created",
		zap.Uintptr("sound", uintptr(h)),
		zap.String("format", format),
		zap.Int64("frames", snd.frames),
		zap.Bool("stream", mode.Has(native.ModeCreateStream)),
	)

	return h, native.OK
}

// SoundFormat reports the container format a sound was probed as.
func (e *Engine) SoundFormat(snd native.Sound) (string, native.Result) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sounds[snd]
	if !ok {
		return "", native.ErrInvalidHandle
	}

	return s.format, native.OK
}

// SoundRelease stops every channel playing snd.
func (e *Engine) SoundRelease(snd native.Sound) native.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sounds[snd]
	if !ok {
		return native.ErrInvalidHandle
	}

	for h, c := range e.channels {
		if c.sound == snd {
			delete(e.channels, h)
		}
	}
	s.release()
	delete(e.sounds, snd)

	return native.OK
}

func (e *Engine) SoundLength(snd native.Sound, unit native.TimeUnit) (uint32, native.Result) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sounds[snd]
	if !ok {
		return 0, native.ErrInvalidHandle
	}
	if unit == native.TimeUnitRawBytes {
		return uint32(s.rawBytes), native.OK
	}
	if s.frames < 0 {
		// unknown length
		return 0xFFFFFFFF, native.OK
	}

	return s.fromFrames(float64(s.frames), unit)
}

func (s *sound) fromFrames(frames float64, unit native.TimeUnit) (uint32, native.Result) {
	switch unit {
	case native.TimeUnitPCM:
		return uint32(frames), native.OK
	case native.TimeUnitMS:
		if s.rate <= 0 {
			return 0, native.ErrFormat
		}
		return uint32(frames * 1000 / float64(s.rate)), native.OK
	case native.TimeUnitPCMBytes:
		return uint32(frames) * uint32(s.chans) * 2, native.OK
	default:
		return 0, native.ErrInvalidParam
	}
}

func (s *sound) toFrames(pos uint32, unit native.TimeUnit) (float64, native.Result) {
	switch unit {
	case native.TimeUnitPCM:
		return float64(pos), native.OK
	case native.TimeUnitMS:
		return float64(pos) * float64(s.rate) / 1000, native.OK
	case native.TimeUnitPCMBytes:
		if s.chans <= 0 {
			return 0, native.ErrFormat
		}
		return float64(pos / uint32(s.chans*2)), native.OK
	default:
		return 0, native.ErrInvalidParam
	}
}

func (e *Engine) SoundSetMode(snd native.Sound, mode native.Mode) native.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sounds[snd]
	if !ok {
		return native.ErrInvalidHandle
	}

	s.mode = mode
	return native.OK
}

func (e *Engine) SoundMode(snd native.Sound) (native.Mode, native.Result) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sounds[snd]
	if !ok {
		return 0, native.ErrInvalidHandle
	}

	return s.mode, native.OK
}

func (e *Engine) SoundSetLoopCount(snd native.Sound, loops int) native.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sounds[snd]
	if !ok {
		return native.ErrInvalidHandle
	}
	if loops < -1 {
		return native.ErrInvalidParam
	}

	s.loops = loops
	return native.OK
}

func (e *Engine) SoundLoopCount(snd native.Sound) (int, native.Result) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sounds[snd]
	if !ok {
		return 0, native.ErrInvalidHandle
	}

	return s.loops, native.OK
}

func (e *Engine) SoundSetUserData(snd native.Sound, data uintptr) native.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sounds[snd]
	if !ok {
		return native.ErrInvalidHandle
	}

	s.userData = data
	return native.OK
}

func (e *Engine) SoundUserData(snd native.Sound) (uintptr, native.Result) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sounds[snd]
	if !ok {
		return 0, native.ErrInvalidHandle
	}

	return s.userData, native.OK
}
