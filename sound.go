// SPDX-License-Identifier: EPL-2.0

package foxaudio

import (
	"io"

	"github.com/ik5/foxaudio/handle"
	"github.com/ik5/foxaudio/native"
	"github.com/ik5/foxaudio/pin"
)

// Sound is a loaded sample or stream. The exported fields are defaults
// applied to every channel started by Play.
type Sound struct {
	Volume  float32
	Pitch   float32
	LowPass float32
	// Loops is -1 for endless looping, 0 for none, n for n extra plays.
	Loops int

	Is3D          bool
	Position3D    native.Vector
	Velocity3D    native.Vector
	MinDistance3D float32
	MaxDistance3D float32

	// ChannelGroup receives the channels started by Play; nil is the
	// master group.
	ChannelGroup *ChannelGroup

	m    *Manager
	h    native.Sound
	id   handle.Handle
	buf  *pin.Buffer
	life lifetime
}

// LoadSound loads a sample through the file loader. The engine decodes and
// copies the data.
func (m *Manager) LoadSound(path string) (*Sound, error) {
	data, err := m.readFile(path)
	if err != nil {
		return nil, err
	}

	return m.createSound(data, false)
}

func (m *Manager) LoadSoundFromBytes(data []byte) (*Sound, error) {
	return m.createSound(data, false)
}

func (m *Manager) LoadSoundFromReader(r io.Reader) (*Sound, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}

	return m.createSound(data, false)
}

// LoadStreamedSound loads a stream through the file loader. The engine
// reads the file contents in place, so they stay pinned until Dispose.
func (m *Manager) LoadStreamedSound(path string) (*Sound, error) {
	data, err := m.readFile(path)
	if err != nil {
		return nil, err
	}

	return m.createSound(data, true)
}

// LoadStreamedSoundFromBytes streams from data, which must not be modified
// until the sound is disposed.
func (m *Manager) LoadStreamedSoundFromBytes(data []byte) (*Sound, error) {
	return m.createSound(data, true)
}

func (m *Manager) LoadStreamedSoundFromReader(r io.Reader) (*Sound, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}

	return m.createSound(data, true)
}

func (m *Manager) createSound(data []byte, stream bool) (*Sound, error) {
	core, _, err := m.systems()
	if err != nil {
		return nil, err
	}

	mode := native.ModeOpenMemory | native.ModeCreateSample
	var buf *pin.Buffer
	if stream {
		mode = native.ModeOpenMemoryPoint | native.ModeCreateStream
		buf = pin.New(data)
		data = buf.Bytes()
	}

	h, res := m.engine.SystemCreateSound(core, data, mode)
	if err := m.check("create sound", res); err != nil {
		if buf != nil {
			buf.Release()
		}
		return nil, err
	}

	s := &Sound{
		Volume:        1,
		Pitch:         1,
		LowPass:       1,
		MinDistance3D: 1,
		MaxDistance3D: 10000,
		m:             m,
		h:             h,
		buf:           buf,
	}
	s.id = m.sounds.Register(s)
	if buf != nil {
		m.metrics.pinned(buf.Len())
	}

	if err := m.check("set sound user data", m.engine.SoundSetUserData(h, s.id.UserData())); err != nil {
		s.Dispose()
		return nil, err
	}

	return s, nil
}

// Handle returns the registry handle stored as the sound's user data.
func (s *Sound) Handle() handle.Handle { return s.id }

// Native returns the engine handle of the sound.
func (s *Sound) Native() native.Sound { return s.h }

// Streamed reports whether the sound reads a pinned buffer in place.
func (s *Sound) Streamed() bool { return s.buf != nil }

func (s *Sound) Length(unit native.TimeUnit) (uint32, error) {
	if err := s.life.usable(s.m); err != nil {
		return 0, err
	}

	n, res := s.m.engine.SoundLength(s.h, unit)
	return n, s.m.check("sound length", res)
}

func (s *Sound) Mode() (native.Mode, error) {
	if err := s.life.usable(s.m); err != nil {
		return 0, err
	}

	mode, res := s.m.engine.SoundMode(s.h)
	return mode, s.m.check("sound mode", res)
}

func (s *Sound) SetMode(mode native.Mode) error {
	if err := s.life.usable(s.m); err != nil {
		return err
	}

	return s.m.check("set sound mode", s.m.engine.SoundSetMode(s.h, mode))
}

func (s *Sound) LoopCount() (int, error) {
	if err := s.life.usable(s.m); err != nil {
		return 0, err
	}

	n, res := s.m.engine.SoundLoopCount(s.h)
	return n, s.m.check("sound loop count", res)
}

func (s *Sound) SetLoopCount(loops int) error {
	if err := s.life.usable(s.m); err != nil {
		return err
	}

	return s.m.check("set sound loop count", s.m.engine.SoundSetLoopCount(s.h, loops))
}

// Play starts the sound in its ChannelGroup.
func (s *Sound) Play(paused bool) (*Channel, error) {
	return s.PlayIn(s.ChannelGroup, paused)
}

// PlayIn starts the sound in group, nil meaning the master group, and
// applies the per-play defaults to the new channel.
func (s *Sound) PlayIn(group *ChannelGroup, paused bool) (*Channel, error) {
	if err := s.life.usable(s.m); err != nil {
		return nil, err
	}
	core, _, err := s.m.systems()
	if err != nil {
		return nil, err
	}

	var g native.ChannelGroup
	if group != nil {
		if err := group.life.usable(group.m); err != nil {
			return nil, err
		}
		g = group.h
	}

	h, res := s.m.engine.SystemPlaySound(core, s.h, g, paused)
	if err := s.m.check("play sound", res); err != nil {
		return nil, err
	}

	ch := &Channel{m: s.m, h: h}
	if err := ch.applyDefaults(s); err != nil {
		ch.Dispose()
		return nil, err
	}

	return ch, nil
}

// Dispose releases the native sound, which stops its channels, and unpins
// the stream buffer. Calling it again does nothing.
func (s *Sound) Dispose() error {
	return s.life.dispose(func() error {
		err := s.m.check("release sound", s.m.engine.SoundRelease(s.h))
		s.m.sounds.Release(s.id)
		if s.buf != nil {
			s.m.metrics.pinned(-s.buf.Len())
			s.buf.Release()
		}
		return err
	})
}
