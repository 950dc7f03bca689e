// SPDX-License-Identifier: EPL-2.0

package soft

import (
	"time"

	"github.com/ik5/foxaudio/native"
	"go.uber.org/zap"
)

const (
	maxSoftwareChannels = 4095
	maxListeners        = 8
)

type system struct {
	initialized bool
	maxChannels int
	flags       native.InitFlags
	dspLength   uint32
	dspCount    int

	master     native.ChannelGroup
	listeners  []native.Attributes3D
	lastUpdate time.Time

	// studio owning this core system, zero when standalone
	owner native.StudioSystem
}

func (e *Engine) newSystem() native.System {
	h := native.System(e.alloc())
	e.systems[h] = &system{
		dspLength: 1024,
		dspCount:  4,
		listeners: []native.Attributes3D{native.DefaultAttributes3D()},
	}

	return h
}

func (e *Engine) SystemCreate() (native.System, native.Result) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.newSystem(), native.OK
}

func (e *Engine) initSystem(h native.System, s *system, maxChannels int, flags native.InitFlags) native.Result {
	if s.initialized {
		return native.ErrInitialized
	}
	if maxChannels <= 0 || maxChannels > maxSoftwareChannels {
		return native.ErrInvalidParam
	}

	s.initialized = true
	s.maxChannels = maxChannels
	s.flags = flags
	s.lastUpdate = e.clock.Now()
	s.master = e.newGroup(h, "Master", true)

	e.log.Debug("system initialized",
		zap.Uintptr("system", uintptr(h)),
		zap.Int("max_channels", maxChannels),
		zap.Uint32("flags", uint32(flags)),
	)

	return native.OK
}

func (e *Engine) SystemInit(sys native.System, maxChannels int, flags native.InitFlags) native.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.systems[sys]
	if !ok {
		return native.ErrInvalidHandle
	}

	return e.initSystem(sys, s, maxChannels, flags)
}

// releaseSystem drops every object created through sys. Caller holds mu.
func (e *Engine) releaseSystem(sys native.System) {
	for h, c := range e.channels {
		if c.sys == sys {
			delete(e.channels, h)
		}
	}
	for h, snd := range e.sounds {
		if snd.sys == sys {
			snd.release()
			delete(e.sounds, h)
		}
	}
	for h, g := range e.groups {
		if g.sys == sys {
			delete(e.groups, h)
		}
	}
	delete(e.systems, sys)

	e.log.Debug("system released", zap.Uintptr("system", uintptr(sys)))
}

func (e *Engine) SystemRelease(sys native.System) native.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.systems[sys]
	if !ok {
		return native.ErrInvalidHandle
	}
	if s.owner != 0 {
		// released together with its studio system
		return native.ErrInvalidParam
	}

	e.releaseSystem(sys)
	return native.OK
}

func (e *Engine) SystemUpdate(sys native.System) native.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.systems[sys]
	if !ok {
		return native.ErrInvalidHandle
	}
	if !s.initialized {
		return native.ErrUninitialized
	}

	e.updateSystem(sys, s)
	return native.OK
}

// updateSystem advances every channel of sys by the time elapsed since the
// previous update. Caller holds mu.
func (e *Engine) updateSystem(sys native.System, s *system) {
	now := e.clock.Now()
	elapsed := now.Sub(s.lastUpdate)
	s.lastUpdate = now
	if elapsed <= 0 {
		return
	}

	for h, c := range e.channels {
		if c.sys != sys {
			continue
		}
		if !e.advanceChannel(c, elapsed) {
			delete(e.channels, h)
		}
	}
}

func (e *Engine) SystemSetDSPBufferSize(sys native.System, length uint32, count int) native.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.systems[sys]
	if !ok {
		return native.ErrInvalidHandle
	}
	if s.initialized {
		return native.ErrInitialized
	}
	if length == 0 || count <= 0 {
		return native.ErrInvalidParam
	}

	s.dspLength = length
	s.dspCount = count
	return native.OK
}

// DSPBufferSize reports the buffer layout a system was configured with.
func (e *Engine) DSPBufferSize(sys native.System) (length uint32, count int, res native.Result) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.systems[sys]
	if !ok {
		return 0, 0, native.ErrInvalidHandle
	}

	return s.dspLength, s.dspCount, native.OK
}

// initializedSystem resolves sys and requires it to be initialized.
// Caller holds mu.
func (e *Engine) initializedSystem(sys native.System) (*system, native.Result) {
	s, ok := e.systems[sys]
	if !ok {
		return nil, native.ErrInvalidHandle
	}
	if !s.initialized {
		return nil, native.ErrUninitialized
	}

	return s, native.OK
}

func (e *Engine) SystemMasterChannelGroup(sys native.System) (native.ChannelGroup, native.Result) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, res := e.initializedSystem(sys)
	if res != native.OK {
		return 0, res
	}

	return s.master, native.OK
}

func (e *Engine) SystemSet3DNumListeners(sys native.System, n int) native.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.systems[sys]
	if !ok {
		return native.ErrInvalidHandle
	}

	return s.setNumListeners(n)
}

func (s *system) setNumListeners(n int) native.Result {
	if n < 1 || n > maxListeners {
		return native.ErrInvalidParam
	}

	for len(s.listeners) < n {
		s.listeners = append(s.listeners, native.DefaultAttributes3D())
	}
	s.listeners = s.listeners[:n]

	return native.OK
}

func (e *Engine) System3DNumListeners(sys native.System) (int, native.Result) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.systems[sys]
	if !ok {
		return 0, native.ErrInvalidHandle
	}

	return len(s.listeners), native.OK
}

func (e *Engine) SystemSet3DListenerAttributes(sys native.System, listener int, attrs native.Attributes3D) native.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.systems[sys]
	if !ok {
		return native.ErrInvalidHandle
	}

	return s.setListener(listener, attrs)
}

func (s *system) setListener(listener int, attrs native.Attributes3D) native.Result {
	if listener < 0 || listener >= len(s.listeners) {
		return native.ErrInvalidParam
	}
	if !validAttributes(attrs) {
		return native.ErrInvalidFloat
	}

	s.listeners[listener] = attrs
	return native.OK
}

func (e *Engine) System3DListenerAttributes(sys native.System, listener int) (native.Attributes3D, native.Result) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.systems[sys]
	if !ok {
		return native.Attributes3D{}, native.ErrInvalidHandle
	}

	return s.listener(listener)
}

func (s *system) listener(listener int) (native.Attributes3D, native.Result) {
	if listener < 0 || listener >= len(s.listeners) {
		return native.Attributes3D{}, native.ErrInvalidParam
	}

	return s.listeners[listener], native.OK
}
