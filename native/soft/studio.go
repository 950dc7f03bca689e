// SPDX-License-Identifier: EPL-2.0

package soft

import (
	"strings"

	"github.com/ik5/foxaudio/native"
	"go.uber.org/zap"
)

const masterBusPath = "bus:/"

type studio struct {
	core        native.System
	initialized bool
	flags       native.StudioInitFlags
	master      native.Bus

	// global parameters by lower case name
	params map[string]*parameter
}

type parameter struct {
	desc  native.ParameterDescription
	value float32
	bank  native.Bank
}

func (p *parameter) set(value float32) {
	p.value = min(max(value, p.desc.Minimum), p.desc.Maximum)
}

// StudioSystemCreate creates a studio system together with the core system
// it drives.
func (e *Engine) StudioSystemCreate() (native.StudioSystem, native.Result) {
	e.mu.Lock()
	defer e.mu.Unlock()

	h := native.StudioSystem(e.alloc())
	core := e.newSystem()
	e.systems[core].owner = h
	e.studios[h] = &studio{
		core:   core,
		params: make(map[string]*parameter),
	}

	return h, native.OK
}

func (e *Engine) StudioSystemInitialize(s native.StudioSystem, maxChannels int, studioFlags native.StudioInitFlags, coreFlags native.InitFlags) native.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	st, ok := e.studios[s]
	if !ok {
		return native.ErrInvalidHandle
	}
	if st.initialized {
		return native.ErrInitialized
	}

	if res := e.initSystem(st.core, e.systems[st.core], maxChannels, coreFlags); res != native.OK {
		return res
	}

	st.initialized = true
	st.flags = studioFlags
	st.master = native.Bus(e.alloc())
	e.buses[st.master] = &bus{
		studio: s,
		path:   masterBusPath,
		id:     PathID(masterBusPath),
		volume: 1,
		group:  e.systems[st.core].master,
	}

	e.log.Debug("studio system initialized",
		zap.Uintptr("studio", uintptr(s)),
		zap.Uint32("studio_flags", uint32(studioFlags)),
	)

	return native.OK
}

// StudioSystemRelease unloads every bank, destroys the remaining event
// instances without callbacks and releases the core system.
func (e *Engine) StudioSystemRelease(s native.StudioSystem) native.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	st, ok := e.studios[s]
	if !ok {
		return native.ErrInvalidHandle
	}

	for h, b := range e.banks {
		if b.studio == s {
			e.unloadBank(h, b)
		}
	}
	delete(e.buses, st.master)
	e.releaseSystem(st.core)
	delete(e.studios, s)

	e.log.Debug("studio system released", zap.Uintptr("studio", uintptr(s)))

	return native.OK
}

// initializedStudio resolves s and requires it to be initialized. Caller
// holds mu.
func (e *Engine) initializedStudio(s native.StudioSystem) (*studio, native.Result) {
	st, ok := e.studios[s]
	if !ok {
		return nil, native.ErrInvalidHandle
	}
	if !st.initialized {
		return nil, native.ErrStudioUninitialized
	}

	return st, native.OK
}

// StudioSystemUpdate advances the core system and every event instance,
// then delivers the event callbacks queued since the previous update.
func (e *Engine) StudioSystemUpdate(s native.StudioSystem) native.Result {
	e.mu.Lock()

	st, res := e.initializedStudio(s)
	if res != native.OK {
		e.mu.Unlock()
		return res
	}

	core := e.systems[st.core]
	elapsed := max(e.clock.Now().Sub(core.lastUpdate), 0)
	e.updateSystem(st.core, core)
	calls, destroyed := e.updateEvents(s, elapsed)

	e.mu.Unlock()

	for _, c := range calls {
		if r := c.fn(c.typ, c.inst, 0); r != native.OK {
			e.log.Debug("event callback failed",
				zap.Uintptr("instance", uintptr(c.inst)),
				zap.Uint32("type", uint32(c.typ)),
				zap.String("result", r.Name()),
			)
		}
	}

	if len(destroyed) > 0 {
		e.mu.Lock()
		for _, h := range destroyed {
			delete(e.insts, h)
		}
		e.mu.Unlock()
	}

	return native.OK
}

func (e *Engine) StudioSystemCoreSystem(s native.StudioSystem) (native.System, native.Result) {
	e.mu.Lock()
	defer e.mu.Unlock()

	st, ok := e.studios[s]
	if !ok {
		return 0, native.ErrInvalidHandle
	}

	return st.core, native.OK
}

func (e *Engine) StudioSystemEvent(s native.StudioSystem, path string) (native.EventDescription, native.Result) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, res := e.initializedStudio(s); res != native.OK {
		return 0, res
	}
	for h, d := range e.events {
		if d.studio == s && strings.EqualFold(d.path, path) {
			return h, native.OK
		}
	}

	return 0, native.ErrEventNotFound
}

func (e *Engine) StudioSystemEventByID(s native.StudioSystem, id native.GUID) (native.EventDescription, native.Result) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, res := e.initializedStudio(s); res != native.OK {
		return 0, res
	}
	for h, d := range e.events {
		if d.studio == s && d.id == id {
			return h, native.OK
		}
	}

	return 0, native.ErrEventNotFound
}

func (e *Engine) StudioSystemBus(s native.StudioSystem, path string) (native.Bus, native.Result) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, res := e.initializedStudio(s); res != native.OK {
		return 0, res
	}
	if h, ok := e.findBus(s, path); ok {
		return h, native.OK
	}

	return 0, native.ErrEventNotFound
}

func (e *Engine) StudioSystemBusByID(s native.StudioSystem, id native.GUID) (native.Bus, native.Result) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, res := e.initializedStudio(s); res != native.OK {
		return 0, res
	}
	for h, b := range e.buses {
		if b.studio == s && b.id == id {
			return h, native.OK
		}
	}

	return 0, native.ErrEventNotFound
}

func (e *Engine) StudioSystemVCA(s native.StudioSystem, path string) (native.VCA, native.Result) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, res := e.initializedStudio(s); res != native.OK {
		return 0, res
	}
	for h, v := range e.vcas {
		if v.studio == s && strings.EqualFold(v.path, path) {
			return h, native.OK
		}
	}

	return 0, native.ErrEventNotFound
}

func (e *Engine) StudioSystemVCAByID(s native.StudioSystem, id native.GUID) (native.VCA, native.Result) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, res := e.initializedStudio(s); res != native.OK {
		return 0, res
	}
	for h, v := range e.vcas {
		if v.studio == s && v.id == id {
			return h, native.OK
		}
	}

	return 0, native.ErrEventNotFound
}

func (e *Engine) StudioSystemParameterByName(s native.StudioSystem, name string) (value, final float32, res native.Result) {
	e.mu.Lock()
	defer e.mu.Unlock()

	st, res := e.initializedStudio(s)
	if res != native.OK {
		return 0, 0, res
	}

	p, ok := st.params[strings.ToLower(name)]
	if !ok {
		return 0, 0, native.ErrEventNotFound
	}

	return p.value, p.value, native.OK
}

func (e *Engine) StudioSystemSetParameterByName(s native.StudioSystem, name string, value float32, _ bool) native.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	st, res := e.initializedStudio(s)
	if res != native.OK {
		return res
	}
	if !validFloat(value) {
		return native.ErrInvalidFloat
	}

	p, ok := st.params[strings.ToLower(name)]
	if !ok {
		return native.ErrEventNotFound
	}

	p.set(value)
	return native.OK
}

// withCore runs fn against the core system of s. Caller must not hold mu.
func (e *Engine) withCore(s native.StudioSystem, fn func(*system) native.Result) native.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	st, ok := e.studios[s]
	if !ok {
		return native.ErrInvalidHandle
	}

	return fn(e.systems[st.core])
}

func (e *Engine) StudioSystemSetNumListeners(s native.StudioSystem, n int) native.Result {
	return e.withCore(s, func(sys *system) native.Result {
		return sys.setNumListeners(n)
	})
}

func (e *Engine) StudioSystemNumListeners(s native.StudioSystem) (int, native.Result) {
	var n int
	res := e.withCore(s, func(sys *system) native.Result {
		n = len(sys.listeners)
		return native.OK
	})

	return n, res
}

func (e *Engine) StudioSystemSetListenerAttributes(s native.StudioSystem, listener int, attrs native.Attributes3D) native.Result {
	return e.withCore(s, func(sys *system) native.Result {
		return sys.setListener(listener, attrs)
	})
}

func (e *Engine) StudioSystemListenerAttributes(s native.StudioSystem, listener int) (native.Attributes3D, native.Result) {
	var attrs native.Attributes3D
	res := e.withCore(s, func(sys *system) native.Result {
		var r native.Result
		attrs, r = sys.listener(listener)
		return r
	})

	return attrs, res
}
