// SPDX-License-Identifier: EPL-2.0

package soft

import (
	"strings"

	"github.com/ik5/foxaudio/native"
	"go.uber.org/zap"
)

type bank struct {
	studio   native.StudioSystem
	path     string
	id       native.GUID
	data     []byte
	userData uintptr

	events []native.EventDescription
	buses  []native.Bus
	vcas   []native.VCA
	params []string
}

// StudioSystemLoadBankMemory loads a bank manifest (see Manifest). With
// LoadMemoryPoint the engine keeps data instead of a copy and the caller
// must keep it alive until the bank is unloaded.
func (e *Engine) StudioSystemLoadBankMemory(s native.StudioSystem, data []byte, mode native.LoadMemoryMode, flags native.LoadBankFlags) (native.Bank, native.Result) {
	e.mu.Lock()
	defer e.mu.Unlock()

	st, res := e.initializedStudio(s)
	if res != native.OK {
		return 0, res
	}
	if len(data) == 0 {
		return 0, native.ErrInvalidParam
	}
	if mode != native.LoadMemory && mode != native.LoadMemoryPoint {
		return 0, native.ErrInvalidParam
	}

	m, err := ParseManifest(data)
	if err != nil {
		e.log.Debug("bank rejected", zap.Error(err))
		return 0, native.ErrFileBad
	}
	if e.bankConflicts(s, m) {
		return 0, native.ErrEventAlreadyLoaded
	}

	b := &bank{
		studio: s,
		path:   m.Path,
		id:     objectID(m.Path, m.ID),
	}
	if mode == native.LoadMemoryPoint {
		b.data = data
	} else {
		b.data = append([]byte(nil), data...)
	}
	h := native.Bank(e.alloc())

	for _, p := range m.Parameters {
		key := strings.ToLower(p.Name)
		if _, ok := st.params[key]; ok {
			continue
		}
		st.params[key] = &parameter{desc: p.description(), value: p.Default, bank: h}
		b.params = append(b.params, key)
	}

	for _, o := range m.Buses {
		b.addBus(e, h, o.Path, o.ID)
	}
	for _, o := range m.VCAs {
		v := native.VCA(e.alloc())
		e.vcas[v] = &vca{studio: s, bank: h, path: o.Path, id: objectID(o.Path, o.ID), volume: 1}
		b.vcas = append(b.vcas, v)
	}

	for _, ev := range m.Events {
		busPath := ev.Bus
		if busPath == "" {
			busPath = masterBusPath
		}
		b.addBus(e, h, busPath, "")

		d := &eventDesc{
			studio:   s,
			bank:     h,
			path:     ev.Path,
			id:       objectID(ev.Path, ev.ID),
			lengthMS: ev.LengthMS,
			oneshot:  ev.Oneshot,
			is3D:     ev.Is3D,
			snapshot: ev.Snapshot,
			sustain:  ev.Sustain,
			bus:      busPath,
		}
		for _, p := range ev.Parameters {
			d.params = append(d.params, p.description())
		}
		dh := native.EventDescription(e.alloc())
		e.events[dh] = d
		b.events = append(b.events, dh)
	}

	e.banks[h] = b

	e.log.Debug("bank loaded",
		zap.String("path", b.path),
		zap.Int("events", len(b.events)),
		zap.Uint32("flags", uint32(flags)),
	)

	return h, native.OK
}

// addBus registers path unless a loaded bank already provides it. Caller
// holds mu.
func (b *bank) addBus(e *Engine, h native.Bank, path, id string) {
	if _, ok := e.findBus(b.studio, path); ok {
		return
	}

	bh := native.Bus(e.alloc())
	e.buses[bh] = &bus{
		studio: b.studio,
		bank:   h,
		path:   path,
		id:     objectID(path, id),
		volume: 1,
	}
	b.buses = append(b.buses, bh)
}

// bankConflicts reports whether m names a bank or event that is already
// loaded. Caller holds mu.
func (e *Engine) bankConflicts(s native.StudioSystem, m *Manifest) bool {
	for _, b := range e.banks {
		if b.studio == s && strings.EqualFold(b.path, m.Path) {
			return true
		}
	}

	paths := make(map[string]bool, len(m.Events))
	for _, ev := range m.Events {
		key := strings.ToLower(ev.Path)
		if paths[key] {
			return true
		}
		paths[key] = true
	}
	for _, d := range e.events {
		if d.studio == s && paths[strings.ToLower(d.path)] {
			return true
		}
	}

	return false
}

// unloadBank destroys the bank and everything it defined. Instances of its
// events are destroyed without callbacks. Caller holds mu.
func (e *Engine) unloadBank(h native.Bank, b *bank) {
	for _, d := range b.events {
		for ih, in := range e.insts {
			if in.desc == d {
				delete(e.insts, ih)
			}
		}
		delete(e.events, d)
	}
	for _, bh := range b.buses {
		if bs, ok := e.buses[bh]; ok && bs.group != 0 {
			if grp, ok := e.groups[bs.group]; ok {
				e.releaseGroup(bs.group, grp)
			}
		}
		delete(e.buses, bh)
	}
	for _, v := range b.vcas {
		delete(e.vcas, v)
	}
	if st, ok := e.studios[b.studio]; ok {
		for _, key := range b.params {
			delete(st.params, key)
		}
	}
	delete(e.banks, h)

	e.log.Debug("bank unloaded", zap.String("path", b.path))
}

func (e *Engine) BankUnload(h native.Bank) native.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	b, ok := e.banks[h]
	if !ok {
		return native.ErrInvalidHandle
	}

	e.unloadBank(h, b)
	return native.OK
}

func (e *Engine) withBank(h native.Bank, fn func(*bank) native.Result) native.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	b, ok := e.banks[h]
	if !ok {
		return native.ErrInvalidHandle
	}

	return fn(b)
}

func (e *Engine) setBankSamples(h native.Bank, loaded bool) native.Result {
	return e.withBank(h, func(b *bank) native.Result {
		for _, d := range b.events {
			e.events[d].samples = loaded
		}
		return native.OK
	})
}

func (e *Engine) BankLoadSampleData(h native.Bank) native.Result {
	return e.setBankSamples(h, true)
}

func (e *Engine) BankUnloadSampleData(h native.Bank) native.Result {
	return e.setBankSamples(h, false)
}

// BankLoadingState is always loaded: banks load synchronously.
func (e *Engine) BankLoadingState(h native.Bank) (native.LoadingState, native.Result) {
	res := e.withBank(h, func(*bank) native.Result { return native.OK })
	if res != native.OK {
		return native.LoadingStateUnloaded, res
	}

	return native.LoadingStateLoaded, native.OK
}

func (e *Engine) BankPath(h native.Bank) (string, native.Result) {
	var path string
	res := e.withBank(h, func(b *bank) native.Result {
		path = b.path
		return native.OK
	})

	return path, res
}

func (e *Engine) BankEventList(h native.Bank) ([]native.EventDescription, native.Result) {
	var list []native.EventDescription
	res := e.withBank(h, func(b *bank) native.Result {
		list = append(list, b.events...)
		return native.OK
	})

	return list, res
}

func (e *Engine) BankSetUserData(h native.Bank, data uintptr) native.Result {
	return e.withBank(h, func(b *bank) native.Result {
		b.userData = data
		return native.OK
	})
}

func (e *Engine) BankUserData(h native.Bank) (uintptr, native.Result) {
	var data uintptr
	res := e.withBank(h, func(b *bank) native.Result {
		data = b.userData
		return native.OK
	})

	return data, res
}
