// SPDX-License-Identifier: EPL-2.0

package foxaudio

import (
	"io"

	"github.com/ik5/foxaudio/handle"
	"github.com/ik5/foxaudio/native"
)

// Bank is a loaded studio bank.
type Bank struct {
	m    *Manager
	h    native.Bank
	id   handle.Handle
	life lifetime
}

// LoadBank loads a bank through the file loader.
func (m *Manager) LoadBank(path string, flags native.LoadBankFlags) (*Bank, error) {
	if _, err := m.studioSystem(); err != nil {
		return nil, err
	}

	data, err := m.readFile(path)
	if err != nil {
		return nil, err
	}

	return m.LoadBankFromBytes(data, flags)
}

// LoadBankFromBytes loads a bank from memory. The engine copies data.
func (m *Manager) LoadBankFromBytes(data []byte, flags native.LoadBankFlags) (*Bank, error) {
	s, err := m.studioSystem()
	if err != nil {
		return nil, err
	}

	h, res := m.engine.StudioSystemLoadBankMemory(s, data, native.LoadMemory, flags)
	if err := m.check("load bank", res); err != nil {
		return nil, err
	}

	b := &Bank{m: m, h: h}
	b.id = m.banks.Register(b)
	if err := m.check("set bank user data", m.engine.BankSetUserData(h, b.id.UserData())); err != nil {
		b.Dispose()
		return nil, err
	}

	return b, nil
}

func (m *Manager) LoadBankFromReader(r io.Reader, flags native.LoadBankFlags) (*Bank, error) {
	if _, err := m.studioSystem(); err != nil {
		return nil, err
	}

	data, err := readAll(r)
	if err != nil {
		return nil, err
	}

	return m.LoadBankFromBytes(data, flags)
}

func (b *Bank) Handle() handle.Handle { return b.id }

func (b *Bank) Native() native.Bank { return b.h }

func (b *Bank) LoadSampleData() error {
	return set(&b.life, b.m, "load bank sample data", func() native.Result {
		return b.m.engine.BankLoadSampleData(b.h)
	})
}

func (b *Bank) UnloadSampleData() error {
	return set(&b.life, b.m, "unload bank sample data", func() native.Result {
		return b.m.engine.BankUnloadSampleData(b.h)
	})
}

func (b *Bank) LoadingState() (native.LoadingState, error) {
	return get(&b.life, b.m, "bank loading state", func() (native.LoadingState, native.Result) {
		return b.m.engine.BankLoadingState(b.h)
	})
}

func (b *Bank) Path() (string, error) {
	return get(&b.life, b.m, "bank path", func() (string, native.Result) {
		return b.m.engine.BankPath(b.h)
	})
}

// Events returns the descriptions of the events in the bank.
func (b *Bank) Events() ([]*EventDescription, error) {
	list, err := get(&b.life, b.m, "bank event list", func() ([]native.EventDescription, native.Result) {
		return b.m.engine.BankEventList(b.h)
	})
	if err != nil {
		return nil, err
	}

	events := make([]*EventDescription, 0, len(list))
	for _, d := range list {
		ed, err := b.m.describe(d)
		if err != nil {
			return nil, err
		}
		events = append(events, ed)
	}

	return events, nil
}

// Dispose unloads the bank once. The engine destroys the instances of the
// bank's events; their wrappers are forgotten and report
// native.ErrInvalidHandle from then on.
func (b *Bank) Dispose() error {
	return b.life.dispose(func() error {
		if list, res := b.m.engine.BankEventList(b.h); res == native.OK {
			b.m.forgetEvents(list)
		}

		err := b.m.check("unload bank", b.m.engine.BankUnload(b.h))
		b.m.banks.Release(b.id)
		return err
	})
}

// forgetEvents drops the description wrappers of list and the wrappers of
// their instances from the registries.
func (m *Manager) forgetEvents(list []native.EventDescription) {
	gone := make(map[native.EventDescription]bool, len(list))
	for _, d := range list {
		gone[d] = true
	}

	m.events.Each(func(h handle.Handle, d *EventDescription) bool {
		if gone[d.h] {
			m.events.Release(h)
		}
		return true
	})
	m.instances.Each(func(h handle.Handle, in *EventInstance) bool {
		if gone[in.desc.h] {
			m.instances.Release(h)
		}
		return true
	})
}
