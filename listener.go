// SPDX-License-Identifier: EPL-2.0

package foxaudio

import (
	"github.com/ik5/foxaudio/native"
)

// Listener is a point of view for 3D sounds and events. Listeners occupy
// consecutive engine indices; destroying one moves the last listener into
// its slot.
type Listener struct {
	m     *Manager
	index int
	alive bool
}

// NewListener adds a listener at the next free index with its attributes
// reset to native.DefaultAttributes3D.
func (m *Manager) NewListener() (*Listener, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateInitialized {
		return nil, m.stateError()
	}

	l := &Listener{m: m, index: len(m.listeners), alive: true}
	if err := m.setNumListeners(len(m.listeners) + 1); err != nil {
		return nil, err
	}
	if err := m.setListener(l.index, native.DefaultAttributes3D()); err != nil {
		m.setNumListeners(max(len(m.listeners), 1))
		return nil, err
	}
	m.listeners = append(m.listeners, l)

	return l, nil
}

// Listeners returns the live listeners in index order.
func (m *Manager) Listeners() []*Listener {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]*Listener(nil), m.listeners...)
}

// setNumListeners routes through the studio system when there is one.
// Caller holds mu.
func (m *Manager) setNumListeners(n int) error {
	if m.studio != 0 {
		return m.check("set listener count", m.engine.StudioSystemSetNumListeners(m.studio, n))
	}

	return m.check("set listener count", m.engine.SystemSet3DNumListeners(m.core, n))
}

// Caller holds mu.
func (m *Manager) setListener(index int, attrs native.Attributes3D) error {
	if m.studio != 0 {
		return m.check("set listener attributes", m.engine.StudioSystemSetListenerAttributes(m.studio, index, attrs))
	}

	return m.check("set listener attributes", m.engine.SystemSet3DListenerAttributes(m.core, index, attrs))
}

// Caller holds mu.
func (m *Manager) listener(index int) (native.Attributes3D, error) {
	var (
		attrs native.Attributes3D
		res   native.Result
	)
	if m.studio != 0 {
		attrs, res = m.engine.StudioSystemListenerAttributes(m.studio, index)
	} else {
		attrs, res = m.engine.System3DListenerAttributes(m.core, index)
	}

	return attrs, m.check("listener attributes", res)
}

// live fails for destroyed listeners and unloaded managers. Caller holds
// mu.
func (l *Listener) live() error {
	if !l.alive {
		return ErrDisposed
	}
	if l.m.state != StateInitialized {
		return l.m.stateError()
	}

	return nil
}

// Index is the engine slot of the listener. It changes when a listener
// with a lower index is destroyed.
func (l *Listener) Index() int {
	l.m.mu.Lock()
	defer l.m.mu.Unlock()

	return l.index
}

func (l *Listener) Attributes() (native.Attributes3D, error) {
	l.m.mu.Lock()
	defer l.m.mu.Unlock()

	if err := l.live(); err != nil {
		return native.Attributes3D{}, err
	}

	return l.m.listener(l.index)
}

func (l *Listener) SetAttributes(attrs native.Attributes3D) error {
	l.m.mu.Lock()
	defer l.m.mu.Unlock()

	if err := l.live(); err != nil {
		return err
	}

	return l.m.setListener(l.index, attrs)
}

// update applies fn to the current attributes.
func (l *Listener) update(fn func(*native.Attributes3D)) error {
	l.m.mu.Lock()
	defer l.m.mu.Unlock()

	if err := l.live(); err != nil {
		return err
	}

	attrs, err := l.m.listener(l.index)
	if err != nil {
		return err
	}
	fn(&attrs)

	return l.m.setListener(l.index, attrs)
}

func (l *Listener) Position() (native.Vector, error) {
	attrs, err := l.Attributes()
	return attrs.Position, err
}

func (l *Listener) SetPosition(v native.Vector) error {
	return l.update(func(a *native.Attributes3D) { a.Position = v })
}

func (l *Listener) Velocity() (native.Vector, error) {
	attrs, err := l.Attributes()
	return attrs.Velocity, err
}

func (l *Listener) SetVelocity(v native.Vector) error {
	return l.update(func(a *native.Attributes3D) { a.Velocity = v })
}

func (l *Listener) Forward() (native.Vector, error) {
	attrs, err := l.Attributes()
	return attrs.Forward, err
}

func (l *Listener) SetForward(v native.Vector) error {
	return l.update(func(a *native.Attributes3D) { a.Forward = v })
}

func (l *Listener) Up() (native.Vector, error) {
	attrs, err := l.Attributes()
	return attrs.Up, err
}

func (l *Listener) SetUp(v native.Vector) error {
	return l.update(func(a *native.Attributes3D) { a.Up = v })
}

// Destroy removes the listener. The last listener takes over its index
// and attributes and the engine listener count shrinks by one. The engine
// always keeps one listener, so destroying the only one resets slot 0 to
// the default attributes instead. Destroying twice does nothing.
func (l *Listener) Destroy() error {
	l.m.mu.Lock()
	defer l.m.mu.Unlock()

	if !l.alive {
		return nil
	}
	l.alive = false
	if l.m.state != StateInitialized {
		return nil
	}

	m := l.m
	last := len(m.listeners) - 1
	if last == 0 {
		m.listeners = m.listeners[:0]
		return m.setListener(0, native.DefaultAttributes3D())
	}

	if l.index != last {
		moved := m.listeners[last]
		attrs, err := m.listener(last)
		if err != nil {
			return err
		}
		if err := m.setListener(l.index, attrs); err != nil {
			return err
		}
		moved.index = l.index
		m.listeners[l.index] = moved
	}
	m.listeners = m.listeners[:last]

	return m.setNumListeners(last)
}
