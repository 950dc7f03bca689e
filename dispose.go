// SPDX-License-Identifier: EPL-2.0

package foxaudio

import (
	"sync"
	"sync/atomic"

	"github.com/ik5/foxaudio/native"
)

// lifetime is the once-only dispose guard shared by the wrappers.
type lifetime struct {
	once     sync.Once
	disposed atomic.Bool
}

// dispose runs release the first time it is called. Later calls return
// nil without running it.
func (l *lifetime) dispose(release func() error) error {
	var err error
	l.once.Do(func() {
		l.disposed.Store(true)
		err = release()
	})

	return err
}

// alive returns ErrDisposed once the wrapper has been disposed.
func (l *lifetime) alive() error {
	if l.disposed.Load() {
		return ErrDisposed
	}

	return nil
}

// usable fails for disposed wrappers and for wrappers of a Manager that
// is no longer initialized.
func (l *lifetime) usable(m *Manager) error {
	if err := l.alive(); err != nil {
		return err
	}

	return m.ready()
}

// get runs a native getter on a usable wrapper.
func get[T any](l *lifetime, m *Manager, op string, call func() (T, native.Result)) (T, error) {
	var zero T
	if err := l.usable(m); err != nil {
		return zero, err
	}

	v, res := call()
	if err := m.check(op, res); err != nil {
		return zero, err
	}

	return v, nil
}

// set runs a native setter on a usable wrapper.
func set(l *lifetime, m *Manager, op string, call func() native.Result) error {
	if err := l.usable(m); err != nil {
		return err
	}

	return m.check(op, call())
}
