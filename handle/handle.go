// SPDX-License-Identifier: EPL-2.0

package handle

import (
	"math"
	"slices"
	"sync"
)

// Handle identifies a registered object. The zero value is never issued.
type Handle uint64

// FromUserData recovers a Handle stored in a native user-data slot.
func FromUserData(p uintptr) Handle {
	return Handle(p)
}

// UserData returns the value to store in a native user-data slot.
func (h Handle) UserData() uintptr {
	return uintptr(h)
}

// Valid reports whether h could have been issued by a Registry.
func (h Handle) Valid() bool {
	return h != 0
}

// Registry maps handles to objects. Handles increase monotonically and are
// never reused for the lifetime of the registry.
type Registry[T any] struct {
	items map[Handle]T
	next  Handle

	mtx *sync.Mutex
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[Handle]T),
		next:  1,
		mtx:   &sync.Mutex{},
	}
}

// Register stores v and returns its handle.
// It panics if the handle space is exhausted.
func (r *Registry[T]) Register(v T) Handle {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.next == math.MaxUint64 {
		panic(ErrExhausted)
	}

	h := r.next
	r.next++
	r.items[h] = v

	return h
}

// Resolve returns the object registered under h. Unknown, zero and released
// handles report false.
func (r *Registry[T]) Resolve(h Handle) (T, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	v, ok := r.items[h]
	return v, ok
}

// ResolveUserData is Resolve for a raw native user-data value.
func (r *Registry[T]) ResolveUserData(p uintptr) (T, bool) {
	return r.Resolve(FromUserData(p))
}

// Release drops the association for h. Releasing an unknown handle is a no-op.
func (r *Registry[T]) Release(h Handle) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	delete(r.items, h)
}

// Len returns the number of live associations.
func (r *Registry[T]) Len() int {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return len(r.items)
}

// Each calls fn for every live association in ascending handle order until
// fn returns false. fn runs without the registry lock held, so it may call
// Release.
func (r *Registry[T]) Each(fn func(Handle, T) bool) {
	r.mtx.Lock()
	handles := make([]Handle, 0, len(r.items))
	for h := range r.items {
		handles = append(handles, h)
	}
	r.mtx.Unlock()

	slices.Sort(handles)

	for _, h := range handles {
		v, ok := r.Resolve(h)
		if !ok {
			continue
		}
		if !fn(h, v) {
			return
		}
	}
}
