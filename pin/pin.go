// SPDX-License-Identifier: EPL-2.0

package pin

import (
	"runtime"
	"unsafe"
)

// Buffer keeps a byte slice reachable and pinned while native code holds a
// raw pointer into it.
type Buffer struct {
	data   []byte
	pinner runtime.Pinner
	pinned bool
}

// New pins data. An empty slice yields a Buffer that is never pinned.
func New(data []byte) *Buffer {
	b := &Buffer{data: data}
	if len(data) > 0 {
		b.pinner.Pin(&data[0])
		b.pinned = true
	}

	return b
}

// Bytes returns the pinned slice, or nil after Release.
func (b *Buffer) Bytes() []byte { return b.data }

// Len returns the number of pinned bytes.
func (b *Buffer) Len() int { return len(b.data) }

// Pinned reports whether the buffer is still pinned.
func (b *Buffer) Pinned() bool { return b.pinned }

// Addr returns the address of the first byte, or 0 when nothing is pinned.
func (b *Buffer) Addr() uintptr {
	if !b.pinned {
		return 0
	}

	return uintptr(unsafe.Pointer(unsafe.SliceData(b.data)))
}

// Release unpins the buffer and drops the reference to it. Calling Release
// more than once is a no-op.
func (b *Buffer) Release() {
	if !b.pinned {
		b.data = nil
		return
	}

	b.pinner.Unpin()
	b.pinned = false
	b.data = nil
}
