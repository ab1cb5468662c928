// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"
	"unsafe"

	"cogentcore.org/core/base/errors"
)

// ErrReleased is returned when drawing with a Program or buffer
// that has already been released.
var ErrReleased = errors.New("gpu: use of released resource")

// VertexBuffer is a static (upload once) buffer of vertex records,
// each Stride bytes long.
type VertexBuffer struct {
	cx     *Context
	handle uint32
	size   int
	stride int
}

// NewVertexBuffer uploads the given vertex data to a new VertexBuffer
// with the given record stride in bytes. It binds the new buffer to
// the ArrayBuffer target.
func (cx *Context) NewVertexBuffer(data []byte, stride int) *VertexBuffer {
	if stride <= 0 {
		panic(fmt.Sprintf("gpu.NewVertexBuffer: stride must be > 0, not %d", stride))
	}
	cx.mu.Lock()
	defer cx.mu.Unlock()
	h := cx.Backend.CreateBuffer(ArrayBuffer, data)
	cx.buffers[ArrayBuffer] = h
	return &VertexBuffer{cx: cx, handle: h, size: len(data), stride: stride}
}

// NewVertexBufferFrom uploads the given vertex records to a new
// VertexBuffer, with a stride equal to the size of E.
func NewVertexBufferFrom[E any](cx *Context, verts []E) *VertexBuffer {
	var e E
	return cx.NewVertexBuffer(ToBytes(verts), int(unsafe.Sizeof(e)))
}

// Handle returns the backend handle of the buffer, 0 once released.
func (vb *VertexBuffer) Handle() uint32 {
	vb.cx.mu.Lock()
	defer vb.cx.mu.Unlock()
	return vb.handle
}

// Size returns the size of the buffer data in bytes.
func (vb *VertexBuffer) Size() int {
	return vb.size
}

// Stride returns the size of each vertex record in bytes.
func (vb *VertexBuffer) Stride() int {
	return vb.stride
}

// Len returns the number of vertex records in the buffer.
func (vb *VertexBuffer) Len() int {
	return vb.size / vb.stride
}

// Release releases the GPU buffer. It must be called exactly once;
// releasing again is a programmer error that is logged and ignored.
func (vb *VertexBuffer) Release() {
	releaseBuffer(vb.cx, &vb.handle, "VertexBuffer")
}

// IndexBuffer is a static (upload once) buffer of triangle indexes,
// of either 16 or 32 bit width.
type IndexBuffer struct {
	cx     *Context
	handle uint32
	size   int
	typ    IndexTypes
}

// NewIndexBuffer uploads the given raw index data to a new IndexBuffer
// with indexes of the given type. It binds the new buffer to the
// ElementArrayBuffer target.
func (cx *Context) NewIndexBuffer(data []byte, typ IndexTypes) *IndexBuffer {
	cx.mu.Lock()
	defer cx.mu.Unlock()
	h := cx.Backend.CreateBuffer(ElementArrayBuffer, data)
	cx.buffers[ElementArrayBuffer] = h
	return &IndexBuffer{cx: cx, handle: h, size: len(data), typ: typ}
}

// NewIndexBuffer16 uploads 16 bit indexes to a new IndexBuffer.
func (cx *Context) NewIndexBuffer16(idxs []uint16) *IndexBuffer {
	return cx.NewIndexBuffer(ToBytes(idxs), Uint16)
}

// NewIndexBuffer32 uploads 32 bit indexes to a new IndexBuffer.
func (cx *Context) NewIndexBuffer32(idxs []uint32) *IndexBuffer {
	return cx.NewIndexBuffer(ToBytes(idxs), Uint32)
}

// Handle returns the backend handle of the buffer, 0 once released.
func (ib *IndexBuffer) Handle() uint32 {
	ib.cx.mu.Lock()
	defer ib.cx.mu.Unlock()
	return ib.handle
}

// Type returns the index type.
func (ib *IndexBuffer) Type() IndexTypes {
	return ib.typ
}

// Size returns the size of the buffer data in bytes.
func (ib *IndexBuffer) Size() int {
	return ib.size
}

// Count returns the number of indexes in the buffer.
func (ib *IndexBuffer) Count() int {
	return ib.size / ib.typ.Bytes()
}

// Release releases the GPU buffer. It must be called exactly once;
// releasing again is a programmer error that is logged and ignored.
func (ib *IndexBuffer) Release() {
	releaseBuffer(ib.cx, &ib.handle, "IndexBuffer")
}

// releaseBuffer deletes the buffer and zeros its handle, under the
// Context lock so that it cannot interleave with a draw.
func releaseBuffer(cx *Context, handle *uint32, kind string) {
	cx.mu.Lock()
	defer cx.mu.Unlock()
	if *handle == 0 {
		slog.Error("programmer error: gpu." + kind + " Release called on released buffer")
		return
	}
	cx.Backend.DeleteBuffer(*handle)
	cx.forget(*handle, false)
	*handle = 0
}
