// Copyright 2025 go-sycl Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sycl

import "unsafe"

// Buffer is a multi-dimensional array of a fixed shape, stored row-major in
// a flat slice. It either owns its storage or wraps storage owned by the
// caller. Kernels reach the elements through an Accessor.
//
// A Buffer is not synchronized: kernels that write overlapping elements
// concurrently race.
type Buffer[T any] struct {
	data     []T
	shape    Range
	owned    bool
	readOnly bool
	final    []T
}

// NewBuffer allocates a zeroed buffer of the given shape.
func NewBuffer[T any](shape Range) *Buffer[T] {
	checkShape(shape)
	return &Buffer[T]{
		data:  make([]T, shape.Size()),
		shape: shape,
		owned: true,
	}
}

// WrapBuffer interprets data as a buffer of the given shape without
// copying. Writes through accessors are visible in data.
// data must hold at least shape.Size() elements.
func WrapBuffer[T any](data []T, shape Range) *Buffer[T] {
	checkShape(shape)
	if len(data) < shape.Size() {
		contractf(ErrShortStorage, "%d elements for shape %v", len(data), shape)
	}
	return &Buffer[T]{data: data[:shape.Size()], shape: shape}
}

// checkShape panics unless shape is a valid buffer shape: 1 to 3
// dimensions, none negative.
func checkShape(shape Range) {
	checkDims(shape.Dims())
	if err := checkSize(shape); err != nil {
		contractf(ErrNegativeSize, "buffer shape %v", shape)
	}
}

// WrapReadOnlyBuffer is WrapBuffer for storage the caller treats as
// immutable. The flag is metadata only: accessors can still write, and a
// warning is logged when a writing accessor is requested.
func WrapReadOnlyBuffer[T any](data []T, shape Range) *Buffer[T] {
	b := WrapBuffer(data, shape)
	b.readOnly = true
	return b
}

// NewBufferFromSlice allocates a one-dimensional buffer holding a copy of
// elems.
func NewBufferFromSlice[T any](elems []T) *Buffer[T] {
	b := NewBuffer[T](NewRange(len(elems)))
	copy(b.data, elems)
	return b
}

// Clone returns a writable buffer with freshly allocated storage holding a
// copy of the current contents. The clone never aliases b.
func (b *Buffer[T]) Clone() *Buffer[T] {
	clone := &Buffer[T]{
		data:  make([]T, len(b.data)),
		shape: b.shape,
		owned: true,
	}
	copy(clone.data, b.data)
	return clone
}

// Range returns the buffer shape.
func (b *Buffer[T]) Range() Range { return b.shape }

// Dims returns the dimensionality of the buffer.
func (b *Buffer[T]) Dims() int { return b.shape.Dims() }

// Count returns the number of elements.
func (b *Buffer[T]) Count() int { return len(b.data) }

// SizeBytes returns the size of the storage in bytes.
func (b *Buffer[T]) SizeBytes() int {
	var zero T
	return len(b.data) * int(unsafe.Sizeof(zero))
}

// ReadOnly reports whether the buffer wraps read-only storage.
func (b *Buffer[T]) ReadOnly() bool { return b.readOnly }

// Owned reports whether the buffer allocated its storage.
func (b *Buffer[T]) Owned() bool { return b.owned }

// Access returns a read-write view of the buffer. mode and the optional
// target are recorded on the accessor.
func (b *Buffer[T]) Access(mode AccessMode, target ...AccessTarget) Accessor[T] {
	t := TargetGlobalBuffer
	switch len(target) {
	case 0:
	case 1:
		t = target[0]
	default:
		panic("sycl: Buffer.Access takes at most one target")
	}
	if b.readOnly && mode.Writes() {
		Logger().Warn("writing accessor on read-only buffer",
			"mode", mode, "target", t, "shape", b.shape)
	}
	return Accessor[T]{
		data:    b.data,
		shape:   b.shape,
		mode:    mode,
		target:  t,
		checked: boundsCheckDefault,
	}
}

// SetFinalData registers dst to receive the buffer contents on Release.
// nil cancels a previous registration.
func (b *Buffer[T]) SetFinalData(dst []T) {
	b.final = dst
}

// Release ends the buffer scope: the contents are copied to the slice
// registered with SetFinalData, if any. It returns the number of elements
// copied.
func (b *Buffer[T]) Release() int {
	if b.final == nil {
		return 0
	}
	n := copy(b.final, b.data)
	b.final = nil
	return n
}
