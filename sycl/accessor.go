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

// Accessor is a read-write view of one Buffer. It is a small value meant to
// be captured by kernels. The linear, coordinate and item forms of indexing
// address the same element: At(id) is Linear(Range().Linearize(id)), and
// AtItem(it) is At(it.Global()).
//
// Coordinates are checked per dimension unless the accessor is Unchecked
// or SYCL_NO_BOUNDS_CHECK was set at startup; an out-of-range coordinate
// panics with an error wrapping ErrOutOfBounds. Linear offsets are always
// checked against the storage size.
type Accessor[T any] struct {
	data    []T
	shape   Range
	mode    AccessMode
	target  AccessTarget
	checked bool
}

// Range returns the shape of the underlying buffer.
func (a Accessor[T]) Range() Range { return a.shape }

// Dims returns the dimensionality.
func (a Accessor[T]) Dims() int { return a.shape.Dims() }

// Count returns the number of addressable elements.
func (a Accessor[T]) Count() int { return len(a.data) }

// Mode returns the requested access mode.
func (a Accessor[T]) Mode() AccessMode { return a.mode }

// Target returns the requested access target.
func (a Accessor[T]) Target() AccessTarget { return a.target }

// Checked reports whether coordinates are bounds-checked per dimension.
func (a Accessor[T]) Checked() bool { return a.checked }

// Unchecked returns a copy of the accessor that skips the per-dimension
// check. An out-of-range coordinate then aliases another element, or
// panics if it falls outside the storage.
func (a Accessor[T]) Unchecked() Accessor[T] {
	a.checked = false
	return a
}

// Linear returns a pointer to the element at a row-major offset.
func (a Accessor[T]) Linear(offset int) *T {
	if offset < 0 || offset >= len(a.data) {
		contractf(ErrOutOfBounds, "offset %d of %d", offset, len(a.data))
	}
	return &a.data[offset]
}

// At returns a pointer to the element at coordinate id.
func (a Accessor[T]) At(id ID) *T {
	if a.checked && !a.shape.Contains(id) {
		contractf(ErrOutOfBounds, "%v in %v", id, a.shape)
	}
	return &a.data[a.shape.Linearize(id)]
}

// AtItem returns a pointer to the element at the item's global coordinate.
func (a Accessor[T]) AtItem(it Item) *T {
	return a.At(it.global)
}

// Get returns the element at coordinate id.
func (a Accessor[T]) Get(id ID) T { return *a.At(id) }

// Set stores v at coordinate id.
func (a Accessor[T]) Set(id ID, v T) { *a.At(id) = v }
