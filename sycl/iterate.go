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

import "sync/atomic"

// Iterate calls fn once for every coordinate c with 0 <= c[i] < size[i],
// sequentially and in row-major order: dimension 0 varies slowest, the last
// dimension fastest. Every call sees a fully populated coordinate.
// Iteration stops at the first error, which is returned unchanged.
//
// A zero or negative component means zero calls.
func Iterate(size Range, fn func(ID) error) error {
	idx := ZeroID(size.Dims())
	return iterateFrom(0, size, &idx, fn)
}

// iterateFrom loops dimension dim and recurses into the next one. The
// coordinate buffer idx is shared along one depth-first chain: slots below
// dim are fixed by the callers, and slot dim is set before recursing.
func iterateFrom(dim int, size Range, idx *ID, fn func(ID) error) error {
	if dim == size.dims {
		return fn(*idx)
	}
	for i := range size.c[dim] {
		idx.c[dim] = i
		if err := iterateFrom(dim+1, size, idx, fn); err != nil {
			return err
		}
	}
	return nil
}

// iterateOuterSlice visits the coordinates whose dimension-0 component is in
// [start, end), with a coordinate buffer private to the caller. It checks
// stop before every outer index and returns nil once it is set.
func iterateOuterSlice(size Range, start, end int, stop *atomic.Bool, fn func(ID) error) error {
	idx := ZeroID(size.Dims())
	for i := start; i < end; i++ {
		if stop.Load() {
			return nil
		}
		idx.c[0] = i
		if err := iterateFrom(1, size, &idx, fn); err != nil {
			stop.Store(true)
			return err
		}
	}
	return nil
}
