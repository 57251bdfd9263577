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

import "fmt"

// NDRange pairs a global iteration space with a work-group size and an
// optional offset added to every global coordinate.
type NDRange struct {
	global Range
	local  Range
	offset ID
}

// NewNDRange returns the nd-range for global and local sizes. The offset
// defaults to the origin; at most one offset may be given.
// Operands of different dimensionality panic.
func NewNDRange(global, local Range, offset ...ID) NDRange {
	global.sameDims(local.vec)
	nd := NDRange{global: global, local: local, offset: ZeroID(global.Dims())}
	switch len(offset) {
	case 0:
	case 1:
		global.sameDims(offset[0].vec)
		nd.offset = offset[0]
	default:
		panic("sycl: NewNDRange takes at most one offset")
	}
	return nd
}

// Dims returns the dimensionality.
func (nd NDRange) Dims() int { return nd.global.Dims() }

// GlobalRange returns the size of the whole iteration space.
func (nd NDRange) GlobalRange() Range { return nd.global }

// LocalRange returns the work-group size.
func (nd NDRange) LocalRange() Range { return nd.local }

// GroupRange returns the number of work-groups per dimension,
// ceil(global / local). The local size must be positive.
func (nd NDRange) GroupRange() Range { return nd.global.CeilDiv(nd.local) }

// Offset returns the offset added to global coordinates.
func (nd NDRange) Offset() ID { return nd.offset }

// Validate reports whether the nd-range can be launched: global sizes must
// be non-negative, local sizes positive, and each global size an exact
// multiple of the local size. Incomplete work-groups are not supported.
func (nd NDRange) Validate() error {
	for i := range nd.Dims() {
		g, l := nd.global.Get(i), nd.local.Get(i)
		switch {
		case g < 0:
			return fmt.Errorf("dimension %d: global size %d: %w", i, g, ErrNegativeSize)
		case l <= 0:
			return fmt.Errorf("dimension %d: local size %d: %w", i, l, ErrInvalidDivisor)
		case g%l != 0:
			return fmt.Errorf("dimension %d: %d %% %d != 0: %w", i, g, l, ErrIncompleteWorkGroup)
		}
	}
	return nil
}

// String formats the nd-range for logs.
func (nd NDRange) String() string {
	return fmt.Sprintf("nd_range{global=%v local=%v offset=%v}", nd.global, nd.local, nd.offset)
}
