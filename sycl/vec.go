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

import (
	"strconv"
	"strings"
)

// MaxDims is the largest supported dimensionality.
const MaxDims = 3

// Integer is the set of integer types accepted by RangeOf and IDOf.
// Unsigned inputs are narrowed to int.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// vec is the fixed-capacity storage shared by Range and ID.
// Components beyond dims are always zero.
type vec struct {
	dims int
	c    [MaxDims]int
}

func newVec(vals []int) vec {
	checkDims(len(vals))
	var v vec
	v.dims = len(vals)
	copy(v.c[:], vals)
	return v
}

func zeroVec(dims int) vec {
	checkDims(dims)
	return vec{dims: dims}
}

func checkDims(dims int) {
	if dims < 1 || dims > MaxDims {
		contractf(ErrInvalidDims, "got %d", dims)
	}
}

func (v vec) sameDims(o vec) {
	if v.dims != o.dims {
		contractf(ErrDimensionMismatch, "%d vs %d", v.dims, o.dims)
	}
}

// Dims returns the dimensionality, or 0 for the zero value.
func (v vec) Dims() int { return v.dims }

// Get returns the component for dimension dim.
func (v vec) Get(dim int) int {
	v.checkIndex(dim)
	return v.c[dim]
}

// Set assigns the component for dimension dim.
func (v *vec) Set(dim, value int) {
	v.checkIndex(dim)
	v.c[dim] = value
}

func (v vec) checkIndex(dim int) {
	if dim < 0 || dim >= v.dims {
		contractf(ErrOutOfBounds, "dimension %d of %d", dim, v.dims)
	}
}

// Slice returns the components as a new slice.
func (v vec) Slice() []int {
	out := make([]int, v.dims)
	copy(out, v.c[:v.dims])
	return out
}

// String formats the components as {a,b,c}.
func (v vec) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i := range v.dims {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v.c[i]))
	}
	sb.WriteByte('}')
	return sb.String()
}

func (v vec) zip(o vec, op func(a, b int) int) vec {
	v.sameDims(o)
	r := vec{dims: v.dims}
	for i := range v.dims {
		r.c[i] = op(v.c[i], o.c[i])
	}
	return r
}

func add(a, b int) int { return a + b }
func mul(a, b int) int { return a * b }

// Range is a size in 1 to 3 dimensions.
// It is a value type; operators never modify their operands.
type Range struct{ vec }

// NewRange returns a range with one component per argument.
// It panics unless 1 <= len(sizes) <= MaxDims.
func NewRange(sizes ...int) Range { return Range{newVec(sizes)} }

// ZeroRange returns the all-zero range of the given dimensionality.
func ZeroRange(dims int) Range { return Range{zeroVec(dims)} }

// RangeOf is NewRange for any integer type, narrowing to int.
func RangeOf[I Integer](sizes ...I) Range {
	return Range{newVec(toInts(sizes))}
}

// Add returns r + o element-wise.
func (r Range) Add(o Range) Range { return Range{r.zip(o.vec, add)} }

// Mul returns r * o element-wise.
func (r Range) Mul(o Range) Range { return Range{r.zip(o.vec, mul)} }

// CeilDiv returns the element-wise division of r by divisor, rounded up.
// Every divisor component must be positive.
func (r Range) CeilDiv(divisor Range) Range {
	return Range{r.zip(divisor.vec, func(a, b int) int {
		if b <= 0 {
			contractf(ErrInvalidDivisor, "divisor %v", divisor)
		}
		return (a + b - 1) / b
	})}
}

// Size returns the number of points in the range, the product of its
// components. A range with a negative component has size 0.
func (r Range) Size() int {
	if r.dims == 0 {
		return 0
	}
	n := 1
	for i := range r.dims {
		if r.c[i] <= 0 {
			return 0
		}
		n *= r.c[i]
	}
	return n
}

// Equal reports whether r and o have the same dimensionality and values.
func (r Range) Equal(o Range) bool { return r.vec == o.vec }

// ID reinterprets the range as a coordinate.
func (r Range) ID() ID { return ID(r) }

// Contains reports whether 0 <= id[i] < r[i] for every dimension.
func (r Range) Contains(id ID) bool {
	r.sameDims(id.vec)
	for i := range r.dims {
		if id.c[i] < 0 || id.c[i] >= r.c[i] {
			return false
		}
	}
	return true
}

// Linearize returns the row-major offset of id inside r: the last
// dimension varies fastest. It does not check bounds.
func (r Range) Linearize(id ID) int {
	r.sameDims(id.vec)
	off := 0
	for i := range r.dims {
		off = off*r.c[i] + id.c[i]
	}
	return off
}

// Delinearize is the inverse of Linearize for 0 <= offset < r.Size().
func (r Range) Delinearize(offset int) ID {
	id := ID{vec{dims: r.dims}}
	for i := r.dims - 1; i >= 0; i-- {
		if r.c[i] == 0 {
			continue
		}
		id.c[i] = offset % r.c[i]
		offset /= r.c[i]
	}
	return id
}

// ID is a point in a 1 to 3 dimensional iteration space.
type ID struct{ vec }

// NewID returns a coordinate with one component per argument.
func NewID(coords ...int) ID { return ID{newVec(coords)} }

// ZeroID returns the origin of the given dimensionality.
func ZeroID(dims int) ID { return ID{zeroVec(dims)} }

// IDOf is NewID for any integer type, narrowing to int.
func IDOf[I Integer](coords ...I) ID {
	return ID{newVec(toInts(coords))}
}

// Add returns id + o element-wise.
func (id ID) Add(o ID) ID { return ID{id.zip(o.vec, add)} }

// Mul scales id element-wise by a range, as in LocalSize * GroupID.
func (id ID) Mul(r Range) ID { return ID{id.zip(r.vec, mul)} }

// Equal reports whether id and o have the same dimensionality and values.
func (id ID) Equal(o ID) bool { return id.vec == o.vec }

// Range reinterprets the coordinate as a size.
func (id ID) Range() Range { return Range(id) }

func toInts[I Integer](vals []I) []int {
	out := make([]int, len(vals))
	for i, v := range vals {
		out[i] = int(v)
	}
	return out
}
