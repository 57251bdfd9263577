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
	"errors"
	"fmt"
)

// Contract violations are reported with panics whose value is an error
// wrapping one of these sentinels, so callers that recover can use errors.Is.
// Conditions a caller can reasonably handle are returned instead.
var (
	// ErrInvalidDims is raised when a range, id or buffer is built with a
	// dimensionality outside [1, MaxDims].
	ErrInvalidDims = errors.New("sycl: dimensionality must be between 1 and 3")

	// ErrDimensionMismatch is raised when operands of different
	// dimensionality are combined.
	ErrDimensionMismatch = errors.New("sycl: dimensionality mismatch")

	// ErrInvalidDivisor is raised by a ceiling division with a divisor
	// component <= 0, and returned when an nd-range has such a local size.
	ErrInvalidDivisor = errors.New("sycl: local size must be positive")

	// ErrNegativeSize is returned when a launch range has a negative
	// component, and raised when a buffer is built with such a shape.
	ErrNegativeSize = errors.New("sycl: negative size")

	// ErrIncompleteWorkGroup is returned when a global size is not an exact
	// multiple of the local size.
	ErrIncompleteWorkGroup = errors.New("sycl: global size is not a multiple of local size")

	// ErrOutOfBounds is raised by checked accessor indexing.
	ErrOutOfBounds = errors.New("sycl: index out of bounds")

	// ErrShortStorage is raised when wrapped storage holds fewer elements
	// than the buffer shape needs.
	ErrShortStorage = errors.New("sycl: storage smaller than buffer shape")

	// ErrNoDevice is returned when no device gets a non-negative score.
	ErrNoDevice = errors.New("sycl: no device matches the selector")
)

// KernelError reports the first kernel failure of a launch together with
// the coordinate the kernel was running on.
type KernelError struct {
	// Launch is "parallel_for", "parallel_for_nd", "parallel_for_work_group"
	// or "single_task".
	Launch string
	// Index is the global coordinate of the failing work-item, or the
	// work-group coordinate for work-group kernels. It is the zero value
	// for single tasks.
	Index ID
	Err   error
}

func (e *KernelError) Error() string {
	if e.Index.Dims() == 0 {
		return fmt.Sprintf("sycl: %s: kernel failed: %v", e.Launch, e.Err)
	}
	return fmt.Sprintf("sycl: %s: kernel failed at %v: %v", e.Launch, e.Index, e.Err)
}

func (e *KernelError) Unwrap() error { return e.Err }

// contractf panics with an error wrapping sentinel.
func contractf(sentinel error, format string, args ...any) {
	panic(fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...))
}
