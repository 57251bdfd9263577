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

// Package sycl is a host-only implementation of the SYCL data-parallel
// kernel model.
//
// A launch describes an iteration space of 1 to 3 dimensions and a kernel.
// The engine visits every coordinate of the space exactly once and calls the
// kernel with it. Kernels read and write data through accessors, which are
// multi-dimensional views over the linear storage of a Buffer.
//
// # Iteration spaces
//
// Range is a size and ID a coordinate. NDRange splits a global range into
// work-groups of a local size:
//
//	nd := sycl.NewNDRange(sycl.NewRange(10, 10), sycl.NewRange(2, 5))
//	nd.GroupRange() // {5,2}
//
// # Launches
//
// ParallelFor visits a flat range and passes an ID; ParallelForND visits
// every work-group, then every work-item of the group, and passes an Item
// whose global coordinate is Offset + Local + LocalRange*Group:
//
//	buf := sycl.NewBuffer[float32](sycl.NewRange(16, 16))
//	acc := buf.Access(sycl.AccessWrite)
//	err := sycl.ParallelForND(
//	    sycl.NewNDRange(sycl.NewRange(16, 16), sycl.NewRange(4, 4)),
//	    func(it sycl.Item) error {
//	        *acc.AtItem(it) = float32(it.GlobalAt(0) + it.GlobalAt(1))
//	        return nil
//	    })
//
// Launches are synchronous. An Executor runs them either sequentially in
// row-major order (ModeSequential) or with the outermost dimension spread
// across workers (ModeParallelOuter, the default). Workers come from a
// per-launch fan-out or from a persistent workerpool.Pool.
//
// # Errors
//
// Contract violations panic with an error wrapping one of the Err*
// sentinels: mixing dimensionalities, dividing by a zero local size,
// indexing an accessor out of bounds. A kernel error aborts the launch and
// is returned as a *KernelError.
//
// # Environment
//
// DefaultOptions reads SYCL_SEQUENTIAL, SYCL_NUM_WORKERS and SYCL_SCHEDULE.
// SYCL_NO_BOUNDS_CHECK disables the accessor per-dimension check.
package sycl
