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

// Item describes one work-item of an nd-range launch.
// Kernels receive it by value; it is only meaningful during the call.
type Item struct {
	global ID
	local  ID
	group  ID
	nd     NDRange
}

// newItem reconstructs the work-item at local coordinate l of group g:
// global = offset + l + local*g.
func newItem(nd NDRange, g, l ID) Item {
	return Item{
		global: nd.offset.Add(l).Add(g.Mul(nd.local)),
		local:  l,
		group:  g,
		nd:     nd,
	}
}

// Global returns the global coordinate.
func (it Item) Global() ID { return it.global }

// GlobalAt returns one component of the global coordinate.
func (it Item) GlobalAt(dim int) int { return it.global.Get(dim) }

// Local returns the coordinate inside the work-group.
func (it Item) Local() ID { return it.local }

// LocalAt returns one component of the local coordinate.
func (it Item) LocalAt(dim int) int { return it.local.Get(dim) }

// Group returns the work-group coordinate.
func (it Item) Group() ID { return it.group }

// LocalRange returns the work-group size.
func (it Item) LocalRange() Range { return it.nd.local }

// GlobalRange returns the global size.
func (it Item) GlobalRange() Range { return it.nd.global }

// NDRange returns the nd-range the item was decomposed from.
func (it Item) NDRange() NDRange { return it.nd }

// Dims returns the dimensionality.
func (it Item) Dims() int { return it.nd.Dims() }

// Group is the handle passed to work-group kernels of
// Executor.ParallelForWorkGroup.
type Group struct {
	id ID
	nd NDRange
}

// ID returns the work-group coordinate.
func (g Group) ID() ID { return g.id }

// LocalRange returns the number of work-items in the group.
func (g Group) LocalRange() Range { return g.nd.local }

// GroupRange returns the number of work-groups of the launch.
func (g Group) GroupRange() Range { return g.nd.GroupRange() }

// NDRange returns the nd-range of the launch.
func (g Group) NDRange() NDRange { return g.nd }

// ParallelForWorkItem runs kernel once for every work-item of the group,
// sequentially on the calling goroutine. It stops at the first error.
func (g Group) ParallelForWorkItem(kernel func(Item) error) error {
	return Iterate(g.nd.local, func(l ID) error {
		it := newItem(g.nd, g.id, l)
		if err := kernel(it); err != nil {
			return kernelError("parallel_for_work_item", it.global, err)
		}
		return nil
	})
}

// Barrier is a synchronization point between the work-items of the group.
// Work-items of one group run sequentially, so it does nothing.
func (g Group) Barrier(FenceSpace) {}
