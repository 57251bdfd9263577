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

// Launch kinds, as reported in KernelError.Launch and in debug logs.
const (
	launchFlat      = "parallel_for"
	launchND        = "parallel_for_nd"
	launchWorkGroup = "parallel_for_work_group"
	launchSingle    = "single_task"
)

// ParallelFor runs kernel once for every coordinate of r.
//
// In ModeParallelOuter kernels run concurrently and in no particular order;
// they must only share state that is safe for concurrent use. The first
// kernel error aborts the launch and is returned as a *KernelError.
// A kernel panic is re-raised on the calling goroutine.
func (e *Executor) ParallelFor(r Range, kernel func(ID) error) error {
	if err := checkSize(r); err != nil {
		return fmt.Errorf("sycl: %s %v: %w", launchFlat, r, err)
	}
	e.logLaunch(launchFlat, r)
	return e.iterate(r, func(id ID) error {
		if err := kernel(id); err != nil {
			return kernelError(launchFlat, id, err)
		}
		return nil
	})
}

// ParallelForND runs kernel once for every work-item of nd. Work-groups are
// visited over nd.GroupRange(); inside a group the work-items are visited
// over nd.LocalRange() and the kernel receives an Item whose global
// coordinate is Offset + Local + LocalRange*Group.
//
// nd must pass Validate; otherwise the launch returns the validation error
// without running any kernel.
func (e *Executor) ParallelForND(nd NDRange, kernel func(Item) error) error {
	if err := nd.Validate(); err != nil {
		return fmt.Errorf("sycl: %s %v: %w", launchND, nd, err)
	}
	e.logLaunch(launchND, nd)
	local := nd.LocalRange()
	return e.iterate(nd.GroupRange(), func(g ID) error {
		return Iterate(local, func(l ID) error {
			it := newItem(nd, g, l)
			if err := kernel(it); err != nil {
				return kernelError(launchND, it.global, err)
			}
			return nil
		})
	})
}

// ParallelForWorkGroup runs kernel once per work-group of nd. The kernel
// typically calls Group.ParallelForWorkItem to visit its work-items.
func (e *Executor) ParallelForWorkGroup(nd NDRange, kernel func(Group) error) error {
	if err := nd.Validate(); err != nil {
		return fmt.Errorf("sycl: %s %v: %w", launchWorkGroup, nd, err)
	}
	e.logLaunch(launchWorkGroup, nd)
	return e.iterate(nd.GroupRange(), func(g ID) error {
		if err := kernel(Group{id: g, nd: nd}); err != nil {
			return kernelError(launchWorkGroup, g, err)
		}
		return nil
	})
}

// ParallelForProgram is ParallelFor with a program token. The program only
// identifies the kernel for the caller; it does not change the launch.
func (e *Executor) ParallelForProgram(r Range, p *Program, kernel func(ID) error) error {
	if p != nil {
		Logger().Debug("program", "name", p.Name(), "launch", launchFlat)
	}
	return e.ParallelFor(r, kernel)
}

// ParallelForNDProgram is ParallelForND with a program token.
func (e *Executor) ParallelForNDProgram(nd NDRange, p *Program, kernel func(Item) error) error {
	if p != nil {
		Logger().Debug("program", "name", p.Name(), "launch", launchND)
	}
	return e.ParallelForND(nd, kernel)
}

// SingleTask runs fn once on the calling goroutine.
func (e *Executor) SingleTask(fn func() error) error {
	e.logLaunch(launchSingle, nil)
	if err := fn(); err != nil {
		return kernelError(launchSingle, ID{}, err)
	}
	return nil
}

func (e *Executor) logLaunch(kind string, space any) {
	Logger().Debug("launch",
		"kind", kind,
		"space", space,
		"mode", e.opts.Mode,
		"schedule", e.opts.Schedule,
		"workers", e.Workers())
}

// checkSize rejects ranges with a negative component when used as a size.
func checkSize(r Range) error {
	for i := range r.Dims() {
		if r.Get(i) < 0 {
			return fmt.Errorf("dimension %d: %d: %w", i, r.Get(i), ErrNegativeSize)
		}
	}
	return nil
}

// kernelError wraps err unless an inner launch already attached a
// coordinate to it.
func kernelError(launch string, idx ID, err error) error {
	var ke *KernelError
	if errors.As(err, &ke) {
		return err
	}
	return &KernelError{Launch: launch, Index: idx, Err: err}
}

// ParallelFor runs a flat launch on the default executor.
func ParallelFor(r Range, kernel func(ID) error) error {
	return Default().ParallelFor(r, kernel)
}

// ParallelForND runs an nd-range launch on the default executor.
func ParallelForND(nd NDRange, kernel func(Item) error) error {
	return Default().ParallelForND(nd, kernel)
}

// ParallelForWorkGroup runs a work-group launch on the default executor.
func ParallelForWorkGroup(nd NDRange, kernel func(Group) error) error {
	return Default().ParallelForWorkGroup(nd, kernel)
}

// SingleTask runs fn once on the default executor.
func SingleTask(fn func() error) error {
	return Default().SingleTask(fn)
}
