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

// Context groups the device a queue submits to.
type Context struct {
	device Device
}

// NewContext selects a device with sel (DefaultSelector if nil).
func NewContext(sel Selector) (*Context, error) {
	dev, err := SelectDevice(sel)
	if err != nil {
		return nil, fmt.Errorf("sycl: creating context: %w", err)
	}
	Logger().Info("context created", "device", dev.Name, "type", dev.Type, "units", dev.ComputeUnits)
	return &Context{device: dev}, nil
}

// Device returns the selected device.
func (c *Context) Device() Device { return c.device }

// Queue submits command groups to a context. Submission is synchronous:
// Submit returns once every kernel of the command group has finished.
type Queue struct {
	ctx  *Context
	exec *Executor
}

// NewQueue returns a queue on ctx. A nil ctx uses a context from
// DefaultSelector. The executor follows the device: the host device runs
// sequentially, the CPU device in parallel-outer mode with one worker per
// compute unit. opts, if non-nil, overrides that choice.
func NewQueue(ctx *Context, opts *Options) (*Queue, error) {
	if ctx == nil {
		var err error
		if ctx, err = NewContext(nil); err != nil {
			return nil, err
		}
	}
	if opts == nil {
		o := DefaultOptions()
		if ctx.device.Type == DeviceHost {
			o = SequentialOptions()
		} else if o.Mode == ModeParallelOuter {
			o.Workers = ctx.device.ComputeUnits
		}
		opts = &o
	}
	return &Queue{ctx: ctx, exec: NewExecutor(opts)}, nil
}

// Context returns the queue's context.
func (q *Queue) Context() *Context { return q.ctx }

// Executor returns the executor running the queue's kernels.
func (q *Queue) Executor() *Executor { return q.exec }

// Submit runs a command group immediately, passing it a Handler bound to
// the queue. The command group's error is returned.
func (q *Queue) Submit(cg func(h *Handler) error) error {
	return cg(&Handler{q: q})
}

// Handler is the command-group handle that launches kernels on a queue.
type Handler struct {
	q *Queue
}

// ParallelFor runs a flat launch on the queue's executor.
func (h *Handler) ParallelFor(r Range, kernel func(ID) error) error {
	return h.q.exec.ParallelFor(r, kernel)
}

// ParallelForND runs an nd-range launch on the queue's executor.
func (h *Handler) ParallelForND(nd NDRange, kernel func(Item) error) error {
	return h.q.exec.ParallelForND(nd, kernel)
}

// ParallelForWorkGroup runs a work-group launch on the queue's executor.
func (h *Handler) ParallelForWorkGroup(nd NDRange, kernel func(Group) error) error {
	return h.q.exec.ParallelForWorkGroup(nd, kernel)
}

// SingleTask runs fn once.
func (h *Handler) SingleTask(fn func() error) error {
	return h.q.exec.SingleTask(fn)
}

// CommandGroup runs fn immediately. The queue is not consulted; fn
// typically launches kernels on the same queue.
func CommandGroup(q *Queue, fn func() error) error {
	return fn()
}

// Program is an opaque token naming a compiled kernel set. Launches accept
// it for interface compatibility and otherwise ignore it.
type Program struct {
	name string
	ctx  *Context
}

// NewProgram returns a program token for ctx.
func NewProgram(ctx *Context, name string) *Program {
	return &Program{name: name, ctx: ctx}
}

// Name returns the program name.
func (p *Program) Name() string { return p.name }

// Context returns the context the program was created for.
func (p *Program) Context() *Context { return p.ctx }

// KernelLambda labels a kernel with a name and returns it unchanged.
func KernelLambda[F any](name string, fn F) F {
	return fn
}
