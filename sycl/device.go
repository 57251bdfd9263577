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
	"fmt"
	"runtime"
	"strings"

	"github.com/samber/lo"
)

// DeviceType classifies a device.
type DeviceType int

const (
	// DeviceHost runs kernels on the calling goroutine only.
	DeviceHost DeviceType = iota

	// DeviceCPU runs kernels on the host CPU cores.
	DeviceCPU

	// DeviceGPU is a graphics processor. None is enumerated: there is no
	// offload.
	DeviceGPU

	// DeviceAccelerator is any other compute device. None is enumerated.
	DeviceAccelerator
)

// String returns a human-readable name for the device type.
func (t DeviceType) String() string {
	switch t {
	case DeviceHost:
		return "host"
	case DeviceCPU:
		return "cpu"
	case DeviceGPU:
		return "gpu"
	case DeviceAccelerator:
		return "accelerator"
	default:
		return "unknown"
	}
}

// Device describes something kernels can run on. Only the host CPU is
// available, exposed both as a parallel CPU device and as a sequential host
// device.
type Device struct {
	Name         string
	Type         DeviceType
	ComputeUnits int
	// VectorWidth is the widest SIMD register in bytes.
	VectorWidth int
	// Features lists the SIMD extensions detected on the CPU.
	Features []string
}

// String formats the device for listings.
func (d Device) String() string {
	return fmt.Sprintf("%s (%s, %d units, %d-byte vectors, [%s])",
		d.Name, d.Type, d.ComputeUnits, d.VectorWidth, strings.Join(d.Features, " "))
}

// cpuFeatures and cpuVectorWidth are set by init() in device_*.go files.
var (
	cpuFeatures    []string
	cpuVectorWidth = 16
)

// Devices returns the available devices: the CPU, then the host device.
func Devices() []Device {
	name := runtime.GOARCH + " cpu"
	return []Device{
		{
			Name:         name,
			Type:         DeviceCPU,
			ComputeUnits: runtime.GOMAXPROCS(0),
			VectorWidth:  cpuVectorWidth,
			Features:     append([]string(nil), cpuFeatures...),
		},
		{
			Name:         "host",
			Type:         DeviceHost,
			ComputeUnits: 1,
			VectorWidth:  cpuVectorWidth,
			Features:     append([]string(nil), cpuFeatures...),
		},
	}
}

// Selector scores a device. The device with the highest score is selected;
// a negative score excludes the device.
type Selector func(Device) int

// DefaultSelector prefers the device with the most compute units.
func DefaultSelector() Selector {
	return func(d Device) int { return d.ComputeUnits }
}

// GPUSelector prefers a GPU but, like any other scoring, still accepts the
// remaining devices when no GPU exists.
func GPUSelector() Selector {
	return func(d Device) int {
		if d.Type == DeviceGPU {
			return 2
		}
		return 1
	}
}

// CPUSelector accepts only the CPU device.
func CPUSelector() Selector {
	return typeSelector(DeviceCPU)
}

// HostSelector accepts only the sequential host device.
func HostSelector() Selector {
	return typeSelector(DeviceHost)
}

func typeSelector(t DeviceType) Selector {
	return func(d Device) int {
		if d.Type == t {
			return 1
		}
		return -1
	}
}

// SelectDevice returns the best device of Devices() according to sel.
func SelectDevice(sel Selector) (Device, error) {
	return SelectFrom(Devices(), sel)
}

// SelectFrom returns the device of devs with the highest non-negative
// score. Ties go to the earliest device.
func SelectFrom(devs []Device, sel Selector) (Device, error) {
	if sel == nil {
		sel = DefaultSelector()
	}
	type scored struct {
		dev   Device
		score int
	}
	candidates := lo.Map(devs, func(d Device, _ int) scored {
		return scored{dev: d, score: sel(d)}
	})
	candidates = lo.Filter(candidates, func(s scored, _ int) bool { return s.score >= 0 })
	if len(candidates) == 0 {
		return Device{}, ErrNoDevice
	}
	best := lo.MaxBy(candidates, func(a, b scored) bool { return a.score > b.score })
	return best.dev, nil
}
