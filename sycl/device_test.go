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
	"testing"
)

func TestDevices(t *testing.T) {
	devs := Devices()
	if len(devs) != 2 {
		t.Fatalf("Devices() returned %d devices, want 2", len(devs))
	}
	if devs[0].Type != DeviceCPU || devs[1].Type != DeviceHost {
		t.Errorf("device types = %v, %v", devs[0].Type, devs[1].Type)
	}
	if devs[0].ComputeUnits < 1 || devs[1].ComputeUnits != 1 {
		t.Errorf("compute units = %d, %d", devs[0].ComputeUnits, devs[1].ComputeUnits)
	}
	if devs[0].VectorWidth < 16 {
		t.Errorf("VectorWidth = %d, want >= 16", devs[0].VectorWidth)
	}
	t.Logf("devices: %v", devs)
}

func TestSelectFrom(t *testing.T) {
	devs := []Device{
		{Name: "cpu", Type: DeviceCPU, ComputeUnits: 8},
		{Name: "host", Type: DeviceHost, ComputeUnits: 1},
		{Name: "widest", Type: DeviceCPU, ComputeUnits: 8},
	}
	tests := []struct {
		name string
		sel  Selector
		want string
	}{
		{"default", DefaultSelector(), "cpu"},
		{"nil", nil, "cpu"},
		{"gpu falls back", GPUSelector(), "cpu"},
		{"cpu", CPUSelector(), "cpu"},
		{"host", HostSelector(), "host"},
		{"custom", func(d Device) int { return len(d.Name) }, "widest"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectFrom(devs, tt.sel)
			if err != nil {
				t.Fatal(err)
			}
			if got.Name != tt.want {
				t.Errorf("selected %q, want %q", got.Name, tt.want)
			}
		})
	}
}

func TestSelectFromGPUPreferred(t *testing.T) {
	devs := []Device{
		{Name: "cpu", Type: DeviceCPU, ComputeUnits: 64},
		{Name: "gpu", Type: DeviceGPU, ComputeUnits: 2},
	}
	got, err := SelectFrom(devs, GPUSelector())
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != DeviceGPU {
		t.Errorf("selected %v, want the gpu", got)
	}
}

func TestSelectFromNoDevice(t *testing.T) {
	reject := func(Device) int { return -1 }
	if _, err := SelectFrom(Devices(), reject); !errors.Is(err, ErrNoDevice) {
		t.Errorf("error = %v, want %v", err, ErrNoDevice)
	}
	if _, err := SelectFrom(nil, nil); !errors.Is(err, ErrNoDevice) {
		t.Errorf("empty list: error = %v, want %v", err, ErrNoDevice)
	}
	if _, err := NewContext(reject); !errors.Is(err, ErrNoDevice) {
		t.Errorf("NewContext() error = %v, want %v", err, ErrNoDevice)
	}
}
