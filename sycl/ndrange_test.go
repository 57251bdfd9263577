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

func TestGroupRange(t *testing.T) {
	tests := []struct {
		global, local, want Range
	}{
		{NewRange(10, 10), NewRange(3, 3), NewRange(4, 4)},
		{NewRange(4, 4), NewRange(2, 2), NewRange(2, 2)},
		{NewRange(16), NewRange(16), NewRange(1)},
		{NewRange(0, 8, 9), NewRange(1, 4, 2), NewRange(0, 2, 5)},
	}
	for _, tt := range tests {
		nd := NewNDRange(tt.global, tt.local)
		if got := nd.GroupRange(); !got.Equal(tt.want) {
			t.Errorf("GroupRange(%v / %v) = %v, want %v", tt.global, tt.local, got, tt.want)
		}
	}
}

func TestGroupRangeExhaustive(t *testing.T) {
	for g := 0; g <= 20; g++ {
		for l := 1; l <= 7; l++ {
			got := NewNDRange(NewRange(g), NewRange(l)).GroupRange().Get(0)
			want := g / l
			if g%l != 0 {
				want++
			}
			if got != want {
				t.Errorf("ceil(%d/%d) = %d, want %d", g, l, got, want)
			}
		}
	}
}

func TestNDRangeAccessors(t *testing.T) {
	nd := NewNDRange(NewRange(8, 4), NewRange(2, 2), NewID(1, 1))
	if nd.Dims() != 2 {
		t.Errorf("Dims() = %d, want 2", nd.Dims())
	}
	if !nd.GlobalRange().Equal(NewRange(8, 4)) {
		t.Errorf("GlobalRange() = %v", nd.GlobalRange())
	}
	if !nd.LocalRange().Equal(NewRange(2, 2)) {
		t.Errorf("LocalRange() = %v", nd.LocalRange())
	}
	if !nd.Offset().Equal(NewID(1, 1)) {
		t.Errorf("Offset() = %v", nd.Offset())
	}
	if def := NewNDRange(NewRange(4), NewRange(2)); !def.Offset().Equal(ZeroID(1)) {
		t.Errorf("default offset = %v, want {0}", def.Offset())
	}
}

func TestNDRangeValidate(t *testing.T) {
	tests := []struct {
		name string
		nd   NDRange
		want error
	}{
		{"ok", NewNDRange(NewRange(4, 6), NewRange(2, 3)), nil},
		{"zero global", NewNDRange(NewRange(0, 6), NewRange(2, 3)), nil},
		{"zero local", NewNDRange(NewRange(4, 6), NewRange(0, 3)), ErrInvalidDivisor},
		{"negative global", NewNDRange(NewRange(-4), NewRange(2)), ErrNegativeSize},
		{"incomplete group", NewNDRange(NewRange(10, 10), NewRange(3, 3)), ErrIncompleteWorkGroup},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.nd.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestItemAccessors(t *testing.T) {
	nd := NewNDRange(NewRange(8, 6), NewRange(4, 3), NewID(100, 200))
	it := newItem(nd, NewID(1, 1), NewID(2, 0))

	if !it.Local().Equal(NewID(2, 0)) {
		t.Errorf("Local() = %v", it.Local())
	}
	if !it.Group().Equal(NewID(1, 1)) {
		t.Errorf("Group() = %v", it.Group())
	}
	// offset + local + local_size * group = (100+2+4, 200+0+3)
	if want := NewID(106, 203); !it.Global().Equal(want) {
		t.Errorf("Global() = %v, want %v", it.Global(), want)
	}
	if it.GlobalAt(0) != 106 || it.LocalAt(0) != 2 {
		t.Errorf("GlobalAt(0) = %d, LocalAt(0) = %d", it.GlobalAt(0), it.LocalAt(0))
	}
	if !it.LocalRange().Equal(NewRange(4, 3)) || !it.GlobalRange().Equal(NewRange(8, 6)) {
		t.Errorf("ranges = %v, %v", it.LocalRange(), it.GlobalRange())
	}
	if it.Dims() != 2 {
		t.Errorf("Dims() = %d", it.Dims())
	}
}
