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

package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ajroetker/go-sycl/sycl"
)

func TestParseSizes(t *testing.T) {
	tests := []struct {
		in      string
		want    sycl.Range
		wantErr bool
	}{
		{"8", sycl.NewRange(8), false},
		{"4, 4", sycl.NewRange(4, 4), false},
		{"2,3,4", sycl.NewRange(2, 3, 4), false},
		{"0,5", sycl.NewRange(0, 5), false},
		{"", sycl.Range{}, true},
		{"1,2,3,4", sycl.Range{}, true},
		{"4,x", sycl.Range{}, true},
		{"-1", sycl.Range{}, true},
	}
	for _, tt := range tests {
		got, err := parseSizes(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseSizes(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !got.Equal(tt.want) {
			t.Errorf("parseSizes(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunCommand(t *testing.T) {
	cases := [][]string{
		{"run", "--global", "16,16", "--local", "4,4"},
		{"run", "--global", "12", "--local", "3", "--sequential"},
		{"run", "--global", "8,6,4", "--local", "2,3,2", "--schedule", "dynamic", "--batch", "2", "--workers", "3"},
		{"run", "--global", "8,8", "--local", "2,2", "--offset", "5,7", "--pool", "--workers", "2"},
	}
	for _, args := range cases {
		out, err := runCLI(t, args...)
		if err != nil {
			t.Fatalf("%v: %v\n%s", args, err, out)
		}
		if !strings.Contains(out, "ok:") {
			t.Errorf("%v: missing ok line:\n%s", args, out)
		}
	}
}

func TestRunCommandRejectsIncompleteGroups(t *testing.T) {
	_, err := runCLI(t, "run", "--global", "10,10", "--local", "3,3")
	if err == nil {
		t.Fatal("expected an error for 10/3")
	}
}

func TestRunCommandRejectsZeroLocal(t *testing.T) {
	out, err := runCLI(t, "run", "--global", "4", "--local", "0")
	if !errors.Is(err, sycl.ErrInvalidDivisor) {
		t.Fatalf("error = %v, want %v", err, sycl.ErrInvalidDivisor)
	}
	if strings.Contains(out, "nd:") {
		t.Errorf("launch details printed before validation:\n%s", out)
	}
}

func TestDevicesCommand(t *testing.T) {
	out, err := runCLI(t, "devices")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"cpu", "host", "default", "gpu"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
