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

//go:build arm64

package sycl

import "golang.org/x/sys/cpu"

func init() {
	cpuFeatures, cpuVectorWidth = detectARM64()
}

func detectARM64() ([]string, int) {
	var features []string
	// NEON (ASIMD) is mandatory on ARMv8, so 16 bytes is the floor.
	width := 16
	if cpu.ARM64.HasASIMD {
		features = append(features, "neon")
	}
	if cpu.ARM64.HasFPHP && cpu.ARM64.HasASIMDHP {
		features = append(features, "fp16")
	}
	if cpu.ARM64.HasASIMDDP {
		features = append(features, "dotprod")
	}
	if cpu.ARM64.HasSVE {
		// The SVE vector length is implementation defined; report the
		// NEON width until it is queried at runtime.
		features = append(features, "sve")
	}
	return features, width
}
