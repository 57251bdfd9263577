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

//go:build amd64

package sycl

import "golang.org/x/sys/cpu"

func init() {
	cpuFeatures, cpuVectorWidth = detectX86()
}

func detectX86() ([]string, int) {
	features := []string{"sse2"}
	width := 16
	if cpu.X86.HasSSE41 {
		features = append(features, "sse4.1")
	}
	if cpu.X86.HasAVX {
		features = append(features, "avx")
		width = 32
	}
	if cpu.X86.HasAVX2 {
		features = append(features, "avx2")
	}
	if cpu.X86.HasFMA {
		features = append(features, "fma")
	}
	if cpu.X86.HasAVX512F {
		features = append(features, "avx512f")
		width = 64
	}
	if cpu.X86.HasAVX512BF16 {
		features = append(features, "avx512bf16")
	}
	return features, width
}
