// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cpu detects the SIMD register width available to the kernels.
//
// Detection happens once at init. Building with the noasm tag, or setting
// ARROW_DATAFRAME_NO_SIMD to a true value, forces scalar mode in which every
// kernel processes one element per step.
package cpu

import (
	"os"
	"strconv"
	"unsafe"

	"github.com/klauspost/cpuid/v2"
)

// DispatchLevel identifies the instruction set the kernels are tuned for.
type DispatchLevel int

const (
	DispatchScalar DispatchLevel = iota
	DispatchSSE4
	DispatchAVX2
	DispatchAVX512
	DispatchNEON
)

func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE4:
		return "sse4"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// NoSIMDEnvVar disables vector chunking when set to a true value.
const NoSIMDEnvVar = "ARROW_DATAFRAME_NO_SIMD"

var (
	currentLevel DispatchLevel
	currentWidth int
)

func init() {
	if noSIMDEnv() {
		setScalarMode()
		return
	}
	detect()
}

func noSIMDEnv() bool {
	val := os.Getenv(NoSIMDEnvVar)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 0
}

// Level returns the detected dispatch level.
func Level() DispatchLevel { return currentLevel }

// RegisterWidth returns the vector register width in bytes, or 0 in scalar mode.
func RegisterWidth() int { return currentWidth }

// Lanes returns how many elements of T fit in one vector register. It is
// never less than 1.
func Lanes[T any]() int {
	var zero T
	return LanesFor(int(unsafe.Sizeof(zero)), currentWidth)
}

// LanesFor returns the lane count for elements of elemSize bytes in a
// register of width bytes.
func LanesFor(elemSize, width int) int {
	if elemSize <= 0 || width < elemSize {
		return 1
	}
	return width / elemSize
}

// CacheSizes returns the L1 data, L2 and L3 cache sizes in bytes, with
// common defaults for levels the CPU does not report.
func CacheSizes() [3]int {
	sizes := [3]int{
		32 * 1024,   // level 1: 32K
		256 * 1024,  // level 2: 256K
		3072 * 1024, // level 3: 3M
	}
	if cpuid.CPU.Cache.L1D > 0 {
		sizes[0] = cpuid.CPU.Cache.L1D
	}
	if cpuid.CPU.Cache.L2 > 0 {
		sizes[1] = cpuid.CPU.Cache.L2
	}
	if cpuid.CPU.Cache.L3 > 0 {
		sizes[2] = cpuid.CPU.Cache.L3
	}
	return sizes
}

// BrandName returns the processor brand string, if known.
func BrandName() string {
	if cpuid.CPU.BrandName == "" {
		return "unknown"
	}
	return cpuid.CPU.BrandName
}
