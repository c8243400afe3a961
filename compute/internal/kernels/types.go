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

package kernels

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// IntTypes is a type constraint for raw values represented as signed
// integer types. We aren't just using constraints.Signed because we don't
// want to include the raw `int` type here whose size changes based on the
// architecture.
type IntTypes interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UintTypes is a type constraint for raw values represented as unsigned
// integer types, excluding `uint` and `uintptr`.
type UintTypes interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

type IntegerTypes interface {
	IntTypes | UintTypes
}

type FloatTypes interface {
	~float32 | ~float64
}

// NumericTypes are the element types with hardware arithmetic.
type NumericTypes interface {
	IntegerTypes | FloatTypes
}

// SizeOf determines the size in number of bytes for an integer
// based on the generic value in a way that the compiler should
// be able to easily evaluate and create as a constant.
func SizeOf[T constraints.Integer]() uint {
	x := uint16(1 << 8)
	y := uint32(2 << 16)
	z := uint64(4 << 32)
	return 1 + uint(T(x))>>8 + uint(T(y))>>16 + uint(T(z))>>32
}

// MinOf returns the minimum value for a given type since there is not
// currently a generic way to do this with Go generics yet.
func MinOf[T constraints.Integer]() T {
	if ones := ^T(0); ones < 0 {
		return ones << (8*SizeOf[T]() - 1)
	}
	return 0
}

// MaxOf determines the max value for a given type since there is not
// currently a generic way to do this for Go generics yet as all of the
// math.Max/Min values are constants.
func MaxOf[T constraints.Integer]() T {
	ones := ^T(0)
	if ones < 0 {
		return ones ^ (ones << (8*SizeOf[T]() - 1))
	}
	return ones
}

func isSigned[T constraints.Integer]() bool { return ^T(0) < 0 }

// reinterpretSlice returns in viewed as a slice of U without copying.
// T and U must have the same size.
func reinterpretSlice[U, T any](in []T) []U {
	if len(in) == 0 {
		return nil
	}
	return unsafe.Slice((*U)(unsafe.Pointer(unsafe.SliceData(in))), len(in))
}

func reinterpretValue[U, T any](v T) U {
	return *(*U)(unsafe.Pointer(&v))
}

func sizeOf[T any]() uintptr {
	var z T
	return unsafe.Sizeof(z)
}
