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
	"fmt"

	"github.com/apache/arrow-dataframe"
	"github.com/apache/arrow-dataframe/internal/debug"
)

func bitwiseBodies[T IntegerTypes](op BinaryOp) (arrArrBody[T, T], arrScalarBody[T, T], scalarArrBody[T, T]) {
	switch op {
	case OpAnd:
		return func(left, right, out []T) {
				left, right = left[:len(out)], right[:len(out)]
				for i := range out {
					out[i] = left[i] & right[i]
				}
			}, func(left []T, right T, out []T) {
				left = left[:len(out)]
				for i := range out {
					out[i] = left[i] & right
				}
			}, func(left T, right, out []T) {
				right = right[:len(out)]
				for i := range out {
					out[i] = left & right[i]
				}
			}
	case OpOr:
		return func(left, right, out []T) {
				left, right = left[:len(out)], right[:len(out)]
				for i := range out {
					out[i] = left[i] | right[i]
				}
			}, func(left []T, right T, out []T) {
				left = left[:len(out)]
				for i := range out {
					out[i] = left[i] | right
				}
			}, func(left T, right, out []T) {
				right = right[:len(out)]
				for i := range out {
					out[i] = left | right[i]
				}
			}
	case OpXor:
		return func(left, right, out []T) {
				left, right = left[:len(out)], right[:len(out)]
				for i := range out {
					out[i] = left[i] ^ right[i]
				}
			}, func(left []T, right T, out []T) {
				left = left[:len(out)]
				for i := range out {
					out[i] = left[i] ^ right
				}
			}, func(left T, right, out []T) {
				right = right[:len(out)]
				for i := range out {
					out[i] = left ^ right[i]
				}
			}
	}
	return nil, nil, nil
}

// logicalBodies are the boolean versions of And, Or and Xor.
func logicalBodies(op BinaryOp) (arrArrBody[bool, bool], arrScalarBody[bool, bool], scalarArrBody[bool, bool]) {
	switch op {
	case OpAnd:
		return func(left, right, out []bool) {
				left, right = left[:len(out)], right[:len(out)]
				for i := range out {
					out[i] = left[i] && right[i]
				}
			}, func(left []bool, right bool, out []bool) {
				left = left[:len(out)]
				for i := range out {
					out[i] = left[i] && right
				}
			}, func(left bool, right, out []bool) {
				right = right[:len(out)]
				for i := range out {
					out[i] = left && right[i]
				}
			}
	case OpOr:
		return func(left, right, out []bool) {
				left, right = left[:len(out)], right[:len(out)]
				for i := range out {
					out[i] = left[i] || right[i]
				}
			}, func(left []bool, right bool, out []bool) {
				left = left[:len(out)]
				for i := range out {
					out[i] = left[i] || right
				}
			}, func(left bool, right, out []bool) {
				right = right[:len(out)]
				for i := range out {
					out[i] = left || right[i]
				}
			}
	case OpXor:
		return func(left, right, out []bool) {
				left, right = left[:len(out)], right[:len(out)]
				for i := range out {
					out[i] = left[i] != right[i]
				}
			}, func(left []bool, right bool, out []bool) {
				left = left[:len(out)]
				for i := range out {
					out[i] = left[i] != right
				}
			}, func(left bool, right, out []bool) {
				right = right[:len(out)]
				for i := range out {
					out[i] = left != right[i]
				}
			}
	}
	return nil, nil, nil
}

// reinterpretBinary exposes a kernel over U as a kernel over T, where T
// and U have the same size. The slices are viewed in place, never copied.
func reinterpretBinary[T, U any](k *BinaryKernel[U]) *BinaryKernel[T] {
	debug.Assert(sizeOf[T]() == sizeOf[U](), "reinterpreted kernel types must have the same size")
	return &BinaryKernel[T]{
		ArrArr: func(left, right, out []T) error {
			if err := checkLengths(len(left), len(right), len(out)); err != nil {
				return err
			}
			return k.ArrArr(reinterpretSlice[U](left), reinterpretSlice[U](right), reinterpretSlice[U](out))
		},
		ArrScalar: func(left []T, right T, out []T) error {
			if err := checkLength(len(left), len(out)); err != nil {
				return err
			}
			return k.ArrScalar(reinterpretSlice[U](left), reinterpretValue[U](right), reinterpretSlice[U](out))
		},
		ScalarArr: func(left T, right, out []T) error {
			if err := checkLength(len(right), len(out)); err != nil {
				return err
			}
			return k.ScalarArr(reinterpretValue[U](left), reinterpretSlice[U](right), reinterpretSlice[U](out))
		},
	}
}

// newShiftKernel shifts with Go semantics: amounts at or beyond the bit
// width yield zero, or the sign fill for a signed right shift.
func newShiftKernel[T IntegerTypes](dt dataframe.DataType, op ShiftOp) ShiftKernel[T] {
	return func(left []T, amount int, out []T) error {
		if err := checkLength(len(left), len(out)); err != nil {
			return err
		}
		if amount < 0 {
			return fmt.Errorf("%w: negative %s amount %d for %s",
				dataframe.ErrInvalid, op, amount, dt)
		}

		s := uint(amount)
		left = left[:len(out)]
		switch op {
		case OpLeftShift:
			for i := range out {
				out[i] = left[i] << s
			}
		case OpRightShift:
			for i := range out {
				out[i] = left[i] >> s
			}
		}
		return nil
	}
}
