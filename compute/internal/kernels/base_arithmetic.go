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
	"math"
	"math/bits"

	"github.com/JohnCGriffin/overflow"
)

// arithmeticBodies returns the loop bodies for the operators with a direct
// hardware mapping: Add, Subtract, Multiply and Divide. Divide does not
// check for zero; integer callers wrap it with newDivisionKernel.
func arithmeticBodies[T NumericTypes](op BinaryOp) (arrArrBody[T, T], arrScalarBody[T, T], scalarArrBody[T, T]) {
	switch op {
	case OpAdd:
		return func(left, right, out []T) {
				left, right = left[:len(out)], right[:len(out)]
				for i := range out {
					out[i] = left[i] + right[i]
				}
			}, func(left []T, right T, out []T) {
				left = left[:len(out)]
				for i := range out {
					out[i] = left[i] + right
				}
			}, func(left T, right, out []T) {
				right = right[:len(out)]
				for i := range out {
					out[i] = left + right[i]
				}
			}
	case OpSubtract:
		return func(left, right, out []T) {
				left, right = left[:len(out)], right[:len(out)]
				for i := range out {
					out[i] = left[i] - right[i]
				}
			}, func(left []T, right T, out []T) {
				left = left[:len(out)]
				for i := range out {
					out[i] = left[i] - right
				}
			}, func(left T, right, out []T) {
				right = right[:len(out)]
				for i := range out {
					out[i] = left - right[i]
				}
			}
	case OpMultiply:
		return func(left, right, out []T) {
				left, right = left[:len(out)], right[:len(out)]
				for i := range out {
					out[i] = left[i] * right[i]
				}
			}, func(left []T, right T, out []T) {
				left = left[:len(out)]
				for i := range out {
					out[i] = left[i] * right
				}
			}, func(left T, right, out []T) {
				right = right[:len(out)]
				for i := range out {
					out[i] = left * right[i]
				}
			}
	case OpDivide:
		return func(left, right, out []T) {
				left, right = left[:len(out)], right[:len(out)]
				for i := range out {
					out[i] = left[i] / right[i]
				}
			}, func(left []T, right T, out []T) {
				left = left[:len(out)]
				for i := range out {
					out[i] = left[i] / right
				}
			}, func(left T, right, out []T) {
				right = right[:len(out)]
				for i := range out {
					out[i] = left / right[i]
				}
			}
	}
	return nil, nil, nil
}

// modulo has no vector instruction; these always run as plain loops.
func integerModBodies[T IntegerTypes]() (arrArrBody[T, T], arrScalarBody[T, T], scalarArrBody[T, T]) {
	return func(left, right, out []T) {
			left, right = left[:len(out)], right[:len(out)]
			for i := range out {
				out[i] = left[i] % right[i]
			}
		}, func(left []T, right T, out []T) {
			left = left[:len(out)]
			for i := range out {
				out[i] = left[i] % right
			}
		}, func(left T, right, out []T) {
			right = right[:len(out)]
			for i := range out {
				out[i] = left % right[i]
			}
		}
}

func floatMod[T FloatTypes](a, b T) T { return T(math.Mod(float64(a), float64(b))) }

func floatModBodies[T FloatTypes]() (arrArrBody[T, T], arrScalarBody[T, T], scalarArrBody[T, T]) {
	return func(left, right, out []T) {
			left, right = left[:len(out)], right[:len(out)]
			for i := range out {
				out[i] = floatMod(left[i], right[i])
			}
		}, func(left []T, right T, out []T) {
			left = left[:len(out)]
			for i := range out {
				out[i] = floatMod(left[i], right)
			}
		}, func(left T, right, out []T) {
			right = right[:len(out)]
			for i := range out {
				out[i] = floatMod(left, right[i])
			}
		}
}

func inRange[T IntegerTypes](v int64) bool {
	return v >= int64(MinOf[T]()) && v <= int64(MaxOf[T]())
}

func addChecked[T IntegerTypes](a, b T) (T, bool) {
	if isSigned[T]() {
		v, ok := overflow.Add64(int64(a), int64(b))
		return T(v), ok && inRange[T](v)
	}
	v, carry := bits.Add64(uint64(a), uint64(b), 0)
	return T(v), carry == 0 && v <= uint64(MaxOf[T]())
}

func subChecked[T IntegerTypes](a, b T) (T, bool) {
	if isSigned[T]() {
		v, ok := overflow.Sub64(int64(a), int64(b))
		return T(v), ok && inRange[T](v)
	}
	v, borrow := bits.Sub64(uint64(a), uint64(b), 0)
	return T(v), borrow == 0
}

func mulChecked[T IntegerTypes](a, b T) (T, bool) {
	if isSigned[T]() {
		v, ok := overflow.Mul64(int64(a), int64(b))
		return T(v), ok && inRange[T](v)
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	return T(lo), hi == 0 && lo <= uint64(MaxOf[T]())
}
