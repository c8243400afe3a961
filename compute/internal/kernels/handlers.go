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
	"cmp"

	"github.com/apache/arrow-dataframe"
)

var (
	arithmeticOps = []BinaryOp{OpAdd, OpSubtract, OpMultiply}
	bitwiseOps    = []BinaryOp{OpAnd, OpOr, OpXor}
	compareOps    = []CompareOp{CmpEQ, CmpNE, CmpGE, CmpLE, CmpGT, CmpLT}
)

func addOrderedCompares[T cmp.Ordered](h *Handler[T]) {
	for _, op := range compareOps {
		aa, as, sa := orderedBodies[T](op)
		h.setCompare(op, newCompareKernel(1, aa, as, sa))
	}
}

// NewIntegerHandler builds the handler for a fixed-width integer type:
// arithmetic (with checked variants), bitwise, shift and ordering.
func NewIntegerHandler[T IntegerTypes](dt dataframe.DataType, lanes int) *Handler[T] {
	h := newHandler[T](dt, lanes)
	for _, op := range arithmeticOps {
		aa, as, sa := arithmeticBodies[T](op)
		h.setBinary(op, newBinaryKernel(h.lanes, aa, as, sa))
	}
	aa, as, sa := arithmeticBodies[T](OpDivide)
	h.setBinary(OpDivide, newDivisionKernel(dt, OpDivide, h.lanes, aa, as, sa))
	aa, as, sa = integerModBodies[T]()
	h.setBinary(OpModulo, newDivisionKernel(dt, OpModulo, 1, aa, as, sa))
	for _, op := range bitwiseOps {
		aa, as, sa := bitwiseBodies[T](op)
		h.setBinary(op, newBinaryKernel(h.lanes, aa, as, sa))
	}

	h.checked[OpAdd] = newCheckedKernel[T](dt, OpAdd, addChecked[T])
	h.checked[OpSubtract] = newCheckedKernel[T](dt, OpSubtract, subChecked[T])
	h.checked[OpMultiply] = newCheckedKernel[T](dt, OpMultiply, mulChecked[T])

	h.setShift(OpLeftShift, newShiftKernel[T](dt, OpLeftShift))
	h.setShift(OpRightShift, newShiftKernel[T](dt, OpRightShift))
	addOrderedCompares(h)

	h.scalarDiv = func(left, right T) (T, error) {
		if right == 0 {
			return 0, divideByZero(dt, OpDivide)
		}
		return left / right, nil
	}
	h.scalarMod = func(left, right T) (T, error) {
		if right == 0 {
			return 0, divideByZero(dt, OpModulo)
		}
		return left % right, nil
	}
	return h
}

// NewFloatHandler builds the handler for a floating point type T. Bitwise
// operators act on the raw IEEE-754 bits by viewing the data as U, the
// unsigned integer of the same width.
func NewFloatHandler[T FloatTypes, U UintTypes](dt dataframe.DataType, lanes int) *Handler[T] {
	h := newHandler[T](dt, lanes)
	for _, op := range []BinaryOp{OpAdd, OpSubtract, OpMultiply, OpDivide} {
		aa, as, sa := arithmeticBodies[T](op)
		h.setBinary(op, newBinaryKernel(h.lanes, aa, as, sa))
	}
	aa, as, sa := floatModBodies[T]()
	h.setBinary(OpModulo, newBinaryKernel(1, aa, as, sa))
	for _, op := range bitwiseOps {
		aa, as, sa := bitwiseBodies[U](op)
		h.setBinary(op, reinterpretBinary[T](newBinaryKernel(h.lanes, aa, as, sa)))
	}
	addOrderedCompares(h)

	h.scalarDiv = func(left, right T) (T, error) { return left / right, nil }
	h.scalarMod = func(left, right T) (T, error) { return floatMod(left, right), nil }
	return h
}

// NewBooleanHandler builds the handler for bool: logical And, Or and Xor
// plus equality. Booleans are never chunked.
func NewBooleanHandler() *Handler[bool] {
	h := newHandler[bool](dataframe.FixedWidthTypes.Boolean, 1)
	for _, op := range bitwiseOps {
		aa, as, sa := logicalBodies(op)
		h.setBinary(op, newBinaryKernel(1, aa, as, sa))
	}
	for _, op := range []CompareOp{CmpEQ, CmpNE} {
		aa, as, sa := equalityBodies[bool](op)
		h.setCompare(op, newCompareKernel(1, aa, as, sa))
	}
	return h
}

// NewTimestampHandler builds the handler for a timestamp type, which only
// supports comparisons.
func NewTimestampHandler(dt *dataframe.TimestampType) *Handler[dataframe.Timestamp] {
	h := newHandler[dataframe.Timestamp](dt, 1)
	addOrderedCompares(h)
	return h
}

// NewDecimalHandler builds the handler for decimals of the given type.
// All operands are assumed to share dt's scale. Multiply and Divide keep
// that scale, truncating toward zero, and wrap on overflow unless the
// checked kernels are requested.
func NewDecimalHandler(dt *dataframe.Decimal128Type, lanes int) *Handler[num] {
	scale := dt.Scale

	h := newHandler[num](dt, lanes)
	for _, op := range arithmeticOps {
		aa, as, sa := decimalBodies(op, scale)
		h.setBinary(op, newBinaryKernel(h.lanes, aa, as, sa))
	}
	aa, as, sa := decimalBodies(OpDivide, scale)
	h.setBinary(OpDivide, newDivisionKernel(dt, OpDivide, h.lanes, aa, as, sa))
	aa, as, sa = decimalBodies(OpModulo, scale)
	h.setBinary(OpModulo, newDivisionKernel(dt, OpModulo, 1, aa, as, sa))

	h.checked[OpAdd] = newCheckedKernel[num](dt, OpAdd, func(a, b num) (num, bool) {
		out, overflow := a.AddChecked(b)
		return out, !overflow
	})
	h.checked[OpSubtract] = newCheckedKernel[num](dt, OpSubtract, func(a, b num) (num, bool) {
		out, overflow := a.SubChecked(b)
		return out, !overflow
	})
	h.checked[OpMultiply] = newCheckedKernel[num](dt, OpMultiply, func(a, b num) (num, bool) {
		out, overflow := a.MulScaled(b, scale)
		return out, !overflow
	})
	h.checked[OpDivide] = guardDivisor(dt, OpDivide, newCheckedKernel[num](dt, OpDivide, func(a, b num) (num, bool) {
		out, overflow := a.QuoScaled(b, scale)
		return out, !overflow
	}))

	for _, op := range compareOps {
		aa, as, sa := decimalCompareBodies(op)
		h.setCompare(op, newCompareKernel(1, aa, as, sa))
	}

	var zero num
	h.scalarDiv = func(left, right num) (num, error) {
		if right == zero {
			return zero, divideByZero(dt, OpDivide)
		}
		out, _ := left.QuoScaled(right, scale)
		return out, nil
	}
	h.checkedScalarDiv = func(left, right num) (num, error) {
		if right == zero {
			return zero, divideByZero(dt, OpDivide)
		}
		out, overflow := left.QuoScaled(right, scale)
		if overflow {
			return zero, overflowError(dt, OpDivide)
		}
		return out, nil
	}
	h.scalarMod = func(left, right num) (num, error) {
		if right == zero {
			return zero, divideByZero(dt, OpModulo)
		}
		return left.Rem(right), nil
	}
	return h
}
