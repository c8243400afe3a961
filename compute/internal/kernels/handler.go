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
)

// BinaryKernel holds the three operand shapes of one binary operator for
// element type T. Each function validates lengths (and, where relevant,
// divisors) before writing to out.
type BinaryKernel[T any] struct {
	ArrArr    func(left, right, out []T) error
	ArrScalar func(left []T, right T, out []T) error
	ScalarArr func(left T, right, out []T) error
}

// CompareKernel is the comparison counterpart of BinaryKernel, writing
// boolean results.
type CompareKernel[T any] struct {
	ArrArr    func(left, right []T, out []bool) error
	ArrScalar func(left []T, right T, out []bool) error
	ScalarArr func(left T, right []T, out []bool) error
}

// ShiftKernel shifts every element of left by amount bits.
type ShiftKernel[T any] func(left []T, amount int, out []T) error

// ScalarKernel is a binary operator applied to a single pair of values.
type ScalarKernel[T any] func(left, right T) (T, error)

// Handler is the stateless set of kernels bound to one element type. A nil
// entry means the type lacks the capability for that operator. Handlers are
// immutable once built and safe for concurrent use.
type Handler[T any] struct {
	dt    dataframe.DataType
	caps  Capability
	lanes int

	binary  [numBinaryOps]*BinaryKernel[T]
	checked [numBinaryOps]*BinaryKernel[T]
	shift   [numShiftOps]ShiftKernel[T]
	compare [numCompareOps]*CompareKernel[T]

	scalarDiv, scalarMod ScalarKernel[T]
	checkedScalarDiv     ScalarKernel[T]
}

func newHandler[T any](dt dataframe.DataType, lanes int) *Handler[T] {
	if lanes < 1 {
		lanes = 1
	}
	return &Handler[T]{dt: dt, lanes: lanes}
}

func (h *Handler[T]) DataType() dataframe.DataType { return h.dt }
func (h *Handler[T]) Capabilities() Capability     { return h.caps }

// Lanes is the chunk width, in elements, used by the vectorized loops.
func (h *Handler[T]) Lanes() int { return h.lanes }

func (h *Handler[T]) unsupported(op fmt.Stringer) error {
	return fmt.Errorf("%w: %s is not supported for %s",
		dataframe.ErrUnsupportedOperation, op, h.dt)
}

func (h *Handler[T]) setBinary(op BinaryOp, k *BinaryKernel[T]) {
	h.binary[op] = k
	h.caps |= op.Capability()
}

func (h *Handler[T]) setCompare(op CompareOp, k *CompareKernel[T]) {
	h.compare[op] = k
	h.caps |= op.Capability()
}

func (h *Handler[T]) setShift(op ShiftOp, k ShiftKernel[T]) {
	h.shift[op] = k
	h.caps |= op.Capability()
}

// Binary returns the kernel for op. With checked set, integer and decimal
// Add, Subtract and Multiply, and decimal Divide, fail with ErrOverflow
// instead of wrapping.
func (h *Handler[T]) Binary(op BinaryOp, checked bool) (*BinaryKernel[T], error) {
	if op < 0 || int(op) >= numBinaryOps {
		return nil, h.unsupported(op)
	}
	if checked && h.checked[op] != nil {
		return h.checked[op], nil
	}
	if k := h.binary[op]; k != nil {
		return k, nil
	}
	return nil, h.unsupported(op)
}

func (h *Handler[T]) Shift(op ShiftOp) (ShiftKernel[T], error) {
	if op < 0 || int(op) >= numShiftOps || h.shift[op] == nil {
		return nil, h.unsupported(op)
	}
	return h.shift[op], nil
}

func (h *Handler[T]) Compare(op CompareOp) (*CompareKernel[T], error) {
	if op < 0 || int(op) >= numCompareOps || h.compare[op] == nil {
		return nil, h.unsupported(op)
	}
	return h.compare[op], nil
}

// ScalarDivide computes left / right for a single pair of values.
func (h *Handler[T]) ScalarDivide(left, right T) (T, error) {
	if h.scalarDiv == nil {
		var zero T
		return zero, h.unsupported(OpDivide)
	}
	return h.scalarDiv(left, right)
}

// ScalarDivideChecked is ScalarDivide failing with ErrOverflow where the
// quotient does not fit. Types whose division cannot overflow that way
// share ScalarDivide's behavior.
func (h *Handler[T]) ScalarDivideChecked(left, right T) (T, error) {
	if h.checkedScalarDiv == nil {
		return h.ScalarDivide(left, right)
	}
	return h.checkedScalarDiv(left, right)
}

// ScalarModulo computes left % right for a single pair of values.
func (h *Handler[T]) ScalarModulo(left, right T) (T, error) {
	if h.scalarMod == nil {
		var zero T
		return zero, h.unsupported(OpModulo)
	}
	return h.scalarMod(left, right)
}

func divideByZero(dt dataframe.DataType, op BinaryOp) error {
	return fmt.Errorf("%w: %s %s", dataframe.ErrDivideByZero, dt, op)
}

func overflowError(dt dataframe.DataType, op BinaryOp) error {
	return fmt.Errorf("%w: %s %s", dataframe.ErrOverflow, dt, op)
}

// newBinaryKernel wraps infallible bodies with length validation and the
// chunk drivers.
func newBinaryKernel[T any](lanes int, aa arrArrBody[T, T], as arrScalarBody[T, T], sa scalarArrBody[T, T]) *BinaryKernel[T] {
	return &BinaryKernel[T]{
		ArrArr: func(left, right, out []T) error {
			if err := checkLengths(len(left), len(right), len(out)); err != nil {
				return err
			}
			chunkArrArr(lanes, left, right, out, aa)
			return nil
		},
		ArrScalar: func(left []T, right T, out []T) error {
			if err := checkLength(len(left), len(out)); err != nil {
				return err
			}
			chunkArrScalar(lanes, left, right, out, as)
			return nil
		},
		ScalarArr: func(left T, right, out []T) error {
			if err := checkLength(len(right), len(out)); err != nil {
				return err
			}
			chunkScalarArr(lanes, left, right, out, sa)
			return nil
		},
	}
}

// newDivisionKernel is newBinaryKernel for operators that reject a zero
// divisor.
func newDivisionKernel[T comparable](dt dataframe.DataType, op BinaryOp, lanes int, aa arrArrBody[T, T], as arrScalarBody[T, T], sa scalarArrBody[T, T]) *BinaryKernel[T] {
	return guardDivisor(dt, op, newBinaryKernel(lanes, aa, as, sa))
}

// guardDivisor wraps k so that a zero divisor fails with ErrDivideByZero.
// The divisor is scanned before k runs, so a zero leaves out untouched.
func guardDivisor[T comparable](dt dataframe.DataType, op BinaryOp, k *BinaryKernel[T]) *BinaryKernel[T] {
	var zero T
	hasZero := func(vals []T) bool {
		for _, v := range vals {
			if v == zero {
				return true
			}
		}
		return false
	}

	return &BinaryKernel[T]{
		ArrArr: func(left, right, out []T) error {
			if err := checkLengths(len(left), len(right), len(out)); err != nil {
				return err
			}
			if hasZero(right) {
				return divideByZero(dt, op)
			}
			return k.ArrArr(left, right, out)
		},
		ArrScalar: func(left []T, right T, out []T) error {
			if err := checkLength(len(left), len(out)); err != nil {
				return err
			}
			if right == zero {
				return divideByZero(dt, op)
			}
			return k.ArrScalar(left, right, out)
		},
		ScalarArr: func(left T, right, out []T) error {
			if err := checkLength(len(right), len(out)); err != nil {
				return err
			}
			if hasZero(right) {
				return divideByZero(dt, op)
			}
			return k.ScalarArr(left, right, out)
		},
	}
}

// checkedFn is an element operation that reports false on overflow.
type checkedFn[T any] func(a, b T) (T, bool)

// newCheckedKernel builds a kernel that stops at the first overflowing
// element and returns ErrOverflow. Elements before it have already been
// written; the remaining ones are left as they were.
func newCheckedKernel[T any](dt dataframe.DataType, op BinaryOp, fn checkedFn[T]) *BinaryKernel[T] {
	return &BinaryKernel[T]{
		ArrArr: func(left, right, out []T) error {
			if err := checkLengths(len(left), len(right), len(out)); err != nil {
				return err
			}
			var ok bool
			for i := range out {
				if out[i], ok = fn(left[i], right[i]); !ok {
					return overflowError(dt, op)
				}
			}
			return nil
		},
		ArrScalar: func(left []T, right T, out []T) error {
			if err := checkLength(len(left), len(out)); err != nil {
				return err
			}
			var ok bool
			for i := range out {
				if out[i], ok = fn(left[i], right); !ok {
					return overflowError(dt, op)
				}
			}
			return nil
		},
		ScalarArr: func(left T, right, out []T) error {
			if err := checkLength(len(right), len(out)); err != nil {
				return err
			}
			var ok bool
			for i := range out {
				if out[i], ok = fn(left, right[i]); !ok {
					return overflowError(dt, op)
				}
			}
			return nil
		},
	}
}

func newCompareKernel[T any](lanes int, aa arrArrBody[T, bool], as arrScalarBody[T, bool], sa scalarArrBody[T, bool]) *CompareKernel[T] {
	return &CompareKernel[T]{
		ArrArr: func(left, right []T, out []bool) error {
			if err := checkLengths(len(left), len(right), len(out)); err != nil {
				return err
			}
			chunkArrArr(lanes, left, right, out, aa)
			return nil
		},
		ArrScalar: func(left []T, right T, out []bool) error {
			if err := checkLength(len(left), len(out)); err != nil {
				return err
			}
			chunkArrScalar(lanes, left, right, out, as)
			return nil
		},
		ScalarArr: func(left T, right []T, out []bool) error {
			if err := checkLength(len(right), len(out)); err != nil {
				return err
			}
			chunkScalarArr(lanes, left, right, out, sa)
			return nil
		},
	}
}
