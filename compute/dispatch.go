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

package compute

import (
	"fmt"

	"github.com/apache/arrow-dataframe"
	"github.com/apache/arrow-dataframe/compute/internal/kernels"
)

// Engine dispatches operators for one element type under fixed Options.
// The handler is resolved once by NewEngine, so repeated calls cost a
// single table lookup. Engines are immutable and safe for concurrent use;
// callers must not write to overlapping destinations concurrently.
type Engine[T any] struct {
	h    *kernels.Handler[T]
	opts Options
}

// NewEngine resolves the handler for T and dt under opts.
func NewEngine[T any](dt dataframe.DataType, opts Options) (Engine[T], error) {
	h, err := resolve[T](cacheFor(opts), dt)
	if err != nil {
		return Engine[T]{}, err
	}
	return Engine[T]{h: h, opts: opts}, nil
}

func (e Engine[T]) DataType() dataframe.DataType { return e.h.DataType() }
func (e Engine[T]) Capabilities() Capability     { return e.h.Capabilities() }
func (e Engine[T]) Options() Options             { return e.opts }

// Lanes is the number of elements processed per vector chunk.
func (e Engine[T]) Lanes() int { return e.h.Lanes() }

// ArrArr computes out[i] = left[i] op right[i].
func (e Engine[T]) ArrArr(op BinaryOp, left, right, out []T) error {
	k, err := e.h.Binary(op, e.opts.CheckOverflow)
	if err != nil {
		return err
	}
	return k.ArrArr(left, right, out)
}

// ArrScalar computes out[i] = left[i] op right.
func (e Engine[T]) ArrScalar(op BinaryOp, left []T, right T, out []T) error {
	k, err := e.h.Binary(op, e.opts.CheckOverflow)
	if err != nil {
		return err
	}
	return k.ArrScalar(left, right, out)
}

// ScalarArr computes out[i] = left op right[i].
func (e Engine[T]) ScalarArr(op BinaryOp, left T, right, out []T) error {
	k, err := e.h.Binary(op, e.opts.CheckOverflow)
	if err != nil {
		return err
	}
	return k.ScalarArr(left, right, out)
}

// ScalarScalar computes left op right for Divide and Modulo. Other
// operators have no scalar form and fail with
// dataframe.ErrUnsupportedOperation. With CheckOverflow set, a decimal
// quotient that does not fit fails with dataframe.ErrOverflow.
func (e Engine[T]) ScalarScalar(op BinaryOp, left, right T) (T, error) {
	switch op {
	case OpDivide:
		if e.opts.CheckOverflow {
			return e.h.ScalarDivideChecked(left, right)
		}
		return e.h.ScalarDivide(left, right)
	case OpModulo:
		return e.h.ScalarModulo(left, right)
	}
	var zero T
	return zero, fmt.Errorf("%w: %s of two scalars", dataframe.ErrUnsupportedOperation, op)
}

// Shift computes out[i] = left[i] << amount (or >>). Right shifts of
// signed types are arithmetic. A negative amount fails with
// dataframe.ErrInvalid.
func (e Engine[T]) Shift(op ShiftOp, left []T, amount int, out []T) error {
	k, err := e.h.Shift(op)
	if err != nil {
		return err
	}
	return k(left, amount, out)
}

func (e Engine[T]) CompareArrArr(op CompareOp, left, right []T, out []bool) error {
	k, err := e.h.Compare(op)
	if err != nil {
		return err
	}
	return k.ArrArr(left, right, out)
}

func (e Engine[T]) CompareArrScalar(op CompareOp, left []T, right T, out []bool) error {
	k, err := e.h.Compare(op)
	if err != nil {
		return err
	}
	return k.ArrScalar(left, right, out)
}

func (e Engine[T]) CompareScalarArr(op CompareOp, left T, right []T, out []bool) error {
	k, err := e.h.Compare(op)
	if err != nil {
		return err
	}
	return k.ScalarArr(left, right, out)
}

// The Handle functions dispatch a single call with DefaultOptions.

func HandleArrArr[T any](op BinaryOp, dt dataframe.DataType, left, right, out []T) error {
	e, err := NewEngine[T](dt, DefaultOptions())
	if err != nil {
		return err
	}
	return e.ArrArr(op, left, right, out)
}

func HandleArrScalar[T any](op BinaryOp, dt dataframe.DataType, left []T, right T, out []T) error {
	e, err := NewEngine[T](dt, DefaultOptions())
	if err != nil {
		return err
	}
	return e.ArrScalar(op, left, right, out)
}

func HandleScalarArr[T any](op BinaryOp, dt dataframe.DataType, left T, right, out []T) error {
	e, err := NewEngine[T](dt, DefaultOptions())
	if err != nil {
		return err
	}
	return e.ScalarArr(op, left, right, out)
}

func HandleScalarScalar[T any](op BinaryOp, dt dataframe.DataType, left, right T) (T, error) {
	e, err := NewEngine[T](dt, DefaultOptions())
	if err != nil {
		var zero T
		return zero, err
	}
	return e.ScalarScalar(op, left, right)
}

func HandleShift[T any](op ShiftOp, dt dataframe.DataType, left []T, amount int, out []T) error {
	e, err := NewEngine[T](dt, DefaultOptions())
	if err != nil {
		return err
	}
	return e.Shift(op, left, amount, out)
}

func HandleCompareArrArr[T any](op CompareOp, dt dataframe.DataType, left, right []T, out []bool) error {
	e, err := NewEngine[T](dt, DefaultOptions())
	if err != nil {
		return err
	}
	return e.CompareArrArr(op, left, right, out)
}

func HandleCompareArrScalar[T any](op CompareOp, dt dataframe.DataType, left []T, right T, out []bool) error {
	e, err := NewEngine[T](dt, DefaultOptions())
	if err != nil {
		return err
	}
	return e.CompareArrScalar(op, left, right, out)
}

func HandleCompareScalarArr[T any](op CompareOp, dt dataframe.DataType, left T, right []T, out []bool) error {
	e, err := NewEngine[T](dt, DefaultOptions())
	if err != nil {
		return err
	}
	return e.CompareScalarArr(op, left, right, out)
}
