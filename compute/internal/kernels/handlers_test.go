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
	"math/rand"
	"testing"

	"github.com/apache/arrow-dataframe"
	"github.com/apache/arrow-dataframe/decimal128"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/floats"
)

type IntegerHandlerSuite[T IntegerTypes] struct {
	suite.Suite

	dt     dataframe.DataType
	scalar *Handler[T]
	vector *Handler[T]
	rng    *rand.Rand
}

func (s *IntegerHandlerSuite[T]) SetupSuite() {
	s.scalar = NewIntegerHandler[T](s.dt, 1)
	s.vector = NewIntegerHandler[T](s.dt, 64/int(SizeOf[T]()))
}

func (s *IntegerHandlerSuite[T]) SetupTest() {
	s.rng = rand.New(rand.NewSource(1337))
}

func (s *IntegerHandlerSuite[T]) random(n int, nonzero bool) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(s.rng.Uint64())
		if nonzero && out[i] == 0 {
			out[i] = 1
		}
	}
	return out
}

func (s *IntegerHandlerSuite[T]) TestCapabilities() {
	s.Equal(CapNumeric|CapBitwise|CapShift|CapEquality|CapOrdering, s.vector.Capabilities())
	s.Equal(s.dt, s.vector.DataType())
	s.Equal(1, s.scalar.Lanes())
}

func (s *IntegerHandlerSuite[T]) TestVectorMatchesScalar() {
	lanes := s.vector.Lanes()
	for _, n := range []int{0, 1, lanes - 1, lanes, lanes + 1, 3*lanes + 2, 1000} {
		left, right := s.random(n, false), s.random(n, true)
		for op := OpAdd; op <= OpXor; op++ {
			vk, err := s.vector.Binary(op, false)
			s.Require().NoError(err)
			sk, err := s.scalar.Binary(op, false)
			s.Require().NoError(err)

			want, got := make([]T, n), make([]T, n)
			s.NoError(sk.ArrArr(left, right, want))
			s.NoError(vk.ArrArr(left, right, got))
			s.Equal(want, got, "%s n=%d", op, n)

			if n == 0 {
				continue
			}
			s.NoError(sk.ArrScalar(left, right[0], want))
			s.NoError(vk.ArrScalar(left, right[0], got))
			s.Equal(want, got, "%s n=%d", op, n)

			s.NoError(sk.ScalarArr(left[0], right, want))
			s.NoError(vk.ScalarArr(left[0], right, got))
			s.Equal(want, got, "%s n=%d", op, n)

			for i := range want {
				s.Equal(want[i], scalarOp(op, left[0], right[i]))
			}
		}
	}
}

func scalarOp[T IntegerTypes](op BinaryOp, a, b T) T {
	switch op {
	case OpAdd:
		return a + b
	case OpSubtract:
		return a - b
	case OpMultiply:
		return a * b
	case OpDivide:
		return a / b
	case OpModulo:
		return a % b
	case OpAnd:
		return a & b
	case OpOr:
		return a | b
	}
	return a ^ b
}

func (s *IntegerHandlerSuite[T]) TestCommutativity() {
	left, right := s.random(37, false), s.random(37, false)
	for op := OpAdd; op <= OpXor; op++ {
		if !op.Commutative() {
			continue
		}
		k, err := s.vector.Binary(op, false)
		s.Require().NoError(err)
		ab, ba := make([]T, 37), make([]T, 37)
		s.NoError(k.ArrArr(left, right, ab))
		s.NoError(k.ArrArr(right, left, ba))
		s.Equal(ab, ba, op.String())
	}
	s.False(OpSubtract.Commutative())
	s.False(OpDivide.Commutative())
}

func (s *IntegerHandlerSuite[T]) TestXorSelfInverse() {
	left, right := s.random(100, false), s.random(100, false)
	k, err := s.vector.Binary(OpXor, false)
	s.Require().NoError(err)

	out := make([]T, 100)
	s.NoError(k.ArrArr(left, right, out))
	s.NoError(k.ArrArr(out, right, out))
	s.Equal(left, out)
}

func (s *IntegerHandlerSuite[T]) TestDivideByZeroLeavesOutput() {
	left := s.random(20, false)
	right := s.random(20, true)
	right[13] = 0

	for _, op := range []BinaryOp{OpDivide, OpModulo} {
		k, err := s.vector.Binary(op, false)
		s.Require().NoError(err)

		out := make([]T, 20)
		for i := range out {
			out[i] = 9
		}
		before := append([]T(nil), out...)
		s.ErrorIs(k.ArrArr(left, right, out), dataframe.ErrDivideByZero)
		s.ErrorIs(k.ArrScalar(left, 0, out), dataframe.ErrDivideByZero)
		s.ErrorIs(k.ScalarArr(1, right, out), dataframe.ErrDivideByZero)
		s.Equal(before, out)
	}

	_, err := s.vector.ScalarDivide(5, 0)
	s.ErrorIs(err, dataframe.ErrDivideByZero)
	_, err = s.vector.ScalarModulo(5, 0)
	s.ErrorIs(err, dataframe.ErrDivideByZero)

	q, err := s.vector.ScalarDivide(9, 2)
	s.NoError(err)
	s.EqualValues(4, q)
	r, err := s.vector.ScalarModulo(9, 2)
	s.NoError(err)
	s.EqualValues(1, r)
}

func (s *IntegerHandlerSuite[T]) TestLengthMismatch() {
	k, err := s.vector.Binary(OpAdd, false)
	s.Require().NoError(err)

	out := []T{7, 7, 7, 7}
	s.ErrorIs(k.ArrArr([]T{1, 2, 3}, []T{1, 2, 3}, out), dataframe.ErrLengthMismatch)
	s.ErrorIs(k.ArrScalar([]T{1, 2, 3}, 1, out), dataframe.ErrLengthMismatch)
	s.ErrorIs(k.ScalarArr(1, []T{1, 2, 3}, out), dataframe.ErrLengthMismatch)
	s.Equal([]T{7, 7, 7, 7}, out)
}

func (s *IntegerHandlerSuite[T]) TestCheckedOverflow() {
	maxVal, minVal := MaxOf[T](), MinOf[T]()

	add, err := s.vector.Binary(OpAdd, true)
	s.Require().NoError(err)
	out := make([]T, 3)
	s.NoError(add.ArrArr([]T{1, 2, 3}, []T{4, 5, 6}, out))
	s.Equal([]T{5, 7, 9}, out)

	out = []T{0, 0, 0}
	s.ErrorIs(add.ArrScalar([]T{1, maxVal, 3}, 1, out), dataframe.ErrOverflow)
	s.Equal(T(2), out[0])
	s.Equal(T(0), out[2])

	sub, err := s.vector.Binary(OpSubtract, true)
	s.Require().NoError(err)
	s.ErrorIs(sub.ScalarArr(minVal, []T{1}, out[:1]), dataframe.ErrOverflow)

	mul, err := s.vector.Binary(OpMultiply, true)
	s.Require().NoError(err)
	s.ErrorIs(mul.ArrScalar([]T{maxVal}, 2, out[:1]), dataframe.ErrOverflow)
	s.NoError(mul.ArrScalar([]T{maxVal / 2}, 2, out[:1]))

	// unchecked kernels wrap
	wrap, err := s.vector.Binary(OpAdd, false)
	s.Require().NoError(err)
	s.NoError(wrap.ArrScalar([]T{maxVal}, 1, out[:1]))
	s.Equal(minVal, out[0])

	// operators without a checked variant fall back to the plain kernel
	xor, err := s.vector.Binary(OpXor, true)
	s.NoError(err)
	s.NotNil(xor)
}

func (s *IntegerHandlerSuite[T]) TestShift() {
	left := []T{1, 2, 3, MaxOf[T]()}
	out := make([]T, 4)

	lshift, err := s.vector.Shift(OpLeftShift)
	s.Require().NoError(err)
	s.NoError(lshift(left, 1, out))
	s.Equal([]T{2, 4, 6, MaxOf[T]() << 1}, out)

	rshift, err := s.vector.Shift(OpRightShift)
	s.Require().NoError(err)
	s.NoError(rshift(left, 1, out))
	s.Equal([]T{0, 1, 1, MaxOf[T]() >> 1}, out)

	s.NoError(lshift(left, int(8*SizeOf[T]()), out))
	s.Equal([]T{0, 0, 0, 0}, out)

	s.ErrorIs(lshift(left, -1, out), dataframe.ErrInvalid)
	s.ErrorIs(rshift(left, 1, out[:2]), dataframe.ErrLengthMismatch)
}

func (s *IntegerHandlerSuite[T]) TestCompare() {
	left := []T{1, 5, 9}
	right := []T{5, 5, 5}
	expected := map[CompareOp][]bool{
		CmpEQ: {false, true, false},
		CmpNE: {true, false, true},
		CmpGE: {false, true, true},
		CmpLE: {true, true, false},
		CmpGT: {false, false, true},
		CmpLT: {true, false, false},
	}
	for op, want := range expected {
		k, err := s.vector.Compare(op)
		s.Require().NoError(err)
		out := make([]bool, 3)
		s.NoError(k.ArrArr(left, right, out))
		s.Equal(want, out, op.String())
		s.NoError(k.ArrScalar(left, 5, out))
		s.Equal(want, out, op.String())

		// 5 op right[i] mirrors left[i] op 5 with the operands swapped
		s.NoError(k.ScalarArr(5, left, out))
		for i := range out {
			s.Equal(cmpResult(op, compareInts(5, left[i])), out[i])
		}
	}
}

func compareInts[T IntegerTypes](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// cmpResult maps a three-way comparison result onto op.
func cmpResult(op CompareOp, c int) bool {
	switch op {
	case CmpEQ:
		return c == 0
	case CmpNE:
		return c != 0
	case CmpGE:
		return c >= 0
	case CmpLE:
		return c <= 0
	case CmpGT:
		return c > 0
	default:
		return c < 0
	}
}

func TestIntegerHandlers(t *testing.T) {
	suite.Run(t, &IntegerHandlerSuite[int8]{dt: dataframe.PrimitiveTypes.Int8})
	suite.Run(t, &IntegerHandlerSuite[uint8]{dt: dataframe.PrimitiveTypes.Uint8})
	suite.Run(t, &IntegerHandlerSuite[int16]{dt: dataframe.PrimitiveTypes.Int16})
	suite.Run(t, &IntegerHandlerSuite[uint16]{dt: dataframe.PrimitiveTypes.Uint16})
	suite.Run(t, &IntegerHandlerSuite[int32]{dt: dataframe.PrimitiveTypes.Int32})
	suite.Run(t, &IntegerHandlerSuite[uint32]{dt: dataframe.PrimitiveTypes.Uint32})
	suite.Run(t, &IntegerHandlerSuite[int64]{dt: dataframe.PrimitiveTypes.Int64})
	suite.Run(t, &IntegerHandlerSuite[uint64]{dt: dataframe.PrimitiveTypes.Uint64})
}

func TestSignedIntegerSemantics(t *testing.T) {
	h := NewIntegerHandler[int32](dataframe.PrimitiveTypes.Int32, 4)

	div, err := h.Binary(OpDivide, false)
	require.NoError(t, err)
	out := make([]int32, 3)
	require.NoError(t, div.ArrArr([]int32{10, 20, 30}, []int32{3, 4, 5}, out))
	assert.Equal(t, []int32{3, 5, 6}, out)

	mod, err := h.Binary(OpModulo, false)
	require.NoError(t, err)
	require.NoError(t, mod.ArrArr([]int32{10, 20, 30}, []int32{3, 4, 5}, out))
	assert.Equal(t, []int32{1, 0, 0}, out)

	require.NoError(t, mod.ArrScalar([]int32{-7, 7, -8}, 3, out))
	assert.Equal(t, []int32{-1, 1, -2}, out)

	sub, err := h.Binary(OpSubtract, false)
	require.NoError(t, err)
	require.NoError(t, sub.ScalarArr(10, []int32{1, 2, 3}, out))
	assert.Equal(t, []int32{9, 8, 7}, out)
	require.NoError(t, sub.ArrScalar([]int32{1, 2, 3}, 10, out))
	assert.Equal(t, []int32{-9, -8, -7}, out)

	rshift, err := h.Shift(OpRightShift)
	require.NoError(t, err)
	require.NoError(t, rshift([]int32{-8, 8, -1}, 1, out))
	assert.Equal(t, []int32{-4, 4, -1}, out)
	require.NoError(t, rshift([]int32{-8, 8, -1}, 40, out))
	assert.Equal(t, []int32{-1, 0, -1}, out)

	q, err := h.ScalarDivide(math.MinInt32, -1)
	require.NoError(t, err)
	assert.EqualValues(t, math.MinInt32, q)
	r, err := h.ScalarModulo(math.MinInt32, -1)
	require.NoError(t, err)
	assert.Zero(t, r)

	_, err = h.Binary(BinaryOp(99), false)
	assert.ErrorIs(t, err, dataframe.ErrUnsupportedOperation)
	_, err = h.Shift(ShiftOp(-1))
	assert.ErrorIs(t, err, dataframe.ErrUnsupportedOperation)
}

func TestFloatHandler(t *testing.T) {
	h := NewFloatHandler[float64, uint64](dataframe.PrimitiveTypes.Float64, 4)
	assert.Equal(t, CapNumeric|CapBitwise|CapEquality|CapOrdering, h.Capabilities())

	_, err := h.Shift(OpLeftShift)
	assert.ErrorIs(t, err, dataframe.ErrUnsupportedOperation)

	rng := rand.New(rand.NewSource(42))
	for _, n := range []int{0, 1, 3, 4, 5, 17, 256} {
		left, right := make([]float64, n), make([]float64, n)
		for i := range left {
			left[i], right[i] = rng.NormFloat64()*100, rng.NormFloat64()*100
		}

		add, err := h.Binary(OpAdd, false)
		require.NoError(t, err)
		got := make([]float64, n)
		require.NoError(t, add.ArrArr(left, right, got))
		want := make([]float64, n)
		floats.AddTo(want, left, right)
		assert.True(t, floats.Equal(want, got))

		mul, err := h.Binary(OpMultiply, false)
		require.NoError(t, err)
		require.NoError(t, mul.ArrArr(left, right, got))
		floats.MulTo(want, left, right)
		assert.True(t, floats.Equal(want, got))

		div, err := h.Binary(OpDivide, false)
		require.NoError(t, err)
		require.NoError(t, div.ArrArr(left, right, got))
		floats.DivTo(want, left, right)
		assert.True(t, floats.EqualApprox(want, got, 1e-12))

		sub, err := h.Binary(OpSubtract, false)
		require.NoError(t, err)
		require.NoError(t, sub.ArrScalar(left, 2.5, got))
		copy(want, left)
		floats.AddConst(-2.5, want)
		assert.True(t, floats.Equal(want, got))
	}

	div, err := h.Binary(OpDivide, false)
	require.NoError(t, err)
	out := make([]float64, 3)
	require.NoError(t, div.ArrScalar([]float64{5, -5, 0}, 0, out))
	assert.True(t, math.IsInf(out[0], 1))
	assert.True(t, math.IsInf(out[1], -1))
	assert.True(t, math.IsNaN(out[2]))

	q, err := h.ScalarDivide(1, 0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(q, 1))

	mod, err := h.Binary(OpModulo, false)
	require.NoError(t, err)
	require.NoError(t, mod.ArrScalar([]float64{5.5, -5.5, 1}, 2, out))
	assert.Equal(t, []float64{1.5, -1.5, 1}, out)
}

func TestFloatBitwise(t *testing.T) {
	h := NewFloatHandler[float32, uint32](dataframe.PrimitiveTypes.Float32, 8)
	xor, err := h.Binary(OpXor, false)
	require.NoError(t, err)

	// flipping the sign bit negates
	signBit := math.Float32frombits(1 << 31)
	vals := []float32{1.5, -2, 0, 3.25, 100, -0.5, 7, 8, 9}
	out := make([]float32, len(vals))
	require.NoError(t, xor.ArrScalar(vals, signBit, out))
	for i, v := range vals {
		assert.Equal(t, math.Float32bits(-v), math.Float32bits(out[i]))
	}

	and, err := h.Binary(OpAnd, false)
	require.NoError(t, err)
	require.NoError(t, and.ArrArr(vals, vals, out))
	assert.Equal(t, vals, out)

	or, err := h.Binary(OpOr, false)
	require.NoError(t, err)
	assert.ErrorIs(t, or.ArrArr(vals, vals[:2], out), dataframe.ErrLengthMismatch)
	assert.NoError(t, or.ArrArr(nil, nil, nil))
}

func TestBooleanHandler(t *testing.T) {
	h := NewBooleanHandler()
	assert.Equal(t, CapBitwise|CapEquality, h.Capabilities())

	left := []bool{true, true, false, false}
	right := []bool{true, false, true, false}
	out := make([]bool, 4)

	for op, want := range map[BinaryOp][]bool{
		OpAnd: {true, false, false, false},
		OpOr:  {true, true, true, false},
		OpXor: {false, true, true, false},
	} {
		k, err := h.Binary(op, false)
		require.NoError(t, err)
		require.NoError(t, k.ArrArr(left, right, out))
		assert.Equal(t, want, out, op.String())
	}

	eq, err := h.Compare(CmpEQ)
	require.NoError(t, err)
	require.NoError(t, eq.ArrScalar(left, true, out))
	assert.Equal(t, []bool{true, true, false, false}, out)

	for _, op := range []BinaryOp{OpAdd, OpSubtract, OpMultiply, OpDivide, OpModulo} {
		_, err := h.Binary(op, false)
		assert.ErrorIs(t, err, dataframe.ErrUnsupportedOperation, op.String())
	}
	_, err = h.Compare(CmpLT)
	assert.ErrorIs(t, err, dataframe.ErrUnsupportedOperation)
	_, err = h.ScalarDivide(true, true)
	assert.ErrorIs(t, err, dataframe.ErrUnsupportedOperation)
}

func TestTimestampHandler(t *testing.T) {
	dt := &dataframe.TimestampType{Unit: dataframe.Millisecond}
	h := NewTimestampHandler(dt)
	assert.Equal(t, CapEquality|CapOrdering, h.Capabilities())

	ge, err := h.Compare(CmpGE)
	require.NoError(t, err)
	out := make([]bool, 3)
	require.NoError(t, ge.ArrScalar([]dataframe.Timestamp{1, 2, 3}, 2, out))
	assert.Equal(t, []bool{false, true, true}, out)

	for op := OpAdd; op <= OpXor; op++ {
		_, err := h.Binary(op, false)
		assert.ErrorIs(t, err, dataframe.ErrUnsupportedOperation)
	}
}

func TestDecimalHandler(t *testing.T) {
	dt := &dataframe.Decimal128Type{Precision: 10, Scale: 2}
	h := NewDecimalHandler(dt, 2)
	assert.Equal(t, CapNumeric|CapEquality|CapOrdering, h.Capabilities())

	parse := func(vals ...string) []decimal128.Num {
		out := make([]decimal128.Num, len(vals))
		for i, v := range vals {
			n, err := decimal128.FromString(v, dt.Scale)
			require.NoError(t, err)
			out[i] = n
		}
		return out
	}
	format := func(vals []decimal128.Num) []string {
		out := make([]string, len(vals))
		for i, v := range vals {
			out[i] = v.ToString(dt.Scale)
		}
		return out
	}

	left := parse("1.50", "-2.25", "10.00")
	right := parse("2.00", "0.50", "-3.00")
	out := make([]decimal128.Num, 3)

	tests := []struct {
		op   BinaryOp
		want []string
	}{
		{OpAdd, []string{"3.50", "-1.75", "7.00"}},
		{OpSubtract, []string{"-0.50", "-2.75", "13.00"}},
		{OpMultiply, []string{"3.00", "-1.12", "-30.00"}},
		{OpDivide, []string{"0.75", "-4.50", "-3.33"}},
		{OpModulo, []string{"1.50", "-0.25", "1.00"}},
	}
	for _, tt := range tests {
		k, err := h.Binary(tt.op, false)
		require.NoError(t, err)
		require.NoError(t, k.ArrArr(left, right, out))
		assert.Equal(t, tt.want, format(out), tt.op.String())
	}

	div, err := h.Binary(OpDivide, false)
	require.NoError(t, err)
	before := append([]decimal128.Num(nil), out...)
	assert.ErrorIs(t, div.ArrArr(left, parse("1.00", "0", "1.00"), out), dataframe.ErrDivideByZero)
	assert.ErrorIs(t, div.ArrScalar(left, decimal128.Num{}, out), dataframe.ErrDivideByZero)
	assert.Equal(t, before, out)

	q, err := h.ScalarDivide(parse("1.00")[0], parse("3.00")[0])
	require.NoError(t, err)
	assert.Equal(t, "0.33", q.ToString(dt.Scale))
	_, err = h.ScalarModulo(q, decimal128.Num{})
	assert.ErrorIs(t, err, dataframe.ErrDivideByZero)

	maxNum := decimal128.New(math.MaxInt64, math.MaxUint64)
	add, err := h.Binary(OpAdd, true)
	require.NoError(t, err)
	assert.ErrorIs(t, add.ArrScalar([]decimal128.Num{maxNum}, decimal128.FromI64(1), out[:1]), dataframe.ErrOverflow)
	mul, err := h.Binary(OpMultiply, true)
	require.NoError(t, err)
	assert.ErrorIs(t, mul.ArrScalar([]decimal128.Num{maxNum}, parse("2.00")[0], out[:1]), dataframe.ErrOverflow)

	lt, err := h.Compare(CmpLT)
	require.NoError(t, err)
	cmpOut := make([]bool, 3)
	require.NoError(t, lt.ArrArr(left, right, cmpOut))
	assert.Equal(t, []bool{true, true, false}, cmpOut)

	_, err = h.Binary(OpAnd, false)
	assert.ErrorIs(t, err, dataframe.ErrUnsupportedOperation)
	_, err = h.Shift(OpLeftShift)
	assert.ErrorIs(t, err, dataframe.ErrUnsupportedOperation)
}

func TestDecimalCompareAllOps(t *testing.T) {
	dt := &dataframe.Decimal128Type{Precision: 38, Scale: 3}
	h := NewDecimalHandler(dt, 4)

	vals := []decimal128.Num{
		decimal128.FromI64(-2000), decimal128.FromI64(-1), decimal128.FromI64(0),
		decimal128.FromI64(1), decimal128.FromI64(2000), decimal128.MaxDecimal128,
		decimal128.MaxDecimal128.Negate(), decimal128.New(1, 0), decimal128.New(-1, 0),
	}
	var left, right []decimal128.Num
	for _, a := range vals {
		for _, b := range vals {
			left, right = append(left, a), append(right, b)
		}
	}

	out := make([]bool, len(left))
	for _, op := range compareOps {
		k, err := h.Compare(op)
		require.NoError(t, err)

		require.NoError(t, k.ArrArr(left, right, out))
		for i := range out {
			want := cmpResult(op, left[i].BigInt().Cmp(right[i].BigInt()))
			assert.Equalf(t, want, out[i], "%s %s %s", left[i].BigInt(), op, right[i].BigInt())
		}

		pivot := decimal128.FromI64(1)
		require.NoError(t, k.ArrScalar(left, pivot, out))
		for i := range out {
			assert.Equal(t, cmpResult(op, left[i].Cmp(pivot)), out[i], op.String())
		}
		require.NoError(t, k.ScalarArr(pivot, right, out))
		for i := range out {
			assert.Equal(t, cmpResult(op, pivot.Cmp(right[i])), out[i], op.String())
		}
	}
}

func TestDecimalCheckedDivide(t *testing.T) {
	dt := &dataframe.Decimal128Type{Precision: 38, Scale: 2}
	h := NewDecimalHandler(dt, 2)

	parse := func(v string) decimal128.Num {
		n, err := decimal128.FromString(v, dt.Scale)
		require.NoError(t, err)
		return n
	}
	huge := parse("100000000000000000000000000000000000")
	cent := parse("0.01")

	div, err := h.Binary(OpDivide, true)
	require.NoError(t, err)
	out := []decimal128.Num{decimal128.FromI64(7)}
	assert.ErrorIs(t, div.ArrScalar([]decimal128.Num{huge}, cent, out), dataframe.ErrOverflow)
	assert.ErrorIs(t, div.ArrArr([]decimal128.Num{huge}, []decimal128.Num{cent}, out), dataframe.ErrOverflow)
	assert.ErrorIs(t, div.ScalarArr(huge, []decimal128.Num{cent}, out), dataframe.ErrOverflow)

	// a zero divisor is still reported first and nothing is written
	out[0] = decimal128.FromI64(7)
	assert.ErrorIs(t, div.ArrArr([]decimal128.Num{huge}, []decimal128.Num{{}}, out), dataframe.ErrDivideByZero)
	assert.Equal(t, decimal128.FromI64(7), out[0])
	assert.ErrorIs(t, div.ArrScalar([]decimal128.Num{huge}, decimal128.Num{}, out[:0]), dataframe.ErrLengthMismatch)

	in := []decimal128.Num{parse("1.00"), parse("-4.50")}
	res := make([]decimal128.Num, 2)
	require.NoError(t, div.ArrScalar(in, parse("2.00"), res))
	assert.Equal(t, "0.50", res[0].ToString(dt.Scale))
	assert.Equal(t, "-2.25", res[1].ToString(dt.Scale))

	// the unchecked kernel keeps wrapping
	plain, err := h.Binary(OpDivide, false)
	require.NoError(t, err)
	assert.NoError(t, plain.ArrScalar([]decimal128.Num{huge}, cent, out))

	_, err = h.ScalarDivideChecked(huge, cent)
	assert.ErrorIs(t, err, dataframe.ErrOverflow)
	_, err = h.ScalarDivideChecked(huge, decimal128.Num{})
	assert.ErrorIs(t, err, dataframe.ErrDivideByZero)
	_, err = h.ScalarDivide(huge, cent)
	assert.NoError(t, err)
	q, err := h.ScalarDivideChecked(parse("1.00"), parse("3.00"))
	require.NoError(t, err)
	assert.Equal(t, "0.33", q.ToString(dt.Scale))

	ints := NewIntegerHandler[int32](dataframe.PrimitiveTypes.Int32, 1)
	iq, err := ints.ScalarDivideChecked(9, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 4, iq)
}
