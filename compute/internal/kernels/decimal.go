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

import "github.com/apache/arrow-dataframe/decimal128"

type num = decimal128.Num

// decimalBodies returns loops for decimals sharing scale. Add and Subtract
// are plain 128-bit integer operations; Multiply and Divide rescale the
// 256-bit intermediate and wrap if it does not fit. Divide and Modulo
// expect the divisor to have been checked for zero.
func decimalBodies(op BinaryOp, scale int32) (arrArrBody[num, num], arrScalarBody[num, num], scalarArrBody[num, num]) {
	switch op {
	case OpAdd:
		return func(left, right, out []num) {
				left, right = left[:len(out)], right[:len(out)]
				for i := range out {
					out[i] = left[i].Add(right[i])
				}
			}, func(left []num, right num, out []num) {
				left = left[:len(out)]
				for i := range out {
					out[i] = left[i].Add(right)
				}
			}, func(left num, right, out []num) {
				right = right[:len(out)]
				for i := range out {
					out[i] = left.Add(right[i])
				}
			}
	case OpSubtract:
		return func(left, right, out []num) {
				left, right = left[:len(out)], right[:len(out)]
				for i := range out {
					out[i] = left[i].Sub(right[i])
				}
			}, func(left []num, right num, out []num) {
				left = left[:len(out)]
				for i := range out {
					out[i] = left[i].Sub(right)
				}
			}, func(left num, right, out []num) {
				right = right[:len(out)]
				for i := range out {
					out[i] = left.Sub(right[i])
				}
			}
	case OpMultiply:
		return func(left, right, out []num) {
				left, right = left[:len(out)], right[:len(out)]
				for i := range out {
					out[i], _ = left[i].MulScaled(right[i], scale)
				}
			}, func(left []num, right num, out []num) {
				left = left[:len(out)]
				for i := range out {
					out[i], _ = left[i].MulScaled(right, scale)
				}
			}, func(left num, right, out []num) {
				right = right[:len(out)]
				for i := range out {
					out[i], _ = left.MulScaled(right[i], scale)
				}
			}
	case OpDivide:
		return func(left, right, out []num) {
				left, right = left[:len(out)], right[:len(out)]
				for i := range out {
					out[i], _ = left[i].QuoScaled(right[i], scale)
				}
			}, func(left []num, right num, out []num) {
				left = left[:len(out)]
				for i := range out {
					out[i], _ = left[i].QuoScaled(right, scale)
				}
			}, func(left num, right, out []num) {
				right = right[:len(out)]
				for i := range out {
					out[i], _ = left.QuoScaled(right[i], scale)
				}
			}
	case OpModulo:
		return func(left, right, out []num) {
				left, right = left[:len(out)], right[:len(out)]
				for i := range out {
					out[i] = left[i].Rem(right[i])
				}
			}, func(left []num, right num, out []num) {
				left = left[:len(out)]
				for i := range out {
					out[i] = left[i].Rem(right)
				}
			}, func(left num, right, out []num) {
				right = right[:len(out)]
				for i := range out {
					out[i] = left.Rem(right[i])
				}
			}
	}
	return nil, nil, nil
}

// decimalCompareBodies compares decimals sharing a scale, which reduces to
// comparing the unscaled 128-bit integers. Equality is exact on the two's
// complement representation.
func decimalCompareBodies(op CompareOp) (arrArrBody[num, bool], arrScalarBody[num, bool], scalarArrBody[num, bool]) {
	switch op {
	case CmpEQ, CmpNE:
		return equalityBodies[num](op)
	case CmpGE:
		return func(left, right []num, out []bool) {
				left, right = left[:len(out)], right[:len(out)]
				for i := range out {
					out[i] = left[i].Cmp(right[i]) >= 0
				}
			}, func(left []num, right num, out []bool) {
				left = left[:len(out)]
				for i := range out {
					out[i] = left[i].Cmp(right) >= 0
				}
			}, func(left num, right []num, out []bool) {
				right = right[:len(out)]
				for i := range out {
					out[i] = left.Cmp(right[i]) >= 0
				}
			}
	case CmpLE:
		return func(left, right []num, out []bool) {
				left, right = left[:len(out)], right[:len(out)]
				for i := range out {
					out[i] = left[i].Cmp(right[i]) <= 0
				}
			}, func(left []num, right num, out []bool) {
				left = left[:len(out)]
				for i := range out {
					out[i] = left[i].Cmp(right) <= 0
				}
			}, func(left num, right []num, out []bool) {
				right = right[:len(out)]
				for i := range out {
					out[i] = left.Cmp(right[i]) <= 0
				}
			}
	case CmpGT:
		return func(left, right []num, out []bool) {
				left, right = left[:len(out)], right[:len(out)]
				for i := range out {
					out[i] = left[i].Cmp(right[i]) > 0
				}
			}, func(left []num, right num, out []bool) {
				left = left[:len(out)]
				for i := range out {
					out[i] = left[i].Cmp(right) > 0
				}
			}, func(left num, right []num, out []bool) {
				right = right[:len(out)]
				for i := range out {
					out[i] = left.Cmp(right[i]) > 0
				}
			}
	case CmpLT:
		return func(left, right []num, out []bool) {
				left, right = left[:len(out)], right[:len(out)]
				for i := range out {
					out[i] = left[i].Cmp(right[i]) < 0
				}
			}, func(left []num, right num, out []bool) {
				left = left[:len(out)]
				for i := range out {
					out[i] = left[i].Cmp(right) < 0
				}
			}, func(left num, right []num, out []bool) {
				right = right[:len(out)]
				for i := range out {
					out[i] = left.Cmp(right[i]) < 0
				}
			}
	}
	return nil, nil, nil
}
