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

import "cmp"

// Comparisons have no chunked fast path; they are plain loops writing one
// bool per element.

func equalityBodies[T comparable](op CompareOp) (arrArrBody[T, bool], arrScalarBody[T, bool], scalarArrBody[T, bool]) {
	switch op {
	case CmpEQ:
		return func(left, right []T, out []bool) {
				left, right = left[:len(out)], right[:len(out)]
				for i := range out {
					out[i] = left[i] == right[i]
				}
			}, func(left []T, right T, out []bool) {
				left = left[:len(out)]
				for i := range out {
					out[i] = left[i] == right
				}
			}, func(left T, right []T, out []bool) {
				right = right[:len(out)]
				for i := range out {
					out[i] = left == right[i]
				}
			}
	case CmpNE:
		return func(left, right []T, out []bool) {
				left, right = left[:len(out)], right[:len(out)]
				for i := range out {
					out[i] = left[i] != right[i]
				}
			}, func(left []T, right T, out []bool) {
				left = left[:len(out)]
				for i := range out {
					out[i] = left[i] != right
				}
			}, func(left T, right []T, out []bool) {
				right = right[:len(out)]
				for i := range out {
					out[i] = left != right[i]
				}
			}
	}
	return nil, nil, nil
}

// orderedBodies covers every comparison operator for types with a native
// ordering. Float comparisons follow IEEE-754, so NaN is unordered.
func orderedBodies[T cmp.Ordered](op CompareOp) (arrArrBody[T, bool], arrScalarBody[T, bool], scalarArrBody[T, bool]) {
	switch op {
	case CmpEQ, CmpNE:
		return equalityBodies[T](op)
	case CmpGE:
		return func(left, right []T, out []bool) {
				left, right = left[:len(out)], right[:len(out)]
				for i := range out {
					out[i] = left[i] >= right[i]
				}
			}, func(left []T, right T, out []bool) {
				left = left[:len(out)]
				for i := range out {
					out[i] = left[i] >= right
				}
			}, func(left T, right []T, out []bool) {
				right = right[:len(out)]
				for i := range out {
					out[i] = left >= right[i]
				}
			}
	case CmpLE:
		return func(left, right []T, out []bool) {
				left, right = left[:len(out)], right[:len(out)]
				for i := range out {
					out[i] = left[i] <= right[i]
				}
			}, func(left []T, right T, out []bool) {
				left = left[:len(out)]
				for i := range out {
					out[i] = left[i] <= right
				}
			}, func(left T, right []T, out []bool) {
				right = right[:len(out)]
				for i := range out {
					out[i] = left <= right[i]
				}
			}
	case CmpGT:
		return func(left, right []T, out []bool) {
				left, right = left[:len(out)], right[:len(out)]
				for i := range out {
					out[i] = left[i] > right[i]
				}
			}, func(left []T, right T, out []bool) {
				left = left[:len(out)]
				for i := range out {
					out[i] = left[i] > right
				}
			}, func(left T, right []T, out []bool) {
				right = right[:len(out)]
				for i := range out {
					out[i] = left > right[i]
				}
			}
	case CmpLT:
		return func(left, right []T, out []bool) {
				left, right = left[:len(out)], right[:len(out)]
				for i := range out {
					out[i] = left[i] < right[i]
				}
			}, func(left []T, right T, out []bool) {
				left = left[:len(out)]
				for i := range out {
					out[i] = left[i] < right
				}
			}, func(left T, right []T, out []bool) {
				right = right[:len(out)]
				for i := range out {
					out[i] = left < right[i]
				}
			}
	}
	return nil, nil, nil
}
