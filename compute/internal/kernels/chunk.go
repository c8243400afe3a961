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

// Bodies process one run of elements. The chunk drivers call a body once
// over the lane-aligned prefix of the input and once more for the
// remainder, so the operator is chosen a single time per call and never
// per element or per chunk. The prefix always holds a whole number of
// lanes. With a single lane the body runs once over the whole input.
type (
	arrArrBody[T, OutT any]    func(left, right []T, out []OutT)
	arrScalarBody[T, OutT any] func(left []T, right T, out []OutT)
	scalarArrBody[T, OutT any] func(left T, right []T, out []OutT)
)

func checkLengths(left, right, out int) error {
	if left != out || right != out {
		return fmt.Errorf("%w: operands have lengths %d and %d but destination has length %d",
			dataframe.ErrLengthMismatch, left, right, out)
	}
	return nil
}

func checkLength(in, out int) error {
	if in != out {
		return fmt.Errorf("%w: operand has length %d but destination has length %d",
			dataframe.ErrLengthMismatch, in, out)
	}
	return nil
}

// split returns the length of the lane-aligned prefix of n elements.
func split(lanes, n int) int {
	if lanes <= 1 {
		return n
	}
	return n - n%lanes
}

func chunkArrArr[T, OutT any](lanes int, left, right []T, out []OutT, body arrArrBody[T, OutT]) {
	n := split(lanes, len(out))
	if n > 0 {
		body(left[:n:n], right[:n:n], out[:n:n])
	}
	if n < len(out) {
		body(left[n:], right[n:], out[n:])
	}
}

func chunkArrScalar[T, OutT any](lanes int, left []T, right T, out []OutT, body arrScalarBody[T, OutT]) {
	n := split(lanes, len(out))
	if n > 0 {
		body(left[:n:n], right, out[:n:n])
	}
	if n < len(out) {
		body(left[n:], right, out[n:])
	}
}

func chunkScalarArr[T, OutT any](lanes int, left T, right []T, out []OutT, body scalarArrBody[T, OutT]) {
	n := split(lanes, len(out))
	if n > 0 {
		body(left, right[:n:n], out[:n:n])
	}
	if n < len(out) {
		body(left, right[n:], out[n:])
	}
}
