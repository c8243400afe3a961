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

//go:generate stringer -type=BinaryOp,ShiftOp,CompareOp -linecomment

import "strings"

// BinaryOp is an element-wise operator producing a value of the operand type.
type BinaryOp int8

const (
	OpAdd      BinaryOp = iota // add
	OpSubtract                 // subtract
	OpMultiply                 // multiply
	OpDivide                   // divide
	OpModulo                   // modulo
	OpAnd                      // and
	OpOr                       // or
	OpXor                      // xor

	numBinaryOps = int(OpXor) + 1
)

// Commutative reports whether swapping the operands leaves the result
// unchanged.
func (op BinaryOp) Commutative() bool {
	switch op {
	case OpAdd, OpMultiply, OpAnd, OpOr, OpXor:
		return true
	}
	return false
}

// Capability returns the capability group an element type needs for op.
func (op BinaryOp) Capability() Capability {
	if op >= OpAnd {
		return CapBitwise
	}
	return CapNumeric
}

// ShiftOp shifts integer elements by a non-negative bit count.
type ShiftOp int8

const (
	OpLeftShift  ShiftOp = iota // left_shift
	OpRightShift                // right_shift

	numShiftOps = int(OpRightShift) + 1
)

func (ShiftOp) Capability() Capability { return CapShift }

// CompareOp is an element-wise comparison producing a boolean.
type CompareOp int8

const (
	CmpEQ CompareOp = iota // equal
	CmpNE                  // not_equal
	CmpGE                  // greater_equal
	CmpLE                  // less_equal
	CmpGT                  // greater
	CmpLT                  // less

	numCompareOps = int(CmpLT) + 1
)

func (op CompareOp) Capability() Capability {
	if op <= CmpNE {
		return CapEquality
	}
	return CapOrdering
}

// Capability is the set of operator groups an element type supports.
type Capability uint8

const (
	CapNumeric Capability = 1 << iota
	CapBitwise
	CapShift
	CapEquality
	CapOrdering

	capNames = "numeric|bitwise|shift|equality|ordering"
)

func (c Capability) Has(other Capability) bool { return c&other == other }

func (c Capability) String() string {
	if c == 0 {
		return "none"
	}
	var parts []string
	for i, name := range strings.Split(capNames, "|") {
		if c&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}
