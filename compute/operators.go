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

import "github.com/apache/arrow-dataframe/compute/internal/kernels"

type (
	// BinaryOp is an element-wise operator whose result has the operand type.
	BinaryOp = kernels.BinaryOp
	// ShiftOp shifts integer elements by a bit count.
	ShiftOp = kernels.ShiftOp
	// CompareOp is an element-wise comparison producing booleans.
	CompareOp = kernels.CompareOp
	// Capability is a set of operator groups supported by an element type.
	Capability = kernels.Capability
)

const (
	OpAdd      = kernels.OpAdd
	OpSubtract = kernels.OpSubtract
	OpMultiply = kernels.OpMultiply
	OpDivide   = kernels.OpDivide
	OpModulo   = kernels.OpModulo
	OpAnd      = kernels.OpAnd
	OpOr       = kernels.OpOr
	OpXor      = kernels.OpXor

	OpLeftShift  = kernels.OpLeftShift
	OpRightShift = kernels.OpRightShift

	CmpEQ = kernels.CmpEQ
	CmpNE = kernels.CmpNE
	CmpGE = kernels.CmpGE
	CmpLE = kernels.CmpLE
	CmpGT = kernels.CmpGT
	CmpLT = kernels.CmpLT

	CapNumeric  = kernels.CapNumeric
	CapBitwise  = kernels.CapBitwise
	CapShift    = kernels.CapShift
	CapEquality = kernels.CapEquality
	CapOrdering = kernels.CapOrdering
)

// Operator is implemented by BinaryOp, ShiftOp and CompareOp.
type Operator interface {
	String() string
	Capability() Capability
}

// BinaryOps lists every BinaryOp in declaration order.
var BinaryOps = []BinaryOp{OpAdd, OpSubtract, OpMultiply, OpDivide, OpModulo, OpAnd, OpOr, OpXor}

// ParseBinaryOp returns the operator whose name (as printed by String)
// is name.
func ParseBinaryOp(name string) (BinaryOp, bool) {
	for _, op := range BinaryOps {
		if op.String() == name {
			return op, true
		}
	}
	return 0, false
}
