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

// Package compute performs typed element-wise arithmetic, bitwise, shift
// and comparison operations over Go slices.
//
// Each supported element type is resolved once to a handler holding one
// kernel per operator and operand shape. The kernels process the input in
// chunks sized to the widest SIMD register the CPU offers, then finish the
// remainder one element at a time. Results are written into a destination
// slice supplied by the caller; nothing is allocated per call.
//
// Supported element types and their capabilities:
//
//	bool                      and, or, xor, equality
//	int8 ... int64            arithmetic, bitwise, shifts, ordering
//	uint8 ... uint64          arithmetic, bitwise, shifts, ordering
//	float32, float64          arithmetic, bitwise on the raw bits, ordering
//	decimal128.Num            arithmetic, ordering
//	dataframe.Timestamp       ordering
//
// Requests outside a type's capabilities fail with
// dataframe.ErrUnsupportedOperation.
package compute
