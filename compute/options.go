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

// Options controls how kernels are selected.
type Options struct {
	// CheckOverflow selects checked Add, Subtract and Multiply kernels for
	// integer and decimal types, and a checked Divide for decimals. They
	// fail with dataframe.ErrOverflow rather than wrapping. Elements before
	// the overflowing one have already been written when the error is
	// returned; a zero divisor is still detected before anything is written.
	CheckOverflow bool
	// NoSIMD processes every element in a plain scalar loop regardless of
	// the CPU's vector width.
	NoSIMD bool
}

// DefaultOptions wraps on overflow and uses the detected vector width.
func DefaultOptions() Options { return Options{} }
