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

/*
Package dataframe holds the element type taxonomy shared by the columnar
containers and the compute engine.

The column layer owns storage; everything in this module operates on plain
Go slices handed to it by that layer. The types declared here describe what
those slices contain so the compute package can pick the right kernel.

Basics

A DataType identifies the element kind of a buffer. These kinds carry
arithmetic kernels:

  - bool
  - signed and unsigned 8, 16, 32 and 64-bit integers
  - 32 and 64-bit floating point
  - Decimal128 (fixed-point, see package decimal128)
  - Timestamp

Other kinds (NULL, STRING, BINARY) are known to the containers but rejected
by the compute engine with ErrUnsupportedType.
*/
package dataframe

// stringer
//go:generate stringer -type=Type
