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

package dataframe

import (
	"fmt"
	"strconv"
)

// Type is the physical element kind of a column buffer.
type Type int

const (
	// NULL type having no physical storage
	NULL Type = iota

	// BOOL is one element per byte, stored as a Go bool
	BOOL

	// UINT8 is an Unsigned 8-bit integer
	UINT8

	// INT8 is a Signed 8-bit integer
	INT8

	// UINT16 is an Unsigned 16-bit integer
	UINT16

	// INT16 is a Signed 16-bit integer
	INT16

	// UINT32 is an Unsigned 32-bit integer
	UINT32

	// INT32 is a Signed 32-bit integer
	INT32

	// UINT64 is an Unsigned 64-bit integer
	UINT64

	// INT64 is a Signed 64-bit integer
	INT64

	// FLOAT32 is a 4-byte floating point value
	FLOAT32

	// FLOAT64 is an 8-byte floating point value
	FLOAT64

	// STRING is a UTF8 variable-length string
	STRING

	// BINARY is a variable-length byte sequence
	BINARY

	// TIMESTAMP is an exact timestamp encoded with int64 since UNIX epoch
	TIMESTAMP

	// DECIMAL128 is a fixed-point decimal stored in 16 bytes
	DECIMAL128
)

// DataType is the representation of an element type.
type DataType interface {
	fmt.Stringer
	ID() Type
	// Name is name of the data type.
	Name() string
}

// FixedWidthDataType is the representation of an element type
// whose values all occupy the same number of bits.
type FixedWidthDataType interface {
	DataType
	// BitWidth returns the number of bits required to store a single element of this data type in memory.
	BitWidth() int
}

type NullType struct{}

func (*NullType) ID() Type       { return NULL }
func (*NullType) Name() string   { return "null" }
func (*NullType) String() string { return "null" }

type BooleanType struct{}

func (*BooleanType) ID() Type       { return BOOL }
func (*BooleanType) Name() string   { return "bool" }
func (*BooleanType) String() string { return "bool" }
func (*BooleanType) BitWidth() int  { return 8 }

type (
	Int8Type    struct{}
	Int16Type   struct{}
	Int32Type   struct{}
	Int64Type   struct{}
	Uint8Type   struct{}
	Uint16Type  struct{}
	Uint32Type  struct{}
	Uint64Type  struct{}
	Float32Type struct{}
	Float64Type struct{}
)

func (*Int8Type) ID() Type       { return INT8 }
func (*Int8Type) Name() string   { return "int8" }
func (*Int8Type) String() string { return "int8" }
func (*Int8Type) BitWidth() int  { return 8 }

func (*Int16Type) ID() Type       { return INT16 }
func (*Int16Type) Name() string   { return "int16" }
func (*Int16Type) String() string { return "int16" }
func (*Int16Type) BitWidth() int  { return 16 }

func (*Int32Type) ID() Type       { return INT32 }
func (*Int32Type) Name() string   { return "int32" }
func (*Int32Type) String() string { return "int32" }
func (*Int32Type) BitWidth() int  { return 32 }

func (*Int64Type) ID() Type       { return INT64 }
func (*Int64Type) Name() string   { return "int64" }
func (*Int64Type) String() string { return "int64" }
func (*Int64Type) BitWidth() int  { return 64 }

func (*Uint8Type) ID() Type       { return UINT8 }
func (*Uint8Type) Name() string   { return "uint8" }
func (*Uint8Type) String() string { return "uint8" }
func (*Uint8Type) BitWidth() int  { return 8 }

func (*Uint16Type) ID() Type       { return UINT16 }
func (*Uint16Type) Name() string   { return "uint16" }
func (*Uint16Type) String() string { return "uint16" }
func (*Uint16Type) BitWidth() int  { return 16 }

func (*Uint32Type) ID() Type       { return UINT32 }
func (*Uint32Type) Name() string   { return "uint32" }
func (*Uint32Type) String() string { return "uint32" }
func (*Uint32Type) BitWidth() int  { return 32 }

func (*Uint64Type) ID() Type       { return UINT64 }
func (*Uint64Type) Name() string   { return "uint64" }
func (*Uint64Type) String() string { return "uint64" }
func (*Uint64Type) BitWidth() int  { return 64 }

func (*Float32Type) ID() Type       { return FLOAT32 }
func (*Float32Type) Name() string   { return "float32" }
func (*Float32Type) String() string { return "float32" }
func (*Float32Type) BitWidth() int  { return 32 }

func (*Float64Type) ID() Type       { return FLOAT64 }
func (*Float64Type) Name() string   { return "float64" }
func (*Float64Type) String() string { return "float64" }
func (*Float64Type) BitWidth() int  { return 64 }

type StringType struct{}

func (*StringType) ID() Type       { return STRING }
func (*StringType) Name() string   { return "utf8" }
func (*StringType) String() string { return "utf8" }

type BinaryType struct{}

func (*BinaryType) ID() Type       { return BINARY }
func (*BinaryType) Name() string   { return "binary" }
func (*BinaryType) String() string { return "binary" }

// MaxDecimal128Precision is the largest number of decimal digits a
// Decimal128Type can hold.
const MaxDecimal128Precision = 38

// Decimal128Type represents a fixed-size 128-bit decimal type. Values are
// stored unscaled; the logical value is Num / 10^Scale.
type Decimal128Type struct {
	Precision int32
	Scale     int32
}

func (*Decimal128Type) ID() Type      { return DECIMAL128 }
func (*Decimal128Type) Name() string  { return "decimal" }
func (*Decimal128Type) BitWidth() int { return 128 }
func (t *Decimal128Type) String() string {
	return "decimal(" + strconv.Itoa(int(t.Precision)) + ", " + strconv.Itoa(int(t.Scale)) + ")"
}

// Validate checks that the precision and scale are usable by the
// decimal kernels.
func (t *Decimal128Type) Validate() error {
	switch {
	case t.Precision < 1 || t.Precision > MaxDecimal128Precision:
		return fmt.Errorf("%w: decimal precision must be between 1 and %d, got %d",
			ErrInvalid, MaxDecimal128Precision, t.Precision)
	case t.Scale < 0 || t.Scale > t.Precision:
		return fmt.Errorf("%w: decimal scale must be between 0 and the precision (%d), got %d",
			ErrInvalid, t.Precision, t.Scale)
	}
	return nil
}

var (
	Null DataType = new(NullType)

	PrimitiveTypes = struct {
		Int8    FixedWidthDataType
		Int16   FixedWidthDataType
		Int32   FixedWidthDataType
		Int64   FixedWidthDataType
		Uint8   FixedWidthDataType
		Uint16  FixedWidthDataType
		Uint32  FixedWidthDataType
		Uint64  FixedWidthDataType
		Float32 FixedWidthDataType
		Float64 FixedWidthDataType
	}{
		Int8:    &Int8Type{},
		Int16:   &Int16Type{},
		Int32:   &Int32Type{},
		Int64:   &Int64Type{},
		Uint8:   &Uint8Type{},
		Uint16:  &Uint16Type{},
		Uint32:  &Uint32Type{},
		Uint64:  &Uint64Type{},
		Float32: &Float32Type{},
		Float64: &Float64Type{},
	}

	FixedWidthTypes = struct {
		Boolean      FixedWidthDataType
		Timestamp_s  FixedWidthDataType
		Timestamp_ms FixedWidthDataType
		Timestamp_us FixedWidthDataType
		Timestamp_ns FixedWidthDataType
	}{
		Boolean:      &BooleanType{},
		Timestamp_s:  &TimestampType{Unit: Second},
		Timestamp_ms: &TimestampType{Unit: Millisecond},
		Timestamp_us: &TimestampType{Unit: Microsecond},
		Timestamp_ns: &TimestampType{Unit: Nanosecond},
	}

	BinaryTypes = struct {
		String DataType
		Binary DataType
	}{
		String: &StringType{},
		Binary: &BinaryType{},
	}
)

// IsInteger is a helper to return true if the type ID provided is one of the
// integral types of uint or int with the varying sizes.
func IsInteger(t Type) bool {
	switch t {
	case UINT8, INT8, UINT16, INT16, UINT32, INT32, UINT64, INT64:
		return true
	}
	return false
}

// IsUnsignedInteger is a helper that returns true if the type ID provided is
// one of the uint integral types (uint8, uint16, uint32, uint64)
func IsUnsignedInteger(t Type) bool {
	switch t {
	case UINT8, UINT16, UINT32, UINT64:
		return true
	}
	return false
}

// IsFloating is a helper that returns true if the type ID provided is
// one of Float32 or Float64
func IsFloating(t Type) bool {
	switch t {
	case FLOAT32, FLOAT64:
		return true
	}
	return false
}

var (
	_ FixedWidthDataType = (*BooleanType)(nil)
	_ FixedWidthDataType = (*Decimal128Type)(nil)
	_ FixedWidthDataType = (*TimestampType)(nil)
	_ DataType           = (*StringType)(nil)
)
