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

package decimal128

import (
	"encoding/binary"
	"errors"
	"math"
	"math/big"
	"math/bits"
	"strings"
)

var (
	MaxDecimal128 = New(542101086242752217, 687399551400673280-1)

	errParse = errors.New("decimal128: invalid decimal string")
	errRange = errors.New("decimal128: value out of range")
)

// maxDigits is the number of base-10 digits a parsed value may carry,
// counting the fractional digits implied by its scale.
const maxDigits = 38

// Num represents a signed 128-bit integer in two's complement.
// Calculations wrap around and overflow is ignored unless the
// Checked variants are used.
//
// A Num carries no scale. Callers interpret it as Num / 10^scale
// where scale comes from the column's Decimal128Type.
type Num struct {
	lo uint64 // low bits
	hi int64  // high bits
}

// New returns a new signed 128-bit integer value.
func New(hi int64, lo uint64) Num {
	return Num{lo: lo, hi: hi}
}

// FromU64 returns a new signed 128-bit integer value from the provided uint64 one.
func FromU64(v uint64) Num {
	return New(0, v)
}

// FromI64 returns a new signed 128-bit integer value from the provided int64 one.
func FromI64(v int64) Num {
	switch {
	case v > 0:
		return New(0, uint64(v))
	case v < 0:
		return New(-1, uint64(v))
	default:
		return Num{}
	}
}

func fromBigIntPositive(v *big.Int) Num {
	var buf [16]byte
	v.FillBytes(buf[:])
	return Num{
		lo: binary.BigEndian.Uint64(buf[8:]),
		hi: int64(binary.BigEndian.Uint64(buf[:8])),
	}
}

// FromBigInt converts v, which must fit in 128 bits, into a Num.
func FromBigInt(v *big.Int) Num {
	if v.Sign() < 0 {
		return fromBigIntPositive((&big.Int{}).Abs(v)).Negate()
	}
	return fromBigIntPositive(v)
}

// FromString parses a base-10 string such as "-12.345" into a Num scaled by
// 10^scale. More fractional digits than scale is an error, as is a value
// whose unscaled magnitude needs more than 38 digits.
func FromString(s string, scale int32) (Num, error) {
	if scale < 0 || int(scale) >= len(pow10) {
		return Num{}, errRange
	}

	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg, s = true, s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	if intPart == "" && fracPart == "" {
		return Num{}, errParse
	}
	if len(fracPart) > int(scale) {
		return Num{}, errParse
	}

	var (
		mag uint128
		ovf bool
	)
	accum := func(digits string) error {
		for _, c := range digits {
			if c < '0' || c > '9' {
				return errParse
			}
			mag, ovf = mag.mulAdd64(10, uint64(c-'0'))
			if ovf {
				return errRange
			}
		}
		return nil
	}
	if err := accum(intPart); err != nil {
		return Num{}, err
	}
	if err := accum(fracPart); err != nil {
		return Num{}, err
	}

	for i := len(fracPart); i < int(scale); i++ {
		if mag, ovf = mag.mulAdd64(10, 0); ovf {
			return Num{}, errRange
		}
	}
	if mag.cmp(pow10[maxDigits]) >= 0 {
		return Num{}, errRange
	}
	return fromMagnitude(mag, neg)
}

// LowBits returns the low bits of the two's complement representation of the number.
func (n Num) LowBits() uint64 { return n.lo }

// HighBits returns the high bits of the two's complement representation of the number.
func (n Num) HighBits() int64 { return n.hi }

// Sign returns:
//
// -1 if x <  0
//
//	0 if x == 0
//
// +1 if x >  0
func (n Num) Sign() int {
	if n == (Num{}) {
		return 0
	}
	return int(1 | (n.hi >> 63))
}

// Negate returns -n, wrapping for the minimum value.
func (n Num) Negate() Num {
	n.lo = ^n.lo + 1
	n.hi = ^n.hi
	if n.lo == 0 {
		n.hi += 1
	}
	return n
}

// Abs returns |n|, wrapping for the minimum value.
func (n Num) Abs() Num {
	if n.Sign() < 0 {
		return n.Negate()
	}
	return n
}

func toBigInt(n Num) *big.Int {
	hi := big.NewInt(n.hi)
	return hi.Lsh(hi, 64).Add(hi, (&big.Int{}).SetUint64(n.lo))
}

func (n Num) BigInt() *big.Int {
	if n.Sign() < 0 {
		ret := toBigInt(n.Negate())
		return ret.Neg(ret)
	}
	return toBigInt(n)
}

// Cmp returns -1, 0 or +1 depending on whether n is less than, equal to
// or greater than other.
func (n Num) Cmp(other Num) int {
	switch {
	case n.hi < other.hi:
		return -1
	case n.hi > other.hi:
		return 1
	case n.lo < other.lo:
		return -1
	case n.lo > other.lo:
		return 1
	}
	return 0
}

func (n Num) Less(other Num) bool    { return n.Cmp(other) < 0 }
func (n Num) Greater(other Num) bool { return n.Cmp(other) > 0 }

// Add returns n + rhs, wrapping on overflow.
func (n Num) Add(rhs Num) Num {
	lo, carry := bits.Add64(n.lo, rhs.lo, 0)
	return Num{lo: lo, hi: n.hi + rhs.hi + int64(carry)}
}

// AddChecked returns n + rhs and whether the addition overflowed.
func (n Num) AddChecked(rhs Num) (Num, bool) {
	out := n.Add(rhs)
	return out, (n.hi < 0) == (rhs.hi < 0) && (out.hi < 0) != (n.hi < 0)
}

// Sub returns n - rhs, wrapping on overflow.
func (n Num) Sub(rhs Num) Num {
	lo, borrow := bits.Sub64(n.lo, rhs.lo, 0)
	return Num{lo: lo, hi: n.hi - rhs.hi - int64(borrow)}
}

// SubChecked returns n - rhs and whether the subtraction overflowed.
func (n Num) SubChecked(rhs Num) (Num, bool) {
	out := n.Sub(rhs)
	return out, (n.hi < 0) != (rhs.hi < 0) && (out.hi < 0) != (n.hi < 0)
}

// MulScaled multiplies two values sharing the given scale, producing a
// value with that same scale. The exact 256-bit product is divided by
// 10^scale and truncated toward zero. The second return reports whether
// the result did not fit in 128 bits, in which case the low bits are kept.
func (n Num) MulScaled(rhs Num, scale int32) (Num, bool) {
	neg := (n.Sign() < 0) != (rhs.Sign() < 0)
	prod := mul128(n.magnitude(), rhs.magnitude())
	if scale > 0 {
		prod, _ = prod.quoRem(pow10[scale])
	}
	return fromMagnitude256(prod, neg)
}

// QuoScaled divides two values sharing the given scale, producing a value
// with that same scale, truncated toward zero. rhs must not be zero.
func (n Num) QuoScaled(rhs Num, scale int32) (Num, bool) {
	neg := (n.Sign() < 0) != (rhs.Sign() < 0)
	num := mul128(n.magnitude(), pow10[scale])
	q, _ := num.quoRem(rhs.magnitude())
	return fromMagnitude256(q, neg)
}

// Rem returns the remainder of n / rhs truncated toward zero; the result
// has the sign of n. Scale does not affect the remainder of two values
// sharing a scale. rhs must not be zero.
func (n Num) Rem(rhs Num) Num {
	num := uint256{lo: n.magnitude()}
	_, r := num.quoRem(rhs.magnitude())
	out, _ := fromMagnitude(r, n.Sign() < 0)
	return out
}

// ToString formats n as a base-10 string with scale fractional digits.
func (n Num) ToString(scale int32) string {
	mag := n.magnitude()
	var digits [40]byte
	i := len(digits)
	for {
		var r uint64
		mag, r = mag.quoRem64(10)
		i--
		digits[i] = byte('0' + r)
		if mag.isZero() {
			break
		}
	}

	str := string(digits[i:])
	if scale > 0 {
		if pad := int(scale) + 1 - len(str); pad > 0 {
			str = strings.Repeat("0", pad) + str
		}
		str = str[:len(str)-int(scale)] + "." + str[len(str)-int(scale):]
	}
	if n.Sign() < 0 {
		return "-" + str
	}
	return str
}

// ToFloat64 returns n / 10^scale as a float64.
func (n Num) ToFloat64(scale int32) float64 {
	mag := n.magnitude()
	v := float64(mag.hi)*math.Exp2(64) + float64(mag.lo)
	v /= math.Pow10(int(scale))
	if n.Sign() < 0 {
		return -v
	}
	return v
}

func (n Num) magnitude() uint128 {
	a := n.Abs()
	return uint128{hi: uint64(a.hi), lo: a.lo}
}

func fromMagnitude(m uint128, neg bool) (Num, error) {
	if m.hi>>63 != 0 {
		return Num{}, errRange
	}
	n := Num{lo: m.lo, hi: int64(m.hi)}
	if neg {
		n = n.Negate()
	}
	return n, nil
}

func fromMagnitude256(m uint256, neg bool) (Num, bool) {
	overflow := !m.hi.isZero() || m.lo.hi>>63 != 0
	n := Num{lo: m.lo.lo, hi: int64(m.lo.hi)}
	if neg {
		n = n.Negate()
	}
	return n, overflow
}
