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

import "math/bits"

// uint128 and uint256 are unsigned magnitudes used to compute exact
// intermediate results without allocating.
type uint128 struct {
	hi, lo uint64
}

type uint256 struct {
	hi, lo uint128
}

// pow10[i] is 10^i for i in [0, 38].
var pow10 [39]uint128

func init() {
	pow10[0] = uint128{lo: 1}
	for i := 1; i < len(pow10); i++ {
		pow10[i], _ = pow10[i-1].mulAdd64(10, 0)
	}
}

func (u uint128) isZero() bool { return u.hi == 0 && u.lo == 0 }

func (u uint128) cmp(v uint128) int {
	switch {
	case u.hi < v.hi:
		return -1
	case u.hi > v.hi:
		return 1
	case u.lo < v.lo:
		return -1
	case u.lo > v.lo:
		return 1
	}
	return 0
}

func (u uint128) sub(v uint128) uint128 {
	lo, borrow := bits.Sub64(u.lo, v.lo, 0)
	hi, _ := bits.Sub64(u.hi, v.hi, borrow)
	return uint128{hi: hi, lo: lo}
}

// mulAdd64 returns u*m + a and whether the result exceeded 128 bits.
func (u uint128) mulAdd64(m, a uint64) (uint128, bool) {
	hiLo, lo := bits.Mul64(u.lo, m)
	hiHi, hi := bits.Mul64(u.hi, m)
	hi, c := bits.Add64(hi, hiLo, 0)
	lo, c2 := bits.Add64(lo, a, 0)
	hi, c3 := bits.Add64(hi, 0, c2)
	return uint128{hi: hi, lo: lo}, hiHi != 0 || c != 0 || c3 != 0
}

func (u uint128) quoRem64(d uint64) (uint128, uint64) {
	qhi, r := bits.Div64(0, u.hi, d)
	qlo, r := bits.Div64(r, u.lo, d)
	return uint128{hi: qhi, lo: qlo}, r
}

func (u uint128) bitLen() int {
	if u.hi != 0 {
		return 64 + bits.Len64(u.hi)
	}
	return bits.Len64(u.lo)
}

func mul128(a, b uint128) uint256 {
	h0, l0 := bits.Mul64(a.lo, b.lo)
	h1, l1 := bits.Mul64(a.lo, b.hi)
	h2, l2 := bits.Mul64(a.hi, b.lo)
	h3, l3 := bits.Mul64(a.hi, b.hi)

	r1, c1 := bits.Add64(h0, l1, 0)
	r1, c2 := bits.Add64(r1, l2, 0)
	r2, c3 := bits.Add64(h1, h2, 0)
	r2, c4 := bits.Add64(r2, l3, 0)
	r2, c5 := bits.Add64(r2, c1+c2, 0)
	r3 := h3 + c3 + c4 + c5

	return uint256{hi: uint128{hi: r3, lo: r2}, lo: uint128{hi: r1, lo: l0}}
}

func (u uint256) limb(i int) uint64 {
	switch i {
	case 3:
		return u.hi.hi
	case 2:
		return u.hi.lo
	case 1:
		return u.lo.hi
	}
	return u.lo.lo
}

func (u *uint256) setLimb(i int, v uint64) {
	switch i {
	case 3:
		u.hi.hi = v
	case 2:
		u.hi.lo = v
	case 1:
		u.lo.hi = v
	default:
		u.lo.lo = v
	}
}

func (u uint256) bit(i int) uint64 { return (u.limb(i/64) >> (i % 64)) & 1 }

func (u uint256) bitLen() int {
	if !u.hi.isZero() {
		return 128 + u.hi.bitLen()
	}
	return u.lo.bitLen()
}

// quoRem divides u by d, which must be non-zero.
func (u uint256) quoRem(d uint128) (q uint256, r uint128) {
	if d.hi == 0 {
		var rem uint64
		for i := 3; i >= 0; i-- {
			var qi uint64
			qi, rem = bits.Div64(rem, u.limb(i), d.lo)
			q.setLimb(i, qi)
		}
		return q, uint128{lo: rem}
	}

	// binary long division; r stays below d so a one bit carry out of the
	// shift is enough to track the 129th bit.
	for i := u.bitLen() - 1; i >= 0; i-- {
		carry := r.hi >> 63
		r = uint128{hi: r.hi<<1 | r.lo>>63, lo: r.lo<<1 | u.bit(i)}
		if carry != 0 || r.cmp(d) >= 0 {
			r = r.sub(d)
			q.setLimb(i/64, q.limb(i/64)|1<<(i%64))
		}
	}
	return q, r
}
