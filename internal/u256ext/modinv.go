// Package u256ext supplies the few fixed-width integer operations that
// github.com/holiman/uint256 lacks. It carries no field or group
// semantics so it stays reusable below the arithmetic layers.
package u256ext

import "github.com/holiman/uint256"

var one = uint256.NewInt(1)

// ModInverse returns the multiplicative inverse of a modulo m, computed
// with the binary extended Euclidean algorithm over fixed-width 256-bit
// values.
//
// Preconditions: m is odd and greater than 1, a is non-zero, and
// gcd(a, m) == 1. A zero operand or an even modulus panics; a shared
// factor between a and m is undetected and must be excluded by the
// caller.
func ModInverse(a, m *uint256.Int) *uint256.Int {
	if a.IsZero() {
		panic("u256ext: modular inverse of zero")
	}
	if m[0]&1 == 0 {
		panic("u256ext: modulus must be odd")
	}

	u := new(uint256.Int).Set(a)
	v := new(uint256.Int).Set(m)
	x1 := uint256.NewInt(1)
	x2 := uint256.NewInt(0)

	// Invariants: x1*a == u (mod m) and x2*a == v (mod m), with
	// x1, x2 kept in [0, m).
	for !u.Eq(one) && !v.Eq(one) {
		for u[0]&1 == 0 {
			u.Rsh(u, 1)
			halveMod(x1, m)
		}
		for v[0]&1 == 0 {
			v.Rsh(v, 1)
			halveMod(x2, m)
		}
		if u.Cmp(v) >= 0 {
			u.Sub(u, v)
			subMod(x1, x2, m)
		} else {
			v.Sub(v, u)
			subMod(x2, x1, m)
		}
	}
	if u.Eq(one) {
		return x1
	}
	return x2
}

// halveMod sets x to x/2 mod m for odd m. When x is odd, (x+m) is even
// and the halving identity (x+m)/2 applies; the carry lost by the
// 256-bit addition is restored into the top bit after the shift.
func halveMod(x, m *uint256.Int) {
	if x[0]&1 == 0 {
		x.Rsh(x, 1)
		return
	}
	_, carry := x.AddOverflow(x, m)
	x.Rsh(x, 1)
	if carry {
		x[3] |= 1 << 63
	}
}

// subMod sets x to x-y mod m, assuming x < m and y < m.
func subMod(x, y, m *uint256.Int) {
	if x.Cmp(y) >= 0 {
		x.Sub(x, y)
		return
	}
	// x-y+m, computed as (m-y)+x so no intermediate exceeds 256 bits.
	var t uint256.Int
	t.Sub(m, y)
	x.Add(x, &t)
}
