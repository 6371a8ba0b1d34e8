package secp256k1

import (
	"errors"

	"github.com/holiman/uint256"

	"github.com/Kixunil/toy-secp256k1/internal/u256ext"
)

// fieldPrime is the secp256k1 base field modulus p = 2^256 - 2^32 - 977.
var fieldPrime = uint256.MustFromHex("0xfffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")

// ErrFieldRange is returned by NewZp when the value is not already a
// canonical residue modulo the field prime.
var ErrFieldRange = errors.New("secp256k1: value is not a canonical field element")

// Zp is an element of Z_p, the prime field underlying secp256k1.
//
// It is an immutable value type: every operation returns a new element
// and the stored residue is always canonical (0 <= v < p). Because the
// representation is canonical and the type is comparable, == is
// structural equality and Zp values can be used as map keys. The zero
// value is the field's additive identity.
type Zp struct {
	v uint256.Int
}

// FieldPrime returns a copy of the field modulus p.
func FieldPrime() *uint256.Int {
	return new(uint256.Int).Set(fieldPrime)
}

// ReduceToZp reduces an arbitrary 256-bit value to its least
// non-negative residue modulo p. It always succeeds. Since p > 2^255, a
// single conditional subtraction is enough.
func ReduceToZp(v *uint256.Int) Zp {
	var z Zp
	z.v.Set(v)
	if z.v.Cmp(fieldPrime) >= 0 {
		z.v.Sub(&z.v, fieldPrime)
	}
	return z
}

// NewZp validates that v is already a canonical residue and wraps it.
// It returns ErrFieldRange for v >= p; it never reduces silently.
func NewZp(v *uint256.Int) (Zp, error) {
	if v.Cmp(fieldPrime) >= 0 {
		return Zp{}, ErrFieldRange
	}
	var z Zp
	z.v.Set(v)
	return z, nil
}

// ZpFromUint64 wraps a 64-bit value, which is always canonical.
func ZpFromUint64(v uint64) Zp {
	var z Zp
	z.v.SetUint64(v)
	return z
}

// IsZero reports whether z is the additive identity.
func (z Zp) IsZero() bool {
	return z.v.IsZero()
}

// Add returns z + o in the field.
//
// The raw 256-bit sum is corrected by a single subtraction of p when it
// overflows the integer width or lands at or above p; both operands
// being canonical guarantees one subtraction restores canonical form.
func (z Zp) Add(o Zp) Zp {
	var r Zp
	_, overflow := r.v.AddOverflow(&z.v, &o.v)
	if overflow || r.v.Cmp(fieldPrime) >= 0 {
		// Wrapping subtraction also repairs the overflowed case.
		r.v.Sub(&r.v, fieldPrime)
	}
	return r
}

// Sub returns z - o in the field, adding p back when the raw difference
// borrows.
func (z Zp) Sub(o Zp) Zp {
	var r Zp
	_, borrow := r.v.SubOverflow(&z.v, &o.v)
	if borrow || r.v.Cmp(fieldPrime) >= 0 {
		r.v.Add(&r.v, fieldPrime)
	}
	return r
}

// Neg returns the additive inverse: zero for zero, p - v otherwise.
func (z Zp) Neg() Zp {
	if z.IsZero() {
		return z
	}
	var r Zp
	r.v.Sub(fieldPrime, &z.v)
	return r
}

// MulUint256 returns z * k for an arbitrary 256-bit multiplier, using
// MSB-first double-and-add over exactly 256 bit positions.
//
// The loop length is fixed, but the conditional addition on each set
// bit makes the timing depend on the multiplier. See the package
// documentation.
func (z Zp) MulUint256(k *uint256.Int) Zp {
	var acc Zp
	bits := new(uint256.Int).Set(k)
	for i := 0; i < 256; i++ {
		acc = acc.Add(acc)
		if bits[3]&(1<<63) != 0 {
			acc = acc.Add(z)
		}
		bits.Lsh(bits, 1)
	}
	return acc
}

// Mul returns z * o in the field.
func (z Zp) Mul(o Zp) Zp {
	return z.MulUint256(&o.v)
}

// MulUint64 returns z * k for a 64-bit multiplier.
func (z Zp) MulUint64(k uint64) Zp {
	return z.MulUint256(uint256.NewInt(k))
}

// Inverse returns the multiplicative inverse of z modulo p, computed
// with the extended Euclidean algorithm.
//
// The zero element has no inverse; calling Inverse on it is a caller
// bug and panics.
func (z Zp) Inverse() Zp {
	if z.IsZero() {
		panic("secp256k1: multiplicative inverse of the zero field element")
	}
	var r Zp
	r.v.Set(u256ext.ModInverse(&z.v, fieldPrime))
	return r
}

// Div returns z / o, i.e. z multiplied by the inverse of o. Division by
// the zero element panics.
func (z Zp) Div(o Zp) Zp {
	if o.IsZero() {
		panic("secp256k1: field division by zero")
	}
	return z.Mul(o.Inverse())
}

// Equal reports whether z and o are the same field element.
func (z Zp) Equal(o Zp) bool {
	return z.v.Eq(&o.v)
}

// Cmp compares the canonical residues, returning -1, 0 or +1.
func (z Zp) Cmp(o Zp) int {
	return z.v.Cmp(&o.v)
}

// Uint256 returns a copy of the canonical residue.
func (z Zp) Uint256() *uint256.Int {
	return new(uint256.Int).Set(&z.v)
}

func (z Zp) String() string {
	return z.v.Hex()
}
