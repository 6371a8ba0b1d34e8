package secp256k1

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"

	"github.com/Kixunil/toy-secp256k1/internal/u256ext"
)

// groupOrder is the order n of the cyclic group generated by G. It is a
// different modulus than the field prime: scalars live modulo n,
// coordinates modulo p.
var groupOrder = uint256.MustFromHex("0xfffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")

// ErrNotOnCurve is returned by NewPoint when the coordinates do not
// satisfy the curve equation.
var ErrNotOnCurve = errors.New("secp256k1: coordinates do not satisfy the curve equation")

// B is the constant term of the curve equation y^2 = x^3 + 7.
var B = ZpFromUint64(7)

// G is the secp256k1 generator point.
var G = Point{
	x: Zp{v: *uint256.MustFromHex("0x79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")},
	y: Zp{v: *uint256.MustFromHex("0x483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")},
}

// Infinity is the group identity, the point at infinity.
var Infinity = Point{}

// Point is an element of the secp256k1 group: either the point at
// infinity or an affine coordinate pair on the curve y^2 = x^3 + 7.
//
// The coordinate pair (0, 0) encodes the point at infinity. It does not
// itself satisfy the curve equation, so the sentinel is unambiguous,
// and it makes the zero value of Point the group identity. Point is an
// immutable, comparable value type; == is group-element equality.
type Point struct {
	x, y Zp
}

// GroupOrder returns a copy of the group order n.
func GroupOrder() *uint256.Int {
	return new(uint256.Int).Set(groupOrder)
}

// NewPoint validates (x, y) and returns the corresponding group
// element. The (0, 0) sentinel is accepted unconditionally as the point
// at infinity; any other pair must satisfy the curve equation, or
// ErrNotOnCurve is returned.
func NewPoint(x, y Zp) (Point, error) {
	if x.IsZero() && y.IsZero() {
		return Infinity, nil
	}
	rhs := x.Mul(x).Mul(x).Add(B)
	if !y.Mul(y).Equal(rhs) {
		return Point{}, ErrNotOnCurve
	}
	return Point{x: x, y: y}, nil
}

// X returns the affine x coordinate (zero for the point at infinity).
func (p Point) X() Zp { return p.x }

// Y returns the affine y coordinate (zero for the point at infinity).
func (p Point) Y() Zp { return p.y }

// IsAtInfinity reports whether p is the group identity.
func (p Point) IsAtInfinity() bool {
	return p.x.IsZero() && p.y.IsZero()
}

// Add returns p + q under the short-Weierstrass group law.
//
// The identity cases and the inverse-pair case are handled first, so
// the slope denominators below are never zero for valid points: no
// point on this curve has y = 0, and distinct non-inverse points have
// distinct x coordinates.
func (p Point) Add(q Point) Point {
	if p.IsAtInfinity() {
		return q
	}
	if q.IsAtInfinity() {
		return p
	}
	if p == q.Neg() {
		return Infinity
	}

	var lambda Zp
	if p == q {
		// Tangent slope 3x^2 / 2y; the curve's linear coefficient
		// A is zero so there is no extra term.
		lambda = p.x.Mul(p.x).MulUint64(3).Div(p.y.MulUint64(2))
	} else {
		lambda = q.y.Sub(p.y).Div(q.x.Sub(p.x))
	}

	x := lambda.Mul(lambda).Sub(p.x).Sub(q.x)
	y := lambda.Mul(p.x.Sub(x)).Sub(p.y)
	return Point{x: x, y: y}
}

// Neg returns the additive inverse (x, -y). The identity negates to
// itself since its y coordinate is already zero.
func (p Point) Neg() Point {
	return Point{x: p.x, y: p.y.Neg()}
}

// ScalarMult returns p added to itself k times, using MSB-first
// double-and-add over exactly 256 bit positions.
//
// The loop length is fixed but each iteration branches on a scalar bit,
// so this is NOT constant time. See the package documentation.
func (p Point) ScalarMult(k *uint256.Int) Point {
	res := Infinity
	bits := new(uint256.Int).Set(k)
	for i := 0; i < 256; i++ {
		res = res.Add(res)
		if bits[3]&(1<<63) != 0 {
			res = res.Add(p)
		}
		bits.Lsh(bits, 1)
	}
	return res
}

// ScalarMultUint64 returns p multiplied by a 64-bit scalar.
func (p Point) ScalarMultUint64(k uint64) Point {
	return p.ScalarMult(uint256.NewInt(k))
}

// ScalarInverse returns the inverse of the scalar k modulo the group
// order n, so that (P·k)·ScalarInverse(k) == P for any point P and any
// k coprime to n. Note the modulus: scalars are inverted mod n, not mod
// the field prime.
//
// The zero scalar has no inverse; any k that is a multiple of n,
// including zero itself, panics.
func ScalarInverse(k *uint256.Int) *uint256.Int {
	// Scalars are elements of Z_n. Reduce before the zero check so
	// every zero-equivalent scalar is caught; n itself is far enough
	// below 2^256 that a conditional subtract would not be enough.
	r := new(uint256.Int).Mod(k, groupOrder)
	if r.IsZero() {
		panic("secp256k1: scalar inverse of zero")
	}
	return u256ext.ModInverse(r, groupOrder)
}

// Equal reports whether p and q are the same group element.
func (p Point) Equal(q Point) bool {
	return p == q
}

// Cmp orders points lexicographically by x then y coordinate. The point
// at infinity sorts first.
func (p Point) Cmp(q Point) int {
	if c := p.x.Cmp(q.x); c != 0 {
		return c
	}
	return p.y.Cmp(q.y)
}

func (p Point) String() string {
	if p.IsAtInfinity() {
		return "(infinity)"
	}
	return fmt.Sprintf("(%s, %s)", p.x, p.y)
}
