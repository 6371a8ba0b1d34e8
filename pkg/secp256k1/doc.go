// Package secp256k1 implements exact arithmetic over the secp256k1
// base field and the elliptic-curve group built on it: field residues
// modulo the 256-bit prime p with the usual field operators, and affine
// curve points with the group law, negation and scalar multiplication.
//
// The package is a primitive layer. It deliberately does not implement
// signing or verification, key derivation, randomness generation, or
// any wire or storage encoding; protocols are expected to build on the
// Zp and Point value types directly.
//
// Timing: field and scalar multiplication always execute exactly 256
// double-and-add iterations, but each iteration contains a conditional
// addition gated on a bit of the multiplier, so execution time depends
// on the operand. Nothing in this package is constant time. Do not use
// it where timing side channels matter.
package secp256k1
