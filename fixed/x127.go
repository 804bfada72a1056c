package fixed

import (
	"github.com/holiman/uint256"
)

// AmountFractionBits is the number of fractional bits in an X127 value.
const AmountFractionBits = 127

// X127 is a signed fixed point with 127 fractional bits over an int256.
// Scaled amounts live here: integer amounts are promoted by clamping to
// the signed 128-bit range and multiplying by 2^127.
type X127 uint256.Int

// Int exposes the underlying int256.
func (x *X127) Int() *uint256.Int {
	return (*uint256.Int)(x)
}

// Bytes32 returns the 32-byte big-endian two's-complement encoding.
func (x *X127) Bytes32() [32]byte {
	return x.Int().Bytes32()
}

// Eq reports bit equality.
func (x *X127) Eq(y *X127) bool {
	return x.Int().Eq(y.Int())
}

// maxInteger is 2^127 - 1, the largest integer magnitude an X127 carries.
var maxInteger = new(uint256.Int).SubUint64(
	new(uint256.Int).Lsh(uint256.NewInt(1), 127),
	1,
)

// MaxInteger returns 2^127 - 1.
func MaxInteger() *uint256.Int {
	return maxInteger.Clone()
}

// ClampInteger clamps an unsigned wire magnitude to 2^127 - 1. This is
// one of the two sanctioned clamps; it never fails.
func ClampInteger(v *uint256.Int) *uint256.Int {
	if v.Gt(maxInteger) {
		return maxInteger.Clone()
	}

	return v.Clone()
}

// X127FromInteger promotes an unsigned wire magnitude to X127: the value
// is clamped to 2^127 - 1 and multiplied by 2^127.
func X127FromInteger(v *uint256.Int) *X127 {
	c := ClampInteger(v)

	return (*X127)(c.Lsh(c, AmountFractionBits))
}

// FitsInt128 reports whether the int256 v lies within the signed 128-bit
// range, |v| <= 2^127 - 1.
func FitsInt128(v *uint256.Int) bool {
	if v.Sign() >= 0 {
		return !v.Gt(maxInteger)
	}

	return !new(uint256.Int).Neg(v).Gt(maxInteger)
}
