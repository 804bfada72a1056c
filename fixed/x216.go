package fixed

import (
	"github.com/holiman/uint256"
)

// SqrtFractionBits is the number of fractional bits in an X216 value.
const SqrtFractionBits = 216

// SqrtByteLen is the storage width of an X216: 216 bits exactly.
const SqrtByteLen = 27

// X216 is a signed fixed point with 216 fractional bits over an int256.
// Square-root prices and their inverses live here, strictly inside
// (0, 1) of the representable range.
type X216 uint256.Int

// Int exposes the underlying int256.
func (x *X216) Int() *uint256.Int {
	return (*uint256.Int)(x)
}

// Eq reports bit equality.
func (x *X216) Eq(y *X216) bool {
	return x.Int().Eq(y.Int())
}

var oneX216 = new(uint256.Int).Lsh(uint256.NewInt(1), SqrtFractionBits)

// OneX216 returns 1.0 in X216 units.
func OneX216() *uint256.Int {
	return oneX216.Clone()
}

// InUnitInterval reports whether x lies strictly inside (0, OneX216).
func (x *X216) InUnitInterval() bool {
	i := x.Int()

	return !i.IsZero() && i.Sign() > 0 && i.Lt(oneX216)
}

// X216FromBytes decodes the 27-byte big-endian encoding.
func X216FromBytes(b []byte) (*X216, error) {
	if len(b) != SqrtByteLen {
		return nil, Error.New("x216 wants %d bytes, got %d", SqrtByteLen, len(b))
	}

	return (*X216)(new(uint256.Int).SetBytes(b)), nil
}

// Put writes the 27-byte big-endian encoding. The receiver must lie in
// the unit interval so that the top 40 bits are zero.
func (x *X216) Put(dst []byte) error {
	if len(dst) != SqrtByteLen {
		return Error.New("x216 wants %d bytes, got %d", SqrtByteLen, len(dst))
	}
	if !x.InUnitInterval() {
		return Error.New("x216 outside unit interval: %s", x.Int())
	}

	b32 := x.Int().Bytes32()
	copy(dst, b32[32-SqrtByteLen:])

	return nil
}
