package fixed

import (
	"github.com/holiman/uint256"
)

// LogFractionBits is the number of fractional bits in an X59 value.
const LogFractionBits = 59

// OneX59 is 1.0 in X59 units.
const OneX59 X59 = 1 << LogFractionBits

// X59 is a signed fixed point log-price coordinate with 59 fractional
// bits, measured from the midpoint of the owning pool's price window.
//
// The window spans 32 natural units. Its interior, 0 < q < 32 counted
// from the window floor, holds exactly 2^64 - 1 coordinates: the full
// int64 range less MinInt64. Both window edges therefore fall on the
// int64 overflow points and are unrepresentable rather than checked.
type X59 int64

// Bits returns the stored unsigned coordinate: the displacement from the
// window floor rather than the midpoint. The two encodings differ only
// in the top bit.
func (x X59) Bits() uint64 {
	return uint64(x) ^ (1 << 63)
}

// X59FromBits is the inverse of Bits.
func X59FromBits(b uint64) X59 {
	return X59(b ^ (1 << 63))
}

// windowLimit is 2^63, half the window width in X59 units.
var windowLimit = new(uint256.Int).Lsh(uint256.NewInt(1), 63)

// NormalizeLog shifts a raw wire log price (int256 in X59 units) by the
// pool's log offset. ok is false when the result does not land strictly
// inside the pool's window.
func NormalizeLog(raw *uint256.Int, logOffset int8) (q X59, ok bool) {
	t := new(uint256.Int).Sub(raw, offsetShift(logOffset))

	if !fitsX59(t) {
		return 0, false
	}

	return X59(int64(t.Uint64())), true
}

// offsetShift returns logOffset * 2^59 as an int256.
func offsetShift(logOffset int8) *uint256.Int {
	mag := uint64(logOffset)
	if logOffset < 0 {
		mag = uint64(-int64(logOffset))
	}

	s := new(uint256.Int).Lsh(uint256.NewInt(mag), LogFractionBits)
	if logOffset < 0 {
		s.Neg(s)
	}

	return s
}

// fitsX59 reports whether the int256 t lies strictly inside (-2^63, 2^63).
func fitsX59(t *uint256.Int) bool {
	if t.Sign() >= 0 {
		return t.Lt(windowLimit)
	}

	return new(uint256.Int).Neg(t).Lt(windowLimit)
}
