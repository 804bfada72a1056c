// Package valid holds the range and ordering checks shared by the call
// decoder and the tick codec, and the clamp-versus-fail policy table
// that says which wire fields saturate instead of rejecting.
package valid

import (
	"github.com/holiman/uint256"

	"github.com/tickwise/poolmem/fixed"
)

// Log offsets must lie strictly between these bounds.
const (
	MinLogOffset int8 = -90
	MaxLogOffset int8 = 90
)

// MaxHookDataLen is the largest hook payload forwarded to a callback.
const MaxHookDataLen = 65535

// MinCurveLen is the smallest legal curve payload in bytes.
const MinCurveLen = 32

// LogOffset checks that a pool's log offset lies strictly inside the
// legal range.
func LogOffset(logOffset int8) error {
	if logOffset <= MinLogOffset || logOffset >= MaxLogOffset {
		return &LogOffsetOutOfRangeError{LogOffset: logOffset}
	}

	return nil
}

// Tags checks that tag1 > tag0.
func Tags(tag0, tag1 *uint256.Int) error {
	if !tag1.Gt(tag0) {
		return &TagsOutOfOrderError{Tag0: tag0.Clone(), Tag1: tag1.Clone()}
	}

	return nil
}

// GrowthPortion converts a wire word to X47 and checks it against one.
func GrowthPortion(word *uint256.Int) (fixed.X47, error) {
	if !word.IsUint64() || fixed.X47(word.Uint64()) > fixed.OneX47 {
		return 0, &InvalidGrowthPortionError{GrowthPortion: word.Clone()}
	}

	return fixed.X47(word.Uint64()), nil
}

// Shares checks a signed share count: nonzero, inside the signed 128-bit
// range, and strictly positive when strict is set.
func Shares(word *uint256.Int, strict bool) error {
	if word.IsZero() || !fixed.FitsInt128(word) {
		return &InvalidNumberOfSharesError{Shares: word.Clone()}
	}
	if strict && word.Sign() < 0 {
		return &InvalidNumberOfSharesError{Shares: word.Clone()}
	}

	return nil
}

// LogPrice normalizes a raw wire log price by the pool's offset and
// checks the window.
func LogPrice(raw *uint256.Int, logOffset int8) (fixed.X59, error) {
	q, ok := fixed.NormalizeLog(raw, logOffset)
	if !ok {
		return 0, &LogPriceOutOfRangeError{LogPrice: raw.Clone()}
	}

	return q, nil
}

// HookDataLen checks a hook payload byte count.
func HookDataLen(n int) error {
	if n > MaxHookDataLen {
		return &HookDataTooLongError{Length: n}
	}

	return nil
}

// CurveLen checks a curve payload byte count.
func CurveLen(n int) error {
	if n < MinCurveLen {
		return &CurveLengthIsZeroError{Length: n}
	}

	return nil
}

// Height checks a record height against one.
func Height(h fixed.X15) error {
	if h > fixed.OneX15 {
		return Error.New("height above one: %d", h)
	}

	return nil
}

// SqrtPrice checks that a square-root price lies strictly inside the
// unit interval.
func SqrtPrice(x *fixed.X216) error {
	if !x.InUnitInterval() {
		return Error.New("sqrt price outside unit interval: %s", x.Int())
	}

	return nil
}
