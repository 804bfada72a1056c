package valid

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/zeebo/errs"
)

var Error = errs.Class("valid")

// Every named validation failure carries the offending value so callers
// can report exactly what was rejected.

// PoolIdCannotBeZeroError rejects a derived pool id of zero.
type PoolIdCannotBeZeroError struct{}

func (e *PoolIdCannotBeZeroError) Error() string {
	return "pool id cannot be zero"
}

// PoolExistsError rejects initialization of an id that is already taken.
type PoolExistsError struct {
	PoolId *uint256.Int
}

func (e *PoolExistsError) Error() string {
	return fmt.Sprintf("pool exists: %s", e.PoolId)
}

// LogOffsetOutOfRangeError rejects a pool log offset on or outside the
// legal bounds.
type LogOffsetOutOfRangeError struct {
	LogOffset int8
}

func (e *LogOffsetOutOfRangeError) Error() string {
	return fmt.Sprintf("log offset out of range: %d", e.LogOffset)
}

// TagsOutOfOrderError rejects tag pairs that are not strictly ascending.
type TagsOutOfOrderError struct {
	Tag0 *uint256.Int
	Tag1 *uint256.Int
}

func (e *TagsOutOfOrderError) Error() string {
	return fmt.Sprintf("tags out of order: tag0=%s tag1=%s", e.Tag0, e.Tag1)
}

// InvalidGrowthPortionError rejects growth portions above one.
type InvalidGrowthPortionError struct {
	GrowthPortion *uint256.Int
}

func (e *InvalidGrowthPortionError) Error() string {
	return fmt.Sprintf("invalid growth portion: %s", e.GrowthPortion)
}

// LogPriceOutOfRangeError rejects log prices whose normalized coordinate
// does not land strictly inside the pool's window.
type LogPriceOutOfRangeError struct {
	LogPrice *uint256.Int
}

func (e *LogPriceOutOfRangeError) Error() string {
	return fmt.Sprintf("log price out of range: %s", e.LogPrice)
}

// InvalidNumberOfSharesError rejects share counts that are zero, carry
// the wrong sign, or exceed the signed 128-bit range.
type InvalidNumberOfSharesError struct {
	Shares *uint256.Int
}

func (e *InvalidNumberOfSharesError) Error() string {
	return fmt.Sprintf("invalid number of shares: %s", e.Shares)
}

// CurveLengthIsZeroError rejects curve payloads below the minimum legal
// length.
type CurveLengthIsZeroError struct {
	Length int
}

func (e *CurveLengthIsZeroError) Error() string {
	return fmt.Sprintf("curve length below minimum: %d bytes", e.Length)
}

// HookDataTooLongError rejects oversized hook payloads.
type HookDataTooLongError struct {
	Length int
}

func (e *HookDataTooLongError) Error() string {
	return fmt.Sprintf("hook data too long: %d bytes", e.Length)
}
