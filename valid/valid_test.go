package valid

import (
	"errors"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/tickwise/poolmem/fixed"
)

func TestLogOffset(t *testing.T) {
	require.NoError(t, LogOffset(0))
	require.NoError(t, LogOffset(89))
	require.NoError(t, LogOffset(-89))

	for _, off := range []int8{MinLogOffset, MaxLogOffset, 127, -128} {
		err := LogOffset(off)

		var e *LogOffsetOutOfRangeError
		require.ErrorAs(t, err, &e)
		require.Equal(t, off, e.LogOffset)
	}
}

func TestTags(t *testing.T) {
	require.NoError(t, Tags(uint256.NewInt(0), uint256.NewInt(1)))

	err := Tags(uint256.NewInt(5), uint256.NewInt(5))
	var e *TagsOutOfOrderError
	require.ErrorAs(t, err, &e)
	require.Equal(t, uint64(5), e.Tag1.Uint64())

	err = Tags(uint256.NewInt(6), uint256.NewInt(5))
	require.ErrorAs(t, err, &e)
}

func TestGrowthPortion(t *testing.T) {
	p, err := GrowthPortion(uint256.NewInt(0))
	require.NoError(t, err)
	require.Equal(t, fixed.X47(0), p)

	p, err = GrowthPortion(uint256.NewInt(uint64(fixed.OneX47)))
	require.NoError(t, err)
	require.Equal(t, fixed.OneX47, p)

	var e *InvalidGrowthPortionError

	_, err = GrowthPortion(uint256.NewInt(uint64(fixed.OneX47) + 1))
	require.ErrorAs(t, err, &e)

	// Above the uint64 range entirely.
	_, err = GrowthPortion(new(uint256.Int).Lsh(uint256.NewInt(1), 64))
	require.ErrorAs(t, err, &e)
}

func TestShares(t *testing.T) {
	one := uint256.NewInt(1)
	minusOne := new(uint256.Int).Neg(one)

	require.NoError(t, Shares(one, false))
	require.NoError(t, Shares(minusOne, false))
	require.NoError(t, Shares(fixed.MaxInteger(), false))
	require.NoError(t, Shares(one, true))

	var e *InvalidNumberOfSharesError

	require.ErrorAs(t, Shares(uint256.NewInt(0), false), &e)
	require.ErrorAs(t, Shares(minusOne, true), &e)
	require.ErrorAs(
		t,
		Shares(new(uint256.Int).Lsh(one, 127), false),
		&e,
	)
}

func TestLogPrice(t *testing.T) {
	q, err := LogPrice(uint256.NewInt(0), 0)
	require.NoError(t, err)
	require.Equal(t, fixed.X59(0), q)

	floor := new(uint256.Int).Neg(new(uint256.Int).Lsh(uint256.NewInt(1), 63))

	_, err = LogPrice(floor, 0)
	var e *LogPriceOutOfRangeError
	require.ErrorAs(t, err, &e)
	require.True(t, floor.Eq(e.LogPrice))
}

func TestLengths(t *testing.T) {
	require.NoError(t, HookDataLen(0))
	require.NoError(t, HookDataLen(MaxHookDataLen))

	var hook *HookDataTooLongError
	require.ErrorAs(t, HookDataLen(MaxHookDataLen+1), &hook)
	require.Equal(t, MaxHookDataLen+1, hook.Length)

	require.NoError(t, CurveLen(MinCurveLen))

	var curve *CurveLengthIsZeroError
	require.ErrorAs(t, CurveLen(MinCurveLen-1), &curve)
	require.Equal(t, MinCurveLen-1, curve.Length)
	require.Equal(t, "curve length below minimum: 31 bytes", curve.Error())

	require.ErrorAs(t, CurveLen(0), &curve)
	require.Equal(t, 0, curve.Length)
}

func TestHeightAndSqrt(t *testing.T) {
	require.NoError(t, Height(0))
	require.NoError(t, Height(fixed.OneX15))
	require.Error(t, Height(fixed.OneX15+1))

	inside := (*fixed.X216)(uint256.NewInt(1))
	require.NoError(t, SqrtPrice(inside))

	boundary := (*fixed.X216)(fixed.OneX216())
	err := SqrtPrice(boundary)
	require.Error(t, err)
	require.True(t, Error.Has(err))
}

func TestPolicyTable(t *testing.T) {
	clamped := []Field{FieldAmountSpecified, FieldCrossThreshold, FieldDirection}
	for _, f := range clamped {
		require.Equal(t, Clamp, PolicyFor(f))
	}

	failing := []Field{
		FieldPoolId,
		FieldLogOffset,
		FieldTags,
		FieldGrowthPortion,
		FieldLogPrice,
		FieldShares,
		FieldCurve,
		FieldHookData,
		FieldHeight,
		FieldSqrtPrice,
	}
	for _, f := range failing {
		require.Equal(t, Fail, PolicyFor(f))
	}
}

func TestFailuresAreErrors(t *testing.T) {
	// Typed failures must survive wrapping.
	err := Error.Wrap(&PoolExistsError{PoolId: uint256.NewInt(9)})

	var e *PoolExistsError
	require.True(t, errors.As(err, &e))
	require.Equal(t, uint64(9), e.PoolId.Uint64())
}
