package call

import (
	"github.com/holiman/uint256"

	"github.com/tickwise/poolmem/fixed"
	"github.com/tickwise/poolmem/valid"
)

// Header sizes in bytes. Region pointers are relative to these.
const (
	headerInitialize              = 7 * 32
	headerModifyPosition          = 5 * 32
	headerDonate                  = 3 * 32
	headerModifyKernel            = 3 * 32
	headerModifyPoolGrowthPortion = 2 * 32
	headerUpdateGrowthPortions    = 1 * 32
	headerSwap                    = 6 * 32
	headerCollect                 = 1 * 32
)

// swapScalarEnd is the largest scalar marker used by swap. Collect sizes
// its block to this boundary so downstream consumers can treat it as an
// upper bound for every header-only kind.
const swapScalarEnd = 112

// Decoder turns raw call buffers into packed blocks. It holds no
// per-call state: each decode writes into a caller-owned block. The zero
// value decodes with an identity pool-id derivation and no known pools.
type Decoder struct {
	// Derive maps an unsalted pool id to the id under which the pool is
	// created. nil means identity.
	Derive func(unsalted *uint256.Int) *uint256.Int

	// Exists reports whether a pool already occupies an id. nil means
	// no pool does.
	Exists func(poolId *uint256.Int) bool
}

// NewDecoder returns a decoder with the default collaborators.
func NewDecoder() *Decoder {
	return &Decoder{}
}

func (d *Decoder) derivePoolId(unsalted *uint256.Int) *uint256.Int {
	if d.Derive == nil {
		return unsalted.Clone()
	}

	return d.Derive(unsalted)
}

// LogOffsetFromPoolId extracts the pool's log offset: the signed byte in
// id bits 180..187.
func LogOffsetFromPoolId(id *uint256.Int) int8 {
	return int8(new(uint256.Int).Rsh(id, 180).Uint64())
}

// kernelBytes returns the size of the expansion region reserved for a
// compact kernel payload: 32*floor(4*W/5) bytes, W the count of 32-byte
// words the payload occupies. The formula overestimates for some sizes;
// the expanded layout is a contract with the pool logic and must not be
// tightened.
func kernelBytes(compactLen int) int {
	w := (compactLen + 31) / 32

	return 32 * (4 * w / 5)
}

// abort resets the block when the decode failed, so no partial writes
// are visible.
func abort(b *Block, err *error) {
	if *err != nil {
		b.Reset()
	}
}

// Initialize decodes an initialize call into b.
func (d *Decoder) Initialize(b *Block, buf []byte) (err error) {
	defer Error.WrapP(&err)
	defer abort(b, &err)

	b.Reset()

	in, err := newInput(buf, headerInitialize)
	if err != nil {
		return err
	}

	poolId := d.derivePoolId(in.word(0))
	if poolId.IsZero() {
		return &valid.PoolIdCannotBeZeroError{}
	}
	if d.Exists != nil && d.Exists(poolId) {
		return &valid.PoolExistsError{PoolId: poolId}
	}

	if err := valid.LogOffset(LogOffsetFromPoolId(poolId)); err != nil {
		return err
	}

	tag0, tag1 := in.word(1), in.word(2)
	if err := valid.Tags(tag0, tag1); err != nil {
		return err
	}

	growth, err := valid.GrowthPortion(in.word(3))
	if err != nil {
		return err
	}

	compact, err := in.region(4)
	if err != nil {
		return err
	}

	curve, err := in.region(5)
	if err != nil {
		return err
	}
	if err := valid.CurveLen(len(curve)); err != nil {
		return err
	}

	hook, err := in.region(6)
	if err != nil {
		return err
	}
	if err := valid.HookDataLen(len(hook)); err != nil {
		return err
	}

	b.kind = KindInitialize
	b.poolId = b.putWord("poolId", poolId)
	b.tag0 = b.putWord("tag0", tag0)
	b.tag1 = b.putWord("tag1", tag1)
	b.growth = b.putWord("growthPortion", uint256.NewInt(uint64(growth)))

	n := kernelBytes(len(compact))
	b.kernel = span{off: b.a.alloc("kernel", n), len: n}
	b.compact = b.putBytes("kernelCompact", compact)
	b.curve = b.putBytes("curve", curve)
	b.a.alloc("separator", 8)
	b.hook = b.putBytes("hookData", hook)

	return nil
}

// ModifyPosition decodes a modifyPosition call into b.
func (d *Decoder) ModifyPosition(b *Block, buf []byte) (err error) {
	defer Error.WrapP(&err)
	defer abort(b, &err)

	b.Reset()

	in, err := newInput(buf, headerModifyPosition)
	if err != nil {
		return err
	}

	poolId := in.word(0)
	logOffset := LogOffsetFromPoolId(poolId)

	qMin, err := valid.LogPrice(in.word(1), logOffset)
	if err != nil {
		return err
	}

	qMax, err := valid.LogPrice(in.word(2), logOffset)
	if err != nil {
		return err
	}

	shares := in.word(3)
	if err := valid.Shares(shares, false); err != nil {
		return err
	}

	hook, err := in.region(4)
	if err != nil {
		return err
	}
	if err := valid.HookDataLen(len(hook)); err != nil {
		return err
	}

	b.kind = KindModifyPosition
	b.poolId = b.putWord("poolId", poolId)
	b.qMin = b.putU64("logPriceMin", qMin.Bits())
	b.qMax = b.putU64("logPriceMax", qMax.Bits())
	b.shares = b.putWord("shares", shares)

	// The curve slot is reserved for the pool logic but never written:
	// hook data follows directly.
	b.curve = span{off: b.a.alloc("curve", 0), len: 0}
	b.hook = b.putBytes("hookData", hook)

	return nil
}

// Donate decodes a donate call into b.
func (d *Decoder) Donate(b *Block, buf []byte) (err error) {
	defer Error.WrapP(&err)
	defer abort(b, &err)

	b.Reset()

	in, err := newInput(buf, headerDonate)
	if err != nil {
		return err
	}

	poolId := in.word(0)

	shares := in.word(1)
	if err := valid.Shares(shares, true); err != nil {
		return err
	}

	hook, err := in.region(2)
	if err != nil {
		return err
	}
	if err := valid.HookDataLen(len(hook)); err != nil {
		return err
	}

	b.kind = KindDonate
	b.poolId = b.putWord("poolId", poolId)
	b.shares = b.putWord("shares", shares)
	b.hook = b.putBytes("hookData", hook)

	return nil
}

// ModifyKernel decodes a modifyKernel call into b.
func (d *Decoder) ModifyKernel(b *Block, buf []byte) (err error) {
	defer Error.WrapP(&err)
	defer abort(b, &err)

	b.Reset()

	in, err := newInput(buf, headerModifyKernel)
	if err != nil {
		return err
	}

	poolId := in.word(0)

	compact, err := in.region(1)
	if err != nil {
		return err
	}

	hook, err := in.region(2)
	if err != nil {
		return err
	}
	if err := valid.HookDataLen(len(hook)); err != nil {
		return err
	}

	b.kind = KindModifyKernel
	b.poolId = b.putWord("poolId", poolId)

	n := kernelBytes(len(compact))
	b.kernel = span{off: b.a.alloc("kernel", n), len: n}
	b.compact = b.putBytes("kernelCompact", compact)
	b.hook = b.putBytes("hookData", hook)

	return nil
}

// ModifyPoolGrowthPortion decodes a modifyPoolGrowthPortion call into b.
func (d *Decoder) ModifyPoolGrowthPortion(b *Block, buf []byte) (err error) {
	defer Error.WrapP(&err)
	defer abort(b, &err)

	b.Reset()

	in, err := newInput(buf, headerModifyPoolGrowthPortion)
	if err != nil {
		return err
	}

	poolId := in.word(0)

	growth, err := valid.GrowthPortion(in.word(1))
	if err != nil {
		return err
	}

	b.kind = KindModifyPoolGrowthPortion
	b.poolId = b.putWord("poolId", poolId)
	b.growth = b.putWord("growthPortion", uint256.NewInt(uint64(growth)))

	return nil
}

// UpdateGrowthPortions decodes an updateGrowthPortions call into b.
func (d *Decoder) UpdateGrowthPortions(b *Block, buf []byte) (err error) {
	defer Error.WrapP(&err)
	defer abort(b, &err)

	b.Reset()

	in, err := newInput(buf, headerUpdateGrowthPortions)
	if err != nil {
		return err
	}

	b.kind = KindUpdateGrowthPortions
	b.poolId = b.putWord("poolId", in.word(0))

	return nil
}

// Swap decodes a swap call into b.
func (d *Decoder) Swap(b *Block, buf []byte) (err error) {
	defer Error.WrapP(&err)
	defer abort(b, &err)

	b.Reset()

	in, err := newInput(buf, headerSwap)
	if err != nil {
		return err
	}

	poolId := in.word(0)
	logOffset := LogOffsetFromPoolId(poolId)

	amountWord := in.word(1)
	var amount *fixed.X127
	if valid.PolicyFor(valid.FieldAmountSpecified) == valid.Clamp {
		amount = fixed.X127FromInteger(amountWord)
	} else {
		if !fixed.FitsInt128(amountWord) {
			return Error.New("amount out of range: %s", amountWord)
		}

		amount = (*fixed.X127)(new(uint256.Int).Lsh(
			amountWord,
			fixed.AmountFractionBits,
		))
	}

	qLimit, err := valid.LogPrice(in.word(2), logOffset)
	if err != nil {
		return err
	}

	crossWord := in.word(3)
	cross := crossWord.Clone()
	if valid.PolicyFor(valid.FieldCrossThreshold) == valid.Clamp {
		cross = fixed.ClampInteger(crossWord)
	}

	direction := directionOf(in.word(4))

	hook, err := in.region(5)
	if err != nil {
		return err
	}
	if err := valid.HookDataLen(len(hook)); err != nil {
		return err
	}

	b.kind = KindSwap
	b.poolId = b.putWord("poolId", poolId)
	b.amount = b.putWord("amountSpecified", amount.Int())
	b.qLimit = b.putU64("logPriceLimit", qLimit.Bits())
	b.cross = b.putWord("crossThreshold", cross)
	b.direction = b.putU64("direction", direction)
	b.hook = b.putBytes("hookData", hook)

	// The kernel pointer lands on the end of the hook data; nothing is
	// written there.
	b.kernel = span{off: b.a.alloc("kernel", 0), len: 0}

	return nil
}

// directionOf clamps a direction word to {0, 1, 2}.
func directionOf(w *uint256.Int) uint64 {
	if valid.PolicyFor(valid.FieldDirection) == valid.Clamp {
		if !w.IsUint64() || w.Uint64() > 2 {
			return 2
		}
	}

	return w.Uint64()
}

// Collect decodes a collect call into b.
func (d *Decoder) Collect(b *Block, buf []byte) (err error) {
	defer Error.WrapP(&err)
	defer abort(b, &err)

	b.Reset()

	in, err := newInput(buf, headerCollect)
	if err != nil {
		return err
	}

	b.kind = KindCollect
	b.poolId = b.putWord("poolId", in.word(0))

	// Conservative sizing: the boundary matches the largest marker any
	// header-only consumer may probe.
	b.a.alloc("reserved", swapScalarEnd-32)

	return nil
}
