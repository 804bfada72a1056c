package call

import (
	"encoding/binary"

	"github.com/calebcase/oops"
	"github.com/holiman/uint256"

	"github.com/tickwise/poolmem/fixed"
)

// Kind is the entry kind a block was decoded from.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInitialize
	KindModifyPosition
	KindDonate
	KindModifyKernel
	KindModifyPoolGrowthPortion
	KindUpdateGrowthPortions
	KindSwap
	KindCollect
)

var kindNames = map[Kind]string{
	KindInvalid:                 "invalid",
	KindInitialize:              "initialize",
	KindModifyPosition:          "modifyPosition",
	KindDonate:                  "donate",
	KindModifyKernel:            "modifyKernel",
	KindModifyPoolGrowthPortion: "modifyPoolGrowthPortion",
	KindUpdateGrowthPortions:    "updateGrowthPortions",
	KindSwap:                    "swap",
	KindCollect:                 "collect",
}

func (k Kind) String() string {
	return kindNames[k]
}

// span locates one field inside the block. off < 0 means the field is
// absent for the block's kind.
type span struct {
	off int
	len int
}

var absent = span{off: -1}

// Block is one decoded call: a bump-allocated arena holding the packed
// fields of the envelope plus resolved offsets into it. The caller owns
// the block, may reuse it across calls, and discards it when done; a
// failed decode leaves it reset.
type Block struct {
	kind Kind
	a    arena

	poolId    span
	tag0      span
	tag1      span
	growth    span
	qMin      span
	qMax      span
	shares    span
	amount    span
	qLimit    span
	cross     span
	direction span

	kernel  span
	compact span
	curve   span
	hook    span
}

// NewBlock returns an empty block ready for a decode.
func NewBlock() *Block {
	b := &Block{}
	b.Reset()

	return b
}

// Reset discards all decoded state. The arena's storage is retained for
// reuse.
func (b *Block) Reset() {
	b.kind = KindInvalid
	b.a.reset()

	b.poolId = absent
	b.tag0 = absent
	b.tag1 = absent
	b.growth = absent
	b.qMin = absent
	b.qMax = absent
	b.shares = absent
	b.amount = absent
	b.qLimit = absent
	b.cross = absent
	b.direction = absent

	b.kernel = absent
	b.compact = absent
	b.curve = absent
	b.hook = absent
}

// Kind returns the entry kind of the last successful decode.
func (b *Block) Kind() Kind {
	return b.kind
}

// Boundary returns the free-memory boundary: the address after the last
// byte written.
func (b *Block) Boundary() int {
	return b.a.boundary()
}

// Bytes returns the packed block.
func (b *Block) Bytes() []byte {
	return b.a.buf
}

// Regions returns the named spans written during the decode, in layout
// order.
func (b *Block) Regions() []Region {
	return b.a.regions
}

// Audit checks the layout invariant: the regions tile the block exactly,
// no gap, no overlap, boundary equal to the sum of the region sizes.
func (b *Block) Audit() error {
	return b.a.audit()
}

// HookInput returns the byte range forwarded to the hook callback: the
// block from the fixed marker at its base to the boundary, less the
// 32-byte pool-id word.
func (b *Block) HookInput() ([]byte, error) {
	if b.kind == KindInvalid || b.a.boundary() < 32 {
		return nil, oops.Trace(ErrInvalidOperation)
	}

	return b.a.buf[32:b.a.boundary()], nil
}

func (b *Block) word(s span) (*uint256.Int, error) {
	if s.off < 0 {
		return nil, oops.Trace(ErrInvalidOperation)
	}

	return new(uint256.Int).SetBytes(b.a.buf[s.off : s.off+32]), nil
}

func (b *Block) coordinate(s span) (fixed.X59, error) {
	if s.off < 0 {
		return 0, oops.Trace(ErrInvalidOperation)
	}

	return fixed.X59FromBits(binary.BigEndian.Uint64(b.a.buf[s.off:])), nil
}

func (b *Block) bytes(s span) ([]byte, error) {
	if s.off < 0 {
		return nil, oops.Trace(ErrInvalidOperation)
	}

	return b.a.buf[s.off : s.off+s.len], nil
}

// PoolId returns the pool identifier. For initialize this is the derived
// id, not the unsalted wire word.
func (b *Block) PoolId() (*uint256.Int, error) {
	return b.word(b.poolId)
}

// Tag0 returns the lower tag of an initialize call.
func (b *Block) Tag0() (*uint256.Int, error) {
	return b.word(b.tag0)
}

// Tag1 returns the upper tag of an initialize call.
func (b *Block) Tag1() (*uint256.Int, error) {
	return b.word(b.tag1)
}

// GrowthPortion returns the validated growth portion.
func (b *Block) GrowthPortion() (fixed.X47, error) {
	w, err := b.word(b.growth)
	if err != nil {
		return 0, err
	}

	return fixed.X47(w.Uint64()), nil
}

// LogPriceMin returns the normalized lower price bound.
func (b *Block) LogPriceMin() (fixed.X59, error) {
	return b.coordinate(b.qMin)
}

// LogPriceMax returns the normalized upper price bound.
func (b *Block) LogPriceMax() (fixed.X59, error) {
	return b.coordinate(b.qMax)
}

// Shares returns the signed share count as an int256.
func (b *Block) Shares() (*uint256.Int, error) {
	return b.word(b.shares)
}

// Amount returns the clamped, promoted swap amount.
func (b *Block) Amount() (*fixed.X127, error) {
	w, err := b.word(b.amount)
	if err != nil {
		return nil, err
	}

	return (*fixed.X127)(w), nil
}

// LogPriceLimit returns the normalized swap price limit.
func (b *Block) LogPriceLimit() (fixed.X59, error) {
	return b.coordinate(b.qLimit)
}

// CrossThreshold returns the clamped cross threshold.
func (b *Block) CrossThreshold() (*uint256.Int, error) {
	return b.word(b.cross)
}

// Direction returns the swap direction, clamped to {0, 1, 2}.
func (b *Block) Direction() (byte, error) {
	if b.direction.off < 0 {
		return 0, oops.Trace(ErrInvalidOperation)
	}

	return byte(binary.BigEndian.Uint64(b.a.buf[b.direction.off:])), nil
}

// Kernel returns the zero-filled expansion region reserved for the
// breakpoint table. For swap the region is the pointer only and the
// slice is empty.
func (b *Block) Kernel() ([]byte, error) {
	return b.bytes(b.kernel)
}

// KernelPointer returns the offset of the kernel region.
func (b *Block) KernelPointer() (int, error) {
	if b.kernel.off < 0 {
		return 0, oops.Trace(ErrInvalidOperation)
	}

	return b.kernel.off, nil
}

// KernelCompact returns the compact kernel payload copied verbatim from
// the input.
func (b *Block) KernelCompact() ([]byte, error) {
	return b.bytes(b.compact)
}

// Curve returns the curve payload copied verbatim from the input. For
// modifyPosition the slot is reserved and the slice is empty.
func (b *Block) Curve() ([]byte, error) {
	return b.bytes(b.curve)
}

// CurvePointer returns the offset of the curve region.
func (b *Block) CurvePointer() (int, error) {
	if b.curve.off < 0 {
		return 0, oops.Trace(ErrInvalidOperation)
	}

	return b.curve.off, nil
}

// HookData returns the opaque hook payload copied verbatim from the
// input.
func (b *Block) HookData() ([]byte, error) {
	return b.bytes(b.hook)
}

// putWord writes a 32-byte big-endian word region.
func (b *Block) putWord(name string, w *uint256.Int) span {
	off := b.a.alloc(name, 32)
	b32 := w.Bytes32()
	copy(b.a.buf[off:], b32[:])

	return span{off: off, len: 32}
}

// putU64 writes an 8-byte big-endian region.
func (b *Block) putU64(name string, v uint64) span {
	off := b.a.alloc(name, 8)
	binary.BigEndian.PutUint64(b.a.buf[off:], v)

	return span{off: off, len: 8}
}

// putBytes copies src verbatim into a fresh region.
func (b *Block) putBytes(name string, src []byte) span {
	return span{off: b.a.place(name, src), len: len(src)}
}
