package tick

import (
	"encoding/binary"

	"github.com/holiman/uint256"
	"github.com/zeebo/errs"

	"github.com/tickwise/poolmem/fixed"
	"github.com/tickwise/poolmem/valid"
)

var Error = errs.Class("tick")

// Field offsets relative to the record pointer P.
const (
	heightLen  = 2
	logLen     = 8
	sqrtOff    = logLen
	sqrtInvOff = logLen + fixed.SqrtByteLen

	// WindowLen is the full record width including the height prefix.
	WindowLen = heightLen + logLen + 2*fixed.SqrtByteLen

	// Stride separates the two records of a segment.
	Stride = 64
)

// Record is a view of one price record at pointer P inside caller-owned
// memory.
type Record struct {
	mem []byte
	p   int
}

// At returns a record view at pointer p. The window [p-2, p+62) must lie
// inside mem; p needs no particular alignment.
func At(mem []byte, p int) (Record, error) {
	if p < heightLen || p+WindowLen-heightLen > len(mem) {
		return Record{}, Error.New(
			"record window [%d, %d) outside memory of %d bytes",
			p-heightLen,
			p+WindowLen-heightLen,
			len(mem),
		)
	}

	return Record{mem: mem, p: p}, nil
}

// Pointer returns P.
func (r Record) Pointer() int {
	return r.p
}

// StoreLog writes the 8-byte log coordinate and nothing else. The square
// roots are derived externally through the exponential mapping and
// stored by the wider store calls.
func (r Record) StoreLog(q fixed.X59) {
	binary.BigEndian.PutUint64(r.mem[r.p:], q.Bits())
}

// Store writes the log coordinate and both square roots. Both roots must
// lie strictly inside the unit interval; nothing is written otherwise.
func (r Record) Store(q fixed.X59, sqrt, sqrtInv *fixed.X216) error {
	if err := valid.SqrtPrice(sqrt); err != nil {
		return err
	}
	if err := valid.SqrtPrice(sqrtInv); err != nil {
		return err
	}

	r.StoreLog(q)

	if err := sqrt.Put(r.sqrtField(false)); err != nil {
		return err
	}

	return sqrtInv.Put(r.sqrtField(true))
}

// StoreWithHeight writes the full record: height, log coordinate and
// both square roots. Nothing is written unless every field validates.
func (r Record) StoreWithHeight(h fixed.X15, q fixed.X59, sqrt, sqrtInv *fixed.X216) error {
	if err := valid.Height(h); err != nil {
		return err
	}
	if err := valid.SqrtPrice(sqrt); err != nil {
		return err
	}
	if err := valid.SqrtPrice(sqrtInv); err != nil {
		return err
	}

	binary.BigEndian.PutUint16(r.mem[r.p-heightLen:], uint16(h))

	return r.Store(q, sqrt, sqrtInv)
}

// CopyTo copies the log coordinate and both square roots to dst,
// producing byte-identical fields without touching bytes outside either
// window.
func (r Record) CopyTo(dst Record) {
	copy(dst.mem[dst.p:dst.p+WindowLen-heightLen], r.mem[r.p:r.p+WindowLen-heightLen])
}

// CopyToWithHeight also copies the 2-byte height prefix.
func (r Record) CopyToWithHeight(dst Record) {
	copy(
		dst.mem[dst.p-heightLen:dst.p+WindowLen-heightLen],
		r.mem[r.p-heightLen:r.p+WindowLen-heightLen],
	)
}

// Height reads the record height.
func (r Record) Height() fixed.X15 {
	return fixed.X15(binary.BigEndian.Uint16(r.mem[r.p-heightLen:]))
}

// Log reads the log coordinate.
func (r Record) Log() fixed.X59 {
	return fixed.X59FromBits(binary.BigEndian.Uint64(r.mem[r.p:]))
}

// Sqrt reads the square-root price, or its inverse when inverse is set.
func (r Record) Sqrt(inverse bool) *fixed.X216 {
	return (*fixed.X216)(new(uint256.Int).SetBytes(r.sqrtField(inverse)))
}

func (r Record) sqrtField(inverse bool) []byte {
	off := r.p + sqrtOff
	if inverse {
		off = r.p + sqrtInvOff
	}

	return r.mem[off : off+fixed.SqrtByteLen]
}

// Segment is the pair of records bounding one price range.
type Segment struct {
	Log0    fixed.X59
	Log1    fixed.X59
	Height0 fixed.X15
	Height1 fixed.X15
}

// Segment reads the records at P and P+Stride.
func (r Record) Segment() (Segment, error) {
	other, err := At(r.mem, r.p+Stride)
	if err != nil {
		return Segment{}, err
	}

	return Segment{
		Log0:    r.Log(),
		Log1:    other.Log(),
		Height0: r.Height(),
		Height1: other.Height(),
	}, nil
}
