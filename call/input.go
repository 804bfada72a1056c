package call

import (
	"github.com/holiman/uint256"
)

// input is a framing reader over one raw call buffer.
type input struct {
	buf  []byte
	base int
}

// newInput checks that the fixed header is fully present. base, the
// header size, is also the base every region pointer is relative to.
func newInput(buf []byte, base int) (*input, error) {
	if len(buf) < base {
		return nil, Error.New(
			"input too short: %d bytes, header wants %d",
			len(buf),
			base,
		)
	}

	return &input{buf: buf, base: base}, nil
}

// word returns header word i.
func (in *input) word(i int) *uint256.Int {
	return new(uint256.Int).SetBytes(in.buf[32*i : 32*i+32])
}

// region resolves the pointer in header word i to a length-prefixed
// dynamic region and returns the content bytes, length prefix excluded.
func (in *input) region(i int) ([]byte, error) {
	ptr := in.word(i)
	if !ptr.IsUint64() || ptr.Uint64() > uint64(len(in.buf)) {
		return nil, Error.New("region %d: pointer out of bounds: %s", i, ptr)
	}

	start := in.base + int(ptr.Uint64())
	if start+32 > len(in.buf) {
		return nil, Error.New(
			"region %d: length prefix out of bounds at %d",
			i,
			start,
		)
	}

	size := new(uint256.Int).SetBytes(in.buf[start : start+32])
	if !size.IsUint64() || size.Uint64() > uint64(len(in.buf)-start-32) {
		return nil, Error.New("region %d: length out of bounds: %s", i, size)
	}

	n := int(size.Uint64())

	return in.buf[start+32 : start+32+n], nil
}
