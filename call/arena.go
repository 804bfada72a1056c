package call

// Region names one contiguous span of a call block.
type Region struct {
	Name string
	Off  int
	Len  int
}

// arena is a growable byte buffer with a monotonic cursor. Within one
// decode every offset moves forward and is never reused; the buffer is
// reset between independent calls.
type arena struct {
	buf     []byte
	regions []Region
}

// alloc extends the buffer by n zero bytes and returns the offset of the
// new region.
func (a *arena) alloc(name string, n int) int {
	off := len(a.buf)

	a.buf = append(a.buf, make([]byte, n)...)
	a.regions = append(a.regions, Region{Name: name, Off: off, Len: n})

	return off
}

// place copies src verbatim into a fresh region.
func (a *arena) place(name string, src []byte) int {
	off := a.alloc(name, len(src))
	copy(a.buf[off:], src)

	return off
}

// boundary is the address after the last byte written.
func (a *arena) boundary() int {
	return len(a.buf)
}

func (a *arena) reset() {
	a.buf = a.buf[:0]
	a.regions = a.regions[:0]
}

// audit checks that the regions tile the buffer exactly: no gap, no
// overlap, and a boundary equal to the sum of the region sizes.
func (a *arena) audit() error {
	next := 0

	for _, r := range a.regions {
		if r.Off != next {
			return Error.New(
				"region %q starts at %d, want %d",
				r.Name,
				r.Off,
				next,
			)
		}

		next = r.Off + r.Len
	}

	if next != len(a.buf) {
		return Error.New("boundary is %d, regions end at %d", len(a.buf), next)
	}

	return nil
}
