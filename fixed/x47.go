package fixed

// X47 is an unsigned fixed point with 47 fractional bits. It represents
// ratios in [0, 1]: growth portions live in [0, OneX47].
type X47 uint64

// OneX47 is 1.0 in X47 units.
const OneX47 X47 = 1 << 47
