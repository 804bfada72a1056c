package fixed

// X15 is an unsigned fixed point with 15 fractional bits. It represents
// fractions of one: liquidity heights live in [0, OneX15].
type X15 uint16

// OneX15 is 1.0 in X15 units.
const OneX15 X15 = 1 << 15
