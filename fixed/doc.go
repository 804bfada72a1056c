// Package fixed provides the fixed-width signed fixed-point wrappers
// shared by the call and tick codecs.
//
// Each type is a newtype over the smallest integer able to hold its
// width: X15 and X47 over native unsigned integers, X59 over int64, and
// X127 and X216 over uint256.Int with int256 two's-complement semantics.
// Scale is part of the type; arithmetic helpers preserve it, and any
// conversion that would leave a type's declared domain is reported by
// the caller as a hard failure rather than wrapped around. The only
// sanctioned lossy conversions are the explicit integer clamps used for
// swap amounts and cross thresholds.
package fixed
