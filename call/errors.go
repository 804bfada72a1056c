package call

import "github.com/zeebo/errs"

var Error = errs.Class("call")

// ErrInvalidOperation is returned by block accessors asked for a field
// the block's kind does not carry.
var ErrInvalidOperation = Error.New("invalid operation")
