package fixed

import "github.com/zeebo/errs"

var Error = errs.Class("fixed")
