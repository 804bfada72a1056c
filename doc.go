// Package poolmem provides binary memory-layout codecs for AMM pool
// operations.
//
// Two engines live here. The call package decodes an external,
// variable-shaped input buffer into a validated, densely packed call
// block with fully resolved internal pointers. The tick package packs
// and unpacks fixed-shape price records (height, log coordinate, square
// root price and its inverse) at arbitrary caller-supplied addresses.
//
// Both engines place heterogeneous, variable-length fields into raw
// linear memory by hand: offsets are computed before any bytes exist,
// every field is validated before it is trusted, and no write ever
// escapes its declared window.
//
// The fixed package holds the fixed-point numeric wrappers shared by
// both engines, and the valid package holds the shared range and
// ordering checks together with the clamp-versus-fail policy table.
package poolmem
