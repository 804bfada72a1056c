// Package tick packs and unpacks fixed-shape price records at arbitrary
// caller-supplied addresses.
//
// Record Layout
//
// A record lives relative to a pointer P inside memory owned by the
// caller. The codec allocates nothing and never writes outside the
// record window [P-2, P+62).
//
//  | P-2      | P            | P+8        | P+35         |
//  |----------|--------------|------------|--------------|
//  | height   | log price    | sqrt price | sqrt inverse |
//  | 2 bytes  | 8 bytes      | 27 bytes   | 27 bytes     |
//  | X15      | X59 (stored) | X216       | X216         |
//
// All fields are big endian and bit exact: a store followed by a read
// returns the original value for every value inside its domain, at any
// pointer alignment.
//
// A segment is the pair of records bounding one price range, 64 bytes
// apart; Segment reads both in one call.
package tick
