// Package call decodes external pool-operation input buffers into packed
// call blocks.
//
// Wire Format
//
// Every entry kind begins with a fixed header of 32-byte big-endian
// words. Dynamic regions follow, each addressed by a pointer word in the
// header: the pointer value plus the header size gives the absolute
// start of a length-prefixed region whose first 32 bytes hold the byte
// length of the content that follows.
//
//  | Kind                    | Header words                                  | Regions                    |
//  |-------------------------|-----------------------------------------------|----------------------------|
//  | initialize              | unsaltedPoolId tag0 tag1 growthPortion p p p  | kernelCompact curve hook   |
//  | modifyPosition          | poolId logPriceMin logPriceMax shares p       | hook                       |
//  | donate                  | poolId shares p                               | hook                       |
//  | modifyKernel            | poolId p p                                    | kernelCompact hook         |
//  | modifyPoolGrowthPortion | poolId growthPortion                          |                            |
//  | updateGrowthPortions    | poolId                                        |                            |
//  | swap                    | poolId amount logPriceLimit cross direction p | hook                       |
//  | collect                 | poolId                                        |                            |
//
// Call Block
//
// A decode materializes a packed block in a bump-allocated arena: scalar
// fields first, then the dynamic regions in a fixed order, with no gap
// and no overlap. Every written byte is either copied verbatim from a
// length-prefixed input region (length excluded) or is a validated
// scalar. The free-memory boundary is exactly the address after the last
// byte written.
//
//  initialize:      | poolId | tag0 | tag1 | growth | kernel | kernelCompact | curve | sep8 | hookData |
//  modifyPosition:  | poolId | qMin8 | qMax8 | shares | hookData |        (curve pointer at hookData)
//  donate:          | poolId | shares | hookData |
//  modifyKernel:    | poolId | kernel | kernelCompact | hookData |
//  modifyPoolGP:    | poolId | growth |
//  updateGP:        | poolId |
//  swap:            | poolId | amount | qLimit8 | cross | dir8 | hookData | (kernel pointer at end)
//  collect:         | poolId | reserved to swap's largest marker |
//
// The kernel region is zero-filled scratch for the expanded breakpoint
// table: 32*floor(4*W/5) bytes for a compact payload occupying W 32-byte
// words. The formula overestimates for some sizes; the expanded layout
// is a contract with the pool logic and must not be tightened.
//
// The hook input snapshot is the block from the fixed marker at its base
// to the boundary, less the 32-byte pool-id word at the front.
//
// A decode either completes or aborts atomically: on any validation
// failure the caller-owned block is reset and holds no partial writes.
package call
