// Package idgbuild implements the IDG Builder: a single pass over every
// statement of the target loop, in source order, that classifies each
// call through the Function Descriptor Registry and materialises the
// vertices and edges its distributivity record implies. It also records
// the exact (block, statement) that holds the reordering decider call,
// exactly once.
//
// Recursion into a call's arguments happens depth-first before the call
// itself is classified: nested calls contribute their own edges before
// the enclosing call's descriptor is applied. Because expression depth
// is not bounded by this package's contract, the walk below uses an
// explicit stack instead of Go call-stack recursion.
package idgbuild
