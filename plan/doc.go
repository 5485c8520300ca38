// Package plan implements the Action Planner: given a coloured idg.IDG
// and liveness information, it synthesises the loop preamble, the
// post-decider reorder call, and the per-exit-edge inverse-reorder
// calls as action.Action values appended to the caller's action list.
//
// Argument ordering inside every synthesised call is insertion-order
// stable: symbols are sorted lexicographically before being emitted, so
// the same coloured IDG always yields byte-identical actions.
package plan
