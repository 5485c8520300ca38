// Package propagate implements the Color Propagator: a breadth-first
// two-colour walk of an idg.IDG starting from the seed's pre-coloured
// row and column vertices, applying the inversion rule across each edge
// and reporting colour clashes as equality diagnostics rather than
// errors.
//
// The walker below follows the familiar queue-and-visited-set BFS
// shape, adapted to: (a) seed from two roots sharing one visited set
// instead of one, (b) carry a colour instead of a depth across the
// frontier, and (c) branch three ways on arrival (uncoloured / agreeing
// / conflicting) instead of a single visited check.
package propagate
