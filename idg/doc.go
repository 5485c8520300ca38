// Package idg implements the Inter-Dependence Graph: two deduplicating
// vertex indices — one per array symbol's row axis, one per its column
// axis — plus symmetric, optionally-inverted edges between them.
//
// An IDG is built once per planner invocation by the idgbuild package,
// coloured once by propagate, consumed by plan, and then discarded. It
// holds no locks: a single planner invocation owns its IDG exclusively
// and runs synchronously, so there is no concurrent access to guard
// against (see DESIGN.md).
//
// Invariants enforced by this package:
//
//   - edge symmetry: AddEdge always inserts both directions.
//   - seed pre-colouring: this package does not colour the seed's two
//     vertices; propagate.Propagate colours them when it starts, and
//     SeedRowVertex/SeedColVertex reach them.
//   - vertex deduplication: VertexFor never creates two vertices for
//     the same (symbol, axis) pair.
package idg
