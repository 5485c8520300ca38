// Package reorderplan is a compiler pass for a sparse linear-algebra
// accelerator: given one target loop, it decides whether a sparse
// matrix reordering chosen mid-loop can be hoisted and inverted safely
// around that loop, and if so emits the runtime calls that apply it.
//
// The pass is organized as a short pipeline, one subpackage per stage:
//
//	registry/  — Function Descriptor Registry: which calls distribute
//	             over permutations and which array arguments they relate
//	idg/       — Inter-Dependence Graph: vertices are (symbol, axis)
//	             pairs, edges are the relations a call's descriptor implies
//	idgbuild/  — IDG Builder: one source-order pass over the loop body
//	             that materialises the graph and locates the decider call
//	propagate/ — Color Propagator: a two-seed BFS that colours every
//	             vertex reachable from the seed, or reports where the
//	             graph asks for two colours on the same vertex
//	plan/      — Action Planner: turns a coloured graph into the
//	             preamble, post-decider reorder, and per-exit inverse
//	             reorder actions a downstream emitter applies
//	planner/   — Orchestrator: PlanReordering, the package's one exported
//	             entry point, wiring the stages above into a call that is
//	             guaranteed to return (failure restores the caller's
//	             original action list rather than panicking or erroring)
//
// The host program supplies its own IR (package ir), typing and
// liveness answers (package host), and the action list it wants
// extended (package action); reorderplan never mutates host state
// itself, only describes the edits a caller should make.
package reorderplan
