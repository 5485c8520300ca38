// Package planner implements the Orchestrator: the single entry point,
// PlanReordering, that wires the Function Descriptor Registry, the IDG
// Builder, the Color Propagator, and the Action Planner together, and
// guarantees the whole operation is total — any internal failure
// restores the caller's action list and is swallowed behind a logged
// diagnostic, never a panic or a returned error.
package planner
