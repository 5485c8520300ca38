package planner

import (
	"fmt"

	"github.com/sparsolve/reorderplan/action"
	"github.com/sparsolve/reorderplan/host"
	"github.com/sparsolve/reorderplan/idg"
	"github.com/sparsolve/reorderplan/idgbuild"
	"github.com/sparsolve/reorderplan/ir"
	"github.com/sparsolve/reorderplan/plan"
	"github.com/sparsolve/reorderplan/propagate"
)

// abortMessage is logged on every abort path.
const abortMessage = "Sparse Accelerator skips reordering the loop."

// PlanReordering is the orchestrator entry point. It always returns: on
// success, actions extended with the preamble, post-decider reorder, and
// per-exit inverse-reorder actions; on any internal failure — including
// a panic from a collaborator — the original actions slice, unchanged,
// with the failure logged.
func PlanReordering(
	actions []action.Action,
	region *ir.Region,
	symbolTypes map[string]host.ArrayKind,
	liveness host.LivenessOracle,
	cfg Config,
	callSites *host.CallSites,
) []action.Action {
	if callSites == nil || callSites.ReorderingDecider == nil {
		return actions
	}

	// The caller's slice header must be unaffected even though we build
	// on top of it, so snapshot before any collaborator gets a chance
	// to panic mid-append.
	snapshot := append([]action.Action(nil), actions...)
	log := cfg.logger()

	result, err := runSafely(func() ([]action.Action, error) {
		return plan_(actions, region, symbolTypes, liveness, cfg, callSites)
	})
	if err != nil {
		log.Warn().Err(err).Msg(abortMessage)
		return snapshot
	}
	return result
}

// runSafely converts a panic from any collaborator (TypeOracle,
// LivenessOracle, AliasChecker) into an error, so PlanReordering's
// abort path is reached on every failure mode, not just returned
// errors.
func runSafely(fn func() ([]action.Action, error)) (acts []action.Action, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("planner: panic during planning: %v", r)
		}
	}()
	return fn()
}

// plan_ performs the unguarded happy path: alias precondition, IDG
// construction, colour propagation, and action synthesis.
func plan_(
	actions []action.Action,
	region *ir.Region,
	symbolTypes map[string]host.ArrayKind,
	liveness host.LivenessOracle,
	cfg Config,
	callSites *host.CallSites,
) ([]action.Action, error) {
	if cfg.AliasChecker != nil {
		if err := cfg.AliasChecker(arraySymbols(symbolTypes)); err != nil {
			return nil, fmt.Errorf("planner: alias precondition: %w", err)
		}
	}

	far := callSites.ReorderingFAR
	seed := callSites.Seed()

	g := idg.New(seed)
	g.SeedRowVertex()
	g.SeedColVertex()

	decision, err := idgbuild.Build(region, symbolTypes, cfg.Registry, cfg.TypeOracle, callSites, g)
	if err != nil {
		return nil, err
	}
	if decision == nil {
		return nil, fmt.Errorf("planner: decider call was never encountered while walking the loop body")
	}

	log := cfg.logger()
	propagate.Propagate(g, propagate.WithOnDiagnostic(func(d propagate.Diagnostic) {
		log.Info().
			Str("symbol", d.Vertex.Symbol).
			Str("axis", d.Vertex.Axis.String()).
			Str("existing", d.Existing.String()).
			Str("wanted", d.Wanted.String()).
			Msg("permutation constraint: equality diagnostic")
	}))

	return plan.Plan(actions, g, region, symbolTypes, liveness, far, *decision), nil
}

// arraySymbols returns every symbol classified as a matrix or vector,
// the input the (optional) alias precondition checker validates.
func arraySymbols(symbolTypes map[string]host.ArrayKind) []string {
	out := make([]string, 0, len(symbolTypes))
	for sym, kind := range symbolTypes {
		if kind == host.SparseMatrix || kind == host.Vector {
			out = append(out, sym)
		}
	}
	return out
}
