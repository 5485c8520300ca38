package plan

import (
	"github.com/sparsolve/reorderplan/action"
	"github.com/sparsolve/reorderplan/host"
	"github.com/sparsolve/reorderplan/idg"
	"github.com/sparsolve/reorderplan/idgbuild"
	"github.com/sparsolve/reorderplan/ir"
)

// Plan appends the preamble, post-decider reorder, and per-exit
// inverse-reorder actions to actions and returns the extended slice. It
// never mutates actions in place, so a caller holding the original
// slice header is unaffected.
func Plan(
	actions []action.Action,
	g *idg.IDG,
	region *ir.Region,
	symbolTypes map[string]host.ArrayKind,
	live host.LivenessOracle,
	far []string,
	decision idgbuild.Decision,
) []action.Action {
	out := make([]action.Action, len(actions), len(actions)+2+len(region.Exits))
	copy(out, actions)

	out = append(out, preamble(region.Loop.Head, decision.FKnob))
	out = append(out, postDeciderReorder(g, symbolTypes, live, decision.Stmt, decision.Block, decision.StmtIndex, far, decision.FKnob))
	out = append(out, exitReorders(g, symbolTypes, live, region.Exits)...)

	return out
}
