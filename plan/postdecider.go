package plan

import (
	"github.com/sparsolve/reorderplan/action"
	"github.com/sparsolve/reorderplan/host"
	"github.com/sparsolve/reorderplan/idg"
	"github.com/sparsolve/reorderplan/ir"
)

// postDeciderReorder synthesises the single reordering(...) call spliced
// immediately after the decider statement. Its argument set is
// live_out(decider) minus the decider's own defined/used symbols,
// restricted to arrays with at least one coloured axis: those symbols
// are already accounted for by the decider itself and need no separate
// reorder call.
func postDeciderReorder(
	g *idg.IDG,
	symbolTypes map[string]host.ArrayKind,
	live host.LivenessOracle,
	deciderStmt *ir.Statement,
	deciderBlock string,
	deciderStmtIndex int,
	far []string,
	fknob string,
) action.Action {
	liveOut := toSet(live.LiveOutStmt(deciderStmt))
	farSet := toSet(far)

	var candidates []string
	for sym := range liveOut {
		if !farSet[sym] {
			candidates = append(candidates, sym)
		}
	}
	matrices, vectors := classify(g, symbolTypes, sortedSet(toSet(candidates)))

	stmt := buildReorderingCall(g, fknob, matrices, vectors)
	return action.InsertBeforeOrAfterStatement(false, deciderBlock, deciderStmtIndex, stmt)
}
