package plan

import (
	"github.com/sparsolve/reorderplan/action"
	"github.com/sparsolve/reorderplan/host"
	"github.com/sparsolve/reorderplan/idg"
	"github.com/sparsolve/reorderplan/ir"
)

// exitReorders synthesises one reverse_reordering(...) action per loop
// exit edge, undoing the reordering before control leaves the loop. The
// argument set for edge (from, to) is live_out(from) ∩ live_in(to),
// restricted to arrays with at least one coloured axis: an array that is
// live on only one side of the edge needs no inverse applied there.
func exitReorders(g *idg.IDG, symbolTypes map[string]host.ArrayKind, live host.LivenessOracle, exits []ir.Edge) []action.Action {
	acts := make([]action.Action, 0, len(exits))
	for _, e := range exits {
		liveOut := toSet(live.LiveOut(e.From))
		liveIn := toSet(live.LiveIn(e.To))

		var shared []string
		for sym := range liveOut {
			if liveIn[sym] {
				shared = append(shared, sym)
			}
		}
		matrices, vectors := classify(g, symbolTypes, sortedSet(toSet(shared)))

		stmt := buildReverseReorderingCall(g, matrices, vectors)
		acts = append(acts, action.InsertOnEdge(e.From.ID, e.To.ID, stmt))
	}
	return acts
}
