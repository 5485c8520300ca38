package plan

import (
	"github.com/sparsolve/reorderplan/action"
	"github.com/sparsolve/reorderplan/ir"
)

// preamble synthesises the two before-loop statements: registering the
// decider's function knob as the reordering decision maker, and
// initialising a fresh reordering_status tuple.
func preamble(loopHead, fknob string) action.Action {
	registerCall := action.Statement{
		Expr: &ir.Call{Callee: FnSetReorderingDecisionMaker, Args: []ir.Expr{symbolArg(fknob)}},
	}
	statusInit := action.Statement{
		Expr: &ir.Assign{
			LHS: &ir.Symbol{Name: StatusSymbol},
			RHS: &ir.Tuple{Elems: []ir.Expr{
				&ir.Symbol{Name: "false"},
				&ir.Symbol{Name: "NULL"},
				&ir.Symbol{Name: "NULL"},
				&ir.Symbol{Name: "NULL"},
				&ir.Symbol{Name: "NULL"},
				&ir.Number{Text: "0.0"},
			}},
		},
	}
	return action.InsertBeforeLoopHead(loopHead, registerCall, statusInit)
}
