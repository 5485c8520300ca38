package idgbuild

import (
	"github.com/sparsolve/reorderplan/color"
	"github.com/sparsolve/reorderplan/host"
	"github.com/sparsolve/reorderplan/idg"
	"github.com/sparsolve/reorderplan/ir"
	"github.com/sparsolve/reorderplan/registry"
)

// Build walks region's loop body in source order, consulting reg and
// typ to classify each call and materialise vertices/edges into g. It
// returns the frozen decider position once found, or the first error
// encountered while classifying a call or assignment.
func Build(
	region *ir.Region,
	symbolTypes map[string]host.ArrayKind,
	reg *registry.Registry,
	typ host.TypeOracle,
	cs *host.CallSites,
	g *idg.IDG,
) (*Decision, error) {
	ctx := &context{
		seed:    cs.Seed(),
		decider: cs.ReorderingDecider,
		fknob:   cs.FKnob(),
		idg:     g,
		reg:     reg,
		typ:     typ,
	}

	for _, bb := range region.Loop.Members {
		ctx.curBlock = bb.ID
		for i := range bb.Stmts {
			ctx.curIndex = i
			ctx.curStmt = &bb.Stmts[i]
			if err := walk(ctx, symbolTypes, bb.Stmts[i].Expr); err != nil {
				return nil, err
			}
		}
	}

	if !ctx.recorded {
		return nil, nil
	}
	return &Decision{
		Block:     ctx.deciderBlock,
		StmtIndex: ctx.deciderStmtIndex,
		Stmt:      ctx.deciderStmt,
		FKnob:     ctx.fknob,
	}, nil
}

// stackFrame is one node awaiting post-order visitation on the explicit
// traversal stack.
type stackFrame struct {
	node           ir.Expr
	childrenPushed bool
}

// walk performs an iterative post-order traversal of node: every child
// is classified before node itself, so a nested call's own edges exist
// before its enclosing call resolves the descriptor that references them.
func walk(ctx *context, symbolTypes map[string]host.ArrayKind, node ir.Expr) error {
	if node == nil {
		return nil
	}
	stack := []*stackFrame{{node: node}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if !top.childrenPushed {
			top.childrenPushed = true
			children, err := childrenOf(top.node)
			if err != nil {
				return err
			}
			for i := len(children) - 1; i >= 0; i-- {
				if children[i] != nil {
					stack = append(stack, &stackFrame{node: children[i]})
				}
			}
			continue
		}
		stack = stack[:len(stack)-1]
		if err := visit(ctx, symbolTypes, top.node); err != nil {
			return err
		}
	}
	return nil
}

// childrenOf returns the sub-expressions of node that must be visited
// before node itself. Trivia nodes (line, label, symbol, number, string,
// lambda, new-var) have none.
func childrenOf(node ir.Expr) ([]ir.Expr, error) {
	switch n := node.(type) {
	case *ir.Tuple:
		return n.Elems, nil
	case *ir.Call:
		return n.Args, nil
	case *ir.Assign:
		return []ir.Expr{n.RHS, n.LHS}, nil
	case *ir.Return:
		return []ir.Expr{n.Value}, nil
	case *ir.GotoIfNot:
		return []ir.Expr{n.Cond}, nil
	case *ir.Line, *ir.Label, *ir.Symbol, *ir.Number, *ir.String, *ir.Lambda, *ir.NewVar:
		return nil, nil
	default:
		return nil, wrapf(ErrUnknownASTShape, "node %T", node)
	}
}

// visit classifies node now that its children have already contributed
// their own vertices and edges.
func visit(ctx *context, symbolTypes map[string]host.ArrayKind, node ir.Expr) error {
	switch n := node.(type) {
	case *ir.Call:
		return visitCall(ctx, symbolTypes, n)
	case *ir.Assign:
		return visitAssign(ctx, symbolTypes, n)
	case *ir.Tuple, *ir.Return, *ir.GotoIfNot,
		*ir.Line, *ir.Label, *ir.Symbol, *ir.Number, *ir.String, *ir.Lambda, *ir.NewVar:
		return nil
	default:
		return wrapf(ErrUnknownASTShape, "node %T", node)
	}
}

// symbolOf returns the array symbol a (sub-)expression denotes: its own
// name if it is a bare Symbol, or the bound result symbol if it is a
// nested call whose value was itself just classified. Any other shape
// (a literal, for instance) denotes no array.
func symbolOf(e ir.Expr) (string, bool) {
	switch n := e.(type) {
	case *ir.Symbol:
		return n.Name, n.Name != ""
	case *ir.Call:
		return n.Result, n.Result != ""
	default:
		return "", false
	}
}

// hasColumnAxis reports whether symbol carries a column axis: true for a
// matrix, false for a vector (which has a row axis only).
func hasColumnAxis(symbolTypes map[string]host.ArrayKind, symbol string) bool {
	return symbolTypes[symbol] == host.SparseMatrix
}

func visitCall(ctx *context, symbolTypes map[string]host.ArrayKind, call *ir.Call) error {
	if call.Callee == "" {
		return wrapf(ErrUnresolvedFunction, "call node carries no callee name")
	}

	if call == ctx.decider {
		if ctx.recorded {
			panic("idgbuild: reordering decider recorded twice")
		}
		ctx.deciderBlock = ctx.curBlock
		ctx.deciderStmtIndex = ctx.curIndex
		ctx.deciderStmt = ctx.curStmt
		ctx.recorded = true
	}

	resultType := ctx.typ.TypeOf(&ir.Symbol{Name: call.Result}, symbolTypes)
	argTypes := make([]host.ArrayKind, len(call.Args))
	for i, a := range call.Args {
		argTypes[i] = ctx.typ.TypeOf(a, symbolTypes)
	}
	allNumbers, someArrays := ctx.typ.NumbersOrArrays(resultType, argTypes)
	if allNumbers || !someArrays {
		return nil // scalar-only call: no array touches a permutation, registry not consulted.
	}

	desc, status := ctx.reg.Lookup(call.Module, call.Callee, argTypes)
	switch status {
	case registry.Unresolved:
		return wrapf(ErrUnresolvedFunction, "call %s.%s", call.Module, call.Callee)
	case registry.Undescribed:
		return wrapf(ErrUndescribedFunction, "call %s.%s%v", call.Module, call.Callee, argTypes)
	case registry.NonDistributive:
		return wrapf(ErrNonDistributiveFunction, "call %s.%s", call.Module, call.Callee)
	}

	return applyDescriptor(ctx, symbolTypes, desc, call.Result, call.Args)
}

func visitAssign(ctx *context, symbolTypes map[string]host.ArrayKind, a *ir.Assign) error {
	lhsSym, lhsOK := symbolOf(a.LHS)
	rhsSym, rhsOK := symbolOf(a.RHS)
	if !lhsOK || !rhsOK {
		return nil // not an array-to-array assignment; contributes nothing.
	}
	lhsType := ctx.typ.TypeOf(a.LHS, symbolTypes)
	rhsType := ctx.typ.TypeOf(a.RHS, symbolTypes)
	allNumbers, someArrays := ctx.typ.NumbersOrArrays(lhsType, []host.ArrayKind{rhsType})
	if allNumbers || !someArrays {
		return nil
	}

	desc, status := ctx.reg.Lookup("", registry.AssignName, []host.ArrayKind{lhsType, rhsType})
	switch status {
	case registry.Unresolved:
		return wrapf(ErrUnresolvedFunction, "assignment %s := %s", lhsSym, rhsSym)
	case registry.Undescribed:
		return wrapf(ErrUndescribedFunction, "assignment %s := %s", lhsSym, rhsSym)
	case registry.NonDistributive:
		return wrapf(ErrNonDistributiveFunction, "assignment %s := %s", lhsSym, rhsSym)
	}

	// ":=" has no call-site arguments: index 0 is the LHS, index 1 the RHS.
	return applyDescriptor(ctx, symbolTypes, desc, lhsSym, []ir.Expr{a.RHS})
}

// applyDescriptor resolves every (idx1, idx2, relation) triple of desc to
// concrete array symbols and axes, and inserts the corresponding edge.
func applyDescriptor(ctx *context, symbolTypes map[string]host.ArrayKind, desc registry.Descriptor, result string, args []ir.Expr) error {
	resolve := func(idx int) (string, bool) {
		if idx == 0 {
			return result, result != ""
		}
		if idx-1 < 0 || idx-1 >= len(args) {
			return "", false
		}
		return symbolOf(args[idx-1])
	}

	for _, t := range desc.Triples {
		sym1, ok1 := resolve(t.Idx1)
		sym2, ok2 := resolve(t.Idx2)
		if !ok1 || !ok2 {
			continue // index referenced a non-array argument; nothing to constrain.
		}
		addRelationEdge(ctx.idg, symbolTypes, sym1, sym2, t.Relation)
	}
	return nil
}

// addRelationEdge inserts the idg edge a descriptor's Relation tag implies.
func addRelationEdge(g *idg.IDG, symbolTypes map[string]host.ArrayKind, sym1, sym2 string, rel color.Relation) {
	switch rel {
	case color.RowRow:
		g.AddEdge(sym1, color.Row, sym2, color.Row, false)
	case color.ColCol:
		if hasColumnAxis(symbolTypes, sym1) && hasColumnAxis(symbolTypes, sym2) {
			g.AddEdge(sym1, color.Column, sym2, color.Column, false)
		}
	case color.ColRowInverse:
		if hasColumnAxis(symbolTypes, sym1) {
			g.AddEdge(sym1, color.Column, sym2, color.Row, true)
		}
	}
}
