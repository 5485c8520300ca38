package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparsolve/reorderplan/action"
	"github.com/sparsolve/reorderplan/host"
	"github.com/sparsolve/reorderplan/ir"
	"github.com/sparsolve/reorderplan/planner"
	"github.com/sparsolve/reorderplan/registry"
)

type typeOracle struct{}

func (typeOracle) TypeOf(node ir.Expr, symbolTypes map[string]host.ArrayKind) host.ArrayKind {
	switch n := node.(type) {
	case *ir.Symbol:
		return symbolTypes[n.Name]
	case *ir.Call:
		return symbolTypes[n.Result]
	case *ir.Number:
		return host.Number
	default:
		return host.Other
	}
}

func (typeOracle) NumbersOrArrays(resultType host.ArrayKind, argTypes []host.ArrayKind) (allNumbers, someArrays bool) {
	allNumbers = resultType == host.Number
	someArrays = resultType == host.SparseMatrix || resultType == host.Vector
	for _, a := range argTypes {
		if a != host.Number {
			allNumbers = false
		}
		if a == host.SparseMatrix || a == host.Vector {
			someArrays = true
		}
	}
	return allNumbers, someArrays
}

type fakeLiveness struct {
	outStmt map[*ir.Statement][]string
	liveOut map[*ir.BasicBlock][]string
	liveIn  map[*ir.BasicBlock][]string
}

func (f fakeLiveness) Def(*ir.Statement) []string              { return nil }
func (f fakeLiveness) Use(*ir.Statement) []string              { return nil }
func (f fakeLiveness) LiveIn(bb *ir.BasicBlock) []string       { return f.liveIn[bb] }
func (f fakeLiveness) LiveOut(bb *ir.BasicBlock) []string      { return f.liveOut[bb] }
func (f fakeLiveness) LiveOutStmt(stmt *ir.Statement) []string { return f.outStmt[stmt] }

// matVecLoop builds a single-block "Ap = A * p" loop, with "*" designated
// as the reordering decider and "p" as seed.
func matVecLoop() (*ir.Region, *ir.Call, map[string]host.ArrayKind) {
	call := &ir.Call{Callee: "*", Args: []ir.Expr{&ir.Symbol{Name: "A"}, &ir.Symbol{Name: "p"}}, Result: "Ap"}
	assign := &ir.Assign{LHS: &ir.Symbol{Name: "Ap"}, RHS: call}
	b1 := &ir.BasicBlock{ID: "B1", Stmts: []ir.Statement{{Expr: assign}}}
	region := &ir.Region{Loop: ir.Loop{Head: "B1", Members: []*ir.BasicBlock{b1}}}
	types := map[string]host.ArrayKind{"A": host.SparseMatrix, "p": host.Vector, "Ap": host.Vector}
	return region, call, types
}

func TestPlanReorderingHappyPathAppendsPreambleAndReorder(t *testing.T) {
	region, call, types := matVecLoop()
	cs := &host.CallSites{
		ReorderingDecider: call,
		ReorderingFAR:     []string{"p"},
		Expr2FKnob:        map[*ir.Call]string{call: "fknob1"},
	}
	live := fakeLiveness{
		outStmt: map[*ir.Statement][]string{&region.Loop.Members[0].Stmts[0]: {"A", "p", "Ap"}},
	}
	cfg := planner.Config{Registry: registry.New(), TypeOracle: typeOracle{}}

	base := []action.Action{action.InsertBeforeLoopHead("elsewhere")}
	out := planner.PlanReordering(base, region, types, live, cfg, cs)

	require.Len(t, out, len(base)+2)
	assert.Equal(t, base[0].ID, out[0].ID)
	assert.Equal(t, action.KindBeforeLoopHead, out[1].Kind)
	assert.Equal(t, action.KindBeforeOrAfterStatement, out[2].Kind)
}

// TestPlanReorderingInPlaceTriSolveColoursVectorRowPerm drives the
// preconditioned-solver shape end to end: a loop whose only statement is
// the in-place triangular solve fwdTriSolve!(L, z), seeded from L. The
// overwritten vector z must come out of the pipeline coloured ROW_PERM
// (propagated straight from the seed's row vertex), not COL_INV_PERM
// (which is what a dropped row-row edge would leave it reachable by).
func TestPlanReorderingInPlaceTriSolveColoursVectorRowPerm(t *testing.T) {
	call := &ir.Call{Callee: "fwdTriSolve!", Args: []ir.Expr{&ir.Symbol{Name: "L"}, &ir.Symbol{Name: "z"}}}
	b1 := &ir.BasicBlock{ID: "B1", Stmts: []ir.Statement{{Expr: call}}}
	region := &ir.Region{Loop: ir.Loop{Head: "B1", Members: []*ir.BasicBlock{b1}}}
	types := map[string]host.ArrayKind{"L": host.SparseMatrix, "z": host.Vector}

	cs := &host.CallSites{
		ReorderingDecider: call,
		ReorderingFAR:     []string{"L"},
		Expr2FKnob:        map[*ir.Call]string{call: "fknob1"},
	}
	live := fakeLiveness{
		outStmt: map[*ir.Statement][]string{&region.Loop.Members[0].Stmts[0]: {"L", "z"}},
	}
	cfg := planner.Config{Registry: registry.New(), TypeOracle: typeOracle{}}

	out := planner.PlanReordering(nil, region, types, live, cfg, cs)
	require.Len(t, out, 2)

	reorderCall, ok := out[1].Statements[0].Expr.(*ir.Call)
	require.True(t, ok)
	argNames := make([]string, len(reorderCall.Args))
	for i, a := range reorderCall.Args {
		sym, ok := a.(*ir.Symbol)
		require.True(t, ok)
		argNames[i] = sym.Name
	}
	require.Contains(t, argNames, "z")
	zIdx := -1
	for i, n := range argNames {
		if n == "z" {
			zIdx = i
		}
	}
	require.Greater(t, len(argNames), zIdx+1, "z's row colour must follow its symbol")
	assert.Equal(t, "ROW_PERM", argNames[zIdx+1], "z must be coloured from L's row permutation, not its column")
}

func TestPlanReorderingAbortsOnNonDistributiveCallRestoresOriginal(t *testing.T) {
	call := &ir.Call{Callee: "unsafe_reshape!", Args: []ir.Expr{&ir.Symbol{Name: "B"}}, Result: "A"}
	assign := &ir.Assign{LHS: &ir.Symbol{Name: "A"}, RHS: call}
	b1 := &ir.BasicBlock{ID: "B1", Stmts: []ir.Statement{{Expr: assign}}}
	region := &ir.Region{Loop: ir.Loop{Head: "B1", Members: []*ir.BasicBlock{b1}}}
	types := map[string]host.ArrayKind{"A": host.SparseMatrix, "B": host.SparseMatrix}

	cs := &host.CallSites{
		ReorderingDecider: call,
		ReorderingFAR:     []string{"A"},
		Expr2FKnob:        map[*ir.Call]string{call: "fknob1"},
	}
	cfg := planner.Config{Registry: registry.New(), TypeOracle: typeOracle{}}

	base := []action.Action{action.InsertBeforeLoopHead("preexisting")}
	out := planner.PlanReordering(base, region, types, fakeLiveness{}, cfg, cs)

	require.Len(t, out, len(base))
	assert.Equal(t, base[0].ID, out[0].ID, "failure returns the original actions unchanged")
}

func TestPlanReorderingReturnsOriginalWhenNoDeciderConfigured(t *testing.T) {
	region, _, types := matVecLoop()
	cs := &host.CallSites{ReorderingDecider: nil}
	cfg := planner.Config{Registry: registry.New(), TypeOracle: typeOracle{}}

	base := []action.Action{action.InsertBeforeLoopHead("preexisting")}
	out := planner.PlanReordering(base, region, types, fakeLiveness{}, cfg, cs)
	assert.Equal(t, base, out)
}

func TestPlanReorderingAbortsWhenDeciderNeverEncountered(t *testing.T) {
	region, _, types := matVecLoop()
	otherCall := &ir.Call{Callee: "*", Args: nil, Result: "zzz"}
	cs := &host.CallSites{ReorderingDecider: otherCall, ReorderingFAR: []string{"p"}}
	cfg := planner.Config{Registry: registry.New(), TypeOracle: typeOracle{}}

	base := []action.Action{action.InsertBeforeLoopHead("preexisting")}
	out := planner.PlanReordering(base, region, types, fakeLiveness{}, cfg, cs)
	require.Len(t, out, len(base))
	assert.Equal(t, base[0].ID, out[0].ID)
}

func TestPlanReorderingSurvivesAliasCheckerPanic(t *testing.T) {
	region, call, types := matVecLoop()
	cs := &host.CallSites{
		ReorderingDecider: call,
		ReorderingFAR:     []string{"p"},
		Expr2FKnob:        map[*ir.Call]string{call: "fknob1"},
	}
	cfg := planner.Config{
		Registry:   registry.New(),
		TypeOracle: typeOracle{},
		AliasChecker: func(symbols []string) error {
			panic("collaborator exploded")
		},
	}

	base := []action.Action{action.InsertBeforeLoopHead("preexisting")}
	out := planner.PlanReordering(base, region, types, fakeLiveness{}, cfg, cs)
	require.Len(t, out, len(base))
	assert.Equal(t, base[0].ID, out[0].ID, "a panicking collaborator still yields the original actions")
}
