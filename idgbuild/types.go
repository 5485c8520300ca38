package idgbuild

import (
	"github.com/sparsolve/reorderplan/host"
	"github.com/sparsolve/reorderplan/idg"
	"github.com/sparsolve/reorderplan/ir"
	"github.com/sparsolve/reorderplan/registry"
)

// Decision carries the fixed facts Build froze about the decider
// statement: its position, a pointer to it for liveness queries, and the
// function-knob symbol tied to it. A downstream planning stage consumes
// this to place the post-decider reorder call and resolve its arguments.
type Decision struct {
	Block     string
	StmtIndex int
	Stmt      *ir.Statement
	FKnob     string
}

// context is the per-invocation working state of the builder's walk: the
// seed symbol, the decider call node, where it was found (frozen on
// first sighting), the IDG being populated, and a cursor the walker
// updates as it moves through the loop's statements.
type context struct {
	seed    string
	decider *ir.Call
	fknob   string

	deciderBlock     string
	deciderStmtIndex int
	deciderStmt      *ir.Statement
	recorded         bool

	curBlock string
	curIndex int
	curStmt  *ir.Statement

	idg *idg.IDG
	reg *registry.Registry
	typ host.TypeOracle
}
