// Package action defines the small, tagged family of editing-action
// records the planner emits for a downstream code emitter to apply. The
// planner never executes an action; it only describes where a splice
// goes and what host-level IR fragments it carries.
package action

import (
	"github.com/google/uuid"

	"github.com/sparsolve/reorderplan/ir"
)

// Kind distinguishes the three placement strategies an Action supports.
type Kind uint8

const (
	// KindBeforeLoopHead splices Statements immediately before the
	// loop's entry block.
	KindBeforeLoopHead Kind = iota
	// KindBeforeOrAfterStatement splices Statements immediately before
	// or after one specific statement.
	KindBeforeOrAfterStatement
	// KindOnEdge splices Statements onto one control-flow edge, which
	// may require the downstream emitter to materialise a bridge block.
	KindOnEdge
)

// Statement is one host-level IR fragment the planner has synthesised.
// It is opaque to the planner beyond the expression it wraps: the
// planner builds these (call nodes into the emitted runtime) but never
// interprets them further.
type Statement struct {
	Expr ir.Expr
}

// Action is one editing instruction. Which fields are meaningful
// depends on Kind; see the constructors below, which are the only
// supported way to build a well-formed Action.
type Action struct {
	// ID uniquely identifies this action so a downstream emitter (and
	// its own logs) can correlate a specific splice with the planner
	// invocation that produced it.
	ID uuid.UUID

	Kind Kind

	// Loop is the target loop's head block ID, set for KindBeforeLoopHead.
	Loop string

	// Block and StmtIndex locate the statement for
	// KindBeforeOrAfterStatement; Before selects which side it is
	// spliced on.
	Block     string
	StmtIndex int
	Before    bool

	// From and To name the control-flow edge for KindOnEdge.
	From string
	To   string

	Statements []Statement
}

// InsertBeforeLoopHead returns an Action that splices stmts immediately
// before loop's entry block.
func InsertBeforeLoopHead(loop string, stmts ...Statement) Action {
	return Action{ID: uuid.New(), Kind: KindBeforeLoopHead, Loop: loop, Statements: stmts}
}

// InsertBeforeOrAfterStatement returns an Action that splices stmts
// immediately before or after the statement at (block, stmtIndex).
func InsertBeforeOrAfterStatement(before bool, block string, stmtIndex int, stmts ...Statement) Action {
	return Action{
		ID:         uuid.New(),
		Kind:       KindBeforeOrAfterStatement,
		Block:      block,
		StmtIndex:  stmtIndex,
		Before:     before,
		Statements: stmts,
	}
}

// InsertOnEdge returns an Action that splices stmts onto the control-flow
// edge from -> to.
func InsertOnEdge(from, to string, stmts ...Statement) Action {
	return Action{ID: uuid.New(), Kind: KindOnEdge, From: from, To: to, Statements: stmts}
}
