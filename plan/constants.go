package plan

// Names of the runtime calls this package synthesises. The planner
// only ever references these by name; it never defines or executes
// them.
const (
	FnSetReorderingDecisionMaker = "set_reordering_decision_maker"
	FnReordering                 = "reordering"
	FnReverseReordering          = "reverse_reordering"

	// StatusSymbol is the local variable the preamble binds the fresh
	// reordering_status tuple to, and every later call threads through.
	StatusSymbol = "reordering_status"

	// DelimiterSymbol is the literal sentinel separating a call's
	// matrix arguments from its vector arguments.
	DelimiterSymbol = "__delimitor__"
)
