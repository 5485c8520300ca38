package idgbuild

import (
	"errors"
	"fmt"
)

// Sentinel errors this package can raise while walking a loop body. A
// colour clash is deliberately not among them: propagate reports that as
// a Diagnostic, not an error, since it is a discovery rather than a
// failure. Callers match with errors.Is; messages carry context via %w.
var (
	// ErrUnresolvedFunction: the call's callee is empty after resolution
	// (a Call node with no Callee, or a registry lookup reporting Unresolved).
	ErrUnresolvedFunction = errors.New("idgbuild: unresolved function")

	// ErrUndescribedFunction: the registry has no entry for (module, name, types).
	ErrUndescribedFunction = errors.New("idgbuild: undescribed function")

	// ErrNonDistributiveFunction: the registry entry marks the call non-distributive.
	ErrNonDistributiveFunction = errors.New("idgbuild: non-distributive function")

	// ErrUnhandledExpr: a call expression has an unexpected head.
	ErrUnhandledExpr = errors.New("idgbuild: unhandled expression head")

	// ErrUnknownASTShape: an AST node is of an unanticipated shape.
	ErrUnknownASTShape = errors.New("idgbuild: unknown AST node shape")
)

func wrapf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel)
}
