package planner

import (
	"github.com/rs/zerolog"

	"github.com/sparsolve/reorderplan/host"
	"github.com/sparsolve/reorderplan/registry"
)

// Config bundles the external collaborators and ambient settings a
// single PlanReordering call needs.
//
// Registry and TypeOracle are required; the zero Logger is replaced
// with a disabled zerolog.Logger, so this package holds no static
// logging state of its own. AliasChecker is optional: when set, it is
// called once over every symbol the symbol-type map classifies as a
// matrix or vector (in no particular order), before the
// walk begins, to verify no two symbols alias the same underlying
// storage; a non-nil result aborts the planner the same way an
// internal failure would. When nil, the no-aliasing precondition is
// simply left unchecked and assumed by the caller.
type Config struct {
	Registry     *registry.Registry
	TypeOracle   host.TypeOracle
	Logger       *zerolog.Logger
	AliasChecker func(symbols []string) error
}

func (c Config) logger() *zerolog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	nop := zerolog.Nop()
	return &nop
}
