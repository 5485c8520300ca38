// Package registry implements the Function Descriptor Registry: a
// static table mapping a call's (module, name, argument-type tuple) to
// the permutation relations it imposes between its array arguments.
//
// The registry is immutable after construction and is safe to share
// across concurrent planner invocations: Lookup only reads.
package registry

import (
	"strings"

	"github.com/sparsolve/reorderplan/color"
	"github.com/sparsolve/reorderplan/host"
)

// Status is the disposition of a Lookup.
type Status uint8

const (
	// Resolved means Descriptor is populated and distributive.
	Resolved Status = iota
	// Unresolved means the call's callee name was empty.
	Unresolved
	// Undescribed means no entry exists for (module, name, argTypes).
	Undescribed
	// NonDistributive means an entry exists but is marked non-distributive.
	NonDistributive
)

// Triple is one (array_index1, array_index2, relation) entry of a
// distributivity record. Index 0 refers to the call's result; positive
// indices refer to 1-based argument positions.
type Triple struct {
	Idx1, Idx2 int
	Relation   color.Relation
}

// Descriptor is a distributivity record: whether the call distributes
// over permutations at all, and which array-pairs it constrains.
type Descriptor struct {
	Distributive bool
	Triples      []Triple
}

// key identifies one registry entry. ArgTypes is joined into a string so
// Key is comparable and usable as a map key without a slice wrapper.
type key struct {
	module, name, args string
}

func makeKey(module, name string, argTypes []host.ArrayKind) key {
	parts := make([]string, len(argTypes))
	for i, t := range argTypes {
		parts[i] = string(rune('0' + t))
	}
	return key{module: module, name: name, args: strings.Join(parts, ",")}
}

// Registry is the immutable (module, name, arg-types) -> Descriptor table.
type Registry struct {
	entries map[key]Descriptor
}

// NewEmpty returns a Registry with no entries; callers populate it with
// Register before first use.
func NewEmpty() *Registry {
	return &Registry{entries: make(map[key]Descriptor)}
}

// Register adds or overwrites the descriptor for (module, name, argTypes).
// It is a builder-time operation only: callers must not call Register
// after handing the Registry to a planner invocation.
func (r *Registry) Register(module, name string, argTypes []host.ArrayKind, d Descriptor) {
	r.entries[makeKey(module, name, argTypes)] = d
}

// Lookup resolves a call to its distributivity record.
//
//   - name == "" yields Unresolved (the callee is empty after resolution).
//   - no matching entry yields Undescribed. Arg-type matching is exact on
//     the supplied tuple; Lookup never infers covariance.
//   - a matching entry with Distributive == false yields NonDistributive.
//   - otherwise yields Resolved with the matching Descriptor.
func (r *Registry) Lookup(module, name string, argTypes []host.ArrayKind) (Descriptor, Status) {
	if name == "" {
		return Descriptor{}, Unresolved
	}
	d, ok := r.entries[makeKey(module, name, argTypes)]
	if !ok {
		return Descriptor{}, Undescribed
	}
	if !d.Distributive {
		return d, NonDistributive
	}
	return d, Resolved
}

// assignDescriptor is the special ":=" (assignment) pseudo-function:
// ROW_ROW always, plus COL_COL when both operands are matrices.
func assignDescriptor(bothMatrices bool) Descriptor {
	triples := []Triple{{Idx1: 0, Idx2: 1, Relation: color.RowRow}}
	if bothMatrices {
		triples = append(triples, Triple{Idx1: 0, Idx2: 1, Relation: color.ColCol})
	}
	return Descriptor{Distributive: true, Triples: triples}
}

// AssignName is the pseudo-function name the builder looks up for plain
// assignment statements.
const AssignName = ":="

// RegisterAssign seeds both the matrix-to-matrix and vector-to-vector
// shapes of the ":=" pseudo-function.
func (r *Registry) RegisterAssign() {
	r.Register("", AssignName, []host.ArrayKind{host.SparseMatrix, host.SparseMatrix}, assignDescriptor(true))
	r.Register("", AssignName, []host.ArrayKind{host.Vector, host.Vector}, assignDescriptor(false))
}
