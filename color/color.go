// Package color defines the permutation-colour vocabulary shared by the
// inter-dependence graph, its propagator, and the action planner.
//
// A colour names which permutation vector (if any) has been assigned to one
// axis of one array. NoPerm is the uncoloured starting state; the four
// remaining colours form an involution under Inverse: ROW_PERM and
// ROW_INV_PERM are each other's inverse, as are COL_PERM and COL_INV_PERM.
// NoPerm has no inverse and must never appear on the active propagation
// frontier (see propagate.Propagate).
package color

import "fmt"

// Color is one of the five permutation-vector tags a vertex can carry.
type Color uint8

const (
	// NoPerm marks a vertex that has not yet been assigned a permutation.
	NoPerm Color = iota
	// RowPerm marks a vertex assigned the seed's row permutation, untransposed.
	RowPerm
	// RowInvPerm marks a vertex assigned the inverse of the row permutation.
	RowInvPerm
	// ColPerm marks a vertex assigned the seed's column permutation, untransposed.
	ColPerm
	// ColInvPerm marks a vertex assigned the inverse of the column permutation.
	ColInvPerm
)

// String renders c using the runtime constant names the planner emits
// (NO_PERM, ROW_PERM, ...), matching the External Interfaces contract.
func (c Color) String() string {
	switch c {
	case NoPerm:
		return "NO_PERM"
	case RowPerm:
		return "ROW_PERM"
	case RowInvPerm:
		return "ROW_INV_PERM"
	case ColPerm:
		return "COL_PERM"
	case ColInvPerm:
		return "COL_INV_PERM"
	default:
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
}

// inverseOf is the involution {ROW_PERM<->ROW_INV_PERM, COL_PERM<->COL_INV_PERM}.
var inverseOf = map[Color]Color{
	RowPerm:    RowInvPerm,
	RowInvPerm: RowPerm,
	ColPerm:    ColInvPerm,
	ColInvPerm: ColPerm,
}

// Inverse returns the involutive counterpart of c. It panics if called on
// NoPerm: NoPerm never appears on the active frontier (see package doc), so
// a caller asking for its inverse is a programmer error, not bad input.
func Inverse(c Color) Color {
	inv, ok := inverseOf[c]
	if !ok {
		panic(fmt.Sprintf("color: NoPerm (or unknown color %d) has no inverse", uint8(c)))
	}
	return inv
}

// Axis distinguishes the two permutation vectors an array may carry.
// Vectors only ever have a Row axis; matrices have both.
type Axis uint8

const (
	// Row is the row-permutation axis, valid for both matrices and vectors.
	Row Axis = iota
	// Column is the column-permutation axis, valid only for matrices.
	Column
)

// String renders the axis as "row" or "column".
func (a Axis) String() string {
	if a == Column {
		return "column"
	}
	return "row"
}

// Relation is the vocabulary the Function Descriptor Registry uses to
// describe the permutation constraint a call imposes between two arrays.
type Relation uint8

const (
	// RowRow requires the two arrays' row permutations to be equal.
	RowRow Relation = iota
	// ColCol requires the two arrays' column permutations to be equal.
	ColCol
	// ColRowInverse requires the first array's column permutation to equal
	// the inverse of the second array's row permutation.
	ColRowInverse
)

// String renders the relation using the registry's own vocabulary.
func (r Relation) String() string {
	switch r {
	case RowRow:
		return "ROW_ROW"
	case ColCol:
		return "COL_COL"
	case ColRowInverse:
		return "COL_ROW_INVERSE"
	default:
		return fmt.Sprintf("Relation(%d)", uint8(r))
	}
}
