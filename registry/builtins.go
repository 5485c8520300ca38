package registry

import (
	"github.com/sparsolve/reorderplan/color"
	"github.com/sparsolve/reorderplan/host"
)

// matmulTriples describes a matrix-vector multiply that binds its
// product to a fresh result symbol (Ap = A*p):
//
//   - (result, matrix, ROW_ROW): the result's row permutation equals the
//     matrix's row permutation — P*(A*x) = (P*A)*x for any row perm P.
//   - (matrix, vector, COL_ROW_INVERSE): the matrix's column permutation
//     must equal the inverse of the operand vector's row permutation, so
//     that A*Q' applied to Q*x recovers the original product.
func matmulTriples() []Triple {
	return []Triple{
		{Idx1: 0, Idx2: 1, Relation: color.RowRow},
		{Idx1: 1, Idx2: 2, Relation: color.ColRowInverse},
	}
}

// inPlaceMatVecTriples describes a matrix-vector op that overwrites its
// vector argument instead of binding a fresh result: fwdTriSolve!(L, z)
// rewrites z in place, so the call carries no result symbol and index 0
// resolves to nothing. The role matmulTriples' first triple gives the
// result is played here by the vector argument itself.
//
//   - (matrix, vector, ROW_ROW): the overwritten vector's row permutation
//     equals the matrix's row permutation — same reasoning as
//     matmulTriples, with the vector argument standing in for the
//     absent result.
//   - (matrix, vector, COL_ROW_INVERSE): unchanged from matmulTriples.
func inPlaceMatVecTriples() []Triple {
	return []Triple{
		{Idx1: 1, Idx2: 2, Relation: color.RowRow},
		{Idx1: 1, Idx2: 2, Relation: color.ColRowInverse},
	}
}

// New returns a Registry seeded with the builtins a PCG-style
// preconditioned solver loop exercises: assignment, sparse
// matrix-vector multiply, a distributive dot product, in-place
// triangular solves, vector axpy, and one deliberately non-distributive
// marker used by the negative test scenarios.
func New() *Registry {
	r := NewEmpty()
	r.RegisterAssign()

	matVec := []host.ArrayKind{host.SparseMatrix, host.Vector}

	// Ap = A * p
	r.Register("", "*", matVec, Descriptor{Distributive: true, Triples: matmulTriples()})

	// fwdTriSolve!(L, z) / bwdTriSolve!(U, z): in-place triangular solve;
	// z is overwritten, so it plays the result role that matmulTriples
	// gives to a call's own Idx1:0 result slot.
	r.Register("", "fwdTriSolve!", matVec, Descriptor{Distributive: true, Triples: inPlaceMatVecTriples()})
	r.Register("", "bwdTriSolve!", matVec, Descriptor{Distributive: true, Triples: inPlaceMatVecTriples()})

	// dot(u, v): both operands' row permutations must agree for the
	// inner product to remain well-defined after a shared reordering.
	vecVec := []host.ArrayKind{host.Vector, host.Vector}
	r.Register("", "dot", vecVec, Descriptor{
		Distributive: true,
		Triples:      []Triple{{Idx1: 1, Idx2: 2, Relation: color.RowRow}},
	})

	// x += alpha*p / r -= alpha*Ap / p = z + beta*p: elementwise
	// vector-vector combination requires equal row permutations.
	r.Register("", "+", vecVec, Descriptor{Distributive: true, Triples: []Triple{{Idx1: 1, Idx2: 2, Relation: color.RowRow}}})
	r.Register("", "-", vecVec, Descriptor{Distributive: true, Triples: []Triple{{Idx1: 1, Idx2: 2, Relation: color.RowRow}}})

	// unsafe_reshape! punches through the matrix's sparsity structure and
	// cannot be reasoned about by permutation alone: registered but
	// explicitly non-distributive (used by the negative scenarios).
	r.Register("", "unsafe_reshape!", []host.ArrayKind{host.SparseMatrix}, Descriptor{Distributive: false})

	return r
}
