package propagate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparsolve/reorderplan/color"
	"github.com/sparsolve/reorderplan/idg"
	"github.com/sparsolve/reorderplan/propagate"
)

func TestSeedColoring(t *testing.T) {
	g := idg.New("A")
	diags := propagate.Propagate(g)
	assert.Empty(t, diags)

	row, _ := g.Lookup("A", color.Row)
	col, _ := g.Lookup("A", color.Column)
	assert.Equal(t, color.RowPerm, row.Color, "seed row vertex must be ROW_PERM")
	assert.Equal(t, color.ColPerm, col.Color, "seed column vertex must be COL_PERM")
}

func TestPropagationFollowsEdges(t *testing.T) {
	g := idg.New("A")
	g.AddEdge("A", color.Row, "p", color.Row, false)
	g.AddEdge("A", color.Column, "p", color.Row, true)

	diags := propagate.Propagate(g)

	pRow, ok := g.Lookup("p", color.Row)
	require.True(t, ok)
	// p.row is reachable from both A.row (untransposed: wants ROW_PERM) and
	// A.col (inverted: wants the inverse of COL_PERM, i.e. COL_INV_PERM).
	// Whichever edge is expanded first colours p.row; expanding p.row's own
	// neighbour list then re-raises the same clash from the other
	// direction too, so both edges end up contributing one diagnostic each.
	aCol, ok := g.Lookup("A", color.Column)
	require.True(t, ok)

	assert.Equal(t, color.RowPerm, pRow.Color, "A.row is dequeued before A.col, so it colours p.row first")
	require.Len(t, diags, 2, "both directions of the clash are discovered")
	assert.Same(t, pRow, diags[0].Vertex)
	assert.Equal(t, color.RowPerm, diags[0].Existing)
	assert.Equal(t, color.ColInvPerm, diags[0].Wanted)
	assert.Same(t, aCol, diags[1].Vertex)
	assert.Equal(t, color.ColPerm, diags[1].Existing)
	assert.Equal(t, color.RowInvPerm, diags[1].Wanted)
}

func TestIdempotence(t *testing.T) {
	g := idg.New("A")
	g.AddEdge("A", color.Row, "p", color.Row, false)
	g.AddEdge("A", color.Column, "p", color.Row, true)

	first := propagate.Propagate(g)
	second := propagate.Propagate(g)
	assert.Equal(t, first, second, "re-running on an already-coloured graph changes nothing")
}

func TestAgreementContinuesTraversal(t *testing.T) {
	g := idg.New("A")
	g.AddEdge("A", color.Row, "L", color.Row, false)
	g.AddEdge("L", color.Row, "U", color.Row, false)

	diags := propagate.Propagate(g)
	assert.Empty(t, diags)

	lRow, _ := g.Lookup("L", color.Row)
	uRow, _ := g.Lookup("U", color.Row)
	assert.Equal(t, color.RowPerm, lRow.Color)
	assert.Equal(t, color.RowPerm, uRow.Color, "agreement at L must still propagate onward to U")
}
