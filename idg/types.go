package idg

import "github.com/sparsolve/reorderplan/color"

// Neighbor is one symmetric edge endpoint: the vertex on the other side
// and whether traversing it applies the inversion rule.
type Neighbor struct {
	Vertex  *Vertex
	Inverse bool
}

// Vertex is one (array symbol, axis) pair. Colour starts at color.NoPerm
// and is mutated in place by propagate.
type Vertex struct {
	Symbol    string
	Axis      color.Axis
	Color     color.Color
	Neighbors []Neighbor
}

// AddNeighbor appends n to v's neighbour list. It does not deduplicate
// parallel edges: a symbol pair touched by two distinct calls legitimately
// gets two edges, and propagate treats both identically (the second visit
// of an already-coloured vertex is a no-op or a conflict, never a panic).
func (v *Vertex) AddNeighbor(n Neighbor) {
	v.Neighbors = append(v.Neighbors, n)
}

// IDG is the Inter-Dependence Graph: two deduplicating indices (symbol ->
// row vertex, symbol -> column vertex) plus the designated seed symbol.
type IDG struct {
	Seed string

	row map[string]*Vertex
	col map[string]*Vertex
}

// New creates an empty IDG for the given seed symbol. The seed's
// vertices are not created until the first VertexFor(seed, ...) call;
// propagate.Propagate colours them when propagation starts.
func New(seed string) *IDG {
	return &IDG{
		Seed: seed,
		row:  make(map[string]*Vertex),
		col:  make(map[string]*Vertex),
	}
}

// index returns the row or column map for axis.
func (g *IDG) index(axis color.Axis) map[string]*Vertex {
	if axis == color.Column {
		return g.col
	}
	return g.row
}

// VertexFor returns the vertex for (symbol, axis), creating it on first
// sight and returning the existing one on every later call.
func (g *IDG) VertexFor(symbol string, axis color.Axis) *Vertex {
	idx := g.index(axis)
	if v, ok := idx[symbol]; ok {
		return v
	}
	v := &Vertex{Symbol: symbol, Axis: axis}
	idx[symbol] = v
	return v
}

// Lookup returns the existing vertex for (symbol, axis) without creating
// one, and whether it was found.
func (g *IDG) Lookup(symbol string, axis color.Axis) (*Vertex, bool) {
	v, ok := g.index(axis)[symbol]
	return v, ok
}

// AddEdge creates (or finds) the vertices for (sym1, axis1) and (sym2,
// axis2) and inserts a single undirected edge between them: both
// directions are recorded with the same inverse flag. A self-edge
// (identical vertex on both sides) is recorded once; it carries no new
// information but is harmless for propagate to revisit.
func (g *IDG) AddEdge(sym1 string, axis1 color.Axis, sym2 string, axis2 color.Axis, inverse bool) {
	v1 := g.VertexFor(sym1, axis1)
	v2 := g.VertexFor(sym2, axis2)
	v1.AddNeighbor(Neighbor{Vertex: v2, Inverse: inverse})
	if v1 != v2 {
		v2.AddNeighbor(Neighbor{Vertex: v1, Inverse: inverse})
	}
}

// SeedRowVertex returns (creating if necessary) the seed's row vertex.
func (g *IDG) SeedRowVertex() *Vertex { return g.VertexFor(g.Seed, color.Row) }

// SeedColVertex returns (creating if necessary) the seed's column vertex.
func (g *IDG) SeedColVertex() *Vertex { return g.VertexFor(g.Seed, color.Column) }

// RowVertices returns every row-axis vertex, ordered lexicographically by
// symbol for deterministic iteration (Design Note, "Determinism of
// emitted argument order").
func (g *IDG) RowVertices() []*Vertex { return sortedValues(g.row) }

// ColVertices returns every column-axis vertex, ordered lexicographically
// by symbol.
func (g *IDG) ColVertices() []*Vertex { return sortedValues(g.col) }

func sortedValues(m map[string]*Vertex) []*Vertex {
	out := make([]*Vertex, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sortVertices(out)
	return out
}
