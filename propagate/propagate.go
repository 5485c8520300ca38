package propagate

import (
	"github.com/sparsolve/reorderplan/color"
	"github.com/sparsolve/reorderplan/idg"
)

// queueItem is a vertex waiting to have its neighbours expanded.
type queueItem struct {
	vertex *idg.Vertex
}

// walker encapsulates the BFS state: a FIFO frontier and the visited
// set that guarantees each vertex expands at most once.
type walker struct {
	opts        config
	queue       []queueItem
	visited     map[*idg.Vertex]bool
	diagnostics []Diagnostic
}

// Propagate colours g starting from its seed's row and column vertices
// (pre-colouring them RowPerm / ColPerm, idempotently, regardless of
// caller state) and returns every conflict-as-equality diagnostic
// encountered, in discovery order.
//
// A single shared visited set spans both the row-seed and column-seed
// traversals, so every vertex is expanded at most once; termination is
// therefore guaranteed for any finite graph.
func Propagate(g *idg.IDG, opts ...Option) []Diagnostic {
	cfg := newConfig(opts...)
	w := &walker{
		opts:    cfg,
		visited: make(map[*idg.Vertex]bool),
	}

	seedRow := g.SeedRowVertex()
	seedCol := g.SeedColVertex()
	seedRow.Color = color.RowPerm
	seedCol.Color = color.ColPerm

	w.enqueue(seedRow)
	w.enqueue(seedCol)
	w.loop()

	return w.diagnostics
}

// enqueue marks v visited and adds it to the frontier, unless it has
// already been expanded in this invocation.
func (w *walker) enqueue(v *idg.Vertex) {
	if w.visited[v] {
		return
	}
	w.visited[v] = true
	w.queue = append(w.queue, queueItem{vertex: v})
}

// loop drains the queue, expanding each vertex's neighbours exactly once.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.expand(item.vertex)
	}
}

// expand applies the inversion rule across every edge out of u, and
// branches three ways on the neighbour's current colour: uncoloured,
// already agreeing, or conflicting.
func (w *walker) expand(u *idg.Vertex) {
	for _, n := range u.Neighbors {
		wanted := u.Color
		if n.Inverse {
			wanted = color.Inverse(u.Color)
		}
		v := n.Vertex

		switch {
		case v.Color == color.NoPerm:
			v.Color = wanted
			w.enqueue(v)
		case v.Color == wanted:
			w.enqueue(v)
		default:
			d := Diagnostic{Vertex: v, Existing: v.Color, Wanted: wanted}
			w.diagnostics = append(w.diagnostics, d)
			if w.opts.onDiagnostic != nil {
				w.opts.onDiagnostic(d)
			}
			// Conflict: stop propagating through v.
		}
	}
}
