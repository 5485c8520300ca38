package idg

import "sort"

// sortVertices orders vertices lexicographically by symbol, matching the
// stable total order the Design Notes require for reproducible output.
func sortVertices(vs []*Vertex) {
	sort.Slice(vs, func(i, j int) bool { return vs[i].Symbol < vs[j].Symbol })
}
