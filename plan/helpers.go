package plan

import (
	"sort"

	"github.com/sparsolve/reorderplan/action"
	"github.com/sparsolve/reorderplan/color"
	"github.com/sparsolve/reorderplan/host"
	"github.com/sparsolve/reorderplan/idg"
	"github.com/sparsolve/reorderplan/ir"
)

// sortedSet returns the elements of s, deduplicated and lexicographically
// ordered, giving the stable total order the Design Notes require.
func sortedSet(s map[string]bool) []string {
	out := make([]string, 0, len(s))
	for sym := range s {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}

func toSet(symbols []string) map[string]bool {
	set := make(map[string]bool, len(symbols))
	for _, s := range symbols {
		set[s] = true
	}
	return set
}

// colorOf returns the colour of symbol's axis in g, or color.NoPerm if
// that vertex was never created (the array never participated in any
// constraint on that axis).
func colorOf(g *idg.IDG, symbol string, axis color.Axis) color.Color {
	v, ok := g.Lookup(symbol, axis)
	if !ok {
		return color.NoPerm
	}
	return v.Color
}

// classify partitions candidates (already minus FAR/exclusions) into the
// matrix and vector argument lists a reordering/reverse_reordering call
// lists, in lexicographic symbol order.
func classify(g *idg.IDG, symbolTypes map[string]host.ArrayKind, candidates []string) (matrices, vectors []string) {
	for _, sym := range candidates {
		switch symbolTypes[sym] {
		case host.SparseMatrix:
			if colorOf(g, sym, color.Row) != color.NoPerm || colorOf(g, sym, color.Column) != color.NoPerm {
				matrices = append(matrices, sym)
			}
		case host.Vector:
			if colorOf(g, sym, color.Row) != color.NoPerm {
				vectors = append(vectors, sym)
			}
		}
	}
	return matrices, vectors
}

func symbolArg(name string) ir.Expr { return &ir.Symbol{Name: name} }
func colorArg(c color.Color) ir.Expr { return &ir.Symbol{Name: c.String()} }
func delimiterArg() ir.Expr          { return &ir.Symbol{Name: DelimiterSymbol} }

// buildReorderingCall builds the post-decider reordering(...) call:
// fknob, status, each matrix with its two axis colours, the delimiter,
// then each vector with its row colour.
func buildReorderingCall(g *idg.IDG, fknob string, matrices, vectors []string) action.Statement {
	args := []ir.Expr{symbolArg(fknob), symbolArg(StatusSymbol)}
	for _, m := range matrices {
		args = append(args, symbolArg(m), colorArg(colorOf(g, m, color.Row)), colorArg(colorOf(g, m, color.Column)))
	}
	args = append(args, delimiterArg())
	for _, v := range vectors {
		args = append(args, symbolArg(v), colorArg(colorOf(g, v, color.Row)))
	}
	return action.Statement{Expr: &ir.Call{Callee: FnReordering, Args: args}}
}

// buildReverseReorderingCall builds the per-exit reverse_reordering(...)
// call: status, each matrix with its two axis colours, the delimiter,
// then each vector with its row colour.
func buildReverseReorderingCall(g *idg.IDG, matrices, vectors []string) action.Statement {
	args := []ir.Expr{symbolArg(StatusSymbol)}
	for _, m := range matrices {
		args = append(args, symbolArg(m), colorArg(colorOf(g, m, color.Row)), colorArg(colorOf(g, m, color.Column)))
	}
	args = append(args, delimiterArg())
	for _, v := range vectors {
		args = append(args, symbolArg(v), colorArg(colorOf(g, v, color.Row)))
	}
	return action.Statement{Expr: &ir.Call{Callee: FnReverseReordering, Args: args}}
}
