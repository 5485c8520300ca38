package propagate

import (
	"github.com/sparsolve/reorderplan/color"
	"github.com/sparsolve/reorderplan/idg"
)

// Diagnostic records a colour clash: propagation reached Vertex
// expecting Wanted, but it already carried Existing. This is a
// discovery, not a failure — see package doc.
type Diagnostic struct {
	Vertex   *idg.Vertex
	Existing color.Color
	Wanted   color.Color
}

// Option configures a single Propagate call.
type Option func(*config)

type config struct {
	onDiagnostic func(Diagnostic)
}

func newConfig(opts ...Option) config {
	var c config
	for _, o := range opts {
		o(&c)
	}
	return c
}

// WithOnDiagnostic installs fn to be called, in discovery order, for
// every conflict-as-equality diagnostic Propagate emits. It is optional;
// Propagate's return value already carries every diagnostic.
func WithOnDiagnostic(fn func(Diagnostic)) Option {
	return func(c *config) { c.onDiagnostic = fn }
}
