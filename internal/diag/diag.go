// Package diag provides the CLI's --verbose tracing, grounded on
// SPEC_FULL.md §10.2: the teacher prints straight through fmt with no
// logging layer at all, so dialecte reaches for the standard library's
// structured logger rather than inventing a logging dependency the pack
// never shows a better fit for.
package diag

import (
	"io"
	"log/slog"

	"github.com/hipparcos/dialecte/internal/ast"
	"github.com/hipparcos/dialecte/internal/value"
)

// Tracer emits two structured lines per top-level form evaluated (the form
// before evaluation, its outcome after), active only when the CLI's
// --verbose flag is set.
type Tracer struct {
	log     *slog.Logger
	enabled bool
}

// New builds a Tracer writing to w. enabled false makes every method a
// no-op, so callers don't need to guard calls with a flag check.
func New(w io.Writer, enabled bool) *Tracer {
	if !enabled {
		return &Tracer{enabled: false}
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})

	return &Tracer{log: slog.New(handler), enabled: true}
}

// Form logs a top-level node before it is evaluated: its position and tag.
func (t *Tracer) Form(n *ast.Node) {
	if !t.enabled || n == nil {
		return
	}
	t.log.Debug("eval", "line", n.Line, "col", n.Col, "tag", n.Tag)
}

// Result logs the outcome of evaluating a top-level form: the resulting
// value's kind and printed form on success, or the error on failure.
func (t *Tracer) Result(v *value.Value, err error) {
	if !t.enabled {
		return
	}
	if err != nil {
		t.log.Debug("eval.error", "err", err)

		return
	}
	if v == nil {
		return
	}
	t.log.Debug("eval.result", "kind", v.Kind, "value", v.String())
}
