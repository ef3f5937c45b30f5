// Package trace provides ports.Tracer implementations. Tracing is a pure
// side channel: attaching, combining or dropping tracers never changes a
// solve result.
package trace

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"svw.info/renban/internal/domain"
	"svw.info/renban/internal/ports"
)

// Progress logs recursion-depth milestones: every time the search reaches a
// new maximum depth, with elapsed time since the first node.
type Progress struct {
	Log   *slog.Logger
	max   int
	start time.Time
}

func NewProgress(log *slog.Logger) *Progress { return &Progress{Log: log} }

func (p *Progress) Node(depth int, g domain.Grid) {
	if p.start.IsZero() {
		p.start = time.Now()
		p.max = -1
	}
	if depth > p.max {
		p.max = depth
		p.Log.Info("search depth",
			"depth", depth,
			"elapsed", time.Since(p.start).Round(time.Millisecond),
		)
	}
}

// Dumper writes the depth and partial grid of every search node to W,
// one block per node.
type Dumper struct {
	W io.Writer
}

func (d *Dumper) Node(depth int, g domain.Grid) {
	fmt.Fprintf(d.W, "%d\n%s\n", depth, g)
}

// Multi fans each node event out to several tracers in order.
type Multi []ports.Tracer

func (m Multi) Node(depth int, g domain.Grid) {
	for _, t := range m {
		t.Node(depth, g)
	}
}
