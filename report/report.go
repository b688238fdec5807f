// SPDX-License-Identifier: MIT

// Package report renders a compare.Comparison for people (text) or for other
// programs (YAML, JSON). It is a pure consumer: nothing here feeds back into
// the solvers.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/spantree/compare"
	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/prim_kruskal"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ErrUnknownFormat indicates an output format other than text, yaml or json.
var ErrUnknownFormat = errors.New("report: unknown format")

// Reporter writes comparisons to an io.Writer.
type Reporter struct {
	w      io.Writer
	format string
	base   int  // added to every vertex index on output
	notes  bool // append the fixed commentary
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithFormat selects FormatText (default), FormatYAML or FormatJSON.
func WithFormat(format string) Option {
	return func(r *Reporter) { r.format = format }
}

// WithBase shifts printed vertex labels; 1 prints vertices as 1..V.
func WithBase(base int) Option {
	return func(r *Reporter) { r.base = base }
}

// WithNotes toggles the algorithm commentary (default on).
func WithNotes(on bool) Option {
	return func(r *Reporter) { r.notes = on }
}

// New returns a Reporter writing to w.
func New(w io.Writer, opts ...Option) *Reporter {
	r := &Reporter{w: w, format: FormatText, notes: true}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Render writes c in the configured format.
func (r *Reporter) Render(c *compare.Comparison) error {
	switch r.format {
	case FormatText:
		_, err := io.WriteString(r.w, r.text(c))

		return err
	case FormatYAML:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(r.document(c)); err != nil {
			return err
		}

		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")

		return enc.Encode(r.document(c))
	default:
		return fmt.Errorf("%q: %w", r.format, ErrUnknownFormat)
	}
}

// edgeLine formats an edge as "src -- dst == weight" with labels shifted by base.
func (r *Reporter) edgeLine(e core.Edge) string {
	return fmt.Sprintf("%d -- %d == %d", e.Src+r.base, e.Dst+r.base, e.Weight)
}

func (r *Reporter) text(c *compare.Comparison) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Graph: %d vertices, %d edges\n", c.Vertices, c.Edges)

	if c.KruskalRan {
		b.WriteString("\nKruskal's Algorithm:\n")
		if c.Connected() {
			b.WriteString("Edges in the MST:\n")
		} else {
			fmt.Fprintf(&b, "Graph is not connected: %d components, %d of %d edges, minimum spanning forest:\n",
				c.Components, c.Kruskal.Len(), max(c.Vertices-1, 0))
		}
		r.writeEdges(&b, c.Kruskal)
	}

	if c.PrimRan {
		fmt.Fprintf(&b, "\nPrim's Algorithm (root %d):\n", c.Root+r.base)
		if c.PrimErr != nil {
			b.WriteString("Graph is not connected.\n")
			fmt.Fprintf(&b, "Unreachable from root: %s\n", r.labels(c.Unreached))
		} else {
			b.WriteString("Edges in the MST:\n")
			r.writeEdges(&b, c.Prim)
		}
	}

	if c.KruskalRan && c.PrimRan {
		fmt.Fprintf(&b, "\n%s\n", c.Verdict())
	}

	if r.notes {
		b.WriteString("\nComparison between Kruskal's and Prim's algorithms:\n")
		for i, n := range compare.Notes() {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "%s:\n", n.Title)
			for _, p := range n.Points {
				fmt.Fprintf(&b, "- %s\n", p)
			}
		}
	}

	return b.String()
}

// labels joins vertex indices as printed labels.
func (r *Reporter) labels(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v + r.base)
	}

	return strings.Join(parts, " ")
}

func (r *Reporter) writeEdges(b *strings.Builder, res prim_kruskal.Result) {
	for _, e := range res.Edges {
		b.WriteString(r.edgeLine(e))
		b.WriteString("\n")
	}
	fmt.Fprintf(b, "Total weight of MST: %d\n", res.Total)
}
