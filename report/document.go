// SPDX-License-Identifier: MIT

package report

import (
	"github.com/katalvlaran/spantree/compare"
	"github.com/katalvlaran/spantree/prim_kruskal"
)

// document is the machine-readable shape shared by the YAML and JSON formats.
type document struct {
	Vertices     int            `json:"vertices" yaml:"vertices"`
	Edges        int            `json:"edges" yaml:"edges"`
	Base         int            `json:"base" yaml:"base"`
	Kruskal      *solverDoc     `json:"kruskal,omitempty" yaml:"kruskal,omitempty"`
	Prim         *solverDoc     `json:"prim,omitempty" yaml:"prim,omitempty"`
	Components   int            `json:"components" yaml:"components"`
	Connected    bool           `json:"connected" yaml:"connected"`
	WeightsAgree bool           `json:"weights_agree" yaml:"weights_agree"`
	Verdict      string         `json:"verdict" yaml:"verdict"`
	Notes        []compare.Note `json:"notes,omitempty" yaml:"notes,omitempty"`
}

type solverDoc struct {
	Root     *int      `json:"root,omitempty" yaml:"root,omitempty"`
	Edges    []edgeDoc `json:"mst" yaml:"mst"`
	Total    int64     `json:"total" yaml:"total"`
	Spanning bool      `json:"spanning" yaml:"spanning"`
	Error    string    `json:"error,omitempty" yaml:"error,omitempty"`

	Unreachable []int `json:"unreachable,omitempty" yaml:"unreachable,omitempty"`
}

type edgeDoc struct {
	Src    int   `json:"src" yaml:"src"`
	Dst    int   `json:"dest" yaml:"dest"`
	Weight int64 `json:"weight" yaml:"weight"`
}

func (r *Reporter) document(c *compare.Comparison) document {
	d := document{
		Vertices:     c.Vertices,
		Edges:        c.Edges,
		Base:         r.base,
		Components:   c.Components,
		Connected:    c.Connected(),
		WeightsAgree: c.WeightsAgree(),
		Verdict:      c.Verdict(),
	}
	if c.KruskalRan {
		d.Kruskal = r.solver(c.Kruskal, c.Vertices)
	}
	if c.PrimRan {
		d.Prim = r.solver(c.Prim, c.Vertices)
		root := c.Root + r.base
		d.Prim.Root = &root
		if c.PrimErr != nil {
			d.Prim.Error = c.PrimErr.Error()
			d.Prim.Spanning = false
			for _, v := range c.Unreached {
				d.Prim.Unreachable = append(d.Prim.Unreachable, v+r.base)
			}
		}
	}
	if r.notes {
		d.Notes = compare.Notes()
	}

	return d
}

func (r *Reporter) solver(res prim_kruskal.Result, vertices int) *solverDoc {
	s := &solverDoc{
		Edges:    make([]edgeDoc, 0, res.Len()),
		Total:    res.Total,
		Spanning: res.Spanning(vertices),
	}
	for _, e := range res.Edges {
		s.Edges = append(s.Edges, edgeDoc{Src: e.Src + r.base, Dst: e.Dst + r.base, Weight: e.Weight})
	}

	return s
}
