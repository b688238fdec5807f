// SPDX-License-Identifier: MIT

package graphio

import (
	"io"

	"github.com/katalvlaran/spantree/core"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Document is the YAML graph layout.
//
//	vertices: 4
//	base: 1          # optional, overrides WithBase
//	edges:
//	  - {src: 1, dest: 2, weight: 10}
type Document struct {
	Vertices int         `yaml:"vertices"`
	Base     *int        `yaml:"base,omitempty"`
	Edges    []EdgeEntry `yaml:"edges"`
}

// EdgeEntry is one edge of a Document.
type EdgeEntry struct {
	Src    int   `yaml:"src"`
	Dest   int   `yaml:"dest"`
	Weight int64 `yaml:"weight"`
}

// ReadYAML parses a single Document. Unknown keys are rejected.
func ReadYAML(r io.Reader, opts ...Option) (*core.Graph, error) {
	o := gatherOptions(opts)
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, errors.Wrap(ErrFormat, "empty document")
		}

		return nil, errors.Wrapf(ErrFormat, "%v", err)
	}
	if doc.Vertices < 0 {
		return nil, errors.Wrapf(ErrFormat, "negative vertex count %d", doc.Vertices)
	}

	base := o.base
	if doc.Base != nil {
		base = *doc.Base
	}
	edges := make([]core.Edge, len(doc.Edges))
	for i, e := range doc.Edges {
		edges[i] = core.Edge{Src: e.Src - base, Dst: e.Dest - base, Weight: e.Weight}
	}

	return core.NewGraph(doc.Vertices, edges)
}
