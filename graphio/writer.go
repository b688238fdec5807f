// SPDX-License-Identifier: MIT

package graphio

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/spantree/core"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// csvHeader is written as the first CSV row and skipped again by ReadCSV.
var csvHeader = []string{"src", "dest", "weight"}

// Write serialises g in the given format so that Read with the same base
// returns an equal graph. CSV carries no vertex count: trailing isolated
// vertices are lost unless the reader is given WithVertexCount.
func Write(w io.Writer, g *core.Graph, format string, opts ...Option) error {
	switch format {
	case FormatText:
		return WriteText(w, g, opts...)
	case FormatCSV:
		return WriteCSV(w, g, opts...)
	case FormatYAML:
		return WriteYAML(w, g, opts...)
	default:
		return errors.Wrapf(ErrUnknownFormat, "format %q", format)
	}
}

// Save writes g to path, creating parent directories. An empty format is
// detected from the extension.
func Save(path, format string, g *core.Graph, opts ...Option) error {
	if format == "" {
		format = DetectFormat(path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create directory")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create graph file %s", path)
	}
	if err := Write(f, g, format, opts...); err != nil {
		f.Close()

		return errors.WithMessagef(err, "write %s", path)
	}

	return f.Close()
}

// WriteText writes V and E on their own lines, then one "src dest weight" triple per line.
func WriteText(w io.Writer, g *core.Graph, opts ...Option) error {
	o := gatherOptions(opts)
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n%d\n", g.VertexCount(), g.EdgeCount())
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%d %d %d\n", e.Src+o.base, e.Dst+o.base, e.Weight)
	}

	return bw.Flush()
}

// WriteCSV writes a header row followed by one row per edge.
func WriteCSV(w io.Writer, g *core.Graph, opts ...Option) error {
	o := gatherOptions(opts)
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return errors.Wrap(err, "write header")
	}
	for i, e := range g.Edges() {
		row := []string{
			strconv.Itoa(e.Src + o.base),
			strconv.Itoa(e.Dst + o.base),
			strconv.FormatInt(e.Weight, 10),
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "write row %d", i+1)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteYAML writes a Document with an explicit base.
func WriteYAML(w io.Writer, g *core.Graph, opts ...Option) error {
	o := gatherOptions(opts)
	base := o.base
	doc := Document{
		Vertices: g.VertexCount(),
		Base:     &base,
		Edges:    make([]EdgeEntry, 0, g.EdgeCount()),
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, EdgeEntry{Src: e.Src + base, Dest: e.Dst + base, Weight: e.Weight})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "encode yaml")
	}

	return enc.Close()
}
