// SPDX-License-Identifier: MIT

package graphio

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/spantree/core"
	"github.com/pkg/errors"
)

// ReadCSV parses "src,dest,weight" rows. A first row with no integer field is
// treated as a header; any other non-integer field is an ErrFormat. Lines starting with '#' are comments.
// Without WithVertexCount, V is the largest zero-based index plus one.
func ReadCSV(r io.Reader, opts ...Option) (*core.Graph, error) {
	o := gatherOptions(opts)
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true

	var (
		edges   []core.Edge
		highest = -1
	)
	for row := 0; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(ErrFormat, "%v", err)
		}
		line, _ := cr.FieldPos(0)
		if row == 0 && isHeader(rec) {
			continue
		}

		var t [3]int64
		for j, field := range rec {
			if t[j], err = strconv.ParseInt(strings.TrimSpace(field), 10, 64); err != nil {
				return nil, errors.Wrapf(ErrFormat, "line %d, column %d: %q is not an integer", line, j+1, field)
			}
		}
		e := core.Edge{Src: int(t[0]) - o.base, Dst: int(t[1]) - o.base, Weight: t[2]}
		highest = max(highest, e.Src, e.Dst)
		edges = append(edges, e)
	}

	n := o.vertexCount
	if n <= 0 {
		n = highest + 1
	}
	o.logger.WithField("vertices", n).Debug("csv vertex count")

	return core.NewGraph(n, edges)
}

// isHeader reports whether no field of rec parses as an integer.
func isHeader(rec []string) bool {
	for _, field := range rec {
		if _, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64); err == nil {
			return false
		}
	}

	return true
}
