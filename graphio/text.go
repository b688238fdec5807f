// SPDX-License-Identifier: MIT

package graphio

import (
	"bufio"
	"io"
	"strconv"

	"github.com/katalvlaran/spantree/core"
	"github.com/pkg/errors"
)

// ReadText parses "V E" followed by E "src dest weight" triples, all
// whitespace separated. Line breaks carry no meaning; trailing tokens are an error.
func ReadText(r io.Reader, opts ...Option) (*core.Graph, error) {
	o := gatherOptions(opts)
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	pos := 0
	next := func(what string) (int64, error) {
		pos++
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, errors.Wrap(err, "scan")
			}

			return 0, errors.Wrapf(ErrFormat, "token %d (%s): unexpected end of input", pos, what)
		}
		v, err := strconv.ParseInt(sc.Text(), 10, 64)
		if err != nil {
			return 0, errors.Wrapf(ErrFormat, "token %d (%s): %q is not an integer", pos, what, sc.Text())
		}

		return v, nil
	}

	v, err := next("vertex count")
	if err != nil {
		return nil, err
	}
	e, err := next("edge count")
	if err != nil {
		return nil, err
	}
	if v < 0 || e < 0 {
		return nil, errors.Wrapf(ErrFormat, "negative count (V=%d, E=%d)", v, e)
	}

	edges := make([]core.Edge, 0, min(e, 1<<16))
	for i := int64(0); i < e; i++ {
		var t [3]int64
		for j, what := range [3]string{"src", "dest", "weight"} {
			if t[j], err = next(what); err != nil {
				return nil, errors.WithMessagef(err, "edge %d", i+1)
			}
		}
		edges = append(edges, core.Edge{Src: int(t[0]) - o.base, Dst: int(t[1]) - o.base, Weight: t[2]})
	}
	if sc.Scan() {
		return nil, errors.Wrapf(ErrFormat, "token %d: trailing data %q", pos+1, sc.Text())
	}

	return core.NewGraph(int(v), edges)
}
