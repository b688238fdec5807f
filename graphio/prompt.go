// SPDX-License-Identifier: MIT

package graphio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/katalvlaran/spantree/core"
	"github.com/pkg/errors"
)

// AskFunc asks one question; survey.AskOne satisfies it.
type AskFunc func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

func defaultAsk(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
	return survey.AskOne(p, response, opts...)
}

// WithAsk replaces the question function, e.g. with a scripted one in tests.
func WithAsk(ask AskFunc) Option {
	return func(o *options) { o.ask = ask }
}

// Prompter collects a graph interactively: vertex count, edge count, then one
// "src dest weight" answer per edge.
type Prompter struct {
	o options
}

// NewPrompter returns a Prompter; labels are read with the configured base.
func NewPrompter(opts ...Option) *Prompter {
	return &Prompter{o: gatherOptions(opts)}
}

// Graph asks the questions and builds the graph.
func (p *Prompter) Graph() (*core.Graph, error) {
	v, err := p.askCount("Enter the number of vertices:")
	if err != nil {
		return nil, err
	}
	e, err := p.askCount("Enter the number of edges:")
	if err != nil {
		return nil, err
	}

	validate := edgeValidator(p.o.base, v)
	edges := make([]core.Edge, 0, min(e, 1<<16))
	for i := 0; i < e; i++ {
		var answer string
		q := &survey.Input{
			Message: fmt.Sprintf("Edge %d (src dest weight):", i+1),
			Help:    fmt.Sprintf("Vertices are numbered %d..%d.", p.o.base, v-1+p.o.base),
		}
		if err := p.o.ask(q, &answer, survey.WithValidator(validate)); err != nil {
			return nil, errors.Wrapf(err, "edge %d", i+1)
		}
		edge, err := parseEdgeLine(answer, p.o.base)
		if err != nil {
			return nil, errors.WithMessagef(err, "edge %d", i+1)
		}
		edges = append(edges, edge)
	}
	p.o.logger.WithField("edges", len(edges)).Debug("graph entered interactively")

	return core.NewGraph(v, edges)
}

func (p *Prompter) askCount(message string) (int, error) {
	var answer string
	q := &survey.Input{Message: message}
	if err := p.o.ask(q, &answer, survey.WithValidator(survey.Required), survey.WithValidator(countValidator)); err != nil {
		return 0, errors.Wrap(err, strings.TrimSuffix(message, ":"))
	}
	n, err := parseCount(answer)
	if err != nil {
		return 0, errors.WithMessage(err, strings.TrimSuffix(message, ":"))
	}

	return n, nil
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, errors.Wrapf(ErrFormat, "%q is not a non-negative integer", s)
	}

	return n, nil
}

func countValidator(ans interface{}) error {
	s, _ := ans.(string)
	_, err := parseCount(s)

	return err
}

// parseEdgeLine reads "src dest weight" and shifts labels to zero-based indices.
func parseEdgeLine(s string, base int) (core.Edge, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return core.Edge{}, errors.Wrapf(ErrFormat, "want \"src dest weight\", got %q", s)
	}
	var t [3]int64
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return core.Edge{}, errors.Wrapf(ErrFormat, "%q is not an integer", f)
		}
		t[i] = v
	}

	return core.Edge{Src: int(t[0]) - base, Dst: int(t[1]) - base, Weight: t[2]}, nil
}

// edgeValidator rejects malformed lines and labels outside [base, base+v).
func edgeValidator(base, v int) survey.Validator {
	return func(ans interface{}) error {
		s, _ := ans.(string)
		e, err := parseEdgeLine(s, base)
		if err != nil {
			return err
		}
		if e.Src < 0 || e.Src >= v || e.Dst < 0 || e.Dst >= v {
			return errors.Wrapf(core.ErrInvalidEdge, "vertices must be within %d..%d", base, v-1+base)
		}

		return nil
	}
}
