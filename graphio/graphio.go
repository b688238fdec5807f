// SPDX-License-Identifier: MIT

// Package graphio turns external edge lists into core.Graph values.
//
// Supported sources:
//
//	text  - whitespace separated tokens "V E s1 d1 w1 s2 d2 w2 ...", i.e. the
//	        answers of a Prompter session written one after another.
//	csv   - "src,dest,weight" rows, optional header, '#' comments.
//	yaml  - {vertices: V, base: B, edges: [{src, dest, weight}, ...]}.
//	Prompter - interactive questions on the terminal.
//
// Vertex labels in every source are offset by a base (default 1: the first
// vertex is "1"), and shifted to zero-based indices before core.NewGraph
// validates them. Out-of-range labels therefore surface as core.ErrInvalidEdge.
package graphio

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/spantree/core"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Input formats.
const (
	FormatText = "text"
	FormatCSV  = "csv"
	FormatYAML = "yaml"
)

// DefaultBase is the label of the first vertex in external input.
const DefaultBase = 1

var (
	// ErrFormat indicates malformed input; the wrapping message names the line or token.
	ErrFormat = errors.New("graphio: malformed input")

	// ErrUnknownFormat indicates a format name or file extension graphio cannot read.
	ErrUnknownFormat = errors.New("graphio: unknown input format")
)

type options struct {
	base        int
	vertexCount int // csv only; <= 0 infers from the largest label
	logger      logrus.FieldLogger
	ask         AskFunc
}

// Option configures readers and the Prompter.
type Option func(*options)

// WithBase sets the label of the first vertex (default DefaultBase).
func WithBase(base int) Option {
	return func(o *options) { o.base = base }
}

// WithVertexCount fixes V for CSV input instead of inferring it.
func WithVertexCount(n int) Option {
	return func(o *options) { o.vertexCount = n }
}

// WithLogger sets the logger for debug entries. By default nothing is logged.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) { o.logger = l }
}

func gatherOptions(opts []Option) options {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	o := options{base: DefaultBase, logger: discard, ask: defaultAsk}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// DetectFormat maps a file extension to a format; unknown extensions default to text.
func DetectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// Read parses r in the given format.
func Read(r io.Reader, format string, opts ...Option) (*core.Graph, error) {
	switch format {
	case FormatText:
		return ReadText(r, opts...)
	case FormatCSV:
		return ReadCSV(r, opts...)
	case FormatYAML:
		return ReadYAML(r, opts...)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "format %q", format)
	}
}

// Load opens path and parses it. An empty format is detected from the extension.
func Load(path, format string, opts ...Option) (*core.Graph, error) {
	if format == "" {
		format = DetectFormat(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open graph file %s", path)
	}
	defer f.Close()

	o := gatherOptions(opts)
	o.logger.WithFields(logrus.Fields{"path": path, "format": format}).Debug("reading graph")

	g, err := Read(f, format, opts...)
	if err != nil {
		return nil, errors.WithMessagef(err, "read %s", path)
	}
	o.logger.WithFields(logrus.Fields{
		"vertices": g.VertexCount(),
		"edges":    g.EdgeCount(),
	}).Debug("graph loaded")

	return g, nil
}
