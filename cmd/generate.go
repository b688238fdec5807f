// SPDX-License-Identifier: MIT

package cmd

import (
	"strings"

	"github.com/katalvlaran/spantree/builder"
	"github.com/katalvlaran/spantree/config"
	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/graphio"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Topology names accepted by --kind.
const (
	kindComplete = "complete"
	kindPath     = "path"
	kindCycle    = "cycle"
	kindStar     = "star"
	kindWheel    = "wheel"
	kindGrid     = "grid"
	kindRandom   = "random"
)

// generateInput holds the flags of the generate subcommand.
type generateInput struct {
	kind      string
	vertices  int
	rows      int
	cols      int
	prob      float64
	seed      int64
	minWeight int64
	maxWeight int64
	isolated  int
	format    string
	base      int
	outPath   string
}

func newGenerateCommand(input *Input) *cobra.Command {
	gi := &generateInput{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a generated weighted graph in any input format",
		Long: "Generates a graph of a given topology with uniformly random integer weights\n" +
			"and writes it as text, CSV or YAML, ready to be fed back to spantree.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level := log.InfoLevel
			if input.verbose {
				level = log.DebugLevel
			}
			if err := setupLogging(config.Log{Level: level.String(), JSON: input.jsonLogger}); err != nil {
				return err
			}
			g, err := gi.build()
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{
				"kind":     gi.kind,
				"vertices": g.VertexCount(),
				"edges":    g.EdgeCount(),
			}).Debug("graph generated")

			opts := []graphio.Option{graphio.WithBase(gi.base)}
			if gi.outPath != "" {
				return graphio.Save(gi.outPath, gi.format, g, opts...)
			}
			format := gi.format
			if format == "" {
				format = graphio.FormatText
			}

			return graphio.Write(cmd.OutOrStdout(), g, format, opts...)
		},
	}
	cmd.Flags().StringVarP(&gi.kind, "kind", "k", kindRandom, "topology: complete, path, cycle, star, wheel, grid or random")
	cmd.Flags().IntVarP(&gi.vertices, "vertices", "n", 10, "number of vertices (all kinds but grid)")
	cmd.Flags().IntVar(&gi.rows, "rows", 3, "grid rows")
	cmd.Flags().IntVar(&gi.cols, "cols", 3, "grid columns")
	cmd.Flags().Float64VarP(&gi.prob, "probability", "p", 0.3, "edge probability for random graphs")
	cmd.Flags().Int64Var(&gi.seed, "seed", 1, "random seed")
	cmd.Flags().Int64Var(&gi.minWeight, "min-weight", 1, "smallest edge weight")
	cmd.Flags().Int64Var(&gi.maxWeight, "max-weight", 100, "largest edge weight")
	cmd.Flags().IntVar(&gi.isolated, "isolated", 0, "extra vertices without edges, appended last")
	cmd.Flags().StringVar(&gi.format, "format", "", "output format: text, csv or yaml (default: from --out extension, else text)")
	cmd.Flags().IntVar(&gi.base, "base", graphio.DefaultBase, "label of the first vertex")
	cmd.Flags().StringVar(&gi.outPath, "out", "", "write to this file instead of stdout")

	return cmd
}

// build validates the flags and runs the builder.
func (gi *generateInput) build() (*core.Graph, error) {
	if gi.maxWeight < gi.minWeight {
		return nil, errors.Errorf("--max-weight %d is below --min-weight %d", gi.maxWeight, gi.minWeight)
	}
	if !builder.UniformRange(gi.minWeight, gi.maxWeight) {
		return nil, errors.Errorf("weight range [%d, %d] is too wide", gi.minWeight, gi.maxWeight)
	}
	var con builder.Constructor
	switch strings.ToLower(gi.kind) {
	case kindComplete:
		con = builder.Complete(gi.vertices)
	case kindPath:
		con = builder.Path(gi.vertices)
	case kindCycle:
		con = builder.Cycle(gi.vertices)
	case kindStar:
		con = builder.Star(gi.vertices)
	case kindWheel:
		con = builder.Wheel(gi.vertices)
	case kindGrid:
		con = builder.Grid(gi.rows, gi.cols)
	case kindRandom:
		con = builder.RandomSparse(gi.vertices, gi.prob)
	default:
		return nil, errors.Errorf("unknown kind %q", gi.kind)
	}
	cons := []builder.Constructor{con}
	if gi.isolated > 0 {
		cons = append(cons, builder.Isolated(gi.isolated))
	}
	opts := []builder.Option{
		builder.WithSeed(gi.seed),
		builder.WithWeightFn(builder.UniformWeightFn(gi.minWeight, gi.maxWeight)),
	}
	g, err := builder.BuildGraph(opts, cons...)

	return g, errors.WithMessage(err, "generate graph")
}
