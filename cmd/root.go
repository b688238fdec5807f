// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"os"

	"github.com/katalvlaran/spantree/compare"
	"github.com/katalvlaran/spantree/config"
	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/graphio"
	"github.com/katalvlaran/spantree/report"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	rootCmd := createRootCommand(ctx, newInput(), version)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func createRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "spantree [graph file]",
		Short:        "Compute a minimum spanning tree with Kruskal's and Prim's algorithms and compare them.",
		Long:         "Reads a weighted undirected graph (text, CSV or YAML file, stdin, or interactive prompts),\nruns Kruskal's and Prim's algorithms and prints both trees with their total weights.",
		Args:         cobra.MaximumNArgs(1),
		RunE:         newRunCommand(ctx, input),
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.Flags().StringVar(&input.inputFormat, "format", "", "input format: text, csv or yaml (default: from file extension)")
	rootCmd.Flags().IntVar(&input.base, "base", graphio.DefaultBase, "label of the first vertex in input and output")
	rootCmd.Flags().StringVarP(&input.method, "method", "m", compare.MethodBoth, "algorithm to run: kruskal, prim or both")
	rootCmd.Flags().IntVarP(&input.root, "root", "r", graphio.DefaultBase, "root vertex for Prim's algorithm (input label)")
	rootCmd.Flags().StringVarP(&input.output, "output", "o", report.FormatText, "output format: text, yaml or json")
	rootCmd.Flags().BoolVar(&input.noNotes, "no-notes", false, "omit the algorithm commentary")
	rootCmd.Flags().BoolVarP(&input.interactive, "interactive", "i", false, "enter the graph with prompts")
	rootCmd.PersistentFlags().StringVarP(&input.configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringArrayVar(&input.envFiles, "env-file", []string{".env"}, "env files with SPANTREE_* settings")
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&input.jsonLogger, "json", false, "output logs in json format")
	rootCmd.AddCommand(newGenerateCommand(input))

	return rootCmd
}

func newRunCommand(ctx context.Context, input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd.Flags(), input, args)
		if err != nil {
			return err
		}
		if err := setupLogging(cfg.Log); err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"method": cfg.Solver.Method,
			"output": cfg.Output.Format,
			"base":   cfg.Input.Base,
		}).Debug("configuration resolved")

		g, err := readGraph(cfg.Input, input)
		if err != nil {
			return err
		}

		c, err := compare.Run(ctx, g,
			compare.WithMethod(cfg.Solver.Method),
			compare.WithRoot(cfg.Solver.Root-cfg.Input.Base),
			compare.WithLogger(log.StandardLogger()),
		)
		if err != nil {
			return errors.WithMessage(err, "compute minimum spanning tree")
		}
		if c.PrimErr != nil {
			log.Warn("graph is not connected")
		}

		return report.New(cmd.OutOrStdout(),
			report.WithFormat(cfg.Output.Format),
			report.WithBase(cfg.Input.Base),
			report.WithNotes(cfg.Output.Notes),
		).Render(c)
	}
}

// resolveConfig layers defaults, the config file, env files, SPANTREE_* variables
// and explicitly set flags, in that order.
func resolveConfig(flags *pflag.FlagSet, input *Input, args []string) (config.Config, error) {
	cfg := config.Default()
	if input.configPath != "" {
		var err error
		if cfg, err = config.Load(input.configPath); err != nil {
			return cfg, err
		}
	}
	if err := config.LoadEnvFiles(input.envFiles...); err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	if flags.Changed("format") {
		cfg.Input.Format = input.inputFormat
	}
	if flags.Changed("base") {
		cfg.Input.Base = input.base
		if !flags.Changed("root") {
			cfg.Solver.Root = input.base
		}
	}
	if flags.Changed("method") {
		cfg.Solver.Method = input.method
	}
	if flags.Changed("root") {
		cfg.Solver.Root = input.root
	}
	if flags.Changed("output") {
		cfg.Output.Format = input.output
	}
	if flags.Changed("no-notes") {
		cfg.Output.Notes = !input.noNotes
	}
	if input.verbose {
		cfg.Log.Level = log.DebugLevel.String()
	}
	if input.jsonLogger {
		cfg.Log.JSON = true
	}
	if len(args) > 0 {
		cfg.Input.Path = args[0]
	}

	return cfg, cfg.Validate()
}

func setupLogging(l config.Log) error {
	level, err := log.ParseLevel(l.Level)
	if err != nil {
		return errors.Wrap(config.ErrInvalidConfig, err.Error())
	}
	log.SetLevel(level)
	if l.JSON {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{})
	}

	return nil
}

func readGraph(in config.Input, input *Input) (*core.Graph, error) {
	opts := []graphio.Option{
		graphio.WithBase(in.Base),
		graphio.WithLogger(log.StandardLogger()),
	}
	switch {
	case in.Path != "":
		return graphio.Load(in.Path, in.Format, opts...)
	case input.Interactive():
		log.Debug("reading graph interactively")

		return graphio.NewPrompter(opts...).Graph()
	default:
		format := in.Format
		if format == "" {
			format = graphio.FormatText
		}
		log.WithField("format", format).Debug("reading graph from stdin")
		g, err := graphio.Read(input.Stdin(), format, opts...)

		return g, errors.WithMessage(err, "read stdin")
	}
}
