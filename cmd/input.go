// SPDX-License-Identifier: MIT

package cmd

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Input contains the input for the root command
type Input struct {
	configPath  string
	envFiles    []string
	inputFormat string
	base        int
	method      string
	root        int
	output      string
	noNotes     bool
	interactive bool
	verbose     bool
	jsonLogger  bool

	stdin    io.Reader
	terminal func() bool
}

// newInput returns an Input reading from the process stdin.
func newInput() *Input {
	return &Input{
		stdin:    os.Stdin,
		terminal: stdinIsTerminal,
	}
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Stdin returns the reader used when no graph file is given.
func (i *Input) Stdin() io.Reader {
	if i.stdin == nil {
		return os.Stdin
	}

	return i.stdin
}

// Interactive reports whether the graph should be asked for with prompts.
func (i *Input) Interactive() bool {
	if i.interactive {
		return true
	}

	return i.terminal != nil && i.terminal()
}
