// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/structviz"
	"github.com/cockroachdb/structviz/render"
	"github.com/spf13/cobra"
)

var runConfig struct {
	exec   string
	frames bool
	diff   bool
	table  bool
	plot   bool
	url    bool
	codec  string
}

var runCmd = &cobra.Command{
	Use:   "run [script] (flags)",
	Short: "run a command script against a structure",
	Long: `
Run a command script against a new structure and draw the result. The script
is read from the given file ("-" for stdin) or from --exec. Commands are
separated by newlines or ';'; the structure is initialized before the first
command.

  structviz run -k bst -e 'insert 5 3 8 7 9; remove 5; in-order'
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := structviz.ParseKind(kindName)
		if err != nil {
			return err
		}
		script := runConfig.exec
		if len(args) == 1 {
			var data []byte
			if args[0] == "-" {
				data, err = io.ReadAll(os.Stdin)
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return err
			}
			script = string(data)
		}
		opts, err := loadOptions()
		if err != nil {
			return err
		}
		return runScript(cmd.OutOrStdout(), kind, script, opts)
	},
}

func runScript(w io.Writer, kind structviz.Kind, script string, opts *structviz.Options) error {
	rec := render.NewRecorder(0)
	opts.Renderer = rec
	opts.EventListener = printingEventListener(w)
	s := structviz.New(kind, opts)
	s.Init(structviz.Config{})
	if err := structviz.ExecScript(s, script); err != nil {
		return err
	}
	return printFrames(w, rec, opts)
}

func printFrames(w io.Writer, rec *render.Recorder, opts *structviz.Options) error {
	frames := rec.Frames()
	if len(frames) == 0 {
		return nil
	}
	ao := asciiOptions(opts)
	switch {
	case runConfig.diff:
		fmt.Fprintln(w, render.ASCII(frames[0], ao))
		d, err := render.DiffFrameSeq(frames, ao)
		if err != nil {
			return err
		}
		fmt.Fprint(w, d)
	case runConfig.frames:
		fmt.Fprint(w, render.ASCIIFrames(frames, ao))
	default:
		fmt.Fprintln(w, render.ASCII(frames[len(frames)-1], ao))
	}
	if runConfig.table {
		render.WriteFrameTable(w, frames[len(frames)-1])
	}
	if runConfig.plot {
		fmt.Fprintln(w, render.PlotElementCounts(frames, 10))
	}
	if runConfig.url {
		codec, err := render.ParseCodec(runConfig.codec)
		if err != nil {
			return err
		}
		u, err := render.GenerateURL(render.DefaultViewerURL, frames, codec)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, u.String())
	}
	return nil
}

var randomCmd = &cobra.Command{
	Use:   "random (flags)",
	Short: "draw a random instance of a structure",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := structviz.ParseKind(kindName)
		if err != nil {
			return err
		}
		opts, err := loadOptions()
		if err != nil {
			return err
		}
		rec := render.NewRecorder(1)
		opts.Renderer = rec
		s := structviz.New(kind, opts)
		s.Random()
		return printFrames(cmd.OutOrStdout(), rec, opts)
	},
}

var commandsCmd = &cobra.Command{
	Use:   "commands (flags)",
	Short: "list the commands accepted for a structure kind",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := structviz.ParseKind(kindName)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, "init [capacity=<n>]")
		fmt.Fprintln(w, "reset")
		fmt.Fprintln(w, "random")
		for _, name := range structviz.Commands(kind) {
			fmt.Fprintln(w, name)
		}
		return nil
	},
}

var optionsCmd = &cobra.Command{
	Use:   "options (flags)",
	Short: "print the effective structure options",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions()
		if err != nil {
			return err
		}
		opts.EnsureDefaults()
		fmt.Fprint(cmd.OutOrStdout(), opts.String())
		return nil
	},
}
